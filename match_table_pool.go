package lzf

import "sync"

// matchTablePool is a pool of compressor hash tables. Each compress call gets
// its own cleared table, so concurrent calls never share match state.
var matchTablePool = sync.Pool{
	New: func() any {
		return &matchTable{}
	},
}

// acquireMatchTable acquires a cleared hash table from the pool.
func acquireMatchTable() *matchTable {
	t := matchTablePool.Get().(*matchTable)
	t.reset()
	return t
}

// releaseMatchTable releases a hash table to the pool.
func releaseMatchTable(t *matchTable) {
	if t == nil {
		return
	}

	matchTablePool.Put(t)
}
