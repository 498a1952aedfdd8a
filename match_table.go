// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// matchTable maps the hash of a 3-byte window to the most recent input
// position starting with those bytes. One entry per slot; inserts overwrite,
// so only the latest occurrence of a colliding hash survives.
//
// Slots hold position+1 and zero means empty, so input position 0 can act as
// a match source without a separate presence flag.
type matchTable struct {
	slots [hashSize]int32
}

// hashWindow folds a 24-bit byte window into the table's index space with an
// xor-shift and a multiplicative mix.
func hashWindow(h uint32) uint32 {
	h &= windowMask
	return (((h ^ (h << 5)) >> (3*8 - hashLog)) - h*5) & hashMask
}

// lookupInsert records pos as the newest start of the hashed window and
// returns the previous position, or -1 if the slot was empty. The table does
// not store the window bytes; the caller must verify the candidate against
// the input to rule out hash collisions.
func (t *matchTable) lookupInsert(h uint32, pos int) int {
	slot := hashWindow(h)
	prev := int(t.slots[slot]) - 1
	t.slots[slot] = int32(pos + 1) //nolint:gosec // G115: positions fit int32 for LZF input sizes
	return prev
}

// insert records pos without reading the previous occupant. Used when
// re-seeding windows inside a consumed match region.
func (t *matchTable) insert(h uint32, pos int) {
	t.slots[hashWindow(h)] = int32(pos + 1) //nolint:gosec // G115: positions fit int32 for LZF input sizes
}

// reset clears all slots to empty.
func (t *matchTable) reset() {
	clear(t.slots[:])
}
