// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// MaxCompressedLen returns the worst-case compressed size for n input bytes:
// all literals, one control byte per full or partial 32-byte run. Sizing a
// destination with it guarantees CompressInto cannot return ErrShortBuffer.
func MaxCompressedLen(n int) int {
	if n <= 0 {
		return 0
	}

	return n + (n+maxLiteralRun-1)/maxLiteralRun
}

// Compress compresses src and returns a newly allocated compressed block.
func Compress(src []byte) ([]byte, error) {
	dst := make([]byte, MaxCompressedLen(len(src)))
	n, err := CompressInto(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// AppendCompress appends the compressed form of src to dst and returns the
// extended slice. Passing a reused buffer as dst[:0] avoids allocation once
// the buffer has grown to a steady-state size; the old backing array is
// abandoned only when capacity must grow.
func AppendCompress(dst, src []byte) ([]byte, error) {
	need := MaxCompressedLen(len(src))
	off := len(dst)

	if cap(dst)-off < need {
		grown := make([]byte, off, off+need)
		copy(grown, dst)
		dst = grown
	}

	n, err := CompressInto(src, dst[off:off+need])
	if err != nil {
		return nil, err
	}

	return dst[:off+n], nil
}

// CompressInto compresses src into dst and returns the number of bytes
// written. Returns ErrShortBuffer when dst cannot hold the result; dst
// contents are unspecified after a failure and must not be used.
//
// Inputs shorter than 2 bytes cannot seed the rolling hash and are encoded
// directly: empty input produces zero bytes, a single byte one literal token.
func CompressInto(src, dst []byte) (int, error) {
	switch len(src) {
	case 0:
		return 0, nil

	case 1:
		if len(dst) < 2 {
			return 0, ErrShortBuffer
		}

		dst[0] = 0 // literal run of one
		dst[1] = src[0]

		return 2, nil
	}

	table := acquireMatchTable()
	defer releaseMatchTable(table)

	return compressInto(src, dst, table)
}

// compressInto runs the greedy single-pass scan. len(src) must be >= 2 and
// table must be cleared. The table is an explicit argument so every call owns
// its match state.
func compressInto(src, dst []byte, table *matchTable) (int, error) {
	inLen := len(src)

	var inPos, outPos, runStart int
	var err error

	// Rolling window: after each shift the low 24 bits hold src[inPos..inPos+2].
	h := uint32(src[0])<<8 | uint32(src[1])

	for inPos < inLen-2 {
		h = (h<<8 | uint32(src[inPos+2])) & windowMask
		ref := table.lookupInsert(h, inPos)
		dist := inPos - ref

		if ref >= 0 && dist <= maxOffset && inPos+4 < inLen &&
			src[ref] == src[inPos] &&
			src[ref+1] == src[inPos+1] &&
			src[ref+2] == src[inPos+2] {

			// Extend greedily. The last two input bytes stay out of reach so
			// the re-seed windows below remain in bounds.
			maxLen := min(inLen-inPos-2, maxMatchLen)
			matchLen := minMatchLen
			for matchLen < maxLen && src[ref+matchLen] == src[inPos+matchLen] {
				matchLen++
			}

			outPos, err = flushLiterals(dst, outPos, src[runStart:inPos])
			if err != nil {
				return 0, err
			}

			outPos, err = emitReference(dst, outPos, dist-1, matchLen)
			if err != nil {
				return 0, err
			}

			// Re-seed the last two 3-byte windows inside the consumed region,
			// not every skipped position: fewer table writes at the cost of
			// some future match opportunities.
			seed := inPos + matchLen - 2
			h = uint32(src[seed])<<8 | uint32(src[seed+1])
			h = (h<<8 | uint32(src[seed+2])) & windowMask
			table.insert(h, seed)
			h = (h<<8 | uint32(src[seed+3])) & windowMask
			table.insert(h, seed+1)

			inPos += matchLen
			runStart = inPos

			continue
		}

		inPos++
		if inPos-runStart == maxLiteralRun {
			outPos, err = flushLiterals(dst, outPos, src[runStart:inPos])
			if err != nil {
				return 0, err
			}

			runStart = inPos
		}
	}

	// The stream never ends mid-run: flush the literal tail.
	outPos, err = flushLiterals(dst, outPos, src[runStart:])
	if err != nil {
		return 0, err
	}

	return outPos, nil
}

// flushLiterals emits lit as literal-run tokens, splitting runs longer than
// maxLiteralRun, and returns the new output offset.
func flushLiterals(dst []byte, outPos int, lit []byte) (int, error) {
	for len(lit) > 0 {
		n := min(len(lit), maxLiteralRun)
		if outPos+1+n > len(dst) {
			return 0, ErrShortBuffer
		}

		dst[outPos] = controlByte(n - 1)
		outPos++
		outPos += copy(dst[outPos:], lit[:n])
		lit = lit[n:]
	}

	return outPos, nil
}

// emitReference emits one back-reference token. off is distance-1 (13 bits);
// matchLen is the matched byte count, minMatchLen..maxMatchLen.
func emitReference(dst []byte, outPos, off, matchLen int) (int, error) {
	stored := matchLen - 2

	if stored < extendedLenMarker {
		if outPos+2 > len(dst) {
			return 0, ErrShortBuffer
		}

		dst[outPos] = controlByte(stored<<5 | off>>8)
		dst[outPos+1] = controlByte(off)

		return outPos + 2, nil
	}

	if outPos+3 > len(dst) {
		return 0, ErrShortBuffer
	}

	dst[outPos] = controlByte(extendedLenMarker<<5 | off>>8)
	dst[outPos+1] = controlByte(stored - extendedLenMarker)
	dst[outPos+2] = controlByte(off)

	return outPos + 3, nil
}
