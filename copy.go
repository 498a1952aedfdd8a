// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// copyBackRef copies length bytes from dst[outPos-dist:outPos-dist+length] to dst[outPos:outPos+length].
// If dist < length, source and destination overlap; copy must be byte-by-byte so that
// repeated bytes (RLE) are correct. The built-in copy does not handle overlapping regions
// where src precedes dst.
func copyBackRef(dst []byte, outPos, dist, length int) error {
	refPos := outPos - dist
	if refPos < 0 {
		return ErrLookBehindUnderrun
	}

	if outPos+length > len(dst) {
		return ErrShortBuffer
	}

	if dist >= length {
		copy(dst[outPos:outPos+length], dst[refPos:refPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outPos+i] = dst[refPos+i]
	}

	return nil
}
