// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// LZF format constants: token bounds and match hash table parameters.

// Token bounds.
const (
	// maxLiteralRun is the largest literal count one control byte can carry.
	maxLiteralRun = 1 << 5

	// maxOffset is the largest backward distance a reference token can encode.
	maxOffset = 1 << 13

	// minMatchLen and maxMatchLen bound the matched length of an emitted
	// back-reference. The decoder additionally accepts length 2, which this
	// encoder never produces.
	minMatchLen = 3
	maxMatchLen = (1 << 8) + (1 << 3)

	// extendedLenMarker is the length category that selects the
	// continuation-byte form of a reference token.
	extendedLenMarker = 7
)

// Hash parameters used by the compressor's match table.
const (
	hashLog    = 14            // number of bits in the table index
	hashSize   = 1 << hashLog  // number of single-entry slots
	hashMask   = hashSize - 1  // mask for the table index
	windowMask = 1<<(3*8) - 1  // rolling hash keeps exactly the 3-byte window
)
