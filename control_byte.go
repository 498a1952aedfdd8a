// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// controlByte packs a token fragment to one byte as required by the LZF bit
// layout. Callers pass values whose low 8 bits are the serialized representation.
func controlByte(v int) byte {
	// #nosec G115 -- LZF control bytes intentionally encode only low 8 bits.
	return byte(v & 0xff)
}
