// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

// DecompressOptions configures decompression. All fields are optional; nil
// options use derived defaults.
type DecompressOptions struct {
	// SizeHint pre-sizes the output buffer (expected decompressed size, when
	// the caller recorded it out of band). Wrong hints cost only reallocation.
	SizeHint int
	// MaxOutputSize bounds the decoded size (0 = derived from input length).
	// A corrupt stream cannot demand more memory than this.
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given size hint and
// derived output limits.
func DefaultDecompressOptions(sizeHint int) *DecompressOptions {
	return &DecompressOptions{SizeHint: sizeHint}
}
