// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

import (
	"errors"
	"fmt"
)

// Sentinel errors for compression and decompression. The two failure kinds a
// caller must tell apart are ErrShortBuffer (retry with a larger destination)
// and ErrCorruptStream (retrying cannot help); the more specific corruption
// errors wrap ErrCorruptStream so errors.Is works against either.
var (
	// ErrShortBuffer is returned when the destination buffer is too small to
	// hold the result. Recoverable: retry with a larger buffer.
	ErrShortBuffer = errors.New("destination buffer too small")

	// ErrCorruptStream is the base error for malformed compressed input.
	ErrCorruptStream = errors.New("corrupt stream")

	// ErrInputOverrun is returned when the decoder would read past the end of input.
	ErrInputOverrun = fmt.Errorf("%w: input overrun", ErrCorruptStream)

	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = fmt.Errorf("%w: lookbehind underrun", ErrCorruptStream)

	// ErrOutputTooLarge is returned when growable decompression exceeds the
	// configured output limit (see DecompressOptions.MaxOutputSize).
	ErrOutputTooLarge = errors.New("decompressed output exceeds limit")

	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrChecksumMismatch is returned by DecompressChecked when the trailing
	// digest does not match the decoded output.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)
