// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

import "io"

// defaultOutputLimit derives the hardening bound for growable decompression.
// A 3-byte extended token expands to at most maxMatchLen bytes, so a valid
// stream of n bytes can never exceed this; anything asking for more is corrupt.
func defaultOutputLimit(n int) int {
	return n*maxMatchLen + 64
}

// Decompress decompresses src into a newly allocated buffer. opts may be nil;
// see DecompressOptions for size hints and output limits.
//
// Returns an error wrapping ErrCorruptStream for malformed input and
// ErrOutputTooLarge when the decoded size exceeds the configured limit.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions(0)
	}

	limit := opts.MaxOutputSize
	if limit <= 0 {
		limit = defaultOutputLimit(len(src))
	}

	hint := opts.SizeHint
	if hint <= 0 {
		hint = 3 * len(src)
	}
	hint = min(hint, limit)

	return appendDecompress(make([]byte, 0, hint), src, limit)
}

// AppendDecompress appends the decoded form of src to dst and returns the
// extended slice. Passing a reused buffer as dst[:0] amortizes allocation
// across calls.
func AppendDecompress(dst, src []byte) ([]byte, error) {
	return appendDecompress(dst, src, len(dst)+defaultOutputLimit(len(src)))
}

// DecompressFromReader reads the full stream then decompresses it. No
// decoding logic of its own. If opts.MaxInputSize > 0 and more bytes are
// read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// DecompressInto decodes src into the fixed-capacity dst and returns the
// number of bytes written. Returns ErrShortBuffer when dst cannot hold the
// result (retry with a larger buffer) and an error wrapping ErrCorruptStream
// when the stream is malformed; in both cases dst contents are unspecified.
// The decoder consumes exactly len(src) bytes and performs no integrity
// validation beyond bounds and reference checks.
func DecompressInto(src, dst []byte) (int, error) {
	var inPos, outPos int

	for inPos < len(src) {
		ctrl := int(src[inPos])
		inPos++

		if ctrl < maxLiteralRun {
			// Literal run of ctrl+1 raw bytes.
			n := ctrl + 1
			if inPos+n > len(src) {
				return 0, ErrInputOverrun
			}
			if outPos+n > len(dst) {
				return 0, ErrShortBuffer
			}

			copy(dst[outPos:outPos+n], src[inPos:inPos+n])
			inPos += n
			outPos += n

			continue
		}

		length, dist, n, err := readReference(src, inPos, ctrl)
		if err != nil {
			return 0, err
		}
		inPos = n

		if err := copyBackRef(dst, outPos, dist, length); err != nil {
			return 0, err
		}
		outPos += length
	}

	return outPos, nil
}

// appendDecompress walks the token stream and appends decoded bytes to dst,
// growing it as needed. The transform runs once; there is no retry pass.
// limit bounds len(dst) so a corrupt stream cannot masquerade as "just needs
// a bigger buffer" and demand unbounded memory.
func appendDecompress(dst, src []byte, limit int) ([]byte, error) {
	inPos := 0

	for inPos < len(src) {
		ctrl := int(src[inPos])
		inPos++

		if ctrl < maxLiteralRun {
			n := ctrl + 1
			if inPos+n > len(src) {
				return nil, ErrInputOverrun
			}
			if len(dst)+n > limit {
				return nil, ErrOutputTooLarge
			}

			dst = append(dst, src[inPos:inPos+n]...)
			inPos += n

			continue
		}

		length, dist, n, err := readReference(src, inPos, ctrl)
		if err != nil {
			return nil, err
		}
		inPos = n

		refPos := len(dst) - dist
		if refPos < 0 {
			return nil, ErrLookBehindUnderrun
		}
		if len(dst)+length > limit {
			return nil, ErrOutputTooLarge
		}

		// Sequential, byte-at-a-time: the reference may overlap the bytes
		// being produced (RLE-style streams).
		for i := 0; i < length; i++ {
			dst = append(dst, dst[refPos+i])
		}
	}

	return dst, nil
}

// readReference decodes the remainder of a back-reference token whose control
// byte is ctrl. Returns the matched length, the backward distance, and the
// input position after the token.
func readReference(src []byte, inPos, ctrl int) (length, dist, n int, err error) {
	length = ctrl >> 5
	if length == extendedLenMarker {
		if inPos >= len(src) {
			return 0, 0, 0, ErrInputOverrun
		}

		length += int(src[inPos])
		inPos++
	}
	length += 2

	if inPos >= len(src) {
		return 0, 0, 0, ErrInputOverrun
	}

	dist = (ctrl&0x1f)<<8 + int(src[inPos]) + 1
	inPos++

	return length, dist, inPos, nil
}
