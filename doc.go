// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

/*
Package lzf implements LZF block compression and decompression
(libLZF-compatible token stream).

The format is a raw token stream with no header, length field, or checksum:
literal runs (control byte 0..31 = run length − 1, followed by that many raw
bytes) and back-references (3-bit length category plus a 13-bit backward
distance 1..8192; matched lengths up to 264 via a continuation byte). The
decompressed size must be known or bounded out of band. Suitable for network
payloads and caches where speed matters more than ratio.

# Decompress

Options may be nil; a size hint avoids growth of the output buffer:

	out, err := lzf.Decompress(compressed, nil)
	out, err := lzf.Decompress(compressed, lzf.DefaultDecompressOptions(expectedLen))

To reuse caller-managed memory, or to run a custom retry loop over a
fixed-capacity destination:

	buf, err = lzf.AppendDecompress(buf[:0], compressed)
	n, err := lzf.DecompressInto(compressed, dst) // ErrShortBuffer: grow and retry

From an io.Reader (reads the whole stream first):

	out, err := lzf.DecompressFromReader(r, nil)

# Compress

	out, err := lzf.Compress(data)
	buf, err = lzf.AppendCompress(buf[:0], data)
	n, err := lzf.CompressInto(data, dst) // size dst via lzf.MaxCompressedLen

# Integrity

The base format carries no checksum. The checked variants append an XXH64
digest of the plaintext after the token stream:

	out, err := lzf.CompressChecked(data)
	plain, err := lzf.DecompressChecked(out, nil)
*/
package lzf
