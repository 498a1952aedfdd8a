// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzf

package lzf

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// checksumSize is the length of the XXH64 trailer in the checked frame.
const checksumSize = 8

// CompressChecked compresses src and appends a little-endian XXH64 digest of
// the plaintext. The token stream itself is unchanged; the trailer is the
// only framing, for callers that need to detect corrupt-but-decodable input.
func CompressChecked(src []byte) ([]byte, error) {
	out := make([]byte, 0, MaxCompressedLen(len(src))+checksumSize)

	out, err := AppendCompress(out, src)
	if err != nil {
		return nil, err
	}

	return binary.LittleEndian.AppendUint64(out, xxhash.Sum64(src)), nil
}

// DecompressChecked splits the XXH64 trailer from src, decodes the stream and
// verifies the digest against the decoded bytes. Returns ErrChecksumMismatch
// when they disagree and ErrInputOverrun when src is shorter than the trailer.
func DecompressChecked(src []byte, opts *DecompressOptions) ([]byte, error) {
	if len(src) < checksumSize {
		return nil, ErrInputOverrun
	}

	want := binary.LittleEndian.Uint64(src[len(src)-checksumSize:])

	out, err := Decompress(src[:len(src)-checksumSize], opts)
	if err != nil {
		return nil, err
	}

	if xxhash.Sum64(out) != want {
		return nil, ErrChecksumMismatch
	}

	return out, nil
}
