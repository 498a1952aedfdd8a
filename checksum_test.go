package lzf

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestChecksum_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := CompressChecked(in.data)
			if err != nil {
				t.Fatalf("CompressChecked failed: %v", err)
			}
			if len(cmp) < checksumSize {
				t.Fatalf("checked frame too short: %d", len(cmp))
			}

			out, err := DecompressChecked(cmp, DefaultDecompressOptions(len(in.data)))
			if err != nil {
				t.Fatalf("DecompressChecked failed: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatal("checked round-trip mismatch")
			}
		})
	}
}

func TestChecksum_DetectsCorruptButDecodableStream(t *testing.T) {
	// Random data compresses to literal runs, so flipping a payload byte
	// leaves the token structure valid: only the digest can catch it.
	data := make([]byte, 256)
	rand.New(rand.NewSource(3)).Read(data)

	cmp, err := CompressChecked(data)
	if err != nil {
		t.Fatalf("CompressChecked failed: %v", err)
	}

	cmp[1] ^= 0xFF
	_, err = DecompressChecked(cmp, nil)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestChecksum_TrailerTamper(t *testing.T) {
	data := bytes.Repeat([]byte("trailer"), 32)

	cmp, err := CompressChecked(data)
	if err != nil {
		t.Fatalf("CompressChecked failed: %v", err)
	}

	cmp[len(cmp)-1] ^= 0x01
	_, err = DecompressChecked(cmp, nil)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestChecksum_InputShorterThanTrailer(t *testing.T) {
	_, err := DecompressChecked([]byte{0x01, 0x02, 0x03}, nil)
	if !errors.Is(err, ErrInputOverrun) {
		t.Fatalf("expected ErrInputOverrun, got %v", err)
	}
}
