package pngstream

import (
	"errors"
	"testing"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

// FuzzFeedPartitionInvariance exercises spec.md §8 property 1: feeding a
// valid stream in any partition of contiguous slices yields the same
// terminal acceptance and the same emitted descriptions as feeding it
// whole. The fuzzer mutates the split points, not the bytes.
func FuzzFeedPartitionInvariance(f *testing.F) {
	f.Add(3)
	f.Add(7)
	f.Add(1)
	f.Fuzz(func(t *testing.T, splitEvery int) {
		if splitEvery <= 0 {
			t.Skip()
		}
		whole := minimalPNG()

		wholeLines, wholeErr := runStream(t, [][]byte{whole})

		var pieces [][]byte
		for i := 0; i < len(whole); i += splitEvery {
			end := i + splitEvery
			if end > len(whole) {
				end = len(whole)
			}
			pieces = append(pieces, whole[i:end])
		}
		splitLines, splitErr := runStream(t, pieces)

		if (wholeErr == nil) != (splitErr == nil) {
			t.Fatalf("acceptance differs for splitEvery=%d: whole=%v split=%v", splitEvery, wholeErr, splitErr)
		}
		if len(wholeLines) != len(splitLines) {
			t.Fatalf("line count differs for splitEvery=%d", splitEvery)
		}
		for i := range wholeLines {
			if wholeLines[i] != splitLines[i] {
				t.Fatalf("line %d differs for splitEvery=%d: %q vs %q", i, splitEvery, wholeLines[i], splitLines[i])
			}
		}
	})
}

// FuzzChunkBitFlipChangesCRC exercises spec.md §8 property 3: a one-bit
// flip inside a chunk's CRC-covered range changes its computed CRC (so
// parsing a stream carrying the original, unflipped CRC field yields
// CrcMismatch).
func FuzzChunkBitFlipChangesCRC(f *testing.F) {
	f.Add(0, uint8(0))
	f.Add(5, uint8(3))
	f.Fuzz(func(t *testing.T, byteIdx int, bitIdx uint8) {
		stream := minimalPNG()
		// IHDR's CRC-covered range is type+body: offset 8+4 through 8+8+13.
		start, end := 12, 8+8+13
		if end <= start {
			t.Skip()
		}
		idx := start + (byteIdx%(end-start)+(end-start))%(end-start)
		bit := bitIdx % 8

		flipped := append([]byte(nil), stream...)
		flipped[idx] ^= 1 << bit

		_, err := runStream(t, [][]byte{flipped})
		var pe *pngerr.Error
		if !errors.As(err, &pe) || pe.Code != pngerr.CrcMismatch {
			t.Fatalf("expected CrcMismatch after flipping bit %d of byte %d, got %v", bit, idx, err)
		}
	})
}
