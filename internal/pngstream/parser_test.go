package pngstream

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/brnrdo/pngvet/internal/crc32png"
	"github.com/brnrdo/pngvet/internal/pngerr"
	"github.com/brnrdo/pngvet/internal/render"
)

func buildChunk(typ string, body []byte) []byte {
	var typeCode [4]byte
	copy(typeCode[:], typ)

	out := make([]byte, 0, 12+len(body))
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(body)))
	out = append(out, lenBuf...)
	out = append(out, typeCode[:]...)
	out = append(out, body...)

	crc := crc32png.ChunkCRC(typeCode, body)
	crcBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(crcBuf, crc)
	out = append(out, crcBuf...)
	return out
}

func minimalPNG() []byte {
	var out []byte
	out = append(out, pngSignature[:]...)
	out = append(out, buildChunk("IHDR", []byte{
		0, 0, 0, 1, // width
		0, 0, 0, 1, // height
		8, 2, 0, 0, 0, // depth 8, truecolor, comp/filter/interlace 0
	})...)
	out = append(out, buildChunk("IDAT", []byte{1, 2, 3, 4})...)
	out = append(out, buildChunk("IEND", nil)...)
	return out
}

type recordingSink struct{ lines []string }

func (s *recordingSink) Emit(e render.Event) error {
	s.lines = append(s.lines, e.Line)
	return nil
}

func runStream(t *testing.T, feedChunks [][]byte) ([]string, error) {
	t.Helper()
	sink := &recordingSink{}
	p := New(WithSink(sink))
	for _, chunk := range feedChunks {
		if err := p.Feed(chunk); err != nil {
			return sink.lines, err
		}
	}
	if err := p.Finish(); err != nil {
		return sink.lines, err
	}
	return sink.lines, nil
}

func TestMinimalPNGAccepted(t *testing.T) {
	lines, err := runStream(t, [][]byte{minimalPNG()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 emitted lines (IHDR, IDAT, IEND), got %d: %v", len(lines), lines)
	}
}

func TestFeedAnyPartitionIsEquivalent(t *testing.T) {
	whole := minimalPNG()

	wholeLines, wholeErr := runStream(t, [][]byte{whole})

	// split into 1-byte pieces
	var pieces [][]byte
	for _, b := range whole {
		pieces = append(pieces, []byte{b})
	}
	splitLines, splitErr := runStream(t, pieces)

	if (wholeErr == nil) != (splitErr == nil) {
		t.Fatalf("terminal acceptance differs: whole=%v split=%v", wholeErr, splitErr)
	}
	if len(wholeLines) != len(splitLines) {
		t.Fatalf("emitted line count differs: whole=%d split=%d", len(wholeLines), len(splitLines))
	}
	for i := range wholeLines {
		if wholeLines[i] != splitLines[i] {
			t.Fatalf("line %d differs: %q vs %q", i, wholeLines[i], splitLines[i])
		}
	}
}

func TestBadSignature(t *testing.T) {
	stream := minimalPNG()
	stream[7] = 0x0B // corrupt last signature byte
	_, err := runStream(t, [][]byte{stream})
	var pe *pngerr.Error
	if !errors.As(err, &pe) || pe.Code != pngerr.BadSignature {
		t.Fatalf("expected BadSignature, got %v", err)
	}
}

func TestCrcMismatch(t *testing.T) {
	stream := minimalPNG()
	// IHDR's CRC field is the 4 bytes right after its 13-byte body, which
	// starts at offset 8 (sig) + 8 (len+type) = 16.
	crcOffset := 8 + 8 + 13
	stream[crcOffset] ^= 0x01
	_, err := runStream(t, [][]byte{stream})
	var pe *pngerr.Error
	if !errors.As(err, &pe) || pe.Code != pngerr.CrcMismatch {
		t.Fatalf("expected CrcMismatch, got %v", err)
	}
}

func TestLengthTooLarge(t *testing.T) {
	var stream []byte
	stream = append(stream, pngSignature[:]...)
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, 0x80000000)
	stream = append(stream, lenBuf...)
	stream = append(stream, []byte("IHDR")...)
	_, err := runStream(t, [][]byte{stream})
	var pe *pngerr.Error
	if !errors.As(err, &pe) || pe.Code != pngerr.LengthTooLarge {
		t.Fatalf("expected LengthTooLarge, got %v", err)
	}
}

func TestMissingIEND(t *testing.T) {
	stream := minimalPNG()
	// Cut off before IEND entirely.
	truncated := stream[:len(stream)-12]
	sink := &recordingSink{}
	p := New(WithSink(sink))
	if err := p.Feed(truncated); err != nil {
		t.Fatalf("unexpected error mid-stream: %v", err)
	}
	err := p.Finish()
	var pe *pngerr.Error
	if !errors.As(err, &pe) || pe.Code != pngerr.MissingIEND {
		t.Fatalf("expected MissingIEND, got %v", err)
	}
}

func TestUnexpectedEofMidChunk(t *testing.T) {
	stream := minimalPNG()
	truncated := stream[:len(stream)-5] // cut inside IEND's type code
	sink := &recordingSink{}
	p := New(WithSink(sink))
	if err := p.Feed(truncated); err != nil {
		t.Fatalf("unexpected error mid-stream: %v", err)
	}
	err := p.Finish()
	var pe *pngerr.Error
	if !errors.As(err, &pe) || pe.Code != pngerr.UnexpectedEof {
		t.Fatalf("expected UnexpectedEof, got %v", err)
	}
}

func TestDoubleIHDRRejected(t *testing.T) {
	var stream []byte
	stream = append(stream, pngSignature[:]...)
	ihdrBody := []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 2, 0, 0, 0}
	stream = append(stream, buildChunk("IHDR", ihdrBody)...)
	stream = append(stream, buildChunk("IHDR", ihdrBody)...)
	_, err := runStream(t, [][]byte{stream})
	var pe *pngerr.Error
	if !errors.As(err, &pe) || pe.Code != pngerr.BadChunkOrder {
		t.Fatalf("expected BadChunkOrder, got %v", err)
	}
}

func TestChunkAfterIENDRejected(t *testing.T) {
	stream := minimalPNG()
	stream = append(stream, buildChunk("tEXt", []byte("a\x00b"))...)
	_, err := runStream(t, [][]byte{stream})
	var pe *pngerr.Error
	if !errors.As(err, &pe) || pe.Code != pngerr.BadChunkOrder {
		t.Fatalf("expected BadChunkOrder, got %v", err)
	}
}

func TestNonContiguousIDATRejected(t *testing.T) {
	var stream []byte
	stream = append(stream, pngSignature[:]...)
	stream = append(stream, buildChunk("IHDR", []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 2, 0, 0, 0})...)
	stream = append(stream, buildChunk("IDAT", []byte{1})...)
	stream = append(stream, buildChunk("tEXt", []byte("a\x00b"))...)
	stream = append(stream, buildChunk("IDAT", []byte{2})...)
	stream = append(stream, buildChunk("IEND", nil)...)
	_, err := runStream(t, [][]byte{stream})
	var pe *pngerr.Error
	if !errors.As(err, &pe) || pe.Code != pngerr.BadChunkOrder {
		t.Fatalf("expected BadChunkOrder for non-contiguous IDAT, got %v", err)
	}
}

func TestPoisonedParserRejectsFurtherFeed(t *testing.T) {
	p := New()
	bad := minimalPNG()
	bad[7] = 0x00
	if err := p.Feed(bad); err == nil {
		t.Fatal("expected an error from the corrupted signature")
	}
	if err := p.Feed([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected poisoned parser to reject further input")
	}
}
