package chunkset

import (
	"fmt"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

func validateBKGD(c Chunk, ct ColorType) (string, error) {
	var wantLen int
	switch ct {
	case ColorGrayscale, ColorGrayscaleAlpha:
		wantLen = 2
	case ColorTruecolor, ColorTruecolorAlpha:
		wantLen = 6
	case ColorIndexed:
		wantLen = 1
	default:
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "bKGD", fmt.Sprintf("unknown color type context: %d", ct))
	}
	if len(c.Body) != wantLen {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "bKGD",
			fmt.Sprintf("body must be %d bytes for color type %d, got %d", wantLen, ct, len(c.Body)))
	}

	switch ct {
	case ColorGrayscale, ColorGrayscaleAlpha:
		gray := decodeUint16BE(c.Body[0:2])
		return fmt.Sprintf("bKGD  gray=%d", gray), nil
	case ColorTruecolor, ColorTruecolorAlpha:
		r := decodeUint16BE(c.Body[0:2])
		g := decodeUint16BE(c.Body[2:4])
		b := decodeUint16BE(c.Body[4:6])
		return fmt.Sprintf("bKGD  rgb=(%d,%d,%d)", r, g, b), nil
	default: // ColorIndexed
		return fmt.Sprintf("bKGD  palette index=%d", c.Body[0]), nil
	}
}

func validateSBIT(c Chunk, ct ColorType) (string, error) {
	var wantLen int
	switch ct {
	case ColorGrayscale:
		wantLen = 1
	case ColorTruecolor, ColorIndexed:
		wantLen = 3
	case ColorGrayscaleAlpha:
		wantLen = 2
	case ColorTruecolorAlpha:
		wantLen = 4
	default:
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "sBIT", fmt.Sprintf("unknown color type context: %d", ct))
	}
	if len(c.Body) != wantLen {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "sBIT",
			fmt.Sprintf("body must be %d bytes for color type %d, got %d", wantLen, ct, len(c.Body)))
	}
	return fmt.Sprintf("sBIT  %d significant-bit channel(s)", len(c.Body)), nil
}
