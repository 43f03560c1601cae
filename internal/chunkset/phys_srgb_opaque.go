package chunkset

import (
	"fmt"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

func validatePHYs(c Chunk) (string, error) {
	if len(c.Body) != 9 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "pHYs",
			fmt.Sprintf("body must be exactly 9 bytes, got %d", len(c.Body)))
	}
	x := decodeUint32BE(c.Body[0:4])
	y := decodeUint32BE(c.Body[4:8])
	unit := c.Body[8]
	if x > maxDimension {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "pHYs", fmt.Sprintf("x axis out of range: %d", x))
	}
	if y > maxDimension {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "pHYs", fmt.Sprintf("y axis out of range: %d", y))
	}
	if unit != 0 && unit != 1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "pHYs", fmt.Sprintf("unit specifier must be 0 or 1, got %d", unit))
	}
	unitName := "unknown"
	if unit == 1 {
		unitName = "meter"
	}
	return fmt.Sprintf("pHYs  %d x %d per %s", x, y, unitName), nil
}

func validateSRGB(c Chunk) (string, error) {
	if len(c.Body) != 1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "sRGB",
			fmt.Sprintf("body must be exactly 1 byte, got %d", len(c.Body)))
	}
	intent := c.Body[0]
	if intent > 3 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "sRGB", fmt.Sprintf("rendering intent must be in [0,3], got %d", intent))
	}
	names := [...]string{"perceptual", "relative colorimetric", "saturation", "absolute colorimetric"}
	return fmt.Sprintf("sRGB  intent=%s", names[intent]), nil
}

// tRNS and hIST remain opaque per spec.md §4.5's table; their structure is
// colour-type/palette dependent in ways spec.md explicitly leaves as a
// generic hex-dump rather than a named rule.
func validateTRNS(c Chunk) (string, error) { return hexDump("tRNS", c.Body), nil }
func validateHIST(c Chunk) (string, error) { return hexDump("hIST", c.Body), nil }
