package chunkset

import (
	"fmt"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

// CHRM holds the eight chromaticity coordinates, each scaled by 100000.
type CHRM struct {
	WhiteX, WhiteY uint32
	RedX, RedY     uint32
	GreenX, GreenY uint32
	BlueX, BlueY   uint32
}

func validateCHRM(c Chunk) (string, error) {
	if len(c.Body) != 32 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "cHRM",
			fmt.Sprintf("body must be exactly 32 bytes, got %d", len(c.Body)))
	}
	ch := CHRM{
		WhiteX: decodeUint32BE(c.Body[0:4]),
		WhiteY: decodeUint32BE(c.Body[4:8]),
		RedX:   decodeUint32BE(c.Body[8:12]),
		RedY:   decodeUint32BE(c.Body[12:16]),
		GreenX: decodeUint32BE(c.Body[16:20]),
		GreenY: decodeUint32BE(c.Body[20:24]),
		BlueX:  decodeUint32BE(c.Body[24:28]),
		BlueY:  decodeUint32BE(c.Body[28:32]),
	}
	// spec.md §4.5: "no range check beyond decoding".
	line := fmt.Sprintf("cHRM  white(%d,%d) red(%d,%d) green(%d,%d) blue(%d,%d)",
		ch.WhiteX, ch.WhiteY, ch.RedX, ch.RedY, ch.GreenX, ch.GreenY, ch.BlueX, ch.BlueY)
	return line, nil
}

func validateGAMA(c Chunk) (string, error) {
	if len(c.Body) != 4 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "gAMA",
			fmt.Sprintf("body must be exactly 4 bytes, got %d", len(c.Body)))
	}
	gamma := decodeUint32BE(c.Body)
	if gamma == 0 || gamma > maxDimension {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "gAMA",
			fmt.Sprintf("gamma out of range [1, 2^31-1]: %d", gamma))
	}
	return fmt.Sprintf("gAMA  %.5f", float64(gamma)/100000.0), nil
}
