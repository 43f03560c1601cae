package chunkset

import (
	"fmt"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

// IHDR is the decoded image header; IHDR.ColorType seeds the
// OrderingContext's colour type, consulted by PLTE ordering and by the
// bKGD and sBIT validators.
type IHDR struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

const maxDimension = 1<<31 - 1

func validateIHDR(c Chunk) (IHDR, string, error) {
	var h IHDR
	if len(c.Body) != 13 {
		return h, "", pngerr.ForChunk(pngerr.BadChunkBody, "IHDR",
			fmt.Sprintf("body must be exactly 13 bytes, got %d", len(c.Body)))
	}

	h.Width = decodeUint32BE(c.Body[0:4])
	h.Height = decodeUint32BE(c.Body[4:8])
	h.BitDepth = c.Body[8]
	h.ColorType = ColorType(c.Body[9])
	h.CompressionMethod = c.Body[10]
	h.FilterMethod = c.Body[11]
	h.InterlaceMethod = c.Body[12]

	if h.Width == 0 || h.Width > maxDimension {
		return h, "", pngerr.ForChunk(pngerr.BadChunkBody, "IHDR",
			fmt.Sprintf("width out of range [1, 2^31-1]: %d", h.Width))
	}
	if h.Height == 0 || h.Height > maxDimension {
		return h, "", pngerr.ForChunk(pngerr.BadChunkBody, "IHDR",
			fmt.Sprintf("height out of range [1, 2^31-1]: %d", h.Height))
	}
	if !h.ColorType.valid() {
		return h, "", pngerr.ForChunk(pngerr.BadChunkBody, "IHDR",
			fmt.Sprintf("invalid color type: %d", h.ColorType))
	}
	depths := h.ColorType.allowedDepths()
	if !depthAllowed(depths, h.BitDepth) {
		return h, "", pngerr.ForChunk(pngerr.BadChunkBody, "IHDR",
			fmt.Sprintf("bit depth %d not allowed for color type %d, want one of %v", h.BitDepth, h.ColorType, depths))
	}
	if h.CompressionMethod != 0 {
		return h, "", pngerr.ForChunk(pngerr.BadChunkBody, "IHDR",
			fmt.Sprintf("unknown compression method: %d", h.CompressionMethod))
	}
	if h.FilterMethod != 0 {
		return h, "", pngerr.ForChunk(pngerr.BadChunkBody, "IHDR",
			fmt.Sprintf("unknown filter method: %d", h.FilterMethod))
	}
	if h.InterlaceMethod != 0 && h.InterlaceMethod != 1 {
		return h, "", pngerr.ForChunk(pngerr.BadChunkBody, "IHDR",
			fmt.Sprintf("unknown interlace method: %d", h.InterlaceMethod))
	}

	line := fmt.Sprintf("IHDR  SIZE %d x %d  DEPTH %d  COLOR TYPE : %s  INTERLACE %d",
		h.Width, h.Height, h.BitDepth, h.ColorType, h.InterlaceMethod)
	return h, line, nil
}
