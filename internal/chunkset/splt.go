package chunkset

import (
	"bytes"
	"fmt"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

// validateSPLT supplements spec.md's opaque-hex-dump treatment of sPLT
// (PNG §11.3.3) with real structure: name \0 sampleDepth(1) entries...
// Each entry is 6 bytes (8-bit samples: r,g,b,a 1 byte each + freq 2
// bytes) or 10 bytes (16-bit samples: r,g,b,a 2 bytes each + freq 2
// bytes).
func validateSPLT(c Chunk) (string, error) {
	nul := bytes.IndexByte(c.Body, 0)
	if nul == -1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "sPLT", "missing NUL after palette name")
	}
	name := c.Body[:nul]
	if err := validateKeyword("sPLT", name); err != nil {
		return "", err
	}
	rest := c.Body[nul+1:]
	if len(rest) < 1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "sPLT", "missing sample depth")
	}
	depth := rest[0]
	var entrySize int
	switch depth {
	case 8:
		entrySize = 6
	case 16:
		entrySize = 10
	default:
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "sPLT", fmt.Sprintf("sample depth must be 8 or 16, got %d", depth))
	}
	entries := rest[1:]
	if len(entries)%entrySize != 0 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "sPLT",
			fmt.Sprintf("entry data length %d is not a multiple of entry size %d", len(entries), entrySize))
	}
	count := len(entries) / entrySize
	return fmt.Sprintf("sPLT  %s: %d entries at depth %d", string(name), count, depth), nil
}
