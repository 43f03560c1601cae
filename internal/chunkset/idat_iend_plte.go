package chunkset

import (
	"fmt"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

// validateIDAT never inspects pixel data (spec.md §1, "IDAT bodies are
// treated opaquely"); it only renders the generic hex dump.
func validateIDAT(c Chunk) (string, error) {
	return hexDump("IDAT", c.Body), nil
}

func validateIEND(c Chunk) (string, error) {
	if len(c.Body) != 0 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "IEND",
			fmt.Sprintf("body must be empty, got %d bytes", len(c.Body)))
	}
	return "IEND", nil
}

// PLTEEntry is one 3-byte palette entry.
type PLTEEntry struct {
	Red, Green, Blue uint8
}

func validatePLTE(c Chunk) (string, error) {
	n := len(c.Body)
	if n == 0 || n%3 != 0 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "PLTE",
			fmt.Sprintf("body length must be a nonzero multiple of 3, got %d", n))
	}
	entries := n / 3
	if entries > 256 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "PLTE",
			fmt.Sprintf("at most 256 palette entries allowed, got %d", entries))
	}
	return fmt.Sprintf("PLTE  %d entries", entries), nil
}
