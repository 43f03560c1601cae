package chunkset

import (
	"bytes"
	"fmt"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

// validateITXt supplements spec.md's table with iTXt (PNG §11.3.4.4),
// a chunk type the distillation dropped. Structure only: compressed
// text is never inflated.
//
// keyword \0 compressionFlag(1) compressionMethod(1) languageTag \0 translatedKeyword \0 text
func validateITXt(c Chunk) (string, error) {
	body := c.Body
	nul1 := bytes.IndexByte(body, 0)
	if nul1 == -1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iTXt", "missing NUL after keyword")
	}
	keyword := body[:nul1]
	if err := validateKeyword("iTXt", keyword); err != nil {
		return "", err
	}
	rest := body[nul1+1:]
	if len(rest) < 2 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iTXt", "missing compression flag/method")
	}
	flag := rest[0]
	method := rest[1]
	if flag != 0 && flag != 1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iTXt", fmt.Sprintf("compression flag must be 0 or 1, got %d", flag))
	}
	if flag == 1 && method != 0 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iTXt", fmt.Sprintf("unknown compression method: %d", method))
	}
	rest = rest[2:]

	nul2 := bytes.IndexByte(rest, 0)
	if nul2 == -1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iTXt", "missing NUL after language tag")
	}
	langTag := rest[:nul2]
	rest = rest[nul2+1:]

	nul3 := bytes.IndexByte(rest, 0)
	if nul3 == -1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iTXt", "missing NUL after translated keyword")
	}
	translated := rest[:nul3]
	text := rest[nul3+1:]

	line := fmt.Sprintf("iTXt  %s [%s/%s]: %d bytes text (compressed=%v)",
		string(keyword), string(langTag), string(translated), len(text), flag == 1)
	return line, nil
}
