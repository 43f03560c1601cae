package chunkset

import (
	"bytes"
	"fmt"

	"github.com/brnrdo/pngvet/internal/pngerr"
)

func validateKeyword(kind string, kw []byte) error {
	if len(kw) < 1 || len(kw) > 79 {
		return pngerr.ForChunk(pngerr.BadChunkBody, kind,
			fmt.Sprintf("keyword length must be in [1,79], got %d", len(kw)))
	}
	return nil
}

func validateTEXt(c Chunk) (string, error) {
	if len(c.Body) < 2 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "tEXt",
			fmt.Sprintf("body must be at least 2 bytes, got %d", len(c.Body)))
	}
	nulIdx := bytes.IndexByte(c.Body, 0)
	if nulIdx == -1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "tEXt", "missing NUL separator")
	}
	if bytes.IndexByte(c.Body[nulIdx+1:], 0) != -1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "tEXt", "more than one NUL byte in body")
	}
	keyword := c.Body[:nulIdx]
	if err := validateKeyword("tEXt", keyword); err != nil {
		return "", err
	}
	text := decodeLatin1(c.Body[nulIdx+1:])
	return fmt.Sprintf("tEXt  %s: %s", decodeLatin1(keyword), text), nil
}

func validateZTXt(c Chunk) (string, error) {
	if len(c.Body) < 3 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "zTXt",
			fmt.Sprintf("body must be at least 3 bytes, got %d", len(c.Body)))
	}
	nulIdx := bytes.IndexByte(c.Body, 0)
	if nulIdx == -1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "zTXt", "missing NUL separator")
	}
	keyword := c.Body[:nulIdx]
	if err := validateKeyword("zTXt", keyword); err != nil {
		return "", err
	}
	rest := c.Body[nulIdx+1:]
	if len(rest) < 2 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "zTXt", "missing compression method and data")
	}
	method := rest[0]
	if method != 0 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "zTXt",
			fmt.Sprintf("unknown compression method: %d", method))
	}
	compressed := rest[1:]
	if len(compressed) < 1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "zTXt", "compressed data must be at least 1 byte")
	}
	return fmt.Sprintf("zTXt  %s: %d compressed bytes", decodeLatin1(keyword), len(compressed)), nil
}

// iCCP profile-name rules match tEXt's keyword rules, plus the charset
// restriction from spec.md §4.5.
func validateICCPName(name []byte) error {
	if err := validateKeyword("iCCP", name); err != nil {
		return err
	}
	if name[0] == ' ' || name[len(name)-1] == ' ' {
		return pngerr.ForChunk(pngerr.BadChunkBody, "iCCP", "profile name has leading or trailing space")
	}
	prevSpace := false
	for _, b := range name {
		printable := (b >= 32 && b <= 126) || (b >= 161 && b <= 255)
		if !printable {
			return pngerr.ForChunk(pngerr.BadChunkBody, "iCCP",
				fmt.Sprintf("profile name byte %d out of allowed ranges", b))
		}
		if b == ' ' {
			if prevSpace {
				return pngerr.ForChunk(pngerr.BadChunkBody, "iCCP", "profile name has consecutive spaces")
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
	}
	return nil
}

func validateICCP(c Chunk) (string, error) {
	if len(c.Body) < 3 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iCCP",
			fmt.Sprintf("body must be at least 3 bytes, got %d", len(c.Body)))
	}
	nulIdx := bytes.IndexByte(c.Body, 0)
	if nulIdx == -1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iCCP", "missing NUL separator after profile name")
	}
	name := c.Body[:nulIdx]
	if err := validateICCPName(name); err != nil {
		return "", err
	}
	rest := c.Body[nulIdx+1:]
	if len(rest) < 2 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iCCP", "missing compression method and data")
	}
	method := rest[0]
	if method != 0 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iCCP",
			fmt.Sprintf("unknown compression method: %d", method))
	}
	compressed := rest[1:]
	if len(compressed) < 1 {
		return "", pngerr.ForChunk(pngerr.BadChunkBody, "iCCP", "compressed profile must be at least 1 byte")
	}
	return fmt.Sprintf("iCCP  %s: %d compressed bytes", decodeLatin1(name), len(compressed)), nil
}
