package chunkset

import (
	"fmt"
	"strings"
)

// hexDumpLimit is the number of leading bytes shown for an opaque chunk
// body, per spec.md §4.4 ("hex-dump up to the first 17-20 bytes").
const hexDumpLimit = 20

// hexDump renders an opaque chunk body as a truncation-indicated hex dump,
// used for unknown ancillary chunks and for chunk types this validator
// treats as opaque (IDAT, tRNS, hIST, sPLT's own hex fallback is unused
// since sPLT has a structured validator, but IDAT remains opaque per
// spec.md §1: "does not decode pixel data").
func hexDump(kind string, body []byte) string {
	n := len(body)
	shown := n
	truncated := false
	if shown > hexDumpLimit {
		shown = hexDumpLimit
		truncated = true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %d bytes  ", kind, n)
	for i := 0; i < shown; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", body[i])
	}
	if truncated {
		sb.WriteString(" ...")
	}
	return sb.String()
}
