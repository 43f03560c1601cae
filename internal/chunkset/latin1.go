package chunkset

import "golang.org/x/text/encoding/charmap"

// decodeLatin1 converts ISO-8859-1 bytes (the charset PNG's tEXt, zTXt and
// iCCP keyword/text fields use) into a Go string, rather than assuming the
// bytes already happen to be valid UTF-8.
func decodeLatin1(p []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(p)
	if err != nil {
		// ISO-8859-1 maps every byte value to a rune; the decoder cannot
		// fail in practice, but fall back to a lossy cast rather than
		// panic if it ever does.
		return string(p)
	}
	return string(out)
}
