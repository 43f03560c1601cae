// Package order implements the chunk-ordering validator: the set of rules
// in spec.md §3 and §4.6 governing which chunk kinds may follow which,
// independent of any chunk's own internal semantics.
package order

import (
	"fmt"

	"github.com/brnrdo/pngvet/internal/chunkset"
	"github.com/brnrdo/pngvet/internal/pngerr"
)

// singleInstance lists the chunk kinds that may appear at most once in a
// stream (spec.md §3).
var singleInstance = map[chunkset.Kind]bool{
	chunkset.KindIHDR: true, chunkset.KindIEND: true, chunkset.KindPLTE: true,
	chunkset.KindcHRM: true, chunkset.KindgAMA: true, chunkset.KindiCCP: true,
	chunkset.KindsBIT: true, chunkset.KindsRGB: true, chunkset.KindbKGD: true,
	chunkset.KindhIST: true, chunkset.KindtRNS: true, chunkset.KindpHYs: true,
	chunkset.KindtIME: true,
}

// Context is the OrderingContext of spec.md §3: a seen-flag per recognized
// chunk kind, IDAT contiguity/seal state, the colour-type gate, and the
// sPLT palette-name uniqueness set (spec.md's supplemented sPLT rule).
type Context struct {
	seen          map[chunkset.Kind]bool
	lastWasIDAT   bool
	afterIEND     bool
	colorType     chunkset.ColorType
	haveColorType bool
	spltNames     map[string]bool
}

// New returns a Context in its initial state, awaiting IHDR.
func New() *Context {
	return &Context{
		seen:      make(map[chunkset.Kind]bool),
		spltNames: make(map[string]bool),
	}
}

// SetColorType records IHDR's colour type; callers must call this exactly
// once, immediately after admitting IHDR.
func (c *Context) SetColorType(ct chunkset.ColorType) {
	c.colorType = ct
	c.haveColorType = true
}

// ColorType returns the colour type captured from IHDR.
func (c *Context) ColorType() chunkset.ColorType { return c.colorType }

// AfterIEND reports whether IEND has already sealed the stream.
func (c *Context) AfterIEND() bool { return c.afterIEND }

// Admit applies the order-validator transition for an incoming chunk of
// kind k (spec.md §4.6), rejecting with BadChunkOrder on any violation and
// otherwise updating the context to reflect the admitted chunk. typeName
// is the chunk's four-byte type code, used only for error detail.
//
// spltName is the decoded sPLT palette name when k is KindsPLT, ignored
// otherwise; pass "" for every other kind.
func (c *Context) Admit(k chunkset.Kind, typeName string, spltName string) error {
	if c.afterIEND {
		return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "chunk appears after IEND")
	}
	if k != chunkset.KindIHDR && !c.seen[chunkset.KindIHDR] {
		return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "IHDR must be the first chunk")
	}
	if k == chunkset.KindIHDR && c.seen[chunkset.KindIHDR] {
		return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "IHDR must appear exactly once")
	}

	if singleInstance[k] && c.seen[k] {
		return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, fmt.Sprintf("%s must appear at most once", k))
	}

	switch k {
	case chunkset.KindPLTE:
		if c.haveColorType && (c.colorType == chunkset.ColorGrayscale || c.colorType == chunkset.ColorGrayscaleAlpha) {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "PLTE forbidden for this color type")
		}
		if c.seen[chunkset.KindIDAT] || c.seen[chunkset.KindbKGD] || c.seen[chunkset.KindhIST] || c.seen[chunkset.KindtRNS] {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "PLTE must precede IDAT, bKGD, hIST, and tRNS")
		}
	case chunkset.KindcHRM, chunkset.KindgAMA, chunkset.KindiCCP, chunkset.KindsBIT, chunkset.KindsRGB:
		if c.seen[chunkset.KindPLTE] || c.seen[chunkset.KindIDAT] {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, fmt.Sprintf("%s must precede PLTE and IDAT", k))
		}
		if k == chunkset.KindiCCP && c.seen[chunkset.KindsRGB] {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "iCCP and sRGB are mutually exclusive")
		}
		if k == chunkset.KindsRGB && c.seen[chunkset.KindiCCP] {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "iCCP and sRGB are mutually exclusive")
		}
	case chunkset.KindbKGD, chunkset.KindtRNS:
		if c.seen[chunkset.KindIDAT] {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, fmt.Sprintf("%s must precede IDAT", k))
		}
	case chunkset.KindpHYs:
		if c.seen[chunkset.KindIDAT] {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "pHYs must precede IDAT")
		}
	case chunkset.KindhIST:
		if !c.seen[chunkset.KindPLTE] {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "hIST must follow PLTE")
		}
		if c.seen[chunkset.KindIDAT] {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "hIST must precede IDAT")
		}
	case chunkset.KindsPLT:
		if spltName != "" && c.spltNames[spltName] {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, fmt.Sprintf("duplicate sPLT palette name %q", spltName))
		}
	}

	if k == chunkset.KindIDAT {
		if c.seen[chunkset.KindIDAT] && !c.lastWasIDAT {
			return pngerr.ForChunk(pngerr.BadChunkOrder, typeName, "IDAT chunks must be contiguous")
		}
		c.lastWasIDAT = true
	} else {
		c.lastWasIDAT = false
	}

	c.seen[k] = true
	if k == chunkset.KindsPLT && spltName != "" {
		c.spltNames[spltName] = true
	}
	if k == chunkset.KindIEND {
		c.afterIEND = true
	}
	return nil
}

// Finish performs the terminal ordering checks of spec.md §3: the stream
// must have reached IEND, and PLTE must have appeared for an indexed-colour
// image. (PLTE for a colour type that forbids it is rejected in Admit.)
func (c *Context) Finish() error {
	if !c.afterIEND {
		return pngerr.New(pngerr.MissingIEND, "stream ended without IEND")
	}
	if c.haveColorType && c.colorType == chunkset.ColorIndexed && !c.seen[chunkset.KindPLTE] {
		return pngerr.ForChunk(pngerr.BadChunkOrder, "PLTE", "PLTE is required for indexed-color images")
	}
	return nil
}
