package chunkset

import (
	"github.com/brnrdo/pngvet/internal/pngerr"
)

// Result is what a chunk validator produces: a human-readable description
// line, and, for IHDR only, the decoded header (needed by the caller to
// seed the colour-type context for later chunks).
type Result struct {
	Line string
	IHDR *IHDR
}

// Validate dispatches a CRC-verified, type-code-verified chunk to its
// per-type semantic validator (spec.md §4.4, §4.5). colorType is the
// running colour-type context captured from IHDR; it is only consulted by
// bKGD and sBIT (PLTE and tRNS are ordering/opacity concerns handled
// elsewhere).
func Validate(c Chunk, colorType ColorType) (Result, error) {
	switch c.Kind() {
	case KindIHDR:
		h, line, err := validateIHDR(c)
		if err != nil {
			return Result{}, err
		}
		return Result{Line: line, IHDR: &h}, nil
	case KindIDAT:
		line, err := validateIDAT(c)
		return Result{Line: line}, err
	case KindIEND:
		line, err := validateIEND(c)
		return Result{Line: line}, err
	case KindPLTE:
		line, err := validatePLTE(c)
		return Result{Line: line}, err
	case KindtIME:
		line, err := validateTIME(c)
		return Result{Line: line}, err
	case KindcHRM:
		line, err := validateCHRM(c)
		return Result{Line: line}, err
	case KindgAMA:
		line, err := validateGAMA(c)
		return Result{Line: line}, err
	case KindtEXt:
		line, err := validateTEXt(c)
		return Result{Line: line}, err
	case KindzTXt:
		line, err := validateZTXt(c)
		return Result{Line: line}, err
	case KindiCCP:
		line, err := validateICCP(c)
		return Result{Line: line}, err
	case KindiTXt:
		line, err := validateITXt(c)
		return Result{Line: line}, err
	case KindsPLT:
		line, err := validateSPLT(c)
		return Result{Line: line}, err
	case KindbKGD:
		line, err := validateBKGD(c, colorType)
		return Result{Line: line}, err
	case KindsBIT:
		line, err := validateSBIT(c, colorType)
		return Result{Line: line}, err
	case KindpHYs:
		line, err := validatePHYs(c)
		return Result{Line: line}, err
	case KindsRGB:
		line, err := validateSRGB(c)
		return Result{Line: line}, err
	case KindtRNS:
		line, err := validateTRNS(c)
		return Result{Line: line}, err
	case KindhIST:
		line, err := validateHIST(c)
		return Result{Line: line}, err
	default: // KindUnknown
		if !c.Critical() {
			return Result{Line: hexDump(c.TypeString(), c.Body)}, nil
		}
		return Result{}, pngerr.ForChunk(pngerr.UnknownCriticalChunk, c.TypeString(), "unrecognized critical chunk")
	}
}
