package order

import (
	"errors"
	"testing"

	"github.com/brnrdo/pngvet/internal/chunkset"
	"github.com/brnrdo/pngvet/internal/pngerr"
)

func TestIHDRMustBeFirst(t *testing.T) {
	ctx := New()
	if err := ctx.Admit(chunkset.KindIDAT, "IDAT", ""); err == nil {
		t.Fatal("expected error admitting IDAT before IHDR")
	}
}

func TestDoubleIHDRRejected(t *testing.T) {
	ctx := New()
	if err := ctx.Admit(chunkset.KindIHDR, "IHDR", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx.SetColorType(chunkset.ColorTruecolor)
	if err := ctx.Admit(chunkset.KindIHDR, "IHDR", ""); err == nil {
		t.Fatal("expected error on second IHDR")
	}
}

func TestNonContiguousIDATRejected(t *testing.T) {
	ctx := New()
	_ = ctx.Admit(chunkset.KindIHDR, "IHDR", "")
	ctx.SetColorType(chunkset.ColorTruecolor)
	_ = ctx.Admit(chunkset.KindIDAT, "IDAT", "")
	_ = ctx.Admit(chunkset.KindtEXt, "tEXt", "")
	if err := ctx.Admit(chunkset.KindIDAT, "IDAT", ""); err == nil {
		t.Fatal("expected BadChunkOrder for non-contiguous IDAT")
	}
}

func TestPLTEForbiddenForGrayscale(t *testing.T) {
	ctx := New()
	_ = ctx.Admit(chunkset.KindIHDR, "IHDR", "")
	ctx.SetColorType(chunkset.ColorGrayscale)
	err := ctx.Admit(chunkset.KindPLTE, "PLTE", "")
	if err == nil {
		t.Fatal("expected PLTE to be rejected for grayscale")
	}
	var pe *pngerr.Error
	if !errors.As(err, &pe) || pe.Code != pngerr.BadChunkOrder {
		t.Fatalf("expected BadChunkOrder, got %v", err)
	}
}

func TestPLTERequiredForIndexedAtFinish(t *testing.T) {
	ctx := New()
	_ = ctx.Admit(chunkset.KindIHDR, "IHDR", "")
	ctx.SetColorType(chunkset.ColorIndexed)
	_ = ctx.Admit(chunkset.KindIDAT, "IDAT", "")
	_ = ctx.Admit(chunkset.KindIEND, "IEND", "")
	if err := ctx.Finish(); err == nil {
		t.Fatal("expected PLTE-required error for indexed color at finish")
	}
}

func TestNoChunkAfterIEND(t *testing.T) {
	ctx := New()
	_ = ctx.Admit(chunkset.KindIHDR, "IHDR", "")
	ctx.SetColorType(chunkset.ColorTruecolor)
	_ = ctx.Admit(chunkset.KindIDAT, "IDAT", "")
	_ = ctx.Admit(chunkset.KindIEND, "IEND", "")
	if err := ctx.Admit(chunkset.KindtEXt, "tEXt", ""); err == nil {
		t.Fatal("expected error admitting a chunk after IEND")
	}
}

func TestHISTMustFollowPLTE(t *testing.T) {
	ctx := New()
	_ = ctx.Admit(chunkset.KindIHDR, "IHDR", "")
	ctx.SetColorType(chunkset.ColorIndexed)
	if err := ctx.Admit(chunkset.KindhIST, "hIST", ""); err == nil {
		t.Fatal("expected error admitting hIST before PLTE")
	}
}

func TestICCPAndSRGBMutuallyExclusive(t *testing.T) {
	ctx := New()
	_ = ctx.Admit(chunkset.KindIHDR, "IHDR", "")
	ctx.SetColorType(chunkset.ColorTruecolor)
	_ = ctx.Admit(chunkset.KindiCCP, "iCCP", "")
	if err := ctx.Admit(chunkset.KindsRGB, "sRGB", ""); err == nil {
		t.Fatal("expected sRGB to be rejected after iCCP")
	}
}

func TestDuplicateSPLTName(t *testing.T) {
	ctx := New()
	_ = ctx.Admit(chunkset.KindIHDR, "IHDR", "")
	ctx.SetColorType(chunkset.ColorTruecolor)
	_ = ctx.Admit(chunkset.KindsPLT, "sPLT", "palette-a")
	if err := ctx.Admit(chunkset.KindsPLT, "sPLT", "palette-a"); err == nil {
		t.Fatal("expected duplicate sPLT name to be rejected")
	}
}
