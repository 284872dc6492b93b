package embree

import (
	"testing"
	"unsafe"
)

func TestIntersectContextDefaults(t *testing.T) {
	ctx := NewIntersectContext(ContextIncoherent)
	if ctx.Flags != ContextIncoherent {
		t.Errorf("Flags = %d, want incoherent", ctx.Flags)
	}
	if ctx.Filter != nil {
		t.Error("new context has a filter")
	}
	if ctx.InstID[0] != InvalidID {
		t.Errorf("InstID = %#x, want InvalidID", ctx.InstID[0])
	}

	if c := CoherentContext(); c.Flags != ContextCoherent {
		t.Errorf("CoherentContext flags = %d", c.Flags)
	}
	if c := IncoherentContext(); c.Flags != ContextIncoherent {
		t.Errorf("IncoherentContext flags = %d", c.Flags)
	}
}

type transparencyExt struct {
	Accumulated float32
}

func TestContextExtension(t *testing.T) {
	ext := IncoherentContextExt(transparencyExt{Accumulated: 1})
	if ext.Ctx.Flags != ContextIncoherent || ext.Ctx.InstID[0] != InvalidID {
		t.Errorf("base context = %+v", ext.Ctx)
	}
	if unsafe.Pointer(&ext) != ContextPointer(&ext) {
		t.Fatal("base context is not at offset zero of the wrapper")
	}

	e, ok := ContextExtension[transparencyExt](&ext)
	if !ok || e != &ext.Ext {
		t.Fatal("ContextExtension did not return the stored extension")
	}

	ctx := NewIntersectContext(ContextCoherent)
	if _, ok := ContextExtension[transparencyExt](&ctx); ok {
		t.Error("plain context reported an extension")
	}
}

func TestContextExtFromBase(t *testing.T) {
	ext := CoherentContextExt(transparencyExt{Accumulated: 0.5})

	base := (*IntersectContext)(ContextPointer(&ext))
	got := ContextExtFromBase[transparencyExt](base)
	if got != &ext {
		t.Fatal("recovered wrapper is not the original")
	}
	got.Ext.Accumulated *= 0.5
	if ext.Ext.Accumulated != 0.25 {
		t.Errorf("Accumulated = %v, want 0.25", ext.Ext.Accumulated)
	}
}

func TestValidityN(t *testing.T) {
	mask := [4]int32{ValidMask, InvalidMask, ValidMask, InvalidMask}
	v := ValidityNOf(mask[:])
	if v.Width() != 4 {
		t.Fatalf("Width() = %d, want 4", v.Width())
	}
	for i, want := range []bool{true, false, true, false} {
		if v.IsValid(i) != want {
			t.Errorf("lane %d: IsValid = %v, want %v", i, v.IsValid(i), want)
		}
	}
	if !v.AnyValid() {
		t.Error("AnyValid() = false with valid lanes present")
	}

	v.SetValid(0, false)
	v.SetValid(2, false)
	if v.AnyValid() {
		t.Error("AnyValid() = true after clearing every lane")
	}
	if mask[0] != InvalidMask {
		t.Error("SetValid did not write through to the backing mask")
	}

	v.SetValid(1, true)
	if mask[1] != ValidMask {
		t.Errorf("mask[1] = %d, want ValidMask", mask[1])
	}
}

func TestValidityNFromPointer(t *testing.T) {
	mask := [8]int32{ValidMask}
	v := ValidityNFromPointer(unsafe.Pointer(&mask), 8)
	if v.Width() != 8 || !v.IsValid(0) || v.IsValid(1) {
		t.Errorf("view over raw mask misreads lanes")
	}

	defer func() {
		if recover() == nil {
			t.Error("unsupported width did not panic")
		}
	}()
	ValidityNFromPointer(unsafe.Pointer(&mask), 6)
}
