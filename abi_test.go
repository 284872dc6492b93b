package embree

import (
	"testing"
	"unsafe"

	"github.com/matthiascy/embree-go/internal/abi"
)

// The kernel addresses packet fields as flat 32-bit words at
// field*width + lane. These tests pin the Go struct layouts to the word
// tables in internal/abi so a struct edit cannot silently break the wire
// format.

func TestRayLayout(t *testing.T) {
	var r Ray
	fields := []struct {
		name string
		off  uintptr
		word int
	}{
		{"OrgX", unsafe.Offsetof(r.OrgX), abi.RayOrgX},
		{"OrgY", unsafe.Offsetof(r.OrgY), abi.RayOrgY},
		{"OrgZ", unsafe.Offsetof(r.OrgZ), abi.RayOrgZ},
		{"Tnear", unsafe.Offsetof(r.Tnear), abi.RayTnear},
		{"DirX", unsafe.Offsetof(r.DirX), abi.RayDirX},
		{"DirY", unsafe.Offsetof(r.DirY), abi.RayDirY},
		{"DirZ", unsafe.Offsetof(r.DirZ), abi.RayDirZ},
		{"Time", unsafe.Offsetof(r.Time), abi.RayTime},
		{"Tfar", unsafe.Offsetof(r.Tfar), abi.RayTfar},
		{"Mask", unsafe.Offsetof(r.Mask), abi.RayMask},
		{"ID", unsafe.Offsetof(r.ID), abi.RayID},
		{"Flags", unsafe.Offsetof(r.Flags), abi.RayFlags},
	}
	for _, f := range fields {
		if f.off != uintptr(f.word)*4 {
			t.Errorf("Ray.%s offset = %d, want word %d (byte %d)", f.name, f.off, f.word, f.word*4)
		}
	}
	if got := unsafe.Sizeof(r); got != abi.RayWords*4 {
		t.Errorf("Sizeof(Ray) = %d, want %d", got, abi.RayWords*4)
	}
}

func TestHitLayout(t *testing.T) {
	var h Hit
	fields := []struct {
		name string
		off  uintptr
		word int
	}{
		{"NgX", unsafe.Offsetof(h.NgX), abi.HitNgX},
		{"NgY", unsafe.Offsetof(h.NgY), abi.HitNgY},
		{"NgZ", unsafe.Offsetof(h.NgZ), abi.HitNgZ},
		{"U", unsafe.Offsetof(h.U), abi.HitU},
		{"V", unsafe.Offsetof(h.V), abi.HitV},
		{"PrimID", unsafe.Offsetof(h.PrimID), abi.HitPrimID},
		{"GeomID", unsafe.Offsetof(h.GeomID), abi.HitGeomID},
		{"InstID", unsafe.Offsetof(h.InstID), abi.HitInstID},
	}
	for _, f := range fields {
		if f.off != uintptr(f.word)*4 {
			t.Errorf("Hit.%s offset = %d, want word %d (byte %d)", f.name, f.off, f.word, f.word*4)
		}
	}
	if got := unsafe.Sizeof(h); got != abi.HitWords*4 {
		t.Errorf("Sizeof(Hit) = %d, want %d", got, abi.HitWords*4)
	}
}

func TestRayHitLayout(t *testing.T) {
	var rh RayHit
	if off := unsafe.Offsetof(rh.Hit); off != abi.RayWords*4 {
		t.Errorf("RayHit.Hit offset = %d, want %d", off, abi.RayWords*4)
	}
	if got := unsafe.Sizeof(rh); got != abi.RayHitWords*4 {
		t.Errorf("Sizeof(RayHit) = %d, want %d", got, abi.RayHitWords*4)
	}
}

func TestPacketLayout(t *testing.T) {
	var p Ray4
	fields := []struct {
		name string
		off  uintptr
		word int
	}{
		{"orgX", unsafe.Offsetof(p.orgX), abi.RayOrgX},
		{"orgY", unsafe.Offsetof(p.orgY), abi.RayOrgY},
		{"orgZ", unsafe.Offsetof(p.orgZ), abi.RayOrgZ},
		{"tnear", unsafe.Offsetof(p.tnear), abi.RayTnear},
		{"dirX", unsafe.Offsetof(p.dirX), abi.RayDirX},
		{"dirY", unsafe.Offsetof(p.dirY), abi.RayDirY},
		{"dirZ", unsafe.Offsetof(p.dirZ), abi.RayDirZ},
		{"time", unsafe.Offsetof(p.time), abi.RayTime},
		{"tfar", unsafe.Offsetof(p.tfar), abi.RayTfar},
		{"mask", unsafe.Offsetof(p.mask), abi.RayMask},
		{"id", unsafe.Offsetof(p.id), abi.RayID},
		{"flags", unsafe.Offsetof(p.flags), abi.RayFlags},
	}
	for _, f := range fields {
		if f.off != uintptr(f.word)*4*4 {
			t.Errorf("Ray4.%s offset = %d, want %d", f.name, f.off, f.word*4*4)
		}
	}

	sizes := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Ray4", unsafe.Sizeof(Ray4{}), 4 * abi.RayWords * 4},
		{"Ray8", unsafe.Sizeof(Ray8{}), 8 * abi.RayWords * 4},
		{"Ray16", unsafe.Sizeof(Ray16{}), 16 * abi.RayWords * 4},
		{"Hit4", unsafe.Sizeof(Hit4{}), 4 * abi.HitWords * 4},
		{"Hit8", unsafe.Sizeof(Hit8{}), 8 * abi.HitWords * 4},
		{"Hit16", unsafe.Sizeof(Hit16{}), 16 * abi.HitWords * 4},
		{"RayHit4", unsafe.Sizeof(RayHit4{}), 4 * abi.RayHitWords * 4},
		{"RayHit8", unsafe.Sizeof(RayHit8{}), 8 * abi.RayHitWords * 4},
		{"RayHit16", unsafe.Sizeof(RayHit16{}), 16 * abi.RayHitWords * 4},
	}
	for _, s := range sizes {
		if s.got != s.want {
			t.Errorf("Sizeof(%s) = %d, want %d", s.name, s.got, s.want)
		}
	}

	var rh RayHit4
	if off := unsafe.Offsetof(rh.Hit); off != 4*abi.RayWords*4 {
		t.Errorf("RayHit4.Hit offset = %d, want %d", off, 4*abi.RayWords*4)
	}
}

func TestSupportedWidth(t *testing.T) {
	for _, n := range []int{1, 4, 8, 16} {
		if !abi.SupportedWidth(n) {
			t.Errorf("SupportedWidth(%d) = false, want true", n)
		}
	}
	for _, n := range []int{0, 2, 3, 5, 7, 9, 15, 17, 32, -1} {
		if abi.SupportedWidth(n) {
			t.Errorf("SupportedWidth(%d) = true, want false", n)
		}
	}
}
