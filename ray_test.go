package embree

import (
	"math"
	"testing"
)

func TestNewRayDefaults(t *testing.T) {
	r := NewRay(Vec3{1, 2, 3}, Vec3{0, 1, 0})
	if got := r.Org(); got != (Vec3{1, 2, 3}) {
		t.Errorf("Org() = %v, want {1 2 3}", got)
	}
	if got := r.Dir(); got != (Vec3{0, 1, 0}) {
		t.Errorf("Dir() = %v, want {0 1 0}", got)
	}
	if r.Tnear != 0 {
		t.Errorf("Tnear = %v, want 0", r.Tnear)
	}
	if !math.IsInf(float64(r.Tfar), 1) {
		t.Errorf("Tfar = %v, want +Inf", r.Tfar)
	}
	if r.Mask != ^uint32(0) {
		t.Errorf("Mask = %#x, want all-ones", r.Mask)
	}
	if r.ID != 0 || r.Flags != 0 || r.Time != 0 {
		t.Errorf("ID/Flags/Time = %d/%d/%v, want 0/0/0", r.ID, r.Flags, r.Time)
	}
}

func TestNewRayWithID(t *testing.T) {
	r := NewRayWithID(Vec3{}, Vec3{0, 0, 1}, 42)
	if r.ID != 42 {
		t.Errorf("ID = %d, want 42", r.ID)
	}
}

func TestRaySegment(t *testing.T) {
	r := RaySegment(Vec3{0, 0, 0}, Vec3{0, 0, 1}, 0.5, 9.5)
	if r.Tnear != 0.5 || r.Tfar != 9.5 {
		t.Errorf("segment = [%v, %v], want [0.5, 9.5]", r.Tnear, r.Tfar)
	}
}

func TestRaySetters(t *testing.T) {
	var r Ray
	r.SetOrg(Vec3{4, 5, 6})
	r.SetDir(Vec3{7, 8, 9})
	if r.Org() != (Vec3{4, 5, 6}) || r.Dir() != (Vec3{7, 8, 9}) {
		t.Errorf("after SetOrg/SetDir: org %v dir %v", r.Org(), r.Dir())
	}
}

func TestDirNormalized(t *testing.T) {
	r := NewRay(Vec3{}, Vec3{3, 0, 4})
	got := r.DirNormalized()
	want := Vec3{0.6, 0, 0.8}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Fatalf("DirNormalized() = %v, want %v", got, want)
		}
	}
}

func TestDirNormalizedZero(t *testing.T) {
	r := NewRay(Vec3{}, Vec3{})
	got := r.DirNormalized()
	for i := range got {
		if !math.IsNaN(float64(got[i])) {
			t.Fatalf("DirNormalized() of zero dir = %v, want NaN components", got)
		}
	}
}

func TestRaySetInactive(t *testing.T) {
	r := NewRay(Vec3{}, Vec3{0, 0, 1})
	r.SetInactive()
	if !(r.Tfar < r.Tnear) {
		t.Errorf("after SetInactive: tnear %v tfar %v, want tfar < tnear", r.Tnear, r.Tfar)
	}
}
