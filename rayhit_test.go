package embree

import (
	"math"
	"testing"
)

func TestNewRayHit(t *testing.T) {
	rh := NewRayHit(NewRay(Vec3{1, 0, 0}, Vec3{0, 1, 0}))
	if rh.IsValid() {
		t.Error("fresh RayHit is valid, want invalid")
	}
	if rh.Ray.Org() != (Vec3{1, 0, 0}) {
		t.Errorf("ray origin = %v, want {1 0 0}", rh.Ray.Org())
	}
}

func TestRayHitValidity(t *testing.T) {
	rh := NewRayHit(NewRay(Vec3{}, Vec3{0, 0, 1}))
	rh.Hit.GeomID = 3
	if !rh.IsValid() {
		t.Error("IsValid() = false after GeomID set, want true")
	}
	rh.Hit.GeomID = InvalidID
	if rh.IsValid() {
		t.Error("IsValid() = true with sentinel GeomID, want false")
	}
}

func TestRayHitHitPoint(t *testing.T) {
	rh := NewRayHit(NewRay(Vec3{0, 0, 0}, Vec3{1, 0, 0}))
	rh.Ray.Tfar = 2.0
	got := rh.HitPoint()
	want := Vec3{2, 0, 0}
	for i := range got {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Fatalf("HitPoint() = %v, want %v", got, want)
		}
	}
}

func TestRayHitHitPointOffset(t *testing.T) {
	rh := NewRayHit(RaySegment(Vec3{1, 2, 3}, Vec3{0, -1, 0.5}, 0, 4))
	got := rh.HitPoint()
	want := Vec3{1, -2, 5}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Fatalf("HitPoint() = %v, want %v", got, want)
		}
	}
}
