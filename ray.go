package embree

import "math"

// Ray is a single ray in the kernel's fixed memory layout.
//
// The ray holds the origin (OrgX, OrgY, OrgZ), the direction (DirX, DirY,
// DirZ) and the valid parametric segment [Tnear, Tfar]. The direction does
// not need to be normalized; only the segment is considered during
// traversal. The segment must lie in [0, +Inf) — ranges starting behind the
// origin are not allowed, but a segment may reach to infinity. Inside a ray
// stream, Tfar < Tnear marks an inactive ray.
//
// The kernel writes only Tfar (the distance of the nearest hit found); for
// occlusion queries it sets Tfar to -Inf when the segment is occluded. All
// other fields are owned by the caller.
//
// ID is a caller-assigned identifier that survives packet reordering inside
// the kernel, so a callback can tell rays apart. Mask is a visibility
// bitmask matched against geometry masks.
//
// The field order is the kernel's ABI (see internal/abi) and must not be
// rearranged.
type Ray struct {
	OrgX, OrgY, OrgZ float32
	Tnear            float32
	DirX, DirY, DirZ float32
	Time             float32
	Tfar             float32
	Mask             uint32
	ID               uint32
	Flags            uint32
}

// NewRay creates a ray from origin heading in direction dir with the
// default segment [0, +Inf).
func NewRay(origin, dir Vec3) Ray {
	return RaySegment(origin, dir, 0, float32(math.Inf(1)))
}

// NewRayWithID is NewRay with a caller-assigned ray identifier.
func NewRayWithID(origin, dir Vec3, id uint32) Ray {
	r := NewRay(origin, dir)
	r.ID = id
	return r
}

// RaySegment creates a ray with an explicit parametric segment
// [tnear, tfar]. The kernel only considers lanes with tnear >= 0; that
// precondition is documented, not checked here.
func RaySegment(origin, dir Vec3, tnear, tfar float32) Ray {
	return Ray{
		OrgX:  origin[0],
		OrgY:  origin[1],
		OrgZ:  origin[2],
		Tnear: tnear,
		DirX:  dir[0],
		DirY:  dir[1],
		DirZ:  dir[2],
		Tfar:  tfar,
		Mask:  ^uint32(0),
	}
}

// Org returns the origin of the ray.
func (r *Ray) Org() Vec3 { return Vec3{r.OrgX, r.OrgY, r.OrgZ} }

// SetOrg sets the origin of the ray.
func (r *Ray) SetOrg(o Vec3) { r.OrgX, r.OrgY, r.OrgZ = o[0], o[1], o[2] }

// Dir returns the (un-normalized) direction of the ray.
func (r *Ray) Dir() Vec3 { return Vec3{r.DirX, r.DirY, r.DirZ} }

// SetDir sets the direction of the ray.
func (r *Ray) SetDir(d Vec3) { r.DirX, r.DirY, r.DirZ = d[0], d[1], d[2] }

// DirNormalized returns the direction scaled to unit length.
// A zero direction produces NaN components.
func (r *Ray) DirNormalized() Vec3 {
	d := r.Dir()
	inv := 1.0 / float32(math.Sqrt(float64(d[0]*d[0]+d[1]*d[1]+d[2]*d[2])))
	return Vec3{d[0] * inv, d[1] * inv, d[2] * inv}
}

// SetInactive marks the ray inactive for stream queries by writing a
// segment with Tfar < Tnear.
func (r *Ray) SetInactive() {
	r.Tnear = 0
	r.Tfar = float32(math.Inf(-1))
}
