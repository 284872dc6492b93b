package embree

// RayHit pairs a ray with a hit. It is the input and output of an intersect
// query: the caller fills in the ray and resets the hit, the kernel writes
// the nearest intersection into the hit and its distance into Ray.Tfar.
//
// The ray region is immediately followed by the hit region, matching the
// kernel's combined record layout (see internal/abi).
type RayHit struct {
	Ray Ray
	Hit Hit
}

// NewRayHit creates a RayHit ready to be passed to an intersect query: the
// hit portion is reset to the "no intersection" state.
func NewRayHit(ray Ray) RayHit {
	return RayHit{Ray: ray, Hit: NewHit()}
}

// IsValid reports whether the query found an intersection. It is decidable
// purely from the hit's GeomID.
func (rh *RayHit) IsValid() bool { return rh.Hit.GeomID != InvalidID }

// HitPoint returns org + dir*tfar, the position of the recorded hit along
// the ray. Only meaningful after a query for which IsValid reports true.
func (rh *RayHit) HitPoint() Vec3 {
	t := rh.Ray.Tfar
	return Vec3{
		rh.Ray.OrgX + rh.Ray.DirX*t,
		rh.Ray.OrgY + rh.Ray.DirY*t,
		rh.Ray.OrgZ + rh.Ray.DirZ*t,
	}
}
