package embree

import "iter"

// SoARay is the per-lane accessor contract shared by every
// structure-of-arrays ray container: fixed-width packets (Ray4, Ray8,
// Ray16) and runtime-width views (RayN). Lane indices must be below
// Width(); out-of-range access panics.
type SoARay interface {
	// Width returns the number of lanes in the container.
	Width() int

	Org(i int) Vec3
	SetOrg(i int, o Vec3)
	Dir(i int) Vec3
	SetDir(i int, d Vec3)
	Tnear(i int) float32
	SetTnear(i int, t float32)
	Tfar(i int) float32
	SetTfar(i int, t float32)
	Time(i int) float32
	SetTime(i int, t float32)
	Mask(i int) uint32
	SetMask(i int, m uint32)
	ID(i int) uint32
	SetID(i int, id uint32)
	Flags(i int) uint32
	SetFlags(i int, f uint32)
}

// SoAHit is the per-lane accessor contract shared by every
// structure-of-arrays hit container: fixed-width packets (Hit4, Hit8,
// Hit16) and runtime-width views (HitN).
type SoAHit interface {
	// Width returns the number of lanes in the container.
	Width() int

	Normal(i int) Vec3
	SetNormal(i int, n Vec3)
	// UnitNormal returns the lane's normal scaled to unit length, or the
	// zero vector when the stored normal has zero length.
	UnitNormal(i int) Vec3
	UV(i int) Vec2
	SetU(i int, u float32)
	SetV(i int, v float32)
	PrimID(i int) uint32
	SetPrimID(i int, id uint32)
	GeomID(i int) uint32
	SetGeomID(i int, id uint32)
	InstID(i int) uint32
	SetInstID(i int, id uint32)
}

// SoARayRef is a view of a single lane of a SoA ray container. It exposes
// the scalar ray surface, so code written against one ray works unchanged
// per lane over packets and runtime views. Setters write through to the
// underlying container.
type SoARayRef struct {
	ray  SoARay
	lane int
}

// RayRef returns a view of lane i of r.
func RayRef(r SoARay, i int) SoARayRef { return SoARayRef{ray: r, lane: i} }

// Lane returns the lane index this ref points at.
func (r SoARayRef) Lane() int { return r.lane }

func (r SoARayRef) Org() Vec3          { return r.ray.Org(r.lane) }
func (r SoARayRef) SetOrg(o Vec3)      { r.ray.SetOrg(r.lane, o) }
func (r SoARayRef) Dir() Vec3          { return r.ray.Dir(r.lane) }
func (r SoARayRef) SetDir(d Vec3)      { r.ray.SetDir(r.lane, d) }
func (r SoARayRef) Tnear() float32     { return r.ray.Tnear(r.lane) }
func (r SoARayRef) SetTnear(t float32) { r.ray.SetTnear(r.lane, t) }
func (r SoARayRef) Tfar() float32      { return r.ray.Tfar(r.lane) }
func (r SoARayRef) SetTfar(t float32)  { r.ray.SetTfar(r.lane, t) }
func (r SoARayRef) Time() float32      { return r.ray.Time(r.lane) }
func (r SoARayRef) SetTime(t float32)  { r.ray.SetTime(r.lane, t) }
func (r SoARayRef) Mask() uint32       { return r.ray.Mask(r.lane) }
func (r SoARayRef) SetMask(m uint32)   { r.ray.SetMask(r.lane, m) }
func (r SoARayRef) ID() uint32         { return r.ray.ID(r.lane) }
func (r SoARayRef) SetID(id uint32)    { r.ray.SetID(r.lane, id) }
func (r SoARayRef) Flags() uint32      { return r.ray.Flags(r.lane) }
func (r SoARayRef) SetFlags(f uint32)  { r.ray.SetFlags(r.lane, f) }

// HitPoint returns org + dir*tfar for this lane.
func (r SoARayRef) HitPoint() Vec3 {
	o := r.Org()
	d := r.Dir()
	t := r.Tfar()
	return Vec3{o[0] + d[0]*t, o[1] + d[1]*t, o[2] + d[2]*t}
}

// SoAHitRef is a view of a single lane of a SoA hit container. Setters
// write through to the underlying container.
type SoAHitRef struct {
	hit  SoAHit
	lane int
}

// HitRef returns a view of lane i of h.
func HitRef(h SoAHit, i int) SoAHitRef { return SoAHitRef{hit: h, lane: i} }

// Lane returns the lane index this ref points at.
func (h SoAHitRef) Lane() int { return h.lane }

func (h SoAHitRef) Normal() Vec3        { return h.hit.Normal(h.lane) }
func (h SoAHitRef) SetNormal(n Vec3)    { h.hit.SetNormal(h.lane, n) }
func (h SoAHitRef) UnitNormal() Vec3    { return h.hit.UnitNormal(h.lane) }
func (h SoAHitRef) UV() Vec2            { return h.hit.UV(h.lane) }
func (h SoAHitRef) SetU(u float32)      { h.hit.SetU(h.lane, u) }
func (h SoAHitRef) SetV(v float32)      { h.hit.SetV(h.lane, v) }
func (h SoAHitRef) PrimID() uint32      { return h.hit.PrimID(h.lane) }
func (h SoAHitRef) SetPrimID(id uint32) { h.hit.SetPrimID(h.lane, id) }
func (h SoAHitRef) GeomID() uint32      { return h.hit.GeomID(h.lane) }
func (h SoAHitRef) SetGeomID(id uint32) { h.hit.SetGeomID(h.lane, id) }
func (h SoAHitRef) InstID() uint32      { return h.hit.InstID(h.lane) }
func (h SoAHitRef) SetInstID(id uint32) { h.hit.SetInstID(h.lane, id) }

// IsValid reports whether this lane records an actual intersection.
func (h SoAHitRef) IsValid() bool { return h.hit.GeomID(h.lane) != InvalidID }

// RayLanes iterates the lanes of a SoA ray container in ascending lane
// order. The sequence is finite and restartable: ranging over it again
// starts from lane 0.
func RayLanes(r SoARay) iter.Seq2[int, SoARayRef] {
	return func(yield func(int, SoARayRef) bool) {
		for i := 0; i < r.Width(); i++ {
			if !yield(i, SoARayRef{ray: r, lane: i}) {
				return
			}
		}
	}
}

// HitLanes iterates the lanes of a SoA hit container in ascending lane
// order. The sequence is finite and restartable.
func HitLanes(h SoAHit) iter.Seq2[int, SoAHitRef] {
	return func(yield func(int, SoAHitRef) bool) {
		for i := 0; i < h.Width(); i++ {
			if !yield(i, SoAHitRef{hit: h, lane: i}) {
				return
			}
		}
	}
}

// ValidHits iterates only the lanes of h that record an actual
// intersection, in ascending lane order.
func ValidHits(h SoAHit) iter.Seq2[int, SoAHitRef] {
	return func(yield func(int, SoAHitRef) bool) {
		for i := 0; i < h.Width(); i++ {
			if h.GeomID(i) == InvalidID {
				continue
			}
			if !yield(i, SoAHitRef{hit: h, lane: i}) {
				return
			}
		}
	}
}

// RayHitLanes iterates ray and hit lanes pairwise, index-synchronized. Both
// containers must have the same width.
func RayHitLanes(r SoARay, h SoAHit) iter.Seq2[SoARayRef, SoAHitRef] {
	return func(yield func(SoARayRef, SoAHitRef) bool) {
		n := r.Width()
		for i := 0; i < n; i++ {
			if !yield(SoARayRef{ray: r, lane: i}, SoAHitRef{hit: h, lane: i}) {
				return
			}
		}
	}
}
