package embree

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/matthiascy/embree-go/internal/abi"
)

// The runtime-width views below are the only place raw kernel pointers are
// reinterpreted. Each constructor turns the pointer into plain Go slices
// once (one float32 view and one uint32 view of the same words); every
// accessor after that indexes the slices with the flat SoA addressing
// field*width + lane from internal/abi, after checking the lane against
// the view's width.

// RayN is a non-owning view of a ray packet whose width is known only at
// runtime. The kernel hands such packets to callbacks together with their
// width; the width is always supplied by the caller, never inferred.
//
// The view borrows the kernel's buffer for the duration of one callback
// invocation and must not be retained past it. Lane access is checked
// against the supplied width, not the physical buffer size: an
// out-of-range lane panics instead of aliasing a neighboring field.
type RayN struct {
	f []float32
	u []uint32
	n int
}

// RayNFromPointer creates a ray view over the buffer at p with the width
// the kernel reported. Panics if n is not 1, 4, 8 or 16.
//
// p must point at a ray region laid out per internal/abi and must stay
// alive for the lifetime of the view.
func RayNFromPointer(p unsafe.Pointer, n int) RayN {
	checkWidth(n)
	words := abi.RayWords * n
	return RayN{
		f: unsafe.Slice((*float32)(p), words),
		u: unsafe.Slice((*uint32)(p), words),
		n: n,
	}
}

func checkWidth(n int) {
	if !abi.SupportedWidth(n) {
		panic(fmt.Sprintf("embree: unsupported packet width %d", n))
	}
}

func checkLane(i, n int) {
	if uint(i) >= uint(n) {
		panic(fmt.Sprintf("embree: lane %d out of range for width %d", i, n))
	}
}

// View returns a width-1 runtime view over the scalar ray.
func (r *Ray) View() RayN { return RayNFromPointer(unsafe.Pointer(r), 1) }

// View returns a runtime view over the packet's own storage.
func (p *RayPacket[F, U]) View() RayN {
	return RayNFromPointer(unsafe.Pointer(p), p.Width())
}

// Width returns the number of rays in the view.
func (r RayN) Width() int { return r.n }

// IsEmpty reports whether the view has no lanes.
func (r RayN) IsEmpty() bool { return r.n == 0 }

// lane checks i against the view's width and returns the word index of
// field f for that lane.
func (r RayN) lane(f, i int) int {
	checkLane(i, r.n)
	return f*r.n + i
}

// Org returns the origin of lane i.
func (r RayN) Org(i int) Vec3 {
	checkLane(i, r.n)
	return Vec3{
		r.f[abi.RayOrgX*r.n+i],
		r.f[abi.RayOrgY*r.n+i],
		r.f[abi.RayOrgZ*r.n+i],
	}
}

// SetOrg sets the origin of lane i.
func (r RayN) SetOrg(i int, o Vec3) {
	checkLane(i, r.n)
	r.f[abi.RayOrgX*r.n+i] = o[0]
	r.f[abi.RayOrgY*r.n+i] = o[1]
	r.f[abi.RayOrgZ*r.n+i] = o[2]
}

// Dir returns the (un-normalized) direction of lane i.
func (r RayN) Dir(i int) Vec3 {
	checkLane(i, r.n)
	return Vec3{
		r.f[abi.RayDirX*r.n+i],
		r.f[abi.RayDirY*r.n+i],
		r.f[abi.RayDirZ*r.n+i],
	}
}

// SetDir sets the direction of lane i.
func (r RayN) SetDir(i int, d Vec3) {
	checkLane(i, r.n)
	r.f[abi.RayDirX*r.n+i] = d[0]
	r.f[abi.RayDirY*r.n+i] = d[1]
	r.f[abi.RayDirZ*r.n+i] = d[2]
}

func (r RayN) Tnear(i int) float32       { return r.f[r.lane(abi.RayTnear, i)] }
func (r RayN) SetTnear(i int, t float32) { r.f[r.lane(abi.RayTnear, i)] = t }
func (r RayN) Tfar(i int) float32        { return r.f[r.lane(abi.RayTfar, i)] }
func (r RayN) SetTfar(i int, t float32)  { r.f[r.lane(abi.RayTfar, i)] = t }
func (r RayN) Time(i int) float32        { return r.f[r.lane(abi.RayTime, i)] }
func (r RayN) SetTime(i int, t float32)  { r.f[r.lane(abi.RayTime, i)] = t }
func (r RayN) Mask(i int) uint32         { return r.u[r.lane(abi.RayMask, i)] }
func (r RayN) SetMask(i int, m uint32)   { r.u[r.lane(abi.RayMask, i)] = m }
func (r RayN) ID(i int) uint32           { return r.u[r.lane(abi.RayID, i)] }
func (r RayN) SetID(i int, id uint32)    { r.u[r.lane(abi.RayID, i)] = id }
func (r RayN) Flags(i int) uint32        { return r.u[r.lane(abi.RayFlags, i)] }
func (r RayN) SetFlags(i int, f uint32)  { r.u[r.lane(abi.RayFlags, i)] = f }

// HitPoint returns org + dir*tfar for lane i.
func (r RayN) HitPoint(i int) Vec3 {
	o := r.Org(i)
	d := r.Dir(i)
	t := r.Tfar(i)
	return Vec3{o[0] + d[0]*t, o[1] + d[1]*t, o[2] + d[2]*t}
}

// Iter iterates the lanes of the view in ascending lane order.
func (r RayN) Iter() iter.Seq2[int, SoARayRef] { return RayLanes(r) }

// HitN is a non-owning view of a hit packet whose width is known only at
// runtime. See [RayN] for the borrowing and bounds-checking rules.
type HitN struct {
	f []float32
	u []uint32
	n int
}

// HitNFromPointer creates a hit view over the buffer at p with the width
// the kernel reported. Panics if n is not 1, 4, 8 or 16.
func HitNFromPointer(p unsafe.Pointer, n int) HitN {
	checkWidth(n)
	words := abi.HitWords * n
	return HitN{
		f: unsafe.Slice((*float32)(p), words),
		u: unsafe.Slice((*uint32)(p), words),
		n: n,
	}
}

// View returns a width-1 runtime view over the scalar hit.
func (h *Hit) View() HitN { return HitNFromPointer(unsafe.Pointer(h), 1) }

// View returns a runtime view over the packet's own storage.
func (p *HitPacket[F, U]) View() HitN {
	return HitNFromPointer(unsafe.Pointer(p), p.Width())
}

// Width returns the number of hits in the view.
func (h HitN) Width() int { return h.n }

// IsEmpty reports whether the view has no lanes.
func (h HitN) IsEmpty() bool { return h.n == 0 }

// lane checks i against the view's width and returns the word index of
// field f for that lane.
func (h HitN) lane(f, i int) int {
	checkLane(i, h.n)
	return f*h.n + i
}

// Normal returns the (un-normalized) geometric normal of lane i.
func (h HitN) Normal(i int) Vec3 {
	checkLane(i, h.n)
	return Vec3{
		h.f[abi.HitNgX*h.n+i],
		h.f[abi.HitNgY*h.n+i],
		h.f[abi.HitNgZ*h.n+i],
	}
}

// SetNormal sets the geometric normal of lane i.
func (h HitN) SetNormal(i int, n Vec3) {
	checkLane(i, h.n)
	h.f[abi.HitNgX*h.n+i] = n[0]
	h.f[abi.HitNgY*h.n+i] = n[1]
	h.f[abi.HitNgZ*h.n+i] = n[2]
}

// UnitNormal returns the geometric normal of lane i scaled to unit length,
// or the zero vector when the stored normal has zero length.
func (h HitN) UnitNormal(i int) Vec3 { return normalized(h.Normal(i)) }

// UV returns the barycentric u/v coordinates of lane i.
func (h HitN) UV(i int) Vec2 {
	checkLane(i, h.n)
	return Vec2{h.f[abi.HitU*h.n+i], h.f[abi.HitV*h.n+i]}
}

func (h HitN) SetU(i int, u float32)      { h.f[h.lane(abi.HitU, i)] = u }
func (h HitN) SetV(i int, v float32)      { h.f[h.lane(abi.HitV, i)] = v }
func (h HitN) PrimID(i int) uint32        { return h.u[h.lane(abi.HitPrimID, i)] }
func (h HitN) SetPrimID(i int, id uint32) { h.u[h.lane(abi.HitPrimID, i)] = id }
func (h HitN) GeomID(i int) uint32        { return h.u[h.lane(abi.HitGeomID, i)] }
func (h HitN) SetGeomID(i int, id uint32) { h.u[h.lane(abi.HitGeomID, i)] = id }
func (h HitN) InstID(i int) uint32        { return h.u[h.lane(abi.HitInstID, i)] }
func (h HitN) SetInstID(i int, id uint32) { h.u[h.lane(abi.HitInstID, i)] = id }

// AnyHit reports whether at least one lane records an actual intersection.
func (h HitN) AnyHit() bool {
	for i := 0; i < h.n; i++ {
		if h.GeomID(i) != InvalidID {
			return true
		}
	}
	return false
}

// Iter iterates the lanes of the view in ascending lane order.
func (h HitN) Iter() iter.Seq2[int, SoAHitRef] { return HitLanes(h) }

// IterHits iterates only the lanes that record an actual intersection.
func (h HitN) IterHits() iter.Seq2[int, SoAHitRef] { return ValidHits(h) }

// RayHitN is a non-owning view of a combined ray/hit packet whose width is
// known only at runtime. The hit region starts abi.RayWords*width 32-bit
// words past the ray region; that constant is the width-independent shape
// of the kernel's combined record and part of its ABI.
type RayHitN struct {
	p unsafe.Pointer
	n int
}

// RayHitNFromPointer creates a combined view over the buffer at p with the
// width the kernel reported. Panics if n is not 1, 4, 8 or 16.
func RayHitNFromPointer(p unsafe.Pointer, n int) RayHitN {
	checkWidth(n)
	return RayHitN{p: p, n: n}
}

// View returns a width-1 runtime view over the scalar ray/hit record.
func (rh *RayHit) View() RayHitN { return RayHitNFromPointer(unsafe.Pointer(rh), 1) }

// View returns a runtime view over the packet's own storage.
func (p *RayHitPacket[F, U]) View() RayHitN {
	return RayHitNFromPointer(unsafe.Pointer(p), p.Width())
}

// Width returns the number of lanes in the view.
func (rh RayHitN) Width() int { return rh.n }

// RayN returns the view of the ray region.
func (rh RayHitN) RayN() RayN { return RayNFromPointer(rh.p, rh.n) }

// HitN returns the view of the hit region.
func (rh RayHitN) HitN() HitN {
	off := uintptr(4 * abi.RayWords * rh.n)
	return HitNFromPointer(unsafe.Add(rh.p, off), rh.n)
}

// Iter iterates ray and hit lanes pairwise, index-synchronized.
func (rh RayHitN) Iter() iter.Seq2[SoARayRef, SoAHitRef] {
	return RayHitLanes(rh.RayN(), rh.HitN())
}
