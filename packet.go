package embree

import (
	"iter"
	"math"
)

// FloatLanes constrains the float lane arrays of a packet to the widths the
// kernel supports.
type FloatLanes interface {
	[4]float32 | [8]float32 | [16]float32
}

// UintLanes constrains the integer lane arrays of a packet to the widths
// the kernel supports.
type UintLanes interface {
	[4]uint32 | [8]uint32 | [16]uint32
}

// RayPacket is a fixed-width ray packet in structure-of-arrays layout: the
// Nth field of every lane is stored contiguously, not interleaved, as the
// kernel's SIMD conventions require. The field order matches the scalar
// [Ray], each field widened to one lane array (see internal/abi).
//
// F and U must have the same length; use the [Ray4], [Ray8] and [Ray16]
// aliases and their constructors rather than instantiating RayPacket
// directly.
type RayPacket[F FloatLanes, U UintLanes] struct {
	orgX, orgY, orgZ F
	tnear            F
	dirX, dirY, dirZ F
	time             F
	tfar             F
	mask             U
	id               U
	flags            U
}

// Ray4 is a ray packet of width 4.
type Ray4 = RayPacket[[4]float32, [4]uint32]

// Ray8 is a ray packet of width 8.
type Ray8 = RayPacket[[8]float32, [8]uint32]

// Ray16 is a ray packet of width 16.
type Ray16 = RayPacket[[16]float32, [16]uint32]

func newRayPacket[F FloatLanes, U UintLanes](origins, dirs []Vec3, tnear, tfar []float32) RayPacket[F, U] {
	var p RayPacket[F, U]
	for i := 0; i < len(p.tnear); i++ {
		p.orgX[i] = origins[i][0]
		p.orgY[i] = origins[i][1]
		p.orgZ[i] = origins[i][2]
		p.tnear[i] = tnear[i]
		p.dirX[i] = dirs[i][0]
		p.dirY[i] = dirs[i][1]
		p.dirZ[i] = dirs[i][2]
		p.tfar[i] = tfar[i]
		p.mask[i] = ^uint32(0)
	}
	return p
}

func defaultSegments(n int) (tnear, tfar []float32) {
	tnear = make([]float32, n)
	tfar = make([]float32, n)
	inf := float32(math.Inf(1))
	for i := range tfar {
		tfar[i] = inf
	}
	return tnear, tfar
}

// NewRay4 creates a width-4 packet from per-lane origins and directions
// with the default segment [0, +Inf), mask all-ones, id 0, flags 0, time 0.
func NewRay4(origins, dirs [4]Vec3) Ray4 {
	tnear, tfar := defaultSegments(4)
	return newRayPacket[[4]float32, [4]uint32](origins[:], dirs[:], tnear, tfar)
}

// NewRay8 is NewRay4 for width 8.
func NewRay8(origins, dirs [8]Vec3) Ray8 {
	tnear, tfar := defaultSegments(8)
	return newRayPacket[[8]float32, [8]uint32](origins[:], dirs[:], tnear, tfar)
}

// NewRay16 is NewRay4 for width 16.
func NewRay16(origins, dirs [16]Vec3) Ray16 {
	tnear, tfar := defaultSegments(16)
	return newRayPacket[[16]float32, [16]uint32](origins[:], dirs[:], tnear, tfar)
}

// Ray4Segment creates a width-4 packet with explicit per-lane segments.
// Lanes with tnear < 0 are not meaningful to the kernel; that precondition
// is documented, not checked here.
func Ray4Segment(origins, dirs [4]Vec3, tnear, tfar [4]float32) Ray4 {
	return newRayPacket[[4]float32, [4]uint32](origins[:], dirs[:], tnear[:], tfar[:])
}

// Ray8Segment is Ray4Segment for width 8.
func Ray8Segment(origins, dirs [8]Vec3, tnear, tfar [8]float32) Ray8 {
	return newRayPacket[[8]float32, [8]uint32](origins[:], dirs[:], tnear[:], tfar[:])
}

// Ray16Segment is Ray4Segment for width 16.
func Ray16Segment(origins, dirs [16]Vec3, tnear, tfar [16]float32) Ray16 {
	return newRayPacket[[16]float32, [16]uint32](origins[:], dirs[:], tnear[:], tfar[:])
}

// EmptyRay4 creates a width-4 packet with zero origins and directions and
// the default segment [0, +Inf): lanes are valid but unassigned. To mark a
// lane inactive for stream queries, use SetInactive.
func EmptyRay4() Ray4 { return NewRay4([4]Vec3{}, [4]Vec3{}) }

// EmptyRay8 is EmptyRay4 for width 8.
func EmptyRay8() Ray8 { return NewRay8([8]Vec3{}, [8]Vec3{}) }

// EmptyRay16 is EmptyRay4 for width 16.
func EmptyRay16() Ray16 { return NewRay16([16]Vec3{}, [16]Vec3{}) }

// Width returns the number of lanes in the packet.
func (p *RayPacket[F, U]) Width() int { return len(p.tnear) }

// Org returns the origin of lane i.
func (p *RayPacket[F, U]) Org(i int) Vec3 { return Vec3{p.orgX[i], p.orgY[i], p.orgZ[i]} }

// SetOrg sets the origin of lane i.
func (p *RayPacket[F, U]) SetOrg(i int, o Vec3) {
	p.orgX[i] = o[0]
	p.orgY[i] = o[1]
	p.orgZ[i] = o[2]
}

// Dir returns the (un-normalized) direction of lane i.
func (p *RayPacket[F, U]) Dir(i int) Vec3 { return Vec3{p.dirX[i], p.dirY[i], p.dirZ[i]} }

// SetDir sets the direction of lane i.
func (p *RayPacket[F, U]) SetDir(i int, d Vec3) {
	p.dirX[i] = d[0]
	p.dirY[i] = d[1]
	p.dirZ[i] = d[2]
}

func (p *RayPacket[F, U]) Tnear(i int) float32       { return p.tnear[i] }
func (p *RayPacket[F, U]) SetTnear(i int, t float32) { p.tnear[i] = t }
func (p *RayPacket[F, U]) Tfar(i int) float32        { return p.tfar[i] }
func (p *RayPacket[F, U]) SetTfar(i int, t float32)  { p.tfar[i] = t }
func (p *RayPacket[F, U]) Time(i int) float32        { return p.time[i] }
func (p *RayPacket[F, U]) SetTime(i int, t float32)  { p.time[i] = t }
func (p *RayPacket[F, U]) Mask(i int) uint32         { return p.mask[i] }
func (p *RayPacket[F, U]) SetMask(i int, m uint32)   { p.mask[i] = m }
func (p *RayPacket[F, U]) ID(i int) uint32           { return p.id[i] }
func (p *RayPacket[F, U]) SetID(i int, id uint32)    { p.id[i] = id }
func (p *RayPacket[F, U]) Flags(i int) uint32        { return p.flags[i] }
func (p *RayPacket[F, U]) SetFlags(i int, f uint32)  { p.flags[i] = f }

// SetInactive marks lane i inactive for stream queries by writing a
// segment with Tfar < Tnear.
func (p *RayPacket[F, U]) SetInactive(i int) {
	p.tnear[i] = 0
	p.tfar[i] = float32(math.Inf(-1))
}

// Iter iterates the lanes of the packet in ascending lane order. Mutating
// through the yielded refs writes into the packet.
func (p *RayPacket[F, U]) Iter() iter.Seq2[int, SoARayRef] { return RayLanes(p) }

// HitPacket is a fixed-width hit packet in structure-of-arrays layout. The
// field order matches the scalar [Hit], each field widened to one lane
// array (see internal/abi).
//
// Use the [Hit4], [Hit8] and [Hit16] aliases and their constructors rather
// than instantiating HitPacket directly.
type HitPacket[F FloatLanes, U UintLanes] struct {
	ngX, ngY, ngZ F
	u, v          F
	primID        U
	geomID        U
	instID        [1]U
}

// Hit4 is a hit packet of width 4.
type Hit4 = HitPacket[[4]float32, [4]uint32]

// Hit8 is a hit packet of width 8.
type Hit8 = HitPacket[[8]float32, [8]uint32]

// Hit16 is a hit packet of width 16.
type Hit16 = HitPacket[[16]float32, [16]uint32]

func newHitPacket[F FloatLanes, U UintLanes]() HitPacket[F, U] {
	var p HitPacket[F, U]
	for i := 0; i < len(p.geomID); i++ {
		p.primID[i] = InvalidID
		p.geomID[i] = InvalidID
		p.instID[0][i] = InvalidID
	}
	return p
}

// NewHit4 creates a width-4 hit packet with every lane in the
// "no intersection" state.
func NewHit4() Hit4 { return newHitPacket[[4]float32, [4]uint32]() }

// NewHit8 is NewHit4 for width 8.
func NewHit8() Hit8 { return newHitPacket[[8]float32, [8]uint32]() }

// NewHit16 is NewHit4 for width 16.
func NewHit16() Hit16 { return newHitPacket[[16]float32, [16]uint32]() }

// Width returns the number of lanes in the packet.
func (p *HitPacket[F, U]) Width() int { return len(p.u) }

// Normal returns the (un-normalized) geometric normal of lane i.
func (p *HitPacket[F, U]) Normal(i int) Vec3 { return Vec3{p.ngX[i], p.ngY[i], p.ngZ[i]} }

// SetNormal sets the geometric normal of lane i.
func (p *HitPacket[F, U]) SetNormal(i int, n Vec3) {
	p.ngX[i] = n[0]
	p.ngY[i] = n[1]
	p.ngZ[i] = n[2]
}

// UnitNormal returns the geometric normal of lane i scaled to unit length,
// or the zero vector when the stored normal has zero length.
func (p *HitPacket[F, U]) UnitNormal(i int) Vec3 { return normalized(p.Normal(i)) }

// UV returns the barycentric u/v coordinates of lane i.
func (p *HitPacket[F, U]) UV(i int) Vec2 { return Vec2{p.u[i], p.v[i]} }

func (p *HitPacket[F, U]) SetU(i int, u float32)      { p.u[i] = u }
func (p *HitPacket[F, U]) SetV(i int, v float32)      { p.v[i] = v }
func (p *HitPacket[F, U]) PrimID(i int) uint32        { return p.primID[i] }
func (p *HitPacket[F, U]) SetPrimID(i int, id uint32) { p.primID[i] = id }
func (p *HitPacket[F, U]) GeomID(i int) uint32        { return p.geomID[i] }
func (p *HitPacket[F, U]) SetGeomID(i int, id uint32) { p.geomID[i] = id }
func (p *HitPacket[F, U]) InstID(i int) uint32        { return p.instID[0][i] }
func (p *HitPacket[F, U]) SetInstID(i int, id uint32) { p.instID[0][i] = id }

// AnyHit reports whether at least one lane records an actual intersection.
func (p *HitPacket[F, U]) AnyHit() bool {
	for i := 0; i < len(p.geomID); i++ {
		if p.geomID[i] != InvalidID {
			return true
		}
	}
	return false
}

// IterValidity iterates per-lane validity in ascending lane order: true
// for lanes whose GeomID is set.
func (p *HitPacket[F, U]) IterValidity() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < len(p.geomID); i++ {
			if !yield(i, p.geomID[i] != InvalidID) {
				return
			}
		}
	}
}

// Iter iterates the lanes of the packet in ascending lane order.
func (p *HitPacket[F, U]) Iter() iter.Seq2[int, SoAHitRef] { return HitLanes(p) }

// IterHits iterates only the lanes that record an actual intersection, in
// ascending lane order.
func (p *HitPacket[F, U]) IterHits() iter.Seq2[int, SoAHitRef] { return ValidHits(p) }

// RayHitPacket pairs a ray packet with a hit packet of the same width. The
// ray region is immediately followed by the hit region, matching the
// kernel's combined record layout.
//
// Use the [RayHit4], [RayHit8] and [RayHit16] aliases.
type RayHitPacket[F FloatLanes, U UintLanes] struct {
	Ray RayPacket[F, U]
	Hit HitPacket[F, U]
}

// RayHit4 is a ray/hit packet of width 4.
type RayHit4 = RayHitPacket[[4]float32, [4]uint32]

// RayHit8 is a ray/hit packet of width 8.
type RayHit8 = RayHitPacket[[8]float32, [8]uint32]

// RayHit16 is a ray/hit packet of width 16.
type RayHit16 = RayHitPacket[[16]float32, [16]uint32]

// NewRayHit4 creates a width-4 ray/hit packet ready for an intersect
// query: every hit lane is reset to the "no intersection" state.
func NewRayHit4(ray Ray4) RayHit4 { return RayHit4{Ray: ray, Hit: NewHit4()} }

// NewRayHit8 is NewRayHit4 for width 8.
func NewRayHit8(ray Ray8) RayHit8 { return RayHit8{Ray: ray, Hit: NewHit8()} }

// NewRayHit16 is NewRayHit4 for width 16.
func NewRayHit16(ray Ray16) RayHit16 { return RayHit16{Ray: ray, Hit: NewHit16()} }

// Width returns the number of lanes in the packet.
func (p *RayHitPacket[F, U]) Width() int { return p.Ray.Width() }

// Iter iterates ray and hit lanes pairwise, index-synchronized.
func (p *RayHitPacket[F, U]) Iter() iter.Seq2[SoARayRef, SoAHitRef] {
	return RayHitLanes(&p.Ray, &p.Hit)
}
