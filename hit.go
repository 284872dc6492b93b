package embree

// InvalidID marks an unset geometry, primitive or instance identifier.
// A hit whose GeomID equals InvalidID is the canonical "no intersection"
// state.
const InvalidID = ^uint32(0)

// Hit is a single ray/primitive intersection result in the kernel's fixed
// memory layout.
//
// The hit holds the un-normalized geometric normal in object space at the
// hit location (NgX, NgY, NgZ), the barycentric u/v coordinates of the hit,
// and the primitive, geometry and instance identifiers. The parametric
// intersection distance is not stored here; the kernel writes it into the
// Tfar member of the corresponding ray.
//
// The field order is the kernel's ABI (see internal/abi) and must not be
// rearranged.
type Hit struct {
	NgX, NgY, NgZ float32
	U, V          float32
	PrimID        uint32
	GeomID        uint32
	InstID        [1]uint32
}

// NewHit returns a hit in the "no intersection" state: every identifier is
// InvalidID. This is the state an intersect query expects on input.
func NewHit() Hit {
	return Hit{
		PrimID: InvalidID,
		GeomID: InvalidID,
		InstID: [1]uint32{InvalidID},
	}
}

// Normal returns the (un-normalized) geometric normal at the hit point.
func (h *Hit) Normal() Vec3 { return Vec3{h.NgX, h.NgY, h.NgZ} }

// SetNormal sets the geometric normal at the hit point.
func (h *Hit) SetNormal(n Vec3) { h.NgX, h.NgY, h.NgZ = n[0], n[1], n[2] }

// NormalNormalized returns the geometric normal scaled to unit length, or
// the zero vector when the stored normal has zero length.
func (h *Hit) NormalNormalized() Vec3 { return normalized(h.Normal()) }

// Barycentric returns the barycentric u/v coordinates of the hit.
func (h *Hit) Barycentric() Vec2 { return Vec2{h.U, h.V} }

// IsValid reports whether the hit records an actual intersection.
func (h *Hit) IsValid() bool { return h.GeomID != InvalidID }
