package embree

import "unsafe"

// The extension types below implement "poor man's inheritance": a
// fixed-layout base record followed by caller-defined trailing data. The
// base record is the first field of each wrapper and Go lays struct fields
// out in declaration order, so a pointer to the wrapper is a valid pointer
// to the base. The kernel only ever dereferences the base layout, and the
// caller can recover the trailing data from within a callback that
// received nothing but the base pointer.
//
// The reverse cast — reinterpreting a base pointer as a wrapper — is only
// defined when the pointer genuinely originated from a wrapper of exactly
// that type. The *ExtFromBase functions are the single place this
// reinterpretation happens; passing them a pointer to a plain base record
// dereferences memory past the record and is undefined behavior.

// AsRay is implemented by types that are layout-compatible with [Ray]:
// the ray is the first field at offset zero, so the returned pointer is
// also a valid pointer to the whole value.
type AsRay interface {
	// AsRay projects to the fixed-layout ray prefix.
	AsRay() *Ray
}

// AsRayHit is implemented by types that are layout-compatible with
// [RayHit].
type AsRayHit interface {
	AsRay
	// AsRayHit projects to the fixed-layout ray/hit prefix.
	AsRayHit() *RayHit
}

func (r *Ray) AsRay() *Ray { return r }

func (rh *RayHit) AsRay() *Ray       { return &rh.Ray }
func (rh *RayHit) AsRayHit() *RayHit { return rh }

// RayExt extends a [Ray] with caller-defined trailing data. The kernel is
// guaranteed to pass the exact ray pointer the caller supplied to a query
// on to user-geometry callbacks, so data placed after the ray can be
// recovered inside those callbacks (to accumulate opacity or color, for
// example).
//
// Ray must remain the first field.
type RayExt[E any] struct {
	Ray Ray
	Ext E
}

// NewRayExt pairs a ray with its extension data.
func NewRayExt[E any](ray Ray, ext E) RayExt[E] {
	return RayExt[E]{Ray: ray, Ext: ext}
}

func (r *RayExt[E]) AsRay() *Ray { return &r.Ray }

// RayHitExt extends a [RayHit] with caller-defined trailing data.
// Ray must remain the first field.
type RayHitExt[E any] struct {
	Ray RayHit
	Ext E
}

// NewRayHitExt pairs a ray/hit record with its extension data.
func NewRayHitExt[E any](rh RayHit, ext E) RayHitExt[E] {
	return RayHitExt[E]{Ray: rh, Ext: ext}
}

func (r *RayHitExt[E]) AsRay() *Ray       { return &r.Ray.Ray }
func (r *RayHitExt[E]) AsRayHit() *RayHit { return &r.Ray }

// RayExtension recovers the trailing data of a ray known through its AsRay
// projection. It reports false when r carries no extension of type E: a
// plain *Ray always reports false, a *RayExt[E] reports true, and a
// *RayHit viewed as a ray yields its Hit (the trailing data that follows
// the ray prefix in a combined record).
func RayExtension[E any](r AsRay) (*E, bool) {
	switch x := r.(type) {
	case *RayExt[E]:
		return &x.Ext, true
	case *RayHit:
		if e, ok := any(&x.Hit).(*E); ok {
			return e, true
		}
	}
	return nil, false
}

// RayHitExtension recovers the trailing data of a ray/hit record known
// through its AsRayHit projection. A plain *RayHit reports false.
func RayHitExtension[E any](r AsRayHit) (*E, bool) {
	if x, ok := r.(*RayHitExt[E]); ok {
		return &x.Ext, true
	}
	return nil, false
}

// RayPointer returns the base pointer handed to the kernel for a query.
// The kernel dereferences only the fixed ray layout.
func RayPointer(r AsRay) unsafe.Pointer { return unsafe.Pointer(r.AsRay()) }

// RayHitPointer returns the base pointer handed to the kernel for an
// intersect query.
func RayHitPointer(r AsRayHit) unsafe.Pointer { return unsafe.Pointer(r.AsRayHit()) }

// RayExtFromBase reinterprets a base ray pointer as the wrapper it came
// from. p must be the Ray field of a live *RayExt[E] — typically the ray
// pointer a callback received for a query that was started with one.
// Calling this with any other pointer is undefined behavior.
func RayExtFromBase[E any](p *Ray) *RayExt[E] {
	return (*RayExt[E])(unsafe.Pointer(p))
}

// RayHitExtFromBase reinterprets a base ray/hit pointer as the wrapper it
// came from. The same provenance contract as [RayExtFromBase] applies.
func RayHitExtFromBase[E any](p *RayHit) *RayHitExt[E] {
	return (*RayHitExt[E])(unsafe.Pointer(p))
}
