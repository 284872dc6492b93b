// Package embree provides a zero-overhead typed view over the flat
// structure-of-arrays (SoA) memory a native ray-tracing kernel produces
// and consumes.
//
// # Overview
//
// The package defines the ray, hit and combined ray/hit records in the
// kernel's exact memory layout, at three granularities:
//
//   - scalar records (Ray, Hit, RayHit) for single-ray queries,
//   - fixed-width SoA packets (Ray4/8/16, Hit4/8/16, RayHit4/8/16) for
//     SIMD-wide queries,
//   - runtime-width views (RayN, HitN, RayHitN) over kernel-owned buffers
//     whose width is only known inside a callback.
//
// On top of the records sits a layout-compatible extension mechanism
// (RayExt, RayHitExt, IntersectContextExt) that attaches caller-defined
// trailing data to a fixed-layout record and recovers it from within a
// callback that receives nothing but a pointer to the base record.
//
// # Quick Start
//
//	ray := embree.NewRay(embree.Vec3{0, 0, -3}, embree.Vec3{0, 0, 1})
//	rh := embree.NewRayHit(ray)
//	ctx := embree.IncoherentContext()
//
//	if err := embree.Intersect(&ctx, &rh); err != nil {
//		log.Fatal(err)
//	}
//	if rh.IsValid() {
//		fmt.Println("hit at", rh.HitPoint())
//	}
//
// # Ownership
//
// Scalar records and packets are owned by the caller. Views borrow
// kernel-owned memory and are valid only for the duration of the single
// kernel call that produced them; they must never be stored past it.
// Nothing in the package is shared between queries, so concurrent queries
// from multiple goroutines are safe as long as each uses its own records.
//
// # Safety
//
// Nearly every contract in this package (lane index below the width,
// extension pointer provenance, view lifetime) is a programming error when
// violated, not a recoverable condition. Lane access panics on
// out-of-range indices; the extension accessors return false when no
// extension is present; everything else is documented on the unsafe
// conversion points themselves.
package embree

// Version is the current version of the library.
const Version = "0.1.0"
