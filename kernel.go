package embree

import (
	"errors"
	"math"
	"sync"
)

// ErrNoKernel indicates that no intersection kernel is registered. Queries
// through the package-level helpers require one.
var ErrNoKernel = errors.New("embree: no intersection kernel registered")

// Kernel is the native intersection engine this layer feeds and reads. It
// owns acceleration-structure construction and traversal; this package
// owns only the memory it exchanges with it.
//
// An intersect query writes the nearest hit into the hit region and its
// distance into the ray's Tfar. An occluded query writes Tfar = -Inf for
// rays whose segment is occluded and touches nothing else. Packet queries
// take a per-lane validity mask; the kernel ignores lanes that arrive
// invalid.
//
// Implementations must be safe for concurrent queries as long as each
// query uses its own ray, hit and context records, which is all this
// package's types guarantee.
type Kernel interface {
	// Name returns the kernel identifier (e.g., "embree4", "sw-bvh").
	Name() string

	// Init prepares the kernel. Called once during registration.
	Init() error

	// Close releases the kernel's resources.
	Close()

	Intersect1(ctx *IntersectContext, rh *RayHit)
	Occluded1(ctx *IntersectContext, ray *Ray)

	Intersect4(valid *[4]int32, ctx *IntersectContext, rh *RayHit4)
	Occluded4(valid *[4]int32, ctx *IntersectContext, ray *Ray4)

	Intersect8(valid *[8]int32, ctx *IntersectContext, rh *RayHit8)
	Occluded8(valid *[8]int32, ctx *IntersectContext, ray *Ray8)

	Intersect16(valid *[16]int32, ctx *IntersectContext, rh *RayHit16)
	Occluded16(valid *[16]int32, ctx *IntersectContext, ray *Ray16)
}

var (
	kernelMu sync.RWMutex
	kernel   Kernel
)

// RegisterKernel registers the intersection kernel used by the
// package-level query helpers.
//
// Only one kernel can be registered; subsequent calls replace the previous
// one, closing it. The kernel's Init is called during registration; if it
// fails the kernel is not registered and the error is returned.
//
// Typical usage via blank import in kernel backend packages:
//
//	func init() {
//	    embree.RegisterKernel(NewNativeKernel())
//	}
func RegisterKernel(k Kernel) error {
	if k == nil {
		return errors.New("embree: kernel must not be nil")
	}
	if err := k.Init(); err != nil {
		return err
	}
	kernelMu.Lock()
	old := kernel
	kernel = k
	kernelMu.Unlock()
	if old != nil {
		old.Close()
	}
	Logger().Info("embree: kernel registered", "name", k.Name())
	propagateLogger(k, Logger())
	return nil
}

// RegisteredKernel returns the currently registered kernel, or nil.
func RegisteredKernel() Kernel {
	kernelMu.RLock()
	k := kernel
	kernelMu.RUnlock()
	return k
}

// Intersect runs a single-ray intersect query against the registered
// kernel. ray may be a plain *RayHit or any extension wrapper; only the
// fixed-layout prefixes cross the kernel boundary. The result is read back
// through rh.AsRayHit().IsValid() and the hit fields.
func Intersect(ctx AsIntersectContext, rh AsRayHit) error {
	k := RegisteredKernel()
	if k == nil {
		return ErrNoKernel
	}
	k.Intersect1(ctx.AsContext(), rh.AsRayHit())
	return nil
}

// Occluded runs a single-ray occlusion query against the registered
// kernel. It reports whether the ray segment is occluded, which the kernel
// signals by setting Tfar to -Inf.
func Occluded(ctx AsIntersectContext, ray AsRay) (bool, error) {
	k := RegisteredKernel()
	if k == nil {
		return false, ErrNoKernel
	}
	r := ray.AsRay()
	k.Occluded1(ctx.AsContext(), r)
	return math.IsInf(float64(r.Tfar), -1), nil
}

// Intersect4 runs a width-4 intersect query against the registered kernel.
// Lanes whose valid mask word is zero are ignored.
func Intersect4(valid *[4]int32, ctx AsIntersectContext, rh *RayHit4) error {
	k := RegisteredKernel()
	if k == nil {
		return ErrNoKernel
	}
	k.Intersect4(valid, ctx.AsContext(), rh)
	return nil
}

// Occluded4 runs a width-4 occlusion query against the registered kernel.
func Occluded4(valid *[4]int32, ctx AsIntersectContext, ray *Ray4) error {
	k := RegisteredKernel()
	if k == nil {
		return ErrNoKernel
	}
	k.Occluded4(valid, ctx.AsContext(), ray)
	return nil
}

// Intersect8 is Intersect4 for width 8.
func Intersect8(valid *[8]int32, ctx AsIntersectContext, rh *RayHit8) error {
	k := RegisteredKernel()
	if k == nil {
		return ErrNoKernel
	}
	k.Intersect8(valid, ctx.AsContext(), rh)
	return nil
}

// Occluded8 is Occluded4 for width 8.
func Occluded8(valid *[8]int32, ctx AsIntersectContext, ray *Ray8) error {
	k := RegisteredKernel()
	if k == nil {
		return ErrNoKernel
	}
	k.Occluded8(valid, ctx.AsContext(), ray)
	return nil
}

// Intersect16 is Intersect4 for width 16.
func Intersect16(valid *[16]int32, ctx AsIntersectContext, rh *RayHit16) error {
	k := RegisteredKernel()
	if k == nil {
		return ErrNoKernel
	}
	k.Intersect16(valid, ctx.AsContext(), rh)
	return nil
}

// Occluded16 is Occluded4 for width 16.
func Occluded16(valid *[16]int32, ctx AsIntersectContext, ray *Ray16) error {
	k := RegisteredKernel()
	if k == nil {
		return ErrNoKernel
	}
	k.Occluded16(valid, ctx.AsContext(), ray)
	return nil
}
