package embree

import "unsafe"

// IntersectContextFlags is the per-query traversal hint.
type IntersectContextFlags uint32

const (
	// ContextIncoherent hints that the rays of a query are unrelated.
	// This is the default and the better choice for secondary rays.
	ContextIncoherent IntersectContextFlags = 0

	// ContextCoherent hints that the rays of a query point in similar
	// directions from nearby origins, as primary rays do. It is a
	// scheduling hint for the kernel's traversal, never a correctness
	// requirement.
	ContextCoherent IntersectContextFlags = 1
)

// FilterFunctionN is a second-stage filter callback invoked by the kernel
// after any per-geometry filter, for the rays that passed the first stage.
// A per-query filter is useful to modify the behavior of the query itself,
// such as collecting all hits along a ray or accumulating transparency.
//
// The views and pointers inside the arguments borrow kernel memory and are
// valid only for the duration of the invocation.
type FilterFunctionN func(args *FilterFunctionNArguments)

// FilterFunctionNArguments is what the kernel passes to a filter callback.
type FilterFunctionNArguments struct {
	// Valid is the lane validity mask. The callback rejects a hit by
	// clearing its lane.
	Valid ValidityN

	// GeometryUserPtr is the user data registered with the geometry that
	// produced the candidate hits.
	GeometryUserPtr unsafe.Pointer

	// Context is the exact context pointer the query was started with, so
	// extension data attached to it is recoverable here (see
	// [ContextExtFromBase]).
	Context *IntersectContext

	// Ray and Hit view the candidate rays and hits, N lanes wide.
	Ray RayN
	Hit HitN

	// N is the packet width of this invocation: 1, 4, 8 or 16.
	N int
}

// IntersectContext is the per-query configuration passed by pointer to
// every callback invoked during one query: the coherency hint, an optional
// second-stage filter, and the instance id of the currently traversed
// instance.
//
// The kernel is guaranteed to pass the exact context pointer it was given
// on to the callbacks, so arbitrary per-query data can be attached with
// [IntersectContextExt] and recovered inside a callback. The ray carries
// the same guarantee only for user-geometry callbacks, not for filters;
// per-query data that filters need belongs on the context.
//
// A context is created per query, or reused across batches of queries that
// share a coherency hint. It holds no kernel resources and needs no
// cleanup.
type IntersectContext struct {
	Flags  IntersectContextFlags
	Filter FilterFunctionN
	InstID [1]uint32
}

// NewIntersectContext creates a context with the given coherency hint and
// no filter.
func NewIntersectContext(flags IntersectContextFlags) IntersectContext {
	return IntersectContext{
		Flags:  flags,
		InstID: [1]uint32{InvalidID},
	}
}

// CoherentContext creates a context with the coherent hint set.
func CoherentContext() IntersectContext { return NewIntersectContext(ContextCoherent) }

// IncoherentContext creates a context with the incoherent hint set.
func IncoherentContext() IntersectContext { return NewIntersectContext(ContextIncoherent) }

// AsIntersectContext is implemented by types that are layout-compatible
// with [IntersectContext]: the context is the first field at offset zero.
type AsIntersectContext interface {
	// AsContext projects to the fixed-layout context prefix.
	AsContext() *IntersectContext
}

func (c *IntersectContext) AsContext() *IntersectContext { return c }

// IntersectContextExt extends an [IntersectContext] with caller-defined
// per-query data. Ctx must remain the first field.
type IntersectContextExt[E any] struct {
	Ctx IntersectContext
	Ext E
}

// NewIntersectContextExt pairs a context with per-query extension data.
func NewIntersectContextExt[E any](flags IntersectContextFlags, ext E) IntersectContextExt[E] {
	return IntersectContextExt[E]{Ctx: NewIntersectContext(flags), Ext: ext}
}

// CoherentContextExt creates an extended context with the coherent hint.
func CoherentContextExt[E any](ext E) IntersectContextExt[E] {
	return NewIntersectContextExt(ContextCoherent, ext)
}

// IncoherentContextExt creates an extended context with the incoherent
// hint.
func IncoherentContextExt[E any](ext E) IntersectContextExt[E] {
	return NewIntersectContextExt(ContextIncoherent, ext)
}

func (c *IntersectContextExt[E]) AsContext() *IntersectContext { return &c.Ctx }

// ContextExtension recovers the per-query data of a context known through
// its AsContext projection. A plain *IntersectContext reports false.
func ContextExtension[E any](c AsIntersectContext) (*E, bool) {
	if x, ok := c.(*IntersectContextExt[E]); ok {
		return &x.Ext, true
	}
	return nil, false
}

// ContextPointer returns the base pointer handed to the kernel for a
// query. The kernel dereferences only the fixed context layout.
func ContextPointer(c AsIntersectContext) unsafe.Pointer {
	return unsafe.Pointer(c.AsContext())
}

// ContextExtFromBase reinterprets a base context pointer as the wrapper it
// came from. p must be the Ctx field of a live *IntersectContextExt[E] —
// typically the context pointer a callback received for a query that was
// started with one. Calling this with any other pointer is undefined
// behavior.
func ContextExtFromBase[E any](p *IntersectContext) *IntersectContextExt[E] {
	return (*IntersectContextExt[E])(unsafe.Pointer(p))
}
