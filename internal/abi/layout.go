// Package abi pins the memory layout shared with the native ray-tracing
// kernel.
//
// The kernel exchanges rays and hits as flat structure-of-arrays (SoA)
// buffers: for a packet of width N, field f of lane i lives at 32-bit word
// offset f*N + i. The field order below is the kernel's published structure
// layout. It is a binary contract, not a design choice: any change here must
// be validated against the kernel's headers, and a mismatch is a silent
// memory-safety violation rather than a caught error.
//
// All offset arithmetic in the repository goes through these constants so
// the contract is written down exactly once.
package abi

// Word indices of the ray fields within one lane-width stride.
// A ray occupies RayWords 32-bit words per lane.
const (
	RayOrgX = iota
	RayOrgY
	RayOrgZ
	RayTnear
	RayDirX
	RayDirY
	RayDirZ
	RayTime
	RayTfar
	RayMask // uint32 from here on
	RayID
	RayFlags

	// RayWords is the number of 32-bit words per lane in the ray region.
	RayWords = 12
)

// Word indices of the hit fields within one lane-width stride.
const (
	HitNgX = iota
	HitNgY
	HitNgZ
	HitU
	HitV
	HitPrimID // uint32 from here on
	HitGeomID
	HitInstID

	// HitWords is the number of 32-bit words per lane in the hit region.
	HitWords = 8
)

// RayHitWords is the per-lane word count of a combined ray/hit record.
// The hit region starts RayWords*width words past the ray region.
const RayHitWords = RayWords + HitWords

// Widths lists the packet widths the kernel supports.
var Widths = [4]int{1, 4, 8, 16}

// SupportedWidth reports whether n is a packet width the kernel can supply
// to a callback.
func SupportedWidth(n int) bool {
	switch n {
	case 1, 4, 8, 16:
		return true
	}
	return false
}
