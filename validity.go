package embree

import "unsafe"

// Lane validity markers in the kernel's callback ABI: a lane is valid when
// its mask word is all-ones and invalid when it is zero. Other values are
// not defined.
const (
	ValidMask   int32 = -1
	InvalidMask int32 = 0
)

// ValidityN is a non-owning view of the per-lane validity mask the kernel
// passes to callbacks. Clearing a lane tells the kernel to ignore that
// lane's candidate hit; callbacks must never set lanes that arrived
// invalid. Like the packet views, it borrows kernel memory for one
// invocation only.
type ValidityN struct {
	v []int32
}

// ValidityNFromPointer creates a validity view over the mask at p with the
// width the kernel reported. Panics if n is not 1, 4, 8 or 16.
func ValidityNFromPointer(p unsafe.Pointer, n int) ValidityN {
	checkWidth(n)
	return ValidityN{v: unsafe.Slice((*int32)(p), n)}
}

// ValidityNOf creates a validity view over a caller-owned mask slice.
func ValidityNOf(v []int32) ValidityN { return ValidityN{v: v} }

// Width returns the number of lanes in the mask.
func (v ValidityN) Width() int { return len(v.v) }

// IsValid reports whether lane i is valid.
func (v ValidityN) IsValid(i int) bool { return v.v[i] != InvalidMask }

// SetValid marks lane i valid or invalid.
func (v ValidityN) SetValid(i int, valid bool) {
	if valid {
		v.v[i] = ValidMask
	} else {
		v.v[i] = InvalidMask
	}
}

// AnyValid reports whether at least one lane is valid.
func (v ValidityN) AnyValid() bool {
	for _, m := range v.v {
		if m != InvalidMask {
			return true
		}
	}
	return false
}
