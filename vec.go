package embree

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vec2 is a two-component float32 vector, used for barycentric hit
// coordinates.
type Vec2 = f32.Vec2

// Vec3 is a three-component float32 vector, used for ray origins and
// directions and for geometric normals.
type Vec3 = f32.Vec3

// normalized returns v scaled to unit length, or the zero vector when v
// has zero length.
func normalized(v Vec3) Vec3 {
	len2 := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	if len2 <= 0 {
		return Vec3{}
	}
	inv := 1.0 / float32(math.Sqrt(float64(len2)))
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}
