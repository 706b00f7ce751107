package fixvec

import (
	"fmt"

	"github.com/hupe1980/fixvec/internal/fmath"
)

// Vec4 is a four-dimensional vector with element type T, as used for
// homogeneous coordinates. The zero value is the zero vector.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// V4 creates a Vec4 from its components.
func V4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// FromSlice4 creates a Vec4 from a slice of exactly four elements.
// Panics on any other length.
func FromSlice4[T Scalar](s []T) Vec4[T] {
	if len(s) != 4 {
		panicLength(len(s), 4)
	}
	return Vec4[T]{X: s[0], Y: s[1], Z: s[2], W: s[3]}
}

// At returns component i. Panics unless 0 <= i < 4.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panicIndex(i, 4)
		return 0
	}
}

// Set assigns component i. Panics unless 0 <= i < 4.
func (v *Vec4[T]) Set(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	case 3:
		v.W = x
	default:
		panicIndex(i, 4)
	}
}

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	v.AddInPlace(w)
	return v
}

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	v.SubInPlace(w)
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	v.ScaleInPlace(s)
	return v
}

// Div returns v with every component divided by s. Panics if s is zero.
// Computed as one reciprocal and four multiplications, see Vec3.Div.
func (v Vec4[T]) Div(s T) Vec4[T] {
	v.DivInPlace(s)
	return v
}

// Neg returns v with every component negated.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// AddInPlace adds w to v.
func (v *Vec4[T]) AddInPlace(w Vec4[T]) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
	v.W += w.W
}

// SubInPlace subtracts w from v.
func (v *Vec4[T]) SubInPlace(w Vec4[T]) {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
	v.W -= w.W
}

// ScaleInPlace multiplies every component of v by s.
func (v *Vec4[T]) ScaleInPlace(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

// DivInPlace divides every component of v by s. Panics if s is zero.
func (v *Vec4[T]) DivInPlace(s T) {
	checkDivisor(s)
	inv := T(1) / s
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	v.W *= inv
}

// Dot returns the dot product of v and w.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// NormSq returns the squared Euclidean length of v.
func (v Vec4[T]) NormSq() T {
	return v.Dot(v)
}

// Norm returns the Euclidean length of v. Truncates for integer element
// types.
func (v Vec4[T]) Norm() T {
	return T(fmath.Sqrt(v.NormSq()))
}

// Normalized returns a unit-length vector in the direction of v. Vectors
// with norm below 1e-8 return the zero vector.
func (v Vec4[T]) Normalized() Vec4[T] {
	n := fmath.Sqrt(v.NormSq())
	if n < normEpsilon {
		return Vec4[T]{}
	}
	return v.Div(T(n))
}

// Normalize scales v to unit length in place.
func (v *Vec4[T]) Normalize() {
	*v = v.Normalized()
}

// Lerp linearly interpolates between v and w.
func (v Vec4[T]) Lerp(w Vec4[T], t float64) Vec4[T] {
	return Vec4[T]{
		X: T(float64(v.X) + (float64(w.X)-float64(v.X))*t),
		Y: T(float64(v.Y) + (float64(w.Y)-float64(v.Y))*t),
		Z: T(float64(v.Z) + (float64(w.Z)-float64(v.Z))*t),
		W: T(float64(v.W) + (float64(w.W)-float64(v.W))*t),
	}
}

// Near reports whether every component of v is within eps of the matching
// component of w.
func (v Vec4[T]) Near(w Vec4[T], eps float64) bool {
	return fmath.Near(v.X, w.X, eps) &&
		fmath.Near(v.Y, w.Y, eps) &&
		fmath.Near(v.Z, w.Z, eps) &&
		fmath.Near(v.W, w.W, eps)
}

// String renders v as "[x, y, z, w]".
func (v Vec4[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", v.X, v.Y, v.Z, v.W)
}
