package fixvec

import (
	"fmt"

	"github.com/hupe1980/fixvec/internal/fmath"
)

// Vec2 is a two-dimensional vector with element type T.
// The zero value is the zero vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 creates a Vec2 from its components.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// FromSlice2 creates a Vec2 from a slice of exactly two elements.
// Panics on any other length.
func FromSlice2[T Scalar](s []T) Vec2[T] {
	if len(s) != 2 {
		panicLength(len(s), 2)
	}
	return Vec2[T]{X: s[0], Y: s[1]}
}

// At returns component i. Panics unless 0 <= i < 2.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panicIndex(i, 2)
		return 0
	}
}

// Set assigns component i. Panics unless 0 <= i < 2.
func (v *Vec2[T]) Set(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		panicIndex(i, 2)
	}
}

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	v.AddInPlace(w)
	return v
}

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	v.SubInPlace(w)
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	v.ScaleInPlace(s)
	return v
}

// Div returns v with every component divided by s. Panics if s is zero.
// Computed as one reciprocal and two multiplications, see Vec3.Div.
func (v Vec2[T]) Div(s T) Vec2[T] {
	v.DivInPlace(s)
	return v
}

// Neg returns v with every component negated.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// AddInPlace adds w to v.
func (v *Vec2[T]) AddInPlace(w Vec2[T]) {
	v.X += w.X
	v.Y += w.Y
}

// SubInPlace subtracts w from v.
func (v *Vec2[T]) SubInPlace(w Vec2[T]) {
	v.X -= w.X
	v.Y -= w.Y
}

// ScaleInPlace multiplies every component of v by s.
func (v *Vec2[T]) ScaleInPlace(s T) {
	v.X *= s
	v.Y *= s
}

// DivInPlace divides every component of v by s. Panics if s is zero.
func (v *Vec2[T]) DivInPlace(s T) {
	checkDivisor(s)
	inv := T(1) / s
	v.X *= inv
	v.Y *= inv
}

// Dot returns the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// NormSq returns the squared Euclidean length of v.
func (v Vec2[T]) NormSq() T {
	return v.Dot(v)
}

// Norm returns the Euclidean length of v. Truncates for integer element
// types.
func (v Vec2[T]) Norm() T {
	return T(fmath.Sqrt(v.NormSq()))
}

// Normalized returns a unit-length vector in the direction of v. Vectors
// with norm below 1e-8 return the zero vector.
func (v Vec2[T]) Normalized() Vec2[T] {
	n := fmath.Sqrt(v.NormSq())
	if n < normEpsilon {
		return Vec2[T]{}
	}
	return v.Div(T(n))
}

// Normalize scales v to unit length in place.
func (v *Vec2[T]) Normalize() {
	*v = v.Normalized()
}

// Lerp linearly interpolates between v and w.
func (v Vec2[T]) Lerp(w Vec2[T], t float64) Vec2[T] {
	return Vec2[T]{
		X: T(float64(v.X) + (float64(w.X)-float64(v.X))*t),
		Y: T(float64(v.Y) + (float64(w.Y)-float64(v.Y))*t),
	}
}

// Near reports whether every component of v is within eps of the matching
// component of w.
func (v Vec2[T]) Near(w Vec2[T], eps float64) bool {
	return fmath.Near(v.X, w.X, eps) && fmath.Near(v.Y, w.Y, eps)
}

// String renders v as "[x, y]".
func (v Vec2[T]) String() string {
	return fmt.Sprintf("[%v, %v]", v.X, v.Y)
}
