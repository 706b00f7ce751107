package fixvec

import (
	"fmt"

	"github.com/hupe1980/fixvec/internal/fmath"
)

// Vec3 is a three-dimensional vector with element type T.
// The zero value is the zero vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// V3 creates a Vec3 from its components.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// FromSlice3 creates a Vec3 from a slice of exactly three elements.
// Panics on any other length. Prefer V3 when the components are known
// statically; the arity is then checked at compile time.
func FromSlice3[T Scalar](s []T) Vec3[T] {
	if len(s) != 3 {
		panicLength(len(s), 3)
	}
	return Vec3[T]{X: s[0], Y: s[1], Z: s[2]}
}

// At returns component i. Panics unless 0 <= i < 3.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panicIndex(i, 3)
		return 0
	}
}

// Set assigns component i. Panics unless 0 <= i < 3.
func (v *Vec3[T]) Set(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panicIndex(i, 3)
	}
}

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	v.AddInPlace(w)
	return v
}

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	v.SubInPlace(w)
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	v.ScaleInPlace(s)
	return v
}

// Div returns v with every component divided by s. Panics if s is zero.
//
// The division is carried out as one reciprocal and three multiplications.
// For floating-point elements this introduces at most one extra rounding
// step versus per-component division.
func (v Vec3[T]) Div(s T) Vec3[T] {
	v.DivInPlace(s)
	return v
}

// Neg returns v with every component negated.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// AddInPlace adds w to v.
func (v *Vec3[T]) AddInPlace(w Vec3[T]) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
}

// SubInPlace subtracts w from v.
func (v *Vec3[T]) SubInPlace(w Vec3[T]) {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
}

// ScaleInPlace multiplies every component of v by s.
func (v *Vec3[T]) ScaleInPlace(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivInPlace divides every component of v by s. Panics if s is zero.
// See Div for the reciprocal formulation.
func (v *Vec3[T]) DivInPlace(s T) {
	checkDivisor(s)
	inv := T(1) / s
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
}

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w under the right-hand rule:
// Cross of unit X with unit Y is unit Z. The result is perpendicular to
// both inputs and anticommutative, Cross(v, w) == Cross(w, v).Neg().
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// NormSq returns the squared Euclidean length of v.
// Prefer this over Norm for distance comparisons; it skips the square root.
func (v Vec3[T]) NormSq() T {
	return v.Dot(v)
}

// Norm returns the Euclidean length of v. For integer element types the
// result truncates toward zero.
func (v Vec3[T]) Norm() T {
	return T(fmath.Sqrt(v.NormSq()))
}

// Normalized returns a unit-length vector in the direction of v without
// mutating it. Vectors with norm below 1e-8 return the zero vector instead
// of propagating NaNs from a near-zero divisor.
func (v Vec3[T]) Normalized() Vec3[T] {
	n := fmath.Sqrt(v.NormSq())
	if n < normEpsilon {
		return Vec3[T]{}
	}
	return v.Div(T(n))
}

// Normalize scales v to unit length in place. Near-zero vectors become the
// zero vector, as in Normalized.
func (v *Vec3[T]) Normalize() {
	*v = v.Normalized()
}

// Lerp linearly interpolates between v and w. t of 0 returns v, t of 1
// returns w.
func (v Vec3[T]) Lerp(w Vec3[T], t float64) Vec3[T] {
	return Vec3[T]{
		X: T(float64(v.X) + (float64(w.X)-float64(v.X))*t),
		Y: T(float64(v.Y) + (float64(w.Y)-float64(v.Y))*t),
		Z: T(float64(v.Z) + (float64(w.Z)-float64(v.Z))*t),
	}
}

// Near reports whether every component of v is within eps of the matching
// component of w.
func (v Vec3[T]) Near(w Vec3[T], eps float64) bool {
	return fmath.Near(v.X, w.X, eps) &&
		fmath.Near(v.Y, w.Y, eps) &&
		fmath.Near(v.Z, w.Z, eps)
}

// String renders v as "[x, y, z]".
func (v Vec3[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.X, v.Y, v.Z)
}
