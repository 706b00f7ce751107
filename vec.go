package fixvec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types the vector types accept.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// normEpsilon is the tolerance below which a norm counts as zero during
// normalization. Guards against NaN propagation from near-zero divisors.
const normEpsilon = 1e-8

// Dot2 is the free-function mirror of Vec2.Dot.
func Dot2[T Scalar](a, b Vec2[T]) T {
	return a.Dot(b)
}

// Dot3 is the free-function mirror of Vec3.Dot.
func Dot3[T Scalar](a, b Vec3[T]) T {
	return a.Dot(b)
}

// Dot4 is the free-function mirror of Vec4.Dot.
func Dot4[T Scalar](a, b Vec4[T]) T {
	return a.Dot(b)
}

// Cross is the free-function mirror of Vec3.Cross. The cross product only
// exists in three dimensions, so there is exactly one of these.
func Cross[T Scalar](a, b Vec3[T]) Vec3[T] {
	return a.Cross(b)
}

func panicIndex(i, n int) {
	panic(fmt.Sprintf("fixvec: index %d out of range [0, %d)", i, n))
}

func panicLength(got, want int) {
	panic(fmt.Sprintf("fixvec: slice length %d, want %d", got, want))
}

func checkDivisor[T Scalar](s T) {
	if s == 0 {
		panic("fixvec: division by zero scalar")
	}
}
