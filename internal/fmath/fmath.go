// Package fmath provides scalar math kernels shared by the fixvec packages.
// This is an internal package - external users should use the fixvec and
// metric packages.
package fmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number covers every element type the vector types accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sqrt returns the square root of x as a float64.
// Integer inputs are widened before the root is taken.
func Sqrt[T Number](x T) float64 {
	return math.Sqrt(float64(x))
}

// Abs returns the absolute value of x as a float64.
// The subtraction-free widening keeps unsigned inputs from wrapping.
func Abs[T Number](x T) float64 {
	return math.Abs(float64(x))
}

// Near reports whether a and b differ by less than eps.
// Comparison happens in float64 so unsigned differences cannot wrap.
func Near[T Number](a, b T, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) < eps
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
