package metric

import (
	"math"

	"github.com/hupe1980/fixvec"
	"github.com/hupe1980/fixvec/internal/fmath"
)

// Cosine2 returns the cosine similarity of a and b, or 0 if either has
// zero magnitude.
func Cosine2[T fixvec.Scalar](a, b fixvec.Vec2[T]) float64 {
	return cosine(float64(a.Dot(b)), fmath.Sqrt(a.NormSq()), fmath.Sqrt(b.NormSq()))
}

// Cosine3 returns the cosine similarity of a and b, or 0 if either has
// zero magnitude.
func Cosine3[T fixvec.Scalar](a, b fixvec.Vec3[T]) float64 {
	return cosine(float64(a.Dot(b)), fmath.Sqrt(a.NormSq()), fmath.Sqrt(b.NormSq()))
}

// Cosine4 returns the cosine similarity of a and b, or 0 if either has
// zero magnitude.
func Cosine4[T fixvec.Scalar](a, b fixvec.Vec4[T]) float64 {
	return cosine(float64(a.Dot(b)), fmath.Sqrt(a.NormSq()), fmath.Sqrt(b.NormSq()))
}

// Angle2 returns the angle between a and b in radians, in [0, pi].
// Zero-magnitude inputs yield 0.
func Angle2[T fixvec.Scalar](a, b fixvec.Vec2[T]) float64 {
	return angle(Cosine2(a, b), a.NormSq() == 0 || b.NormSq() == 0)
}

// Angle3 returns the angle between a and b in radians, in [0, pi].
// Zero-magnitude inputs yield 0.
func Angle3[T fixvec.Scalar](a, b fixvec.Vec3[T]) float64 {
	return angle(Cosine3(a, b), a.NormSq() == 0 || b.NormSq() == 0)
}

// Angle4 returns the angle between a and b in radians, in [0, pi].
// Zero-magnitude inputs yield 0.
func Angle4[T fixvec.Scalar](a, b fixvec.Vec4[T]) float64 {
	return angle(Cosine4(a, b), a.NormSq() == 0 || b.NormSq() == 0)
}

// DistanceSq2 returns the squared Euclidean distance between a and b.
func DistanceSq2[T fixvec.Scalar](a, b fixvec.Vec2[T]) T {
	return b.Sub(a).NormSq()
}

// DistanceSq3 returns the squared Euclidean distance between a and b.
func DistanceSq3[T fixvec.Scalar](a, b fixvec.Vec3[T]) T {
	return b.Sub(a).NormSq()
}

// DistanceSq4 returns the squared Euclidean distance between a and b.
func DistanceSq4[T fixvec.Scalar](a, b fixvec.Vec4[T]) T {
	return b.Sub(a).NormSq()
}

// Distance2 returns the Euclidean distance between a and b.
func Distance2[T fixvec.Scalar](a, b fixvec.Vec2[T]) float64 {
	return fmath.Sqrt(DistanceSq2(a, b))
}

// Distance3 returns the Euclidean distance between a and b.
func Distance3[T fixvec.Scalar](a, b fixvec.Vec3[T]) float64 {
	return fmath.Sqrt(DistanceSq3(a, b))
}

// Distance4 returns the Euclidean distance between a and b.
func Distance4[T fixvec.Scalar](a, b fixvec.Vec4[T]) float64 {
	return fmath.Sqrt(DistanceSq4(a, b))
}

func cosine(dot, magA, magB float64) float64 {
	// Avoid division by zero
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (magA * magB)
}

func angle(cos float64, degenerate bool) float64 {
	if degenerate {
		return 0
	}
	// Clamp before acos; rounding can push the ratio just past +-1.
	return math.Acos(fmath.Clamp(cos, -1, 1))
}
