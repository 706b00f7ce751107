// Package fixvec provides fixed-dimension vector math for graphics and
// physics style code.
//
// The vector types are plain stack-allocated values: Vec2, Vec3 and Vec4,
// generic over any integer or floating-point element type. Dimension and
// element type are fixed at compile time, so misuse such as a cross product
// on a 2D vector or a .Z component on a Vec2 is a build error, not a
// runtime check. No operation allocates.
//
// # Quick Start
//
//	right := fixvec.V3[float32](1, 0, 0)
//	forward := fixvec.V3[float32](0, 1, 0)
//
//	up := fixvec.Cross(right, forward) // [0, 0, 1]
//	d := fixvec.Dot3(right, forward)   // 0
//
//	v := fixvec.V3(1.0, 2.0, 3.0).Add(fixvec.V3(4.0, 5.0, 6.0)) // [5, 7, 9]
//	n := v.Normalized()                                          // unit length
//
// Non-mutating methods (Add, Sub, Scale, Div, Normalized, ...) return new
// values and leave their operands untouched. In-place variants use pointer
// receivers and the InPlace suffix (AddInPlace, ScaleInPlace, ...);
// Normalize is the in-place form of Normalized.
//
// # Contract Violations
//
// Out-of-range At/Set indices, zero scalar divisors and wrong-length
// FromSlice inputs panic. These are caller bugs, not recoverable
// conditions, so no error-returning variants exist.
//
// # Key Features
//
//   - Compile-time dimension and element type (no runtime polymorphism)
//   - Zero heap allocation in every operation
//   - Dot/cross products, norms, epsilon-guarded normalization
//   - Similarity and distance helpers in the metric subpackage
package fixvec
