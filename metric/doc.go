// Package metric provides similarity and distance helpers over the fixvec
// vector types.
//
// Functions come in one variant per dimension, matching the library's
// fixed-dimension design: Cosine3 for Vec3, Cosine2 for Vec2, and so on.
// Squared distances are preferred for comparisons since they skip the
// square root:
//
//	if metric.DistanceSq3(p, a) < metric.DistanceSq3(p, b) {
//	    // a is closer
//	}
//
// Cosine similarity of a zero vector is defined as 0, and the angle to a
// zero vector as 0 radians, mirroring the degenerate-input convention of
// the core package's normalization.
package metric
