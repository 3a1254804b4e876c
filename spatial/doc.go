// Package spatial provides the Cartesian primitives needed beneath every
// curve and surface: Vector2D/Vector3D, Rotation2D/Rotation3D, Pose
// (position + orientation), and AffineSequence, the composable transform
// stack that lifts curve-relative points into the global frame.
//
// AffineSequence's 4x4 homogeneous matrices (Mat4) and their
// LU-decomposition inverse use a Doolittle LU factorization with
// forward/back substitution, specialized to a fixed 4x4 array type rather
// than a dynamically sized matrix, because every affine transform in a
// road's reference frame is exactly 4x4.
package spatial

import "math"

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
