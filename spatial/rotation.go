package spatial

import (
	"math"

	"github.com/go-roadspaces/roadspaces/numeric"
)

// Rotation2D is a single normalized angle in radians.
type Rotation2D struct {
	angle float64
}

// NewRotation2D normalizes angle into (-pi, pi].
func NewRotation2D(angle float64) Rotation2D {
	return Rotation2D{angle: numeric.NormalizeAngle(angle)}
}

func (r Rotation2D) Angle() float64 { return r.angle }

// Compose returns the rotation equivalent to applying r then o.
func (r Rotation2D) Compose(o Rotation2D) Rotation2D {
	return NewRotation2D(r.angle + o.angle)
}

func (r Rotation2D) Inverse() Rotation2D { return NewRotation2D(-r.angle) }

func (r Rotation2D) FuzzyEquals(o Rotation2D, tol float64) bool {
	return numeric.AngleFuzzyEquals(r.angle, o.angle, tol)
}

// Apply rotates v by this rotation about the origin.
func (r Rotation2D) Apply(v Vector2D) Vector2D {
	c, s := math.Cos(r.angle), math.Sin(r.angle)
	return Vector2D{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y}
}

// Rotation3D is the heading/pitch/roll triple used throughout planView and
// lane-section poses: heading is yaw about the global Z axis, pitch is
// elevation about the road-relative Y axis, and roll is superelevation
// about the road-relative X axis, applied in that order (R = Rz*Ry*Rx), the
// same composition order original_source's pose builder uses.
type Rotation3D struct {
	heading, pitch, roll float64
}

// NewRotation3D normalizes each angle independently.
func NewRotation3D(heading, pitch, roll float64) Rotation3D {
	return Rotation3D{
		heading: numeric.NormalizeAngle(heading),
		pitch:   numeric.NormalizeAngle(pitch),
		roll:    numeric.NormalizeAngle(roll),
	}
}

func (r Rotation3D) Heading() float64 { return r.heading }
func (r Rotation3D) Pitch() float64   { return r.pitch }
func (r Rotation3D) Roll() float64    { return r.roll }

// matrix3 returns the row-major 3x3 rotation matrix R = Rz(heading) *
// Ry(pitch) * Rx(roll).
func (r Rotation3D) matrix3() [3][3]float64 {
	ch, sh := math.Cos(r.heading), math.Sin(r.heading)
	cp, sp := math.Cos(r.pitch), math.Sin(r.pitch)
	cr, sr := math.Cos(r.roll), math.Sin(r.roll)
	return [3][3]float64{
		{ch * cp, ch*sp*sr - sh*cr, ch*sp*cr + sh*sr},
		{sh * cp, sh*sp*sr + ch*cr, sh*sp*cr - ch*sr},
		{-sp, cp * sr, cp * cr},
	}
}

func matrix3From(m [3][3]float64) Rotation3D {
	pitch := math.Asin(clamp(-m[2][0], -1, 1))
	var heading, roll float64
	if numeric.FuzzyEquals(math.Abs(m[2][0]), 1, 1e-9) {
		// Gimbal lock: heading and roll are coupled, pick heading=0.
		heading = 0
		roll = math.Atan2(-m[0][1], m[1][1])
	} else {
		heading = math.Atan2(m[1][0], m[0][0])
		roll = math.Atan2(m[2][1], m[2][2])
	}
	return NewRotation3D(heading, pitch, roll)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func multiply3(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Compose returns the rotation equivalent to applying r then o, i.e. the
// orientation whose matrix is o.matrix3() * r.matrix3().
func (r Rotation3D) Compose(o Rotation3D) Rotation3D {
	return matrix3From(multiply3(o.matrix3(), r.matrix3()))
}

// Apply rotates v by this rotation about the origin.
func (r Rotation3D) Apply(v Vector3D) Vector3D {
	m := r.matrix3()
	return Vector3D{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (r Rotation3D) FuzzyEquals(o Rotation3D, tol float64) bool {
	return numeric.AngleFuzzyEquals(r.heading, o.heading, tol) &&
		numeric.AngleFuzzyEquals(r.pitch, o.pitch, tol) &&
		numeric.AngleFuzzyEquals(r.roll, o.roll, tol)
}
