package spatial

import (
	"errors"
	"fmt"
)

// ErrSingularMat4 is returned by Mat4.Inverse when the matrix has no
// numerically stable inverse (a zero pivot during LU decomposition).
var ErrSingularMat4 = errors.New("spatial: matrix is singular")

// Mat4 is a row-major 4x4 homogeneous transform: the top-left 3x3 block is
// rotation/scale, the top-right column is translation, and the bottom row is
// always (0, 0, 0, 1) for the affine transforms this package builds.
type Mat4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// TranslationMat4 builds a pure translation transform.
func TranslationMat4(v Vector3D) Mat4 {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = v.X, v.Y, v.Z
	return m
}

// RotationMat4 lifts a Rotation3D's 3x3 block into a 4x4 homogeneous
// transform with zero translation.
func RotationMat4(r Rotation3D) Mat4 {
	m := Identity4()
	r3 := r.matrix3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = r3[i][j]
		}
	}
	return m
}

// PoseMat4 composes translation then rotation: applying it to the origin
// yields pose.Position, and to any local-frame offset yields the
// pose-relative global point.
func PoseMat4(p Pose) Mat4 {
	return TranslationMat4(p.Position).Multiply(RotationMat4(p.Orientation))
}

// Multiply returns m * o.
func (m Mat4) Multiply(o Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply transforms a point (treated as (x, y, z, 1)) through m.
func (m Mat4) Apply(v Vector3D) Vector3D {
	return Vector3D{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// ApplyDirection transforms a direction (treated as (x, y, z, 0)), ignoring
// translation.
func (m Mat4) ApplyDirection(v Vector3D) Vector3D {
	return Vector3D{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// lu4 performs Doolittle LU decomposition of m with partial pivoting,
// returning L, U and the row-permutation applied (perm[i] is the original
// row now in position i). An error is returned for a singular matrix.
func lu4(m Mat4) (l, u Mat4, perm [4]int, err error) {
	a := m
	for i := range perm {
		perm[i] = i
	}

	for col := 0; col < 4; col++ {
		// Stage: partial pivot on the largest magnitude entry in this column.
		pivotRow := col
		best := abs(a[col][col])
		for r := col + 1; r < 4; r++ {
			if v := abs(a[r][col]); v > best {
				best, pivotRow = v, r
			}
		}
		if best < 1e-15 {
			return Mat4{}, Mat4{}, perm, fmt.Errorf("mat4: %w at column %d", ErrSingularMat4, col)
		}
		if pivotRow != col {
			a[col], a[pivotRow] = a[pivotRow], a[col]
			perm[col], perm[pivotRow] = perm[pivotRow], perm[col]
		}

		for r := col + 1; r < 4; r++ {
			factor := a[r][col] / a[col][col]
			a[r][col] = factor
			for c := col + 1; c < 4; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}

	l, u = Identity4(), Mat4{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			switch {
			case j < i:
				l[i][j] = a[i][j]
			default:
				u[i][j] = a[i][j]
			}
		}
	}
	return l, u, perm, nil
}

// Inverse computes m^-1 via Doolittle LU decomposition followed by forward
// and back substitution against each identity column, the standard
// column-by-column inversion approach.
func (m Mat4) Inverse() (Mat4, error) {
	l, u, perm, err := lu4(m)
	if err != nil {
		return Mat4{}, err
	}

	var inv Mat4
	for col := 0; col < 4; col++ {
		var b [4]float64
		b[col] = 1
		// permute the right-hand side to match the pivoted rows
		var pb [4]float64
		for i := 0; i < 4; i++ {
			pb[i] = b[perm[i]]
		}

		// forward substitution: L*y = pb
		var y [4]float64
		for i := 0; i < 4; i++ {
			sum := pb[i]
			for k := 0; k < i; k++ {
				sum -= l[i][k] * y[k]
			}
			y[i] = sum / l[i][i]
		}

		// back substitution: U*x = y
		var x [4]float64
		for i := 3; i >= 0; i-- {
			sum := y[i]
			for k := i + 1; k < 4; k++ {
				sum -= u[i][k] * x[k]
			}
			x[i] = sum / u[i][i]
		}

		for row := 0; row < 4; row++ {
			inv[row][col] = x[row]
		}
	}
	return inv, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
