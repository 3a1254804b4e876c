package spatial

import "errors"

// ErrEmptyAffineSequence is returned by Compose on a sequence with no
// transforms.
var ErrEmptyAffineSequence = errors.New("spatial: affine sequence has no transforms")

// AffineSequence is an ordered stack of 4x4 affine transforms, composed
// right-to-left: the sequence [A, B, C] transforms a local point p as
// A.Apply(B.Apply(C.Apply(p))), the same convention a road's lane-section
// frame nested inside its planView frame nested inside the project's
// geo-reference frame needs.
type AffineSequence struct {
	transforms []Mat4
}

// NewAffineSequence builds a sequence from outermost to innermost transform.
func NewAffineSequence(transforms ...Mat4) AffineSequence {
	cp := make([]Mat4, len(transforms))
	copy(cp, transforms)
	return AffineSequence{transforms: cp}
}

// Append returns a new sequence with t appended as the innermost transform.
func (a AffineSequence) Append(t Mat4) AffineSequence {
	return NewAffineSequence(append(append([]Mat4{}, a.transforms...), t)...)
}

// Compose folds the sequence into a single Mat4.
func (a AffineSequence) Compose() (Mat4, error) {
	if len(a.transforms) == 0 {
		return Mat4{}, ErrEmptyAffineSequence
	}
	out := a.transforms[0]
	for _, t := range a.transforms[1:] {
		out = out.Multiply(t)
	}
	return out, nil
}

// Transform applies the composed sequence to a single point.
func (a AffineSequence) Transform(p Vector3D) (Vector3D, error) {
	m, err := a.Compose()
	if err != nil {
		return Vector3D{}, err
	}
	return m.Apply(p), nil
}

// TransformPolygon applies the composed sequence to every vertex of a
// polygon, preserving order.
func (a AffineSequence) TransformPolygon(points []Vector3D) ([]Vector3D, error) {
	m, err := a.Compose()
	if err != nil {
		return nil, err
	}
	out := make([]Vector3D, len(points))
	for i, p := range points {
		out[i] = m.Apply(p)
	}
	return out, nil
}

// Inverse returns the sequence that undoes a, transform order reversed with
// each step individually inverted.
func (a AffineSequence) Inverse() (AffineSequence, error) {
	out := make([]Mat4, len(a.transforms))
	for i, t := range a.transforms {
		inv, err := t.Inverse()
		if err != nil {
			return AffineSequence{}, err
		}
		out[len(a.transforms)-1-i] = inv
	}
	return AffineSequence{transforms: out}, nil
}
