package solid

import (
	"fmt"

	"github.com/go-roadspaces/roadspaces/curve3d"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// CrossSectionFunction supplies the closed profile (in the local (t,h)
// plane, i.e. x=0) swept along a Curve3D. It may vary with s, e.g. a
// tapering guardrail post.
type CrossSectionFunction interface {
	Points(s float64) ([]spatial.Vector2D, error)
}

// ConstantCrossSection is a CrossSectionFunction whose profile does not
// vary with s.
type ConstantCrossSection struct {
	points []spatial.Vector2D
}

// NewConstantCrossSection wraps a fixed profile ring.
func NewConstantCrossSection(points []spatial.Vector2D) ConstantCrossSection {
	return ConstantCrossSection{points: append([]spatial.Vector2D(nil), points...)}
}

func (c ConstantCrossSection) Points(float64) ([]spatial.Vector2D, error) {
	return append([]spatial.Vector2D(nil), c.points...), nil
}

// ParametricSweep extrudes crossSection along curve3D, sampling the axis
// every sweepStep (the last sample is always the domain's upper endpoint,
// even if that makes the final segment shorter than sweepStep).
type ParametricSweep struct {
	curve3D      curve3d.Curve3D
	crossSection CrossSectionFunction
	sweepStep    float64
	tol          float64
}

// NewParametricSweep validates sweepStep > 0.
func NewParametricSweep(curve3D curve3d.Curve3D, crossSection CrossSectionFunction, sweepStep, tol float64) (ParametricSweep, error) {
	if sweepStep <= tol {
		return ParametricSweep{}, ErrNonPositiveDimension
	}
	return ParametricSweep{curve3D: curve3D, crossSection: crossSection, sweepStep: sweepStep, tol: tol}, nil
}

func (p ParametricSweep) samples() []float64 {
	domain := p.curve3D.Domain()
	lo, hi := domain.LowerEndpoint(), domain.UpperEndpoint()
	var s []float64
	for x := lo; x < hi; x += p.sweepStep {
		s = append(s, x)
	}
	s = append(s, hi)
	return s
}

func localToGlobal(curve3D curve3d.Curve3D, s float64, pt spatial.Vector2D) (spatial.Vector3D, error) {
	affine, err := curve3D.Affine(s)
	if err != nil {
		return spatial.Vector3D{}, err
	}
	return affine.Transform(spatial.Vector3D{X: 0, Y: pt.X, Z: pt.Y})
}

// Faces returns, for every consecutive pair of sampled cross-sections, a
// quad face per profile edge, plus the two end caps.
func (p ParametricSweep) Faces() ([]Polygon3D, error) {
	samples := p.samples()
	if len(samples) < 2 {
		return nil, fmt.Errorf("solid: sweep domain too short for step %g", p.sweepStep)
	}

	var faces []Polygon3D

	firstProfile, err := p.crossSection.Points(samples[0])
	if err != nil {
		return nil, err
	}
	if len(firstProfile) < 3 {
		return nil, ErrTooFewVertices
	}

	capStart, err := p.globalRing(samples[0], reversed(firstProfile))
	if err != nil {
		return nil, err
	}
	faces = append(faces, capStart)

	for k := 0; k < len(samples)-1; k++ {
		sCur, sNext := samples[k], samples[k+1]
		profile, err := p.crossSection.Points(sCur)
		if err != nil {
			return nil, err
		}
		n := len(profile)
		if n < 3 {
			return nil, ErrTooFewVertices
		}

		for i := 0; i < n; i++ {
			j := (i + 1) % n
			a, err := localToGlobal(p.curve3D, sCur, profile[i])
			if err != nil {
				return nil, err
			}
			b, err := localToGlobal(p.curve3D, sCur, profile[j])
			if err != nil {
				return nil, err
			}
			c, err := localToGlobal(p.curve3D, sNext, profile[j])
			if err != nil {
				return nil, err
			}
			d, err := localToGlobal(p.curve3D, sNext, profile[i])
			if err != nil {
				return nil, err
			}
			ring, err := NewLinearRing3D([]spatial.Vector3D{a, b, c, d}, p.tol)
			if err != nil {
				return nil, err
			}
			faces = append(faces, NewPolygon3D(ring))
		}
	}

	lastProfile, err := p.crossSection.Points(samples[len(samples)-1])
	if err != nil {
		return nil, err
	}
	capEnd, err := p.globalRing(samples[len(samples)-1], lastProfile)
	if err != nil {
		return nil, err
	}
	faces = append(faces, capEnd)

	return faces, nil
}

func (p ParametricSweep) globalRing(s float64, profile []spatial.Vector2D) (Polygon3D, error) {
	verts := make([]spatial.Vector3D, len(profile))
	for i, pt := range profile {
		v, err := localToGlobal(p.curve3D, s, pt)
		if err != nil {
			return Polygon3D{}, err
		}
		verts[i] = v
	}
	ring, err := NewLinearRing3D(verts, p.tol)
	if err != nil {
		return Polygon3D{}, err
	}
	return NewPolygon3D(ring), nil
}

func reversed(pts []spatial.Vector2D) []spatial.Vector2D {
	out := make([]spatial.Vector2D, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
