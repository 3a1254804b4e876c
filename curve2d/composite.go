package curve2d

import (
	"sort"

	"github.com/go-roadspaces/roadspaces/interval"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// CompositeCurve2D is an ordered concatenation of Curve2D segments, each
// contiguous with the next: segment i+1 must start exactly (within
// tolerance) where segment i ends, in both position (OverlapOrGapInCurve)
// and heading (KinkInCurve).
type CompositeCurve2D struct {
	segments []Curve2D
	domain   interval.Range
	tol      float64
}

// NewCompositeCurve2D validates C0 continuity across segments and builds
// the composite. The first violation found is returned as either
// OverlapOrGapInCurve or KinkInCurve.
func NewCompositeCurve2D(segments []Curve2D, tol, angleTol float64) (CompositeCurve2D, error) {
	if len(segments) == 0 {
		return CompositeCurve2D{}, ErrEmptyComposite
	}
	for i := 0; i < len(segments)-1; i++ {
		endS := segments[i].Domain().UpperEndpoint()
		endPose, err := segments[i].PoseLocalCS(endS)
		if err != nil {
			endPose = segments[i].PoseLocalCSUnbounded(endS)
		}
		startS := segments[i+1].Domain().LowerEndpoint()
		nextPose, err := segments[i+1].PoseLocalCS(startS)
		if err != nil {
			nextPose = segments[i+1].PoseLocalCSUnbounded(startS)
		}

		gap := endPose.Point.Sub(nextPose.Point).Length()
		if gap > tol {
			return CompositeCurve2D{}, OverlapOrGapInCurve{SegmentIndex: i, EndPose: endPose, NextStart: nextPose, Gap: gap}
		}

		angleGap := angularDistance(endPose.Rotation.Angle(), nextPose.Rotation.Angle())
		if angleGap > angleTol {
			return CompositeCurve2D{}, KinkInCurve{SegmentIndex: i, EndHeading: endPose.Rotation.Angle(), NextHeading: nextPose.Rotation.Angle(), AngleGap: angleGap}
		}
	}

	lower := segments[0].Domain().LowerEndpoint()
	upper := segments[len(segments)-1].Domain().UpperEndpoint()
	domain, err := interval.NewClosed(lower, upper)
	if err != nil {
		return CompositeCurve2D{}, err
	}
	return CompositeCurve2D{segments: segments, domain: domain, tol: tol}, nil
}

func angularDistance(a, b float64) float64 {
	d := a - b
	for d > 3.141592653589793 {
		d -= 2 * 3.141592653589793
	}
	for d < -3.141592653589793 {
		d += 2 * 3.141592653589793
	}
	if d < 0 {
		d = -d
	}
	return d
}

func (c CompositeCurve2D) Domain() interval.Range { return c.domain }
func (c CompositeCurve2D) Tolerance() float64     { return c.tol }

// segmentFor returns the index of the segment whose domain's lower
// endpoint is the latest one at or before s, mirroring curve1d.Concatenated's
// breakpoint search.
func (c CompositeCurve2D) segmentFor(s float64) int {
	idx := sort.Search(len(c.segments), func(i int) bool {
		return c.segments[i].Domain().LowerEndpoint() > s
	})
	if idx == 0 {
		return 0
	}
	return idx - 1
}

func (c CompositeCurve2D) PointLocalCS(s float64) (spatial.Vector2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Vector2D{}, err
	}
	return c.PointLocalCSUnbounded(s), nil
}

func (c CompositeCurve2D) PointLocalCSUnbounded(s float64) spatial.Vector2D {
	return c.segments[c.segmentFor(s)].PointLocalCSUnbounded(s)
}

func (c CompositeCurve2D) RotationLocalCS(s float64) (spatial.Rotation2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return spatial.Rotation2D{}, err
	}
	return c.RotationLocalCSUnbounded(s), nil
}

func (c CompositeCurve2D) RotationLocalCSUnbounded(s float64) spatial.Rotation2D {
	return c.segments[c.segmentFor(s)].RotationLocalCSUnbounded(s)
}

func (c CompositeCurve2D) PoseLocalCS(s float64) (Pose2D, error) {
	if err := checkDomain(c.domain, c.tol, s); err != nil {
		return Pose2D{}, err
	}
	return c.PoseLocalCSUnbounded(s), nil
}

func (c CompositeCurve2D) PoseLocalCSUnbounded(s float64) Pose2D {
	return c.segments[c.segmentFor(s)].PoseLocalCSUnbounded(s)
}

// Segments returns a copy of the segment list (the Curve2D values in it
// are themselves immutable).
func (c CompositeCurve2D) Segments() []Curve2D { return append([]Curve2D(nil), c.segments...) }
