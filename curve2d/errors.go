package curve2d

import (
	"errors"
	"fmt"
)

// ErrNonPositiveLength is returned by constructors that require a strictly
// positive reported length.
var ErrNonPositiveLength = errors.New("curve2d: reported length must be positive")

// ErrEmptyComposite is returned by NewCompositeCurve2D with no segments.
var ErrEmptyComposite = errors.New("curve2d: composite curve requires at least one segment")

// OverlapOrGapInCurve reports that segment i+1's start pose does not
// fuzzy-equal segment i's end pose (position differs beyond tolerance).
type OverlapOrGapInCurve struct {
	SegmentIndex int
	EndPose      Pose2D
	NextStart    Pose2D
	Gap          float64
}

func (e OverlapOrGapInCurve) Error() string {
	return fmt.Sprintf("curve2d: overlap or gap between segment %d and %d (distance %g)", e.SegmentIndex, e.SegmentIndex+1, e.Gap)
}

// KinkInCurve reports that segment i+1's start heading does not continue
// segment i's end heading within the configured angle tolerance.
type KinkInCurve struct {
	SegmentIndex int
	EndHeading   float64
	NextHeading  float64
	AngleGap     float64
}

func (e KinkInCurve) Error() string {
	return fmt.Sprintf("curve2d: kink between segment %d and %d (angle gap %g rad)", e.SegmentIndex, e.SegmentIndex+1, e.AngleGap)
}
