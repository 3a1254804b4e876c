package spatial

// Pose is a position and orientation in the global frame: the output of
// evaluating a road's planView plus elevationProfile at an (s, t) pair, or
// the placement of an object/signal/lane-section boundary.
type Pose struct {
	Position    Vector3D
	Orientation Rotation3D
}

// NewPose bundles a position and orientation.
func NewPose(position Vector3D, orientation Rotation3D) Pose {
	return Pose{Position: position, Orientation: orientation}
}

// Compose returns the pose obtained by applying o in p's local frame: the
// usual "pose of a nested frame expressed in the parent's frame" operation.
func (p Pose) Compose(o Pose) Pose {
	return Pose{
		Position:    p.Position.Add(p.Orientation.Apply(o.Position)),
		Orientation: o.Orientation.Compose(p.Orientation),
	}
}

// Transform lifts a local-frame point into the global frame described by p.
func (p Pose) Transform(local Vector3D) Vector3D {
	return p.Position.Add(p.Orientation.Apply(local))
}

func (p Pose) FuzzyEquals(o Pose, tol float64) bool {
	return p.Position.FuzzyEquals(o.Position, tol) && p.Orientation.FuzzyEquals(o.Orientation, tol)
}
