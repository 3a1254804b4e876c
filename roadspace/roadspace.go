package roadspace

import "github.com/go-roadspaces/roadspaces/curve3d"

// Header carries the coordinate-reference-system metadata shared by an
// entire Roadspaces document.
type Header struct {
	CrsEpsg int
}

// Roadspace is the healed, continuous-geometry counterpart of a single
// PR road: a reference line plus the lane-section/lane/marking structure
// built over it, the road's non-lane objects, and a generic attribute
// set carried through from the source.
type Roadspace struct {
	ID            Identifier
	ReferenceLine curve3d.Curve3D
	Road          RoadBody
	Objects       []RoadspaceObject
	Attributes    map[string]string
}

// NewRoadspace builds a Roadspace, defensively copying the mutable
// slice/map fields so the caller's backing arrays can't alias into it.
func NewRoadspace(id Identifier, referenceLine curve3d.Curve3D, road RoadBody, objects []RoadspaceObject, attributes map[string]string) Roadspace {
	objectsCopy := make([]RoadspaceObject, len(objects))
	copy(objectsCopy, objects)

	var attrsCopy map[string]string
	if attributes != nil {
		attrsCopy = make(map[string]string, len(attributes))
		for k, v := range attributes {
			attrsCopy[k] = v
		}
	}

	return Roadspace{
		ID:            id,
		ReferenceLine: referenceLine,
		Road:          road,
		Objects:       objectsCopy,
		Attributes:    attrsCopy,
	}
}
