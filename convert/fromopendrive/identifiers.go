package fromopendrive

import (
	"strconv"

	"github.com/go-roadspaces/roadspaces/roadspace"
)

// roadspaceIdentifier is the canonical Identifier for the Roadspace built
// from the PR road with the given id.
func roadspaceIdentifier(roadID string) roadspace.Identifier {
	return roadspace.NewIdentifier([2]string{"road", roadID})
}

func junctionIdentifier(junctionID string) roadspace.Identifier {
	return roadspace.NewIdentifier([2]string{"junction", junctionID})
}

func connectionIdentifier(junctionID, connectionID string) roadspace.Identifier {
	return roadspace.NewIdentifier(
		[2]string{"junction", junctionID},
		[2]string{"connection", connectionID},
	)
}

// objectIdentifier names a resolved RoadspaceObject. repeatIndex is -1 for
// a non-repeated object and the instance index for one expanded from a
// repeat specification.
func objectIdentifier(roadID, objectID string, repeatIndex int) roadspace.Identifier {
	if repeatIndex < 0 {
		return roadspace.NewIdentifier(
			[2]string{"road", roadID},
			[2]string{"object", objectID},
		)
	}
	return roadspace.NewIdentifier(
		[2]string{"road", roadID},
		[2]string{"object", objectID},
		[2]string{"repeat", strconv.Itoa(repeatIndex)},
	)
}
