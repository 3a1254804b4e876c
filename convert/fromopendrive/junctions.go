package fromopendrive

import (
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/roadspace"
)

// buildJunctions resolves every junction's connections, run after every
// road has been resolved to a Roadspace, since a connection's
// incoming/connecting roadspace contact points must already exist to be
// referenced.
func buildJunctions(pr opendrive.PR, roadsByID map[string]opendrive.Road) ([]roadspace.Junction, error) {
	junctions := make([]roadspace.Junction, len(pr.Junctions))
	for i, j := range pr.Junctions {
		connections := make([]roadspace.Connection, len(j.Connections))
		for k, c := range j.Connections {
			built, err := buildConnection(j, c, roadsByID)
			if err != nil {
				return nil, err
			}
			connections[k] = built
		}
		junctions[i] = roadspace.NewJunction(junctionIdentifier(j.ID), connections)
	}
	return junctions, nil
}

func buildConnection(j opendrive.Junction, c opendrive.Connection, roadsByID map[string]opendrive.Road) (roadspace.Connection, error) {
	incomingRoad, ok := roadsByID[c.IncomingRoad]
	if !ok {
		return roadspace.Connection{}, ErrRoadNotFound
	}
	if !roadTerminatesAtJunction(incomingRoad, j.ID) {
		return roadspace.Connection{}, ErrConnectionNotAtJunction
	}
	if _, ok := roadsByID[c.ConnectingRoad]; !ok {
		return roadspace.Connection{}, ErrRoadNotFound
	}

	incomingContact := incomingContactPoint(incomingRoad, j.ID)

	laneLinks := make(map[int]int, len(c.LaneLinks))
	for _, ll := range c.LaneLinks {
		laneLinks[ll.From] = ll.To
	}

	id := connectionIdentifier(j.ID, c.ID)
	incoming := roadspace.RoadspaceContactPointID{
		RoadspaceID:  roadspaceIdentifier(c.IncomingRoad),
		ContactPoint: incomingContact,
	}
	connecting := roadspace.RoadspaceContactPointID{
		RoadspaceID:  roadspaceIdentifier(c.ConnectingRoad),
		ContactPoint: c.ContactPoint,
	}
	return roadspace.NewConnection(id, incoming, connecting, laneLinks), nil
}

// roadTerminatesAtJunction reports whether r's predecessor or successor
// link names junctionID as a junction link.
func roadTerminatesAtJunction(r opendrive.Road, junctionID string) bool {
	if r.Link.PredecessorIsJunction && r.Link.PredecessorID == junctionID {
		return true
	}
	if r.Link.SuccessorIsJunction && r.Link.SuccessorID == junctionID {
		return true
	}
	return false
}

// incomingContactPoint is the end of the incoming road that actually
// touches the junction: its end if the junction is the successor link,
// its start otherwise.
func incomingContactPoint(r opendrive.Road, junctionID string) opendrive.ContactPoint {
	if r.Link.SuccessorIsJunction && r.Link.SuccessorID == junctionID {
		return opendrive.ContactPointEnd
	}
	return opendrive.ContactPointStart
}
