package roadspace

import "github.com/go-roadspaces/roadspaces/opendrive"

// RoadspaceContactPointID names one end of a Roadspace's reference line:
// the roadspace it belongs to plus which end.
type RoadspaceContactPointID struct {
	RoadspaceID  Identifier
	ContactPoint opendrive.ContactPoint
}

// Connection resolves one PR junction connection entry to concrete
// roadspace contact points plus a 1:1 lane-id mapping.
type Connection struct {
	ID                Identifier
	Incoming          RoadspaceContactPointID
	Connecting        RoadspaceContactPointID
	LaneLinks         map[int]int
}

// Junction is a resolved road junction: its identifier plus the
// connections it owns.
type Junction struct {
	ID          Identifier
	Connections []Connection
}

// NewJunction builds a Junction, defensively copying Connections.
func NewJunction(id Identifier, connections []Connection) Junction {
	connectionsCopy := make([]Connection, len(connections))
	copy(connectionsCopy, connections)
	return Junction{ID: id, Connections: connectionsCopy}
}

// NewConnection builds a Connection, defensively copying the lane-link
// map.
func NewConnection(id Identifier, incoming, connecting RoadspaceContactPointID, laneLinks map[int]int) Connection {
	links := make(map[int]int, len(laneLinks))
	for k, v := range laneLinks {
		links[k] = v
	}
	return Connection{ID: id, Incoming: incoming, Connecting: connecting, LaneLinks: links}
}
