package lanegraph

const (
	white = 0
	gray  = 1
	black = 2
)

// DetectLinkageCycle walks the graph with a three-color depth-first
// search and returns the first cycle it finds (as a closed node list,
// first == last), or (false, nil, nil) if the graph is acyclic. Vertices
// are visited in Nodes() order for determinism, so the same graph always
// reports the same first cycle regardless of build order.
func DetectLinkageCycle(g *Graph) (bool, []NodeID, error) {
	if g == nil {
		return false, nil, nil
	}

	state := make(map[string]int)
	var path []NodeID

	for _, start := range g.Nodes() {
		if state[start.key()] != white {
			continue
		}
		found, cycle, err := visit(g, start, state, &path)
		if err != nil {
			return false, nil, err
		}
		if found {
			return true, cycle, nil
		}
	}
	return false, nil, nil
}

func visit(g *Graph, id NodeID, state map[string]int, path *[]NodeID) (bool, []NodeID, error) {
	state[id.key()] = gray
	*path = append(*path, id)

	successors, err := g.Successors(id)
	if err != nil {
		return false, nil, err
	}

	for _, next := range successors {
		switch state[next.key()] {
		case white:
			found, cycle, err := visit(g, next, state, path)
			if err != nil {
				return false, nil, err
			}
			if found {
				return true, cycle, nil
			}
		case gray:
			idx := indexOf(*path, next)
			cycle := append(append([]NodeID(nil), (*path)[idx:]...), next)
			return true, cycle, nil
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id.key()] = black
	return false, nil, nil
}

func indexOf(path []NodeID, id NodeID) int {
	key := id.key()
	for i, v := range path {
		if v.key() == key {
			return i
		}
	}
	return -1
}
