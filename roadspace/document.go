package roadspace

// Document is the top-level Roadspaces model: a CRS header plus the
// roadspaces and junctions resolved from one PR document.
type Document struct {
	Header     Header
	Roadspaces []Roadspace
	Junctions  []Junction
}

// NewDocument builds a Document, defensively copying its slices.
func NewDocument(header Header, roadspaces []Roadspace, junctions []Junction) Document {
	roadspacesCopy := make([]Roadspace, len(roadspaces))
	copy(roadspacesCopy, roadspaces)
	junctionsCopy := make([]Junction, len(junctions))
	copy(junctionsCopy, junctions)
	return Document{Header: header, Roadspaces: roadspacesCopy, Junctions: junctionsCopy}
}

// RoadspaceByID returns the roadspace with the given identifier's
// canonical string, and whether it was found.
func (d Document) RoadspaceByID(id Identifier) (Roadspace, bool) {
	canonical := id.Canonical()
	for _, rs := range d.Roadspaces {
		if rs.ID.Canonical() == canonical {
			return rs, true
		}
	}
	return Roadspace{}, false
}
