// Package citymodel is the SB (surface-based 3D city-object) model: the
// output of the Roadspaces → SB transformer (convert/tocitymodel). It
// carries discretized MultiSurface geometry, the Road/Railway/Square
// feature and CityFurniture/Building/Vegetation/GenericObject taxonomy,
// and the identifier registry that hands out the deterministic,
// collision-free GML ids every SB object carries.
package citymodel

import "errors"

// ErrIdentifierCollision is returned by Registry.Resolve when two distinct
// resolve calls hash to the same GML id — a defect in the caller's
// hash-key construction, since the per-key counter is supposed to make
// that impossible for any single key.
var ErrIdentifierCollision = errors.New("citymodel: identifier collision")
