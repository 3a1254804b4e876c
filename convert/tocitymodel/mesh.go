package tocitymodel

import (
	"github.com/go-roadspaces/roadspaces/citymodel"
	"github.com/go-roadspaces/roadspaces/solid"
	"github.com/go-roadspaces/roadspaces/spatial"
)

// gridCell is one quad cell of a rows x cols point grid, identified by
// its top-left corner.
type gridCell struct{ row, col int }

// gridComponents is a disjoint-set union over a grid's quad cells,
// unioning each cell with its row- and column-adjacent neighbor —
// adapted from gridgraph's 4-neighborhood connected-components pass,
// repurposed here to check a discretized mesh before it is accepted as a
// MultiSurface rather than to partition a graph.
type gridComponents struct {
	parent map[gridCell]gridCell
}

func newGridComponents(rows, cols int) *gridComponents {
	dsu := &gridComponents{parent: make(map[gridCell]gridCell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := gridCell{r, c}
			dsu.parent[cell] = cell
		}
	}
	return dsu
}

func (dsu *gridComponents) find(c gridCell) gridCell {
	p := dsu.parent[c]
	if p == c {
		return c
	}
	root := dsu.find(p)
	dsu.parent[c] = root
	return root
}

func (dsu *gridComponents) union(a, b gridCell) {
	ra, rb := dsu.find(a), dsu.find(b)
	if ra != rb {
		dsu.parent[ra] = rb
	}
}

// gridMesh triangulates a rows x cols point grid into faces and rejects
// it unless every cell belongs to one connected component — the
// mesh-connectivity check every discretized surface in this package must
// pass before becoming a MultiSurface. Each quad cell becomes two triangles
// rather than one quad, since a ruled surface's four corners are not
// guaranteed coplanar within tol even when each triangle trivially is.
func gridMesh(points [][]spatial.Vector3D, tol float64) (citymodel.MultiSurface, error) {
	rows := len(points)
	if rows < 2 {
		return nil, ErrBoundaryGenerationFailure
	}
	cols := len(points[0])
	if cols < 2 {
		return nil, ErrBoundaryGenerationFailure
	}
	for _, row := range points {
		if len(row) != cols {
			return nil, ErrBoundaryGenerationFailure
		}
	}

	cellRows, cellCols := rows-1, cols-1
	dsu := newGridComponents(cellRows, cellCols)
	for r := 0; r < cellRows; r++ {
		for c := 0; c < cellCols; c++ {
			cell := gridCell{r, c}
			if r+1 < cellRows {
				dsu.union(cell, gridCell{r + 1, c})
			}
			if c+1 < cellCols {
				dsu.union(cell, gridCell{r, c + 1})
			}
		}
	}
	root := dsu.find(gridCell{0, 0})
	for r := 0; r < cellRows; r++ {
		for c := 0; c < cellCols; c++ {
			if dsu.find(gridCell{r, c}) != root {
				return nil, ErrBoundaryGenerationFailure
			}
		}
	}

	faces := make([]solid.Polygon3D, 0, cellRows*cellCols*2)
	for r := 0; r < cellRows; r++ {
		for c := 0; c < cellCols; c++ {
			p00 := points[r][c]
			p01 := points[r][c+1]
			p10 := points[r+1][c]
			p11 := points[r+1][c+1]

			first, err := triangle(p00, p01, p11, tol)
			if err != nil {
				return nil, err
			}
			second, err := triangle(p00, p11, p10, tol)
			if err != nil {
				return nil, err
			}
			faces = append(faces, first, second)
		}
	}
	return faces, nil
}

func triangle(a, b, c spatial.Vector3D, tol float64) (solid.Polygon3D, error) {
	ring, err := solid.NewLinearRing3D([]spatial.Vector3D{a, b, c}, tol)
	if err != nil {
		return solid.Polygon3D{}, err
	}
	return solid.NewPolygon3D(ring), nil
}
