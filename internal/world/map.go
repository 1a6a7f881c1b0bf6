package world

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a grid is created or resized with a
// non-positive dimension.
var ErrInvalidSize = errors.New("world: invalid grid size")

// Grid holds a fixed rectangular hex grid. Cells are stored row-major:
// index = column + row*CellCountX. The grid does not wrap.
type Grid struct {
	CellCountX int // Columns
	CellCountZ int // Rows

	cells      []Cell
	generation int

	// OnRefresh is called whenever a cell attribute actually changes.
	// Rendering layers use it to rebuild meshes; it may be nil.
	OnRefresh func(c *Cell)
}

// NewGrid creates a grid of x columns and z rows with default cells.
func NewGrid(x, z int) (*Grid, error) {
	g := &Grid{}
	if err := g.Resize(x, z); err != nil {
		return nil, err
	}
	return g, nil
}

// Resize discards all cells and allocates a fresh x by z grid.
// Pointers to old cells remain valid but no longer belong to the grid.
func (g *Grid) Resize(x, z int) error {
	if x <= 0 || z <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, x, z)
	}
	g.CellCountX = x
	g.CellCountZ = z
	g.generation++
	g.cells = make([]Cell, x*z)
	for row, i := 0, 0; row < z; row++ {
		for col := 0; col < x; col++ {
			g.cells[i] = Cell{
				Coord: FromOffset(col, row),
				Index: i,
				grid:  g,
			}
			i++
		}
	}
	return nil
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Generation changes every time the grid is resized. Cells and indices
// obtained under an older generation no longer belong to the grid.
func (g *Grid) Generation() int {
	return g.generation
}

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(coord HexCoord) bool {
	col, row := coord.Offset()
	return row >= 0 && row < g.CellCountZ && col >= 0 && col < g.CellCountX
}

// Cell returns the cell at the given coordinate, or false if out of bounds.
func (g *Grid) Cell(coord HexCoord) (*Cell, bool) {
	// Check the row first: Offset's column is only meaningful for rows in range.
	if coord.Z < 0 || coord.Z >= g.CellCountZ {
		return nil, false
	}
	col, row := coord.Offset()
	if col < 0 || col >= g.CellCountX {
		return nil, false
	}
	return &g.cells[col+row*g.CellCountX], true
}

// CellAt returns the cell at offset (column, row), or false if out of bounds.
func (g *Grid) CellAt(col, row int) (*Cell, bool) {
	if col < 0 || col >= g.CellCountX || row < 0 || row >= g.CellCountZ {
		return nil, false
	}
	return &g.cells[col+row*g.CellCountX], true
}

// CellByIndex returns the cell with the given flat index. The index must be valid.
func (g *Grid) CellByIndex(i int) *Cell {
	return &g.cells[i]
}

// CellFromPosition returns the cell containing a world-space position.
func (g *Grid) CellFromPosition(x, z float64) (*Cell, bool) {
	return g.Cell(FromPosition(x, z))
}

// CellsWithin returns the in-bounds cells at distance <= radius from center,
// ordered as Disk yields them.
func (g *Grid) CellsWithin(center HexCoord, radius int) []*Cell {
	var result []*Cell
	for _, coord := range Disk(center, radius) {
		if c, ok := g.Cell(coord); ok {
			result = append(result, c)
		}
	}
	return result
}

// Each calls fn for every cell in index order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, cells=%d)", g.CellCountX, g.CellCountZ, g.Len())
}
