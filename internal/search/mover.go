package search

import "github.com/talgya/hexnav/internal/world"

// Mover describes the movement rules of a unit.
type Mover interface {
	// IsValidDestination reports whether the unit may stand on c.
	IsValidDestination(c *world.Cell) bool
	// MoveCost returns the cost of stepping from one cell to its neighbor in
	// direction d. A negative cost blocks the edge.
	MoveCost(from, to *world.Cell, d world.Direction) int
	// MovementRange is the movement budget of one turn.
	MovementRange() int
}

// Walker is the default land unit: it cannot enter water or occupied cells,
// cross walls, or climb more than MaxClimb levels per step.
type Walker struct {
	Speed    int
	MaxClimb int // 0 means 1
}

func (w Walker) IsValidDestination(c *world.Cell) bool {
	return world.IsValidDestination(c)
}

func (w Walker) MoveCost(from, to *world.Cell, d world.Direction) int {
	climb := w.MaxClimb
	if climb <= 0 {
		climb = 1
	}
	if climb == 1 {
		return world.MoveCost(from, to, d)
	}
	if !world.IsValidDestination(to) || from.Walled() != to.Walled() {
		return world.Blocked
	}
	if diff := from.Elevation() - to.Elevation(); diff > climb || -diff > climb {
		return world.Blocked
	}
	return 1
}

func (w Walker) MovementRange() int {
	return w.Speed
}
