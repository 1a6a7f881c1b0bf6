package world

// Blocked is the move cost of an edge that cannot be crossed.
const Blocked = -1

// IsValidDestination reports whether a unit may end its move on c:
// the cell must be dry and unoccupied.
func IsValidDestination(c *Cell) bool {
	return !c.IsUnderwater() && !c.IsOccupied()
}

// MoveCost returns the cost of stepping from one cell onto its neighbor in
// direction d, or Blocked. Every passable edge costs 1.
func MoveCost(from, to *Cell, d Direction) int {
	if !IsValidDestination(to) {
		return Blocked
	}
	if from.EdgeType(to) == EdgeCliff {
		return Blocked
	}
	if from.Walled() != to.Walled() {
		return Blocked
	}
	return 1
}
