package world

// Direction is one of the six hex directions, pointy side up (north).
type Direction uint8

const (
	NE Direction = iota // Northeast
	E                   // East
	SE                  // Southeast
	SW                  // Southwest
	W                   // West
	NW                  // Northwest
)

// Directions lists all six directions in clockwise order starting at NE.
var Directions = [6]Direction{NE, E, SE, SW, W, NW}

// directionOffsets are the axial (x, z) unit steps, indexed by Direction.
var directionOffsets = [6]HexCoord{
	NE: {X: 0, Z: 1},
	E:  {X: 1, Z: 0},
	SE: {X: 1, Z: -1},
	SW: {X: 0, Z: -1},
	W:  {X: -1, Z: 0},
	NW: {X: -1, Z: 1},
}

// Opposite returns the direction rotated 180 degrees.
func (d Direction) Opposite() Direction {
	if d < 3 {
		return d + 3
	}
	return d - 3
}

// Previous returns the direction rotated one step counter-clockwise.
func (d Direction) Previous() Direction {
	if d == NE {
		return NW
	}
	return d - 1
}

// Next returns the direction rotated one step clockwise.
func (d Direction) Next() Direction {
	if d == NW {
		return NE
	}
	return d + 1
}

// Previous2 returns the direction rotated two steps counter-clockwise.
func (d Direction) Previous2() Direction {
	return (d + 4) % 6
}

// Next2 returns the direction rotated two steps clockwise.
func (d Direction) Next2() Direction {
	return (d + 2) % 6
}

// String returns the compass abbreviation.
func (d Direction) String() string {
	switch d {
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	default:
		return "?"
	}
}
