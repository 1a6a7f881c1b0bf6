package world

// Layout constants for converting between hex coordinates and world space.
const (
	OuterToInner  = 0.866025404
	OuterRadius   = 10.0
	InnerRadius   = OuterRadius * OuterToInner
	InnerDiameter = InnerRadius * 2
)

// EdgeType classifies the connection between two adjacent cells by elevation.
type EdgeType uint8

const (
	EdgeFlat  EdgeType = iota // Same elevation
	EdgeSlope                 // One level apart; walkable
	EdgeCliff                 // Two or more levels apart
)

// EdgeTypeOf returns the edge type between two elevations.
func EdgeTypeOf(elevation1, elevation2 int) EdgeType {
	if elevation1 == elevation2 {
		return EdgeFlat
	}
	if delta := elevation2 - elevation1; delta == 1 || delta == -1 {
		return EdgeSlope
	}
	return EdgeCliff
}

// String returns a human-readable name for an edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeFlat:
		return "flat"
	case EdgeSlope:
		return "slope"
	case EdgeCliff:
		return "cliff"
	default:
		return "unknown"
	}
}
