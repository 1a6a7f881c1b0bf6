// Package world provides the hex grid, cell attributes, and spatial queries.
// Uses axial coordinates (x, z) for the hex grid; the cube coordinate y is derived.
package world

import (
	"fmt"
	"math"
)

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate y is derived: y = -x - z.
type HexCoord struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Y returns the implicit third cube coordinate.
func (h HexCoord) Y() int {
	return -h.X - h.Z
}

// FromOffset converts offset (column, row) array indices to hex coordinates.
func FromOffset(col, row int) HexCoord {
	return HexCoord{X: col - row/2, Z: row}
}

// Offset returns the (column, row) array indices of the coordinate.
func (h HexCoord) Offset() (col, row int) {
	return h.X + h.Z/2, h.Z
}

// Step returns the neighboring coordinate in the given direction.
func (h HexCoord) Step(d Direction) HexCoord {
	off := directionOffsets[d%6]
	return HexCoord{X: h.X + off.X, Z: h.Z + off.Z}
}

// Neighbors returns the six adjacent hex coordinates, indexed by Direction.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for d := NE; d <= NW; d++ {
		result[d] = h.Step(d)
	}
	return result
}

// DistanceTo returns the hex distance to another coordinate.
func (h HexCoord) DistanceTo(o HexCoord) int {
	return Distance(h, o)
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y() - b.Y())
	dz := abs(a.Z - b.Z)
	return (dx + dy + dz) / 2
}

// Position returns the center of the cell in world space (pointy-top layout).
func (h HexCoord) Position() (x, z float64) {
	col, row := h.Offset()
	x = (float64(col) + float64(row)*0.5 - float64(row/2)) * InnerDiameter
	z = float64(row) * OuterRadius * 1.5
	return
}

// FromPosition returns the coordinate of the cell containing a world position.
func FromPosition(px, pz float64) HexCoord {
	x := px / InnerDiameter
	y := -x
	offset := pz / (OuterRadius * 3)
	x -= offset
	y -= offset

	ix := int(math.Round(x))
	iy := int(math.Round(y))
	iz := int(math.Round(-x - y))

	if ix+iy+iz != 0 {
		dx := math.Abs(x - float64(ix))
		dy := math.Abs(y - float64(iy))
		dz := math.Abs(-x - y - float64(iz))
		if dx > dy && dx > dz {
			ix = -iy - iz
		} else if dz > dy {
			iz = -ix - iy
		}
	}
	return HexCoord{X: ix, Z: iz}
}

// Ring returns the coordinates at exactly distance k from center.
// If k == 0, returns [center].
func Ring(center HexCoord, k int) []HexCoord {
	if k <= 0 {
		return []HexCoord{center}
	}
	res := make([]HexCoord, 0, 6*k)
	cur := center
	for i := 0; i < k; i++ {
		cur = cur.Step(NE)
	}
	// Each side runs 120 degrees clockwise from the corner it starts on.
	for side := NE; side <= NW; side++ {
		walk := side.Next2()
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Step(walk)
		}
	}
	return res
}

// Disk returns all coordinates at distance <= r from center.
func Disk(center HexCoord, r int) []HexCoord {
	if r < 0 {
		return nil
	}
	res := make([]HexCoord, 0, 1+3*r*(r+1))
	for dx := -r; dx <= r; dx++ {
		for dz := max(-r, -dx-r); dz <= min(r, -dx+r); dz++ {
			res = append(res, HexCoord{X: center.X + dx, Z: center.Z + dz})
		}
	}
	return res
}

// String formats the coordinate as its cube triple.
func (h HexCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", h.X, h.Y(), h.Z)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
