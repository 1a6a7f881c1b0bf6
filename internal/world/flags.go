package world

// Flags describe the per-edge contents of a cell plus a few cell-wide bits.
type Flags uint32

const (
	FlagEmpty Flags = 0

	FlagRoadNE Flags = 1 << 0
	FlagRoads  Flags = 0b111111

	FlagRiverInNE Flags = 1 << 6
	FlagRiverIn   Flags = 0b111111 << 6

	FlagRiverOutNE Flags = 1 << 12
	FlagRiverOut   Flags = 0b111111 << 12

	FlagRiver = FlagRiverIn | FlagRiverOut

	FlagWalled     Flags = 1 << 18
	FlagExplored   Flags = 1 << 19
	FlagExplorable Flags = 1 << 20
)

// HasAny reports whether any bit of mask is set.
func (f Flags) HasAny(mask Flags) bool { return f&mask != 0 }

// HasAll reports whether every bit of mask is set.
func (f Flags) HasAll(mask Flags) bool { return f&mask == mask }

// HasNone reports whether no bit of mask is set.
func (f Flags) HasNone(mask Flags) bool { return f&mask == 0 }

// With returns f with the bits of mask set.
func (f Flags) With(mask Flags) Flags { return f | mask }

// Without returns f with the bits of mask cleared.
func (f Flags) Without(mask Flags) Flags { return f &^ mask }

func (f Flags) has(start Flags, d Direction) bool      { return f&(start<<d) != 0 }
func (f Flags) with(start Flags, d Direction) Flags    { return f | start<<d }
func (f Flags) without(start Flags, d Direction) Flags { return f &^ (start << d) }

func (f Flags) HasRoad(d Direction) bool          { return f.has(FlagRoadNE, d) }
func (f Flags) WithRoad(d Direction) Flags        { return f.with(FlagRoadNE, d) }
func (f Flags) WithoutRoad(d Direction) Flags     { return f.without(FlagRoadNE, d) }
func (f Flags) HasRiverIn(d Direction) bool       { return f.has(FlagRiverInNE, d) }
func (f Flags) WithRiverIn(d Direction) Flags     { return f.with(FlagRiverInNE, d) }
func (f Flags) WithoutRiverIn(d Direction) Flags  { return f.without(FlagRiverInNE, d) }
func (f Flags) HasRiverOut(d Direction) bool      { return f.has(FlagRiverOutNE, d) }
func (f Flags) WithRiverOut(d Direction) Flags    { return f.with(FlagRiverOutNE, d) }
func (f Flags) WithoutRiverOut(d Direction) Flags { return f.without(FlagRiverOutNE, d) }

// RiverInDirection returns the incoming river direction. Only valid if the river exists.
func (f Flags) RiverInDirection() Direction { return f.toDirection(6) }

// RiverOutDirection returns the outgoing river direction. Only valid if the river exists.
func (f Flags) RiverOutDirection() Direction { return f.toDirection(12) }

func (f Flags) toDirection(shift uint) Direction {
	switch (f >> shift) & 0b111111 {
	case 0b000001:
		return NE
	case 0b000010:
		return E
	case 0b000100:
		return SE
	case 0b001000:
		return SW
	case 0b010000:
		return W
	default:
		return NW
	}
}
