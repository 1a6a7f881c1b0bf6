package world

// Occupant is something standing on a cell, typically a unit. Occupants are
// owned by the caller; the grid only keeps a reference for destination checks.
type Occupant interface {
	OccupantID() string
}

// Cell is a single tile of the grid.
//
// Attribute setters notify the owning grid's OnRefresh hook when a value
// actually changes. Search data is kept by search engines, not on the cell.
type Cell struct {
	Coord HexCoord
	Index int // Position in the grid's flat cell array

	grid *Grid

	flags        Flags
	terrainType  int
	elevation    int
	waterLevel   int
	urbanLevel   int
	farmLevel    int
	plantLevel   int
	specialIndex int

	occupant Occupant
}

// Elevation returns the surface elevation level.
func (c *Cell) Elevation() int { return c.elevation }

// WaterLevel returns the water elevation level.
func (c *Cell) WaterLevel() int { return c.waterLevel }

// ViewElevation is the highest of surface and water level.
func (c *Cell) ViewElevation() int {
	if c.elevation >= c.waterLevel {
		return c.elevation
	}
	return c.waterLevel
}

// IsUnderwater reports whether water is higher than the surface.
func (c *Cell) IsUnderwater() bool { return c.waterLevel > c.elevation }

func (c *Cell) TerrainType() int  { return c.terrainType }
func (c *Cell) UrbanLevel() int   { return c.urbanLevel }
func (c *Cell) FarmLevel() int    { return c.farmLevel }
func (c *Cell) PlantLevel() int   { return c.plantLevel }
func (c *Cell) SpecialIndex() int { return c.specialIndex }
func (c *Cell) IsSpecial() bool   { return c.specialIndex > 0 }
func (c *Cell) Flags() Flags      { return c.flags }

func (c *Cell) Walled() bool           { return c.flags.HasAny(FlagWalled) }
func (c *Cell) Explorable() bool       { return c.flags.HasAny(FlagExplorable) }
func (c *Cell) HasIncomingRiver() bool { return c.flags.HasAny(FlagRiverIn) }
func (c *Cell) HasOutgoingRiver() bool { return c.flags.HasAny(FlagRiverOut) }
func (c *Cell) HasRiver() bool         { return c.flags.HasAny(FlagRiver) }
func (c *Cell) HasRoads() bool         { return c.flags.HasAny(FlagRoads) }

// HasRiverBeginOrEnd reports whether a river starts or ends in the cell.
func (c *Cell) HasRiverBeginOrEnd() bool { return c.HasIncomingRiver() != c.HasOutgoingRiver() }

// IncomingRiver returns the incoming river direction. Only valid if HasIncomingRiver.
func (c *Cell) IncomingRiver() Direction { return c.flags.RiverInDirection() }

// OutgoingRiver returns the outgoing river direction. Only valid if HasOutgoingRiver.
func (c *Cell) OutgoingRiver() Direction { return c.flags.RiverOutDirection() }

func (c *Cell) HasRoadThroughEdge(d Direction) bool  { return c.flags.HasRoad(d) }
func (c *Cell) HasRiverThroughEdge(d Direction) bool { return c.flags.HasRiverIn(d) || c.flags.HasRiverOut(d) }

// Occupant returns the unit standing on the cell, or nil.
func (c *Cell) Occupant() Occupant { return c.occupant }

// IsOccupied reports whether a unit stands on the cell.
func (c *Cell) IsOccupied() bool { return c.occupant != nil }

// Neighbor returns the adjacent cell in direction d, if it exists.
func (c *Cell) Neighbor(d Direction) (*Cell, bool) {
	return c.grid.Cell(c.Coord.Step(d))
}

// EdgeType returns the edge type between this cell and another.
func (c *Cell) EdgeType(other *Cell) EdgeType {
	return EdgeTypeOf(c.elevation, other.elevation)
}

// ElevationDifference returns the absolute elevation difference with the
// neighbor in direction d, or 0 if there is no neighbor.
func (c *Cell) ElevationDifference(d Direction) int {
	n, ok := c.Neighbor(d)
	if !ok {
		return 0
	}
	return abs(c.elevation - n.elevation)
}

// ── Mutation ─────────────────────────────────────────────────────────

// SetElevation changes the surface elevation and drops rivers that would now flow uphill.
func (c *Cell) SetElevation(v int) {
	if c.elevation == v {
		return
	}
	c.elevation = v
	c.validateRivers()
	c.validateRoads()
	c.refresh()
}

// SetWaterLevel changes the water level and drops rivers that became invalid.
func (c *Cell) SetWaterLevel(v int) {
	if c.waterLevel == v {
		return
	}
	c.waterLevel = v
	c.validateRivers()
	c.refresh()
}

func (c *Cell) SetTerrainType(v int) {
	if c.terrainType != v {
		c.terrainType = v
		c.refresh()
	}
}

func (c *Cell) SetUrbanLevel(v int) {
	if c.urbanLevel != v {
		c.urbanLevel = v
		c.refresh()
	}
}

func (c *Cell) SetFarmLevel(v int) {
	if c.farmLevel != v {
		c.farmLevel = v
		c.refresh()
	}
}

func (c *Cell) SetPlantLevel(v int) {
	if c.plantLevel != v {
		c.plantLevel = v
		c.refresh()
	}
}

// SetSpecialIndex places a special feature. Refused on river cells; removes roads.
func (c *Cell) SetSpecialIndex(v int) {
	if c.specialIndex == v || c.HasRiver() {
		return
	}
	c.specialIndex = v
	c.RemoveRoads()
	c.refresh()
}

// SetWalled marks the cell as inside or outside a walled region.
func (c *Cell) SetWalled(walled bool) {
	f := c.flags.Without(FlagWalled)
	if walled {
		f = f.With(FlagWalled)
	}
	if f != c.flags {
		c.flags = f
		c.refresh()
	}
}

// SetExplorable controls whether the cell can ever count as explored.
func (c *Cell) SetExplorable(explorable bool) {
	if explorable {
		c.flags = c.flags.With(FlagExplorable)
	} else {
		c.flags = c.flags.Without(FlagExplorable)
	}
}

// SetOccupant places a unit on the cell, replacing any previous occupant.
func (c *Cell) SetOccupant(o Occupant) {
	c.occupant = o
}

// ClearOccupant removes the unit from the cell.
func (c *Cell) ClearOccupant() {
	c.occupant = nil
}

// SetOutgoingRiver makes a river flow out of the cell towards d. The
// neighbor must exist and not be higher, unless its surface is at this
// cell's water level.
func (c *Cell) SetOutgoingRiver(d Direction) {
	if c.flags.HasRiverOut(d) {
		return
	}
	n, ok := c.Neighbor(d)
	if !ok || !c.isValidRiverDestination(n) {
		return
	}

	c.RemoveOutgoingRiver()
	if c.flags.HasRiverIn(d) {
		c.RemoveIncomingRiver()
	}

	c.flags = c.flags.WithRiverOut(d)
	c.specialIndex = 0
	n.RemoveIncomingRiver()
	n.flags = n.flags.WithRiverIn(d.Opposite())
	n.specialIndex = 0

	c.removeRoad(d)
	c.refresh()
	n.refresh()
}

// RemoveOutgoingRiver removes the outgoing river, if any.
func (c *Cell) RemoveOutgoingRiver() {
	if !c.HasOutgoingRiver() {
		return
	}
	d := c.OutgoingRiver()
	c.flags = c.flags.Without(FlagRiverOut)
	if n, ok := c.Neighbor(d); ok {
		n.flags = n.flags.Without(FlagRiverIn)
		n.refresh()
	}
	c.refresh()
}

// RemoveIncomingRiver removes the incoming river, if any.
func (c *Cell) RemoveIncomingRiver() {
	if !c.HasIncomingRiver() {
		return
	}
	d := c.IncomingRiver()
	c.flags = c.flags.Without(FlagRiverIn)
	if n, ok := c.Neighbor(d); ok {
		n.flags = n.flags.Without(FlagRiverOut)
		n.refresh()
	}
	c.refresh()
}

// RemoveRiver removes both incoming and outgoing rivers.
func (c *Cell) RemoveRiver() {
	c.RemoveOutgoingRiver()
	c.RemoveIncomingRiver()
}

// AddRoad adds a road through edge d. Roads never cross rivers, touch
// special features, or climb more than one level.
func (c *Cell) AddRoad(d Direction) {
	n, ok := c.Neighbor(d)
	if !ok {
		return
	}
	if c.flags.HasRoad(d) || c.HasRiverThroughEdge(d) ||
		c.IsSpecial() || n.IsSpecial() ||
		abs(c.elevation-n.elevation) > 1 {
		return
	}
	c.flags = c.flags.WithRoad(d)
	n.flags = n.flags.WithRoad(d.Opposite())
	n.refresh()
	c.refresh()
}

// RemoveRoads removes all roads from the cell.
func (c *Cell) RemoveRoads() {
	for _, d := range Directions {
		if c.flags.HasRoad(d) {
			c.removeRoad(d)
		}
	}
}

func (c *Cell) removeRoad(d Direction) {
	c.flags = c.flags.WithoutRoad(d)
	if n, ok := c.Neighbor(d); ok {
		n.flags = n.flags.WithoutRoad(d.Opposite())
		n.refresh()
	}
	c.refresh()
}

func (c *Cell) isValidRiverDestination(n *Cell) bool {
	return n != nil && (c.elevation >= n.elevation || c.waterLevel == n.elevation)
}

func (c *Cell) validateRivers() {
	if c.HasOutgoingRiver() {
		if n, ok := c.Neighbor(c.OutgoingRiver()); !ok || !c.isValidRiverDestination(n) {
			c.RemoveOutgoingRiver()
		}
	}
	if c.HasIncomingRiver() {
		if n, ok := c.Neighbor(c.IncomingRiver()); !ok || !n.isValidRiverDestination(c) {
			c.RemoveIncomingRiver()
		}
	}
}

// validateRoads drops roads that became too steep after an elevation change.
func (c *Cell) validateRoads() {
	for _, d := range Directions {
		if c.flags.HasRoad(d) && c.ElevationDifference(d) > 1 {
			c.removeRoad(d)
		}
	}
}

func (c *Cell) refresh() {
	if c.grid != nil && c.grid.OnRefresh != nil {
		c.grid.OnRefresh(c)
	}
}
