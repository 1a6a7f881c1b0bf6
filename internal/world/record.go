package world

import (
	"errors"
	"fmt"
)

// RecordVersion is the current MapRecord format version.
const RecordVersion = 1

// ErrRecordMismatch is returned when a record's cell list does not match its
// declared dimensions or uses an unknown version.
var ErrRecordMismatch = errors.New("world: record mismatch")

// riverBit marks a present river in a record's river field; the low bits
// hold the direction.
const riverBit = 128

// CellRecord is the persisted attribute set of one cell.
type CellRecord struct {
	TerrainType   int  `msgpack:"t" db:"terrain_type"`
	Elevation     int  `msgpack:"e" db:"elevation"`
	WaterLevel    int  `msgpack:"w" db:"water_level"`
	UrbanLevel    int  `msgpack:"u" db:"urban_level"`
	FarmLevel     int  `msgpack:"f" db:"farm_level"`
	PlantLevel    int  `msgpack:"p" db:"plant_level"`
	SpecialIndex  int  `msgpack:"s" db:"special_index"`
	Walled        bool `msgpack:"wl" db:"walled"`
	IncomingRiver int  `msgpack:"ri" db:"incoming_river"` // direction+128, or 0
	OutgoingRiver int  `msgpack:"ro" db:"outgoing_river"` // direction+128, or 0
	Roads         int  `msgpack:"r" db:"roads"`           // one bit per direction
}

// MapRecord is a full grid in row-major cell order.
type MapRecord struct {
	Version    int          `msgpack:"v"`
	CellCountX int          `msgpack:"x"`
	CellCountZ int          `msgpack:"z"`
	Cells      []CellRecord `msgpack:"cells"`
}

// Record captures the persisted attributes of the cell.
func (c *Cell) Record() CellRecord {
	r := CellRecord{
		TerrainType:  c.terrainType,
		Elevation:    c.elevation,
		WaterLevel:   c.waterLevel,
		UrbanLevel:   c.urbanLevel,
		FarmLevel:    c.farmLevel,
		PlantLevel:   c.plantLevel,
		SpecialIndex: c.specialIndex,
		Walled:       c.Walled(),
		Roads:        int(c.flags & FlagRoads),
	}
	if c.HasIncomingRiver() {
		r.IncomingRiver = int(c.IncomingRiver()) + riverBit
	}
	if c.HasOutgoingRiver() {
		r.OutgoingRiver = int(c.OutgoingRiver()) + riverBit
	}
	return r
}

// apply overwrites the cell's attributes with r without notifying the grid.
// Occupants and the explorable bit are not part of the record.
func (c *Cell) apply(r CellRecord) {
	c.terrainType = r.TerrainType
	c.elevation = r.Elevation
	c.waterLevel = r.WaterLevel
	c.urbanLevel = r.UrbanLevel
	c.farmLevel = r.FarmLevel
	c.plantLevel = r.PlantLevel
	c.specialIndex = r.SpecialIndex

	f := c.flags & (FlagExplored | FlagExplorable)
	f |= Flags(r.Roads) & FlagRoads
	if r.Walled {
		f = f.With(FlagWalled)
	}
	if r.IncomingRiver >= riverBit {
		f = f.WithRiverIn(Direction((r.IncomingRiver - riverBit) % 6))
	}
	if r.OutgoingRiver >= riverBit {
		f = f.WithRiverOut(Direction((r.OutgoingRiver - riverBit) % 6))
	}
	c.flags = f
}

// Save returns the grid's raw cell records.
func (g *Grid) Save() MapRecord {
	rec := MapRecord{
		Version:    RecordVersion,
		CellCountX: g.CellCountX,
		CellCountZ: g.CellCountZ,
		Cells:      make([]CellRecord, len(g.cells)),
	}
	for i := range g.cells {
		rec.Cells[i] = g.cells[i].Record()
	}
	return rec
}

// Load replaces the grid's cell attributes with those of rec, resizing the
// grid when the dimensions differ. Every cell is refreshed afterwards.
func (g *Grid) Load(rec MapRecord) error {
	if rec.Version < 1 || rec.Version > RecordVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrRecordMismatch, rec.Version)
	}
	if rec.CellCountX <= 0 || rec.CellCountZ <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, rec.CellCountX, rec.CellCountZ)
	}
	if len(rec.Cells) != rec.CellCountX*rec.CellCountZ {
		return fmt.Errorf("%w: %d cells for %dx%d grid",
			ErrRecordMismatch, len(rec.Cells), rec.CellCountX, rec.CellCountZ)
	}

	if rec.CellCountX != g.CellCountX || rec.CellCountZ != g.CellCountZ {
		if err := g.Resize(rec.CellCountX, rec.CellCountZ); err != nil {
			return err
		}
	}
	for i := range g.cells {
		g.cells[i].apply(rec.Cells[i])
	}
	for i := range g.cells {
		g.cells[i].refresh()
	}
	return nil
}
