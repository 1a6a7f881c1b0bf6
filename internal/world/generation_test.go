package world

import (
	"reflect"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := SmallTestConfig()

	g1 := newTestGrid(t, 16, 12)
	g2 := newTestGrid(t, 16, 12)
	if seed := Generate(g1, cfg); seed != cfg.Seed {
		t.Errorf("Generate() seed = %d, expected %d", seed, cfg.Seed)
	}
	Generate(g2, cfg)

	if !reflect.DeepEqual(g1.Save(), g2.Save()) {
		t.Error("same seed produced different terrain")
	}
}

func TestGenerateInvariants(t *testing.T) {
	cfg := SmallTestConfig()
	g := newTestGrid(t, 20, 15)
	Generate(g, cfg)

	land := 0
	g.Each(func(c *Cell) {
		if c.Elevation() < cfg.WaterLevel-1 || c.Elevation() > cfg.MaxElevation {
			t.Errorf("cell %v elevation %d out of range", c.Coord, c.Elevation())
		}
		if c.WaterLevel() != cfg.WaterLevel {
			t.Errorf("cell %v water level %d", c.Coord, c.WaterLevel())
		}
		if !c.IsUnderwater() {
			land++
		}
		if TerrainName(c.TerrainType()) == "Unknown" {
			t.Errorf("cell %v has unknown terrain %d", c.Coord, c.TerrainType())
		}
		if c.HasOutgoingRiver() {
			n, ok := c.Neighbor(c.OutgoingRiver())
			if !ok || !n.HasIncomingRiver() || n.IncomingRiver() != c.OutgoingRiver().Opposite() {
				t.Errorf("river out of %v has no matching inflow", c.Coord)
			}
			if n.Elevation() > c.Elevation() {
				t.Errorf("river out of %v flows uphill", c.Coord)
			}
		}
	})
	if land == 0 {
		t.Error("generated map has no land")
	}

	total := 0
	for _, n := range TerrainCounts(g) {
		total += n
	}
	if total != g.Len() {
		t.Errorf("TerrainCounts() total = %d, expected %d", total, g.Len())
	}
}
