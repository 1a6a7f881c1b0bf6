// Terrain generation using layered simplex noise.
// Fills an existing grid with integer elevation, water, terrain, and rivers.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Terrain type indices stored in Cell.TerrainType.
const (
	TerrainSand = iota
	TerrainGrass
	TerrainMud
	TerrainStone
	TerrainSnow
)

// GenConfig holds terrain generation parameters.
type GenConfig struct {
	Seed         int64   // Random seed (0 = random)
	MaxElevation int     // Highest elevation level
	WaterLevel   int     // Water level applied to every cell
	SeaLevel     float64 // Noise threshold below which land sinks under water (0.0–1.0)
	MountainLvl  float64 // Noise threshold for stone/snow terrain (0.0–1.0)
	Rivers       int     // Maximum number of rivers to trace
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:         0,
		MaxElevation: 6,
		WaterLevel:   1,
		SeaLevel:     0.25,
		MountainLvl:  0.72,
		Rivers:       4,
	}
}

// SmallTestConfig returns a fixed-seed configuration for tests.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Seed:         42,
		MaxElevation: 4,
		WaterLevel:   1,
		SeaLevel:     0.30,
		MountainLvl:  0.75,
		Rivers:       2,
	}
}

// Generate overwrites every cell of g with seeded terrain and returns the
// seed used.
func Generate(g *Grid, cfg GenConfig) int64 {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	elevNoise := opensimplex.NewNormalized(seed)
	rainNoise := opensimplex.NewNormalized(seed + 1)

	// Normalize sample positions so the map's shape is independent of size.
	span := float64(max(g.CellCountX, g.CellCountZ))

	g.Each(func(c *Cell) {
		x, z := c.Coord.Position()
		x /= InnerDiameter
		z /= InnerDiameter

		elev := octaveNoise(elevNoise, x, z, 4, 0.12, 0.5)
		rain := octaveNoise(rainNoise, x, z, 3, 0.08, 0.5)

		// Sink the border so the map reads as an island.
		col, row := c.Coord.Offset()
		dx := (float64(col) - float64(g.CellCountX-1)/2) / span * 2
		dz := (float64(row) - float64(g.CellCountZ-1)/2) / span * 2
		falloff := 1.0 - math.Pow(math.Sqrt(dx*dx+dz*dz), 3.5)
		if falloff < 0 {
			falloff = 0
		}
		elev *= falloff

		level := cfg.WaterLevel - 1
		if elev >= cfg.SeaLevel {
			land := (elev - cfg.SeaLevel) / (1 - cfg.SeaLevel)
			level = cfg.WaterLevel + int(land*float64(cfg.MaxElevation-cfg.WaterLevel+1))
			level = min(level, cfg.MaxElevation)
		}

		c.RemoveRiver()
		c.RemoveRoads()
		c.SetWaterLevel(cfg.WaterLevel)
		c.SetElevation(level)
		c.SetTerrainType(deriveTerrain(c, elev, rain, cfg))
		c.SetExplorable(true)
	})

	placeRivers(g, cfg, seed)
	return seed
}

// deriveTerrain determines the terrain type from elevation and rainfall.
func deriveTerrain(c *Cell, elev, rain float64, cfg GenConfig) int {
	switch {
	case c.IsUnderwater():
		return TerrainSand
	case elev > cfg.MountainLvl+0.1:
		return TerrainSnow
	case elev > cfg.MountainLvl:
		return TerrainStone
	case c.Elevation() == cfg.WaterLevel && rain < 0.45:
		return TerrainSand
	case rain > 0.65:
		return TerrainMud
	default:
		return TerrainGrass
	}
}

// placeRivers traces rivers downhill from a random selection of high cells.
func placeRivers(g *Grid, cfg GenConfig, seed int64) {
	if cfg.Rivers <= 0 {
		return
	}
	rng := rand.New(rand.NewSource(seed + 100))

	var sources []*Cell
	g.Each(func(c *Cell) {
		if !c.IsUnderwater() && c.Elevation() >= cfg.MaxElevation-1 {
			sources = append(sources, c)
		}
	})

	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	if len(sources) > cfg.Rivers {
		sources = sources[:cfg.Rivers]
	}

	for _, start := range sources {
		traceRiver(start)
	}
}

// traceRiver follows the steepest descent from a source cell until it
// reaches water or runs out of downhill neighbors free of rivers.
func traceRiver(start *Cell) {
	current := start
	for step := 0; step < 50; step++ {
		if current.IsUnderwater() || current.HasOutgoingRiver() {
			return
		}

		var best *Cell
		bestDir := NE
		for _, d := range Directions {
			n, ok := current.Neighbor(d)
			if !ok || n.HasRiver() {
				continue
			}
			if n.Elevation() > current.Elevation() {
				continue
			}
			if best == nil || n.Elevation() < best.Elevation() {
				best, bestDir = n, d
			}
		}
		if best == nil {
			return
		}

		current.SetOutgoingRiver(bestDir)
		if !current.HasOutgoingRiver() {
			return
		}
		current = best
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// TerrainCounts returns a summary of terrain type distribution.
func TerrainCounts(g *Grid) map[int]int {
	counts := make(map[int]int)
	g.Each(func(c *Cell) {
		counts[c.TerrainType()]++
	})
	return counts
}

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t int) string {
	switch t {
	case TerrainSand:
		return "Sand"
	case TerrainGrass:
		return "Grass"
	case TerrainMud:
		return "Mud"
	case TerrainStone:
		return "Stone"
	case TerrainSnow:
		return "Snow"
	default:
		return "Unknown"
	}
}
