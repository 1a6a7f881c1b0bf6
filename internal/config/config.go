// Package config loads hexnav settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexnav/internal/search"
	"github.com/talgya/hexnav/internal/world"
)

// EnvPath names the environment variable consulted when no config path is given.
const EnvPath = "HEXNAV_CONFIG"

// Config holds all hexnav configuration
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Terrain TerrainConfig `yaml:"terrain"`
	Unit    UnitConfig    `yaml:"unit"`
	Search  SearchConfig  `yaml:"search"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig holds the grid dimensions in cells
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TerrainConfig holds terrain generation settings
type TerrainConfig struct {
	Seed          int64   `yaml:"seed"`
	MaxElevation  int     `yaml:"max_elevation"`
	WaterLevel    int     `yaml:"water_level"`
	SeaLevel      float64 `yaml:"sea_level"`
	MountainLevel float64 `yaml:"mountain_level"`
	Rivers        int     `yaml:"rivers"` // negative disables rivers
}

// UnitConfig holds the default unit's movement rules
type UnitConfig struct {
	Speed    int `yaml:"speed"`     // movement points per turn
	MaxClimb int `yaml:"max_climb"` // elevation levels per step
}

// SearchConfig holds path search settings
type SearchConfig struct {
	Relaxation    string `yaml:"relaxation"` // decrease-key or relax-once
	MaxChain      int    `yaml:"max_chain"`  // 0 = grid cell count
	MaxPathLength int    `yaml:"max_path_length"`
}

// StorageConfig holds snapshot storage settings
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file. An empty path falls back to
// $HEXNAV_CONFIG, and to the defaults when that is unset too.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Grid.Width == 0 {
		c.Grid.Width = 20
	}
	if c.Grid.Height == 0 {
		c.Grid.Height = 15
	}

	gen := world.DefaultGenConfig()
	if c.Terrain.Seed == 0 {
		c.Terrain.Seed = 42
	}
	if c.Terrain.MaxElevation == 0 {
		c.Terrain.MaxElevation = gen.MaxElevation
	}
	if c.Terrain.WaterLevel == 0 {
		c.Terrain.WaterLevel = gen.WaterLevel
	}
	if c.Terrain.SeaLevel == 0 {
		c.Terrain.SeaLevel = gen.SeaLevel
	}
	if c.Terrain.MountainLevel == 0 {
		c.Terrain.MountainLevel = gen.MountainLvl
	}
	if c.Terrain.Rivers == 0 {
		c.Terrain.Rivers = gen.Rivers
	}

	if c.Unit.Speed == 0 {
		c.Unit.Speed = 3
	}
	if c.Unit.MaxClimb == 0 {
		c.Unit.MaxClimb = 1
	}
	if c.Search.Relaxation == "" {
		c.Search.Relaxation = search.DecreaseKey.String()
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = "data/hexnav.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Grid.Width < 0 || c.Grid.Height < 0 {
		return fmt.Errorf("grid size %dx%d: %w", c.Grid.Width, c.Grid.Height, world.ErrInvalidSize)
	}
	if c.Unit.Speed < 0 {
		return fmt.Errorf("unit speed must not be negative, got %d", c.Unit.Speed)
	}
	if c.Unit.MaxClimb < 0 {
		return fmt.Errorf("unit max_climb must not be negative, got %d", c.Unit.MaxClimb)
	}
	if c.Terrain.WaterLevel > c.Terrain.MaxElevation {
		return fmt.Errorf("terrain water_level %d above max_elevation %d",
			c.Terrain.WaterLevel, c.Terrain.MaxElevation)
	}
	if _, err := search.ParseRelaxation(c.Search.Relaxation); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// GenConfig returns the terrain settings as generator parameters.
func (c *Config) GenConfig() world.GenConfig {
	return world.GenConfig{
		Seed:         c.Terrain.Seed,
		MaxElevation: c.Terrain.MaxElevation,
		WaterLevel:   c.Terrain.WaterLevel,
		SeaLevel:     c.Terrain.SeaLevel,
		MountainLvl:  c.Terrain.MountainLevel,
		Rivers:       c.Terrain.Rivers,
	}
}

// Walker returns the configured default unit.
func (c *Config) Walker() search.Walker {
	return search.Walker{Speed: c.Unit.Speed, MaxClimb: c.Unit.MaxClimb}
}

// EngineConfig returns search engine settings. Sink and logger are left to
// the caller.
func (c *Config) EngineConfig() search.Config {
	relax, _ := search.ParseRelaxation(c.Search.Relaxation)
	return search.Config{
		Relaxation: relax,
		MaxChain:   c.Search.MaxChain,
	}
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown level %q", s)
	}
}
