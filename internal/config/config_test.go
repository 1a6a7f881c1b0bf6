package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/talgya/hexnav/internal/search"
	"github.com/talgya/hexnav/internal/world"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grid.Width != 20 || cfg.Grid.Height != 15 {
		t.Errorf("grid = %dx%d, expected 20x15", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Unit.Speed != 3 || cfg.Unit.MaxClimb != 1 {
		t.Errorf("unit = %+v", cfg.Unit)
	}
	if cfg.Terrain.Seed != 42 {
		t.Errorf("terrain seed = %d, expected 42", cfg.Terrain.Seed)
	}
	if cfg.Storage.DBPath != "data/hexnav.db" || cfg.Log.Level != "info" {
		t.Errorf("storage = %+v, log = %+v", cfg.Storage, cfg.Log)
	}
	if cfg.EngineConfig().Relaxation != search.DecreaseKey {
		t.Error("default relaxation should be decrease-key")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
grid:
  width: 8
  height: 6
unit:
  speed: 5
search:
  relaxation: relax-once
  max_chain: 100
log:
  level: debug
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Grid.Width != 8 || cfg.Grid.Height != 6 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if w := cfg.Walker(); w.Speed != 5 || w.MaxClimb != 1 {
		t.Errorf("Walker() = %+v", w)
	}
	ec := cfg.EngineConfig()
	if ec.Relaxation != search.RelaxOnce || ec.MaxChain != 100 {
		t.Errorf("EngineConfig() = %+v", ec)
	}
	if gen := cfg.GenConfig(); gen.Seed != 42 || gen.MaxElevation != world.DefaultGenConfig().MaxElevation {
		t.Errorf("GenConfig() = %+v", gen)
	}
	if lvl, _ := ParseLevel(cfg.Log.Level); lvl != slog.LevelDebug {
		t.Errorf("log level = %v", lvl)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "grid: [unclosed"},
		{"negative width", "grid:\n  width: -3\n"},
		{"negative speed", "unit:\n  speed: -1\n"},
		{"unknown relaxation", "search:\n  relaxation: greedy\n"},
		{"unknown log level", "log:\n  level: loud\n"},
		{"water above peaks", "terrain:\n  water_level: 9\n  max_elevation: 4\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("Parse() succeeded, expected an error")
			}
		})
	}

	if _, err := Parse([]byte("grid:\n  width: -1\n")); !errors.Is(err, world.ErrInvalidSize) {
		t.Errorf("negative width error = %v, expected ErrInvalidSize", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexnav.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 11\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Width != 11 || cfg.Grid.Height != 15 {
		t.Errorf("grid = %+v", cfg.Grid)
	}

	t.Setenv(EnvPath, path)
	cfg, err = Load("")
	if err != nil || cfg.Grid.Width != 11 {
		t.Errorf("Load(\"\") with %s = %+v, %v", EnvPath, cfg, err)
	}

	t.Setenv(EnvPath, "")
	cfg, err = Load("")
	if err != nil || cfg.Grid.Width != 20 {
		t.Errorf("Load(\"\") without env = %+v, %v", cfg, err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v", err)
	}
}
