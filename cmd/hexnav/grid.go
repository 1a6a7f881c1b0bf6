package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/talgya/hexnav/internal/persistence"
	"github.com/talgya/hexnav/internal/world"
)

// loadGrid returns the map selected by --file or --map, or a freshly
// generated one.
func loadGrid() (*world.Grid, error) {
	g, err := world.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return nil, err
	}

	switch {
	case flagFile != "":
		rec, err := persistence.ReadFile(flagFile)
		if err != nil {
			return nil, err
		}
		if err := g.Load(rec); err != nil {
			return nil, fmt.Errorf("load %s: %w", flagFile, err)
		}
		slog.Info("map loaded", "file", flagFile, "grid", g)

	case flagMap != "":
		db, err := openDB()
		if err != nil {
			return nil, err
		}
		defer db.Close()

		rec, info, err := db.LoadMap(flagMap)
		if err != nil {
			return nil, err
		}
		if err := g.Load(rec); err != nil {
			return nil, fmt.Errorf("load map %q: %w", info.Name, err)
		}
		slog.Info("map loaded", "name", info.Name, "id", info.ID, "grid", g)

	default:
		seed := world.Generate(g, cfg.GenConfig())
		slog.Debug("map generated", "seed", seed, "grid", g)
	}
	return g, nil
}

func openDB() (*persistence.DB, error) {
	if dir := filepath.Dir(cfg.Storage.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return persistence.Open(cfg.Storage.DBPath)
}

// parseCell resolves "col,row" to a cell of g.
func parseCell(g *world.Grid, s string) (*world.Cell, error) {
	colStr, rowStr, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("cell %q: expected col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return nil, fmt.Errorf("cell %q: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return nil, fmt.Errorf("cell %q: %w", s, err)
	}
	c, ok := g.CellAt(col, row)
	if !ok {
		return nil, fmt.Errorf("cell %q outside %dx%d grid", s, g.CellCountX, g.CellCountZ)
	}
	return c, nil
}

// token is a placeholder unit standing on a cell.
type token struct {
	id string
}

func (t token) OccupantID() string { return t.id }

// placeUnits puts an anonymous unit on every listed cell.
func placeUnits(g *world.Grid, cells []string) error {
	for _, s := range cells {
		c, err := parseCell(g, s)
		if err != nil {
			return err
		}
		t := token{id: uuid.NewString()}
		c.SetOccupant(t)
		slog.Debug("unit placed", "cell", s, "id", t.id)
	}
	return nil
}
