// Package persistence provides SQLite-based map snapshot storage and
// msgpack map files.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexnav/internal/world"
)

// ErrMapNotFound is returned when no stored map matches a name or ID.
var ErrMapNotFound = errors.New("persistence: map not found")

// DB wraps a SQLite connection for map snapshots.
type DB struct {
	conn *sqlx.DB
}

// MapInfo describes a stored map without its cells.
type MapInfo struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Version     int    `db:"version"`
	CellCountX  int    `db:"cell_count_x"`
	CellCountZ  int    `db:"cell_count_z"`
	Seed        int64  `db:"seed"`
	CreatedUnix int64  `db:"created_at"`
}

// Created returns the time the snapshot was written.
func (m MapInfo) Created() time.Time {
	return time.Unix(m.CreatedUnix, 0)
}

// Cells returns the number of cells in the stored map.
func (m MapInfo) Cells() int {
	return m.CellCountX * m.CellCountZ
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		version INTEGER NOT NULL,
		cell_count_x INTEGER NOT NULL,
		cell_count_z INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cells (
		map_id TEXT NOT NULL REFERENCES maps(id) ON DELETE CASCADE,
		idx INTEGER NOT NULL,
		terrain_type INTEGER NOT NULL,
		elevation INTEGER NOT NULL,
		water_level INTEGER NOT NULL,
		urban_level INTEGER NOT NULL,
		farm_level INTEGER NOT NULL,
		plant_level INTEGER NOT NULL,
		special_index INTEGER NOT NULL,
		walled INTEGER NOT NULL,
		incoming_river INTEGER NOT NULL,
		outgoing_river INTEGER NOT NULL,
		roads INTEGER NOT NULL,
		PRIMARY KEY (map_id, idx)
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_maps_created ON maps(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveMap stores rec under name, replacing any map with the same name.
func (db *DB) SaveMap(name string, rec world.MapRecord, seed int64) (MapInfo, error) {
	if len(rec.Cells) != rec.CellCountX*rec.CellCountZ {
		return MapInfo{}, fmt.Errorf("save map %q: %w", name, world.ErrRecordMismatch)
	}

	info := MapInfo{
		ID:          uuid.NewString(),
		Name:        name,
		Version:     rec.Version,
		CellCountX:  rec.CellCountX,
		CellCountZ:  rec.CellCountZ,
		Seed:        seed,
		CreatedUnix: time.Now().Unix(),
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return MapInfo{}, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cells WHERE map_id IN (SELECT id FROM maps WHERE name = ?)", name); err != nil {
		return MapInfo{}, fmt.Errorf("replace map %q: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM maps WHERE name = ?", name); err != nil {
		return MapInfo{}, fmt.Errorf("replace map %q: %w", name, err)
	}

	_, err = tx.NamedExec(`INSERT INTO maps
		(id, name, version, cell_count_x, cell_count_z, seed, created_at)
		VALUES (:id, :name, :version, :cell_count_x, :cell_count_z, :seed, :created_at)`, info)
	if err != nil {
		return MapInfo{}, fmt.Errorf("insert map %q: %w", name, err)
	}

	stmt, err := tx.Preparex(`INSERT INTO cells
		(map_id, idx, terrain_type, elevation, water_level, urban_level,
		 farm_level, plant_level, special_index, walled,
		 incoming_river, outgoing_river, roads)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return MapInfo{}, err
	}
	defer stmt.Close()

	for i, c := range rec.Cells {
		walled := 0
		if c.Walled {
			walled = 1
		}

		_, err := stmt.Exec(
			info.ID, i, c.TerrainType, c.Elevation, c.WaterLevel, c.UrbanLevel,
			c.FarmLevel, c.PlantLevel, c.SpecialIndex, walled,
			c.IncomingRiver, c.OutgoingRiver, c.Roads,
		)
		if err != nil {
			return MapInfo{}, fmt.Errorf("insert cell %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return MapInfo{}, err
	}

	slog.Info("map saved", "name", name, "id", info.ID, "cells", len(rec.Cells))
	return info, nil
}

// LoadMap reads the map stored under a name or ID.
func (db *DB) LoadMap(nameOrID string) (world.MapRecord, MapInfo, error) {
	info, err := db.lookup(nameOrID)
	if err != nil {
		return world.MapRecord{}, MapInfo{}, err
	}

	var cells []world.CellRecord
	err = db.conn.Select(&cells, `SELECT terrain_type, elevation, water_level,
		urban_level, farm_level, plant_level, special_index, walled,
		incoming_river, outgoing_river, roads
		FROM cells WHERE map_id = ? ORDER BY idx`, info.ID)
	if err != nil {
		return world.MapRecord{}, MapInfo{}, fmt.Errorf("load cells of %q: %w", info.Name, err)
	}

	rec := world.MapRecord{
		Version:    info.Version,
		CellCountX: info.CellCountX,
		CellCountZ: info.CellCountZ,
		Cells:      cells,
	}
	return rec, info, nil
}

func (db *DB) lookup(nameOrID string) (MapInfo, error) {
	var info MapInfo
	err := db.conn.Get(&info, `SELECT id, name, version, cell_count_x, cell_count_z, seed, created_at
		FROM maps WHERE name = ? OR id = ?`, nameOrID, nameOrID)
	if errors.Is(err, sql.ErrNoRows) {
		return MapInfo{}, fmt.Errorf("%w: %q", ErrMapNotFound, nameOrID)
	}
	if err != nil {
		return MapInfo{}, fmt.Errorf("lookup map %q: %w", nameOrID, err)
	}
	return info, nil
}

// ListMaps returns all stored maps, newest first.
func (db *DB) ListMaps() ([]MapInfo, error) {
	var maps []MapInfo
	err := db.conn.Select(&maps, `SELECT id, name, version, cell_count_x, cell_count_z, seed, created_at
		FROM maps ORDER BY created_at DESC, name`)
	return maps, err
}

// DeleteMap removes the map stored under a name or ID.
func (db *DB) DeleteMap(nameOrID string) error {
	info, err := db.lookup(nameOrID)
	if err != nil {
		return err
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cells WHERE map_id = ?", info.ID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM maps WHERE id = ?", info.ID); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
