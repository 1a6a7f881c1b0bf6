package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/talgya/hexnav/internal/world"
)

// WriteFile encodes rec as msgpack and writes it to path, creating parent
// directories as needed.
func WriteFile(path string, rec world.MapRecord) error {
	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write map file: %w", err)
	}
	return nil
}

// ReadFile reads a map written by WriteFile.
func ReadFile(path string) (world.MapRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return world.MapRecord{}, fmt.Errorf("read map file: %w", err)
	}
	var rec world.MapRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return world.MapRecord{}, fmt.Errorf("decode map file %s: %w", path, err)
	}
	if len(rec.Cells) != rec.CellCountX*rec.CellCountZ {
		return world.MapRecord{}, fmt.Errorf("map file %s: %w", path, world.ErrRecordMismatch)
	}
	return rec, nil
}
