package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/talgya/hexnav/internal/world"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testRecord(t *testing.T, x, z int) world.MapRecord {
	t.Helper()
	g, err := world.NewGrid(x, z)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	world.Generate(g, world.SmallTestConfig())
	c, _ := g.CellAt(1, 1)
	c.SetWalled(true)
	return g.Save()
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndLoadMap(t *testing.T) {
	db := openTestDB(t)
	rec := testRecord(t, 8, 6)

	info, err := db.SaveMap("valley", rec, 42)
	if err != nil {
		t.Fatalf("SaveMap() failed: %v", err)
	}
	if info.ID == "" || info.Cells() != 48 {
		t.Errorf("SaveMap() info = %+v", info)
	}

	for _, key := range []string{"valley", info.ID} {
		got, gotInfo, err := db.LoadMap(key)
		if err != nil {
			t.Fatalf("LoadMap(%q) failed: %v", key, err)
		}
		if !reflect.DeepEqual(got, rec) {
			t.Errorf("LoadMap(%q) returned a different record", key)
		}
		if gotInfo.Seed != 42 || gotInfo.Name != "valley" {
			t.Errorf("LoadMap(%q) info = %+v", key, gotInfo)
		}
	}
}

func TestSaveMapReplacesByName(t *testing.T) {
	db := openTestDB(t)

	first, err := db.SaveMap("arena", testRecord(t, 4, 4), 1)
	if err != nil {
		t.Fatalf("SaveMap() failed: %v", err)
	}
	second := testRecord(t, 5, 3)
	if _, err := db.SaveMap("arena", second, 2); err != nil {
		t.Fatalf("SaveMap() replace failed: %v", err)
	}

	maps, err := db.ListMaps()
	if err != nil {
		t.Fatalf("ListMaps() failed: %v", err)
	}
	if len(maps) != 1 || maps[0].CellCountX != 5 {
		t.Fatalf("ListMaps() = %+v, expected one replaced map", maps)
	}
	if _, _, err := db.LoadMap(first.ID); !errors.Is(err, ErrMapNotFound) {
		t.Errorf("old ID still loads: %v", err)
	}
	got, _, err := db.LoadMap("arena")
	if err != nil || !reflect.DeepEqual(got, second) {
		t.Errorf("LoadMap() after replace = %v", err)
	}
}

func TestListAndDeleteMaps(t *testing.T) {
	db := openTestDB(t)
	for _, name := range []string{"a", "b", "c"} {
		if _, err := db.SaveMap(name, testRecord(t, 3, 3), 7); err != nil {
			t.Fatalf("SaveMap(%q) failed: %v", name, err)
		}
	}

	maps, err := db.ListMaps()
	if err != nil {
		t.Fatalf("ListMaps() failed: %v", err)
	}
	if len(maps) != 3 {
		t.Fatalf("ListMaps() returned %d maps, expected 3", len(maps))
	}

	if err := db.DeleteMap("b"); err != nil {
		t.Fatalf("DeleteMap() failed: %v", err)
	}
	if _, _, err := db.LoadMap("b"); !errors.Is(err, ErrMapNotFound) {
		t.Errorf("LoadMap() after delete error = %v, expected ErrMapNotFound", err)
	}
	if err := db.DeleteMap("b"); !errors.Is(err, ErrMapNotFound) {
		t.Errorf("DeleteMap() twice error = %v", err)
	}

	var cells int
	if err := db.conn.Get(&cells, "SELECT COUNT(*) FROM cells"); err != nil {
		t.Fatalf("count cells: %v", err)
	}
	if cells != 18 {
		t.Errorf("%d cells left, expected 18", cells)
	}
}

func TestSaveMapRejectsMismatch(t *testing.T) {
	db := openTestDB(t)
	rec := testRecord(t, 3, 3)
	rec.Cells = rec.Cells[:5]

	if _, err := db.SaveMap("broken", rec, 0); !errors.Is(err, world.ErrRecordMismatch) {
		t.Errorf("SaveMap() error = %v, expected ErrRecordMismatch", err)
	}
}

func TestMeta(t *testing.T) {
	db := openTestDB(t)
	if err := db.SaveMeta("last_map", "valley"); err != nil {
		t.Fatalf("SaveMeta() failed: %v", err)
	}
	if err := db.SaveMeta("last_map", "ridge"); err != nil {
		t.Fatalf("SaveMeta() failed: %v", err)
	}
	got, err := db.GetMeta("last_map")
	if err != nil || got != "ridge" {
		t.Errorf("GetMeta() = %q, %v", got, err)
	}
}
