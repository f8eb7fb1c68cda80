package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/puffball-game/puffball/internal/core"
)

func writeLevel(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b-second.yaml", `
name: Second
version: "1"
size: {w: 100, h: 100}
start: {x: 10, y: 10}
`)
	writeLevel(t, dir, "a-first.yaml", `
name: First
version: "1"
size: {w: 100, h: 100}
start: {x: 10, y: 10}
`)
	writeLevel(t, dir, "broken.yaml", `{{{not yaml`)
	writeLevel(t, dir, "notes.txt", `not a level`)

	levels, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(levels) != 2 {
		t.Fatalf("LoadAll returned %d levels, expected 2 (invalid files skipped)", len(levels))
	}
	if levels[0].ID != "a-first" || levels[1].ID != "b-second" {
		t.Errorf("order = %s, %s; expected a-first, b-second", levels[0].ID, levels[1].ID)
	}
	if levels[0].FilePath == "" {
		t.Error("loaded level should record its file path")
	}
}

func TestLoaderLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "broken.yaml", `{{{not yaml`)

	loader := NewLoader(dir)
	if _, err := loader.LoadFile(filepath.Join(dir, "broken.yaml")); err == nil {
		t.Error("LoadFile should report parse errors for explicit loads")
	}
	if _, err := loader.LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile should report missing files")
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "cave.yaml", `
name: Cave
version: "1"
size: {w: 100, h: 100}
start: {x: 10, y: 10}
`)

	loader := NewLoader(dir)
	lvl, err := loader.LoadByID("cave")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Cave" {
		t.Errorf("Name = %q, expected \"Cave\"", lvl.Name)
	}

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("LoadByID should fail for unknown IDs")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	lvl := New("Edited")
	lvl.Walls = append(lvl.Walls, Wall{Box: core.NewRect(10, 20, 30, 8), Texture: 1})
	lvl.Gems = append(lvl.Gems, Gem{Pos: core.V(50, 50)})
	lvl.Finish = &Finish{Pos: core.V(90, 90)}

	path := filepath.Join(dir, "edited.yaml")
	if err := Save(lvl, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	back, err := NewLoader(dir).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if back.ID != "edited" {
		t.Errorf("ID = %q, expected \"edited\"", back.ID)
	}
	if back.Name != "Edited" || len(back.Walls) != 1 || len(back.Gems) != 1 || back.Finish == nil {
		t.Error("saved level did not round trip")
	}
}

func TestCatalogMergesDirectoryOverBuiltins(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "01-first-steps.yaml", `
name: Shadowed First Steps
version: "1"
size: {w: 100, h: 100}
start: {x: 10, y: 10}
`)
	writeLevel(t, dir, "zz-extra.yaml", `
name: Extra
version: "1"
size: {w: 100, h: 100}
start: {x: 10, y: 10}
`)

	levels, err := Catalog(dir)
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}

	if len(levels) != len(Builtin())+1 {
		t.Fatalf("Catalog returned %d levels, expected builtins plus one", len(levels))
	}

	var sawShadow, sawExtra bool
	for _, lvl := range levels {
		if lvl.ID == "01-first-steps" && lvl.Name == "Shadowed First Steps" {
			sawShadow = true
		}
		if lvl.ID == "zz-extra" {
			sawExtra = true
		}
	}
	if !sawShadow {
		t.Error("directory level should shadow the built-in with the same ID")
	}
	if !sawExtra {
		t.Error("directory-only level missing from catalog")
	}
}
