package level

import (
	"strings"
	"testing"

	"github.com/puffball-game/puffball/internal/core"
)

const sampleDoc = `
name: Sample
version: "1"
size: {w: 320, h: 200}
start: {x: 36, y: 36}
walls:
  - {x: 0, y: 80, w: 120, h: 16, texture: 3}
gems:
  - {x: 150, y: 60}
pumps:
  - {x: 40, y: 150}
mines:
  - {x: 200, y: 100}
finish: {x: 300, y: 180}
`

func TestParseSample(t *testing.T) {
	lvl, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if lvl.Name != "Sample" {
		t.Errorf("Name = %q, expected \"Sample\"", lvl.Name)
	}
	if lvl.Width != 320 || lvl.Height != 200 {
		t.Errorf("Size = %gx%g, expected 320x200", lvl.Width, lvl.Height)
	}
	if lvl.Start != core.V(36, 36) {
		t.Errorf("Start = %v, expected {36 36}", lvl.Start)
	}
	if len(lvl.Walls) != 1 || lvl.Walls[0].Texture != 3 {
		t.Errorf("Walls = %+v, expected one wall with texture 3", lvl.Walls)
	}
	if len(lvl.Gems) != 1 || len(lvl.Pumps) != 1 || len(lvl.Mines) != 1 {
		t.Errorf("object counts = %d/%d/%d gems/pumps/mines, expected 1/1/1",
			len(lvl.Gems), len(lvl.Pumps), len(lvl.Mines))
	}
	if lvl.Finish == nil || lvl.Finish.Pos != core.V(300, 180) {
		t.Errorf("Finish = %+v, expected flag at {300 180}", lvl.Finish)
	}
}

func TestParseRejectsUnknownVersion(t *testing.T) {
	doc := `
name: Future
version: "9"
size: {w: 100, h: 100}
start: {x: 10, y: 10}
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("Parse should reject unsupported version")
	} else if !strings.Contains(err.Error(), "version") {
		t.Errorf("error = %v, expected a version complaint", err)
	}
}

func TestParseToleratesEmptyObjectSets(t *testing.T) {
	doc := `
name: Bare
version: "1"
size: {w: 100, h: 100}
start: {x: 10, y: 10}
`
	lvl, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if lvl.GemCount() != 0 {
		t.Errorf("GemCount = %d, expected 0", lvl.GemCount())
	}
	if len(lvl.Mines) != 0 || len(lvl.Pumps) != 0 {
		t.Error("expected no mines or pumps")
	}
	if lvl.Finish != nil {
		t.Error("expected no finish flag")
	}
}

func TestParseRejectsStartOutsideMap(t *testing.T) {
	doc := `
name: Broken
version: "1"
size: {w: 100, h: 100}
start: {x: 500, y: 10}
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("Parse should reject a start position outside the map")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	orig, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	data, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of encoded output failed: %v", err)
	}

	if back.Name != orig.Name || back.Width != orig.Width || back.Start != orig.Start {
		t.Error("round trip changed basic fields")
	}
	if len(back.Walls) != len(orig.Walls) || back.Walls[0] != orig.Walls[0] {
		t.Error("round trip changed walls")
	}
	if len(back.Gems) != len(orig.Gems) || back.Gems[0] != orig.Gems[0] {
		t.Error("round trip changed gems")
	}
	if back.Finish == nil || back.Finish.Pos != orig.Finish.Pos {
		t.Error("round trip changed the finish flag")
	}
}

func TestValidateNegativeWallExtent(t *testing.T) {
	lvl := New("bad")
	lvl.Walls = append(lvl.Walls, Wall{Box: core.NewRect(0, 0, -5, 10)})
	if err := lvl.Validate(); err == nil {
		t.Fatal("Validate should reject negative wall extent")
	}
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	levels := Builtin()
	if len(levels) == 0 {
		t.Fatal("expected at least one built-in level")
	}
	for _, lvl := range levels {
		if err := lvl.Validate(); err != nil {
			t.Errorf("built-in level %s invalid: %v", lvl.ID, err)
		}
		if lvl.ID == "" {
			t.Error("built-in level missing ID")
		}
	}
}
