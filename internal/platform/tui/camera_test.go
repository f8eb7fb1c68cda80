package tui

import (
	"testing"

	"github.com/puffball-game/puffball/internal/core"
)

func TestCameraFocusClampsToMap(t *testing.T) {
	cam := NewCamera(40, 20) // 80x80 world units

	cam.FocusOn(core.V(10, 10), 320, 200)
	if pos := cam.Position(); pos.X != 0 || pos.Y != 0 {
		t.Errorf("focus near origin gave camera at %v, want (0, 0)", pos)
	}

	cam.FocusOn(core.V(315, 195), 320, 200)
	if pos := cam.Position(); pos.X != 240 || pos.Y != 120 {
		t.Errorf("focus near far corner gave camera at %v, want (240, 120)", pos)
	}
}

func TestCameraSoftFocusStaysPutNearCenter(t *testing.T) {
	cam := NewCamera(40, 20)
	cam.FocusOn(core.V(160, 100), 320, 200)
	before := cam.Position()

	// Small movement well inside the margins must not move the camera.
	cam.SoftFocusOn(core.V(165, 105), 320, 200)
	if cam.Position() != before {
		t.Errorf("camera moved from %v to %v for an in-margin focus", before, cam.Position())
	}

	// Pushing past the margin drags the camera along.
	cam.SoftFocusOn(core.V(before.X+80-softMarginX+10, 100), 320, 200)
	if cam.Position().X <= before.X {
		t.Errorf("camera did not follow focus past the right margin: %v", cam.Position())
	}
}

func TestCameraToCell(t *testing.T) {
	cam := NewCamera(40, 20)
	cam.FocusOn(core.V(40, 40), 320, 200) // Clamps to origin

	x, y := cam.ToCell(core.V(0, 0))
	if x != 0 || y != 0 {
		t.Errorf("origin mapped to cell (%d, %d), want (0, 0)", x, y)
	}

	x, y = cam.ToCell(core.V(cellUnitsX*5, cellUnitsY*3))
	if x != 5 || y != 3 {
		t.Errorf("world point mapped to cell (%d, %d), want (5, 3)", x, y)
	}
}

func TestCameraSmallMapPinsAtOrigin(t *testing.T) {
	cam := NewCamera(100, 50) // Viewport larger than the map
	cam.FocusOn(core.V(30, 30), 60, 60)
	if pos := cam.Position(); pos.X != 0 || pos.Y != 0 {
		t.Errorf("camera at %v for a map smaller than the viewport, want (0, 0)", pos)
	}
}
