package tui

import (
	"math"

	"github.com/puffball-game/puffball/internal/core"
)

// World units per character cell. Terminal cells are roughly twice as tall
// as they are wide, so the vertical scale doubles the horizontal one to keep
// circles looking circular.
const (
	cellUnitsX = 2.0
	cellUnitsY = 4.0
)

// Soft-follow margins in world units: the camera only moves once the focus
// point gets this close to the viewport edge.
const (
	softMarginX = 24.0
	softMarginY = 24.0
)

// Camera maps a rectangular window of world space onto the screen's cell
// grid. Position is the top-left corner in world units.
type Camera struct {
	pos    core.Vec2
	width  float64
	height float64
}

// NewCamera creates a camera whose viewport covers a grid of cols x rows
// character cells.
func NewCamera(cols, rows int) *Camera {
	c := &Camera{}
	c.SetViewport(cols, rows)
	return c
}

// SetViewport resizes the camera to cover cols x rows character cells.
func (c *Camera) SetViewport(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.width = float64(cols) * cellUnitsX
	c.height = float64(rows) * cellUnitsY
}

// Position returns the top-left corner of the viewport in world units.
func (c *Camera) Position() core.Vec2 { return c.pos }

// FocusOn centers the viewport on the focus point, clamped so the viewport
// never crosses the map boundary.
func (c *Camera) FocusOn(focus core.Vec2, mapW, mapH float64) {
	c.pos = core.V(focus.X-c.width/2, focus.Y-c.height/2)
	c.clampToBounds(mapW, mapH)
}

// SoftFocusOn moves the camera just enough to keep the focus point
// sufficiently inside the viewport, one axis at a time. Small movements near
// the center leave the camera still, which reads much calmer than rigid
// centering.
func (c *Camera) SoftFocusOn(focus core.Vec2, mapW, mapH float64) {
	if rx := focus.X - c.pos.X - softMarginX; rx < 0 {
		c.pos.X += rx
	}
	if rx := focus.X - (c.pos.X + c.width - softMarginX); rx > 0 {
		c.pos.X += rx
	}

	if ry := focus.Y - c.pos.Y - softMarginY; ry < 0 {
		c.pos.Y += ry
	}
	if ry := focus.Y - (c.pos.Y + c.height - softMarginY); ry > 0 {
		c.pos.Y += ry
	}

	c.clampToBounds(mapW, mapH)
}

// Pan shifts the camera by a world-space delta, clamped to the map.
func (c *Camera) Pan(delta core.Vec2, mapW, mapH float64) {
	c.pos = c.pos.Add(delta)
	c.clampToBounds(mapW, mapH)
}

func (c *Camera) clampToBounds(mapW, mapH float64) {
	maxX := mapW - c.width
	maxY := mapH - c.height
	if maxX < 0 {
		// Map narrower than the viewport: keep it pinned at the left edge.
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	c.pos.X = core.ClampF(c.pos.X, 0, maxX)
	c.pos.Y = core.ClampF(c.pos.Y, 0, maxY)
}

// ToCell converts a world position to viewport cell coordinates. Positions
// outside the viewport yield out-of-range cells; Screen setters ignore those.
func (c *Camera) ToCell(p core.Vec2) (x, y int) {
	x = int(math.Floor((p.X - c.pos.X) / cellUnitsX))
	y = int(math.Floor((p.Y - c.pos.Y) / cellUnitsY))
	return x, y
}

// CellRadius converts a world-space radius to an approximate horizontal cell
// count, never below 1 for a positive radius.
func (c *Camera) CellRadius(r float64) int {
	cells := int(math.Round(r / cellUnitsX))
	if cells < 1 && r > 0 {
		cells = 1
	}
	return cells
}
