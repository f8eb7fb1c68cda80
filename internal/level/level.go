// Package level defines the static level model and its YAML persistence.
// A Level is loaded once per play session and is read-only during play;
// all mutable per-attempt state lives in the game package.
package level

import (
	"github.com/puffball-game/puffball/internal/core"
)

// CurrentVersion is the level file format version this build reads and writes.
const CurrentVersion = "1"

// Default map dimensions for new (editor-created) levels.
const (
	DefaultWidth  = 320.0
	DefaultHeight = 200.0
)

// Wall is a static axis-aligned obstacle. The texture class only matters to
// the renderer; collision uses the box alone.
type Wall struct {
	Box     core.Rect
	Texture int
}

// Gem is a collectible goal item.
type Gem struct {
	Pos core.Vec2
}

// Pump restores ball mass while the ball overlaps it.
type Pump struct {
	Pos core.Vec2
}

// Mine ends the attempt on first armed contact.
type Mine struct {
	Pos core.Vec2
}

// Finish is the level exit flag. Touching it with every gem collected wins
// the level.
type Finish struct {
	Pos core.Vec2
}

// Level is the static description of a playable level. Wall shapes and
// object positions never change during play; per-attempt activity flags
// (collected gems, armed mines) are kept in game.DynamicState side-tables
// keyed by each object's index here.
type Level struct {
	ID   string // Derived from the file name; stable across loads
	Name string

	Width  float64
	Height float64

	Start  core.Vec2
	Walls  []Wall
	Gems   []Gem
	Pumps  []Pump
	Mines  []Mine
	Finish *Finish // nil means the level has no exit and cannot be won

	FilePath string // Empty for built-in levels
}

// Bounds returns the playable map area as a rectangle anchored at the origin.
func (l *Level) Bounds() core.Rect {
	return core.NewRect(0, 0, l.Width, l.Height)
}

// GemCount returns the number of gems required to win.
func (l *Level) GemCount() int {
	return len(l.Gems)
}

// Clone returns a deep copy of the level. The editor mutates its copy; loaded
// play levels are shared read-only.
func (l *Level) Clone() *Level {
	c := *l
	c.Walls = append([]Wall(nil), l.Walls...)
	c.Gems = append([]Gem(nil), l.Gems...)
	c.Pumps = append([]Pump(nil), l.Pumps...)
	c.Mines = append([]Mine(nil), l.Mines...)
	if l.Finish != nil {
		f := *l.Finish
		c.Finish = &f
	}
	return &c
}

// New returns an empty level with default dimensions, ready for the editor.
func New(name string) *Level {
	return &Level{
		Name:   name,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Start:  core.V(36, 36),
	}
}
