package game

import "github.com/puffball-game/puffball/internal/core"

// Ball is the single controllable entity. It is owned exclusively by the
// session tick loop and mutated once per tick. Mass doubles as the ball's
// diameter in world units.
type Ball struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Mass float64
}

// Radius returns the collision radius derived from the current mass.
func (b *Ball) Radius() float64 {
	return b.Mass / 2
}

// flipVX reverses the horizontal velocity component.
func (b *Ball) flipVX() {
	b.Vel.X = -b.Vel.X
}

// flipVY reverses the vertical velocity component.
func (b *Ball) flipVY() {
	b.Vel.Y = -b.Vel.Y
}
