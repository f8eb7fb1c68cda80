package game

import (
	"github.com/puffball-game/puffball/internal/config"
	"github.com/puffball-game/puffball/internal/core"
)

// Integrator advances the ball under player thrust using semi-implicit Euler
// integration. The ball is inert: without an applied force velocity never
// changes, and thrusting costs mass. The integrator does not decide level
// outcome; it only mutates the ball and emits boundary-crossing events.
type Integrator struct {
	cfg config.PhysicsConfig
}

// NewIntegrator creates an integrator with the given tuning.
func NewIntegrator(cfg config.PhysicsConfig) *Integrator {
	return &Integrator{cfg: cfg}
}

// Accel derives the net acceleration vector from the held directions.
// Each held direction contributes a fixed-magnitude axis component; opposing
// directions cancel exactly and diagonals sum vectorially without
// re-normalization.
func Accel(in core.InputFrame, magnitude float64) core.Vec2 {
	var a core.Vec2
	if in.Has(core.ActionLeft) {
		a.X -= magnitude
	}
	if in.Has(core.ActionRight) {
		a.X += magnitude
	}
	if in.Has(core.ActionUp) {
		a.Y -= magnitude
	}
	if in.Has(core.ActionDown) {
		a.Y += magnitude
	}
	return a
}

// Step advances the ball by dt seconds under the given input frame.
// Any tick with a non-zero net acceleration drains mass; crossing the lower
// mass bound emits EventImploded. Mass is clamped at the bound so it can
// never reach zero or below.
func (it *Integrator) Step(b *Ball, in core.InputFrame, dt float64) []Event {
	a := Accel(in, it.cfg.ThrustAccel)

	b.Vel = b.Vel.Add(a.Scale(dt))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if a.IsZero() {
		return nil
	}

	b.Mass -= it.cfg.ThrustDrain * dt
	if b.Mass <= it.cfg.MassMin {
		b.Mass = it.cfg.MassMin
		return []Event{{Kind: EventImploded, Object: NoObject}}
	}
	return nil
}

// Pump applies one tick of pump inflation. Crossing the upper mass bound
// emits EventExploded; mass is clamped at the bound.
func (it *Integrator) Pump(b *Ball, dt float64) []Event {
	b.Mass += it.cfg.PumpRate * dt
	if b.Mass >= it.cfg.MassMax {
		b.Mass = it.cfg.MassMax
		return []Event{{Kind: EventExploded, Object: NoObject}}
	}
	return nil
}
