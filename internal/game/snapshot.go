package game

import "github.com/puffball-game/puffball/internal/core"

// Snapshot is an immutable copy of everything a renderer needs for one
// frame. The platform layer reads snapshots instead of reaching into the
// session, which keeps the core free of rendering concerns.
type Snapshot struct {
	BallPos  core.Vec2
	BallVel  core.Vec2
	BallMass float64

	Collected []bool
	Disarmed  []bool
	PumpHeld  bool

	GemsCollected int
	GemsTotal     int

	State  State
	Reason LossReason
	Ticks  int
}

// Snapshot captures the session's current render state. pumpHeld should be
// true when the last tick emitted a pump event, so the UI can show the
// inflate effect.
func (s *Session) Snapshot(pumpHeld bool) Snapshot {
	collected := make([]bool, len(s.ds.collected))
	copy(collected, s.ds.collected)
	disarmed := make([]bool, len(s.ds.armed))
	for i, armed := range s.ds.armed {
		disarmed[i] = !armed
	}

	return Snapshot{
		BallPos:       s.ball.Pos,
		BallVel:       s.ball.Vel,
		BallMass:      s.ball.Mass,
		Collected:     collected,
		Disarmed:      disarmed,
		PumpHeld:      pumpHeld,
		GemsCollected: s.ds.GemsCollected(),
		GemsTotal:     s.ds.GemsTotal(),
		State:         s.state,
		Reason:        s.reason,
		Ticks:         s.ticks,
	}
}
