package game

import (
	"fmt"

	"github.com/puffball-game/puffball/internal/config"
	"github.com/puffball-game/puffball/internal/core"
	"github.com/puffball-game/puffball/internal/level"
)

// State is the lifecycle state of a level session.
type State int

const (
	StateLoading State = iota
	StateInProgress
	StateWon
	StateLost
	StateAbandoned
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateInProgress:
		return "in_progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks can change the session.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost || s == StateAbandoned
}

// LossReason records why a session ended in StateLost.
type LossReason int

const (
	LossNone LossReason = iota
	LossImplosion
	LossExplosion
	LossMine
)

func (r LossReason) String() string {
	switch r {
	case LossNone:
		return ""
	case LossImplosion:
		return "imploded"
	case LossExplosion:
		return "exploded"
	case LossMine:
		return "hit a mine"
	default:
		return "unknown"
	}
}

// Session runs one attempt at a level: it owns the ball, the per-attempt
// dynamic state and the lifecycle state machine, and drives the integrator
// and resolver once per tick. It is pure; callers supply input frames and
// the time step and consume the returned events.
type Session struct {
	cfg config.Config
	lvl *level.Level

	ball *Ball
	ds   *DynamicState
	it   *Integrator
	rs   *Resolver

	state  State
	reason LossReason
	ticks  int
}

// NewSession validates the level and configuration and returns a session
// ready to play, already in StateInProgress.
func NewSession(lvl *level.Level, cfg config.Config) (*Session, error) {
	if lvl == nil {
		return nil, fmt.Errorf("session: nil level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: bad config: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("session: bad level %q: %w", lvl.ID, err)
	}

	s := &Session{
		cfg:   cfg,
		lvl:   lvl,
		it:    NewIntegrator(cfg.Physics),
		rs:    NewResolver(lvl, cfg.Objects),
		state: StateLoading,
	}
	s.Restart()
	return s, nil
}

// Restart resets the attempt: ball back at the start with full starting
// mass, every gem uncollected, every mine armed, tick counter zeroed.
func (s *Session) Restart() {
	s.ball = &Ball{
		Pos:  s.lvl.Start,
		Mass: s.cfg.Physics.StartMass,
	}
	s.ds = NewDynamicState(s.lvl)
	s.state = StateInProgress
	s.reason = LossNone
	s.ticks = 0
}

// Step advances the session by one fixed tick. It returns the ordered events
// of that tick; once a terminal event has been consumed, later events in the
// same tick no longer change the session state. Ticks on a finished session
// are no-ops.
func (s *Session) Step(in core.InputFrame, dt float64) []Event {
	if s.state != StateInProgress {
		return nil
	}
	if in.Has(core.ActionAbandon) {
		s.state = StateAbandoned
		return nil
	}

	s.ticks++

	events := s.it.Step(s.ball, in, dt)
	if hasKind(events, EventImploded) {
		s.state = StateLost
		s.reason = LossImplosion
		return events
	}

	events = append(events, s.rs.Resolve(s.ball, s.ds)...)

	pumped := false
	for _, ev := range events {
		switch ev.Kind {
		case EventMineTriggered:
			s.state = StateLost
			s.reason = LossMine
			return events
		case EventPumpUsed:
			// Overlapping several pumps at once still inflates at the
			// single-pump rate.
			if pumped {
				continue
			}
			pumped = true
			if burst := s.it.Pump(s.ball, dt); len(burst) > 0 {
				events = append(events, burst...)
				s.state = StateLost
				s.reason = LossExplosion
				return events
			}
		case EventLevelWon:
			s.state = StateWon
			return events
		}
	}
	return events
}

func hasKind(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Reason returns why the session was lost, or LossNone.
func (s *Session) Reason() LossReason { return s.reason }

// Ticks returns the number of simulated ticks this attempt.
func (s *Session) Ticks() int { return s.ticks }

// Level returns the level being played.
func (s *Session) Level() *level.Level { return s.lvl }

// Ball returns the live ball. Callers must treat it as read-only.
func (s *Session) Ball() *Ball { return s.ball }

// Dynamic returns the per-attempt side state. Callers must treat it as
// read-only.
func (s *Session) Dynamic() *DynamicState { return s.ds }
