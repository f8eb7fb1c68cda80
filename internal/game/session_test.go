package game

import (
	"testing"

	"github.com/puffball-game/puffball/internal/config"
	"github.com/puffball-game/puffball/internal/core"
	"github.com/puffball-game/puffball/internal/level"
)

func newTestSession(t *testing.T, lvl *level.Level, cfg config.Config) *Session {
	t.Helper()
	s, err := NewSession(lvl, cfg)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func TestSessionRejectsBadInput(t *testing.T) {
	if _, err := NewSession(nil, config.Default()); err == nil {
		t.Error("NewSession accepted a nil level")
	}

	lvl := openLevel()
	lvl.Start = core.V(-10, -10)
	if _, err := NewSession(lvl, config.Default()); err == nil {
		t.Error("NewSession accepted a start outside the map")
	}

	bad := config.Default()
	bad.Physics.MassMax = bad.Physics.MassMin
	if _, err := NewSession(openLevel(), bad); err == nil {
		t.Error("NewSession accepted mass_max <= mass_min")
	}
}

func TestSessionThrustToWin(t *testing.T) {
	// Gem on the way to the flag; thrust right until both are passed.
	lvl := openLevel()
	lvl.Start = core.V(30, 100)
	lvl.Gems = []level.Gem{{Pos: core.V(90, 100)}}
	lvl.Finish = &level.Finish{Pos: core.V(160, 100)}
	s := newTestSession(t, lvl, config.Default())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)

	var sawGem, sawWin bool
	for i := 0; i < 600 && !s.State().Terminal(); i++ {
		for _, ev := range s.Step(in, testDt) {
			switch ev.Kind {
			case EventGemCollected:
				if sawWin {
					t.Error("gem collected after the win event")
				}
				sawGem = true
			case EventLevelWon:
				if !sawGem {
					t.Error("won before collecting the gem")
				}
				sawWin = true
			}
		}
	}

	if s.State() != StateWon {
		t.Fatalf("state = %v, want won", s.State())
	}
	if !sawGem || !sawWin {
		t.Errorf("sawGem=%v sawWin=%v, want both", sawGem, sawWin)
	}
	if s.Dynamic().GemsLeft() != 0 {
		t.Errorf("gems left = %d after win", s.Dynamic().GemsLeft())
	}
}

func TestSessionFlagBeforeGemsIsNoOp(t *testing.T) {
	lvl := openLevel()
	lvl.Start = core.V(50, 50)
	lvl.Gems = []level.Gem{{Pos: core.V(170, 170)}}
	lvl.Finish = &level.Finish{Pos: core.V(50, 50)}
	s := newTestSession(t, lvl, config.Default())

	events := s.Step(core.NewInputFrame(), testDt)

	if countKind(events, EventFlagTouched) != 1 {
		t.Errorf("events = %v, want EventFlagTouched", events)
	}
	if s.State() != StateInProgress {
		t.Errorf("state = %v, want still in_progress", s.State())
	}
}

func TestSessionMineLoss(t *testing.T) {
	lvl := openLevel()
	lvl.Mines = []level.Mine{{Pos: core.V(50, 50)}}
	s := newTestSession(t, lvl, config.Default())

	events := s.Step(core.NewInputFrame(), testDt)

	if countKind(events, EventMineTriggered) != 1 {
		t.Fatalf("events = %v, want EventMineTriggered", events)
	}
	if s.State() != StateLost || s.Reason() != LossMine {
		t.Errorf("state = %v reason = %v, want lost / hit a mine", s.State(), s.Reason())
	}
	if s.Dynamic().Armed(0) {
		t.Error("mine still armed after triggering")
	}

	// Terminal sessions ignore further ticks.
	ticks := s.Ticks()
	if events := s.Step(core.NewInputFrame(), testDt); len(events) != 0 {
		t.Errorf("finished session emitted events: %v", events)
	}
	if s.Ticks() != ticks {
		t.Error("finished session kept counting ticks")
	}
}

func TestSessionImplosionSkipsResolver(t *testing.T) {
	// Drain so aggressive the first thrust tick implodes; the gem under the
	// ball must stay uncollected because the resolver never runs that tick.
	cfg := config.Default()
	cfg.Physics.ThrustDrain = cfg.Physics.StartMass * 120
	lvl := openLevel()
	lvl.Gems = []level.Gem{{Pos: core.V(50, 50)}}
	s := newTestSession(t, lvl, cfg)

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	events := s.Step(in, testDt)

	if countKind(events, EventImploded) != 1 {
		t.Fatalf("events = %v, want EventImploded", events)
	}
	if s.State() != StateLost || s.Reason() != LossImplosion {
		t.Errorf("state = %v reason = %v, want lost / imploded", s.State(), s.Reason())
	}
	if s.Dynamic().Collected(0) {
		t.Error("gem collected on the implosion tick")
	}
}

func TestSessionPumpToExplosion(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.StartMass = cfg.Physics.MassMax - cfg.Physics.PumpRate*testDt/2
	lvl := openLevel()
	lvl.Pumps = []level.Pump{{Pos: core.V(50, 50)}}
	s := newTestSession(t, lvl, cfg)

	events := s.Step(core.NewInputFrame(), testDt)

	if countKind(events, EventPumpUsed) != 1 || countKind(events, EventExploded) != 1 {
		t.Fatalf("events = %v, want EventPumpUsed then EventExploded", events)
	}
	if s.State() != StateLost || s.Reason() != LossExplosion {
		t.Errorf("state = %v reason = %v, want lost / exploded", s.State(), s.Reason())
	}
	if s.Ball().Mass != cfg.Physics.MassMax {
		t.Errorf("mass = %v, want clamp at %v", s.Ball().Mass, cfg.Physics.MassMax)
	}
}

func TestSessionOverlappingPumpsInflateOnce(t *testing.T) {
	cfg := config.Default()
	lvl := openLevel()
	lvl.Pumps = []level.Pump{{Pos: core.V(49, 50)}, {Pos: core.V(51, 50)}}
	s := newTestSession(t, lvl, cfg)

	events := s.Step(core.NewInputFrame(), testDt)

	if countKind(events, EventPumpUsed) != 2 {
		t.Fatalf("events = %v, want two EventPumpUsed", events)
	}
	want := cfg.Physics.StartMass + cfg.Physics.PumpRate*testDt
	if s.Ball().Mass != want {
		t.Errorf("mass = %v, want single-pump gain to %v", s.Ball().Mass, want)
	}
}

func TestSessionAbandonShortCircuits(t *testing.T) {
	lvl := openLevel()
	s := newTestSession(t, lvl, config.Default())
	startMass := s.Ball().Mass

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionAbandon)
	events := s.Step(in, testDt)

	if len(events) != 0 {
		t.Errorf("abandon tick emitted events: %v", events)
	}
	if s.State() != StateAbandoned {
		t.Errorf("state = %v, want abandoned", s.State())
	}
	if s.Ticks() != 0 {
		t.Errorf("ticks = %d, want 0 (abandoned before simulation)", s.Ticks())
	}
	if s.Ball().Mass != startMass || !s.Ball().Vel.IsZero() {
		t.Error("abandon tick applied physics")
	}
}

func TestSessionRestart(t *testing.T) {
	lvl := openLevel()
	lvl.Mines = []level.Mine{{Pos: core.V(50, 50)}}
	lvl.Gems = []level.Gem{{Pos: core.V(120, 120)}}
	s := newTestSession(t, lvl, config.Default())

	s.Step(core.NewInputFrame(), testDt)
	if s.State() != StateLost {
		t.Fatalf("setup: state = %v, want lost", s.State())
	}

	s.Restart()

	if s.State() != StateInProgress {
		t.Errorf("state after restart = %v", s.State())
	}
	if s.Ticks() != 0 {
		t.Errorf("ticks after restart = %d", s.Ticks())
	}
	if !s.Dynamic().Armed(0) {
		t.Error("mine not re-armed on restart")
	}
	if s.Ball().Pos != lvl.Start {
		t.Errorf("ball at %v after restart, want %v", s.Ball().Pos, lvl.Start)
	}
	if s.Ball().Mass != config.Default().Physics.StartMass {
		t.Errorf("mass after restart = %v", s.Ball().Mass)
	}
}

func TestSessionDeterminism(t *testing.T) {
	build := func() *Session {
		lvl := openLevel()
		lvl.Walls = []level.Wall{{Box: core.NewRect(120, 0, 10, 200)}}
		lvl.Gems = []level.Gem{{Pos: core.V(100, 60)}}
		lvl.Pumps = []level.Pump{{Pos: core.V(60, 140)}}
		lvl.Finish = &level.Finish{Pos: core.V(40, 170)}
		return newTestSession(t, lvl, config.Default())
	}

	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i < 120:
			inputs[i].Set(core.ActionRight)
		case i < 200:
			inputs[i].Set(core.ActionDown)
		case i%3 == 0:
			inputs[i].Set(core.ActionLeft)
			inputs[i].Set(core.ActionUp)
		}
	}

	run := func(s *Session) ([]Event, Snapshot) {
		var all []Event
		for _, in := range inputs {
			all = append(all, s.Step(in, testDt)...)
			if s.State().Terminal() {
				break
			}
		}
		return all, s.Snapshot(false)
	}

	e1, s1 := run(build())
	e2, s2 := run(build())

	if len(e1) != len(e2) {
		t.Fatalf("event counts differ: %d vs %d", len(e1), len(e2))
	}
	for i := range e1 {
		if e1[i] != e2[i] {
			t.Fatalf("event %d differs: %v vs %v", i, e1[i], e2[i])
		}
	}
	if s1.BallPos != s2.BallPos || s1.BallVel != s2.BallVel || s1.BallMass != s2.BallMass {
		t.Errorf("ball state differs: %+v vs %+v", s1, s2)
	}
	if s1.State != s2.State || s1.Ticks != s2.Ticks {
		t.Errorf("outcome differs: %v/%d vs %v/%d", s1.State, s1.Ticks, s2.State, s2.Ticks)
	}
}

func TestSessionZeroGemsTrivialWin(t *testing.T) {
	lvl := openLevel()
	lvl.Finish = &level.Finish{Pos: core.V(50, 50)}
	s := newTestSession(t, lvl, config.Default())

	events := s.Step(core.NewInputFrame(), testDt)

	if countKind(events, EventLevelWon) != 1 {
		t.Fatalf("events = %v, want EventLevelWon for a gem-less level", events)
	}
	if s.State() != StateWon {
		t.Errorf("state = %v, want won", s.State())
	}
}
