package game

import (
	"math"
	"testing"

	"github.com/puffball-game/puffball/internal/config"
	"github.com/puffball-game/puffball/internal/core"
	"github.com/puffball-game/puffball/internal/level"
)

// openLevel returns an empty 200x200 level tests can decorate.
func openLevel() *level.Level {
	return &level.Level{
		ID:     "test",
		Name:   "Test",
		Width:  200,
		Height: 200,
		Start:  core.V(50, 50),
	}
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestResolverBorderReflection(t *testing.T) {
	lvl := openLevel()
	r := NewResolver(lvl, config.Default().Objects)
	b := &Ball{Pos: core.V(10, 100), Vel: core.V(-50, 20), Mass: 28}
	ds := NewDynamicState(lvl)

	speedBefore := b.Vel.Len()
	r.Resolve(b, ds)

	if b.Pos.X != b.Radius() {
		t.Errorf("pos.X = %v, want correction to %v", b.Pos.X, b.Radius())
	}
	if b.Vel.X != 50 || b.Vel.Y != 20 {
		t.Errorf("vel = %v, want (50, 20)", b.Vel)
	}
	if math.Abs(b.Vel.Len()-speedBefore) > 1e-9 {
		t.Errorf("speed changed on bounce: %v -> %v", speedBefore, b.Vel.Len())
	}
}

func TestResolverWallBounce(t *testing.T) {
	lvl := openLevel()
	lvl.Walls = []level.Wall{{Box: core.NewRect(100, 0, 20, 200)}}
	r := NewResolver(lvl, config.Default().Objects)
	b := &Ball{Pos: core.V(95, 100), Vel: core.V(30, 0), Mass: 28}
	ds := NewDynamicState(lvl)

	events := r.Resolve(b, ds)

	if countKind(events, EventWallHit) != 1 {
		t.Fatalf("events = %v, want one EventWallHit", events)
	}
	if events[0].Object != 0 {
		t.Errorf("wall hit object = %d, want 0", events[0].Object)
	}
	if b.Pos.X != 86 {
		t.Errorf("pos.X = %v, want push-out to 86", b.Pos.X)
	}
	if b.Vel.X != -30 {
		t.Errorf("vel.X = %v, want -30", b.Vel.X)
	}
}

func TestResolverCornerAveragesOverlaps(t *testing.T) {
	lvl := openLevel()
	r := NewResolver(lvl, config.Default().Objects)
	// Overlapping both the left and top borders at once.
	b := &Ball{Pos: core.V(10, 10), Vel: core.V(-40, -40), Mass: 28}
	ds := NewDynamicState(lvl)

	r.Resolve(b, ds)

	// Two border contacts of depth 4 averaged to a (2, 2) correction.
	if b.Pos != core.V(12, 12) {
		t.Errorf("pos = %v, want (12, 12)", b.Pos)
	}
	if b.Vel.X <= 0 || b.Vel.Y <= 0 {
		t.Errorf("vel = %v, want both components reflected positive", b.Vel)
	}
}

func TestResolverMineBeatsGem(t *testing.T) {
	lvl := openLevel()
	lvl.Mines = []level.Mine{{Pos: core.V(50, 50)}}
	lvl.Gems = []level.Gem{{Pos: core.V(50, 52)}}
	r := NewResolver(lvl, config.Default().Objects)
	b := &Ball{Pos: core.V(50, 50), Mass: 28}
	ds := NewDynamicState(lvl)

	events := r.Resolve(b, ds)

	if len(events) != 1 || events[0].Kind != EventMineTriggered {
		t.Fatalf("events = %v, want only EventMineTriggered", events)
	}
	if ds.Collected(0) {
		t.Error("gem collected on the mine tick")
	}
	if ds.Armed(0) {
		t.Error("mine still armed after triggering")
	}
}

func TestResolverGemCollectedOnce(t *testing.T) {
	lvl := openLevel()
	lvl.Gems = []level.Gem{{Pos: core.V(50, 50)}}
	r := NewResolver(lvl, config.Default().Objects)
	b := &Ball{Pos: core.V(50, 50), Mass: 28}
	ds := NewDynamicState(lvl)

	first := r.Resolve(b, ds)
	second := r.Resolve(b, ds)

	if countKind(first, EventGemCollected) != 1 {
		t.Errorf("first resolve events = %v, want one EventGemCollected", first)
	}
	if countKind(second, EventGemCollected) != 0 {
		t.Errorf("second resolve re-collected gem: %v", second)
	}
	if ds.GemsLeft() != 0 {
		t.Errorf("gems left = %d, want 0", ds.GemsLeft())
	}
}

func TestResolverFlagRequiresAllGems(t *testing.T) {
	lvl := openLevel()
	lvl.Gems = []level.Gem{{Pos: core.V(150, 150)}}
	lvl.Finish = &level.Finish{Pos: core.V(50, 50)}
	r := NewResolver(lvl, config.Default().Objects)
	b := &Ball{Pos: core.V(50, 50), Mass: 28}
	ds := NewDynamicState(lvl)

	events := r.Resolve(b, ds)

	if countKind(events, EventFlagTouched) != 1 {
		t.Errorf("events = %v, want EventFlagTouched", events)
	}
	if countKind(events, EventLevelWon) != 0 {
		t.Errorf("won with a gem outstanding: %v", events)
	}

	ds.collect(0)
	events = r.Resolve(b, ds)
	if countKind(events, EventLevelWon) != 1 {
		t.Errorf("events = %v, want EventLevelWon after last gem", events)
	}
}

func TestResolverNoFlagNeverWins(t *testing.T) {
	lvl := openLevel()
	r := NewResolver(lvl, config.Default().Objects)
	b := &Ball{Pos: core.V(50, 50), Mass: 28}
	ds := NewDynamicState(lvl)

	for i := 0; i < 10; i++ {
		if events := r.Resolve(b, ds); countKind(events, EventLevelWon) != 0 {
			t.Fatal("won a level with no finish flag")
		}
	}
}

func TestResolverPumpEventPerOverlap(t *testing.T) {
	lvl := openLevel()
	lvl.Pumps = []level.Pump{{Pos: core.V(50, 50)}, {Pos: core.V(52, 50)}}
	r := NewResolver(lvl, config.Default().Objects)
	b := &Ball{Pos: core.V(51, 50), Mass: 28}
	ds := NewDynamicState(lvl)

	events := r.Resolve(b, ds)

	if countKind(events, EventPumpUsed) != 2 {
		t.Errorf("events = %v, want two EventPumpUsed", events)
	}
}

func TestCircleRectOverlapMiss(t *testing.T) {
	if _, ok := circleRectOverlap(core.V(0, 0), 5, core.NewRect(10, 10, 4, 4)); ok {
		t.Error("reported overlap for a distant rectangle")
	}
}

func TestCircleRectOverlapDegenerate(t *testing.T) {
	// Center exactly on the rectangle edge: must still produce a finite,
	// non-zero escape vector.
	ov, ok := circleRectOverlap(core.V(10, 10), 5, core.NewRect(10, 10, 4, 4))
	if !ok {
		t.Fatal("no overlap reported for center on the rectangle corner")
	}
	if ov.IsZero() || math.IsNaN(ov.X) || math.IsNaN(ov.Y) {
		t.Errorf("degenerate overlap vector = %v", ov)
	}
}
