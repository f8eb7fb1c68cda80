package game

import (
	"github.com/puffball-game/puffball/internal/config"
	"github.com/puffball-game/puffball/internal/core"
	"github.com/puffball-game/puffball/internal/level"
)

// Resolver detects and resolves everything the ball can touch, in a fixed
// order: level borders and walls first (position correction plus velocity
// reflection), then interactables by priority mine > pump > gem > flag.
// A mine contact ends resolution immediately so nothing else on the same
// tick can mask it.
type Resolver struct {
	lvl *level.Level
	obj config.ObjectsConfig
}

// NewResolver creates a resolver for one level.
func NewResolver(lvl *level.Level, obj config.ObjectsConfig) *Resolver {
	return &Resolver{lvl: lvl, obj: obj}
}

// Resolve handles all contacts for the ball's current position, mutating the
// ball (position and velocity) and the dynamic state, and returning the
// contacts as ordered events.
func (r *Resolver) Resolve(b *Ball, ds *DynamicState) []Event {
	events := r.resolveSolids(b)

	if ev, hit := r.resolveMines(b, ds); hit {
		return append(events, ev)
	}
	events = append(events, r.resolvePumps(b)...)
	events = append(events, r.resolveGems(b, ds)...)
	events = append(events, r.resolveFlag(b, ds)...)
	return events
}

// resolveSolids pushes the ball out of the map borders and any walls it
// overlaps. Simultaneous contacts are accumulated and averaged into a single
// correction so corner hits do not over-eject the ball.
func (r *Resolver) resolveSolids(b *Ball) []Event {
	var events []Event
	var total core.Vec2
	contacts := 0

	radius := b.Radius()
	if d := radius - b.Pos.X; d > 0 {
		total.X += d
		contacts++
	}
	if d := b.Pos.X + radius - r.lvl.Width; d > 0 {
		total.X -= d
		contacts++
	}
	if d := radius - b.Pos.Y; d > 0 {
		total.Y += d
		contacts++
	}
	if d := b.Pos.Y + radius - r.lvl.Height; d > 0 {
		total.Y -= d
		contacts++
	}

	for i := range r.lvl.Walls {
		if ov, ok := circleRectOverlap(b.Pos, radius, r.lvl.Walls[i].Box); ok {
			total = total.Add(ov)
			contacts++
			events = append(events, Event{Kind: EventWallHit, Object: i})
		}
	}

	if contacts == 0 {
		return events
	}

	avg := total.Scale(1 / float64(contacts))
	b.Pos = b.Pos.Add(avg)
	rigidBounce(b, avg)
	return events
}

// circleRectOverlap returns the push-out vector for a circle overlapping an
// axis-aligned rectangle, or ok=false when they do not intersect. The vector
// points from the rectangle's nearest surface point toward the circle
// center, scaled to the penetration depth.
func circleRectOverlap(center core.Vec2, radius float64, box core.Rect) (core.Vec2, bool) {
	nearest := box.NearestPoint(center)
	delta := center.Sub(nearest)
	distSq := delta.LenSq()
	if distSq >= radius*radius {
		return core.Vec2{}, false
	}
	dist := delta.Len()
	if dist == 0 {
		// Center exactly on the surface point; push straight up as an
		// arbitrary but deterministic escape direction.
		return core.V(0, -radius), true
	}
	return delta.Scale((radius - dist) / dist), true
}

// rigidBounce reflects the velocity about the contact normal without energy
// loss; speed is preserved exactly. Axis-aligned contacts reduce to a sign
// flip, which avoids drift from the general reflection formula.
func rigidBounce(b *Ball, normal core.Vec2) {
	switch {
	case normal.X == 0 && normal.Y == 0:
		return
	case normal.X == 0:
		if b.Vel.Y*normal.Y < 0 {
			b.flipVY()
		}
	case normal.Y == 0:
		if b.Vel.X*normal.X < 0 {
			b.flipVX()
		}
	default:
		if b.Vel.Dot(normal) < 0 {
			k := 2 * b.Vel.Dot(normal) / normal.LenSq()
			b.Vel = b.Vel.Sub(normal.Scale(k))
		}
	}
}

func (r *Resolver) resolveMines(b *Ball, ds *DynamicState) (Event, bool) {
	for i := range r.lvl.Mines {
		if !ds.Armed(i) {
			continue
		}
		if r.touches(b, r.lvl.Mines[i].Pos, r.obj.MineSize, r.obj.TouchPad) {
			ds.disarm(i)
			return Event{Kind: EventMineTriggered, Object: i}, true
		}
	}
	return Event{}, false
}

func (r *Resolver) resolvePumps(b *Ball) []Event {
	var events []Event
	for i := range r.lvl.Pumps {
		if r.touches(b, r.lvl.Pumps[i].Pos, r.obj.PumpSize, r.obj.PumpPad) {
			events = append(events, Event{Kind: EventPumpUsed, Object: i})
		}
	}
	return events
}

func (r *Resolver) resolveGems(b *Ball, ds *DynamicState) []Event {
	var events []Event
	for i := range r.lvl.Gems {
		if ds.Collected(i) {
			continue
		}
		if r.touches(b, r.lvl.Gems[i].Pos, r.obj.GemSize, r.obj.TouchPad) {
			ds.collect(i)
			events = append(events, Event{Kind: EventGemCollected, Object: i})
		}
	}
	return events
}

func (r *Resolver) resolveFlag(b *Ball, ds *DynamicState) []Event {
	if r.lvl.Finish == nil {
		return nil
	}
	if !r.touches(b, r.lvl.Finish.Pos, r.obj.FlagSize, r.obj.TouchPad) {
		return nil
	}
	events := []Event{{Kind: EventFlagTouched, Object: NoObject}}
	if ds.AllGemsCollected() {
		events = append(events, Event{Kind: EventLevelWon, Object: NoObject})
	}
	return events
}

// touches reports circle-vs-circle contact between the ball and a fixed
// object of the given diameter. pad widens (positive) or shrinks (negative)
// the effective reach of the object.
func (r *Resolver) touches(b *Ball, pos core.Vec2, size, pad float64) bool {
	reach := b.Radius() + size/2 + pad
	if reach <= 0 {
		return false
	}
	return b.Pos.Sub(pos).LenSq() < reach*reach
}
