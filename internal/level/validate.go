package level

import (
	"fmt"
	"math"

	"github.com/puffball-game/puffball/internal/core"
)

// Validate checks the structural invariants a level must satisfy before a
// session may start. Violations are load-time errors, never mid-tick ones.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %q: non-positive map size %gx%g", l.Name, l.Width, l.Height)
	}
	if !finiteVec(l.Start) {
		return fmt.Errorf("level %q: non-finite start position", l.Name)
	}
	if !l.Bounds().Contains(l.Start) {
		return fmt.Errorf("level %q: start position %v outside map", l.Name, l.Start)
	}

	for i, w := range l.Walls {
		if w.Box.W < 0 || w.Box.H < 0 {
			return fmt.Errorf("level %q: wall %d has negative extent", l.Name, i)
		}
		if !finiteVec(core.V(w.Box.X, w.Box.Y)) || !finiteVec(core.V(w.Box.W, w.Box.H)) {
			return fmt.Errorf("level %q: wall %d has non-finite geometry", l.Name, i)
		}
	}
	for i, g := range l.Gems {
		if !finiteVec(g.Pos) {
			return fmt.Errorf("level %q: gem %d has non-finite position", l.Name, i)
		}
	}
	for i, p := range l.Pumps {
		if !finiteVec(p.Pos) {
			return fmt.Errorf("level %q: pump %d has non-finite position", l.Name, i)
		}
	}
	for i, m := range l.Mines {
		if !finiteVec(m.Pos) {
			return fmt.Errorf("level %q: mine %d has non-finite position", l.Name, i)
		}
	}
	if l.Finish != nil && !finiteVec(l.Finish.Pos) {
		return fmt.Errorf("level %q: finish flag has non-finite position", l.Name)
	}

	return nil
}

func finiteVec(v core.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
