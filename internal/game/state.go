package game

import "github.com/puffball-game/puffball/internal/level"

// DynamicState holds the per-session mutable side of a level: which gems
// have been collected and which mines are still armed. The level itself is
// never mutated, so restarting only needs a fresh DynamicState.
type DynamicState struct {
	collected []bool
	armed     []bool
	gemsLeft  int
	gemsTotal int
}

// NewDynamicState builds the side tables for a level with every gem
// uncollected and every mine armed.
func NewDynamicState(lvl *level.Level) *DynamicState {
	ds := &DynamicState{
		collected: make([]bool, len(lvl.Gems)),
		armed:     make([]bool, len(lvl.Mines)),
		gemsLeft:  len(lvl.Gems),
		gemsTotal: len(lvl.Gems),
	}
	for i := range ds.armed {
		ds.armed[i] = true
	}
	return ds
}

// Collected reports whether gem i has been picked up.
func (ds *DynamicState) Collected(i int) bool { return ds.collected[i] }

// Armed reports whether mine i is still live.
func (ds *DynamicState) Armed(i int) bool { return ds.armed[i] }

// GemsLeft returns the number of gems not yet collected.
func (ds *DynamicState) GemsLeft() int { return ds.gemsLeft }

// GemsTotal returns the number of gems the level started with.
func (ds *DynamicState) GemsTotal() int { return ds.gemsTotal }

// GemsCollected returns the number of gems picked up so far.
func (ds *DynamicState) GemsCollected() int { return ds.gemsTotal - ds.gemsLeft }

// AllGemsCollected reports whether nothing remains to collect. A level with
// zero gems is trivially complete.
func (ds *DynamicState) AllGemsCollected() bool { return ds.gemsLeft == 0 }

func (ds *DynamicState) collect(i int) bool {
	if ds.collected[i] {
		return false
	}
	ds.collected[i] = true
	ds.gemsLeft--
	return true
}

func (ds *DynamicState) disarm(i int) bool {
	if !ds.armed[i] {
		return false
	}
	ds.armed[i] = false
	return true
}
