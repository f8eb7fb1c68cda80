// Package game implements the deterministic simulation core: ball physics,
// collision resolution against the level, and the per-attempt session state
// machine. It consumes a read-only level.Level and per-tick input frames and
// produces ordered event slices; it performs no I/O and never logs.
package game

// EventKind discriminates the closed set of per-tick simulation events.
type EventKind int

const (
	EventWallHit       EventKind = iota // Ball bounced off a wall or map border
	EventMineTriggered                  // Armed mine contact; terminal
	EventPumpUsed                       // Ball overlaps a pump this tick
	EventGemCollected                   // Uncollected gem picked up
	EventFlagTouched                    // Finish flag overlap (win or not)
	EventLevelWon                       // Flag overlap with every gem collected
	EventImploded                       // Mass fell to the lower bound; terminal
	EventExploded                       // Mass rose to the upper bound; terminal
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "wall_hit"
	case EventMineTriggered:
		return "mine_triggered"
	case EventPumpUsed:
		return "pump_used"
	case EventGemCollected:
		return "gem_collected"
	case EventFlagTouched:
		return "flag_touched"
	case EventLevelWon:
		return "level_won"
	case EventImploded:
		return "imploded"
	case EventExploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// Event is a discrete occurrence within one simulation tick. Events are
// returned as an ordered slice and consumed synchronously by the session;
// there are no callbacks and no event bus.
type Event struct {
	Kind   EventKind
	Object int // Index of the object involved, or -1 when not applicable
}

// NoObject marks events that do not reference a placed object.
const NoObject = -1
