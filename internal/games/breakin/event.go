package breakin

import "github.com/vovakirdan/break-in/internal/core"

// EventKind identifies what happened during a step.
type EventKind int

const (
	EventWallBounce     EventKind = iota // Ball reflected off a side or top wall
	EventRowBlocked                      // Row shift suppressed at a side wall
	EventBlockDestroyed                  // Ball hit a block, which was removed
	EventLifeLost                        // Ball crossed the bottom wall
	EventWon                             // Last block destroyed
	EventLost                            // Last life lost
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall bounce"
	case EventRowBlocked:
		return "row blocked"
	case EventBlockDestroyed:
		return "block destroyed"
	case EventLifeLost:
		return "life lost"
	case EventWon:
		return "game won"
	case EventLost:
		return "game lost"
	default:
		return "unknown"
	}
}

// Event describes one notable thing that happened during a step.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Walls     WallHits   // EventWallBounce
	Side      Side       // EventBlockDestroyed
	Bounce    BounceKind // EventBlockDestroyed
	Transfer  bool       // EventBlockDestroyed: row speed moved into the ball
	Remaining int        // EventBlockDestroyed: blocks left
	Lives     int        // EventLifeLost: lives left
}

// Core converts the event to the platform's logging form.
func (e Event) Core() core.Event {
	switch e.Kind {
	case EventBlockDestroyed:
		return core.Event{Name: e.Kind.String(), Fields: []any{
			"side", e.Side.String(), "bounce", e.Bounce.String(),
			"transfer", e.Transfer, "remaining", e.Remaining,
		}}
	case EventLifeLost:
		return core.Event{Name: e.Kind.String(), Fields: []any{"lives", e.Lives}, Notable: true}
	case EventWallBounce:
		return core.Event{Name: e.Kind.String(), Fields: []any{
			"left", e.Walls.Left, "right", e.Walls.Right, "top", e.Walls.Top,
		}}
	default:
		return core.Event{Name: e.Kind.String(), Notable: e.Terminal()}
	}
}

// Terminal reports whether the event ends the game.
func (e Event) Terminal() bool {
	return e.Kind == EventWon || e.Kind == EventLost
}
