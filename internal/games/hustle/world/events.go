package world

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventJump            EventKind = iota // Player left the ground
	EventNPCJump                          // An NPC started a jump
	EventNPCDefeated                      // The player landed on an NPC
	EventTeleportStart                    // Transition countdown began
	EventLevelChanged                     // A new level replaced the old one
	EventTeleportFailed                   // Countdown ended but the neighbor does not exist
	EventReset                            // Player returned to spawn
	EventSprintExhausted                  // Sprint bar emptied, cooldown started
)

func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventNPCJump:
		return "npc_jump"
	case EventNPCDefeated:
		return "npc_defeated"
	case EventTeleportStart:
		return "teleport_start"
	case EventLevelChanged:
		return "level_changed"
	case EventTeleportFailed:
		return "teleport_failed"
	case EventReset:
		return "reset"
	case EventSprintExhausted:
		return "sprint_exhausted"
	default:
		return "unknown"
	}
}

// Event is one tick occurrence.
type Event struct {
	Kind  EventKind
	Pos   Vec2      // Where it happened, in tiles
	Dir   Direction // Teleport events
	Level int       // Level index after the event
}

// TickResult reports what a tick did.
type TickResult struct {
	Events []Event
}

// Has reports whether an event of kind occurred.
func (r TickResult) Has(kind EventKind) bool {
	return r.Count(kind) > 0
}

// Count returns how many events of kind occurred.
func (r TickResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *TickResult) add(e Event) {
	r.Events = append(r.Events, e)
}
