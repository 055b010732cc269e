// Package telemetry provides event collection, windowed statistics, and
// CSV output for the companion simulation.
package telemetry

// EventType identifies discrete feedback events emitted by the core.
type EventType uint8

const (
	EventGreet EventType = iota
	EventPet
	EventTap
	EventPickup
	EventDrop
	EventChaseStart
	EventChaseEnd
	EventPulse
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventGreet:
		return "greet"
	case EventPet:
		return "pet"
	case EventTap:
		return "tap"
	case EventPickup:
		return "pickup"
	case EventDrop:
		return "drop"
	case EventChaseStart:
		return "chase_start"
	case EventChaseEnd:
		return "chase_end"
	case EventPulse:
		return "pulse"
	default:
		return "unknown"
	}
}

// Event is a single feedback event. Consumers (particles, audio, HUD)
// drain these each tick.
type Event struct {
	Type    EventType
	Tick    int64
	AgentID uint32

	// Optional fields depending on event type
	PartnerID uint32  // greet and chase pairs
	X, Z      float32 // world position of the feedback
	Intensity float32 // scaled up for high-tier species
}

// NewGreetEvent creates a greet event at the pair midpoint.
func NewGreetEvent(tick int64, a, b uint32, midX, midZ float32) Event {
	return Event{Type: EventGreet, Tick: tick, AgentID: a, PartnerID: b, X: midX, Z: midZ, Intensity: 1}
}

// NewPetEvent creates a pet event over an agent.
func NewPetEvent(tick int64, id uint32, x, z, intensity float32) Event {
	return Event{Type: EventPet, Tick: tick, AgentID: id, X: x, Z: z, Intensity: intensity}
}

// NewTapEvent creates a tap event over an agent.
func NewTapEvent(tick int64, id uint32, x, z float32) Event {
	return Event{Type: EventTap, Tick: tick, AgentID: id, X: x, Z: z, Intensity: 1}
}

// NewPickupEvent creates a pickup event where the agent was lifted.
func NewPickupEvent(tick int64, id uint32, x, z float32) Event {
	return Event{Type: EventPickup, Tick: tick, AgentID: id, X: x, Z: z, Intensity: 1}
}

// NewDropEvent creates a drop event where the agent was released.
func NewDropEvent(tick int64, id uint32, x, z float32) Event {
	return Event{Type: EventDrop, Tick: tick, AgentID: id, X: x, Z: z, Intensity: 1}
}

// NewChaseStartEvent creates a chase-start event.
func NewChaseStartEvent(tick int64, chaser, runner uint32) Event {
	return Event{Type: EventChaseStart, Tick: tick, AgentID: chaser, PartnerID: runner, Intensity: 1}
}

// NewChaseEndEvent creates a chase-end event.
func NewChaseEndEvent(tick int64, chaser, runner uint32) Event {
	return Event{Type: EventChaseEnd, Tick: tick, AgentID: chaser, PartnerID: runner, Intensity: 1}
}

// NewPulseEvent creates an affinity feedback pulse over an agent.
func NewPulseEvent(tick int64, id uint32, x, z, intensity float32) Event {
	return Event{Type: EventPulse, Tick: tick, AgentID: id, X: x, Z: z, Intensity: intensity}
}
