// Package components defines ECS components for the companion simulation.
package components

import "github.com/pawmark/garden/species"

// Mode is the single active behavior state of an agent's brain.
type Mode uint8

const (
	ModeWandering Mode = iota
	ModeCurious
	ModeResting
	ModeSleeping
	ModeFollowing
	ModeChasing
	ModeRunning
	ModeSocializing
	ModeHeld
)

// String returns the mode name for logs and the HUD.
func (m Mode) String() string {
	switch m {
	case ModeWandering:
		return "wandering"
	case ModeCurious:
		return "curious"
	case ModeResting:
		return "resting"
	case ModeSleeping:
		return "sleeping"
	case ModeFollowing:
		return "following"
	case ModeChasing:
		return "chasing"
	case ModeRunning:
		return "running"
	case ModeSocializing:
		return "socializing"
	case ModeHeld:
		return "held"
	default:
		return "unknown"
	}
}

// Agent bundles identity and the capability record resolved at creation.
type Agent struct {
	ID              uint32
	Species         species.Kind
	Caps            species.Capabilities
	PersonalitySeed float32 // offsets the wander noise coordinate, fixed at creation
	Held            bool    // external pickup signal
}

// Brain holds the per-agent state machine.
// ModeTimer only governs the self-terminating modes (Curious, Resting,
// Sleeping); socializing runs on Social.Until and chase modes on the
// coordinator's episode.
type Brain struct {
	Mode            Mode
	ModeTimer       float32 // seconds remaining in timed modes
	WalkAccum       float32 // seconds spent continuously wandering
	LastInteraction float64 // sim time of the last pet/tap/pickup
	RestX, RestZ    float32
	HasRest         bool // false when no rest spot list was supplied
}
