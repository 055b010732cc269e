package systems

import (
	"github.com/pawmark/garden/components"
	"github.com/pawmark/garden/config"
)

// rubDeadzone ignores tiny lateral jitters when tracking rub direction.
const rubDeadzone = 0.002

// RubSystem converts lateral rub gestures into affinity and runs the
// continuous decay and feedback pulses. It never changes an agent's mode;
// it only feeds LastInteraction and feedback intensity.
type RubSystem struct {
	cfg      config.AffinityConfig
	rng      Rand
	gestures map[uint32]*gestureState
}

type gestureState struct {
	lastSign    int8
	flips       int
	windowStart float64
}

// NewRubSystem creates a rub overlay.
func NewRubSystem(cfg config.AffinityConfig, rng Rand) *RubSystem {
	return &RubSystem{
		cfg:      cfg,
		rng:      rng,
		gestures: make(map[uint32]*gestureState),
	}
}

// Observe feeds one lateral pointer displacement over an agent's hit
// region. Three direction reversals within the flip window register a
// single pet; the return value reports it.
func (s *RubSystem) Observe(id uint32, dx float32, simTime float64) bool {
	if dx > -rubDeadzone && dx < rubDeadzone {
		return false
	}
	sign := int8(1)
	if dx < 0 {
		sign = -1
	}

	g, ok := s.gestures[id]
	if !ok {
		g = &gestureState{lastSign: sign}
		s.gestures[id] = g
		return false
	}

	if sign == g.lastSign {
		return false
	}
	g.lastSign = sign

	if g.flips == 0 || simTime-g.windowStart > s.cfg.FlipWindow {
		g.flips = 1
		g.windowStart = simTime
		return false
	}

	g.flips++
	if g.flips >= 3 {
		g.flips = 0
		return true
	}
	return false
}

// Pet applies one registered pet: affinity rises by the configured
// increment (clamped to [0, 1]) and the idle clock resets.
func (s *RubSystem) Pet(aff *components.Affinity, brain *components.Brain, simTime float64) {
	aff.Value = clamp01(aff.Value + float32(s.cfg.Increment))
	brain.LastInteraction = simTime
}

// Step runs the continuous decay and returns true when a feedback pulse
// is due. Decay applies in every mode, including Held.
func (s *RubSystem) Step(aff *components.Affinity, dt float32, simTime float64) bool {
	aff.Value -= float32(s.cfg.DecayRate) * dt
	if aff.Value < 0 {
		aff.Value = 0
	}

	if aff.Value > float32(s.cfg.PulseAbove) && simTime >= aff.NextPulse {
		aff.NextPulse = simTime + float64(randRange(s.rng, float32(s.cfg.PulseMin), float32(s.cfg.PulseMax)))
		return true
	}
	return false
}

// Forget drops gesture state for a removed agent.
func (s *RubSystem) Forget(id uint32) {
	delete(s.gestures, id)
}
