package systems

import (
	"github.com/pawmark/garden/components"
	"github.com/pawmark/garden/config"
)

// BrainSystem runs the per-agent state machine. Transition rules are
// evaluated in a fixed precedence order, first match wins: held dominates
// chase assignment, chase dominates social, social dominates everything
// the agent decides for itself.
type BrainSystem struct {
	cfg       config.BrainConfig
	rng       Rand
	restSpots [][2]float32
}

// NewBrainSystem creates a brain system. restSpots may be empty, which
// disables rest target selection; resting agents then simply decelerate
// in place until their timer expires.
func NewBrainSystem(cfg config.BrainConfig, rng Rand, restSpots [][2]float32) *BrainSystem {
	return &BrainSystem{cfg: cfg, rng: rng, restSpots: restSpots}
}

// Step advances one agent's brain by dt. distSqToObserver is the squared
// planar distance to the observer; chase is the coordinator's episode,
// read-only here.
func (s *BrainSystem) Step(agent *components.Agent, brain *components.Brain, social *components.Social, chase *ChaseEpisode, distSqToObserver float32, dt float32, simTime float64) {
	socialActive := social.Active && simTime < social.Until

	// Held pre-empts everything; all timers but affinity decay freeze.
	if agent.Held {
		brain.Mode = components.ModeHeld
		return
	}
	if brain.Mode == components.ModeHeld {
		// Released this tick.
		if socialActive {
			brain.Mode = components.ModeSocializing
		} else {
			s.enterWandering(brain)
		}
		return
	}

	// Chase assignment, cleared automatically by the coordinator.
	if chase.Involves(agent.ID) {
		if chase.ChaserID == agent.ID {
			brain.Mode = components.ModeChasing
		} else {
			brain.Mode = components.ModeRunning
		}
		brain.ModeTimer = float32(chase.Until - simTime)
		return
	}
	if brain.Mode == components.ModeChasing || brain.Mode == components.ModeRunning {
		s.enterWandering(brain)
	}

	if socialActive {
		brain.Mode = components.ModeSocializing
		return
	}
	if brain.Mode == components.ModeSocializing {
		s.enterWandering(brain)
	}

	// Idle sleep: only near the observer, only after a long stretch
	// without direct interaction.
	if brain.Mode != components.ModeSleeping &&
		distSqToObserver <= float32(s.cfg.NearbyDistSq) &&
		simTime-brain.LastInteraction > s.cfg.IdleSleepAfter {
		if s.rng.Float32() < transitionChance(float32(s.cfg.SleepRate), dt) {
			brain.Mode = components.ModeSleeping
			brain.ModeTimer = randRange(s.rng, float32(s.cfg.SleepMin), float32(s.cfg.SleepMax))
			s.pickRestTarget(brain)
			return
		}
	}

	if brain.Mode == components.ModeWandering {
		brain.WalkAccum += dt

		if brain.WalkAccum > float32(s.cfg.RestAfterWalk) &&
			s.rng.Float32() < transitionChance(float32(s.cfg.RestRate), dt) {
			brain.Mode = components.ModeResting
			brain.ModeTimer = randRange(s.rng, float32(s.cfg.RestMin), float32(s.cfg.RestMax))
			s.pickRestTarget(brain)
			return
		}

		if s.rng.Float32() < transitionChance(float32(s.cfg.CuriousRate), dt) {
			brain.Mode = components.ModeCurious
			brain.ModeTimer = randRange(s.rng, float32(s.cfg.CuriousMin), float32(s.cfg.CuriousMax))
			return
		}
	}

	// Trail after an observer that walked away.
	if distSqToObserver > float32(s.cfg.NearbyDistSq) && brain.Mode != components.ModeSleeping {
		brain.Mode = components.ModeFollowing
		return
	}
	if brain.Mode == components.ModeFollowing {
		// Back within range.
		s.enterWandering(brain)
		return
	}

	// Timed modes run down and revert.
	switch brain.Mode {
	case components.ModeCurious, components.ModeResting, components.ModeSleeping:
		brain.ModeTimer -= dt
		if brain.ModeTimer <= 0 {
			s.enterWandering(brain)
		}
	}
}

func (s *BrainSystem) enterWandering(brain *components.Brain) {
	brain.Mode = components.ModeWandering
	brain.ModeTimer = 0
	brain.WalkAccum = 0
}

func (s *BrainSystem) pickRestTarget(brain *components.Brain) {
	if len(s.restSpots) == 0 {
		brain.HasRest = false
		return
	}
	spot := s.restSpots[s.rng.Intn(len(s.restSpots))]
	brain.RestX, brain.RestZ = spot[0], spot[1]
	brain.HasRest = true
}
