package systems

import (
	"testing"

	"github.com/pawmark/garden/components"
	"github.com/pawmark/garden/config"
)

func testBrainConfig() config.BrainConfig {
	return config.BrainConfig{
		NearbyDistSq:   64.0,
		IdleSleepAfter: 22.0,
		SleepRate:      0.22,
		SleepMin:       3.0,
		SleepMax:       6.0,
		RestAfterWalk:  10.0,
		RestRate:       0.10,
		RestMin:        2.6,
		RestMax:        4.8,
		CuriousRate:    0.06,
		CuriousMin:     1.2,
		CuriousMax:     2.2,
	}
}

var testRestSpots = [][2]float32{{-4.5, -3.0}, {3.5, -4.5}, {0.0, 4.0}}

const testDT = float32(1.0 / 60.0)

func TestFollowAndRevert(t *testing.T) {
	s := NewBrainSystem(testBrainConfig(), &scriptedRand{}, testRestSpots)
	agent := &components.Agent{ID: 1}
	brain := &components.Brain{Mode: components.ModeWandering, LastInteraction: 5}
	social := &components.Social{}
	chase := &ChaseEpisode{}

	// Observer walked away: distSq 100 > 64.
	s.Step(agent, brain, social, chase, 100, testDT, 5)
	if brain.Mode != components.ModeFollowing {
		t.Fatalf("mode = %v, want following", brain.Mode)
	}

	// Caught up: distSq 50 <= 64 reverts to wandering with a fresh walk clock.
	brain.WalkAccum = 7
	s.Step(agent, brain, social, chase, 50, testDT, 5.02)
	if brain.Mode != components.ModeWandering {
		t.Fatalf("mode = %v, want wandering", brain.Mode)
	}
	if brain.WalkAccum != 0 {
		t.Errorf("walk accumulator = %v, want 0 after revert", brain.WalkAccum)
	}
}

func TestRestTransition(t *testing.T) {
	// First float accepts the rest draw, second picks the duration midpoint.
	rng := &scriptedRand{floats: []float32{0.0, 0.5}, ints: []int{1}}
	s := NewBrainSystem(testBrainConfig(), rng, testRestSpots)
	agent := &components.Agent{ID: 1}
	brain := &components.Brain{
		Mode:            components.ModeWandering,
		WalkAccum:       15,
		LastInteraction: 10,
	}

	s.Step(agent, brain, &components.Social{}, &ChaseEpisode{}, 50, testDT, 10)

	if brain.Mode != components.ModeResting {
		t.Fatalf("mode = %v, want resting", brain.Mode)
	}
	if brain.ModeTimer < 2.6 || brain.ModeTimer > 4.8 {
		t.Errorf("mode timer = %v, want in [2.6, 4.8]", brain.ModeTimer)
	}
	if !brain.HasRest {
		t.Fatal("rest target not set")
	}
	found := false
	for _, spot := range testRestSpots {
		if brain.RestX == spot[0] && brain.RestZ == spot[1] {
			found = true
		}
	}
	if !found {
		t.Errorf("rest target (%v, %v) not one of the supplied spots", brain.RestX, brain.RestZ)
	}
}

func TestRestWithoutSpots(t *testing.T) {
	rng := &scriptedRand{floats: []float32{0.0, 0.5}}
	s := NewBrainSystem(testBrainConfig(), rng, nil)
	brain := &components.Brain{Mode: components.ModeWandering, WalkAccum: 15, LastInteraction: 10}

	s.Step(&components.Agent{ID: 1}, brain, &components.Social{}, &ChaseEpisode{}, 50, testDT, 10)

	if brain.Mode != components.ModeResting {
		t.Fatalf("mode = %v, want resting", brain.Mode)
	}
	if brain.HasRest {
		t.Error("rest target set despite empty spot list")
	}
}

func TestIdleSleep(t *testing.T) {
	rng := &scriptedRand{floats: []float32{0.0, 0.25}, ints: []int{0}}
	s := NewBrainSystem(testBrainConfig(), rng, testRestSpots)
	brain := &components.Brain{Mode: components.ModeWandering, LastInteraction: 0}

	// 30s idle, well past the 22s threshold, and near the observer.
	s.Step(&components.Agent{ID: 1}, brain, &components.Social{}, &ChaseEpisode{}, 10, testDT, 30)

	if brain.Mode != components.ModeSleeping {
		t.Fatalf("mode = %v, want sleeping", brain.Mode)
	}
	if brain.ModeTimer < 3.0 || brain.ModeTimer > 6.0 {
		t.Errorf("sleep timer = %v, want in [3, 6]", brain.ModeTimer)
	}
}

func TestNoSleepFarFromObserver(t *testing.T) {
	s := NewBrainSystem(testBrainConfig(), &scriptedRand{}, testRestSpots)
	brain := &components.Brain{Mode: components.ModeWandering, LastInteraction: 0}

	// Idle long enough but distSq 100 > 64: follows instead of sleeping.
	s.Step(&components.Agent{ID: 1}, brain, &components.Social{}, &ChaseEpisode{}, 100, testDT, 30)

	if brain.Mode == components.ModeSleeping {
		t.Fatal("slept while far from observer")
	}
	if brain.Mode != components.ModeFollowing {
		t.Fatalf("mode = %v, want following", brain.Mode)
	}
}

func TestHeldPreemptsEverything(t *testing.T) {
	s := NewBrainSystem(testBrainConfig(), &scriptedRand{}, testRestSpots)
	agent := &components.Agent{ID: 1, Held: true}
	brain := &components.Brain{Mode: components.ModeWandering, LastInteraction: 1}
	chase := &ChaseEpisode{Active: true, ChaserID: 1, RunnerID: 2, Until: 100}

	s.Step(agent, brain, &components.Social{}, chase, 10, testDT, 1)
	if brain.Mode != components.ModeHeld {
		t.Fatalf("mode = %v, want held despite chase assignment", brain.Mode)
	}

	// Release without a greet pending: back to wandering.
	agent.Held = false
	chase.Active = false
	s.Step(agent, brain, &components.Social{}, chase, 10, testDT, 1.02)
	if brain.Mode != components.ModeWandering {
		t.Fatalf("mode = %v, want wandering on release", brain.Mode)
	}
}

func TestHeldReleaseIntoSocial(t *testing.T) {
	s := NewBrainSystem(testBrainConfig(), &scriptedRand{}, testRestSpots)
	agent := &components.Agent{ID: 1, Held: true}
	brain := &components.Brain{Mode: components.ModeWandering, LastInteraction: 1}
	social := &components.Social{Active: true, Until: 10, PartnerID: 2}

	s.Step(agent, brain, social, &ChaseEpisode{}, 10, testDT, 1)
	if brain.Mode != components.ModeHeld {
		t.Fatalf("mode = %v, want held", brain.Mode)
	}

	agent.Held = false
	s.Step(agent, brain, social, &ChaseEpisode{}, 10, testDT, 1.02)
	if brain.Mode != components.ModeSocializing {
		t.Fatalf("mode = %v, want socializing on release", brain.Mode)
	}
}

func TestChaseAssignment(t *testing.T) {
	s := NewBrainSystem(testBrainConfig(), &scriptedRand{}, testRestSpots)
	chase := &ChaseEpisode{Active: true, ChaserID: 1, RunnerID: 2, Until: 6}

	chaser := &components.Brain{Mode: components.ModeWandering, LastInteraction: 2}
	s.Step(&components.Agent{ID: 1}, chaser, &components.Social{}, chase, 10, testDT, 2)
	if chaser.Mode != components.ModeChasing {
		t.Fatalf("chaser mode = %v, want chasing", chaser.Mode)
	}
	if chaser.ModeTimer < 3.9 || chaser.ModeTimer > 4.1 {
		t.Errorf("chaser timer = %v, want episode remainder ~4", chaser.ModeTimer)
	}

	runner := &components.Brain{Mode: components.ModeResting, LastInteraction: 2}
	s.Step(&components.Agent{ID: 2}, runner, &components.Social{}, chase, 10, testDT, 2)
	if runner.Mode != components.ModeRunning {
		t.Fatalf("runner mode = %v, want running", runner.Mode)
	}

	// Episode cleared: both revert to wandering next tick.
	chase.Active = false
	s.Step(&components.Agent{ID: 1}, chaser, &components.Social{}, chase, 10, testDT, 6.1)
	if chaser.Mode != components.ModeWandering {
		t.Fatalf("chaser mode after clear = %v, want wandering", chaser.Mode)
	}
}

func TestChaseBeatsSocial(t *testing.T) {
	s := NewBrainSystem(testBrainConfig(), &scriptedRand{}, testRestSpots)
	chase := &ChaseEpisode{Active: true, ChaserID: 1, RunnerID: 2, Until: 10}
	social := &components.Social{Active: true, Until: 10, PartnerID: 3}
	brain := &components.Brain{Mode: components.ModeWandering, LastInteraction: 2}

	s.Step(&components.Agent{ID: 1}, brain, social, chase, 10, testDT, 2)
	if brain.Mode != components.ModeChasing {
		t.Fatalf("mode = %v, chase assignment must dominate social", brain.Mode)
	}
}

func TestSocialBeatsFollowing(t *testing.T) {
	s := NewBrainSystem(testBrainConfig(), &scriptedRand{}, testRestSpots)
	social := &components.Social{Active: true, Until: 10, PartnerID: 2}
	brain := &components.Brain{Mode: components.ModeWandering, LastInteraction: 2}

	s.Step(&components.Agent{ID: 1}, brain, social, &ChaseEpisode{}, 100, testDT, 2)
	if brain.Mode != components.ModeSocializing {
		t.Fatalf("mode = %v, want socializing over following", brain.Mode)
	}
}

func TestTimedModeExpiry(t *testing.T) {
	s := NewBrainSystem(testBrainConfig(), &scriptedRand{}, testRestSpots)
	brain := &components.Brain{Mode: components.ModeCurious, ModeTimer: 0.05, LastInteraction: 2}

	s.Step(&components.Agent{ID: 1}, brain, &components.Social{}, &ChaseEpisode{}, 10, 0.1, 2)
	if brain.Mode != components.ModeWandering {
		t.Fatalf("mode = %v, want wandering after timer expiry", brain.Mode)
	}
}

func TestSleepIgnoresDistance(t *testing.T) {
	// A sleeping agent does not start following even when the observer
	// walks far away.
	s := NewBrainSystem(testBrainConfig(), &scriptedRand{}, testRestSpots)
	brain := &components.Brain{Mode: components.ModeSleeping, ModeTimer: 4, LastInteraction: 0}

	s.Step(&components.Agent{ID: 1}, brain, &components.Social{}, &ChaseEpisode{}, 400, testDT, 30)
	if brain.Mode != components.ModeSleeping {
		t.Fatalf("mode = %v, want sleeping", brain.Mode)
	}
}
