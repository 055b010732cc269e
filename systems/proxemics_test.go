package systems

import (
	"math"
	"testing"

	"github.com/pawmark/garden/components"
	"github.com/pawmark/garden/config"
)

func testSocialConfig() config.SocialConfig {
	return config.SocialConfig{
		ScanInterval:  30,
		GreetDist:     2.0,
		GreetCooldown: 10.0,
		GreetMin:      1.05,
		GreetMax:      1.5,
		ChaseRate:     0,
		ChaseMin:      3.8,
		ChaseMax:      5.2,
	}
}

func pairSnapshot(ax, az, bx, bz float32) *Snapshot {
	snap := NewSnapshot(2)
	snap.Add(AgentState{ID: 1, X: ax, Z: az, Mode: components.ModeWandering})
	snap.Add(AgentState{ID: 2, X: bx, Z: bz, Mode: components.ModeWandering})
	return snap
}

func TestGreetOnScanInterval(t *testing.T) {
	rng := &scriptedRand{floats: []float32{0.5}}
	c := NewCoordinator(testSocialConfig(), rng)
	snap := pairSnapshot(0, 0, 1.5, 0)

	// Ticks 1..29 never scan.
	for i := 0; i < 29; i++ {
		res := c.Update(float64(i)*0.0167, testDT, snap)
		if len(res.Greets) != 0 {
			t.Fatalf("tick %d: greet before the scan interval", i+1)
		}
	}

	// Tick 30: pair is 1.5 apart, under the 2.0 threshold.
	res := c.Update(1.0, testDT, snap)
	if len(res.Greets) != 1 {
		t.Fatalf("greets = %d, want 1", len(res.Greets))
	}

	g := res.Greets[0]
	if g.AID != 1 || g.BID != 2 {
		t.Errorf("greet pair = (%d, %d), want (1, 2)", g.AID, g.BID)
	}
	if g.Until <= 1.0+1.05 || g.Until > 1.0+1.5 {
		t.Errorf("greet until = %v, want in (2.05, 2.5]", g.Until)
	}
	if math.Abs(float64(g.FaceYawA)) > 1e-4 {
		t.Errorf("face yaw A = %v, want 0 (facing +x)", g.FaceYawA)
	}
	if math.Abs(math.Abs(float64(g.FaceYawB))-math.Pi) > 1e-4 {
		t.Errorf("face yaw B = %v, want +-pi", g.FaceYawB)
	}
	if g.MidX != 0.75 || g.MidZ != 0 {
		t.Errorf("midpoint = (%v, %v), want (0.75, 0)", g.MidX, g.MidZ)
	}
}

func TestGreetCooldown(t *testing.T) {
	cfg := testSocialConfig()
	cfg.ScanInterval = 1 // scan every tick to isolate the cooldown
	c := NewCoordinator(cfg, &scriptedRand{floats: []float32{0.5, 0.5}})
	snap := pairSnapshot(0, 0, 1.5, 0)

	res := c.Update(0, testDT, snap)
	if len(res.Greets) != 1 {
		t.Fatalf("initial greet missing")
	}

	// No new greet anywhere in [t0, t0+10).
	for _, tm := range []float64{0.1, 3, 7, 9.99} {
		if res := c.Update(tm, testDT, snap); len(res.Greets) != 0 {
			t.Fatalf("greet at t=%v inside the 10s cooldown", tm)
		}
	}

	if res := c.Update(10.01, testDT, snap); len(res.Greets) != 1 {
		t.Fatal("greet blocked after the cooldown elapsed")
	}
}

func TestGreetRequiresProximity(t *testing.T) {
	cfg := testSocialConfig()
	cfg.ScanInterval = 1
	c := NewCoordinator(cfg, &scriptedRand{})
	snap := pairSnapshot(0, 0, 2.5, 0)

	if res := c.Update(0, testDT, snap); len(res.Greets) != 0 {
		t.Fatal("greeted at 2.5 units, beyond the 2.0 threshold")
	}
}

func TestChaseSingleton(t *testing.T) {
	cfg := testSocialConfig()
	cfg.ChaseRate = 1000 // clamps to certainty per tick
	rng := &scriptedRand{
		floats: []float32{0.0, 0.5, 0.0, 0.5}, // roll, duration, roll, duration
		ints:   []int{0, 1, 1, 0},
	}
	c := NewCoordinator(cfg, rng)
	snap := pairSnapshot(0, 0, 5, 0)

	res := c.Update(0, testDT, snap)
	if !res.ChaseStarted {
		t.Fatal("chase did not start")
	}
	first := c.Chase()
	if !first.Active || first.ChaserID == first.RunnerID {
		t.Fatalf("bad episode: %+v", first)
	}
	if first.Until < 3.8 || first.Until > 5.2 {
		t.Errorf("episode until = %v, want in [3.8, 5.2]", first.Until)
	}

	// While active no second episode may start.
	for tm := 0.5; tm < first.Until; tm += 0.5 {
		res = c.Update(tm, testDT, snap)
		if res.ChaseStarted {
			t.Fatalf("second episode started at t=%v while one is active", tm)
		}
		if got := c.Chase(); got.ChaserID != first.ChaserID || got.RunnerID != first.RunnerID {
			t.Fatalf("episode identity changed mid-run: %+v", got)
		}
	}

	// Past Until the episode clears, then a new one may start.
	res = c.Update(first.Until+0.01, testDT, snap)
	if !res.ChaseEnded {
		t.Fatal("episode did not auto-clear")
	}
	res = c.Update(first.Until+0.02, testDT, snap)
	if !res.ChaseStarted {
		t.Fatal("no new episode after the old one cleared")
	}
}

func TestChaseDistinctDrawBounded(t *testing.T) {
	cfg := testSocialConfig()
	cfg.ChaseRate = 1000
	// Every draw lands on index 0: the retry loop must give up, not spin.
	rng := &scriptedRand{
		floats: []float32{0.0},
		ints:   []int{0, 0, 0, 0, 0, 0, 0, 0},
	}
	c := NewCoordinator(cfg, rng)

	res := c.Update(0, testDT, pairSnapshot(0, 0, 5, 0))
	if res.ChaseStarted || c.Chase().Active {
		t.Fatal("chase started from an exhausted distinct-pair draw")
	}
}

func TestChaseNeedsPopulation(t *testing.T) {
	cfg := testSocialConfig()
	cfg.ChaseRate = 1000
	c := NewCoordinator(cfg, &scriptedRand{floats: []float32{0.0}})

	snap := NewSnapshot(1)
	snap.Add(AgentState{ID: 7, X: 0, Z: 0})
	if res := c.Update(0, testDT, snap); res.ChaseStarted {
		t.Fatal("chase started with a single agent")
	}
}

func TestGreetSkipsChaseInvolved(t *testing.T) {
	cfg := testSocialConfig()
	cfg.ScanInterval = 1
	cfg.ChaseRate = 1000
	rng := &scriptedRand{floats: []float32{0.0, 0.5}, ints: []int{0, 1}}
	c := NewCoordinator(cfg, rng)
	snap := pairSnapshot(0, 0, 1.5, 0)

	res := c.Update(0, testDT, snap)
	if !res.ChaseStarted {
		t.Fatal("chase did not start")
	}
	if len(res.Greets) != 0 {
		t.Fatal("greet scan touched a chase-involved pair")
	}

	// The blocked scan must not have burnt a cooldown: once the episode
	// clears, the pair greets on the very next scan.
	cfg2 := c.Chase()
	res = c.Update(cfg2.Until+0.01, testDT, snap)
	if !res.ChaseEnded {
		t.Fatal("episode did not clear")
	}
	if len(res.Greets) != 1 {
		t.Fatal("pair did not greet immediately after the episode cleared")
	}
}

func TestChaseRefreshesCachedPositions(t *testing.T) {
	cfg := testSocialConfig()
	cfg.ChaseRate = 1000
	rng := &scriptedRand{floats: []float32{0.0, 0.5}, ints: []int{0, 1}}
	c := NewCoordinator(cfg, rng)

	c.Update(0, testDT, pairSnapshot(0, 0, 5, 0))

	// Both agents moved; the cached positions follow the snapshot.
	c.Update(0.5, testDT, pairSnapshot(1, 1, 4, -1))
	ep := c.Chase()
	if ep.ChaserX != 1 || ep.ChaserZ != 1 || ep.RunnerX != 4 || ep.RunnerZ != -1 {
		t.Errorf("cached positions not refreshed: %+v", ep)
	}

	// Runner removed from the roster: cache keeps the last known spot.
	solo := NewSnapshot(1)
	solo.Add(AgentState{ID: 1, X: 2, Z: 2})
	c.Update(1.0, testDT, solo)
	ep = c.Chase()
	if ep.RunnerX != 4 || ep.RunnerZ != -1 {
		t.Errorf("stale runner cache mutated: %+v", ep)
	}
}
