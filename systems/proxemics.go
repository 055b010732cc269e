package systems

import (
	"github.com/pawmark/garden/config"
)

// ChaseEpisode is the population-wide chase/flee state. At most one exists
// at any simulated instant; the coordinator owns it exclusively and agents
// only ever read it.
type ChaseEpisode struct {
	Active             bool
	Until              float64
	ChaserID, RunnerID uint32
	ChaserX, ChaserZ   float32
	RunnerX, RunnerZ   float32
}

// Involves reports whether the episode assigns the given agent.
func (e *ChaseEpisode) Involves(id uint32) bool {
	return e.Active && (e.ChaserID == id || e.RunnerID == id)
}

// Greet is one arbitrated pair greeting. The game applies it to both
// agents' social state and emits the celebratory feedback at the midpoint.
type Greet struct {
	AID, BID           uint32
	Until              float64
	AX, AZ, BX, BZ     float32 // pair positions at greet time
	FaceYawA, FaceYawB float32 // bearing toward the partner
	MidX, MidZ         float32
}

// CoordinatorResult is what one coordinator tick decided.
type CoordinatorResult struct {
	ChaseStarted bool
	ChaseEnded   bool
	Greets       []Greet
}

// maxChaseDrawRetries bounds the distinct chaser/runner draw. On
// exhaustion the tick is skipped rather than looping forever.
const maxChaseDrawRetries = 6

// Coordinator arbitrates pair greetings under per-pair cooldowns and runs
// the singleton chase episode. The greet scan runs every scan_interval
// ticks; chase arbitration runs every tick.
type Coordinator struct {
	cfg  config.SocialConfig
	rng  Rand
	tick int

	// cooldowns maps a sorted id pair to the sim time after which the
	// pair may greet again. Entries are never deleted; a missing key
	// means no cooldown.
	cooldowns map[uint64]float64

	chase ChaseEpisode
}

// NewCoordinator creates a coordinator with the given social parameters.
func NewCoordinator(cfg config.SocialConfig, rng Rand) *Coordinator {
	return &Coordinator{
		cfg:       cfg,
		rng:       rng,
		cooldowns: make(map[uint64]float64),
	}
}

// Chase returns a read-only view of the current episode.
func (c *Coordinator) Chase() ChaseEpisode {
	return c.chase
}

// pairKey builds an unordered pair key by sorting the two ids.
func pairKey(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// Update runs one coordinator tick against the read snapshot. Chase
// arbitration happens first so the greet scan sees the current
// assignments and never touches a chase-involved agent.
func (c *Coordinator) Update(simTime float64, dt float32, snap *Snapshot) CoordinatorResult {
	c.tick++

	var res CoordinatorResult
	res.ChaseStarted, res.ChaseEnded = c.updateChase(simTime, dt, snap)

	if c.cfg.ScanInterval > 0 && c.tick%c.cfg.ScanInterval == 0 {
		res.Greets = c.scanGreets(simTime, snap)
	}
	return res
}

// updateChase refreshes or clears the active episode, or rolls for a new
// one when none is running.
func (c *Coordinator) updateChase(simTime float64, dt float32, snap *Snapshot) (started, ended bool) {
	if c.chase.Active {
		if simTime > c.chase.Until {
			c.chase = ChaseEpisode{}
			return false, true
		}
		// Refresh cached positions; missing ids keep the last known
		// position, which self-heals when the roster changes.
		if st, ok := snap.Get(c.chase.ChaserID); ok {
			c.chase.ChaserX, c.chase.ChaserZ = st.X, st.Z
		}
		if st, ok := snap.Get(c.chase.RunnerID); ok {
			c.chase.RunnerX, c.chase.RunnerZ = st.X, st.Z
		}
		return false, false
	}

	if snap.Len() < 2 {
		return false, false
	}
	if c.rng.Float32() >= transitionChance(float32(c.cfg.ChaseRate), dt) {
		return false, false
	}

	chaser := c.rng.Intn(snap.Len())
	runner := c.rng.Intn(snap.Len())
	for retry := 0; runner == chaser; retry++ {
		if retry >= maxChaseDrawRetries {
			return false, false
		}
		runner = c.rng.Intn(snap.Len())
	}

	cs, rs := snap.Agents[chaser], snap.Agents[runner]
	c.chase = ChaseEpisode{
		Active:   true,
		Until:    simTime + float64(randRange(c.rng, float32(c.cfg.ChaseMin), float32(c.cfg.ChaseMax))),
		ChaserID: cs.ID,
		RunnerID: rs.ID,
		ChaserX:  cs.X, ChaserZ: cs.Z,
		RunnerX: rs.X, RunnerZ: rs.Z,
	}
	return true, false
}

// scanGreets walks every unordered pair and arbitrates greetings. The
// chase-involvement guard runs before the cooldown lookup so a blocked
// pair never burns a cooldown write.
func (c *Coordinator) scanGreets(simTime float64, snap *Snapshot) []Greet {
	greetDistSq := float32(c.cfg.GreetDist * c.cfg.GreetDist)

	var greets []Greet
	for i := 0; i < snap.Len(); i++ {
		a := snap.Agents[i]
		if c.chase.Involves(a.ID) {
			continue
		}
		for j := i + 1; j < snap.Len(); j++ {
			b := snap.Agents[j]
			if c.chase.Involves(b.ID) {
				continue
			}

			key := pairKey(a.ID, b.ID)
			if until, ok := c.cooldowns[key]; ok && simTime < until {
				continue
			}

			if distanceSq(a.X, a.Z, b.X, b.Z) >= greetDistSq {
				continue
			}

			c.cooldowns[key] = simTime + c.cfg.GreetCooldown
			until := simTime + float64(randRange(c.rng, float32(c.cfg.GreetMin), float32(c.cfg.GreetMax)))

			greets = append(greets, Greet{
				AID: a.ID, BID: b.ID,
				Until: until,
				AX:    a.X, AZ: a.Z,
				BX: b.X, BZ: b.Z,
				FaceYawA: bearing(a.X, a.Z, b.X, b.Z),
				FaceYawB: bearing(b.X, b.Z, a.X, a.Z),
				MidX:     (a.X + b.X) / 2,
				MidZ:     (a.Z + b.Z) / 2,
			})
		}
	}
	return greets
}
