package game

import (
	"math"

	"github.com/pawmark/garden/components"
	"github.com/pawmark/garden/config"
	"github.com/pawmark/garden/systems"
	"github.com/pawmark/garden/telemetry"
)

func poseSnapshotInterval() float64 {
	return config.Cfg().Telemetry.SnapshotInterval
}

// UpdateHeadless runs simulation steps without any rendering work.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.updateObserverScripted()
		g.step(DT)
	}
}

// step runs a single tick of the simulation.
func (g *Game) step(dt float32) {
	g.perf.StartTick()

	// 1. Commit the previous tick's poses. Everything downstream reads
	// peers through this snapshot, never through this tick's mutations.
	g.perf.StartPhase(telemetry.PhaseSnapshot)
	g.commitSnapshot()
	g.grid.Rebuild(g.readSnap)

	// 2. Proxemics coordinator: greets and the chase singleton.
	g.perf.StartPhase(telemetry.PhaseCoordinator)
	g.expireSocial()
	prevChase := g.coord.Chase()
	res := g.coord.Update(g.simTime, dt, g.readSnap)
	g.applyCoordinator(res, prevChase)
	chase := g.coord.Chase()

	// 3. Brains: per-agent mode transitions.
	g.perf.StartPhase(telemetry.PhaseBrains)
	query := g.agentFilter.Query()
	for query.Next() {
		pos, _, _, agent, brain, social, _ := query.Get()
		distSq := distanceSq(pos.X, pos.Z, g.observer.X, g.observer.Z)
		g.brains.Step(agent, brain, social, &chase, distSq, dt, g.simTime)
	}

	// 4. Movement: steering and integration against the read snapshot.
	g.perf.StartPhase(telemetry.PhaseMovement)
	query = g.agentFilter.Query()
	for query.Next() {
		pos, vel, rot, agent, brain, social, _ := query.Get()
		g.movement.Step(agent, brain, social, pos, vel, rot, &chase,
			g.observer.X, g.observer.Z, g.readSnap, g.grid, dt, g.simTime)
	}

	// 5. Affinity overlay: decay and feedback pulses.
	g.perf.StartPhase(telemetry.PhaseOverlay)
	query = g.agentFilter.Query()
	for query.Next() {
		pos, _, _, agent, _, _, aff := query.Get()
		if g.rub.Step(aff, dt, g.simTime) {
			g.collector.Record(telemetry.NewPulseEvent(g.tick, agent.ID, pos.X, pos.Z, aff.Value))
		}
	}

	// 6. Telemetry: window flush, pose snapshots, event fan-out.
	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perf.EndTick()
	g.tick++
	g.simTime += float64(dt)
}

// commitSnapshot fills the write buffer from the ECS and swaps buffers.
func (g *Game) commitSnapshot() {
	g.writeSnap.Reset()
	query := g.agentFilter.Query()
	for query.Next() {
		pos, _, rot, agent, brain, _, _ := query.Get()
		g.writeSnap.Add(systems.AgentState{
			ID:   agent.ID,
			X:    pos.X,
			Z:    pos.Z,
			Yaw:  rot.Yaw,
			Mode: brain.Mode,
		})
	}
	g.readSnap, g.writeSnap = g.writeSnap, g.readSnap
}

// expireSocial clears engagements whose window has elapsed.
func (g *Game) expireSocial() {
	query := g.agentFilter.Query()
	for query.Next() {
		_, _, _, _, _, social, _ := query.Get()
		if social.Active && g.simTime >= social.Until {
			social.Active = false
		}
	}
}

// applyCoordinator writes coordinator decisions into the ECS.
func (g *Game) applyCoordinator(res systems.CoordinatorResult, prevChase systems.ChaseEpisode) {
	if res.ChaseEnded {
		g.collector.Record(telemetry.NewChaseEndEvent(g.tick, prevChase.ChaserID, prevChase.RunnerID))
	}

	if res.ChaseStarted {
		chase := g.coord.Chase()
		// A chase preempts any social engagement the pair was in.
		g.clearSocial(chase.ChaserID)
		g.clearSocial(chase.RunnerID)
		g.collector.Record(telemetry.NewChaseStartEvent(g.tick, chase.ChaserID, chase.RunnerID))
	}

	for _, greet := range res.Greets {
		g.applyGreet(greet)
		g.collector.Record(telemetry.NewGreetEvent(g.tick, greet.AID, greet.BID, greet.MidX, greet.MidZ))
	}
}

// applyGreet writes the mutual engagement onto both participants.
func (g *Game) applyGreet(greet systems.Greet) {
	if e, ok := g.entities[greet.AID]; ok {
		social := g.socialMap.Get(e)
		social.Active = true
		social.Until = greet.Until
		social.PartnerID = greet.BID
		social.PartnerX, social.PartnerZ = greet.BX, greet.BZ
		social.FaceYaw = greet.FaceYawA
		g.brainMap.Get(e).LastInteraction = g.simTime
	}
	if e, ok := g.entities[greet.BID]; ok {
		social := g.socialMap.Get(e)
		social.Active = true
		social.Until = greet.Until
		social.PartnerID = greet.AID
		social.PartnerX, social.PartnerZ = greet.AX, greet.AZ
		social.FaceYaw = greet.FaceYawB
		g.brainMap.Get(e).LastInteraction = g.simTime
	}
}

func (g *Game) clearSocial(id uint32) {
	if e, ok := g.entities[id]; ok {
		g.socialMap.Get(e).Active = false
	}
}

// flushTelemetry drains events and emits window stats and pose rows.
func (g *Game) flushTelemetry() {
	events := g.collector.DrainEvents()
	if g.fx != nil {
		g.fx.spawn(events, g.simTime)
	}
	if g.logStats {
		g.logEvents(events)
	}

	if g.collector.ShouldFlush(g.tick) {
		stats := g.collector.Flush(g.tick, g.simTime)
		g.fillPopulationStats(&stats)
		if g.logStats {
			stats.Log()
		}
		if g.output != nil {
			if err := g.output.WriteStats(stats); err != nil {
				g.logWriteError("stats", err)
			}
		}
	}

	if g.output != nil {
		interval := poseSnapshotInterval()
		if interval > 0 && g.simTime-g.lastPoseTime >= interval {
			g.lastPoseTime = g.simTime
			if err := g.output.WritePoses(g.collectPoses()); err != nil {
				g.logWriteError("poses", err)
			}
		}
	}
}

// fillPopulationStats adds the population-level fields the collector
// cannot see: mode occupancy, speed and affinity distributions.
func (g *Game) fillPopulationStats(stats *telemetry.WindowStats) {
	g.speedScratch = g.speedScratch[:0]
	g.affScratch = g.affScratch[:0]

	query := g.agentFilter.Query()
	for query.Next() {
		_, vel, _, _, brain, _, aff := query.Get()
		stats.Population++

		switch brain.Mode {
		case components.ModeWandering:
			stats.Wandering++
		case components.ModeCurious:
			stats.Curious++
		case components.ModeResting:
			stats.Resting++
		case components.ModeSleeping:
			stats.Sleeping++
		case components.ModeFollowing:
			stats.Following++
		case components.ModeChasing:
			stats.Chasing++
		case components.ModeRunning:
			stats.Running++
		case components.ModeSocializing:
			stats.Socializing++
		case components.ModeHeld:
			stats.Held++
		}

		speed := math.Sqrt(float64(vel.X*vel.X + vel.Z*vel.Z))
		g.speedScratch = append(g.speedScratch, speed)
		g.affScratch = append(g.affScratch, float64(aff.Value))
	}

	stats.ComputeSpeedStats(g.speedScratch)
	stats.ComputeAffinityStats(g.affScratch)
}

// collectPoses builds one CSV row per agent from current state.
func (g *Game) collectPoses() []telemetry.PoseRow {
	g.poseScratch = g.poseScratch[:0]
	query := g.agentFilter.Query()
	for query.Next() {
		pos, _, rot, agent, brain, _, aff := query.Get()
		g.poseScratch = append(g.poseScratch, telemetry.PoseRow{
			Tick:     g.tick,
			AgentID:  agent.ID,
			Species:  agent.Species.String(),
			X:        pos.X,
			Z:        pos.Z,
			Yaw:      rot.Yaw,
			Mode:     brain.Mode.String(),
			Affinity: aff.Value,
		})
	}
	return g.poseScratch
}

func distanceSq(x1, z1, x2, z2 float32) float32 {
	dx := x2 - x1
	dz := z2 - z1
	return dx*dx + dz*dz
}
