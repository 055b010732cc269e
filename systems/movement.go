package systems

import (
	"math"

	"github.com/pawmark/garden/components"
	"github.com/pawmark/garden/config"
)

// Yaw damping factors per mode, fractions of the remaining arc per 1/60s.
const (
	yawWander = 0.09
	yawRest   = 0.10
	yawFollow = 0.12
	yawChase  = 0.13
	yawSocial = 0.14
)

// MovementSystem turns the brain's mode into steering, integrates
// velocity and position, clamps to bounds, and damps yaw.
type MovementSystem struct {
	cfg        config.MovementConfig
	bounds     Bounds
	wallMargin float32
	wander     *WanderField

	scratch []Neighbor // reused neighbor buffer
}

// NewMovementSystem creates a movement system over the given bounds.
func NewMovementSystem(cfg config.MovementConfig, bounds Bounds, wallMargin float32, wander *WanderField) *MovementSystem {
	return &MovementSystem{
		cfg:        cfg,
		bounds:     bounds,
		wallMargin: wallMargin,
		wander:     wander,
		scratch:    make([]Neighbor, 0, 16),
	}
}

// Bounds returns the world bounds the system clamps to.
func (s *MovementSystem) Bounds() Bounds {
	return s.bounds
}

// Step integrates one agent for dt seconds. All peer reads go through the
// snapshot and grid, which hold the previous tick's committed state.
func (s *MovementSystem) Step(
	agent *components.Agent,
	brain *components.Brain,
	social *components.Social,
	pos *components.Position,
	vel *components.Velocity,
	rot *components.Rotation,
	chase *ChaseEpisode,
	observerX, observerZ float32,
	snap *Snapshot,
	grid *SpatialGrid,
	dt float32,
	simTime float64,
) {
	// Held agents are placed directly by the pickup; nothing integrates.
	if brain.Mode == components.ModeHeld {
		vel.X, vel.Z = 0, 0
		return
	}

	// Frame-rate-independent retention, tuned at 60Hz.
	k := float32(math.Pow(s.cfg.Damping, float64(dt)*60))

	var dirX, dirZ float32
	var speed float32
	yawTarget := rot.Yaw
	yawFactor := float32(0)

	switch brain.Mode {
	case components.ModeWandering:
		dirX, dirZ = s.wanderSteer(agent, pos, observerX, observerZ, snap, grid, simTime)
		speed = float32(s.cfg.WanderSpeed) * agent.Caps.SpeedScale

	case components.ModeCurious:
		// Decelerate only, look at the observer.
		yawTarget = bearing(pos.X, pos.Z, observerX, observerZ)
		yawFactor = yawFollow

	case components.ModeResting, components.ModeSleeping:
		if brain.HasRest && distanceSq(pos.X, pos.Z, brain.RestX, brain.RestZ) > float32(s.cfg.RestStopRadius*s.cfg.RestStopRadius) {
			dirX, dirZ = safeNormalize(brain.RestX-pos.X, brain.RestZ-pos.Z)
			speed = float32(s.cfg.RestSpeed)
		}

	case components.ModeFollowing:
		dirX, dirZ = safeNormalize(observerX-pos.X, observerZ-pos.Z)
		speed = float32(s.cfg.FollowSpeed) * agent.Caps.SpeedScale

	case components.ModeChasing:
		dirX, dirZ = safeNormalize(chase.RunnerX-pos.X, chase.RunnerZ-pos.Z)
		speed = float32(s.cfg.ChaseSpeed)

	case components.ModeRunning:
		dirX, dirZ = safeNormalize(pos.X-chase.ChaserX, pos.Z-chase.ChaserZ)
		speed = float32(s.cfg.FleeSpeed)

	case components.ModeSocializing:
		yawTarget = social.FaceYaw
		yawFactor = yawSocial
	}

	// Exponential approach toward the desired velocity.
	vel.X = vel.X*k + dirX*speed*(1-k)
	vel.Z = vel.Z*k + dirZ*speed*(1-k)

	pos.X = s.bounds.ClampX(pos.X + vel.X*dt)
	pos.Z = s.bounds.ClampZ(pos.Z + vel.Z*dt)

	// Yaw: modes without an explicit look target face where they move.
	if yawFactor == 0 {
		yawFactor = s.headingFactor(brain.Mode)
		if vel.X*vel.X+vel.Z*vel.Z > epsilon*epsilon {
			yawTarget = float32(math.Atan2(float64(vel.Z), float64(vel.X)))
		}
	}
	rot.Yaw = dampAngle(rot.Yaw, yawTarget, yawFactor, dt)
}

func (s *MovementSystem) headingFactor(mode components.Mode) float32 {
	switch mode {
	case components.ModeResting, components.ModeSleeping:
		return yawRest
	case components.ModeFollowing:
		return yawFollow
	case components.ModeChasing, components.ModeRunning:
		return yawChase
	default:
		return yawWander
	}
}

// wanderSteer sums the noise direction with wall, peer, and observer
// repulsions, then normalizes. A degenerate sum means no steering this tick.
func (s *MovementSystem) wanderSteer(agent *components.Agent, pos *components.Position, observerX, observerZ float32, snap *Snapshot, grid *SpatialGrid, simTime float64) (float32, float32) {
	x, z := s.wander.Direction(agent.PersonalitySeed, simTime)

	wx, wz := s.wallRepulsion(pos.X, pos.Z)
	x += wx * float32(s.cfg.WallGain)
	z += wz * float32(s.cfg.WallGain)

	sx, sz := s.separation(agent.ID, pos.X, pos.Z, snap, grid)
	x += sx * float32(s.cfg.SeparationGain)
	z += sz * float32(s.cfg.SeparationGain)

	ox, oz := repulsion(pos.X, pos.Z, observerX, observerZ, float32(s.cfg.ObserverRadius))
	x += ox * float32(s.cfg.ObserverGain)
	z += oz * float32(s.cfg.ObserverGain)

	return safeNormalize(x, z)
}

// wallRepulsion pushes away from any bound edge within the margin,
// proportional to penetration depth.
func (s *MovementSystem) wallRepulsion(x, z float32) (float32, float32) {
	var rx, rz float32
	if d := x - s.bounds.MinX; d < s.wallMargin {
		rx += (s.wallMargin - d) / s.wallMargin
	}
	if d := s.bounds.MaxX - x; d < s.wallMargin {
		rx -= (s.wallMargin - d) / s.wallMargin
	}
	if d := z - s.bounds.MinZ; d < s.wallMargin {
		rz += (s.wallMargin - d) / s.wallMargin
	}
	if d := s.bounds.MaxZ - z; d < s.wallMargin {
		rz -= (s.wallMargin - d) / s.wallMargin
	}
	return rx, rz
}

// separation sums repulsions from peers inside the separation radius,
// each scaled by (1 - distance/radius).
func (s *MovementSystem) separation(id uint32, x, z float32, snap *Snapshot, grid *SpatialGrid) (float32, float32) {
	radius := float32(s.cfg.SeparationRadius)
	s.scratch = grid.QueryRadiusInto(s.scratch[:0], x, z, radius, id, snap)

	var rx, rz float32
	for _, n := range s.scratch {
		nx, nz := safeNormalize(-n.DX, -n.DZ)
		w := 1 - float32(math.Sqrt(float64(n.DistSq)))/radius
		rx += nx * w
		rz += nz * w
	}
	return rx, rz
}

// repulsion is the single-point variant used against the observer.
func repulsion(x, z, fromX, fromZ, radius float32) (float32, float32) {
	dx := x - fromX
	dz := z - fromZ
	distSq := dx*dx + dz*dz
	if distSq >= radius*radius {
		return 0, 0
	}
	nx, nz := safeNormalize(dx, dz)
	w := 1 - float32(math.Sqrt(float64(distSq)))/radius
	return nx * w, nz * w
}
