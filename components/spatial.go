package components

// Position is an agent's ground-plane position. Height is derived by the
// viewer (constant per species, or a hover bob) and never simulated here.
type Position struct {
	X, Z float32
}

// Velocity is accumulated and damped each tick. Units are distance per
// 1/60s tick, decoupled from variable frame time.
type Velocity struct {
	X, Z float32
}

// Rotation holds the heading. Yaw is damped toward a target with
// shortest-path wrapping and may lag the velocity direction.
type Rotation struct {
	Yaw float32 // radians
}
