// Package systems contains the simulation systems: the per-agent brain,
// the movement integrator, the proxemics coordinator, and the rub overlay.
package systems

import "math"

// epsilon guards vector normalization against near-zero lengths.
const epsilon = 1e-5

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps a float32 value to the [0, 1] range.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// dampAngle moves yaw toward target along the shortest arc, scaled for
// frame-rate independence. factor is the per-1/60s-tick fraction of the
// remaining arc; the same tuned feel holds at any frame rate.
func dampAngle(yaw, target, factor, dt float32) float32 {
	diff := normalizeAngle(target - yaw)
	step := clamp01(factor * dt * 60)
	return normalizeAngle(yaw + diff*step)
}

// safeNormalize returns the unit vector of (x, z), or (0, 0) when the
// length is below epsilon. Steering falls back to "no steering this tick"
// rather than propagating NaN.
func safeNormalize(x, z float32) (float32, float32) {
	lenSq := x*x + z*z
	if lenSq < epsilon*epsilon {
		return 0, 0
	}
	inv := 1 / float32(math.Sqrt(float64(lenSq)))
	return x * inv, z * inv
}

// distanceSq returns the squared distance between two points.
func distanceSq(x1, z1, x2, z2 float32) float32 {
	dx := x1 - x2
	dz := z1 - z2
	return dx*dx + dz*dz
}

// bearing returns the angle from (fromX, fromZ) toward (toX, toZ).
func bearing(fromX, fromZ, toX, toZ float32) float32 {
	return float32(math.Atan2(float64(toZ-fromZ), float64(toX-fromX)))
}

// transitionChance converts a per-second rate into a per-tick probability.
// This is a first-order approximation of a Poisson process; it degrades at
// large dt, so the result is clamped to [0, 1] rather than trusted.
func transitionChance(rate, dt float32) float32 {
	return clamp01(rate * dt)
}

// finiteOr replaces NaN and Inf with a fallback. Malformed external input
// is clamped at the boundary instead of corrupting simulation state.
func finiteOr(v, fallback float32) float32 {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return fallback
	}
	return v
}
