package systems

import (
	"math"
	"testing"
)

func TestClampFloat(t *testing.T) {
	tests := []struct {
		name             string
		v, min, max, want float32
	}{
		{"below", -2, -1, 1, -1},
		{"above", 2, -1, 1, 1},
		{"inside", 0.5, -1, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampFloat(tt.v, tt.min, tt.max); got != tt.want {
				t.Errorf("clampFloat(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		want  float32
	}{
		{"zero", 0, 0},
		{"pi stays", math.Pi, math.Pi},
		{"wrap positive", math.Pi * 3, math.Pi},
		{"wrap negative", -math.Pi * 2.5, -math.Pi * 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeAngle(tt.angle)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("normalizeAngle(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

// Repeated damping must strictly shrink the shortest angular distance,
// with no overshoot and no discontinuity at the +-pi seam.
func TestDampAngleConvergence(t *testing.T) {
	const dt = 1.0 / 60.0

	tests := []struct {
		name        string
		yaw, target float32
	}{
		{"simple", 0, 1.5},
		{"negative", 1.0, -2.0},
		{"across seam", 3.0, -3.0},
		{"across seam reverse", -3.1, 3.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw := tt.yaw
			prev := math.Abs(float64(normalizeAngle(tt.target - yaw)))
			for i := 0; i < 200; i++ {
				yaw = dampAngle(yaw, tt.target, 0.12, dt)
				dist := math.Abs(float64(normalizeAngle(tt.target - yaw)))
				if dist >= prev && prev > 1e-6 {
					t.Fatalf("step %d: distance %v did not shrink from %v", i, dist, prev)
				}
				prev = dist
			}
			if prev > 0.01 {
				t.Errorf("yaw did not converge: remaining distance %v", prev)
			}
		})
	}
}

func TestDampAngleFrameRateIndependence(t *testing.T) {
	// One 1/30s step should land close to two 1/60s steps.
	coarse := dampAngle(0, 1.0, 0.1, 1.0/30.0)
	fine := dampAngle(dampAngle(0, 1.0, 0.1, 1.0/60.0), 1.0, 0.1, 1.0/60.0)
	if math.Abs(float64(coarse-fine)) > 0.05 {
		t.Errorf("coarse step %v too far from two fine steps %v", coarse, fine)
	}
}

func TestSafeNormalize(t *testing.T) {
	tests := []struct {
		name string
		x, z float32
		zero bool
	}{
		{"unit x", 5, 0, false},
		{"diagonal", 3, 4, false},
		{"zero vector", 0, 0, true},
		{"near zero", 1e-8, -1e-8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, nz := safeNormalize(tt.x, tt.z)
			if tt.zero {
				if nx != 0 || nz != 0 {
					t.Errorf("safeNormalize(%v, %v) = (%v, %v), want (0, 0)", tt.x, tt.z, nx, nz)
				}
				return
			}
			length := math.Sqrt(float64(nx*nx + nz*nz))
			if math.Abs(length-1) > 1e-4 {
				t.Errorf("safeNormalize(%v, %v) length = %v, want 1", tt.x, tt.z, length)
			}
		})
	}
}

func TestTransitionChance(t *testing.T) {
	// The rate*dt approximation can exceed 1 at low frame rates; it must
	// be clamped, not trusted.
	if got := transitionChance(10, 0.5); got != 1 {
		t.Errorf("transitionChance(10, 0.5) = %v, want 1", got)
	}
	if got := transitionChance(0.1, 1.0/60.0); math.Abs(float64(got)-0.1/60) > 1e-6 {
		t.Errorf("transitionChance(0.1, 1/60) = %v", got)
	}
	if got := transitionChance(-1, 0.016); got != 0 {
		t.Errorf("negative rate should clamp to 0, got %v", got)
	}
}

func TestFiniteOr(t *testing.T) {
	if got := finiteOr(float32(math.NaN()), 3); got != 3 {
		t.Errorf("finiteOr(NaN, 3) = %v", got)
	}
	if got := finiteOr(float32(math.Inf(1)), 0); got != 0 {
		t.Errorf("finiteOr(+Inf, 0) = %v", got)
	}
	if got := finiteOr(2.5, 0); got != 2.5 {
		t.Errorf("finiteOr(2.5, 0) = %v", got)
	}
}
