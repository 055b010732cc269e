package systems

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// WanderField samples coherent noise to produce slowly turning wander
// directions. Each agent's personality seed offsets the sample coordinate
// so agents drift independently from the same field.
type WanderField struct {
	noise opensimplex.Noise
	freq  float64
}

// NewWanderField creates a wander field with the given noise seed and
// time frequency.
func NewWanderField(seed int64, freq float64) *WanderField {
	return &WanderField{
		noise: opensimplex.New(seed),
		freq:  freq,
	}
}

// Direction returns the unit wander direction for an agent at simTime.
// The noise value in [-1, 1] maps to a full turn, so headings wrap
// smoothly instead of snapping.
func (f *WanderField) Direction(personalitySeed float32, simTime float64) (float32, float32) {
	n := f.noise.Eval2(simTime*f.freq, float64(personalitySeed)*73.91)
	angle := n * math.Pi * 2
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}
