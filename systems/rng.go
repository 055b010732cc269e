package systems

// Rand is the random source injected into every system that draws.
// *rand.Rand satisfies it; tests substitute a scripted source to make
// transition draws deterministic.
type Rand interface {
	Float32() float32
	Intn(n int) int
}

// randRange draws a uniform value in [min, max).
func randRange(rng Rand, min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}
