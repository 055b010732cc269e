package systems

// scriptedRand replays fixed draws so transition tests are reproducible.
// Exhausted scripts fall back to values that never trigger a transition.
type scriptedRand struct {
	floats []float32
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float32() float32 {
	if r.fi < len(r.floats) {
		v := r.floats[r.fi]
		r.fi++
		return v
	}
	return 0.999999
}

func (r *scriptedRand) Intn(n int) int {
	if r.ii < len(r.ints) {
		v := r.ints[r.ii]
		r.ii++
		if v < n {
			return v
		}
		return n - 1
	}
	return 0
}
