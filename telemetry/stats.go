package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowEndTick int64   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Population at window end
	Population int `csv:"population"`

	// Feedback events during the window
	Greets      int `csv:"greets"`
	Pets        int `csv:"pets"`
	Taps        int `csv:"taps"`
	Pickups     int `csv:"pickups"`
	ChaseStarts int `csv:"chase_starts"`
	Pulses      int `csv:"pulses"`

	// Mode occupancy at window end
	Wandering   int `csv:"wandering"`
	Curious     int `csv:"curious"`
	Resting     int `csv:"resting"`
	Sleeping    int `csv:"sleeping"`
	Following   int `csv:"following"`
	Chasing     int `csv:"chasing"`
	Running     int `csv:"running"`
	Socializing int `csv:"socializing"`
	Held        int `csv:"held"`

	// Speed distribution sampled at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Affinity distribution
	AffinityMean float64 `csv:"affinity_mean"`
	AffinityMax  float64 `csv:"affinity_max"`
}

// ComputeSpeedStats fills the speed fields from a sample of agent speeds.
func (s *WindowStats) ComputeSpeedStats(speeds []float64) {
	if len(speeds) == 0 {
		return
	}
	sorted := make([]float64, len(speeds))
	copy(sorted, speeds)
	sort.Float64s(sorted)

	s.SpeedMean = stat.Mean(sorted, nil)
	s.SpeedP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.SpeedP90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
}

// ComputeAffinityStats fills the affinity fields from per-agent values.
func (s *WindowStats) ComputeAffinityStats(values []float64) {
	if len(values) == 0 {
		return
	}
	s.AffinityMean = stat.Mean(values, nil)
	for _, v := range values {
		if v > s.AffinityMax {
			s.AffinityMax = v
		}
	}
}

// Log emits the window to slog as one structured record.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"population", s.Population,
		"greets", s.Greets,
		"pets", s.Pets,
		"taps", s.Taps,
		"chase_starts", s.ChaseStarts,
		"pulses", s.Pulses,
		"wandering", s.Wandering,
		"following", s.Following,
		"socializing", s.Socializing,
		"sleeping", s.Sleeping,
		"speed_mean", s.SpeedMean,
		"speed_p90", s.SpeedP90,
		"affinity_mean", s.AffinityMean,
	)
}
