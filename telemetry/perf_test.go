package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorWindow(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 6; i++ {
		p.StartTick()
		p.StartPhase(PhaseBrains)
		time.Sleep(time.Millisecond)
		p.StartPhase(PhaseMovement)
		p.EndTick()
	}

	stats := p.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Errorf("avg tick duration = %v, want > 0", stats.AvgTickDuration)
	}
	if stats.MaxTickDuration < stats.AvgTickDuration {
		t.Errorf("max %v below avg %v", stats.MaxTickDuration, stats.AvgTickDuration)
	}
	if stats.PhaseAvg[PhaseBrains] <= 0 {
		t.Error("brains phase not recorded")
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(8)
	stats := p.Stats()
	if stats.AvgTickDuration != 0 {
		t.Errorf("avg = %v with no samples", stats.AvgTickDuration)
	}
}
