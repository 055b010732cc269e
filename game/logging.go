package game

import (
	"log/slog"
	"sort"

	"github.com/pawmark/garden/telemetry"
)

// logEvents emits one structured record per feedback event.
func (g *Game) logEvents(events []telemetry.Event) {
	for _, ev := range events {
		slog.Debug("event",
			"type", ev.Type.String(),
			"tick", ev.Tick,
			"agent", ev.AgentID,
			"partner", ev.PartnerID,
			"x", ev.X,
			"z", ev.Z,
		)
	}
}

// logPerfStats logs the per-phase timing breakdown.
func (g *Game) logPerfStats() {
	stats := g.perf.Stats()
	attrs := []any{
		"tick", g.tick,
		"steps_per_update", g.stepsPerUpdate,
		"tick_avg", stats.AvgTickDuration,
		"tick_max", stats.MaxTickDuration,
	}

	phases := make([]string, 0, len(stats.PhaseAvg))
	for phase := range stats.PhaseAvg {
		phases = append(phases, phase)
	}
	sort.Strings(phases)
	for _, phase := range phases {
		attrs = append(attrs, phase, stats.PhaseAvg[phase])
	}
	slog.Info("perf", attrs...)
}

func (g *Game) logWriteError(kind string, err error) {
	slog.Error("telemetry write failed", "kind", kind, "error", err)
}
