package telemetry

// Collector accumulates events within time windows and produces WindowStats.
// It also buffers the discrete events of the current tick for external
// consumers (particles, audio, HUD).
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64

	windowStartTick int64

	// Event counters for current window
	greets      int
	pets        int
	taps        int
	chases      int
	pulses      int
	pickups     int

	// Per-tick event buffer
	events []Event
}

// NewCollector creates a stats collector.
// windowDurationSec is the stats window length in simulation seconds; dt
// is seconds per tick, used for the tick conversion.
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int64(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
	}
}

// Record buffers an event and bumps its window counter.
func (c *Collector) Record(ev Event) {
	c.events = append(c.events, ev)

	switch ev.Type {
	case EventGreet:
		c.greets++
	case EventPet:
		c.pets++
	case EventTap:
		c.taps++
	case EventPickup:
		c.pickups++
	case EventChaseStart:
		c.chases++
	case EventPulse:
		c.pulses++
	}
}

// DrainEvents returns the events buffered since the last drain. The
// returned slice is only valid until the next Record call.
func (c *Collector) DrainEvents() []Event {
	evs := c.events
	c.events = c.events[:0]
	return evs
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces WindowStats for the elapsed window and starts a new one.
// Population-level fields (counts, speeds) are filled in by the caller.
func (c *Collector) Flush(currentTick int64, simTime float64) WindowStats {
	stats := WindowStats{
		WindowEndTick: currentTick,
		SimTimeSec:    simTime,
		Greets:        c.greets,
		Pets:          c.pets,
		Taps:          c.taps,
		Pickups:       c.pickups,
		ChaseStarts:   c.chases,
		Pulses:        c.pulses,
	}

	c.windowStartTick = currentTick
	c.greets, c.pets, c.taps, c.pickups, c.chases, c.pulses = 0, 0, 0, 0, 0, 0

	return stats
}
