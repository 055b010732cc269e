package game

import (
	"github.com/pawmark/garden/telemetry"
)

// effectLifetime is how long one feedback ring stays visible, seconds.
const effectLifetime = 0.6

// effect is one expanding feedback ring in world space.
type effect struct {
	x, z      float32
	born      float64
	intensity float32
	kind      telemetry.EventType
}

// effectPool holds live feedback effects for the viewer.
type effectPool struct {
	effects []effect
}

func newEffectPool() *effectPool {
	return &effectPool{effects: make([]effect, 0, 64)}
}

// spawn converts drained telemetry events into visible effects.
// Chase events carry no position and are drawn as the chase line instead.
func (p *effectPool) spawn(events []telemetry.Event, now float64) {
	for _, ev := range events {
		switch ev.Type {
		case telemetry.EventChaseStart, telemetry.EventChaseEnd:
			continue
		}
		p.effects = append(p.effects, effect{
			x:         ev.X,
			z:         ev.Z,
			born:      now,
			intensity: ev.Intensity,
			kind:      ev.Type,
		})
	}
}

// prune drops expired effects, keeping order.
func (p *effectPool) prune(now float64) {
	live := p.effects[:0]
	for _, e := range p.effects {
		if now-e.born < effectLifetime {
			live = append(live, e)
		}
	}
	p.effects = live
}
