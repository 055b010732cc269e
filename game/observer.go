package game

import (
	"math"

	"github.com/pawmark/garden/config"
)

// Observer is the focal point agents react to: the pointer's ground-plane
// position in the viewer, or a scripted walk in headless runs.
type Observer struct {
	X, Z float32
}

// Observer returns the current observer position.
func (g *Game) Observer() Observer {
	return g.observer
}

// SetObserver places the observer directly. The viewer calls this from
// pointer input; tests use it to stage scenarios.
func (g *Game) SetObserver(x, z float32) {
	g.observer.X = x
	g.observer.Z = z
}

// updateObserverScripted walks the observer along a fixed orbit so
// headless runs still exercise following, curiosity and personal space.
func (g *Game) updateObserverScripted() {
	cfg := config.Cfg().Observer
	if cfg.OrbitPeriod <= 0 {
		return
	}
	angle := 2 * math.Pi * g.simTime / cfg.OrbitPeriod
	r := cfg.OrbitRadius
	g.observer.X = float32(r * math.Cos(angle))
	g.observer.Z = float32(r * math.Sin(angle))
}
