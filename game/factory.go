package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pawmark/garden/components"
	"github.com/pawmark/garden/config"
	"github.com/pawmark/garden/species"
)

// spawnMargin keeps initial placements away from the walls so newly
// spawned agents don't start inside the repulsion band.
const spawnMargin = 1.5

// spawnInitialPopulation creates the starting roster, cycling through
// the species catalog.
func (g *Game) spawnInitialPopulation() {
	cfg := config.Cfg()
	for i := 0; i < cfg.Population.Initial; i++ {
		kind := species.All[i%len(species.All)]
		x := g.randCoord(cfg.Derived.MinX, cfg.Derived.MaxX)
		z := g.randCoord(cfg.Derived.MinZ, cfg.Derived.MaxZ)
		g.spawnAgent(kind, x, z)
	}
}

func (g *Game) randCoord(minV, maxV float32) float32 {
	lo := minV + spawnMargin
	hi := maxV - spawnMargin
	if hi <= lo {
		return (minV + maxV) / 2
	}
	return lo + g.rng.Float32()*(hi-lo)
}

// spawnAgent creates a new agent entity at the given position.
func (g *Game) spawnAgent(kind species.Kind, x, z float32) ecs.Entity {
	id := g.nextID
	g.nextID++

	pos := components.Position{X: x, Z: z}
	vel := components.Velocity{}
	rot := components.Rotation{Yaw: g.rng.Float32()*2*math.Pi - math.Pi}
	agent := components.Agent{
		ID:              id,
		Species:         kind,
		Caps:            species.Caps(kind),
		PersonalitySeed: g.rng.Float32(),
	}
	brain := components.Brain{
		Mode:            components.ModeWandering,
		LastInteraction: g.simTime,
	}
	social := components.Social{}
	aff := components.Affinity{}

	entity := g.agentMapper.NewEntity(&pos, &vel, &rot, &agent, &brain, &social, &aff)
	g.entities[id] = entity
	return entity
}

// removeAgent despawns an agent and forgets its gesture state.
func (g *Game) removeAgent(id uint32) {
	entity, ok := g.entities[id]
	if !ok {
		return
	}
	if g.holding && g.heldID == id {
		g.holding = false
	}
	if g.hasSelection && g.selectedID == id {
		g.hasSelection = false
	}
	g.rub.Forget(id)
	delete(g.entities, id)
	g.agentMapper.Remove(entity)
}
