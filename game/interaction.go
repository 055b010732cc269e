package game

import (
	"github.com/pawmark/garden/telemetry"
)

// pickRadius is the pointer hit-test radius in world units.
const pickRadius = 0.45

// agentAt returns the closest agent within pick radius of the given
// ground-plane point.
func (g *Game) agentAt(x, z float32) (uint32, bool) {
	bestID := uint32(0)
	bestDistSq := float32(pickRadius * pickRadius)
	found := false

	query := g.agentFilter.Query()
	for query.Next() {
		pos, _, _, agent, _, _, _ := query.Get()
		d := distanceSq(pos.X, pos.Z, x, z)
		if d < bestDistSq {
			bestID = agent.ID
			bestDistSq = d
			found = true
		}
	}
	return bestID, found
}

// pickUp lifts an agent off the ground. The held agent tracks the
// pointer through moveHeld until drop.
func (g *Game) pickUp(id uint32) bool {
	entity, ok := g.entities[id]
	if !ok {
		return false
	}
	if g.hovering {
		g.endHover()
	}

	agent := g.agentMap.Get(entity)
	agent.Held = true

	brain := g.brainMap.Get(entity)
	brain.LastInteraction = g.simTime

	vel := g.velMap.Get(entity)
	vel.X, vel.Z = 0, 0

	g.holding = true
	g.heldID = id
	g.heldEntity = entity

	pos := g.posMap.Get(entity)
	g.collector.Record(telemetry.NewPickupEvent(g.tick, id, pos.X, pos.Z))
	return true
}

// moveHeld places the held agent under the pointer, clamped to bounds.
func (g *Game) moveHeld(x, z float32) {
	if !g.holding {
		return
	}
	bounds := g.movement.Bounds()
	pos := g.posMap.Get(g.heldEntity)
	pos.X = bounds.ClampX(x)
	pos.Z = bounds.ClampZ(z)
}

// drop releases the held agent where it is.
func (g *Game) drop() {
	if !g.holding {
		return
	}
	agent := g.agentMap.Get(g.heldEntity)
	agent.Held = false

	brain := g.brainMap.Get(g.heldEntity)
	brain.LastInteraction = g.simTime

	pos := g.posMap.Get(g.heldEntity)
	g.collector.Record(telemetry.NewDropEvent(g.tick, g.heldID, pos.X, pos.Z))
	g.holding = false
}

// tapAgent registers a quick poke on an agent and selects it for the
// inspector.
func (g *Game) tapAgent(id uint32) {
	entity, ok := g.entities[id]
	if !ok {
		return
	}
	g.hasSelection = true
	g.selectedID = id

	brain := g.brainMap.Get(entity)
	brain.LastInteraction = g.simTime

	pos := g.posMap.Get(entity)
	g.collector.Record(telemetry.NewTapEvent(g.tick, id, pos.X, pos.Z))
}

// hoverMove feeds lateral pointer motion over an agent into the rub
// detector. A completed gesture registers one pet.
func (g *Game) hoverMove(id uint32, dx float32) {
	if g.hovering && g.hoverID != id {
		g.endHover()
	}
	g.hovering = true
	g.hoverID = id

	if !g.rub.Observe(id, dx, g.simTime) {
		return
	}
	entity, ok := g.entities[id]
	if !ok {
		return
	}
	aff := g.affMap.Get(entity)
	brain := g.brainMap.Get(entity)
	g.rub.Pet(aff, brain, g.simTime)

	pos := g.posMap.Get(entity)
	g.collector.Record(telemetry.NewPetEvent(g.tick, id, pos.X, pos.Z, aff.Value))
}

// endHover resets gesture tracking when the pointer leaves an agent.
func (g *Game) endHover() {
	if !g.hovering {
		return
	}
	g.rub.Forget(g.hoverID)
	g.hovering = false
}
