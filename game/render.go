package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pawmark/garden/components"
	"github.com/pawmark/garden/config"
	"github.com/pawmark/garden/species"
	"github.com/pawmark/garden/telemetry"
	"github.com/pawmark/garden/ui"
)

// Rendering constants
const (
	agentRadius   = 0.35 // world units
	bobAmplitude  = 0.08 // hover bob, world units
	bobFrequency  = 4.0  // rad/sec
	observerGlow  = 0.5  // world units
	restSpotShade = 0.35 // world units
)

var (
	groundColor = rl.NewColor(34, 48, 38, 255)
	wallColor   = rl.NewColor(58, 74, 60, 255)
	marginColor = rl.NewColor(44, 58, 46, 255)
)

// speciesColor returns the body color for a species.
func speciesColor(k species.Kind) rl.Color {
	switch k {
	case species.Moss:
		return rl.NewColor(110, 170, 90, 255)
	case species.Fluff:
		return rl.NewColor(225, 215, 190, 255)
	case species.Ember:
		return rl.NewColor(230, 120, 70, 255)
	case species.Wisp:
		return rl.NewColor(150, 190, 235, 255)
	case species.Prism:
		return rl.NewColor(205, 140, 220, 255)
	default:
		return rl.Gray
	}
}

// effectColor returns the ring color for a feedback event kind.
func effectColor(kind telemetry.EventType) rl.Color {
	switch kind {
	case telemetry.EventGreet:
		return rl.NewColor(250, 230, 120, 255)
	case telemetry.EventPet, telemetry.EventPulse:
		return rl.NewColor(240, 140, 180, 255)
	case telemetry.EventTap:
		return rl.NewColor(160, 220, 250, 255)
	default:
		return rl.White
	}
}

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(18, 24, 20, 255))

	g.drawGround()
	g.drawRestSpots()
	g.drawObserver()
	g.drawChase()
	g.drawAgents()
	g.drawEffects()
	g.drawHUD()

	rl.EndDrawing()
}

// drawGround fills the walled play area and its repulsion margin.
func (g *Game) drawGround() {
	bounds := g.movement.Bounds()
	x0, y0 := g.camera.WorldToScreen(bounds.MinX, bounds.MinZ)
	x1, y1 := g.camera.WorldToScreen(bounds.MaxX, bounds.MaxZ)
	w := x1 - x0
	h := y1 - y0

	rl.DrawRectangle(int32(x0), int32(y0), int32(w), int32(h), groundColor)

	// Wall repulsion band
	margin := float32(config.Cfg().World.WallMargin) * g.camera.Zoom
	rl.DrawRectangleLinesEx(
		rl.NewRectangle(x0+margin, y0+margin, w-2*margin, h-2*margin),
		1, marginColor,
	)

	rl.DrawRectangleLinesEx(rl.NewRectangle(x0, y0, w, h), 2, wallColor)
}

func (g *Game) drawRestSpots() {
	for _, spot := range config.Cfg().Derived.RestSpots {
		sx, sy := g.camera.WorldToScreen(spot[0], spot[1])
		r := restSpotShade * g.camera.Zoom
		rl.DrawCircleLines(int32(sx), int32(sy), r, marginColor)
	}
}

func (g *Game) drawObserver() {
	sx, sy := g.camera.WorldToScreen(g.observer.X, g.observer.Z)
	r := observerGlow * g.camera.Zoom
	rl.DrawCircleGradient(int32(sx), int32(sy), r,
		rl.NewColor(250, 245, 220, 70), rl.NewColor(250, 245, 220, 0))
}

// drawChase draws the chaser-to-runner line while an episode runs.
func (g *Game) drawChase() {
	chase := g.coord.Chase()
	if !chase.Active {
		return
	}
	x0, y0 := g.camera.WorldToScreen(chase.ChaserX, chase.ChaserZ)
	x1, y1 := g.camera.WorldToScreen(chase.RunnerX, chase.RunnerZ)
	rl.DrawLineEx(rl.NewVector2(x0, y0), rl.NewVector2(x1, y1), 2,
		rl.NewColor(230, 120, 70, 140))
}

func (g *Game) drawAgents() {
	query := g.agentFilter.Query()
	for query.Next() {
		pos, _, rot, agent, brain, social, aff := query.Get()

		if !g.camera.IsVisible(pos.X, pos.Z, agentRadius*2) {
			continue
		}

		sx, sy := g.camera.WorldToScreen(pos.X, pos.Z)
		r := agentRadius * g.camera.Zoom

		// Hovering species bob gently; held agents float higher.
		if agent.Caps.Hovers {
			phase := g.simTime*bobFrequency + float64(agent.PersonalitySeed)*10
			sy -= float32(math.Sin(phase)) * bobAmplitude * g.camera.Zoom
		}
		if brain.Mode == components.ModeHeld {
			shadowY := sy
			sy -= 0.5 * g.camera.Zoom
			rl.DrawEllipse(int32(sx), int32(shadowY), r*0.8, r*0.4,
				rl.NewColor(0, 0, 0, 60))
		}

		color := speciesColor(agent.Species)
		if brain.Mode == components.ModeSleeping {
			color = rl.ColorAlpha(color, 0.55)
		}

		rl.DrawCircle(int32(sx), int32(sy), r, color)

		// Facing notch
		nx := sx + float32(math.Cos(float64(rot.Yaw)))*r
		ny := sy + float32(math.Sin(float64(rot.Yaw)))*r
		rl.DrawLineEx(rl.NewVector2(sx, sy), rl.NewVector2(nx, ny), 2, rl.Black)

		// Engagement ring while socializing
		if social.Active {
			rl.DrawCircleLines(int32(sx), int32(sy), r*1.4,
				rl.NewColor(250, 230, 120, 180))
		}

		// Affinity tint ring, brighter with bond strength
		if aff.Value > 0.05 {
			alpha := uint8(60 + aff.Value*150)
			rl.DrawCircleLines(int32(sx), int32(sy), r*1.15,
				rl.NewColor(240, 140, 180, alpha))
		}
	}
}

// drawEffects renders expanding feedback rings and prunes dead ones.
func (g *Game) drawEffects() {
	g.fx.prune(g.simTime)
	for _, e := range g.fx.effects {
		age := float32((g.simTime - e.born) / effectLifetime)
		sx, sy := g.camera.WorldToScreen(e.x, e.z)
		r := (0.2 + age*0.8) * e.intensity * g.camera.Zoom
		color := rl.ColorAlpha(effectColor(e.kind), 1-age)
		rl.DrawCircleLines(int32(sx), int32(sy), r, color)
	}
}

func (g *Game) drawHUD() {
	data := ui.HUDData{
		Title:          "Garden",
		Population:     g.Population(),
		Tick:           g.tick,
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
		ScreenWidth:    int32(g.screenWidth),
		ScreenHeight:   int32(g.screenHeight),
	}

	query := g.agentFilter.Query()
	for query.Next() {
		_, _, _, _, brain, _, _ := query.Get()
		data.ModeCounts[brain.Mode]++
	}

	g.hud.Draw(data)
	g.drawInspector()
}

// drawInspector renders the selected agent's detail panel.
func (g *Game) drawInspector() {
	if !g.hasSelection {
		return
	}
	entity, ok := g.entities[g.selectedID]
	if !ok {
		g.hasSelection = false
		return
	}

	pos := g.posMap.Get(entity)
	vel := g.velMap.Get(entity)
	rot := g.rotMap.Get(entity)
	agent := g.agentMap.Get(entity)
	brain := g.brainMap.Get(entity)
	social := g.socialMap.Get(entity)
	aff := g.affMap.Get(entity)

	// Selection highlight around the agent
	sx, sy := g.camera.WorldToScreen(pos.X, pos.Z)
	rl.DrawCircleLines(int32(sx), int32(sy), agentRadius*g.camera.Zoom*1.7, rl.White)

	g.inspector.Draw(ui.InspectorData{
		AgentID:          agent.ID,
		Species:          agent.Species.String(),
		Mode:             brain.Mode.String(),
		X:                pos.X,
		Z:                pos.Z,
		Yaw:              rot.Yaw,
		Speed:            float32(math.Hypot(float64(vel.X), float64(vel.Z))),
		Affinity:         aff.Value,
		SocialActive:     social.Active,
		PartnerID:        social.PartnerID,
		SinceInteraction: g.simTime - brain.LastInteraction,
		ScreenWidth:      int32(g.screenWidth),
		ScreenHeight:     int32(g.screenHeight),
	})
}
