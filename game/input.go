package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pawmark/garden/ui"
)

// Tap detection thresholds. A press that neither moves nor lingers
// counts as a tap; anything else becomes a pickup drag.
const (
	tapMaxSeconds = 0.30
	tapMaxDragPx  = 6.0
)

const panSpeedPx = 420.0 // keyboard pan speed, screen px/sec

// Update processes input and advances the simulation.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(DT)
	}
}

// handleInput processes keyboard and pointer input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.logPerfStats()
	}

	g.handleCameraInput()
	g.handlePointer()
	g.handleHUD()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.camera != nil {
		g.camera.Resize(w, h)
	}
}

// handleCameraInput pans and zooms the viewer camera.
func (g *Game) handleCameraInput() {
	if g.camera == nil {
		return
	}

	// Right-button drag pans
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		g.camera.Pan(-delta.X, -delta.Y)
	}

	// Arrow-key pan
	frame := rl.GetFrameTime()
	pan := panSpeedPx * frame
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-pan, 0)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(pan, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -pan)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, pan)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + 0.1*wheel)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.camera.Reset()
	}
}

// handlePointer turns mouse state into observer position, taps, pickup
// drags, and rub gestures.
func (g *Game) handlePointer() {
	if g.camera == nil {
		return
	}

	mouse := rl.GetMousePosition()
	wx, wz := g.camera.ScreenToWorld(mouse.X, mouse.Y)

	// The pointer's ground position is the observer agents react to.
	if !g.holding {
		g.SetObserver(wx, wz)
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		g.pressActive = true
		g.pressScreenX, g.pressScreenY = mouse.X, mouse.Y
		g.pressTime = g.simTime
		g.pressAgentID, g.pressHasAgent = g.agentAt(wx, wz)

	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		if g.holding {
			g.moveHeld(wx, wz)
			break
		}
		if g.pressActive && g.pressHasAgent && g.dragDistance(mouse.X, mouse.Y) > tapMaxDragPx {
			// Drag past the tap threshold turns the press into a pickup.
			if g.pickUp(g.pressAgentID) {
				g.moveHeld(wx, wz)
			}
		}

	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		if g.holding {
			g.drop()
		} else if g.pressActive &&
			g.simTime-g.pressTime <= tapMaxSeconds &&
			g.dragDistance(mouse.X, mouse.Y) <= tapMaxDragPx {
			if g.pressHasAgent {
				g.tapAgent(g.pressAgentID)
			} else {
				g.hasSelection = false
			}
		}
		g.pressActive = false

	default:
		// No button: lateral motion over an agent feeds the rub detector.
		if id, ok := g.agentAt(wx, wz); ok {
			g.hoverMove(id, wx-g.prevPointerX)
		} else {
			g.endHover()
		}
	}

	g.prevPointerX = wx
}

func (g *Game) dragDistance(x, y float32) float32 {
	dx := x - g.pressScreenX
	dy := y - g.pressScreenY
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// handleHUD applies HUD widget actions.
func (g *Game) handleHUD() {
	if g.hud == nil {
		return
	}
	switch g.hud.TakeAction() {
	case ui.ActionTogglePause:
		g.paused = !g.paused
	case ui.ActionSlower:
		if g.stepsPerUpdate > 1 {
			g.stepsPerUpdate--
		}
	case ui.ActionFaster:
		if g.stepsPerUpdate < 10 {
			g.stepsPerUpdate++
		}
	}
}
