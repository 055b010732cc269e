// Package ui renders the viewer's heads-up display.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pawmark/garden/components"
)

// Action is a HUD widget request for the game to apply.
type Action uint8

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionSlower
	ActionFaster
)

// HUDData holds everything the HUD needs for one frame.
type HUDData struct {
	Title          string
	Population     int
	Tick           int64
	StepsPerUpdate int
	FPS            int32
	Paused         bool
	ScreenWidth    int32
	ScreenHeight   int32

	// ModeCounts is indexed by components.Mode.
	ModeCounts [9]int
}

// HUD renders the main heads-up display.
type HUD struct {
	pending Action
}

// NewHUD creates a HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// TakeAction returns the widget action from the last Draw and clears it.
func (h *HUD) TakeAction() Action {
	a := h.pending
	h.pending = ActionNone
	return a
}

// Draw renders the HUD and captures widget clicks.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Agents: %d | Tick: %d | Speed: %dx | FPS: %d",
			data.Population, data.Tick, data.StepsPerUpdate, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	h.drawModeCounts(data, 55)
	h.drawControls(data)
	h.drawControlsLegend(data)

	statusText := "Running"
	statusColor := rl.Green
	if data.Paused {
		statusText = "PAUSED"
		statusColor = rl.Yellow
	}
	rl.DrawText(statusText, 10, 95, 16, statusColor)
}

// drawModeCounts renders the per-mode occupancy line, skipping empty modes.
func (h *HUD) drawModeCounts(data HUDData, y int32) {
	line := ""
	for i, count := range data.ModeCounts {
		if count == 0 {
			continue
		}
		if line != "" {
			line += " | "
		}
		line += fmt.Sprintf("%s: %d", components.Mode(i).String(), count)
	}
	rl.DrawText(line, 10, y, 14, rl.LightGray)
}

// drawControlsLegend renders the key binding hints at the bottom edge.
func (h *HUD) drawControlsLegend(data HUDData) {
	rl.DrawText("space pause | < > speed | wheel zoom | R reset | drag to carry",
		10, data.ScreenHeight-25, 14, rl.Gray)
}

// drawControls renders the pause/speed buttons in the top-right corner.
func (h *HUD) drawControls(data HUDData) {
	x := float32(data.ScreenWidth - 210)
	y := float32(10)

	pauseText := "Pause"
	if data.Paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 80, Height: 24}, pauseText) {
		h.pending = ActionTogglePause
	}
	if gui.Button(rl.Rectangle{X: x + 90, Y: y, Width: 50, Height: 24}, "<") {
		h.pending = ActionSlower
	}
	if gui.Button(rl.Rectangle{X: x + 150, Y: y, Width: 50, Height: 24}, ">") {
		h.pending = ActionFaster
	}
}
