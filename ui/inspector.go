package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InspectorData holds one agent's details for the inspector panel.
type InspectorData struct {
	AgentID          uint32
	Species          string
	Mode             string
	X, Z             float32
	Yaw              float32
	Speed            float32
	Affinity         float32
	SocialActive     bool
	PartnerID        uint32
	SinceInteraction float64

	ScreenWidth  int32
	ScreenHeight int32
}

const (
	inspectorWidth  = 230
	inspectorHeight = 170
)

// Inspector renders the selected-agent detail panel.
type Inspector struct{}

// NewInspector creates an inspector panel renderer.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Draw renders the panel in the bottom-right corner.
func (p *Inspector) Draw(data InspectorData) {
	x := data.ScreenWidth - inspectorWidth - 10
	y := data.ScreenHeight - inspectorHeight - 10

	rl.DrawRectangle(x, y, inspectorWidth, inspectorHeight, rl.NewColor(12, 16, 14, 220))
	rl.DrawRectangleLines(x, y, inspectorWidth, inspectorHeight, rl.DarkGray)

	tx := x + 10
	ty := y + 8
	rl.DrawText(fmt.Sprintf("Agent %d (%s)", data.AgentID, data.Species), tx, ty, 16, rl.White)
	ty += 24

	lines := []string{
		fmt.Sprintf("Mode: %s", data.Mode),
		fmt.Sprintf("Pos: %.2f, %.2f  Yaw: %.2f", data.X, data.Z, data.Yaw),
		fmt.Sprintf("Speed: %.2f", data.Speed),
		fmt.Sprintf("Affinity: %.2f", data.Affinity),
	}
	if data.SocialActive {
		lines = append(lines, fmt.Sprintf("Engaged with agent %d", data.PartnerID))
	} else {
		lines = append(lines, "Not engaged")
	}
	lines = append(lines, fmt.Sprintf("Last interaction: %.1fs ago", data.SinceInteraction))

	for _, line := range lines {
		rl.DrawText(line, tx, ty, 14, rl.LightGray)
		ty += 20
	}
}
