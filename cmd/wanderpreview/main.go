// Wander field preview tool - interactive visualization with sliders.
//
// Traces the paths a handful of personality seeds would wander along,
// for tuning the noise frequency before committing it to config.
//
// Usage: go run ./cmd/wanderpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pawmark/garden/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// PreviewParams holds the wander field parameters under tuning.
type PreviewParams struct {
	Freq     float32 // noise time frequency, Hz
	Speed    float32 // walk speed, world units/sec
	Duration float32 // traced seconds per path
	Traces   int
	Seed     int64
}

// tracePoint is one pose along a traced path.
type tracePoint struct {
	x, y float32
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Wander Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := PreviewParams{
		Freq:     0.15,
		Speed:    1.28,
		Duration: 60,
		Traces:   8,
		Seed:     42,
	}

	traces := generateTraces(params)
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			traces = generateTraces(params)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawTraces(traces)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Wander Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Noise frequency (Hz)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newFreq := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 60, Height: 20},
			"", fmt.Sprintf("%.3f", params.Freq), params.Freq, 0.01, 1.0,
		)
		if newFreq != params.Freq {
			params.Freq = newFreq
			needsRegen = true
		}
		panelY += 30

		rl.DrawText("Walk speed (units/sec)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSpeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 60, Height: 20},
			"", fmt.Sprintf("%.2f", params.Speed), params.Speed, 0.2, 4.0,
		)
		if newSpeed != params.Speed {
			params.Speed = newSpeed
			needsRegen = true
		}
		panelY += 30

		rl.DrawText("Traced seconds", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newDuration := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 60, Height: 20},
			"", fmt.Sprintf("%.0f", params.Duration), params.Duration, 10, 300,
		)
		if newDuration != params.Duration {
			params.Duration = newDuration
			needsRegen = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "New Seed") {
			params.Seed = rand.Int63()
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset") {
			params = PreviewParams{Freq: 0.15, Speed: 1.28, Duration: 60, Traces: 8, Seed: 42}
			needsRegen = true
		}
		panelY += 45

		rl.DrawText(fmt.Sprintf("Seed: %d", params.Seed), int32(panelX), int32(panelY), 14, rl.Gray)

		rl.EndDrawing()
	}
}

// generateTraces integrates one wander path per personality seed.
func generateTraces(params PreviewParams) [][]tracePoint {
	const dt = 1.0 / 30.0

	field := systems.NewWanderField(params.Seed, float64(params.Freq))
	rng := rand.New(rand.NewSource(params.Seed))

	traces := make([][]tracePoint, params.Traces)
	steps := int(params.Duration / dt)

	for i := range traces {
		personality := rng.Float32()
		var x, y float32
		path := make([]tracePoint, 0, steps)
		for s := 0; s < steps; s++ {
			t := float64(s) * dt
			dx, dy := field.Direction(personality, t)
			x += dx * params.Speed * dt
			y += dy * params.Speed * dt
			path = append(path, tracePoint{x, y})
		}
		traces[i] = path
	}
	return traces
}

// drawTraces renders all paths centered in the preview square, scaled
// to fit the widest one.
func drawTraces(traces [][]tracePoint) {
	var maxExtent float32 = 1
	for _, path := range traces {
		for _, p := range path {
			if v := absf(p.x); v > maxExtent {
				maxExtent = v
			}
			if v := absf(p.y); v > maxExtent {
				maxExtent = v
			}
		}
	}

	center := float32(10 + previewSize/2)
	scale := float32(previewSize/2-20) / maxExtent

	for i, path := range traces {
		color := rl.ColorFromHSV(float32(i)*360/float32(len(traces)), 0.7, 0.8)
		for j := 1; j < len(path); j++ {
			rl.DrawLineV(
				rl.Vector2{X: center + path[j-1].x*scale, Y: center + path[j-1].y*scale},
				rl.Vector2{X: center + path[j].x*scale, Y: center + path[j].y*scale},
				color,
			)
		}
		if len(path) > 0 {
			last := path[len(path)-1]
			rl.DrawCircleV(rl.Vector2{X: center + last.x*scale, Y: center + last.y*scale}, 3, color)
		}
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
