package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, -9, 9, -9, 9)

	// Should be centered on world
	if cam.X != 0 || cam.Z != 0 {
		t.Errorf("expected camera at (0, 0), got (%f, %f)", cam.X, cam.Z)
	}
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected fit zoom %f, got %f", cam.MinZoom, cam.Zoom)
	}
	if cam.MinZoom <= 0 {
		t.Errorf("bad min zoom %f", cam.MinZoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, -9, 9, -9, 9)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(0, 0)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, -9, 9, -9, 9)
	cam.X = 2
	cam.Z = -3

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wz := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wz)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wz, sx, sy)
		}
	}
}

func TestPanClampsAtWalls(t *testing.T) {
	cam := New(1280, 720, -9, 9, -9, 9)

	cam.Pan(-1e6, 0)
	if cam.X != -9 {
		t.Errorf("expected pan clamp at min-x wall, got %f", cam.X)
	}
	cam.Pan(0, 1e6)
	if cam.Z != 9 {
		t.Errorf("expected pan clamp at max-z wall, got %f", cam.Z)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, -9, 9, -9, 9)

	cam.SetZoom(1e6)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to max %f, got %f", cam.MaxZoom, cam.Zoom)
	}
	cam.SetZoom(0)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to min %f, got %f", cam.MinZoom, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, -9, 9, -9, 9)
	cam.SetZoom(cam.MaxZoom)

	if !cam.IsVisible(0, 0, 0.5) {
		t.Error("center not visible")
	}
	if cam.IsVisible(9, 9, 0.1) {
		t.Error("far corner visible at max zoom")
	}
}

func TestResizeKeepsZoomValid(t *testing.T) {
	cam := New(1280, 720, -9, 9, -9, 9)
	cam.Resize(320, 180)
	if cam.Zoom < cam.MinZoom || cam.Zoom > cam.MaxZoom {
		t.Errorf("zoom %f outside [%f, %f] after resize", cam.Zoom, cam.MinZoom, cam.MaxZoom)
	}
}
