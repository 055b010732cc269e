// Package camera provides a 2D camera system for viewport control.
package camera

// Camera controls the viewport into the walled ground plane. The world is
// bounded, so pan clamps at the walls instead of wrapping.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Z float32

	// Zoom in screen pixels per world unit
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// World bounds
	MinX, MaxX, MinZ, MaxZ float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// fitMargin keeps a sliver of background visible around the walls at the
// widest zoom.
const fitMargin = float32(1.1)

// New creates a camera centered on the world, zoomed to fit it.
func New(viewportW, viewportH, minX, maxX, minZ, maxZ float32) *Camera {
	c := &Camera{
		X:         (minX + maxX) / 2,
		Z:         (minZ + maxZ) / 2,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinX:      minX,
		MaxX:      maxX,
		MinZ:      minZ,
		MaxZ:      maxZ,
	}
	c.computeZoomLimits()
	c.Zoom = c.MinZoom
	return c
}

// computeZoomLimits derives the fit-to-world zoom floor and a fixed
// magnification ceiling.
func (c *Camera) computeZoomLimits() {
	fitX := c.ViewportW / ((c.MaxX - c.MinX) * fitMargin)
	fitZ := c.ViewportH / ((c.MaxZ - c.MinZ) * fitMargin)
	c.MinZoom = fitX
	if fitZ < c.MinZoom {
		c.MinZoom = fitZ
	}
	c.MaxZoom = c.MinZoom * 6
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wz float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wz-c.Z)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wz float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wz = c.Z + (sy-c.ViewportH/2)/c.Zoom
	return wx, wz
}

// IsVisible returns true if a circle at (wx, wz) with the given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wz, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	dx := wx - c.X
	dz := wz - c.Z
	return absf(dx) <= halfW && absf(dz) <= halfH
}

// Pan moves the camera by the given delta in screen pixels, clamped so
// the center stays inside the world.
func (c *Camera) Pan(dx, dz float32) {
	c.X = clamp(c.X+dx/c.Zoom, c.MinX, c.MaxX)
	c.Z = clamp(c.Z+dz/c.Zoom, c.MinZ, c.MaxZ)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.computeZoomLimits()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Reset returns the camera to the centered fit-to-world view.
func (c *Camera) Reset() {
	c.X = (c.MinX + c.MaxX) / 2
	c.Z = (c.MinZ + c.MaxZ) / 2
	c.Zoom = c.MinZoom
}

func clamp(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
