package ui

// DragCorrection scales mouse drags before they move the camera.
const DragCorrection = 0.8

// Camera maps world space (tiles, y up, origin at the map center) to screen
// pixels. Zoom is the size of one tile in pixels.
type Camera struct {
	X, Y float64
	Zoom float64

	MinZoom   float64
	MaxZoom   float64
	ZoomSpeed float64

	dragging     bool
	lastX, lastY float64
}

// NewCamera returns a camera centered on the origin.
func NewCamera(zoom float64) *Camera {
	c := &Camera{Zoom: zoom, MinZoom: 1, MaxZoom: 64, ZoomSpeed: 1}
	c.Zoom = c.clampZoom(zoom)
	return c
}

// Fit centers the camera and picks the largest whole zoom that shows a w*h
// map inside the view.
func (c *Camera) Fit(w, h int, viewW, viewH float64) {
	c.X, c.Y = 0, 0
	if w <= 0 || h <= 0 {
		return
	}
	zoom := viewW / float64(w)
	if zh := viewH / float64(h); zh < zoom {
		zoom = zh
	}
	if zoom >= 1 {
		zoom = float64(int(zoom))
	}
	c.Zoom = c.clampZoom(zoom)
}

// Scroll zooms by the given mouse wheel delta.
func (c *Camera) Scroll(wheel float64) {
	if wheel == 0 {
		return
	}
	c.Zoom = c.clampZoom(c.Zoom + wheel*c.ZoomSpeed)
}

// Drag pans the camera while pressed is true. The first pressed sample only
// records the anchor; releasing clears it.
func (c *Camera) Drag(screenX, screenY float64, pressed bool) {
	if !pressed {
		c.dragging = false
		return
	}
	if !c.dragging {
		c.dragging = true
		c.lastX, c.lastY = screenX, screenY
		return
	}
	c.X -= DragCorrection * (screenX - c.lastX) / c.Zoom
	c.Y += DragCorrection * (screenY - c.lastY) / c.Zoom
	c.lastX, c.lastY = screenX, screenY
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(wx, wy, viewW, viewH float64) (float64, float64) {
	return viewW/2 + (wx-c.X)*c.Zoom, viewH/2 - (wy-c.Y)*c.Zoom
}

// MapOrigin returns the screen position of the top-left corner of a w*h map
// whose tile (x, y) is centered at (x - w/2, -y + h/2).
func (c *Camera) MapOrigin(w, h int, viewW, viewH float64) (float64, float64) {
	return c.WorldToScreen(-float64(w)*0.5-0.5, float64(h)*0.5+0.5, viewW, viewH)
}

func (c *Camera) clampZoom(z float64) float64 {
	if c.MinZoom > 0 && z < c.MinZoom {
		return c.MinZoom
	}
	if c.MaxZoom > 0 && z > c.MaxZoom {
		return c.MaxZoom
	}
	return z
}
