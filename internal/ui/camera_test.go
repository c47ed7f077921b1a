package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraFit(t *testing.T) {
	c := NewCamera(1)
	c.X, c.Y = 4, 4
	c.Fit(32, 16, 640, 480)
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 0.0, c.Y)
	assert.Equal(t, 20.0, c.Zoom)

	c.Fit(1000, 1000, 640, 480)
	assert.Equal(t, c.MinZoom, c.Zoom)
}

func TestCameraScrollClamps(t *testing.T) {
	c := NewCamera(10)
	c.Scroll(2)
	assert.Equal(t, 12.0, c.Zoom)
	c.Scroll(-100)
	assert.Equal(t, c.MinZoom, c.Zoom)
	c.Scroll(1000)
	assert.Equal(t, c.MaxZoom, c.Zoom)
}

func TestCameraDrag(t *testing.T) {
	c := NewCamera(10)
	c.Drag(100, 100, true)
	assert.Equal(t, 0.0, c.X, "first sample only anchors")

	c.Drag(150, 80, true)
	assert.InDelta(t, -4.0, c.X, 1e-9)
	assert.InDelta(t, -1.6, c.Y, 1e-9)

	c.Drag(0, 0, false)
	c.Drag(500, 500, true)
	assert.InDelta(t, -4.0, c.X, 1e-9, "release resets the anchor")
}

func TestCameraMapOrigin(t *testing.T) {
	c := NewCamera(10)
	x, y := c.MapOrigin(4, 2, 200, 100)
	assert.Equal(t, 200.0/2-25, x)
	assert.Equal(t, 100.0/2-15, y)

	wx, wy := c.WorldToScreen(0, 0, 200, 100)
	assert.Equal(t, 100.0, wx)
	assert.Equal(t, 50.0, wy)
}
