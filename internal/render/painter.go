//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter owns the image a map is rendered into. The image is the render
// handle of the previous map: Replace disposes it before a map of another
// size is drawn.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Dispose()
		gp.img = nil
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
}

// Replace uploads a new map, discarding whatever was rendered before.
func (gp *GridPainter) Replace(cells []uint8, w, h int, palette []color.RGBA) {
	if w != gp.w || h != gp.h {
		gp.resize(w, h)
	}
	if gp.img == nil || len(cells) != w*h {
		return
	}
	tilePixels(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)
}

// Draw paints the current map with the given geometry.
func (gp *GridPainter) Draw(dst *ebiten.Image, geo ebiten.GeoM) {
	if gp.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{GeoM: geo}
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
