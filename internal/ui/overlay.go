//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the map summary and the last generation error on top of the
// map. Key I toggles the summary; errors are always shown.
type Overlay struct {
	showInfo bool
	info     []string
	err      string
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{showInfo: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetInfo replaces the summary text.
func (o *Overlay) SetInfo(info string) {
	o.info = strings.Split(strings.TrimRight(info, "\n"), "\n")
}

// SetError shows err until the next call; nil clears it.
func (o *Overlay) SetError(err error) {
	o.err = ""
	if err != nil {
		o.err = err.Error()
	}
}

// Update handles the overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showInfo = !o.showInfo
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	var lines []string
	if o.showInfo {
		lines = append(lines, o.info...)
	}
	if len(lines) == 0 && o.err == "" {
		return
	}

	face := basicfont.Face7x13
	width := 0
	for _, l := range append(lines, o.err) {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	height := len(lines) * overlayLineHeight
	if o.err != "" {
		height += overlayLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*overlayPadding), float64(height+2*overlayPadding))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 160})
	screen.DrawImage(o.pixel, op)

	y := overlayPadding + overlayBaseline
	for _, l := range lines {
		text.Draw(screen, l, face, overlayPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += overlayLineHeight
	}
	if o.err != "" {
		text.Draw(screen, o.err, face, overlayPadding, y, color.RGBA{R: 255, G: 110, B: 90, A: 255})
	}
}

const (
	overlayPadding    = 8
	overlayLineHeight = 15
	overlayBaseline   = 11
)
