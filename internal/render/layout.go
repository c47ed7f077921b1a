package render

import (
	"strings"

	"worldgen/internal/core"
)

// TilePosition returns the world-space center of tile (x, y) on a plane
// centered at the origin, with y growing upwards.
func TilePosition(x, y, w, h int) (float64, float64) {
	return float64(x) - float64(w)*0.5, -float64(y) + float64(h)*0.5
}

// Text renders g one rune per tile, one line per row.
func Text(g *core.Grid, glyph func(v int) rune) string {
	if g == nil {
		return ""
	}
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			b.WriteRune(glyph(g.At(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
