package render

import (
	"testing"

	"worldgen/internal/core"
)

func TestTilePositionCentersGrid(t *testing.T) {
	cases := []struct {
		x, y, w, h int
		wx, wy     float64
	}{
		{x: 0, y: 0, w: 32, h: 32, wx: -16, wy: 16},
		{x: 31, y: 31, w: 32, h: 32, wx: 15, wy: -15},
		{x: 2, y: 1, w: 5, h: 3, wx: -0.5, wy: 0.5},
	}
	for _, tc := range cases {
		wx, wy := TilePosition(tc.x, tc.y, tc.w, tc.h)
		if wx != tc.wx || wy != tc.wy {
			t.Fatalf("TilePosition(%d,%d,%d,%d) = (%v,%v), expected (%v,%v)", tc.x, tc.y, tc.w, tc.h, wx, wy, tc.wx, tc.wy)
		}
	}
}

func TestText(t *testing.T) {
	g := core.NewGrid(3, 2)
	g.Set(1, 0, 1)
	g.Set(2, 1, 2)
	glyphs := []rune{'~', '#', '^'}
	got := Text(g, func(v int) rune { return glyphs[v] })
	if want := "~#~\n~~^\n"; got != want {
		t.Fatalf("Text = %q, expected %q", got, want)
	}
	if Text(nil, nil) != "" {
		t.Fatal("nil grid must render empty")
	}
}
