package render

import (
	"image/color"
	"testing"
)

func TestTilePixels(t *testing.T) {
	palette := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 9, G: 8, B: 7, A: 128},
	}
	tiles := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(tiles))
	tilePixels(buf, tiles, palette)

	want := []byte{9, 8, 7, 128, 1, 2, 3, 255, 9, 8, 7, 128}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, expected %d (buf %v)", i, buf[i], want[i], buf)
		}
	}
}

func TestTilePixelsMarksMissingPaletteEntries(t *testing.T) {
	buf := make([]byte, 8)
	tilePixels(buf, []uint8{0, 4}, []color.RGBA{{A: 255}})
	if buf[3] != 255 || buf[0] != 0 {
		t.Fatalf("first tile should use the palette, got %v", buf[:4])
	}
	got := color.RGBA{R: buf[4], G: buf[5], B: buf[6], A: buf[7]}
	if got != MissingTile {
		t.Fatalf("out-of-palette tile = %v, expected %v", got, MissingTile)
	}

	buf = make([]byte, 4)
	tilePixels(buf, []uint8{0}, nil)
	if got := (color.RGBA{R: buf[0], G: buf[1], B: buf[2], A: buf[3]}); got != MissingTile {
		t.Fatalf("empty palette should mark every tile, got %v", got)
	}
}
