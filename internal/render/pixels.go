package render

import "image/color"

// MissingTile is drawn for tile indices that have no palette entry.
var MissingTile = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// tilePixels writes one RGBA pixel per tile into buf, which must hold
// 4*len(tiles) bytes.
func tilePixels(buf []byte, tiles []uint8, palette []color.RGBA) {
	for i, t := range tiles {
		c := MissingTile
		if int(t) < len(palette) {
			c = palette[t]
		}
		px := buf[4*i : 4*i+4]
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
	}
}
