package worldmap

import (
	"fmt"

	"worldgen/internal/core"
)

// directions is the fixed enumeration a diffusion draw indexes into.
var directions = [4][2]int{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// Relax applies iterations relaxation passes to g in place and returns it.
// Every pass is a diffusion sub-pass followed by a homogenization sub-pass;
// border cells are never written.
func Relax(g *core.Grid, src Source, iterations int) (*core.Grid, error) {
	if g == nil {
		return nil, fmt.Errorf("relax: nil grid: %w", ErrInvalidArgument)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("relax %d iterations: %w", iterations, ErrInvalidArgument)
	}
	buf := make([]int, len(g.Cells()))
	for i := 0; i < iterations; i++ {
		step(g, src, buf)
	}
	return g, nil
}

// Step applies a single relaxation pass to g.
func Step(g *core.Grid, src Source) {
	step(g, src, make([]int, len(g.Cells())))
}

func step(g *core.Grid, src Source, buf []int) {
	cells := g.Cells()
	diffuse(cells, buf, g.W, g.H, src)
	copy(cells, buf)
	homogenize(cells, buf, g.W, g.H)
	copy(cells, buf)
}

// diffuse writes into dst a copy of cur where every interior cell takes the
// value of one randomly chosen cardinal neighbor. One draw per interior cell,
// row-major.
func diffuse(cur, dst []int, w, h int, src Source) {
	copy(dst, cur)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			d := directions[src.IntN(len(directions))]
			dst[y*w+x] = neighborValue(cur, w, h, x+d[0], y+d[1])
		}
	}
}

// homogenize writes into dst a copy of cur where every interior cell whose
// four neighbors agree takes their common value.
func homogenize(cur, dst []int, w, h int) {
	copy(dst, cur)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			first := neighborValue(cur, w, h, x+directions[0][0], y+directions[0][1])
			same := true
			for _, d := range directions[1:] {
				if neighborValue(cur, w, h, x+d[0], y+d[1]) != first {
					same = false
					break
				}
			}
			if same {
				dst[y*w+x] = first
			}
		}
	}
}

// neighborValue reads (x, y), treating anything outside the interior as ocean.
func neighborValue(cells []int, w, h, x, y int) int {
	if x <= 0 || x >= w-1 || y <= 0 || y >= h-1 {
		return Ocean
	}
	return cells[y*w+x]
}
