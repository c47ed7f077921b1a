package worldmap

import (
	"fmt"

	"worldgen/internal/core"
)

// Source supplies the bounded random draws the generator consumes.
// *core.RNG from worldgen/pkg/core satisfies it.
type Source interface {
	IntN(n int) int
}

// Initialize allocates a width*height grid with an ocean border and fills
// every interior cell, row by row from (1,1), with src.IntN(categoryCount).
// It consumes exactly (width-2)*(height-2) draws when both are positive.
func Initialize(width, height, categoryCount int, src Source) (*core.Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("initialize %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if categoryCount < 1 {
		return nil, ErrNoCategories
	}
	g := core.NewGrid(width, height)
	cells := g.Cells()
	for x := 0; x < width; x++ {
		cells[x] = Ocean
		cells[(height-1)*width+x] = Ocean
	}
	for y := 0; y < height; y++ {
		cells[y*width] = Ocean
		cells[y*width+width-1] = Ocean
	}
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			cells[y*width+x] = src.IntN(categoryCount)
		}
	}
	return g, nil
}
