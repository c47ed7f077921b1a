package worldmap

import (
	"fmt"
	"sort"
	"strings"

	"worldgen/internal/core"
)

// Summary describes the composition of a generated map.
type Summary struct {
	Width, Height int
	// Counts holds the number of cells per tile index.
	Counts []int
	// Islands holds the size of every 4-connected region of non-ocean cells,
	// largest first.
	Islands []int
}

// Summarize counts tiles per category and measures land islands.
func Summarize(g *core.Grid, categoryCount int) Summary {
	s := Summary{Counts: make([]int, categoryCount)}
	if g == nil {
		return s
	}
	s.Width, s.Height = g.W, g.H
	for _, v := range g.Cells() {
		if v >= 0 && v < categoryCount {
			s.Counts[v]++
		}
	}
	s.Islands = islandSizes(g)
	return s
}

// LandCells returns the number of non-ocean cells.
func (s Summary) LandCells() int {
	total := 0
	for i, n := range s.Counts {
		if i != Ocean {
			total += n
		}
	}
	return total
}

// Format renders the summary using the category names of set.
func (s Summary) Format(set TileCategorySet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d, %d land cells, %d islands", s.Width, s.Height, s.LandCells(), len(s.Islands))
	if len(s.Islands) > 0 {
		fmt.Fprintf(&b, " (largest %d)", s.Islands[0])
	}
	for i, n := range s.Counts {
		name := fmt.Sprintf("#%d", i)
		if i < len(set) {
			name = set[i].Name
		}
		fmt.Fprintf(&b, "\n  %-10s %d", name, n)
	}
	return b.String()
}

func islandSizes(g *core.Grid) []int {
	cells := g.Cells()
	seen := make([]bool, len(cells))
	var sizes []int
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			start := g.Index(x, y)
			if cells[start] == Ocean || seen[start] {
				continue
			}
			queue := []int{start}
			seen[start] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := queue[qi]%g.W, queue[qi]/g.W
				for _, d := range directions {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) {
						continue
					}
					vi := g.Index(vx, vy)
					if cells[vi] == Ocean || seen[vi] {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			sizes = append(sizes, len(queue))
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}
