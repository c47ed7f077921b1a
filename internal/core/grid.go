package core

// Grid stores a 2D grid of tile indices in row-major order.
type Grid struct {
	W, H int
	data []int
}

// NewGrid allocates a zeroed grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, data: make([]int, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []int { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *Grid) At(x, y int) int { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *Grid) Set(x, y, v int) { g.data[y*g.W+x] = v }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// IsBorder reports whether (x, y) lies on the outer ring of the grid.
func (g *Grid) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.W-1 || y == g.H-1
}

// IsInterior reports whether (x, y) lies strictly inside the border ring.
func (g *Grid) IsInterior(x, y int) bool {
	return x > 0 && y > 0 && x < g.W-1 && y < g.H-1
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]int(nil), g.data...)}
}

// Equal reports whether both grids have the same shape and cell values.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H || len(g.data) != len(o.data) {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}
