package worldmap

import (
	"fmt"
	"sync"

	"worldgen/internal/core"
	rng "worldgen/pkg/core"
)

// Generator owns the random stream used to build world maps. A Generator
// runs one generation at a time; overlapping requests fail with ErrBusy.
type Generator struct {
	categoryCount int
	rng           *rng.RNG
	mu            sync.Mutex
}

// NewGenerator returns a generator drawing from the given tile categories.
func NewGenerator(categories TileCategorySet) *Generator {
	return newGenerator(categories.Len())
}

func newGenerator(categoryCount int) *Generator {
	return &Generator{categoryCount: categoryCount, rng: rng.NewRNG(0)}
}

// CategoryCount reports how many tile categories the generator draws from.
func (g *Generator) CategoryCount() int { return g.categoryCount }

// Generate builds a complete map. A zero width or height is a no-op and
// returns a nil grid and a nil error. On error no grid is returned.
func (g *Generator) Generate(seed int64, width, height, iterations int) (*core.Grid, error) {
	run, err := g.Begin(seed, width, height, iterations)
	if err != nil || run == nil {
		return nil, err
	}
	return run.Finish(), nil
}

// Generate is the stateless form of (*Generator).Generate.
func Generate(seed int64, width, height, iterations, categoryCount int) (*core.Grid, error) {
	return newGenerator(categoryCount).Generate(seed, width, height, iterations)
}

// Begin reseeds the stream, initializes a grid and returns a Run that applies
// the relaxation passes one at a time. The generator stays busy until the
// run finishes or is closed. Begin returns a nil Run for a zero dimension.
func (g *Generator) Begin(seed int64, width, height, iterations int) (*Run, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("generate %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("generate with %d iterations: %w", iterations, ErrInvalidArgument)
	}
	if width == 0 || height == 0 {
		return nil, nil
	}
	if g.categoryCount < 1 {
		return nil, ErrNoCategories
	}
	if !g.mu.TryLock() {
		return nil, ErrBusy
	}

	g.rng.Seed(seed)
	grid, err := Initialize(width, height, g.categoryCount, g.rng)
	if err != nil {
		g.mu.Unlock()
		return nil, err
	}
	return &Run{
		gen:   g,
		grid:  grid,
		buf:   make([]int, width*height),
		total: iterations,
	}, nil
}

// Run is a generation in progress.
type Run struct {
	gen    *Generator
	grid   *core.Grid
	buf    []int
	passes int
	total  int
	closed bool
}

// Grid exposes the grid being relaxed. Callers must not modify it.
func (r *Run) Grid() *core.Grid { return r.grid }

// Passes reports how many relaxation passes have been applied.
func (r *Run) Passes() int { return r.passes }

// Total reports how many relaxation passes the run applies in all.
func (r *Run) Total() int { return r.total }

// Done reports whether every pass has been applied.
func (r *Run) Done() bool { return r.passes >= r.total }

// Step applies the next relaxation pass. It reports false once the run is
// done or closed. The generator is released after the last pass.
func (r *Run) Step() bool {
	if r.closed || r.Done() {
		return false
	}
	step(r.grid, r.gen.rng, r.buf)
	r.passes++
	if r.Done() {
		r.Close()
	}
	return true
}

// Finish applies the remaining passes, releases the generator and returns the
// finished grid.
func (r *Run) Finish() *core.Grid {
	for r.Step() {
	}
	r.Close()
	return r.grid
}

// Close abandons the run and releases the generator. It is safe to call more
// than once.
func (r *Run) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.gen.mu.Unlock()
}
