package worldmap

import (
	"image/color"

	"worldgen/internal/core"
)

// World adapts a Generator to the core.Sim contract so the GUI can show and
// regenerate maps. Reset generates a new map; Step advances an animated run.
type World struct {
	cfg Config
	gen *Generator

	run     *Run
	grid    *core.Grid
	display []uint8
	err     error
}

// New returns a World using the default configuration with the given size.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. No map
// is generated until Reset or Regenerate is called.
func NewWithConfig(cfg Config) *World {
	return &World{cfg: cfg, gen: NewGenerator(cfg.Categories)}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "worldmap" }

// Size reports the dimensions of the current map.
func (w *World) Size() core.Size {
	if w.grid == nil {
		return core.Size{}
	}
	return core.Size{W: w.grid.W, H: w.grid.H}
}

// Cells exposes the current map as palette indices.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the current map. Callers must not modify it.
func (w *World) Grid() *core.Grid { return w.grid }

// Config returns the inputs the next generation will use.
func (w *World) Config() Config { return w.cfg }

// Categories returns the tile categories of the world.
func (w *World) Categories() TileCategorySet { return w.cfg.Categories }

// Palette exposes the color palette used for rendering the map.
func (w *World) Palette() []color.RGBA { return w.cfg.Categories.Palette() }

// Err returns the error of the last generation attempt, if any.
func (w *World) Err() error { return w.err }

// Summary describes the current map, or reports that none exists yet.
func (w *World) Summary() string {
	if w.grid == nil {
		return "no map"
	}
	return Summarize(w.grid, w.cfg.Categories.Len()).Format(w.cfg.Categories)
}

// Playing reports whether an animated run still has passes left.
func (w *World) Playing() bool { return w.run != nil }

// Reset regenerates the map with the provided seed. Errors are kept for Err.
func (w *World) Reset(seed int64) {
	w.cfg.Seed = seed
	w.Regenerate()
}

// Regenerate builds a new map from the current configuration. A zero width
// or height leaves the current map and any running animation untouched.
// When Animate is set only the initialized grid is produced and Step applies
// the passes. The returned error is also kept for Err.
func (w *World) Regenerate() error {
	w.err = w.regenerate()
	return w.err
}

func (w *World) regenerate() error {
	if err := w.cfg.Validate(); err != nil {
		return err
	}
	if w.cfg.Width == 0 || w.cfg.Height == 0 {
		return nil
	}
	w.stop()
	run, err := w.gen.Begin(w.cfg.Seed, w.cfg.Width, w.cfg.Height, w.cfg.Iterations)
	if err != nil || run == nil {
		return err
	}
	if w.cfg.Animate && !run.Done() {
		w.run = run
		w.setGrid(run.Grid())
		return nil
	}
	w.setGrid(run.Finish())
	return nil
}

// Step applies one pass of an animated run; it is a no-op otherwise.
func (w *World) Step() {
	if w.run == nil {
		return
	}
	w.run.Step()
	w.rebuildDisplay()
	if w.run.Done() {
		w.stop()
	}
}

func (w *World) stop() {
	if w.run == nil {
		return
	}
	w.run.Close()
	w.run = nil
}

func (w *World) setGrid(g *core.Grid) {
	w.grid = g
	if len(w.display) != len(g.Cells()) {
		w.display = make([]uint8, len(g.Cells()))
	}
	w.rebuildDisplay()
}

func (w *World) rebuildDisplay() {
	for i, v := range w.grid.Cells() {
		w.display[i] = uint8(v)
	}
}

// SetIntParameter updates a generation input. The change applies on the next
// Reset or Regenerate.
func (w *World) SetIntParameter(key string, value int) bool {
	for _, ctrl := range w.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		if ctrl.Clamp(value) != value {
			return false
		}
		switch key {
		case "seed":
			w.cfg.Seed = int64(value)
		case "w":
			w.cfg.Width = value
		case "h":
			w.cfg.Height = value
		case "iterations":
			w.cfg.Iterations = value
		}
		return true
	}
	return false
}

// ParameterControls lists the inputs the HUD can edit.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxDimension, HasMin: true, HasMax: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxDimension, HasMin: true, HasMax: true},
		{Key: "iterations", Label: "Iterations", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxIterations, HasMin: true, HasMax: true},
	}
}

func init() {
	core.Register("worldmap", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
