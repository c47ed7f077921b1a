//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"worldgen/internal/core"
	"worldgen/internal/render"
	"worldgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type regenerator interface {
	Regenerate() error
	Err() error
}

type player interface {
	Playing() bool
}

type summarizer interface {
	Summary() string
}

// Game adapts a map simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	camera  *ui.Camera
	pacer   *core.FixedStep

	viewW, viewH int
	paused       bool
	tickOnce     bool
	dirty        bool
	verbose      bool
	lastSize     core.Size
}

// New constructs a Game for the provided simulation. The simulation should
// already have been Reset once.
func New(sim core.Sim, cfg *Config) *Game {
	g := &Game{
		sim:     sim,
		overlay: ui.NewOverlay(),
		camera:  ui.NewCamera(float64(cfg.Scale)),
		pacer:   core.NewFixedStep(cfg.PPS),
		viewW:   cfg.WindowW,
		viewH:   cfg.WindowH,
		verbose: cfg.Verbose,
	}
	size := sim.Size()
	g.painter = render.NewGridPainter(size.W, size.H)
	g.hud = ui.NewHUD(sim, hudWidth, g.viewW, g.Regenerate)
	g.afterGeneration(g.lastErr())
	return g
}

// Regenerate builds a new map from the simulation's current parameters.
func (g *Game) Regenerate() {
	r, ok := g.sim.(regenerator)
	if !ok {
		return
	}
	g.afterGeneration(r.Regenerate())
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.afterGeneration(g.lastErr())
}

func (g *Game) lastErr() error {
	if r, ok := g.sim.(regenerator); ok {
		return r.Err()
	}
	return nil
}

func (g *Game) afterGeneration(err error) {
	g.overlay.SetError(err)
	if err != nil {
		log.Printf("generation failed: %v", err)
		return
	}
	g.tickOnce = false
	g.pacer.Restart()
	g.dirty = true
	if size := g.sim.Size(); size != g.lastSize {
		g.camera.Fit(size.W, size.H, float64(g.viewW-hudWidth), float64(g.viewH))
		g.lastSize = size
	}
	g.refreshInfo()
}

func (g *Game) refreshInfo() {
	s, ok := g.sim.(summarizer)
	if !ok {
		return
	}
	summary := s.Summary()
	g.overlay.SetInfo(summary)
	if g.verbose && !g.playing() {
		log.Printf("generated %s", summary)
	}
}

func (g *Game) playing() bool {
	p, ok := g.sim.(player)
	return ok && p.Playing()
}

// Update handles per-frame logic and advances any animated generation.
func (g *Game) Update() error {
	dt := float32(1) / float32(ebiten.TPS())
	if !g.hud.Editing() {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.paused = !g.paused
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.tickOnce = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.Regenerate()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.Reset(time.Now().UnixNano())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF) {
			size := g.sim.Size()
			g.camera.Fit(size.W, size.H, float64(g.viewW-hudWidth), float64(g.viewH))
		}
	}

	consumed := g.hud.Update(dt)
	g.overlay.Update()

	mx, my := ebiten.CursorPosition()
	if !consumed && !g.hud.Contains(mx, my) {
		g.camera.Drag(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
		_, wheel := ebiten.Wheel()
		g.camera.Scroll(wheel)
	} else {
		g.camera.Drag(0, 0, false)
	}

	if g.playing() && (!g.paused || g.tickOnce) && (g.tickOnce || g.pacer.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
		g.dirty = true
		if !g.playing() {
			g.refreshInfo()
		}
	}

	if g.dirty {
		g.upload()
	}
	return nil
}

func (g *Game) upload() {
	var palette []color.RGBA
	if p, ok := g.sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	size := g.sim.Size()
	g.painter.Replace(g.sim.Cells(), size.W, size.H, palette)
	g.dirty = false
}

// Draw renders the current map, the overlay and the menu.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 12, B: 18, A: 255})
	size := g.sim.Size()
	ox, oy := g.camera.MapOrigin(size.W, size.H, float64(g.viewW-hudWidth), float64(g.viewH))
	var geo ebiten.GeoM
	geo.Scale(g.camera.Zoom, g.camera.Zoom)
	geo.Translate(ox, oy)
	g.painter.Draw(screen, geo)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW, g.viewH
}

const hudWidth = 240
