package app

import (
	"flag"
	"strconv"
	"strings"

	"worldgen/internal/sims/worldmap"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Seed       int64
	Width      int
	Height     int
	Iterations int
	Categories string

	Scale   int
	WindowW int
	WindowH int
	TPS     int
	PPS     int
	Animate bool
	Verbose bool
}

// NewConfig returns a Config populated with the generator defaults.
func NewConfig() *Config {
	def := worldmap.DefaultConfig()
	return &Config{
		Sim:        "worldmap",
		Seed:       def.Seed,
		Width:      def.Width,
		Height:     def.Height,
		Iterations: def.Iterations,
		Categories: strings.Join(def.Categories.Names(), ","),
		Scale:      16,
		WindowW:    1280,
		WindowH:    720,
		TPS:        60,
		PPS:        8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for map generation")
	fs.IntVar(&c.Width, "w", c.Width, "map width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "map height in tiles")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "relaxation passes")
	fs.StringVar(&c.Categories, "categories", c.Categories, "comma separated tile categories, ocean first")
	fs.IntVar(&c.Scale, "scale", c.Scale, "initial pixels per tile")
	fs.IntVar(&c.WindowW, "win-w", c.WindowW, "window width in pixels")
	fs.IntVar(&c.WindowH, "win-h", c.WindowH, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.PPS, "pps", c.PPS, "relaxation passes per second when animating")
	fs.BoolVar(&c.Animate, "animate", c.Animate, "play relaxation passes back one at a time")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log a summary of every generated map")
}

// SimConfig returns the flag-style map the simulation factory expects.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"seed":       strconv.FormatInt(c.Seed, 10),
		"w":          strconv.Itoa(c.Width),
		"h":          strconv.Itoa(c.Height),
		"iterations": strconv.Itoa(c.Iterations),
		"categories": c.Categories,
		"animate":    strconv.FormatBool(c.Animate),
	}
}
