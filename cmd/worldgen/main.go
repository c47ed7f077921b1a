//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"worldgen/internal/app"
	"worldgen/internal/core"
	_ "worldgen/internal/sims/worldmap"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("worldgen - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
