package app

import (
	"flag"
	"testing"

	"worldgen/internal/sims/worldmap"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("worldgen", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-seed", "7", "-w", "48", "-h", "20", "-iterations", "3", "-categories", "ocean,sand", "-animate", "-pps", "4"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != 7 || cfg.Width != 48 || cfg.Height != 20 || cfg.Iterations != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !cfg.Animate || cfg.PPS != 4 {
		t.Fatalf("animation flags not applied: %+v", cfg)
	}
}

func TestConfigSimConfigRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = -3
	cfg.Width = 0
	cfg.Categories = "ocean,forest"
	cfg.Animate = true

	wc := worldmap.FromMap(cfg.SimConfig())
	if wc.Seed != -3 || wc.Width != 0 || wc.Height != cfg.Height || wc.Iterations != cfg.Iterations {
		t.Fatalf("unexpected world config %+v", wc)
	}
	if wc.Categories.Len() != 2 || !wc.Animate {
		t.Fatalf("categories/animate not carried over: %+v", wc)
	}
}

func TestNewConfigMatchesGeneratorDefaults(t *testing.T) {
	cfg := NewConfig()
	def := worldmap.DefaultConfig()
	wc := worldmap.FromMap(cfg.SimConfig())
	if wc.Seed != def.Seed || wc.Width != def.Width || wc.Height != def.Height || wc.Iterations != def.Iterations {
		t.Fatalf("defaults diverge: %+v vs %+v", wc, def)
	}
	if wc.Categories.Len() != def.Categories.Len() {
		t.Fatalf("default categories diverge")
	}
}
