package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"worldgen/internal/app"
	"worldgen/internal/render"
	"worldgen/internal/sims/worldmap"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	survey := flag.Int("survey", 0, "summarize this many consecutive seeds instead of printing one map")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel generations during a survey")
	quiet := flag.Bool("q", false, "omit the summary after the map")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	values := cfg.SimConfig()
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("override %q is not key=value", kv)
		}
		values[parts[0]] = parts[1]
	}
	wc := worldmap.FromMap(values)
	if err := wc.Validate(); err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	if *survey > 0 {
		runSurvey(wc, *survey, *workers)
		return
	}

	gen := worldmap.NewGenerator(wc.Categories)
	grid, err := gen.Generate(wc.Seed, wc.Width, wc.Height, wc.Iterations)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	if grid == nil {
		fmt.Fprintln(os.Stderr, "zero-sized map requested; nothing generated")
		return
	}

	fmt.Print(render.Text(grid, wc.Categories.Glyph))
	if !*quiet {
		fmt.Println()
		fmt.Printf("seed %d, %d iterations\n", wc.Seed, wc.Iterations)
		fmt.Println(worldmap.Summarize(grid, wc.Categories.Len()).Format(wc.Categories))
	}
}

func runSurvey(cfg worldmap.Config, count, workers int) {
	results, err := worldmap.Survey(cfg, worldmap.Seeds(cfg.Seed, count), workers)
	if err != nil {
		log.Fatalf("survey: %v", err)
	}

	best := -1
	for i, res := range results {
		if res.Err != nil {
			fmt.Printf("seed %d: %v\n", res.Seed, res.Err)
			continue
		}
		s := res.Summary
		largest := 0
		if len(s.Islands) > 0 {
			largest = s.Islands[0]
		}
		fmt.Printf("seed %d: land %d, islands %d, largest %d\n", res.Seed, s.LandCells(), len(s.Islands), largest)
		if best < 0 || s.LandCells() > results[best].Summary.LandCells() {
			best = i
		}
	}
	if best >= 0 {
		fmt.Printf("\nMost land: seed %d (%d cells)\n", results[best].Seed, results[best].Summary.LandCells())
	}
}
