package worldmap

import "sync"

// SurveyResult is the outcome of generating one seed during a survey.
type SurveyResult struct {
	Seed    int64
	Summary Summary
	Err     error
}

// Survey generates one map per seed using cfg for everything else and
// summarizes each. Up to workers maps are generated at once, each by its own
// Generator. Results are returned in the order of seeds.
func Survey(cfg Config, seeds []int64, workers int) ([]SurveyResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]SurveyResult, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s int64) {
			defer wg.Done()
			defer func() { <-sem }()
			gen := NewGenerator(cfg.Categories)
			grid, err := gen.Generate(s, cfg.Width, cfg.Height, cfg.Iterations)
			res := SurveyResult{Seed: s, Err: err}
			if err == nil && grid != nil {
				res.Summary = Summarize(grid, cfg.Categories.Len())
			}
			results[i] = res
		}(idx, seed)
	}

	wg.Wait()
	return results, nil
}

// Seeds returns count consecutive seeds starting at first.
func Seeds(first int64, count int) []int64 {
	if count <= 0 {
		return nil
	}
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = first + int64(i)
	}
	return seeds
}
