package worldmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds applied by Validate so a single request cannot stall the host.
const (
	MaxDimension  = 4096
	MaxIterations = 10000
	MaxCategories = 256
)

// Config holds the generation inputs.
type Config struct {
	Seed       int64
	Width      int
	Height     int
	Iterations int

	Categories TileCategorySet

	// Animate plays relaxation passes back one Step at a time instead of
	// generating the finished map on Reset.
	Animate bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:       512,
		Width:      32,
		Height:     32,
		Iterations: 21,
		Categories: DefaultCategories(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse keep their defaults. Out-of-range numbers are
// kept so Validate can report them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Iterations = parsed
		}
	}
	if v, ok := cfg["categories"]; ok {
		if parsed, err := ParseCategories(v); err == nil {
			c.Categories = parsed
		}
	}
	if v, ok := cfg["animate"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Animate = parsed
		}
	}
	return c
}

// Validate rejects inputs the generator cannot or should not run.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("size %dx%d: %w", c.Width, c.Height, ErrInvalidArgument)
	}
	if c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("size %dx%d exceeds %d: %w", c.Width, c.Height, MaxDimension, ErrInvalidArgument)
	}
	if c.Iterations < 0 || c.Iterations > MaxIterations {
		return fmt.Errorf("iterations %d outside [0, %d]: %w", c.Iterations, MaxIterations, ErrInvalidArgument)
	}
	if c.Categories.Len() == 0 {
		return ErrNoCategories
	}
	if c.Categories.Len() > MaxCategories {
		return fmt.Errorf("%d categories exceeds %d: %w", c.Categories.Len(), MaxCategories, ErrInvalidArgument)
	}
	return nil
}

// ParseField converts the text of a numeric input field. Empty or
// unparsable text yields 0.
func ParseField(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return v
}
