package core

import (
	"fmt"
	"sort"
	"strings"
)

// Size is the width and height of a map in tiles.
type Size struct {
	W int
	H int
}

// Sim is what the front end drives: something that produces a grid of
// palette indices, can be rebuilt from a seed and may advance in steps.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory builds a Sim from flag-style key/value options. A nil map selects
// the defaults.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register makes a factory available under name. Empty names and nil
// factories are ignored.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registered factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered factories in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name, or an error listing the
// names that are available.
func Lookup(name string) (Factory, error) {
	if f, ok := sims[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown sim %q (available: %s)", name, strings.Join(Names(), ", "))
}
