package worldmap

import "errors"

var (
	// ErrNoCategories reports a generation attempt with an empty tile category set.
	ErrNoCategories = errors.New("worldmap: no tile categories available")
	// ErrInvalidArgument reports negative dimensions or iteration counts.
	ErrInvalidArgument = errors.New("worldmap: invalid argument")
	// ErrBusy reports a generation request that overlaps one already running
	// on the same Generator.
	ErrBusy = errors.New("worldmap: generation already in progress")
)
