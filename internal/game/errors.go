package game

import "errors"

var (
	// ErrInvalidTransition is returned when a phase change is not in the
	// transition table. The machine stays where it is.
	ErrInvalidTransition = errors.New("invalid phase transition")
	// ErrInvalidSignal is returned for a signal the current phase ignores.
	ErrInvalidSignal = errors.New("signal not valid in current phase")
	// ErrMissingEncounter means a fight has no enemy. New rules this out, so
	// it is only ever a panic value.
	ErrMissingEncounter = errors.New("fighting without an encounter enemy")
)
