package duel

import "errors"

var (
	// ErrOutOfRange reports coordinates outside the grid.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidConfiguration reports dimensions or limits that cannot
	// describe a game.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
