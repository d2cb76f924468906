package duel

import "fmt"

// Config controls the grid dimensions and game limits.
type Config struct {
	Cols int
	Rows int

	// MaxDrawn is the number of empty cells each color may paint.
	MaxDrawn int
	// GenerationLimit ends the game once either color has generated this
	// many cells.
	GenerationLimit int
}

// MaxArea bounds the number of cells a grid may hold.
const MaxArea = 1 << 22

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Cols:            80,
		Rows:            60,
		MaxDrawn:        100,
		GenerationLimit: 1000,
	}
}

// Validate rejects configurations that cannot describe a game.
func (c Config) Validate() error {
	if c.Cols <= 0 {
		return fmt.Errorf("cols %d: %w", c.Cols, ErrInvalidConfiguration)
	}
	if c.Rows <= 0 {
		return fmt.Errorf("rows %d: %w", c.Rows, ErrInvalidConfiguration)
	}
	if c.Cols > MaxArea/c.Rows {
		return fmt.Errorf("grid %dx%d exceeds %d cells: %w", c.Cols, c.Rows, MaxArea, ErrInvalidConfiguration)
	}
	if c.MaxDrawn <= 0 {
		return fmt.Errorf("max drawn %d: %w", c.MaxDrawn, ErrInvalidConfiguration)
	}
	if c.GenerationLimit <= 0 {
		return fmt.Errorf("generation limit %d: %w", c.GenerationLimit, ErrInvalidConfiguration)
	}
	return nil
}
