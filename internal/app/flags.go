package app

import (
	"fmt"

	"github.com/integrii/flaggy"

	"duel-ca/internal/core"
	"duel-ca/pkg/duel"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Duel    duel.Config
	Scale   int
	Speed   int
	LogFile string
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Duel: duel.DefaultConfig(), Scale: 10, Speed: core.DefaultRate}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Duel.Cols, "c", "cols", "Grid columns")
	p.Int(&c.Duel.Rows, "r", "rows", "Grid rows")
	p.Int(&c.Duel.MaxDrawn, "b", "budget", "Cells each color may paint")
	p.Int(&c.Duel.GenerationLimit, "l", "limit", "Generated cells needed to win outright")
	p.Int(&c.Scale, "s", "scale", "Pixels per cell")
	p.Int(&c.Speed, "t", "speed", "Steps per second (1-10)")
	p.String(&c.LogFile, "", "log", "Write logs to this file")
	p.Bool(&c.Verbose, "", "verbose", "Enable debug logging")
}

// Validate checks the host settings and the game configuration.
func (c *Config) Validate() error {
	if err := c.Duel.Validate(); err != nil {
		return err
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d: %w", c.Scale, duel.ErrInvalidConfiguration)
	}
	if c.Speed < core.MinRate || c.Speed > core.MaxRate {
		return fmt.Errorf("speed %d outside %d-%d: %w", c.Speed, core.MinRate, core.MaxRate, duel.ErrInvalidConfiguration)
	}
	return nil
}
