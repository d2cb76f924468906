// Package bot seeds a duel board for one color by painting random clusters.
package bot

import (
	"duel-ca/pkg/core"
	"duel-ca/pkg/duel"
)

// Painter is the part of the engine a bot drives.
type Painter interface {
	Paint(x, y int, color duel.CellState) bool
	Remaining(color duel.CellState) int
	Size() core.Size
}

// Options tunes the cluster shape.
type Options struct {
	// Radius is the half-width of the square each cluster is painted in.
	Radius int
	// Density is the chance a cell inside the square is painted.
	Density float64
	// MaxClusters bounds the number of clusters Spend attempts.
	MaxClusters int
}

// DefaultOptions returns clusters dense enough to give birth on the first
// tick.
func DefaultOptions() Options {
	return Options{Radius: 2, Density: 0.45, MaxClusters: 256}
}

// Bot paints for one color.
type Bot struct {
	color duel.CellState
	rng   *core.RNG
	opts  Options
}

// New returns a bot painting color with a deterministic seed.
func New(color duel.CellState, seed int64, opts Options) *Bot {
	if opts.Radius < 0 {
		opts.Radius = 0
	}
	if opts.MaxClusters <= 0 {
		opts.MaxClusters = DefaultOptions().MaxClusters
	}
	return &Bot{color: color, rng: core.NewRNG(seed), opts: opts}
}

// Color returns the color the bot paints.
func (b *Bot) Color() duel.CellState { return b.color }

// Cluster paints one cluster around a random center and returns the number
// of accepted paints.
func (b *Bot) Cluster(p Painter) int {
	size := p.Size()
	if size.Area() == 0 {
		return 0
	}
	cx, cy := b.rng.IntN(size.W), b.rng.IntN(size.H)
	painted := 0
	r := b.opts.Radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if p.Remaining(b.color) == 0 {
				return painted
			}
			x, y := cx+dx, cy+dy
			if !size.Contains(x, y) || !b.rng.Chance(b.opts.Density) {
				continue
			}
			if p.Paint(x, y, b.color) {
				painted++
			}
		}
	}
	return painted
}

// Spend paints clusters until the color's budget is used up or the cluster
// limit is reached, returning the number of accepted paints.
func (b *Bot) Spend(p Painter) int {
	painted := 0
	for i := 0; i < b.opts.MaxClusters && p.Remaining(b.color) > 0; i++ {
		painted += b.Cluster(p)
	}
	return painted
}
