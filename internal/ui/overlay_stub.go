//go:build !ebiten

package ui

import "duel-ca/pkg/duel"

// ResultSource is the part of the engine the game-over banner reads.
type ResultSource interface {
	Ended() bool
	Winner() duel.Winner
	Generated() duel.Counters
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(ResultSource, int, int) *Overlay { return &Overlay{} }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
