//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"duel-ca/pkg/duel"
)

// ResultSource is the part of the engine the game-over banner reads.
type ResultSource interface {
	Ended() bool
	Winner() duel.Winner
	Generated() duel.Counters
}

// Overlay draws the game-over banner centered over the board.
type Overlay struct {
	src    ResultSource
	width  int
	height int
}

// NewOverlay constructs an overlay for a board of the given pixel size.
func NewOverlay(src ResultSource, width, height int) *Overlay {
	return &Overlay{src: src, width: width, height: height}
}

// Draw renders the banner once the game is over.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.src == nil || !o.src.Ended() {
		return
	}
	const boxW, boxH = 300, 120
	x := float32(o.width/2 - boxW/2)
	y := float32(o.height/2 - boxH/2)
	vector.DrawFilledRect(screen, x, y, boxW, boxH, color.RGBA{A: 190}, false)

	face := basicfont.Face7x13
	gen := o.src.Generated()
	lines := []struct {
		s   string
		dy  int
		col color.Color
	}{
		{headline(o.src.Winner()), 34, color.RGBA{R: 255, G: 230, B: 0, A: 255}},
		{"Press R to restart", 70, color.White},
		{fmt.Sprintf("Red: %d Blue: %d", gen.A, gen.B), 92, color.White},
	}
	for _, l := range lines {
		bounds := text.BoundString(face, l.s)
		tx := o.width/2 - bounds.Dx()/2
		text.Draw(screen, l.s, face, tx, int(y)+l.dy, l.col)
	}
}

func headline(w duel.Winner) string {
	switch w {
	case duel.WinnerColorA:
		return "RED WINS!"
	case duel.WinnerColorB:
		return "BLUE WINS!"
	default:
		return "DRAW!"
	}
}
