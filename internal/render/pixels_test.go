package render

import (
	"image/color"
	"testing"

	"duel-ca/pkg/duel"
)

func TestFillPaletteRGBA(t *testing.T) {
	cells := []duel.CellState{duel.Empty, duel.ColorA, duel.ColorB}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, DuelPalette)

	for i, c := range cells {
		want := DuelPalette[c]
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != want {
			t.Fatalf("cell %d (%v) = %+v, expected %+v", i, c, got, want)
		}
	}
}

func TestFillPaletteRGBAClampsAndClears(t *testing.T) {
	cells := []duel.CellState{duel.ColorB}
	buf := make([]byte, 4)
	short := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}}
	fillPaletteRGBA(buf, cells, short)
	if buf[0] != 1 || buf[3] != 4 {
		t.Fatalf("expected out-of-palette value to use the last entry, got %v", buf)
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, expected cleared buffer", i, b)
		}
	}
}
