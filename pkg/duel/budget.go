package duel

// PaintBudget tracks how many empty cells each color has painted.
type PaintBudget struct {
	max   int
	drawn Counters
}

// NewPaintBudget returns a budget allowing max paints per color.
func NewPaintBudget(max int) PaintBudget {
	return PaintBudget{max: max}
}

// Max returns the per-color allowance.
func (b *PaintBudget) Max() int { return b.max }

// Drawn returns how many cells the color has been charged for.
func (b *PaintBudget) Drawn(color CellState) int { return b.drawn.Of(color) }

// Remaining returns how many more empty cells the color may paint.
func (b *PaintBudget) Remaining(color CellState) int {
	if !color.IsPlayer() {
		return 0
	}
	return b.max - b.drawn.Of(color)
}

// CanDraw reports whether the color still has allowance left.
func (b *PaintBudget) CanDraw(color CellState) bool {
	return color.IsPlayer() && b.drawn.Of(color) < b.max
}

// Charge consumes one unit of the color's allowance. It is a no-op once the
// allowance is spent.
func (b *PaintBudget) Charge(color CellState) {
	if !b.CanDraw(color) {
		return
	}
	switch color {
	case ColorA:
		b.drawn.A++
	case ColorB:
		b.drawn.B++
	}
}

// Exhausted reports whether both colors have spent their allowance.
func (b *PaintBudget) Exhausted() bool {
	return b.drawn.A >= b.max && b.drawn.B >= b.max
}

// Reset restores the full allowance for both colors.
func (b *PaintBudget) Reset() { b.drawn = Counters{} }
