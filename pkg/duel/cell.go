package duel

// CellState is the content of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota
	ColorA
	ColorB
)

// Alive reports whether the cell is owned by either color.
func (s CellState) Alive() bool { return s == ColorA || s == ColorB }

// IsPlayer reports whether s names one of the two paintable colors.
func (s CellState) IsPlayer() bool { return s.Alive() }

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case ColorA:
		return "red"
	case ColorB:
		return "blue"
	default:
		return "invalid"
	}
}

// Winner is the outcome of a finished game.
type Winner uint8

const (
	WinnerNone Winner = iota
	WinnerColorA
	WinnerColorB
	WinnerDraw
)

func (w Winner) String() string {
	switch w {
	case WinnerColorA:
		return "red"
	case WinnerColorB:
		return "blue"
	case WinnerDraw:
		return "draw"
	default:
		return "none"
	}
}

// Counters holds per-color cell tallies.
type Counters struct {
	A int
	B int
}

// Of returns the tally for the provided color, or 0 for Empty.
func (c Counters) Of(color CellState) int {
	switch color {
	case ColorA:
		return c.A
	case ColorB:
		return c.B
	}
	return 0
}

// Add returns the element-wise sum of c and o.
func (c Counters) Add(o Counters) Counters {
	return Counters{A: c.A + o.A, B: c.B + o.B}
}
