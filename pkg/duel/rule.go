package duel

// Rule maps a cell's state and its neighbor counts to its next state.
type Rule func(self CellState, colorA, colorB int) CellState

// Majority is the two-color life rule. Exactly three live neighbors give
// birth to (or recolor the cell with) the majority color, ties going to
// ColorA. Exactly two keep the cell as it is. Anything else empties it.
func Majority(self CellState, colorA, colorB int) CellState {
	switch colorA + colorB {
	case 3:
		if colorA >= colorB {
			return ColorA
		}
		return ColorB
	case 2:
		if self.Alive() {
			return self
		}
		return Empty
	default:
		return Empty
	}
}
