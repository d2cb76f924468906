package duel

// TerminationState records whether the game is over and who won.
type TerminationState struct {
	Ended  bool
	Winner Winner
}

// StallTracker remembers the generation counters as of the previous tick.
type StallTracker struct {
	last Counters
}

// Stalled reports whether no cell was born since the last update.
func (s *StallTracker) Stalled(current Counters) bool { return current == s.last }

// Update records current as the previous tick's counters.
func (s *StallTracker) Update(current Counters) { s.last = current }

// Reset forgets the recorded counters.
func (s *StallTracker) Reset() { s.last = Counters{} }

// TerminationPolicy decides when a game ends.
type TerminationPolicy struct {
	GenerationLimit int
}

// Evaluate returns the termination state for the counters of the tick that
// just completed. previous are the counters of the tick before it.
func (p TerminationPolicy) Evaluate(generated, previous Counters, budget *PaintBudget) TerminationState {
	reachedLimit := generated.A >= p.GenerationLimit || generated.B >= p.GenerationLimit
	noProgress := generated == previous
	if !reachedLimit && !(budget.Exhausted() && noProgress) {
		return TerminationState{}
	}
	return TerminationState{Ended: true, Winner: decideWinner(generated)}
}

func decideWinner(generated Counters) Winner {
	switch {
	case generated.A > generated.B:
		return WinnerColorA
	case generated.B > generated.A:
		return WinnerColorB
	default:
		return WinnerDraw
	}
}
