package duel

import "testing"

func TestEvaluateGenerationLimit(t *testing.T) {
	policy := TerminationPolicy{GenerationLimit: 1000}
	budget := NewPaintBudget(100)

	got := policy.Evaluate(Counters{A: 1000, B: 400}, Counters{A: 990, B: 399}, &budget)
	if !got.Ended || got.Winner != WinnerColorA {
		t.Fatalf("state = %+v, expected red win", got)
	}

	got = policy.Evaluate(Counters{A: 12, B: 1003}, Counters{A: 12, B: 999}, &budget)
	if !got.Ended || got.Winner != WinnerColorB {
		t.Fatalf("state = %+v, expected blue win", got)
	}

	got = policy.Evaluate(Counters{A: 1000, B: 1000}, Counters{A: 998, B: 998}, &budget)
	if !got.Ended || got.Winner != WinnerDraw {
		t.Fatalf("state = %+v, expected draw", got)
	}

	got = policy.Evaluate(Counters{A: 999, B: 999}, Counters{A: 990, B: 990}, &budget)
	if got.Ended || got.Winner != WinnerNone {
		t.Fatalf("state = %+v, expected running", got)
	}
}

func TestEvaluateStallRequiresBothBudgets(t *testing.T) {
	policy := TerminationPolicy{GenerationLimit: 1000}
	budget := NewPaintBudget(2)
	stalled := Counters{A: 5, B: 3}

	budget.Charge(ColorA)
	budget.Charge(ColorA)
	if got := policy.Evaluate(stalled, stalled, &budget); got.Ended {
		t.Fatal("blue still has paint, game must continue")
	}

	budget.Charge(ColorB)
	budget.Charge(ColorB)
	if got := policy.Evaluate(Counters{A: 6, B: 3}, stalled, &budget); got.Ended {
		t.Fatal("a birth happened this tick, game must continue")
	}

	got := policy.Evaluate(stalled, stalled, &budget)
	if !got.Ended || got.Winner != WinnerColorA {
		t.Fatalf("state = %+v, expected red win on stall", got)
	}
}

func TestStallTracker(t *testing.T) {
	var s StallTracker
	if !s.Stalled(Counters{}) {
		t.Fatal("zero counters should match a fresh tracker")
	}
	s.Update(Counters{A: 3})
	if s.Stalled(Counters{A: 4}) {
		t.Fatal("new births are progress")
	}
	if !s.Stalled(Counters{A: 3}) {
		t.Fatal("unchanged counters are a stall")
	}
	s.Reset()
	if s.Stalled(Counters{A: 3}) {
		t.Fatal("reset tracker should forget previous counters")
	}
}

func TestPaintBudget(t *testing.T) {
	b := NewPaintBudget(2)
	if !b.CanDraw(ColorA) || b.CanDraw(Empty) {
		t.Fatal("unexpected CanDraw result")
	}
	b.Charge(ColorA)
	b.Charge(ColorA)
	b.Charge(ColorA)
	if b.Drawn(ColorA) != 2 || b.Remaining(ColorA) != 0 {
		t.Fatalf("drawn = %d remaining = %d, expected charge to cap at max", b.Drawn(ColorA), b.Remaining(ColorA))
	}
	if b.Exhausted() {
		t.Fatal("blue has allowance left")
	}
	b.Charge(ColorB)
	b.Charge(ColorB)
	if !b.Exhausted() {
		t.Fatal("both colors spent, expected exhausted")
	}
	b.Reset()
	if b.Drawn(ColorA) != 0 || b.Drawn(ColorB) != 0 || b.Max() != 2 {
		t.Fatal("reset should clear drawn counts and keep max")
	}
}
