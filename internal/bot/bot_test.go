package bot

import (
	"slices"
	"testing"

	"duel-ca/pkg/duel"
)

func newEngine(t *testing.T, cols, rows, budget int) *duel.Engine {
	t.Helper()
	cfg := duel.DefaultConfig()
	cfg.Cols, cfg.Rows, cfg.MaxDrawn = cols, rows, budget
	e, err := duel.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSpendUsesWholeBudget(t *testing.T) {
	e := newEngine(t, 60, 40, 50)
	red := New(duel.ColorA, 1, DefaultOptions())
	blue := New(duel.ColorB, 2, DefaultOptions())

	red.Spend(e)
	blue.Spend(e)

	if e.Remaining(duel.ColorA) != 0 || e.Remaining(duel.ColorB) != 0 {
		t.Fatalf("remaining red %d blue %d, expected both spent", e.Remaining(duel.ColorA), e.Remaining(duel.ColorB))
	}
	if e.Drawn(duel.ColorA) != 50 || e.Drawn(duel.ColorB) != 50 {
		t.Fatal("bot painted beyond the budget")
	}
	if e.Generated() != (duel.Counters{}) {
		t.Fatal("painting must not count as generation")
	}
}

func TestSpendStopsOnTinyBoard(t *testing.T) {
	e := newEngine(t, 2, 2, 50)
	opts := DefaultOptions()
	opts.MaxClusters = 8
	New(duel.ColorA, 3, opts).Spend(e)
	if e.Drawn(duel.ColorA) > 4 {
		t.Fatalf("drawn %d on a four-cell board", e.Drawn(duel.ColorA))
	}
}

func TestBotDeterministic(t *testing.T) {
	a := newEngine(t, 30, 30, 40)
	b := newEngine(t, 30, 30, 40)
	New(duel.ColorB, 99, DefaultOptions()).Spend(a)
	New(duel.ColorB, 99, DefaultOptions()).Spend(b)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed painted different boards")
	}
}
