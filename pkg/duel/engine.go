package duel

import (
	"fmt"

	"duel-ca/pkg/core"
)

// Engine owns one game session: the grid, both colors' counters and budgets,
// and the termination state.
type Engine struct {
	cfg Config

	grid   *Grid
	rule   Rule
	budget PaintBudget
	policy TerminationPolicy

	generated  Counters
	stall      StallTracker
	state      TerminationState
	generation int
}

// New returns an engine with an all-empty grid.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Cols, cfg.Rows)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		grid:   grid,
		rule:   Majority,
		budget: NewPaintBudget(cfg.MaxDrawn),
		policy: TerminationPolicy{GenerationLimit: cfg.GenerationLimit},
	}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Paint sets the cell at (x, y) to color. Painting an empty cell consumes
// one unit of the color's budget; painting over a live cell is free. It
// reports false, leaving the grid untouched, when the coordinates are out of
// range, color is not a player color, the budget is spent or the game is
// over.
func (e *Engine) Paint(x, y int, color CellState) bool {
	if e.state.Ended || !color.IsPlayer() || !e.grid.InBounds(x, y) {
		return false
	}
	if !e.budget.CanDraw(color) {
		return false
	}
	idx := e.grid.Index(x, y)
	if e.grid.cur[idx] == Empty {
		e.budget.Charge(color)
	}
	e.grid.cur[idx] = color
	return true
}

// Step advances the game by one generation. It is a no-op once the game is
// over.
func (e *Engine) Step() {
	if e.state.Ended {
		return
	}
	births := e.grid.Step(e.rule)
	e.generated = e.generated.Add(births)
	e.generation++

	e.state = e.policy.Evaluate(e.generated, e.stall.last, &e.budget)
	e.stall.Update(e.generated)
}

// Restart clears the grid and every counter, starting a fresh session.
func (e *Engine) Restart() {
	e.grid.Clear()
	e.budget.Reset()
	e.stall.Reset()
	e.generated = Counters{}
	e.state = TerminationState{}
	e.generation = 0
}

// CellStateAt returns the settled state of the cell at (x, y).
func (e *Engine) CellStateAt(x, y int) (CellState, error) {
	s, err := e.grid.Get(x, y)
	if err != nil {
		return Empty, fmt.Errorf("duel: %w", err)
	}
	return s, nil
}

// Cols returns the number of grid columns.
func (e *Engine) Cols() int { return e.grid.cols }

// Rows returns the number of grid rows.
func (e *Engine) Rows() int { return e.grid.rows }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Cells exposes the current grid buffer in row-major order. Callers must
// treat it as read-only.
func (e *Engine) Cells() []CellState { return e.grid.Cells() }

// Generated returns the number of cells each color has generated.
func (e *Engine) Generated() Counters { return e.generated }

// GeneratedA returns the number of cells born as ColorA.
func (e *Engine) GeneratedA() int { return e.generated.A }

// GeneratedB returns the number of cells born as ColorB.
func (e *Engine) GeneratedB() int { return e.generated.B }

// Drawn returns how many empty cells color has painted.
func (e *Engine) Drawn(color CellState) int { return e.budget.Drawn(color) }

// Remaining returns how many more empty cells color may paint.
func (e *Engine) Remaining(color CellState) int { return e.budget.Remaining(color) }

// MaxDrawn returns the per-color paint allowance.
func (e *Engine) MaxDrawn() int { return e.budget.Max() }

// Ended reports whether the game is over.
func (e *Engine) Ended() bool { return e.state.Ended }

// Winner returns the outcome, or WinnerNone while the game is running.
func (e *Engine) Winner() Winner { return e.state.Winner }

// Termination returns the full termination state.
func (e *Engine) Termination() TerminationState { return e.state }

// Generation returns the number of steps taken since the last restart.
func (e *Engine) Generation() int { return e.generation }
