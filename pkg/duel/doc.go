// Package duel implements a two-color variant of Conway's Game of Life.
//
// Two players seed a fixed, non-wrapping grid by painting cells of their
// color under a per-color budget. Each Step applies the majority rule to
// every cell synchronously and credits cells born from empty space to the
// color they were born as. The first color to reach the generation limit
// wins, or, once both budgets are spent and a tick passes without births,
// the color with more generated cells wins.
//
// An Engine is not safe for concurrent use; hosts serialize Paint and Step
// on a single goroutine.
package duel
