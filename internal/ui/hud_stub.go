//go:build !ebiten

package ui

import "duel-ca/pkg/core"

// SnapshotProvider exposes the values the HUD lists.
type SnapshotProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int, int, core.IntParameterSetter, []core.ParameterControl, ...SnapshotProvider) *HUD {
	return nil
}

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Contains is always false in the headless build.
func (h *HUD) Contains(int, int) bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
