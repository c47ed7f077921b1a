//go:build !ebiten

package ui

import "worldgen/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int, int, func()) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(float32) bool { return false }

// Editing always reports false in the headless build.
func (h *HUD) Editing() bool { return false }

// Contains always reports false in the headless build.
func (h *HUD) Contains(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
