package engine

// Input is the per-frame snapshot of the logical controls
// Frontends build one every frame from their own key state and pass it into Game.Step
type Input struct {
	// Primary is true while the primary action is held (ascend, confirm at menus)
	Primary bool

	// ToggleStarfield is true on the frame the starfield mode toggle was pressed
	ToggleStarfield bool
}
