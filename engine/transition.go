package engine

import "github.com/lixenwraith/star-dodger/constants"

// Transition is a fixed-duration, frame-counted effect that freezes the simulation
// A nil Transition means no transition is active
// Variants: *CollisionTransition, *VictoryTransition
type Transition interface {
	// Tick advances the timer by one frame
	Tick()
	// Done reports whether the timer has reached the duration
	Done() bool
	// Elapsed returns the frames since activation
	Elapsed() int
	// Duration returns the fixed length in frames
	Duration() int
	// Alpha returns the overlay opacity for the current frame
	Alpha() float64

	transition()
}

// CollisionTransition fades a hit flash out over its duration, then respawns the player
type CollisionTransition struct {
	timer int
}

// NewCollisionTransition starts a collision transition at frame zero
func NewCollisionTransition() *CollisionTransition {
	return &CollisionTransition{}
}

func (c *CollisionTransition) Tick() { c.timer++ }
func (c *CollisionTransition) Done() bool { return c.timer >= c.Duration() }
func (c *CollisionTransition) Elapsed() int { return c.timer }
func (c *CollisionTransition) Duration() int { return constants.CollisionTransitionFrames }
func (c *CollisionTransition) transition() {}

// Alpha fades linearly from 1 to 0 over the duration
func (c *CollisionTransition) Alpha() float64 {
	a := 1 - float64(c.timer)/float64(c.Duration())
	if a < 0 {
		return 0
	}
	return a
}

// VictoryTransition shows the level complete text; the player is already respawned
type VictoryTransition struct {
	timer int

	// Level is the level that was just completed
	Level int
}

// NewVictoryTransition starts a victory transition for the completed level
func NewVictoryTransition(level int) *VictoryTransition {
	return &VictoryTransition{Level: level}
}

func (v *VictoryTransition) Tick() { v.timer++ }
func (v *VictoryTransition) Done() bool { return v.timer >= v.Duration() }
func (v *VictoryTransition) Elapsed() int { return v.timer }
func (v *VictoryTransition) Duration() int { return constants.VictoryTransitionFrames }
func (v *VictoryTransition) transition() {}

// Alpha eases the text in over the fade window and holds at 1
func (v *VictoryTransition) Alpha() float64 {
	a := float64(v.timer) / constants.VictoryTextFadeFrames
	if a > 1 {
		return 1
	}
	return a
}
