package canvas

import "github.com/lixenwraith/star-dodger/engine"

// confirmGate blocks a held Space from carrying into a menu
// After entering Title or GameOver the key must be released before it confirms again
type confirmGate struct {
	state   engine.State
	blocked bool
}

// filter returns the primary input for a frame where the key is pressed or not
func (g *confirmGate) filter(pressed bool) bool {
	if !pressed {
		g.blocked = false
	}
	return pressed && !g.blocked
}

// observe records the state after a step
func (g *confirmGate) observe(s engine.State) {
	if s == g.state {
		return
	}
	g.state = s
	if s != engine.StatePlaying {
		g.blocked = true
	}
}
