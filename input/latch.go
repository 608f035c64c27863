package input

import "time"

// HoldLatch emulates a held key from a stream of press events
// Terminals report auto-repeat presses but never a release, so the key counts
// as held until no press arrives within the active window: the initial window
// covers the auto-repeat delay after the first press, the repeat window covers
// the gap between repeats
type HoldLatch struct {
	initial time.Duration
	repeat  time.Duration

	last      time.Time
	repeating bool
	active    bool
}

// NewHoldLatch creates a latch with the given windows
func NewHoldLatch(initial, repeat time.Duration) *HoldLatch {
	return &HoldLatch{initial: initial, repeat: repeat}
}

// Press records a key press at now
func (h *HoldLatch) Press(now time.Time) {
	h.repeating = h.Held(now)
	h.last = now
	h.active = true
}

// Held reports whether the key is considered down at now
func (h *HoldLatch) Held(now time.Time) bool {
	if !h.active {
		return false
	}
	window := h.initial
	if h.repeating {
		window = h.repeat
	}
	if now.Sub(h.last) > window {
		h.active = false
		h.repeating = false
		return false
	}
	return true
}

// Release forces the key up
func (h *HoldLatch) Release() {
	h.active = false
	h.repeating = false
}
