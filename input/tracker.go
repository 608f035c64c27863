package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-dodger/engine"
)

// Tracker turns terminal events into per-frame engine input
// Owned by the frame goroutine
type Tracker struct {
	keys    *KeyTable
	primary *HoldLatch
	state   engine.State

	toggles int
	quit    bool
	mute    int
	resized bool
}

// NewTracker creates a tracker with the default key table
func NewTracker(holdInitial, holdRepeat time.Duration) *Tracker {
	return &Tracker{
		keys:    DefaultKeyTable(),
		primary: NewHoldLatch(holdInitial, holdRepeat),
	}
}

// Process records one terminal event received at now and returns its intent
func (t *Tracker) Process(ev tcell.Event, now time.Time) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.resized = true
		return IntentResize
	case *tcell.EventKey:
		intent := t.keys.Lookup(ev)
		t.apply(intent, now)
		return intent
	}
	return IntentNone
}

func (t *Tracker) apply(intent IntentType, now time.Time) {
	switch intent {
	case IntentPrimary:
		t.primary.Press(now)
	case IntentToggleStarfield:
		t.toggles++
	case IntentToggleMute:
		t.mute++
	case IntentQuit:
		t.quit = true
	}
}

// Snapshot returns the input for the frame at now and consumes edge-triggered state
// Each toggle press yields one frame with ToggleStarfield set
func (t *Tracker) Snapshot(now time.Time) engine.Input {
	in := engine.Input{Primary: t.primary.Held(now)}
	if t.toggles > 0 {
		in.ToggleStarfield = true
		t.toggles--
	}
	return in
}

// ObserveState records the game state after a step
// A state change releases the primary latch so a confirm needs a fresh press
func (t *Tracker) ObserveState(s engine.State) {
	if s != t.state {
		t.primary.Release()
		t.state = s
	}
}

// QuitRequested reports whether a quit key was seen
func (t *Tracker) QuitRequested() bool { return t.quit }

// TakeMuteToggles returns and clears the number of pending mute toggles
func (t *Tracker) TakeMuteToggles() int {
	n := t.mute
	t.mute = 0
	return n
}

// TakeResize returns and clears the pending resize flag
func (t *Tracker) TakeResize() bool {
	r := t.resized
	t.resized = false
	return r
}
