package audio

import "github.com/lixenwraith/star-dodger/engine"

// SoundForEvent maps a game event to its sound effect
// Events without a sound return false
func SoundForEvent(t engine.EventType) (SoundType, bool) {
	switch t {
	case engine.EventPoint:
		return SoundPoint, true
	case engine.EventCollision:
		return SoundCollision, true
	case engine.EventVictory:
		return SoundVictory, true
	case engine.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}

// PlayEvents plays the sound of every event that has one
// A collision that ends the game plays only the game over sound
func (sm *SoundManager) PlayEvents(events []engine.Event) {
	gameOver := false
	for _, e := range events {
		if e.Type == engine.EventGameOver {
			gameOver = true
		}
	}
	for _, e := range events {
		if gameOver && e.Type == engine.EventCollision {
			continue
		}
		if st, ok := SoundForEvent(e.Type); ok {
			sm.Play(st)
		}
	}
}
