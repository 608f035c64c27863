package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPoint     SoundType = iota // Obstacle passed
	SoundCollision                  // Life lost
	SoundVictory                    // Exit door reached
	SoundGameOver                   // Last life lost
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundPoint:     "point",
	SoundCollision: "collision",
	SoundVictory:   "victory",
	SoundGameOver:  "gameover",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a sound name as used in effect volume settings
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrInvalidVolume = errors.New("invalid effect volume")
)
