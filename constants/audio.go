package constants

import "time"

// Audio Defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5

	// SpeakerBuffer is the beep speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Point Sound Timing
const (
	PointSoundDuration = 60 * time.Millisecond
	PointSoundAttack   = 2 * time.Millisecond
	PointSoundRelease  = 40 * time.Millisecond
)

// Collision Sound Timing
const (
	CollisionSoundDuration = 250 * time.Millisecond
	CollisionSoundAttack   = 5 * time.Millisecond
	CollisionSoundRelease  = 150 * time.Millisecond
)

// Victory Sound Timing
const (
	VictorySoundAttack        = 5 * time.Millisecond
	VictorySoundNote1Duration = 120 * time.Millisecond
	VictorySoundNote1Release  = 60 * time.Millisecond
	VictorySoundNote2Duration = 400 * time.Millisecond
	VictorySoundNote2Release  = 300 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundNoteDuration = 220 * time.Millisecond
	GameOverSoundAttack       = 10 * time.Millisecond
	GameOverSoundRelease      = 150 * time.Millisecond
)
