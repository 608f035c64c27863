package audio

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/star-dodger/constants"
)

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundPoint:     0.4,
			SoundCollision: 0.8,
			SoundVictory:   1.0,
			SoundGameOver:  0.9,
		},
	}
}

// ParseEffectVolumes decodes a JSON object of sound name to volume, e.g.
// {"point":0.2,"collision":1}
// Unknown names and values outside [0, 1] are rejected
func ParseEffectVolumes(raw string) (map[SoundType]float64, error) {
	var volumes map[string]float64
	if err := json.Unmarshal([]byte(raw), &volumes); err != nil {
		return nil, fmt.Errorf("parse effect volumes: %w", err)
	}

	out := make(map[SoundType]float64, len(volumes))
	for name, v := range volumes {
		st, ok := ParseSoundType(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown sound %q", ErrInvalidVolume, name)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("%w: %s=%v", ErrInvalidVolume, name, v)
		}
		out[st] = v
	}
	return out, nil
}

// ApplyEffectVolumes overlays volumes onto the config
func (c *AudioConfig) ApplyEffectVolumes(volumes map[SoundType]float64) {
	if c.EffectVolumes == nil {
		c.EffectVolumes = make(map[SoundType]float64, len(volumes))
	}
	for st, v := range volumes {
		c.EffectVolumes[st] = v
	}
}

// clampVolume bounds a volume to [0, 1]
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
