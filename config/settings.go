package config

import (
	"fmt"

	"github.com/lixenwraith/star-dodger/audio"
	"github.com/lixenwraith/star-dodger/constants"
	"github.com/lixenwraith/star-dodger/score"
)

// AudioSettings converts the audio section into sound manager settings
// An invalid effect volume object is reported and the default volumes are kept
func (c *Config) AudioSettings() (*audio.AudioConfig, error) {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate

	if c.Audio.EffectVolumes == "" {
		return ac, nil
	}
	volumes, err := audio.ParseEffectVolumes(c.Audio.EffectVolumes)
	if err != nil {
		return ac, err
	}
	ac.ApplyEffectVolumes(volumes)
	return ac, nil
}

// ScoreFile returns the configured high-score path or the default under the user config dir
func (c *Config) ScoreFile() (string, error) {
	if c.Score.Path != "" {
		return c.Score.Path, nil
	}
	path, err := score.DefaultPath(constants.ConfigDirName, constants.ScoreFileName)
	if err != nil {
		return "", fmt.Errorf("score file: %w", err)
	}
	return path, nil
}
