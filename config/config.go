// Package config loads runtime settings from an optional ini file,
// an optional .env file and STAR_DODGER_* environment variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"

	"github.com/lixenwraith/star-dodger/constants"
	"github.com/lixenwraith/star-dodger/engine"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "STAR_DODGER_"

// Config is the merged runtime configuration
type Config struct {
	Game  GameConfig  `ini:"game"`
	Audio AudioConfig `ini:"audio"`
	Input InputConfig `ini:"input"`
	Score ScoreConfig `ini:"score"`
	Log   LogConfig   `ini:"log"`
}

// GameConfig holds frame rate and presentation settings
type GameConfig struct {
	FPS           int    `ini:"fps"`
	Perspective   bool   `ini:"perspective"`
	BackgroundDir string `ini:"background_dir"`
	Seed          uint64 `ini:"seed"`
}

// AudioConfig holds sound settings; EffectVolumes is a JSON object
type AudioConfig struct {
	Enabled       bool    `ini:"enabled"`
	MasterVolume  float64 `ini:"master_volume"`
	SampleRate    int     `ini:"sample_rate"`
	EffectVolumes string  `ini:"effect_volumes"`
}

// InputConfig holds the terminal held-key emulation windows in milliseconds
type InputConfig struct {
	HoldInitialMS int `ini:"hold_initial_ms"`
	HoldRepeatMS  int `ini:"hold_repeat_ms"`
}

// ScoreConfig locates the high-score file; empty means the user config dir
type ScoreConfig struct {
	Path string `ini:"path"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `ini:"debug"`
	Dir   string `ini:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			FPS:           constants.DefaultFPS,
			BackgroundDir: constants.DefaultBackgroundDir,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
			SampleRate:   constants.DefaultSampleRate,
		},
		Input: InputConfig{
			HoldInitialMS: int(constants.HoldInitialWindow / time.Millisecond),
			HoldRepeatMS:  int(constants.HoldRepeatWindow / time.Millisecond),
		},
		Log: LogConfig{
			Dir: constants.LogDirName,
		},
	}
}

// Load builds the configuration from defaults, the ini file at path, the given
// .env files and the environment, in that order of increasing precedence
// An empty or missing path and missing .env files are not errors
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadINI(path); err != nil {
			return cfg, err
		}
	}

	if err := loadDotEnv(envFiles); err != nil {
		return cfg, err
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, constants.ConfigDirName, constants.DefaultConfigINI), nil
}

func (c *Config) loadINI(path string) error {
	f, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if err := f.MapTo(c); err != nil {
		return fmt.Errorf("map config %s: %w", path, err)
	}
	return nil
}

func loadDotEnv(files []string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	// godotenv never overrides variables already set in the process
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var errs []error

	envInt("FPS", &c.Game.FPS, &errs)
	envBool("PERSPECTIVE", &c.Game.Perspective, &errs)
	envString("BACKGROUND_DIR", &c.Game.BackgroundDir)
	envUint("SEED", &c.Game.Seed, &errs)

	envBool("AUDIO_ENABLED", &c.Audio.Enabled, &errs)
	// Master volume is given as 0-100
	if v := os.Getenv(EnvPrefix + "MASTER_VOLUME"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sMASTER_VOLUME: %w", EnvPrefix, err))
		} else {
			c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		}
	}
	envInt("SAMPLE_RATE", &c.Audio.SampleRate, &errs)
	envString("SFX_VOLUMES", &c.Audio.EffectVolumes)

	envInt("HOLD_INITIAL_MS", &c.Input.HoldInitialMS, &errs)
	envInt("HOLD_REPEAT_MS", &c.Input.HoldRepeatMS, &errs)

	envString("SCORE_PATH", &c.Score.Path)

	envBool("DEBUG", &c.Log.Debug, &errs)
	envString("LOG_DIR", &c.Log.Dir)

	return errors.Join(errs...)
}

// repair resets every field Validate rejects to its default
func (c *Config) repair() {
	d := Default()
	if c.Game.FPS <= 0 || c.Game.FPS > 240 {
		c.Game.FPS = d.Game.FPS
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = d.Audio.MasterVolume
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = d.Audio.SampleRate
	}
	if c.Input.HoldInitialMS <= 0 || c.Input.HoldRepeatMS <= 0 {
		c.Input.HoldInitialMS = d.Input.HoldInitialMS
		c.Input.HoldRepeatMS = d.Input.HoldRepeatMS
	}
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Game.FPS <= 0 || c.Game.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps must be in [1, 240], got %d", c.Game.FPS))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("master_volume must be in [0, 1], got %v", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Input.HoldInitialMS <= 0 || c.Input.HoldRepeatMS <= 0 {
		errs = append(errs, fmt.Errorf("hold windows must be positive, got %d/%d", c.Input.HoldInitialMS, c.Input.HoldRepeatMS))
	}
	return errors.Join(errs...)
}

// HoldInitial returns the initial held-key window
func (c *Config) HoldInitial() time.Duration {
	return time.Duration(c.Input.HoldInitialMS) * time.Millisecond
}

// HoldRepeat returns the repeat held-key window
func (c *Config) HoldRepeat() time.Duration {
	return time.Duration(c.Input.HoldRepeatMS) * time.Millisecond
}

// FrameInterval returns the scheduler interval for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	return engine.IntervalForFPS(c.Game.FPS)
}

func envString(name string, dst *string) {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		*dst = v
	}
}

func envInt(name string, dst *int, errs *[]error) {
	v := os.Getenv(EnvPrefix + name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
		return
	}
	*dst = n
}

func envUint(name string, dst *uint64, errs *[]error) {
	v := os.Getenv(EnvPrefix + name)
	if v == "" {
		return
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
		return
	}
	*dst = n
}

func envBool(name string, dst *bool, errs *[]error) {
	v := os.Getenv(EnvPrefix + name)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
		return
	}
	*dst = b
}
