package config

import (
	"errors"
	"flag"
)

// Flags are the command-line overrides shared by both hosts, applied after Load
type Flags struct {
	ConfigPath    string
	Debug         bool
	FPS           int
	BackgroundDir string
	Mute          bool
	Perspective   bool
}

// RegisterFlags defines the game flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to the ini config file (default: user config dir)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.FPS, "fps", 0, "Frames per second (default 60)")
	fs.StringVar(&f.BackgroundDir, "bg", "", "Directory holding bg1.jpg .. bg15.jpg")
	fs.BoolVar(&f.Mute, "mute", false, "Disable sound effects")
	fs.BoolVar(&f.Perspective, "perspective", false, "Start the starfield in perspective mode")
	return f
}

// Apply overrides c with the flags that were set on fs
func (f *Flags) Apply(fs *flag.FlagSet, c *Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			c.Log.Debug = f.Debug
		case "fps":
			c.Game.FPS = f.FPS
		case "bg":
			c.Game.BackgroundDir = f.BackgroundDir
		case "mute":
			c.Audio.Enabled = !f.Mute
		case "perspective":
			c.Game.Perspective = f.Perspective
		}
	})
}

// LoadWithFlags resolves the config file, loads it with the .env file in the
// working directory and applies the flags
// On a load or validation error the defaults are used with the flags applied,
// and the error is returned for the host to report
func LoadWithFlags(fs *flag.FlagSet, f *Flags) (*Config, error) {
	path := f.ConfigPath
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	cfg, err := Load(path, ".env")
	if err != nil {
		cfg = Default()
	}
	f.Apply(fs, cfg)
	if verr := cfg.Validate(); verr != nil {
		cfg.repair()
		err = errors.Join(err, verr)
	}
	return cfg, err
}
