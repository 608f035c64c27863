package config

import (
	"flag"
	"io"
	"path/filepath"
	"testing"
)

func parseFlags(t *testing.T, args ...string) (*flag.FlagSet, *Flags) {
	t.Helper()
	fs := flag.NewFlagSet("star-dodger", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return fs, f
}

func TestFlagsOverrideConfig(t *testing.T) {
	fs, f := parseFlags(t, "-debug", "-fps", "30", "-bg", "/srv/bg", "-mute", "-perspective", "-config", "x.ini")

	cfg := Default()
	f.Apply(fs, cfg)

	if !cfg.Log.Debug || cfg.Game.FPS != 30 || cfg.Game.BackgroundDir != "/srv/bg" {
		t.Errorf("Flags not applied: %+v", cfg)
	}
	if cfg.Audio.Enabled {
		t.Error("-mute should disable audio")
	}
	if !cfg.Game.Perspective {
		t.Error("-perspective should start in perspective mode")
	}
	if f.ConfigPath != "x.ini" {
		t.Errorf("Expected config path x.ini, got %q", f.ConfigPath)
	}
}

func TestUnsetFlagsKeepConfig(t *testing.T) {
	fs, f := parseFlags(t)

	cfg := Default()
	cfg.Game.FPS = 90
	cfg.Log.Debug = true
	cfg.Game.Perspective = true
	f.Apply(fs, cfg)

	if cfg.Game.FPS != 90 || !cfg.Log.Debug || !cfg.Game.Perspective || !cfg.Audio.Enabled {
		t.Errorf("Unset flags must not override config: %+v", cfg)
	}
}

func TestLoadWithFlagsFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.ini", "[game]\nfps = 0\n")
	fs, f := parseFlags(t, "-config", path, "-mute")

	cfg, err := LoadWithFlags(fs, f)
	if err == nil {
		t.Fatal("Expected validation error for fps = 0")
	}
	if cfg.Game.FPS != Default().Game.FPS {
		t.Errorf("Expected default FPS after a failed load, got %d", cfg.Game.FPS)
	}
	if cfg.Audio.Enabled {
		t.Error("Flags should still apply on top of the defaults")
	}
}

func TestLoadWithFlagsMissingFile(t *testing.T) {
	fs, f := parseFlags(t, "-config", filepath.Join(t.TempDir(), "none.ini"), "-fps", "50")

	cfg, err := LoadWithFlags(fs, f)
	if err != nil {
		t.Fatalf("Missing config should not be an error: %v", err)
	}
	if cfg.Game.FPS != 50 {
		t.Errorf("Expected -fps to apply, got %d", cfg.Game.FPS)
	}
}

// TestLoadWithFlagsRejectsBadFPS verifies out-of-range -fps values are reported and reset
func TestLoadWithFlagsRejectsBadFPS(t *testing.T) {
	tests := []struct {
		name string
		fps  string
	}{
		{"zero", "0"},
		{"negative", "-5"},
		{"too high", "100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, f := parseFlags(t, "-config", filepath.Join(t.TempDir(), "none.ini"), "-fps", tt.fps, "-mute")

			cfg, err := LoadWithFlags(fs, f)
			if err == nil {
				t.Fatalf("Expected validation error for -fps %s", tt.fps)
			}
			if cfg.Game.FPS != Default().Game.FPS {
				t.Errorf("Expected default FPS, got %d", cfg.Game.FPS)
			}
			if cfg.Audio.Enabled {
				t.Error("Valid flags should survive the reset")
			}
			if verr := cfg.Validate(); verr != nil {
				t.Errorf("Expected repaired config to validate: %v", verr)
			}
		})
	}
}
