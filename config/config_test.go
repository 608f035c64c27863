package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestLoadDefaults verifies a missing file yields defaults
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def := Default()
	if cfg.Game != def.Game || cfg.Audio != def.Audio || cfg.Input != def.Input {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.Game.FPS != 60 {
		t.Errorf("Expected 60 FPS, got %d", cfg.Game.FPS)
	}
	if cfg.HoldInitial() != 500*time.Millisecond || cfg.HoldRepeat() != 120*time.Millisecond {
		t.Errorf("Unexpected hold windows %v/%v", cfg.HoldInitial(), cfg.HoldRepeat())
	}
	if cfg.Log.Debug {
		t.Error("Expected debug logging off by default")
	}
}

// TestLoadINI verifies ini sections map onto the config
func TestLoadINI(t *testing.T) {
	path := writeFile(t, t.TempDir(), "star-dodger.ini", `
[game]
fps = 30
perspective = true
background_dir = /opt/bg

[audio]
enabled = false
master_volume = 0.25
effect_volumes = {"point":0.1}

[input]
hold_initial_ms = 400

[score]
path = /tmp/hs.ini
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.FPS != 30 || !cfg.Game.Perspective || cfg.Game.BackgroundDir != "/opt/bg" {
		t.Errorf("Unexpected game section %+v", cfg.Game)
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.25 || cfg.Audio.EffectVolumes != `{"point":0.1}` {
		t.Errorf("Unexpected audio section %+v", cfg.Audio)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Unset key should keep default, got sample rate %d", cfg.Audio.SampleRate)
	}
	if cfg.Input.HoldInitialMS != 400 || cfg.Input.HoldRepeatMS != 120 {
		t.Errorf("Unexpected input section %+v", cfg.Input)
	}
	if cfg.Score.Path != "/tmp/hs.ini" {
		t.Errorf("Unexpected score path %q", cfg.Score.Path)
	}
	if cfg.FrameInterval() != time.Second/30 {
		t.Errorf("Expected 30 FPS interval, got %v", cfg.FrameInterval())
	}
}

// TestEnvOverridesINI verifies environment precedence
func TestEnvOverridesINI(t *testing.T) {
	path := writeFile(t, t.TempDir(), "star-dodger.ini", "[game]\nfps = 30\n")

	t.Setenv("STAR_DODGER_FPS", "50")
	t.Setenv("STAR_DODGER_MASTER_VOLUME", "80")
	t.Setenv("STAR_DODGER_AUDIO_ENABLED", "false")
	t.Setenv("STAR_DODGER_HOLD_REPEAT_MS", "90")
	t.Setenv("STAR_DODGER_DEBUG", "1")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.FPS != 50 {
		t.Errorf("Expected env FPS 50, got %d", cfg.Game.FPS)
	}
	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %v", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by env")
	}
	if cfg.HoldRepeat() != 90*time.Millisecond {
		t.Errorf("Expected 90ms repeat window, got %v", cfg.HoldRepeat())
	}
	if !cfg.Log.Debug {
		t.Error("Expected debug enabled by env")
	}
}

// TestMasterVolumeClamped verifies out-of-range percentages are clamped
func TestMasterVolumeClamped(t *testing.T) {
	t.Setenv("STAR_DODGER_MASTER_VOLUME", "250")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("Expected clamp to 1, got %v", cfg.Audio.MasterVolume)
	}
}

// TestDotEnvFile verifies .env values apply without overriding the process env
func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "STAR_DODGER_SEED=1234\nSTAR_DODGER_PERSPECTIVE=true\n")

	t.Setenv("STAR_DODGER_PERSPECTIVE", "false")
	// Registers cleanup for the variable godotenv sets
	t.Setenv("STAR_DODGER_SEED", "")
	os.Unsetenv("STAR_DODGER_SEED")

	cfg, err := Load("", envPath, filepath.Join(dir, "absent.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.Seed != 1234 {
		t.Errorf("Expected seed 1234 from .env, got %d", cfg.Game.Seed)
	}
	if cfg.Game.Perspective {
		t.Error("Process env must take precedence over .env")
	}
}

// TestInvalidValues verifies parse and validation errors are reported
func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non-numeric fps", "STAR_DODGER_FPS", "fast"},
		{"zero fps", "STAR_DODGER_FPS", "0"},
		{"bad bool", "STAR_DODGER_PERSPECTIVE", "sometimes"},
		{"negative hold", "STAR_DODGER_HOLD_INITIAL_MS", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			cfg, err := Load("")
			if err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.val)
			}
			if cfg == nil {
				t.Error("Expected partial config alongside the error")
			}
		})
	}
}

// TestMalformedINI verifies unreadable files surface an error
func TestMalformedINI(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.ini", "[game\nfps = 30\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed ini")
	}
}
