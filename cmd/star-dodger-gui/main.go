// Command star-dodger-gui runs the game in a window
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/star-dodger/audio"
	"github.com/lixenwraith/star-dodger/canvas"
	"github.com/lixenwraith/star-dodger/config"
	"github.com/lixenwraith/star-dodger/constants"
	"github.com/lixenwraith/star-dodger/engine"
	"github.com/lixenwraith/star-dodger/render"
	"github.com/lixenwraith/star-dodger/score"
	"github.com/lixenwraith/star-dodger/starfield"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.LoadWithFlags(flag.CommandLine, flags)
	if err != nil {
		color.New(color.FgYellow).Fprintf(os.Stderr, "config: %v (falling back to defaults)\n", err)
	}
	if !cfg.Log.Debug {
		log.SetOutput(io.Discard)
	}

	session := uuid.NewString()
	log.Printf("session %s starting: fps=%d perspective=%v audio=%v",
		session, cfg.Game.FPS, cfg.Game.Perspective, cfg.Audio.Enabled)

	ac, err := cfg.AudioSettings()
	if err != nil {
		log.Printf("audio config: %v", err)
	}
	sounds := audio.NewSoundManager(ac)
	if err := sounds.Initialize(); err != nil && !errors.Is(err, audio.ErrAudioDisabled) {
		log.Printf("audio unavailable, continuing without sound: %v", err)
	}
	defer sounds.Cleanup()

	store := score.Store(score.NewMemoryStore(0))
	if path, err := cfg.ScoreFile(); err == nil {
		store = score.NewIniStore(path)
	} else {
		log.Printf("high score not persisted: %v", err)
	}
	scores := score.NewManager(store)

	rng := engine.NewRand(cfg.Game.Seed)
	game := engine.NewGame(scores, rng)

	mode := starfield.ModeDrifting
	if cfg.Game.Perspective {
		mode = starfield.ModePerspective
	}
	stars := starfield.NewWithMode(constants.FieldWidth, constants.FieldHeight, mode, rng)

	adapter := canvas.New(game, stars, canvas.Options{
		Backgrounds: render.LoadBackgrounds(cfg.Game.BackgroundDir, constants.BackgroundFiles),
		OnEvents: func(events []engine.Event) {
			sounds.PlayEvents(events)
			for _, e := range events {
				if e.Type != engine.EventPoint {
					log.Printf("[%s] %s", session, e)
				}
			}
		},
		OnToggleMute: func() {
			log.Printf("audio muted=%v", sounds.ToggleMute())
		},
	})

	ebiten.SetWindowSize(int(constants.FieldWidth), int(constants.FieldHeight))
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Game.FPS)

	if err := ebiten.RunGame(adapter); err != nil && !errors.Is(err, ebiten.Termination) {
		color.New(color.FgRed).Fprintf(os.Stderr, "star-dodger-gui: %v\n", err)
		os.Exit(1)
	}

	color.New(color.FgCyan).Printf("Final score %d on level %d", game.Score(), game.Level())
	color.New(color.FgHiWhite).Printf("  (high score %d)\n", game.HighScore())
}
