// Command star-dodger runs the game in the terminal
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/lixenwraith/star-dodger/audio"
	"github.com/lixenwraith/star-dodger/config"
	"github.com/lixenwraith/star-dodger/constants"
	"github.com/lixenwraith/star-dodger/core"
	"github.com/lixenwraith/star-dodger/engine"
	"github.com/lixenwraith/star-dodger/input"
	"github.com/lixenwraith/star-dodger/render"
	"github.com/lixenwraith/star-dodger/score"
	"github.com/lixenwraith/star-dodger/starfield"
)

// summary is printed after the terminal is restored
type summary struct {
	session   string
	score     int
	level     int
	highScore int
	frames    uint64
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.New(color.FgRed).Fprintln(os.Stderr, "star-dodger needs an interactive terminal")
		os.Exit(1)
	}

	cfg, cfgErr := config.LoadWithFlags(flag.CommandLine, flags)

	if cfg.Log.Dir != "" {
		logDir = cfg.Log.Dir
	}
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}
	if cfgErr != nil {
		color.New(color.FgYellow).Fprintf(os.Stderr, "config: %v (using defaults)\n", cfgErr)
		log.Printf("config: %v", cfgErr)
	}

	s, err := run(cfg)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "star-dodger: %v\n", err)
		os.Exit(1)
	}

	color.New(color.FgCyan).Printf("Final score %d on level %d", s.score, s.level)
	color.New(color.FgHiWhite).Printf("  (high score %d)\n", s.highScore)
	log.Printf("session %s ended after %d frames", s.session, s.frames)
}

func run(cfg *config.Config) (summary, error) {
	s := summary{session: uuid.NewString()}
	log.Printf("session %s starting: fps=%d perspective=%v audio=%v",
		s.session, cfg.Game.FPS, cfg.Game.Perspective, cfg.Audio.Enabled)

	screen, err := tcell.NewScreen()
	if err != nil {
		return s, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return s, fmt.Errorf("init screen: %w", err)
	}
	core.RegisterTerminal(screen)
	defer func() {
		core.RegisterTerminal(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	sounds := newSounds(cfg)
	defer sounds.Cleanup()

	scores := newScores(cfg)
	rng := engine.NewRand(cfg.Game.Seed)
	game := engine.NewGame(scores, rng)

	backgrounds := render.LoadBackgrounds(cfg.Game.BackgroundDir, constants.BackgroundFiles)
	renderer := render.NewTerminalRenderer(screen, game.Geometry(), backgrounds)

	mode := starfield.ModeDrifting
	if cfg.Game.Perspective {
		mode = starfield.ModePerspective
	}
	w, h := renderer.Viewport().StarfieldSize()
	stars := starfield.NewWithMode(w, h, mode, rng)

	tracker := input.NewTracker(cfg.HoldInitial(), cfg.HoldRepeat())

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scheduler := engine.NewClockScheduler(engine.NewMonotonicTimeProvider(), cfg.FrameInterval())

	frame := func(now time.Time) bool {
	drain:
		for {
			select {
			case ev := <-eventChan:
				tracker.Process(ev, now)
			default:
				break drain
			}
		}

		if tracker.QuitRequested() {
			return false
		}
		if tracker.TakeResize() {
			screen.Sync()
			cols, rows := screen.Size()
			renderer.Resize(cols, rows)
			stars.Resize(renderer.Viewport().StarfieldSize())
			log.Printf("resize: %dx%d", cols, rows)
		}
		for range tracker.TakeMuteToggles() {
			log.Printf("audio muted=%v", sounds.ToggleMute())
		}

		in := tracker.Snapshot(now)
		if in.ToggleStarfield {
			stars.Toggle()
			log.Printf("starfield mode=%s", stars.Mode())
		}
		stars.Update()
		game.Step(in)
		tracker.ObserveState(game.State())

		if events := game.ConsumeEvents(); len(events) > 0 {
			sounds.PlayEvents(events)
			logEvents(s.session, events)
		}

		renderer.RenderFrame(game, stars)
		return true
	}

	err = scheduler.Run(ctx, frame)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	s.score = game.Score()
	s.level = game.Level()
	s.highScore = game.HighScore()
	s.frames = scheduler.FrameCount()
	return s, err
}

// newSounds opens the speaker when audio is enabled; failures leave a silent manager
func newSounds(cfg *config.Config) *audio.SoundManager {
	ac, err := cfg.AudioSettings()
	if err != nil {
		log.Printf("audio config: %v", err)
	}
	sm := audio.NewSoundManager(ac)
	if err := sm.Initialize(); err != nil && !errors.Is(err, audio.ErrAudioDisabled) {
		log.Printf("audio unavailable, continuing without sound: %v", err)
	}
	return sm
}

// newScores opens the high-score file, falling back to an in-memory store
func newScores(cfg *config.Config) *score.Manager {
	path, err := cfg.ScoreFile()
	if err != nil {
		log.Printf("high score not persisted: %v", err)
		return score.NewManager(score.NewMemoryStore(0))
	}
	log.Printf("high score file: %s", path)
	return score.NewManager(score.NewIniStore(path))
}

func logEvents(session string, events []engine.Event) {
	for _, e := range events {
		switch e.Type {
		case engine.EventPoint:
			// Too frequent for the log
			continue
		default:
			log.Printf("[%s] %s", session, e)
		}
	}
}
