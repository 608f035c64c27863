package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/star-dodger/constants"
)

// State is the top-level screen of the game
type State int

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ScoreRecorder persists the best session score
type ScoreRecorder interface {
	HighScore() int
	RecordIfHigher(score int) bool
}

// Game owns the player, obstacles, trail, session counters and the
// Title/Playing/GameOver state machine
// All methods must be called from the frame goroutine
type Game struct {
	geo      Geometry
	state    State
	cooldown int

	player    Point
	trail     *Trail
	obstacles []Obstacle

	score int
	lives int
	level int

	transition Transition

	recorder ScoreRecorder
	rng      *rand.Rand
	events   *EventQueue
	frame    uint64
}

// NewGame creates a game on the title screen using the default field
func NewGame(recorder ScoreRecorder, rng *rand.Rand) *Game {
	return NewGameWithGeometry(DefaultGeometry(), recorder, rng)
}

// NewGameWithGeometry creates a game on the title screen using geo
func NewGameWithGeometry(geo Geometry, recorder ScoreRecorder, rng *rand.Rand) *Game {
	g := &Game{
		geo:      geo,
		state:    StateTitle,
		player:   geo.Start(),
		lives:    constants.InitialLives,
		level:    constants.InitialLevel,
		recorder: recorder,
		rng:      rng,
		events:   NewEventQueue(),
	}
	g.trail = NewTrail(constants.MaxTrailLength, g.player)
	g.GenerateObstacles()
	return g
}

// Step advances the game by one frame using the input snapshot
func (g *Game) Step(in Input) {
	g.frame++

	if g.cooldown > 0 {
		g.cooldown--
	}

	switch g.state {
	case StateTitle:
		if in.Primary && g.cooldown == 0 {
			g.state = StatePlaying
			g.ResetGame()
			g.emit(EventGameStart)
		}

	case StatePlaying:
		g.Update(in)

	case StateGameOver:
		if in.Primary && g.cooldown == 0 {
			g.cooldown = constants.StateCooldownFrames
			g.state = StateTitle
			g.emit(EventTitle)
		}
	}
}

// Update runs one simulation frame of the Playing state
// An active transition suspends movement and collision checks
func (g *Game) Update(in Input) {
	if g.transition != nil {
		g.tickTransition()
		return
	}

	if g.state != StatePlaying {
		return
	}

	g.player.X += constants.ForwardSpeed
	if in.Primary {
		g.player.Y -= constants.UpwardSpeed
	} else {
		g.player.Y += constants.DownwardSpeed
	}

	g.trail.Push(g.player)

	for i := range g.obstacles {
		o := &g.obstacles[i]
		if !o.Collected && o.PassedBy(g.player, g.geo.ObstacleSize) {
			o.Collected = true
			g.score += constants.PointsPerObstacle
			g.emit(EventPoint)
		}
	}

	if g.CheckCollisions() {
		g.HandleCollision()
		return
	}

	if g.geo.AtExit(g.player.X) {
		if g.geo.InDoorWindow(g.player.Y) {
			g.completeLevel()
		} else {
			g.HandleCollision()
		}
	}
}

// CheckCollisions reports whether the player hits a boundary or any obstacle
// The left door opening tolerates leaving the margin band
func (g *Game) CheckCollisions() bool {
	p := g.player

	if g.geo.OutsideBand(p.Y) && !g.geo.InLeftDoor(p) {
		return true
	}

	for _, o := range g.obstacles {
		if o.Contains(p) {
			return true
		}
	}

	return false
}

// HandleCollision costs a life and starts the collision transition
// No-op while any transition is active
func (g *Game) HandleCollision() {
	if g.transition != nil {
		return
	}

	g.transition = NewCollisionTransition()
	g.lives--
	g.emit(EventCollision)

	if g.lives <= 0 {
		g.state = StateGameOver
		g.emit(EventGameOver)
		if g.recorder != nil && g.recorder.RecordIfHigher(g.score) {
			g.emit(EventHighScore)
		}
	}
}

// ResetGame starts a fresh session
func (g *Game) ResetGame() {
	g.score = 0
	g.lives = constants.InitialLives
	g.level = constants.InitialLevel
	g.transition = nil
	g.respawn()
	g.GenerateObstacles()
}

// GenerateObstacles replaces the obstacle set with 5×level obstacles
// placed uniformly inside the playable rectangle between the doors
func (g *Game) GenerateObstacles() {
	count := constants.ObstaclesPerLevel * g.level
	x, y, w, h := g.geo.Playable()

	g.obstacles = make([]Obstacle, count)
	for i := range g.obstacles {
		g.obstacles[i] = Obstacle{
			X:      x + g.rng.Float64()*w,
			Y:      y + g.rng.Float64()*h,
			Radius: g.geo.ObstacleSize / 2,
		}
	}
}

// completeLevel awards the bonus and sets up the next level immediately;
// the victory transition only delays input
func (g *Game) completeLevel() {
	g.transition = NewVictoryTransition(g.level)
	g.score += constants.LevelCompleteBonus
	g.level++
	g.respawn()
	g.GenerateObstacles()
	g.events.Push(Event{
		Type:  EventVictory,
		Frame: g.frame,
		Score: g.score,
		Lives: g.lives,
		Level: g.level - 1,
	})
}

func (g *Game) tickTransition() {
	g.transition.Tick()
	if !g.transition.Done() {
		return
	}
	done := g.transition
	g.transition = nil
	g.completeTransition(done)
}

// completeTransition is the single dispatch point for expired transitions
func (g *Game) completeTransition(t Transition) {
	switch t.(type) {
	case *CollisionTransition:
		if g.lives > 0 {
			g.respawn()
		}
	case *VictoryTransition:
		// Respawn and new obstacles were applied at trigger time
	}
}

func (g *Game) respawn() {
	g.player = g.geo.Start()
	g.trail.Reset(g.player)
}

func (g *Game) emit(t EventType) {
	g.events.Push(Event{
		Type:  t,
		Frame: g.frame,
		Score: g.score,
		Lives: g.lives,
		Level: g.level,
	})
}

// ===== ACCESSORS =====

// Geometry returns the playing field description
func (g *Game) Geometry() Geometry { return g.geo }

// State returns the active screen
func (g *Game) State() State { return g.state }

// Cooldown returns the remaining menu debounce frames
func (g *Game) Cooldown() int { return g.cooldown }

// Score returns the session score
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives
func (g *Game) Lives() int { return g.lives }

// Level returns the current level
func (g *Game) Level() int { return g.level }

// Frame returns the number of frames stepped
func (g *Game) Frame() uint64 { return g.frame }

// Player returns the player position
func (g *Game) Player() Point { return g.player }

// Trail returns a copy of the trail, oldest first
func (g *Game) Trail() []Point { return g.trail.Points() }

// Obstacles returns a copy of the obstacle set
func (g *Game) Obstacles() []Obstacle {
	out := make([]Obstacle, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

// Transition returns the active transition or nil
func (g *Game) Transition() Transition { return g.transition }

// HighScore returns the recorded high score, 0 without a recorder
func (g *Game) HighScore() int {
	if g.recorder == nil {
		return 0
	}
	return g.recorder.HighScore()
}

// ConsumeEvents returns and clears the events emitted since the last call
func (g *Game) ConsumeEvents() []Event {
	return g.events.Consume()
}
