package constants

import "time"

// Background Image Constants
const (
	// BackgroundOpacity is applied to the level background image
	BackgroundOpacity = 0.2

	// BackgroundCrop is trimmed from every side of a background image
	BackgroundCrop = 10

	// DefaultBackgroundDir holds bg1.jpg .. bg15.jpg
	DefaultBackgroundDir = "bg"
)

// BackgroundFiles is the rotation of level backgrounds, selected by (level-1) mod len
var BackgroundFiles = []string{
	"bg1.jpg", "bg2.jpg", "bg3.jpg", "bg4.jpg", "bg5.jpg", "bg6.jpg", "bg7.jpg",
	"bg9.jpg", "bg10.jpg", "bg11.jpg", "bg12.jpg", "bg13.jpg", "bg14.jpg", "bg15.jpg",
}

// Terminal Layout Constants
const (
	// CellPixelWidth and CellPixelHeight map a terminal cell to virtual pixels for the starfield
	CellPixelWidth  = 8
	CellPixelHeight = 16

	// HUDRows is reserved above the field for the heads-up display
	HUDRows = 1

	// HUDColumns splits the HUD into equal sections
	HUDColumns = 4
)

// Terminal Input Timing
const (
	// HoldInitialWindow keeps the primary action held after the first key press,
	// covering the terminal's auto-repeat delay
	HoldInitialWindow = 500 * time.Millisecond

	// HoldRepeatWindow keeps the primary action held between auto-repeat events
	HoldRepeatWindow = 120 * time.Millisecond
)

// Screen Text
const (
	TitleText        = "Star Dodger V2 2024 Remake"
	TitleGoal        = "Navigate through the obstacles to reach the exit door"
	TitleControls    = "Hold SPACE to move up, release to move down. S toggles starfield mode. Q quits."
	TitleScoring     = "Score points by passing near obstacles. Avoid hitting them!"
	TitlePrompt      = "Press SPACE to Start"
	TitleCredits     = "(c)2024 p9iaai - (c)1988 Stewart Russell (Original) - (c)1992 Graham French (V2)"
	GameOverText     = "GAME OVER"
	GameOverPrompt   = "Press SPACE to Play Again"
	ObstacleGlyph    = '★'
	PlayerGlyph      = '●'
	TrailGlyph       = '•'
	WindowTitle      = "Star Dodger"
	LogDirName       = "logs"
	LogFileName      = "star-dodger.log"
	ScoreFileName    = "scores.ini"
	ConfigDirName    = "star-dodger"
	DefaultConfigINI = "star-dodger.ini"
)
