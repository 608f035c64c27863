package constants

// Obstacle Constants
const (
	// ObstacleSize is the visual size of an obstacle glyph
	// Passing within this vertical gap scores; collision radius is half of it
	ObstacleSize = 21.0

	// ObstaclesPerLevel multiplies the level number into the obstacle count
	ObstaclesPerLevel = 5
)

// Session Constants
const (
	InitialLives = 3
	InitialLevel = 1

	// LevelCompleteBonus is awarded for passing the exit door
	LevelCompleteBonus = 50

	// PointsPerObstacle is awarded once per obstacle passed
	PointsPerObstacle = 1
)

// Transition Timing (frames)
const (
	CollisionTransitionFrames = 30
	VictoryTransitionFrames   = 60

	// VictoryTextFadeFrames is the fade-in window of the level complete text
	VictoryTextFadeFrames = 15

	// StateCooldownFrames debounces a held key across menu transitions
	StateCooldownFrames = 30
)
