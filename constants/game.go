package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = time.Second / 60

	// DefaultFPS is the frame rate used when none is configured
	DefaultFPS = 60
)

// Playing Field Geometry (world units)
const (
	FieldWidth  = 1280.0
	FieldHeight = 720.0

	// FieldMargin is the inset of the playing-field border on every side
	FieldMargin = 40.0

	// DoorWidth is the horizontal tolerance next to the left door
	DoorWidth = 60.0

	// DoorHeight is the vertical opening of both doors, centred on the field
	DoorHeight = 100.0
)

// Player Movement (world units per frame)
const (
	ForwardSpeed  = 4.0
	UpwardSpeed   = 6.0
	DownwardSpeed = 4.0

	// MaxTrailLength bounds the trail history
	MaxTrailLength = 20
)
