package engine

import "github.com/lixenwraith/star-dodger/constants"

// Geometry describes the playing field in world units
type Geometry struct {
	Width, Height float64

	// Margin insets the field border on every side
	Margin float64

	// DoorWidth is the horizontal tolerance next to the left door
	DoorWidth float64

	// DoorHeight is the vertical opening of both doors, centred on the field
	DoorHeight float64

	// ObstacleSize is the visual size of an obstacle; the collision radius is half of it
	ObstacleSize float64
}

// DefaultGeometry returns the 1280×720 field
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        constants.FieldWidth,
		Height:       constants.FieldHeight,
		Margin:       constants.FieldMargin,
		DoorWidth:    constants.DoorWidth,
		DoorHeight:   constants.DoorHeight,
		ObstacleSize: constants.ObstacleSize,
	}
}

// Start returns the spawn position on the left door
func (g Geometry) Start() Point {
	return Point{X: g.Margin, Y: g.Height / 2}
}

// DoorTop and DoorBottom bound the door opening
func (g Geometry) DoorTop() float64 { return g.Height/2 - g.DoorHeight/2 }
func (g Geometry) DoorBottom() float64 { return g.Height/2 + g.DoorHeight/2 }

// InDoorWindow reports whether y lies strictly inside the door opening
func (g Geometry) InDoorWindow(y float64) bool {
	return y > g.DoorTop() && y < g.DoorBottom()
}

// InLeftDoor reports whether p is in the tolerance zone of the entry door
func (g Geometry) InLeftDoor(p Point) bool {
	return p.X < g.Margin+g.DoorWidth && g.InDoorWindow(p.Y)
}

// OutsideBand reports whether y has left the vertical playing band
func (g Geometry) OutsideBand(y float64) bool {
	return y < g.Margin || y > g.Height-g.Margin
}

// AtExit reports whether x has reached the right boundary
func (g Geometry) AtExit(x float64) bool {
	return x >= g.Width-g.Margin
}

// Playable returns the obstacle spawn rectangle between the doors
func (g Geometry) Playable() (x, y, w, h float64) {
	x = g.Margin + g.DoorWidth
	y = g.Margin
	w = g.Width - (g.Margin+g.DoorWidth)*2
	h = g.Height - g.Margin*2
	return x, y, w, h
}
