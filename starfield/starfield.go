// Package starfield animates the decorative particle background
package starfield

import (
	"math/rand/v2"

	"github.com/lixenwraith/star-dodger/constants"
)

// Mode selects the starfield animation
type Mode int

const (
	ModeDrifting Mode = iota
	ModePerspective
)

func (m Mode) String() string {
	if m == ModePerspective {
		return "Perspective"
	}
	return "Drifting"
}

// Star is one particle
// Drifting mode uses X/Y in screen space; perspective mode uses X/Y as offsets
// from the projection centre and Z in (0, StarMaxDepth]
type Star struct {
	X, Y  float64
	Z     float64
	Size  float64
	Speed float64
}

// Dot is a drawable star position in screen space
type Dot struct {
	X, Y float64
	Size float64
}

// Field owns the star set and its viewport
// Not safe for concurrent use; driven from the frame goroutine
type Field struct {
	width, height    float64
	centerX, centerY float64

	mode  Mode
	stars []Star
	rng   *rand.Rand
}

// New creates a drifting starfield covering width×height
func New(width, height float64, rng *rand.Rand) *Field {
	f := &Field{rng: rng}
	f.Resize(width, height)
	f.initStars()
	return f
}

// NewWithMode creates a starfield starting in mode
func NewWithMode(width, height float64, mode Mode, rng *rand.Rand) *Field {
	f := &Field{rng: rng, mode: mode}
	f.Resize(width, height)
	f.initStars()
	return f
}

// Toggle flips between drifting and perspective and regenerates all stars
func (f *Field) Toggle() {
	if f.mode == ModeDrifting {
		f.mode = ModePerspective
	} else {
		f.mode = ModeDrifting
	}
	f.initStars()
}

// Resize updates the viewport and projection centre
// Existing stars are kept; recycled stars use the new bounds
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
	f.centerX = width / 2
	f.centerY = height / 2
}

// Update advances every star by one frame
func (f *Field) Update() {
	for i := range f.stars {
		s := &f.stars[i]
		if f.mode == ModePerspective {
			s.Z -= constants.StarSpeed
			if s.Z <= 0 {
				s.Z = constants.StarMaxDepth
				s.X = f.rng.Float64()*f.width - f.centerX
				s.Y = f.rng.Float64()*f.height - f.centerY
			}
			continue
		}

		s.Y += s.Speed
		if s.Y > f.height {
			s.Y = 0
			s.X = f.rng.Float64() * f.width
		}
	}
}

// Project maps a perspective star to screen space
// visible is false when the projected point falls outside the viewport
func (f *Field) Project(s Star) (px, py, size float64, visible bool) {
	if s.Z <= 0 {
		return 0, 0, 0, false
	}
	k := constants.StarFocalLength / s.Z
	px = s.X*k + f.centerX
	py = s.Y*k + f.centerY
	size = (1 - s.Z/constants.StarMaxDepth) * constants.StarPerspectiveMaxSize
	visible = px >= 0 && px <= f.width && py >= 0 && py <= f.height
	return px, py, size, visible
}

// Points returns the drawable dots for the current mode
func (f *Field) Points() []Dot {
	dots := make([]Dot, 0, len(f.stars))
	for _, s := range f.stars {
		if f.mode == ModePerspective {
			px, py, size, ok := f.Project(s)
			if ok {
				dots = append(dots, Dot{X: px, Y: py, Size: size})
			}
			continue
		}
		dots = append(dots, Dot{X: s.X, Y: s.Y, Size: s.Size})
	}
	return dots
}

// Mode returns the active animation mode
func (f *Field) Mode() Mode { return f.mode }

// Size returns the viewport dimensions
func (f *Field) Size() (width, height float64) { return f.width, f.height }

func (f *Field) initStars() {
	if f.mode == ModePerspective {
		f.stars = make([]Star, constants.PerspectiveStarCount)
		for i := range f.stars {
			f.stars[i] = Star{
				X: f.rng.Float64()*f.width*2 - f.width,
				Y: f.rng.Float64()*f.height*2 - f.height,
				// (0, max] avoids a zero depth on the first projection
				Z:    constants.StarMaxDepth * (1 - f.rng.Float64()),
				Size: f.rng.Float64() * constants.StarMaxSize,
			}
		}
		return
	}

	f.stars = make([]Star, constants.DriftStarCount)
	for i := range f.stars {
		f.stars[i] = Star{
			X:     f.rng.Float64() * f.width,
			Y:     f.rng.Float64() * f.height,
			Size:  f.rng.Float64() * constants.StarMaxSize,
			Speed: f.rng.Float64()*constants.StarSpeed + constants.StarMinDriftSpeed,
		}
	}
}
