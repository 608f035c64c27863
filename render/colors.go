package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black playfield
	RgbStar       = tcell.NewRGBColor(255, 255, 255) // Starfield dots
	RgbBorder     = tcell.NewRGBColor(68, 68, 68)    // #444 field border
	RgbDoor       = tcell.NewRGBColor(102, 102, 102) // #666 door outlines
	RgbObstacle   = tcell.NewRGBColor(255, 255, 255) // White stars
	RgbTrail      = tcell.NewRGBColor(255, 255, 255) // White trail
	RgbTrailTail  = tcell.NewRGBColor(90, 90, 90)    // Oldest trail point
	RgbPlayer     = tcell.NewRGBColor(255, 255, 255) // Trail head
	RgbText       = tcell.NewRGBColor(255, 255, 255) // Screen text
	RgbTextDim    = tcell.NewRGBColor(150, 150, 150) // Credits and hints
	RgbHUD        = tcell.NewRGBColor(255, 255, 255) // HUD text
	RgbFlashWhite = tcell.NewRGBColor(255, 255, 255) // Collision flash
	RgbFlashRed   = tcell.NewRGBColor(255, 0, 0)     // Collision tint
)

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend draws over on top of base with the given opacity
func Blend(base, over tcell.Color, alpha float64) tcell.Color {
	if alpha <= 0 {
		return base
	}
	if alpha >= 1 {
		return over
	}
	return fromColorful(toColorful(base).BlendRgb(toColorful(over), alpha))
}

// FromImageColor converts an image color to a terminal color
func FromImageColor(c color.Color) tcell.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return RgbBackground
	}
	return fromColorful(cf)
}

// GetTrailColor returns the trail color at progress along the trail,
// 0 at the oldest point and 1 at the head
func GetTrailColor(progress float64) tcell.Color {
	return Blend(RgbTrailTail, RgbTrail, min(max(progress, 0), 1))
}

// StarGlyph picks a glyph for a star cell by intensity
func StarGlyph(intensity float64) rune {
	switch {
	case intensity > 0.75:
		return '*'
	case intensity > 0.45:
		return '+'
	case intensity > 0.2:
		return '·'
	default:
		return '.'
	}
}
