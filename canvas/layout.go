package canvas

import (
	"image/color"
	"math"

	"github.com/lixenwraith/star-dodger/engine"
)

// Canvas palette
var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorStar       = color.RGBA{255, 255, 255, 255}
	colorBorder     = color.RGBA{0x44, 0x44, 0x44, 255}
	colorDoor       = color.RGBA{0x66, 0x66, 0x66, 255}
	colorObstacle   = color.RGBA{255, 255, 255, 255}
	colorPlayer     = color.RGBA{255, 255, 255, 255}
	colorTextDim    = color.RGBA{150, 150, 150, 255}
)

// debugGlyphW and debugGlyphH are the cell size of ebitenutil's debug font
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// fitRect scales a w×h field uniformly into an outW×outH window and centres it
func fitRect(outW, outH int, w, h float64) (scale, offX, offY float64) {
	if outW <= 0 || outH <= 0 || w <= 0 || h <= 0 {
		return 0, 0, 0
	}
	scale = math.Min(float64(outW)/w, float64(outH)/h)
	offX = (float64(outW) - w*scale) / 2
	offY = (float64(outH) - h*scale) / 2
	return scale, offX, offY
}

// starOutline returns the ten vertices of a five-pointed star centred on c,
// starting at the top point
func starOutline(c engine.Point, outer, inner float64) []engine.Point {
	pts := make([]engine.Point, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts[i] = engine.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

// textWidth returns the pixel width of s in the debug font at scale
func textWidth(s string, scale float64) float64 {
	return float64(len([]rune(s))*debugGlyphW) * scale
}

// fade returns c with its alpha multiplied by a
func fade(c color.RGBA, a float64) color.RGBA {
	a = math.Min(math.Max(a, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// trailColor shades the trail from dim at the oldest point to white at the head
func trailColor(progress float64) color.RGBA {
	p := math.Min(math.Max(progress, 0), 1)
	v := uint8(90 + (255-90)*p)
	return color.RGBA{v, v, v, 255}
}
