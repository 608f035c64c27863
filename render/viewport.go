package render

import (
	"github.com/lixenwraith/star-dodger/constants"
	"github.com/lixenwraith/star-dodger/engine"
)

// Minimum usable field in cells
const (
	minFieldCols = 32
	minFieldRows = 9
)

// Viewport maps world coordinates onto the terminal cell grid
// The field keeps the world aspect ratio measured in virtual pixels
// (CellPixelWidth × CellPixelHeight per cell) and is centred below the HUD
type Viewport struct {
	Cols, Rows int

	FieldX, FieldY int
	FieldW, FieldH int

	worldW, worldH float64
}

// NewViewport fits the field of geo into a cols×rows screen
func NewViewport(cols, rows int, geo engine.Geometry) Viewport {
	vp := Viewport{Cols: cols, Rows: rows, worldW: geo.Width, worldH: geo.Height}

	availW := cols
	availH := rows - constants.HUDRows
	if availW < 1 || availH < 1 {
		return vp
	}

	// Field size in cells at full virtual-pixel resolution
	cellsW := geo.Width / constants.CellPixelWidth
	cellsH := geo.Height / constants.CellPixelHeight

	w := availW
	h := int(float64(w)*cellsH/cellsW + 0.5)
	if h > availH {
		h = availH
		w = int(float64(h)*cellsW/cellsH + 0.5)
	}
	if w > availW {
		w = availW
	}

	vp.FieldW = w
	vp.FieldH = h
	vp.FieldX = (availW - w) / 2
	vp.FieldY = constants.HUDRows + (availH-h)/2
	return vp
}

// TooSmall reports whether the screen cannot show a readable field
func (vp Viewport) TooSmall() bool {
	return vp.FieldW < minFieldCols || vp.FieldH < minFieldRows
}

// ToCell maps a world point to a screen cell; ok is false outside the field
func (vp Viewport) ToCell(p engine.Point) (x, y int, ok bool) {
	if vp.FieldW == 0 || vp.FieldH == 0 {
		return 0, 0, false
	}
	fx := p.X / vp.worldW * float64(vp.FieldW)
	fy := p.Y / vp.worldH * float64(vp.FieldH)
	if fx < 0 || fy < 0 || fx >= float64(vp.FieldW) || fy >= float64(vp.FieldH) {
		return 0, 0, false
	}
	return vp.FieldX + int(fx), vp.FieldY + int(fy), true
}

// StarfieldSize returns the full-screen starfield extent in virtual pixels
func (vp Viewport) StarfieldSize() (w, h float64) {
	return float64(vp.Cols * constants.CellPixelWidth), float64(vp.Rows * constants.CellPixelHeight)
}

// StarCell maps a starfield virtual pixel to a screen cell
func (vp Viewport) StarCell(px, py float64) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x = int(px) / constants.CellPixelWidth
	y = int(py) / constants.CellPixelHeight
	if x >= vp.Cols || y >= vp.Rows {
		return 0, 0, false
	}
	return x, y, true
}
