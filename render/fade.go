package render

// FadeBuffer keeps per-cell star intensity that decays every frame
// Decaying instead of clearing leaves motion trails behind moving stars
type FadeBuffer struct {
	w, h  int
	cells []float64
}

// NewFadeBuffer creates a zeroed buffer
func NewFadeBuffer(w, h int) *FadeBuffer {
	fb := &FadeBuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates and clears the buffer when dimensions change
func (fb *FadeBuffer) Resize(w, h int) {
	if w == fb.w && h == fb.h && fb.cells != nil {
		return
	}
	fb.w = max(w, 0)
	fb.h = max(h, 0)
	fb.cells = make([]float64, fb.w*fb.h)
}

// Decay multiplies every cell by (1 - alpha), matching a translucent black fill
func (fb *FadeBuffer) Decay(alpha float64) {
	keep := 1 - alpha
	for i, v := range fb.cells {
		v *= keep
		if v < 0.02 {
			v = 0
		}
		fb.cells[i] = v
	}
}

// Plot raises a cell to at least v
func (fb *FadeBuffer) Plot(x, y int, v float64) {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	i := y*fb.w + x
	if v > fb.cells[i] {
		fb.cells[i] = min(v, 1)
	}
}

// At returns the intensity of a cell, 0 outside the buffer
func (fb *FadeBuffer) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return 0
	}
	return fb.cells[y*fb.w+x]
}

// Clear zeroes the buffer
func (fb *FadeBuffer) Clear() {
	clear(fb.cells)
}
