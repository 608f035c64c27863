package render

import (
	"math"
	"testing"
)

func TestFadeBufferDecay(t *testing.T) {
	fb := NewFadeBuffer(4, 3)
	fb.Plot(1, 1, 1)

	fb.Decay(0.1)
	if v := fb.At(1, 1); math.Abs(v-0.9) > 1e-9 {
		t.Errorf("Expected 0.9 after one decay, got %v", v)
	}

	// Faint cells eventually clear completely
	for i := 0; i < 100; i++ {
		fb.Decay(0.1)
	}
	if v := fb.At(1, 1); v != 0 {
		t.Errorf("Expected cell to clear, got %v", v)
	}
}

func TestFadeBufferPlot(t *testing.T) {
	fb := NewFadeBuffer(4, 3)

	fb.Plot(2, 2, 0.5)
	fb.Plot(2, 2, 0.3)
	if v := fb.At(2, 2); v != 0.5 {
		t.Errorf("Plot should keep the brighter value, got %v", v)
	}

	fb.Plot(2, 2, 3)
	if v := fb.At(2, 2); v != 1 {
		t.Errorf("Plot should clamp to 1, got %v", v)
	}

	// Out of range is ignored
	fb.Plot(-1, 0, 1)
	fb.Plot(4, 0, 1)
	if fb.At(-1, 0) != 0 || fb.At(4, 0) != 0 {
		t.Error("Out of range cells must read as 0")
	}
}

func TestFadeBufferResize(t *testing.T) {
	fb := NewFadeBuffer(4, 3)
	fb.Plot(0, 0, 1)

	fb.Resize(4, 3)
	if fb.At(0, 0) != 1 {
		t.Error("Same-size resize should keep contents")
	}

	fb.Resize(8, 6)
	if fb.At(0, 0) != 0 {
		t.Error("Resize should clear contents")
	}
	fb.Plot(7, 5, 1)
	if fb.At(7, 5) != 1 {
		t.Error("Expected new bounds to be addressable")
	}

	fb.Clear()
	if fb.At(7, 5) != 0 {
		t.Error("Clear should zero all cells")
	}
}
