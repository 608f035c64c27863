package engine

import (
	"math"
	"testing"
)

// TestTrailEvictsOldest verifies the bounded history keeps the newest points
func TestTrailEvictsOldest(t *testing.T) {
	tr := NewTrail(20, Point{X: 0, Y: 0})

	for i := 1; i <= 100; i++ {
		tr.Push(Point{X: float64(i), Y: float64(i)})
		if n := len(tr.points); n > 20 {
			t.Fatalf("Trail length %d exceeds limit after %d pushes", n, i)
		}
	}

	points := tr.Points()
	if len(points) != 20 {
		t.Fatalf("Expected 20 points, got %d", len(points))
	}
	if points[0].X != 81 || points[19].X != 100 {
		t.Errorf("Expected points 81..100, got %v..%v", points[0].X, points[19].X)
	}
}

// TestTrailReset verifies reset leaves a single point
func TestTrailReset(t *testing.T) {
	tr := NewTrail(20, Point{X: 1, Y: 1})
	tr.Push(Point{X: 2, Y: 2})
	tr.Push(Point{X: 3, Y: 3})

	tr.Reset(Point{X: 40, Y: 360})
	points := tr.Points()
	if len(points) != 1 || points[0] != (Point{X: 40, Y: 360}) {
		t.Errorf("Expected single point at (40, 360), got %v", points)
	}
}

// TestTrailPointsIsCopy verifies callers cannot mutate the history
func TestTrailPointsIsCopy(t *testing.T) {
	tr := NewTrail(20, Point{X: 1, Y: 1})
	points := tr.Points()
	points[0].X = 99

	if tr.Points()[0].X != 1 {
		t.Error("Mutating returned points changed the trail")
	}
}

// TestSmoothTrailEndpoints verifies the smoothed path starts at the oldest
// point and ends at the midpoint of the last segment
func TestSmoothTrailEndpoints(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 10}}

	smooth := SmoothTrail(points, 4)
	if len(smooth) != 1+2*4 {
		t.Fatalf("Expected %d samples, got %d", 1+2*4, len(smooth))
	}
	if smooth[0] != points[0] {
		t.Errorf("Expected start at %v, got %v", points[0], smooth[0])
	}

	last := smooth[len(smooth)-1]
	if math.Abs(last.X-15) > 1e-9 || math.Abs(last.Y-5) > 1e-9 {
		t.Errorf("Expected end at midpoint (15, 5), got %v", last)
	}

	// First segment ends at the first midpoint
	mid := smooth[4]
	if math.Abs(mid.X-5) > 1e-9 || math.Abs(mid.Y) > 1e-9 {
		t.Errorf("Expected first segment to end at (5, 0), got %v", mid)
	}
}

// TestSmoothTrailShortInput verifies degenerate inputs are returned as-is
func TestSmoothTrailShortInput(t *testing.T) {
	if out := SmoothTrail(nil, 4); len(out) != 0 {
		t.Errorf("Expected empty output for nil input, got %v", out)
	}

	single := []Point{{X: 3, Y: 4}}
	if out := SmoothTrail(single, 4); len(out) != 1 || out[0] != single[0] {
		t.Errorf("Expected single point passthrough, got %v", out)
	}
}
