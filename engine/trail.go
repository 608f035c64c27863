package engine

// Trail is a bounded history of player positions, oldest first
type Trail struct {
	points []Point
	max    int
}

// NewTrail creates a trail holding at most max points, seeded with start
func NewTrail(max int, start Point) *Trail {
	t := &Trail{
		points: make([]Point, 0, max+1),
		max:    max,
	}
	t.points = append(t.points, start)
	return t
}

// Push appends p and evicts the oldest point beyond capacity
func (t *Trail) Push(p Point) {
	t.points = append(t.points, p)
	if len(t.points) > t.max {
		copy(t.points, t.points[1:])
		t.points = t.points[:t.max]
	}
}

// Reset discards the history and keeps a single point
func (t *Trail) Reset(p Point) {
	t.points = t.points[:0]
	t.points = append(t.points, p)
}

// Points returns a copy of the stored points, oldest first
func (t *Trail) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// SmoothTrail samples the smoothed path through points
// Each segment is a quadratic curve using the previous point as control and
// ending at the midpoint between it and the next point, so the path passes
// through midpoints rather than the raw samples
func SmoothTrail(points []Point, steps int) []Point {
	if len(points) < 2 || steps < 1 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	out := make([]Point, 0, 1+(len(points)-1)*steps)
	cur := points[0]
	out = append(out, cur)

	for i := 1; i < len(points); i++ {
		ctrl := points[i-1]
		end := Point{
			X: (points[i].X + points[i-1].X) / 2,
			Y: (points[i].Y + points[i-1].Y) / 2,
		}
		for k := 1; k <= steps; k++ {
			t := float64(k) / float64(steps)
			u := 1 - t
			out = append(out, Point{
				X: u*u*cur.X + 2*u*t*ctrl.X + t*t*end.X,
				Y: u*u*cur.Y + 2*u*t*ctrl.Y + t*t*end.Y,
			})
		}
		cur = end
	}

	return out
}
