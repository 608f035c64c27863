package engine

import "math"

// Point is a position in world units
type Point struct {
	X, Y float64
}

// Obstacle is a circular hazard in the playing field
// Collected only gates scoring; collected obstacles still collide
type Obstacle struct {
	X, Y      float64
	Radius    float64
	Collected bool
}

// Contains reports whether p lies strictly inside the collision radius
func (o Obstacle) Contains(p Point) bool {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx+dy*dy) < o.Radius
}

// PassedBy reports whether p has moved beyond the obstacle horizontally
// while staying within size of it vertically
func (o Obstacle) PassedBy(p Point, size float64) bool {
	return p.X > o.X && math.Abs(p.Y-o.Y) < size
}
