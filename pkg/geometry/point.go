package geometry

import "math"

// Point is a position in canvas world coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Norm returns p normalized to unit length.
// A zero-length vector normalizes to (1, 0) so callers never divide by zero.
func (p Point) Norm() Point {
	l := math.Hypot(p.X, p.Y)
	if l == 0 {
		return Point{X: 1, Y: 0}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Lerp linearly interpolates between p and q at t in [0,1].
func Lerp(p, q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether pt lies inside r expanded by margin on all sides.
func (r Rect) Contains(pt Point, margin float64) bool {
	return pt.X >= r.X-margin && pt.X <= r.X+r.Width+margin &&
		pt.Y >= r.Y-margin && pt.Y <= r.Y+r.Height+margin
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
