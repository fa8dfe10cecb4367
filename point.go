package pie

import "math"

// Point represents a 2D point or vector in surface coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Polar returns the point at radius r and chart angle a around the origin.
// Chart angles start at 12 o'clock and grow clockwise, so with the y axis
// pointing down the point is (r·sin a, -r·cos a).
func Polar(r, a float64) Point {
	return Point{X: r * math.Sin(a), Y: -r * math.Cos(a)}
}
