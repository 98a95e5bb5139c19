package gamut

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// Point is a position in the CIE 1931 chromaticity plane. It is used both
// for colors and for the vertices of a gamut triangle.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func Dot(p1, p2 Point) float64 {
	return p1.X*p2.X + p1.Y*p2.Y
}

// Cross returns the z component of the cross product of p1 and p2 treated
// as vectors.
func Cross(p1, p2 Point) float64 {
	return p1.X*p2.Y - p1.Y*p2.X
}

// Distance is the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	dx, dy := p1.X-p2.X, p1.Y-p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ClosestPointOnSegment returns the point on the segment [a, b] nearest to
// p. A zero length segment yields a.
func ClosestPointOnSegment(a, b, p Point) Point {
	ap, ab := p.Sub(a), b.Sub(a)
	ab2 := Dot(ab, ab)
	if ab2 == 0 {
		return a
	}
	t := max(0, min(Dot(ap, ab)/ab2, 1))
	return a.Add(ab.Scale(t))
}
