package gamut

import (
	"errors"
	"fmt"
)

var _ = fmt.Print

// ErrDegenerateTriangle is returned when the vertices of a triangle are
// collinear, so that it encloses no area.
var ErrDegenerateTriangle = errors.New("gamut: triangle vertices are collinear")

// Triangle is the region of the chromaticity plane a device can reproduce,
// given by the chromaticities of its red, green and blue primaries.
type Triangle struct {
	R, G, B Point
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{r: %s g: %s b: %s}", t.R, t.G, t.B)
}

// NewTriangle returns the triangle with the specified primaries or
// ErrDegenerateTriangle if they are collinear.
func NewTriangle(r, g, b Point) (Triangle, error) {
	ans := Triangle{R: r, G: g, B: b}
	if ans.IsDegenerate() {
		return ans, fmt.Errorf("%w: r=%s g=%s b=%s", ErrDegenerateTriangle, r, g, b)
	}
	return ans, nil
}

func (t Triangle) IsDegenerate() bool {
	return Cross(t.G.Sub(t.R), t.B.Sub(t.R)) == 0
}

func (t Triangle) barycentric(p Point) (s, u float64) {
	v1, v2 := t.G.Sub(t.R), t.B.Sub(t.R)
	q := p.Sub(t.R)
	d := Cross(v1, v2)
	return Cross(q, v2) / d, Cross(v1, q) / d
}

// Contains reports whether p lies inside or on the boundary of t. The
// vertices of t must not be collinear, for a degenerate triangle Contains
// is always false.
func (t Triangle) Contains(p Point) bool {
	s, u := t.barycentric(p)
	return s >= 0 && u >= 0 && s+u <= 1
}

// Edges returns the sides of t in the order red-green, blue-red,
// green-blue. Closest prefers earlier edges on ties.
func (t Triangle) Edges() [3][2]Point {
	return [3][2]Point{{t.R, t.G}, {t.B, t.R}, {t.G, t.B}}
}

// Closest returns p if it is inside t, otherwise the point on the boundary
// of t nearest to p.
func (t Triangle) Closest(p Point) Point {
	if t.Contains(p) {
		return p
	}
	var ans Point
	lowest := -1.
	for i, e := range t.Edges() {
		q := ClosestPointOnSegment(e[0], e[1], p)
		if d := Distance(p, q); i == 0 || d < lowest {
			ans, lowest = q, d
		}
	}
	return ans
}
