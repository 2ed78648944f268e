package sketch

import "math"

// circumcenterTol guards the circumcenter determinant: below this the
// three points are treated as collinear.
const circumcenterTol = 1e-8

// Circumcenter returns the center of the circle through the three points,
// or ok=false when the points are collinear and no such circle exists.
func Circumcenter(a, b, c Point2) (Point2, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < circumcenterTol {
		return Point2{}, false
	}

	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	return Point2{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}, true
}

// Orient2D returns the signed doubled area of the triangle a-b-c.
// Positive means the turn from b to c is counter-clockwise as seen from a.
func Orient2D(a, b, c Point2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
