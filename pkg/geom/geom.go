// Package geom provides the shared geometric value types for AutoCrate:
// points, free vectors, and axis-aligned bounding boxes. All comparisons
// that matter are tolerance-based using Epsilon.
package geom

import "math"

// Epsilon is the tolerance used for floating-point comparisons throughout
// the kernel. Coordinates closer than this are considered equal.
const Epsilon = 1e-6

// Point3 is a position in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// Vector3 is a free direction or displacement in 3D space.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns the point displaced by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// ApproxEqual reports whether p and q coincide within Epsilon.
func (p Point3) ApproxEqual(q Point3) bool {
	return math.Abs(p.X-q.X) < Epsilon &&
		math.Abs(p.Y-q.Y) < Epsilon &&
		math.Abs(p.Z-q.Z) < Epsilon
}

// Add returns the component-wise sum v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the component-wise difference v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by k.
func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{v.X * k, v.Y * k, v.Z * k}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. Vectors shorter than Epsilon
// have no meaningful direction; the zero vector is returned for those.
// Callers that must distinguish the degenerate case check Length first.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l < Epsilon {
		return Vector3{}
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// ApproxEqual reports whether v and w coincide within Epsilon.
func (v Vector3) ApproxEqual(w Vector3) bool {
	return math.Abs(v.X-w.X) < Epsilon &&
		math.Abs(v.Y-w.Y) < Epsilon &&
		math.Abs(v.Z-w.Z) < Epsilon
}
