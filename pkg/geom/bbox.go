package geom

import "math"

// BoundingBox is an axis-aligned box described by its min and max corners.
type BoundingBox struct {
	Min Point3 `json:"min"`
	Max Point3 `json:"max"`
}

// Empty returns the empty bounding box, the identity element for Extend.
// Its corners are at +/-infinity so that extending it by any box or point
// yields that box or point.
func Empty() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: Point3{inf, inf, inf},
		Max: Point3{-inf, -inf, -inf},
	}
}

// NewBoundingBox returns the box spanning the two corners, normalizing the
// coordinate order so Min <= Max on every axis.
func NewBoundingBox(a, b Point3) BoundingBox {
	return BoundingBox{
		Min: Point3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Point3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// IsEmpty reports whether the box is the empty box (or otherwise inverted
// on some axis).
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend returns the smallest box containing both b and other.
func (b BoundingBox) Extend(other BoundingBox) BoundingBox {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return BoundingBox{
		Min: Point3{
			math.Min(b.Min.X, other.Min.X),
			math.Min(b.Min.Y, other.Min.Y),
			math.Min(b.Min.Z, other.Min.Z),
		},
		Max: Point3{
			math.Max(b.Max.X, other.Max.X),
			math.Max(b.Max.Y, other.Max.Y),
			math.Max(b.Max.Z, other.Max.Z),
		},
	}
}

// ExtendPoint returns the smallest box containing both b and p.
func (b BoundingBox) ExtendPoint(p Point3) BoundingBox {
	return b.Extend(BoundingBox{Min: p, Max: p})
}

// Size returns the extent of the box along each axis. The empty box has
// zero size.
func (b BoundingBox) Size() Vector3 {
	if b.IsEmpty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point3 {
	return Point3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// IsDegenerate reports whether any dimension of the box is at or below the
// given tolerance. Degenerate boxes carry no exportable volume.
func (b BoundingBox) IsDegenerate(tol float64) bool {
	if b.IsEmpty() {
		return true
	}
	s := b.Size()
	return s.X <= tol || s.Y <= tol || s.Z <= tol
}
