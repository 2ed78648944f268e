// Package sketch provides 2D sketching on arbitrary planes embedded in 3D:
// a coordinate frame abstraction with exact point transforms, a minimal 2D
// entity set, and the geometric helpers the rest of the system needs
// (circumcenter, orientation test).
package sketch

import (
	"math"

	"github.com/antimonylabs/autocrate/pkg/brep"
	"github.com/antimonylabs/autocrate/pkg/geom"
)

// Point2 is a position in a sketch plane's local coordinates.
type Point2 struct {
	X, Y float64
}

// Frame is a 2D coordinate frame embedded in 3D: an origin, a unit normal,
// and orthonormal in-plane axes U and V. To3D and From3D are exact linear
// inverses of each other given the orthonormal basis.
type Frame struct {
	Origin geom.Point3
	Normal geom.Vector3
	U      geom.Vector3
	V      geom.Vector3
}

// FromOriginNormal derives a frame from an explicit plane normal using
// Gram-Schmidt against a world axis. The reference axis is chosen by the
// smaller normal component so the cross product cannot vanish for a
// well-formed normal. Returns nil when the normal has near-zero length or
// the construction degenerates anyway.
func FromOriginNormal(origin geom.Point3, normal geom.Vector3) *Frame {
	if normal.Length() < geom.Epsilon {
		return nil
	}
	n := normal.Normalize()

	ref := geom.Vector3{Z: 1}
	if math.Abs(n.X) < math.Abs(n.Z) {
		ref = geom.Vector3{X: 1}
	}

	u := ref.Cross(n)
	if u.Length() < geom.Epsilon {
		// Normal parallel to the reference axis heuristic.
		return nil
	}
	u = u.Normalize()
	v := n.Cross(u)

	return &Frame{Origin: origin, Normal: n, U: u, V: v}
}

// FromFace derives a frame from a face's first three boundary vertices:
// the origin is the first vertex and the normal is the cross product of
// the two leading edge vectors. Returns nil when the face has fewer than
// three resolvable vertices or the vertices are collinear.
func FromFace(s *brep.Solid, id brep.FaceID) *Frame {
	verts := s.LoopVertices(id)
	if len(verts) < 3 {
		return nil
	}

	var pts [3]geom.Point3
	for i := 0; i < 3; i++ {
		v := s.Vertex(verts[i])
		if v == nil {
			return nil
		}
		pts[i] = v.Point
	}

	e1 := pts[1].Sub(pts[0])
	e2 := pts[2].Sub(pts[1])
	n := e1.Cross(e2)
	if n.Length() < geom.Epsilon {
		// Collinear boundary vertices span no plane.
		return nil
	}

	u := e1.Normalize()
	normal := n.Normalize()
	v := normal.Cross(u)

	return &Frame{Origin: pts[0], Normal: normal, U: u, V: v}
}

// To3D maps a sketch-local point into world coordinates.
func (f *Frame) To3D(p Point2) geom.Point3 {
	return f.Origin.Add(f.U.Scale(p.X)).Add(f.V.Scale(p.Y))
}

// From3D projects a world point into sketch-local coordinates.
func (f *Frame) From3D(p geom.Point3) Point2 {
	d := p.Sub(f.Origin)
	return Point2{X: d.Dot(f.U), Y: d.Dot(f.V)}
}
