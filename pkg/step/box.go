package step

import (
	"fmt"

	"github.com/antimonylabs/autocrate/pkg/geom"
)

// The writer re-derives the 8-vertex/12-edge/6-face box structure itself
// instead of walking a brep.Solid: STEP's entity model (edge curves,
// oriented edges, face bounds) differs enough from the in-process kernel
// that translating the object graph would be more code than emitting the
// box directly. Both share the closed-B-Rep orientation invariant: every
// edge is traversed by exactly two faces in opposite senses.

// boxCorners lists the unit-box corners: bottom ring counter-clockwise
// seen from above, then the top ring in the same order.
var boxCorners = [8]geom.Vector3{
	{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
}

// boxEdge is one of the 12 box edges: its endpoint corner indices and the
// unit direction it runs in.
type boxEdge struct {
	start, end int
	dir        geom.Vector3
}

var boxEdges = [12]boxEdge{
	{0, 1, geom.Vector3{X: 1}}, {1, 2, geom.Vector3{Y: 1}},
	{2, 3, geom.Vector3{X: -1}}, {3, 0, geom.Vector3{Y: -1}},
	{4, 5, geom.Vector3{X: 1}}, {5, 6, geom.Vector3{Y: 1}},
	{6, 7, geom.Vector3{X: -1}}, {7, 4, geom.Vector3{Y: -1}},
	{0, 4, geom.Vector3{Z: 1}}, {1, 5, geom.Vector3{Z: 1}},
	{2, 6, geom.Vector3{Z: 1}}, {3, 7, geom.Vector3{Z: 1}},
}

// loopStep is one directed traversal of a box edge inside a face loop.
type loopStep struct {
	edge    int
	forward bool
}

// boxFace is one of the 6 box faces: outward normal, an in-plane
// reference direction for the face plane placement, an anchor corner, and
// the directed edge loop winding counter-clockwise around the normal.
type boxFace struct {
	normal geom.Vector3
	refDir geom.Vector3
	anchor int
	loop   [4]loopStep
}

var boxFaces = [6]boxFace{
	{geom.Vector3{Z: -1}, geom.Vector3{X: 1}, 0,
		[4]loopStep{{3, false}, {2, false}, {1, false}, {0, false}}},
	{geom.Vector3{Z: 1}, geom.Vector3{X: 1}, 4,
		[4]loopStep{{4, true}, {5, true}, {6, true}, {7, true}}},
	{geom.Vector3{Y: -1}, geom.Vector3{X: 1}, 0,
		[4]loopStep{{0, true}, {9, true}, {4, false}, {8, false}}},
	{geom.Vector3{X: 1}, geom.Vector3{Y: 1}, 1,
		[4]loopStep{{1, true}, {10, true}, {5, false}, {9, false}}},
	{geom.Vector3{Y: 1}, geom.Vector3{X: -1}, 2,
		[4]loopStep{{2, true}, {11, true}, {6, false}, {10, false}}},
	{geom.Vector3{X: -1}, geom.Vector3{Y: 1}, 0,
		[4]loopStep{{8, true}, {7, false}, {11, false}, {3, true}}},
}

// writeBoxSolid emits a box-shaped MANIFOLD_SOLID_BREP of the given size
// with its minimum corner at the local origin, and returns the solid's
// entity id. The size is in inches; placement into the assembly happens
// separately.
func (w *writer) writeBoxSolid(name string, size geom.Vector3) int {
	// Corner points and topological vertices.
	var points, vertices [8]int
	for i, c := range boxCorners {
		p := geom.Point3{X: c.X * size.X, Y: c.Y * size.Y, Z: c.Z * size.Z}
		points[i] = w.cartesianPoint(p)
		vertices[i] = w.entity(fmt.Sprintf("VERTEX_POINT('',%s)", ref(points[i])))
	}

	// Edge curves: each edge rides an infinite LINE through its start
	// point with a unit VECTOR along the edge direction.
	var edges [12]int
	for i, e := range boxEdges {
		dir := w.direction(e.dir)
		vec := w.entity(fmt.Sprintf("VECTOR('',%s,1.)", ref(dir)))
		line := w.entity(fmt.Sprintf("LINE('',%s,%s)", ref(points[e.start]), ref(vec)))
		edges[i] = w.entity(fmt.Sprintf("EDGE_CURVE('',%s,%s,%s,.T.)",
			ref(vertices[e.start]), ref(vertices[e.end]), ref(line)))
	}

	// Faces: an EDGE_LOOP of four ORIENTED_EDGEs bound to a PLANE.
	var faces [6]int
	for i, f := range boxFaces {
		var oriented [4]int
		for j, entry := range f.loop {
			sense := ".F."
			if entry.forward {
				sense = ".T."
			}
			oriented[j] = w.entity(fmt.Sprintf("ORIENTED_EDGE('',*,*,%s,%s)",
				ref(edges[entry.edge]), sense))
		}
		loop := w.entity(fmt.Sprintf("EDGE_LOOP('',%s)",
			refs(oriented[0], oriented[1], oriented[2], oriented[3])))
		bound := w.entity(fmt.Sprintf("FACE_OUTER_BOUND('',%s,.T.)", ref(loop)))

		anchor := boxCorners[f.anchor]
		placement := w.axisPlacement(
			geom.Point3{X: anchor.X * size.X, Y: anchor.Y * size.Y, Z: anchor.Z * size.Z},
			f.normal, f.refDir)
		plane := w.entity(fmt.Sprintf("PLANE('',%s)", ref(placement)))
		faces[i] = w.entity(fmt.Sprintf("ADVANCED_FACE('',(%s),%s,.T.)", ref(bound), ref(plane)))
	}

	shell := w.entity(fmt.Sprintf("CLOSED_SHELL('',%s)",
		refs(faces[0], faces[1], faces[2], faces[3], faces[4], faces[5])))
	return w.entity(fmt.Sprintf("MANIFOLD_SOLID_BREP(%s,%s)", str(name), ref(shell)))
}
