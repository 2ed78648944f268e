package brep

import (
	"math"

	"github.com/antimonylabs/autocrate/pkg/geom"
)

// The primitive generators are pure functions from parameters to a Solid.
// They never fail: numeric parameters are accepted as given, and segment
// counts are clamped to the geometric minimum instead of rejected. Each
// generator allocates all vertices first, then edges, then faces, wires
// every face's outer loop so that each edge is traversed exactly twice in
// opposite directions, and finishes with a single closed shell. None of
// them validate the result; IsValid is a separate, opt-in check.

// MakeBox builds an axis-aligned box with its minimum corner at the
// origin. Width, length, and height extend along X, Y, and Z.
func MakeBox(width, length, height float64) *Solid {
	return MakeBoxAt(geom.Point3{}, width, length, height)
}

// MakeBoxAt builds an axis-aligned box with its minimum corner at origin.
func MakeBoxAt(origin geom.Point3, width, length, height float64) *Solid {
	s := New()

	// Vertices: bottom ring 0-3 counter-clockwise seen from above, then
	// the top ring 4-7 in the same order.
	corners := [8]geom.Vector3{
		{X: 0, Y: 0, Z: 0}, {X: width, Y: 0, Z: 0}, {X: width, Y: length, Z: 0}, {X: 0, Y: length, Z: 0},
		{X: 0, Y: 0, Z: height}, {X: width, Y: 0, Z: height}, {X: width, Y: length, Z: height}, {X: 0, Y: length, Z: height},
	}
	var v [8]VertexID
	for i, c := range corners {
		v[i] = s.AddVertex(origin.Add(c))
	}

	// Edges: bottom ring 0-3, top ring 4-7, verticals 8-11.
	var e [12]EdgeID
	for i := 0; i < 4; i++ {
		e[i] = s.AddEdge(v[i], v[(i+1)%4])
	}
	for i := 0; i < 4; i++ {
		e[4+i] = s.AddEdge(v[4+i], v[4+(i+1)%4])
	}
	for i := 0; i < 4; i++ {
		e[8+i] = s.AddEdge(v[i], v[4+i])
	}

	// Faces. Each loop winds counter-clockwise around its outward normal,
	// so every edge ends up traversed once forward and once reversed by
	// the two faces sharing it.
	type faceSpec struct {
		normal  geom.Vector3
		entries []LoopEntry
	}
	specs := []faceSpec{
		{geom.Vector3{X: 0, Y: 0, Z: -1}, []LoopEntry{{e[3], false}, {e[2], false}, {e[1], false}, {e[0], false}}},
		{geom.Vector3{X: 0, Y: 0, Z: 1}, []LoopEntry{{e[4], true}, {e[5], true}, {e[6], true}, {e[7], true}}},
		{geom.Vector3{X: 0, Y: -1, Z: 0}, []LoopEntry{{e[0], true}, {e[9], true}, {e[4], false}, {e[8], false}}},
		{geom.Vector3{X: 1, Y: 0, Z: 0}, []LoopEntry{{e[1], true}, {e[10], true}, {e[5], false}, {e[9], false}}},
		{geom.Vector3{X: 0, Y: 1, Z: 0}, []LoopEntry{{e[2], true}, {e[11], true}, {e[6], false}, {e[10], false}}},
		{geom.Vector3{X: -1, Y: 0, Z: 0}, []LoopEntry{{e[8], true}, {e[7], false}, {e[11], false}, {e[3], true}}},
	}

	shell := s.AddShell()
	for _, spec := range specs {
		fid := s.AddFace(Planar{Normal: spec.normal})
		s.Face(fid).Outer = Loop{Entries: spec.entries}
		s.attachFace(shell, fid)
	}
	s.Shell(shell).Closed = true

	return s
}

// MakeCylinder builds a faceted cylinder of the given radius and height,
// axis along +Z with the base centered at the origin. The lateral surface
// becomes one planar quad per segment; segments below 3 are clamped.
func MakeCylinder(radius, height float64, segments int) *Solid {
	return MakeCylinderAt(geom.Point3{}, radius, height, segments)
}

// MakeCylinderAt builds a faceted cylinder with its base centered at base.
func MakeCylinderAt(base geom.Point3, radius, height float64, segments int) *Solid {
	if segments < 3 {
		segments = 3
	}
	s := New()

	// Vertices: bottom ring, then top ring, counter-clockwise from above.
	bottom := make([]VertexID, segments)
	top := make([]VertexID, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x, y := radius*math.Cos(theta), radius*math.Sin(theta)
		bottom[i] = s.AddVertex(base.Add(geom.Vector3{X: x, Y: y}))
	}
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x, y := radius*math.Cos(theta), radius*math.Sin(theta)
		top[i] = s.AddVertex(base.Add(geom.Vector3{X: x, Y: y, Z: height}))
	}

	// Edges: bottom ring, top ring, verticals.
	ringB := make([]EdgeID, segments)
	ringT := make([]EdgeID, segments)
	vert := make([]EdgeID, segments)
	for i := 0; i < segments; i++ {
		ringB[i] = s.AddEdge(bottom[i], bottom[(i+1)%segments])
	}
	for i := 0; i < segments; i++ {
		ringT[i] = s.AddEdge(top[i], top[(i+1)%segments])
	}
	for i := 0; i < segments; i++ {
		vert[i] = s.AddEdge(bottom[i], top[i])
	}

	shell := s.AddShell()

	// Bottom cap: ring reversed so the loop winds counter-clockwise
	// around the -Z outward normal.
	bcap := s.AddFace(Planar{Normal: geom.Vector3{Z: -1}})
	bloop := make([]LoopEntry, 0, segments)
	for i := segments - 1; i >= 0; i-- {
		bloop = append(bloop, LoopEntry{ringB[i], false})
	}
	s.Face(bcap).Outer = Loop{Entries: bloop}
	s.attachFace(shell, bcap)

	// Top cap: ring forward, counter-clockwise around +Z.
	tcap := s.AddFace(Planar{Normal: geom.Vector3{Z: 1}})
	tloop := make([]LoopEntry, 0, segments)
	for i := 0; i < segments; i++ {
		tloop = append(tloop, LoopEntry{ringT[i], true})
	}
	s.Face(tcap).Outer = Loop{Entries: tloop}
	s.attachFace(shell, tcap)

	// Side quads. The facet normal approximates the outward radial
	// direction at the facet midpoint.
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		mid := 2 * math.Pi * (float64(i) + 0.5) / float64(segments)
		fid := s.AddFace(Planar{Normal: geom.Vector3{X: math.Cos(mid), Y: math.Sin(mid)}})
		s.Face(fid).Outer = Loop{Entries: []LoopEntry{
			{ringB[i], true},
			{vert[next], true},
			{ringT[i], false},
			{vert[i], false},
		}}
		s.attachFace(shell, fid)
	}

	s.Shell(shell).Closed = true
	return s
}

// MakeSphere builds a faceted sphere centered at the origin: two polar
// triangle caps and quad bands between latitude rings. lonSegments below 4
// and latSegments below 2 are clamped. Every face carries a Spherical
// surface tag even though its edges are straight.
func MakeSphere(radius float64, lonSegments, latSegments int) *Solid {
	return MakeSphereAt(geom.Point3{}, radius, lonSegments, latSegments)
}

// MakeSphereAt builds a faceted sphere centered at center.
func MakeSphereAt(center geom.Point3, radius float64, lonSegments, latSegments int) *Solid {
	if lonSegments < 4 {
		lonSegments = 4
	}
	if latSegments < 2 {
		latSegments = 2
	}
	u, v := lonSegments, latSegments
	s := New()
	sphere := Spherical{Center: center, Radius: radius}

	// Vertices: north pole, then latitude rings top to bottom, then the
	// south pole. 2 + (v-1)*u vertices total.
	north := s.AddVertex(center.Add(geom.Vector3{Z: radius}))
	rings := make([][]VertexID, v-1)
	for k := 1; k < v; k++ {
		phi := math.Pi * float64(k) / float64(v)
		ring := make([]VertexID, u)
		for j := 0; j < u; j++ {
			theta := 2 * math.Pi * float64(j) / float64(u)
			ring[j] = s.AddVertex(center.Add(geom.Vector3{
				X: radius * math.Sin(phi) * math.Cos(theta),
				Y: radius * math.Sin(phi) * math.Sin(theta),
				Z: radius * math.Cos(phi),
			}))
		}
		rings[k-1] = ring
	}
	south := s.AddVertex(center.Add(geom.Vector3{Z: -radius}))

	// Meridional edges, pole to pole: v rows of u edges.
	meridian := make([][]EdgeID, v)
	for k := 0; k < v; k++ {
		row := make([]EdgeID, u)
		for j := 0; j < u; j++ {
			switch {
			case k == 0:
				row[j] = s.AddEdge(north, rings[0][j])
			case k == v-1:
				row[j] = s.AddEdge(rings[v-2][j], south)
			default:
				row[j] = s.AddEdge(rings[k-1][j], rings[k][j])
			}
		}
		meridian[k] = row
	}

	// Ring edges: one row per latitude ring.
	ringEdges := make([][]EdgeID, v-1)
	for k := 0; k < v-1; k++ {
		row := make([]EdgeID, u)
		for j := 0; j < u; j++ {
			row[j] = s.AddEdge(rings[k][j], rings[k][(j+1)%u])
		}
		ringEdges[k] = row
	}

	shell := s.AddShell()

	// North cap triangles.
	for j := 0; j < u; j++ {
		next := (j + 1) % u
		fid := s.AddFace(sphere)
		s.Face(fid).Outer = Loop{Entries: []LoopEntry{
			{meridian[0][j], true},
			{ringEdges[0][j], true},
			{meridian[0][next], false},
		}}
		s.attachFace(shell, fid)
	}

	// Latitude band quads.
	for k := 1; k < v-1; k++ {
		for j := 0; j < u; j++ {
			next := (j + 1) % u
			fid := s.AddFace(sphere)
			s.Face(fid).Outer = Loop{Entries: []LoopEntry{
				{meridian[k][j], true},
				{ringEdges[k][j], true},
				{meridian[k][next], false},
				{ringEdges[k-1][j], false},
			}}
			s.attachFace(shell, fid)
		}
	}

	// South cap triangles.
	for j := 0; j < u; j++ {
		next := (j + 1) % u
		fid := s.AddFace(sphere)
		s.Face(fid).Outer = Loop{Entries: []LoopEntry{
			{meridian[v-1][j], true},
			{meridian[v-1][next], false},
			{ringEdges[v-2][j], false},
		}}
		s.attachFace(shell, fid)
	}

	s.Shell(shell).Closed = true
	return s
}

// MakeCone builds a faceted cone with its base circle centered at the
// origin and the apex at height along +Z. Side faces carry a Conical
// surface tag; the base is planar. Segments below 3 are clamped.
func MakeCone(radius, height float64, segments int) *Solid {
	return MakeConeAt(geom.Point3{}, radius, height, segments)
}

// MakeConeAt builds a faceted cone with its base centered at base.
func MakeConeAt(base geom.Point3, radius, height float64, segments int) *Solid {
	if segments < 3 {
		segments = 3
	}
	s := New()

	ringV := make([]VertexID, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		ringV[i] = s.AddVertex(base.Add(geom.Vector3{
			X: radius * math.Cos(theta),
			Y: radius * math.Sin(theta),
		}))
	}
	apexPoint := base.Add(geom.Vector3{Z: height})
	apex := s.AddVertex(apexPoint)

	ring := make([]EdgeID, segments)
	slant := make([]EdgeID, segments)
	for i := 0; i < segments; i++ {
		ring[i] = s.AddEdge(ringV[i], ringV[(i+1)%segments])
	}
	for i := 0; i < segments; i++ {
		slant[i] = s.AddEdge(ringV[i], apex)
	}

	shell := s.AddShell()

	// Base: ring reversed, outward normal -Z.
	bface := s.AddFace(Planar{Normal: geom.Vector3{Z: -1}})
	bloop := make([]LoopEntry, 0, segments)
	for i := segments - 1; i >= 0; i-- {
		bloop = append(bloop, LoopEntry{ring[i], false})
	}
	s.Face(bface).Outer = Loop{Entries: bloop}
	s.attachFace(shell, bface)

	cone := Conical{
		Apex:      apexPoint,
		Axis:      geom.Vector3{Z: -1},
		HalfAngle: math.Atan2(radius, height),
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		fid := s.AddFace(cone)
		s.Face(fid).Outer = Loop{Entries: []LoopEntry{
			{ring[i], true},
			{slant[next], true},
			{slant[i], false},
		}}
		s.attachFace(shell, fid)
	}

	s.Shell(shell).Closed = true
	return s
}
