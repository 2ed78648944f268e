package brep

import "github.com/antimonylabs/autocrate/pkg/geom"

// VertexID is a handle to a vertex within one Solid.
type VertexID int

// EdgeID is a handle to an edge within one Solid.
type EdgeID int

// FaceID is a handle to a face within one Solid.
type FaceID int

// ShellID is a handle to a shell within one Solid.
type ShellID int

// NoShell marks a face that has not been assigned to a shell yet.
const NoShell ShellID = -1

// Vertex is a topological point. Owned exclusively by the Solid that
// created it.
type Vertex struct {
	ID    VertexID
	Point geom.Point3
}

// Edge connects two vertices. Storage is directed (Start to End) but the
// identity is undirected: direction is reinterpreted per use through the
// Forward flag on a LoopEntry, never stored on the edge itself. This is
// what lets one edge be shared by two adjacent faces traversed in
// opposite senses.
type Edge struct {
	ID    EdgeID
	Start VertexID
	End   VertexID
}

// LoopEntry is one step of a face boundary: an edge plus the direction it
// is traversed in.
type LoopEntry struct {
	Edge    EdgeID
	Forward bool
}

// Loop is an ordered, closed cycle of directed edge references bounding a
// face. Consecutive entries share an endpoint and the last entry closes
// back to the first.
type Loop struct {
	Entries []LoopEntry
}

// Surface describes the supporting surface of a face. Only Planar is
// topologically exact; Spherical and Conical faces are still bounded by
// straight-edge loops, so curvature is informative metadata.
type Surface interface {
	surface() // marker method restricting implementations to this package
}

// Planar is a flat supporting surface with an outward normal.
type Planar struct {
	Normal geom.Vector3
}

func (Planar) surface() {}

// Spherical tags a faceted face as lying on a sphere.
type Spherical struct {
	Center geom.Point3
	Radius float64
}

func (Spherical) surface() {}

// Conical tags a faceted face as lying on a cone.
type Conical struct {
	Apex      geom.Point3
	Axis      geom.Vector3
	HalfAngle float64
}

func (Conical) surface() {}

// Face is a bounded region of a surface with a single outer loop.
// Inner loops (holes) are not modeled.
type Face struct {
	ID      FaceID
	Surface Surface
	Outer   Loop
	Shell   ShellID // owning shell, or NoShell
}

// Shell is an unordered set of faces. Closed is set by construction when
// every edge of every face loop is shared by exactly two faces with
// opposite traversal direction; the kernel does not compute it.
type Shell struct {
	ID     ShellID
	Faces  []FaceID
	Closed bool
}
