package brep

import "github.com/antimonylabs/autocrate/pkg/geom"

// Solid owns every topological entity created for one shape. Handles are
// indices into the owning arenas and are never reused or invalidated
// during the Solid's lifetime. Handles from a different Solid are
// indistinguishable from local ones; passing them in is a caller bug the
// kernel cannot detect.
type Solid struct {
	vertices []Vertex
	edges    []Edge
	faces    []Face
	shells   []Shell
}

// New creates an empty solid.
func New() *Solid {
	return &Solid{}
}

// AddVertex appends a vertex at p and returns its handle. Handles count up
// from zero in creation order.
func (s *Solid) AddVertex(p geom.Point3) VertexID {
	id := VertexID(len(s.vertices))
	s.vertices = append(s.vertices, Vertex{ID: id, Point: p})
	return id
}

// AddEdge appends an edge from start to end and returns its handle.
// The endpoints are not checked here; Validate reports dangling references.
func (s *Solid) AddEdge(start, end VertexID) EdgeID {
	id := EdgeID(len(s.edges))
	s.edges = append(s.edges, Edge{ID: id, Start: start, End: end})
	return id
}

// AddFace appends a face with the given supporting surface and an empty
// outer loop, returning its handle.
func (s *Solid) AddFace(surface Surface) FaceID {
	id := FaceID(len(s.faces))
	s.faces = append(s.faces, Face{ID: id, Surface: surface, Shell: NoShell})
	return id
}

// AddShell appends an empty open shell and returns its handle.
func (s *Solid) AddShell() ShellID {
	id := ShellID(len(s.shells))
	s.shells = append(s.shells, Shell{ID: id})
	return id
}

// Vertex returns the vertex with the given handle, or nil if unknown.
func (s *Solid) Vertex(id VertexID) *Vertex {
	if id < 0 || int(id) >= len(s.vertices) {
		return nil
	}
	return &s.vertices[id]
}

// Edge returns the edge with the given handle, or nil if unknown.
func (s *Solid) Edge(id EdgeID) *Edge {
	if id < 0 || int(id) >= len(s.edges) {
		return nil
	}
	return &s.edges[id]
}

// Face returns the face with the given handle, or nil if unknown.
func (s *Solid) Face(id FaceID) *Face {
	if id < 0 || int(id) >= len(s.faces) {
		return nil
	}
	return &s.faces[id]
}

// Shell returns the shell with the given handle, or nil if unknown.
func (s *Solid) Shell(id ShellID) *Shell {
	if id < 0 || int(id) >= len(s.shells) {
		return nil
	}
	return &s.shells[id]
}

// VertexCount returns the number of vertices.
func (s *Solid) VertexCount() int { return len(s.vertices) }

// EdgeCount returns the number of edges.
func (s *Solid) EdgeCount() int { return len(s.edges) }

// FaceCount returns the number of faces.
func (s *Solid) FaceCount() int { return len(s.faces) }

// ShellCount returns the number of shells.
func (s *Solid) ShellCount() int { return len(s.shells) }

// EntryStart returns the vertex a loop entry departs from, respecting the
// traversal direction. Returns -1 for an unknown edge.
func (s *Solid) EntryStart(e LoopEntry) VertexID {
	edge := s.Edge(e.Edge)
	if edge == nil {
		return -1
	}
	if e.Forward {
		return edge.Start
	}
	return edge.End
}

// EntryEnd returns the vertex a loop entry arrives at, respecting the
// traversal direction. Returns -1 for an unknown edge.
func (s *Solid) EntryEnd(e LoopEntry) VertexID {
	edge := s.Edge(e.Edge)
	if edge == nil {
		return -1
	}
	if e.Forward {
		return edge.End
	}
	return edge.Start
}

// LoopVertices resolves a face's outer loop to the ordered vertex handles
// it visits (one per entry, the departure vertex of each). Entries with
// dangling edges are skipped.
func (s *Solid) LoopVertices(id FaceID) []VertexID {
	f := s.Face(id)
	if f == nil {
		return nil
	}
	verts := make([]VertexID, 0, len(f.Outer.Entries))
	for _, entry := range f.Outer.Entries {
		v := s.EntryStart(entry)
		if v < 0 {
			continue
		}
		verts = append(verts, v)
	}
	return verts
}

// BoundingBox returns the axis-aligned bounding box of all vertices.
// An empty solid yields the empty box.
func (s *Solid) BoundingBox() geom.BoundingBox {
	box := geom.Empty()
	for i := range s.vertices {
		box = box.ExtendPoint(s.vertices[i].Point)
	}
	return box
}

// attachFace records face membership in a shell and back-links the face.
// Used by the primitive generators when finishing a shape.
func (s *Solid) attachFace(shell ShellID, face FaceID) {
	sh := s.Shell(shell)
	f := s.Face(face)
	if sh == nil || f == nil {
		return
	}
	sh.Faces = append(sh.Faces, face)
	f.Shell = shell
}
