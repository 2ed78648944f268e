// Package brep implements the kernel.Kernel interface on top of this
// repo's own boundary-representation kernel. Solids are the faceted
// primitives from pkg/brep; meshing fan-triangulates each face loop, so
// the preview shows exactly the facets the B-Rep carries.
package brep

import (
	"fmt"

	topo "github.com/antimonylabs/autocrate/pkg/brep"
	"github.com/antimonylabs/autocrate/pkg/geom"
	"github.com/antimonylabs/autocrate/pkg/kernel"
)

// Compile-time interface checks.
var _ kernel.Kernel = (*BrepKernel)(nil)
var _ kernel.Solid = (*brepSolid)(nil)

// defaultSegments is used when a caller passes a non-positive segment
// count; the generators clamp further as needed.
const defaultSegments = 32

// brepSolid wraps a topological solid plus an accumulated translation.
// The underlying solid is immutable once built; translation is applied
// at meshing time.
type brepSolid struct {
	s      *topo.Solid
	offset geom.Vector3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *brepSolid) BoundingBox() geom.BoundingBox {
	box := s.s.BoundingBox()
	if box.IsEmpty() {
		return box
	}
	return geom.BoundingBox{
		Min: box.Min.Add(s.offset),
		Max: box.Max.Add(s.offset),
	}
}

// BrepKernel implements kernel.Kernel using pkg/brep.
type BrepKernel struct{}

// New returns a new BrepKernel.
func New() *BrepKernel {
	return &BrepKernel{}
}

func segmentsOrDefault(segments int) int {
	if segments <= 0 {
		return defaultSegments
	}
	return segments
}

// Box creates a box with its minimum corner at the origin.
func (k *BrepKernel) Box(x, y, z float64) kernel.Solid {
	return &brepSolid{s: topo.MakeBox(x, y, z)}
}

// Cylinder creates a faceted cylinder with its base centered at the origin.
func (k *BrepKernel) Cylinder(radius, height float64, segments int) kernel.Solid {
	return &brepSolid{s: topo.MakeCylinder(radius, height, segmentsOrDefault(segments))}
}

// Sphere creates a faceted sphere centered at the origin.
func (k *BrepKernel) Sphere(radius float64, segments int) kernel.Solid {
	n := segmentsOrDefault(segments)
	return &brepSolid{s: topo.MakeSphere(radius, n, n/2)}
}

// Cone creates a faceted cone with its base centered at the origin.
func (k *BrepKernel) Cone(radius, height float64, segments int) kernel.Solid {
	return &brepSolid{s: topo.MakeCone(radius, height, segmentsOrDefault(segments))}
}

// Translate moves a solid by v. The topology is shared; only the offset
// changes.
func (k *BrepKernel) Translate(s kernel.Solid, v geom.Vector3) kernel.Solid {
	bs := s.(*brepSolid)
	return &brepSolid{s: bs.s, offset: bs.offset.Add(v)}
}

// ToMesh converts a solid to a triangle mesh by fan-triangulating every
// face loop around its first vertex.
func (k *BrepKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	bs := s.(*brepSolid)
	solid := bs.s

	mesh := &kernel.Mesh{}
	for fi := 0; fi < solid.FaceCount(); fi++ {
		fid := topo.FaceID(fi)
		verts := solid.LoopVertices(fid)
		if len(verts) < 3 {
			return nil, fmt.Errorf("brep mesh: face %d has %d loop vertices, need at least 3", fid, len(verts))
		}

		pts := make([]geom.Point3, len(verts))
		for i, vid := range verts {
			v := solid.Vertex(vid)
			if v == nil {
				return nil, fmt.Errorf("brep mesh: face %d references unknown vertex %d", fid, vid)
			}
			pts[i] = v.Point.Add(bs.offset)
		}

		n := faceNormal(solid.Face(fid), pts)
		for i := 1; i < len(pts)-1; i++ {
			appendTriangle(mesh, pts[0], pts[i], pts[i+1], n)
		}
	}

	return mesh, nil
}

// faceNormal prefers the stored planar normal; curved surface tags fall
// back to the facet's own geometric normal.
func faceNormal(f *topo.Face, pts []geom.Point3) geom.Vector3 {
	if planar, ok := f.Surface.(topo.Planar); ok {
		return planar.Normal
	}
	return pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[1])).Normalize()
}

func appendTriangle(mesh *kernel.Mesh, a, b, c geom.Point3, n geom.Vector3) {
	base := uint32(mesh.VertexCount())
	for _, p := range []geom.Point3{a, b, c} {
		mesh.Vertices = append(mesh.Vertices, float32(p.X), float32(p.Y), float32(p.Z))
		mesh.Normals = append(mesh.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	mesh.Indices = append(mesh.Indices, base, base+1, base+2)
}
