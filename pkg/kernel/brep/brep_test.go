package brep

import (
	"math"
	"testing"

	"github.com/antimonylabs/autocrate/pkg/geom"
)

func TestBoxMesh(t *testing.T) {
	k := New()
	solid := k.Box(2, 3, 4)

	mesh, err := k.ToMesh(solid)
	if err != nil {
		t.Fatalf("ToMesh() error: %v", err)
	}

	// Six quad faces, fan-triangulated into two triangles each.
	if got := mesh.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount() = %d, want 12", got)
	}
	if got := mesh.VertexCount(); got != 36 {
		t.Errorf("VertexCount() = %d, want 36", got)
	}
	if len(mesh.Normals) != len(mesh.Vertices) {
		t.Errorf("normals length %d != vertices length %d", len(mesh.Normals), len(mesh.Vertices))
	}
}

func TestBoxBoundingBox(t *testing.T) {
	k := New()
	solid := k.Box(2, 3, 4)

	box := solid.BoundingBox()
	if !box.Min.ApproxEqual(geom.Point3{}) {
		t.Errorf("Min = %v, want origin", box.Min)
	}
	if !box.Max.ApproxEqual(geom.Point3{X: 2, Y: 3, Z: 4}) {
		t.Errorf("Max = %v, want (2,3,4)", box.Max)
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	solid := k.Box(1, 1, 1)
	moved := k.Translate(solid, geom.Vector3{X: 10, Y: 20, Z: 30})

	box := moved.BoundingBox()
	if !box.Min.ApproxEqual(geom.Point3{X: 10, Y: 20, Z: 30}) {
		t.Errorf("translated Min = %v, want (10,20,30)", box.Min)
	}

	// The original is unchanged; translation is accumulated on the copy.
	orig := solid.BoundingBox()
	if !orig.Min.ApproxEqual(geom.Point3{}) {
		t.Errorf("original Min = %v after Translate, want origin", orig.Min)
	}

	again := k.Translate(moved, geom.Vector3{X: -10, Y: -20, Z: -30})
	if !again.BoundingBox().Min.ApproxEqual(geom.Point3{}) {
		t.Errorf("round-trip translate Min = %v, want origin", again.BoundingBox().Min)
	}
}

func TestTranslatedMeshMoves(t *testing.T) {
	k := New()
	solid := k.Translate(k.Box(1, 1, 1), geom.Vector3{X: 5})

	mesh, err := k.ToMesh(solid)
	if err != nil {
		t.Fatalf("ToMesh() error: %v", err)
	}
	for i := 0; i < len(mesh.Vertices); i += 3 {
		x := float64(mesh.Vertices[i])
		if x < 5-geom.Epsilon || x > 6+geom.Epsilon {
			t.Fatalf("vertex x = %v outside translated box [5,6]", x)
		}
	}
}

func TestCylinderMesh(t *testing.T) {
	k := New()
	n := 16
	solid := k.Cylinder(1, 2, n)

	mesh, err := k.ToMesh(solid)
	if err != nil {
		t.Fatalf("ToMesh() error: %v", err)
	}

	// Two n-gon caps fan into n-2 triangles each; n side quads into 2 each.
	want := 2*(n-2) + 2*n
	if got := mesh.TriangleCount(); got != want {
		t.Errorf("TriangleCount() = %d, want %d", got, want)
	}
}

func TestSegmentsClamped(t *testing.T) {
	k := New()
	// Non-positive segment counts fall back to the default instead of
	// producing degenerate geometry.
	solid := k.Cylinder(1, 1, 0)
	mesh, err := k.ToMesh(solid)
	if err != nil {
		t.Fatalf("ToMesh() error: %v", err)
	}
	if mesh.IsEmpty() {
		t.Error("mesh empty for clamped segment count")
	}
}

func TestSphereBoundingBox(t *testing.T) {
	k := New()
	solid := k.Sphere(2, 16)

	box := solid.BoundingBox()
	size := box.Size()
	// Faceted sphere inscribes the true sphere: extents within diameter.
	for _, dim := range []float64{size.X, size.Y, size.Z} {
		if dim > 4+geom.Epsilon || dim < 3 {
			t.Errorf("sphere bounding extent %v outside (3, 4]", dim)
		}
	}
	center := box.Center()
	if math.Abs(center.Z) > 0.2 {
		t.Errorf("sphere center z = %v, want near 0", center.Z)
	}
}

func TestConeMeshNormals(t *testing.T) {
	k := New()
	solid := k.Cone(1, 2, 8)

	mesh, err := k.ToMesh(solid)
	if err != nil {
		t.Fatalf("ToMesh() error: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("cone mesh empty")
	}
	// Normals are unit length (or zero only for degenerate facets, which
	// the cone should not produce).
	for i := 0; i < len(mesh.Normals); i += 3 {
		nx := float64(mesh.Normals[i])
		ny := float64(mesh.Normals[i+1])
		nz := float64(mesh.Normals[i+2])
		l := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if math.Abs(l-1) > 1e-4 {
			t.Fatalf("normal length %v at %d, want 1", l, i/3)
		}
	}
}
