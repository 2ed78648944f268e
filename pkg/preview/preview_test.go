package preview

import (
	"testing"

	"github.com/antimonylabs/autocrate/pkg/design"
	"github.com/antimonylabs/autocrate/pkg/geom"
	"github.com/antimonylabs/autocrate/pkg/kernel/brep"
)

func testDesign() *design.Design {
	d := design.New("crate")
	d.AddPart(design.Part{
		ID:   "skid-1",
		Name: "Skid 1",
		Box: geom.NewBoundingBox(
			geom.Point3{X: 0, Y: 2, Z: 0},
			geom.Point3{X: 48, Y: 5.5, Z: 3.5},
		),
	})
	d.AddPart(design.Part{
		ID:   "floor",
		Name: "Floor panel",
		Box: geom.NewBoundingBox(
			geom.Point3{X: 0, Y: 0, Z: 3.5},
			geom.Point3{X: 48, Y: 40, Z: 4.25},
		),
	})
	return d
}

func TestMeshesPerPart(t *testing.T) {
	meshes, err := Meshes(testDesign(), brep.New())
	if err != nil {
		t.Fatalf("Meshes() error: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2", len(meshes))
	}

	// Sorted by part id: floor before skid-1.
	if meshes[0].PartName != "Floor panel" {
		t.Errorf("meshes[0].PartName = %q, want %q", meshes[0].PartName, "Floor panel")
	}
	if meshes[1].PartName != "Skid 1" {
		t.Errorf("meshes[1].PartName = %q, want %q", meshes[1].PartName, "Skid 1")
	}

	for _, m := range meshes {
		if m.TriangleCount() != 12 {
			t.Errorf("part %s: TriangleCount() = %d, want 12", m.PartName, m.TriangleCount())
		}
	}
}

func TestMeshesPlacement(t *testing.T) {
	meshes, err := Meshes(testDesign(), brep.New())
	if err != nil {
		t.Fatalf("Meshes() error: %v", err)
	}

	// The skid mesh lies inside the skid's world box.
	skid := meshes[1]
	for i := 0; i < len(skid.Vertices); i += 3 {
		y := float64(skid.Vertices[i+1])
		if y < 2-geom.Epsilon || y > 5.5+geom.Epsilon {
			t.Fatalf("skid vertex y = %v outside [2, 5.5]", y)
		}
	}
}

func TestMeshesSkipsDegenerate(t *testing.T) {
	d := testDesign()
	d.AddPart(design.Part{
		ID:   "a-flat",
		Name: "flat panel",
		Box: geom.NewBoundingBox(
			geom.Point3{},
			geom.Point3{X: 10, Y: 10, Z: 0},
		),
	})

	meshes, err := Meshes(d, brep.New())
	if err != nil {
		t.Fatalf("Meshes() error: %v", err)
	}
	if len(meshes) != 2 {
		t.Errorf("got %d meshes, want 2 (degenerate part skipped)", len(meshes))
	}
}

func TestMeshesNilDesign(t *testing.T) {
	meshes, err := Meshes(nil, brep.New())
	if err != nil {
		t.Fatalf("Meshes(nil) error: %v", err)
	}
	if meshes != nil {
		t.Errorf("Meshes(nil) = %v, want nil", meshes)
	}
}
