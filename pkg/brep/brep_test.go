package brep

import (
	"testing"

	"github.com/antimonylabs/autocrate/pkg/geom"
)

func TestMakeBoxCounts(t *testing.T) {
	s := MakeBox(2, 3, 4)

	if got := s.VertexCount(); got != 8 {
		t.Errorf("VertexCount() = %d, want 8", got)
	}
	if got := s.EdgeCount(); got != 12 {
		t.Errorf("EdgeCount() = %d, want 12", got)
	}
	if got := s.FaceCount(); got != 6 {
		t.Errorf("FaceCount() = %d, want 6", got)
	}
	if got := s.ShellCount(); got != 1 {
		t.Errorf("ShellCount() = %d, want 1", got)
	}
	if !s.Shell(0).Closed {
		t.Error("box shell not marked closed")
	}
}

func TestMakeBoxBoundingBox(t *testing.T) {
	s := MakeBoxAt(geom.Point3{X: 1, Y: 2, Z: 3}, 2, 3, 4)
	box := s.BoundingBox()

	wantMin := geom.Point3{X: 1, Y: 2, Z: 3}
	wantMax := geom.Point3{X: 3, Y: 5, Z: 7}
	if !box.Min.ApproxEqual(wantMin) || !box.Max.ApproxEqual(wantMax) {
		t.Errorf("BoundingBox() = %v/%v, want %v/%v", box.Min, box.Max, wantMin, wantMax)
	}
}

func TestMakeCylinderCounts(t *testing.T) {
	tests := []struct {
		name     string
		segments int
		want     int // effective segment count after clamping
	}{
		{"sixteen segments", 16, 16},
		{"minimum", 3, 3},
		{"clamped below minimum", 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MakeCylinder(1, 2, tt.segments)
			n := tt.want

			if got := s.VertexCount(); got != 2*n {
				t.Errorf("VertexCount() = %d, want %d", got, 2*n)
			}
			if got := s.EdgeCount(); got != 3*n {
				t.Errorf("EdgeCount() = %d, want %d", got, 3*n)
			}
			if got := s.FaceCount(); got != n+2 {
				t.Errorf("FaceCount() = %d, want %d", got, n+2)
			}
		})
	}
}

func TestMakeSphereCounts(t *testing.T) {
	tests := []struct {
		name string
		u, v int
	}{
		{"8x4", 8, 4},
		{"minimum bands", 4, 2},
		{"16x8", 16, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MakeSphere(1, tt.u, tt.v)
			u, v := tt.u, tt.v

			if got, want := s.VertexCount(), 2+(v-1)*u; got != want {
				t.Errorf("VertexCount() = %d, want %d", got, want)
			}
			if got, want := s.EdgeCount(), (2*v-1)*u; got != want {
				t.Errorf("EdgeCount() = %d, want %d", got, want)
			}
			if got, want := s.FaceCount(), v*u; got != want {
				t.Errorf("FaceCount() = %d, want %d", got, want)
			}
		})
	}
}

func TestMakeConeCounts(t *testing.T) {
	n := 12
	s := MakeCone(1, 2, n)

	if got, want := s.VertexCount(), n+1; got != want {
		t.Errorf("VertexCount() = %d, want %d", got, want)
	}
	if got, want := s.EdgeCount(), 2*n; got != want {
		t.Errorf("EdgeCount() = %d, want %d", got, want)
	}
	if got, want := s.FaceCount(), n+1; got != want {
		t.Errorf("FaceCount() = %d, want %d", got, want)
	}
}

func TestPrimitivesValidate(t *testing.T) {
	tests := []struct {
		name  string
		solid *Solid
	}{
		{"box", MakeBox(1, 2, 3)},
		{"cylinder", MakeCylinder(1, 2, 8)},
		{"cylinder min segments", MakeCylinder(1, 2, 3)},
		{"sphere", MakeSphere(1, 8, 4)},
		{"sphere min bands", MakeSphere(1, 4, 2)},
		{"cone", MakeCone(1, 2, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errs := Validate(tt.solid); len(errs) > 0 {
				t.Errorf("Validate() returned %d errors, first: %v", len(errs), errs[0])
			}
			if !tt.solid.IsValid() {
				t.Error("IsValid() = false, want true")
			}
		})
	}
}

// Every edge of a closed shell must be traversed exactly twice, once in
// each direction.
func TestPrimitivesEdgeUseBalance(t *testing.T) {
	tests := []struct {
		name  string
		solid *Solid
	}{
		{"box", MakeBox(1, 1, 1)},
		{"cylinder", MakeCylinder(1, 2, 5)},
		{"sphere", MakeSphere(1, 6, 3)},
		{"cone", MakeCone(1, 1, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.solid
			forward := make(map[EdgeID]int)
			reverse := make(map[EdgeID]int)
			for fi := 0; fi < s.FaceCount(); fi++ {
				f := s.Face(FaceID(fi))
				for _, entry := range f.Outer.Entries {
					if entry.Forward {
						forward[entry.Edge]++
					} else {
						reverse[entry.Edge]++
					}
				}
			}
			for ei := 0; ei < s.EdgeCount(); ei++ {
				id := EdgeID(ei)
				if forward[id] != 1 || reverse[id] != 1 {
					t.Errorf("edge %d used %d forward / %d reverse, want 1/1",
						id, forward[id], reverse[id])
				}
			}
		})
	}
}

func TestEulerCharacteristic(t *testing.T) {
	tests := []struct {
		name  string
		solid *Solid
	}{
		{"box", MakeBox(1, 1, 1)},
		{"cylinder", MakeCylinder(1, 1, 10)},
		{"sphere", MakeSphere(1, 10, 5)},
		{"cone", MakeCone(1, 1, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.solid
			chi := s.VertexCount() - s.EdgeCount() + s.FaceCount()
			if chi != 2 {
				t.Errorf("V-E+F = %d, want 2", chi)
			}
		})
	}
}

func TestValidateEmptySolid(t *testing.T) {
	s := New()
	errs := Validate(s)
	if len(errs) == 0 {
		t.Fatal("Validate() of empty solid returned no errors")
	}
	if s.IsValid() {
		t.Error("IsValid() = true for empty solid, want false")
	}
}

func TestValidateOpenLoop(t *testing.T) {
	s := New()
	v0 := s.AddVertex(geom.Point3{})
	v1 := s.AddVertex(geom.Point3{X: 1})
	v2 := s.AddVertex(geom.Point3{Y: 1})
	e0 := s.AddEdge(v0, v1)
	e1 := s.AddEdge(v1, v2)
	e2 := s.AddEdge(v2, v0)

	// Reversed last entry breaks loop connectivity.
	f := s.AddFace(Planar{Normal: geom.Vector3{Z: 1}})
	s.Face(f).Outer = Loop{Entries: []LoopEntry{
		{Edge: e0, Forward: true},
		{Edge: e1, Forward: true},
		{Edge: e2, Forward: false},
	}}

	if s.IsValid() {
		t.Error("IsValid() = true for solid with broken loop, want false")
	}
}

func TestValidateShortLoop(t *testing.T) {
	s := New()
	v0 := s.AddVertex(geom.Point3{})
	v1 := s.AddVertex(geom.Point3{X: 1})
	e0 := s.AddEdge(v0, v1)

	f := s.AddFace(Planar{Normal: geom.Vector3{Z: 1}})
	s.Face(f).Outer = Loop{Entries: []LoopEntry{
		{Edge: e0, Forward: true},
		{Edge: e0, Forward: false},
	}}

	errs := Validate(s)
	if len(errs) == 0 {
		t.Fatal("Validate() accepted a two-entry loop")
	}
}

func TestGettersUnknownHandles(t *testing.T) {
	s := MakeBox(1, 1, 1)

	if s.Vertex(VertexID(99)) != nil {
		t.Error("Vertex(99) != nil for out-of-range handle")
	}
	if s.Edge(EdgeID(-1)) != nil {
		t.Error("Edge(-1) != nil for negative handle")
	}
	if s.Face(FaceID(100)) != nil {
		t.Error("Face(100) != nil for out-of-range handle")
	}
	if s.Shell(ShellID(5)) != nil {
		t.Error("Shell(5) != nil for out-of-range handle")
	}
}

func TestLoopVertices(t *testing.T) {
	s := MakeBox(1, 1, 1)

	for fi := 0; fi < s.FaceCount(); fi++ {
		verts := s.LoopVertices(FaceID(fi))
		if len(verts) != 4 {
			t.Fatalf("face %d: LoopVertices() returned %d vertices, want 4", fi, len(verts))
		}
		seen := make(map[VertexID]bool)
		for _, v := range verts {
			if seen[v] {
				t.Errorf("face %d: vertex %d repeated in loop", fi, v)
			}
			seen[v] = true
		}
	}
}

func TestEntryStartEnd(t *testing.T) {
	s := New()
	v0 := s.AddVertex(geom.Point3{})
	v1 := s.AddVertex(geom.Point3{X: 1})
	e := s.AddEdge(v0, v1)

	if got := s.EntryStart(LoopEntry{Edge: e, Forward: true}); got != v0 {
		t.Errorf("EntryStart(forward) = %d, want %d", got, v0)
	}
	if got := s.EntryEnd(LoopEntry{Edge: e, Forward: true}); got != v1 {
		t.Errorf("EntryEnd(forward) = %d, want %d", got, v1)
	}
	if got := s.EntryStart(LoopEntry{Edge: e, Forward: false}); got != v1 {
		t.Errorf("EntryStart(reversed) = %d, want %d", got, v1)
	}
	if got := s.EntryEnd(LoopEntry{Edge: e, Forward: false}); got != v0 {
		t.Errorf("EntryEnd(reversed) = %d, want %d", got, v0)
	}
}
