package sketch

import (
	"testing"

	"github.com/antimonylabs/autocrate/pkg/geom"
)

func TestStandardPlanes(t *testing.T) {
	tests := []struct {
		name   string
		plane  Plane
		kind   PlaneKind
		normal geom.Vector3
	}{
		{"xy", XYPlane(), PlaneXY, geom.Vector3{Z: 1}},
		{"xz", XZPlane(), PlaneXZ, geom.Vector3{Y: 1}},
		{"yz", YZPlane(), PlaneYZ, geom.Vector3{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.plane.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.plane.Kind, tt.kind)
			}
			if !tt.plane.Frame.Normal.ApproxEqual(tt.normal) {
				t.Errorf("Normal = %v, want %v", tt.plane.Frame.Normal, tt.normal)
			}
		})
	}
}

func TestPlaneKindString(t *testing.T) {
	if got := PlaneXY.String(); got == "" {
		t.Error("PlaneXY.String() empty")
	}
	if PlaneXY.String() == PlaneArbitrary.String() {
		t.Error("distinct plane kinds share a String()")
	}
}

func TestSketchPoints(t *testing.T) {
	s := NewSketch(XYPlane())

	p0 := s.AddPoint(Point2{X: 1, Y: 2})
	p1 := s.AddPoint(Point2{X: 3, Y: 4})

	if got := s.Point(p0); got == nil || got.X != 1 || got.Y != 2 {
		t.Errorf("Point(%d) = %v, want (1,2)", p0, got)
	}
	if got := s.Point(p1); got == nil || got.X != 3 {
		t.Errorf("Point(%d) = %v, want (3,4)", p1, got)
	}
	if got := s.Point(PointID(99)); got != nil {
		t.Errorf("Point(99) = %v, want nil", got)
	}
}

func TestSketchEntities(t *testing.T) {
	s := NewSketch(XYPlane())
	a := s.AddPoint(Point2{X: 0, Y: 0})
	b := s.AddPoint(Point2{X: 1, Y: 0})
	c := s.AddPoint(Point2{X: 0.5, Y: 0.5})

	s.AddLine(a, b)
	s.AddArc(a, b, c, false)
	s.AddCircle(c, 2)

	if len(s.Entities) != 3 {
		t.Fatalf("got %d entities, want 3", len(s.Entities))
	}
	if _, ok := s.Entities[0].(LineEntity); !ok {
		t.Errorf("entity 0 is %T, want LineEntity", s.Entities[0])
	}
	if arc, ok := s.Entities[1].(ArcEntity); !ok {
		t.Errorf("entity 1 is %T, want ArcEntity", s.Entities[1])
	} else if arc.Clockwise {
		t.Error("arc marked clockwise, want counter-clockwise")
	}
	if circ, ok := s.Entities[2].(CircleEntity); !ok {
		t.Errorf("entity 2 is %T, want CircleEntity", s.Entities[2])
	} else if circ.Radius != 2 {
		t.Errorf("circle radius = %v, want 2", circ.Radius)
	}
}

func TestSketchTo3D(t *testing.T) {
	// A sketch on the XZ plane maps sketch-Y to world Z.
	s := NewSketch(XZPlane())

	p3 := s.To3DPoint(Point2{X: 2, Y: 5})
	want := geom.Point3{X: 2, Y: 0, Z: 5}
	if !p3.ApproxEqual(want) {
		t.Errorf("To3DPoint() = %v, want %v", p3, want)
	}

	back := s.From3DPoint(p3)
	if back.X != 2 || back.Y != 5 {
		t.Errorf("From3DPoint() = %v, want (2,5)", back)
	}
}
