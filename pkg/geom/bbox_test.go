package geom

import (
	"math"
	"testing"
)

func TestNewBoundingBoxNormalizesCorners(t *testing.T) {
	b := NewBoundingBox(Point3{X: 5, Y: -1, Z: 3}, Point3{X: 1, Y: 2, Z: 0})
	wantMin := Point3{X: 1, Y: -1, Z: 0}
	wantMax := Point3{X: 5, Y: 2, Z: 3}
	if !b.Min.ApproxEqual(wantMin) || !b.Max.ApproxEqual(wantMax) {
		t.Errorf("NewBoundingBox() = %v/%v, want %v/%v", b.Min, b.Max, wantMin, wantMax)
	}
}

func TestEmptyBoxIsExtendIdentity(t *testing.T) {
	e := Empty()
	if !e.IsEmpty() {
		t.Fatal("Empty().IsEmpty() = false, want true")
	}

	b := NewBoundingBox(Point3{}, Point3{X: 1, Y: 2, Z: 3})
	got := e.Extend(b)
	if !got.Min.ApproxEqual(b.Min) || !got.Max.ApproxEqual(b.Max) {
		t.Errorf("Empty().Extend(b) = %v, want %v", got, b)
	}

	got = b.Extend(Empty())
	if !got.Min.ApproxEqual(b.Min) || !got.Max.ApproxEqual(b.Max) {
		t.Errorf("b.Extend(Empty()) = %v, want %v", got, b)
	}
}

func TestExtendUnion(t *testing.T) {
	a := NewBoundingBox(Point3{}, Point3{X: 1, Y: 1, Z: 1})
	b := NewBoundingBox(Point3{X: 2, Y: -1, Z: 0.5}, Point3{X: 3, Y: 0, Z: 2})

	u := a.Extend(b)
	wantMin := Point3{X: 0, Y: -1, Z: 0}
	wantMax := Point3{X: 3, Y: 1, Z: 2}
	if !u.Min.ApproxEqual(wantMin) || !u.Max.ApproxEqual(wantMax) {
		t.Errorf("Extend() = %v/%v, want %v/%v", u.Min, u.Max, wantMin, wantMax)
	}
}

func TestExtendPoint(t *testing.T) {
	b := Empty().ExtendPoint(Point3{X: 1, Y: 2, Z: 3})
	if b.IsEmpty() {
		t.Fatal("box with one point reported empty")
	}
	if !b.Min.ApproxEqual(b.Max) {
		t.Errorf("single-point box Min %v != Max %v", b.Min, b.Max)
	}
}

func TestSizeAndCenter(t *testing.T) {
	b := NewBoundingBox(Point3{X: 1, Y: 2, Z: 3}, Point3{X: 5, Y: 4, Z: 9})

	size := b.Size()
	wantSize := Vector3{X: 4, Y: 2, Z: 6}
	if !size.ApproxEqual(wantSize) {
		t.Errorf("Size() = %v, want %v", size, wantSize)
	}

	center := b.Center()
	wantCenter := Point3{X: 3, Y: 3, Z: 6}
	if !center.ApproxEqual(wantCenter) {
		t.Errorf("Center() = %v, want %v", center, wantCenter)
	}
}

func TestIsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		box  BoundingBox
		want bool
	}{
		{"solid box", NewBoundingBox(Point3{}, Point3{X: 1, Y: 1, Z: 1}), false},
		{"flat in z", NewBoundingBox(Point3{}, Point3{X: 1, Y: 1, Z: 1e-9}), true},
		{"line", NewBoundingBox(Point3{}, Point3{X: 1}), true},
		{"point", NewBoundingBox(Point3{}, Point3{}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.IsDegenerate(1e-6); got != tt.want {
				t.Errorf("IsDegenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmptySizeIsNotNaN(t *testing.T) {
	s := Empty().Size()
	if math.IsNaN(s.X) || math.IsNaN(s.Y) || math.IsNaN(s.Z) {
		t.Errorf("Empty().Size() contains NaN: %v", s)
	}
}
