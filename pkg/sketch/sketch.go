package sketch

import "github.com/antimonylabs/autocrate/pkg/geom"

// PlaneKind enumerates the supported sketch planes.
type PlaneKind int

const (
	PlaneXY        PlaneKind = iota // world XY plane, normal +Z
	PlaneXZ                         // world XZ plane, normal +Y
	PlaneYZ                         // world YZ plane, normal +X
	PlaneArbitrary                  // any plane via an explicit frame
)

func (k PlaneKind) String() string {
	switch k {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	case PlaneArbitrary:
		return "arbitrary"
	default:
		return "unknown"
	}
}

// Plane is a sketch plane: one of the world-aligned planes or an
// arbitrary frame.
type Plane struct {
	Kind  PlaneKind
	Frame Frame // basis for the plane; world-aligned for the fixed kinds
}

// XYPlane returns the world XY sketch plane.
func XYPlane() Plane {
	return Plane{Kind: PlaneXY, Frame: Frame{
		Normal: geom.Vector3{Z: 1},
		U:      geom.Vector3{X: 1},
		V:      geom.Vector3{Y: 1},
	}}
}

// XZPlane returns the world XZ sketch plane.
func XZPlane() Plane {
	return Plane{Kind: PlaneXZ, Frame: Frame{
		Normal: geom.Vector3{Y: 1},
		U:      geom.Vector3{X: 1},
		V:      geom.Vector3{Z: 1},
	}}
}

// YZPlane returns the world YZ sketch plane.
func YZPlane() Plane {
	return Plane{Kind: PlaneYZ, Frame: Frame{
		Normal: geom.Vector3{X: 1},
		U:      geom.Vector3{Y: 1},
		V:      geom.Vector3{Z: 1},
	}}
}

// ArbitraryPlane returns a sketch plane built on the given frame.
func ArbitraryPlane(f Frame) Plane {
	return Plane{Kind: PlaneArbitrary, Frame: f}
}

// PointID is a handle to a 2D point within one Sketch.
type PointID int

// Entity is the interface for sketch entity payloads. Entities reference
// sketch points by handle.
type Entity interface {
	entity() // marker method restricting implementations to this package
}

// LineEntity is a segment between two sketch points.
type LineEntity struct {
	Start PointID
	End   PointID
}

func (LineEntity) entity() {}

// ArcEntity is a circular arc from Start to End around Center.
type ArcEntity struct {
	Start     PointID
	End       PointID
	Center    PointID
	Clockwise bool
}

func (ArcEntity) entity() {}

// CircleEntity is a full circle around a center point.
type CircleEntity struct {
	Center PointID
	Radius float64
}

func (CircleEntity) entity() {}

// PointEntity marks a bare reference point.
type PointEntity struct {
	Point PointID
}

func (PointEntity) entity() {}

// Sketch is an ordered collection of 2D points and entities on one plane.
type Sketch struct {
	Plane    Plane
	Points   []Point2
	Entities []Entity
}

// NewSketch creates an empty sketch on the given plane.
func NewSketch(plane Plane) *Sketch {
	return &Sketch{Plane: plane}
}

// AddPoint appends a point and returns its handle, counting up from zero.
func (s *Sketch) AddPoint(p Point2) PointID {
	id := PointID(len(s.Points))
	s.Points = append(s.Points, p)
	return id
}

// Point returns the point with the given handle, or nil if unknown.
func (s *Sketch) Point(id PointID) *Point2 {
	if id < 0 || int(id) >= len(s.Points) {
		return nil
	}
	return &s.Points[id]
}

// AddLine appends a line entity between two point handles.
func (s *Sketch) AddLine(start, end PointID) {
	s.Entities = append(s.Entities, LineEntity{Start: start, End: end})
}

// AddArc appends an arc entity.
func (s *Sketch) AddArc(start, end, center PointID, clockwise bool) {
	s.Entities = append(s.Entities, ArcEntity{Start: start, End: end, Center: center, Clockwise: clockwise})
}

// AddCircle appends a circle entity around a center handle.
func (s *Sketch) AddCircle(center PointID, radius float64) {
	s.Entities = append(s.Entities, CircleEntity{Center: center, Radius: radius})
}

// To3DPoint maps a sketch-local point into world coordinates through the
// plane's frame.
func (s *Sketch) To3DPoint(p Point2) geom.Point3 {
	return s.Plane.Frame.To3D(p)
}

// From3DPoint projects a world point into the sketch plane.
func (s *Sketch) From3DPoint(p geom.Point3) Point2 {
	return s.Plane.Frame.From3D(p)
}
