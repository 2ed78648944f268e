// Package kernel defines the abstract preview-geometry kernel interface.
// Implementations (brep, sdfx) produce triangle meshes for crate part
// previews behind this interface, so the rest of the system can swap the
// faceted B-Rep backend for the SDF backend without changing callers.
package kernel

import "github.com/antimonylabs/autocrate/pkg/geom"

// Solid is an opaque handle to a kernel solid. Implementations wrap their
// internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() geom.BoundingBox
}

// Kernel is the abstract preview-geometry kernel interface.
type Kernel interface {
	// Primitives. Box has its minimum corner at the origin; cylinder and
	// cone sit on the z=0 plane centered on the Z axis; sphere is
	// centered at the origin. Segment counts are advisory; smooth
	// backends ignore them.
	Box(x, y, z float64) Solid
	Cylinder(radius, height float64, segments int) Solid
	Sphere(radius float64, segments int) Solid
	Cone(radius, height float64, segments int) Solid

	// Translate moves a solid by the given displacement.
	Translate(s Solid, v geom.Vector3) Solid

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
