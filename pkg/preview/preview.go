// Package preview walks a crate design and produces triangle meshes
// using a geometry kernel. One mesh is produced per part.
package preview

import (
	"fmt"

	"github.com/antimonylabs/autocrate/pkg/design"
	"github.com/antimonylabs/autocrate/pkg/geom"
	"github.com/antimonylabs/autocrate/pkg/kernel"
)

// Meshes produces one triangle mesh per non-degenerate part in the
// design, in deterministic part-ID order, using the provided geometry
// kernel. The previewer is read-only and never mutates the design.
func Meshes(d *design.Design, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if d == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	for _, part := range d.SortedParts() {
		if design.Degenerate(part.Box) {
			continue
		}

		mesh, err := partMesh(k, part)
		if err != nil {
			return nil, fmt.Errorf("preview: part %s: %w", part.ID, err)
		}
		mesh.PartName = part.Name
		meshes = append(meshes, mesh)
	}

	return meshes, nil
}

// partMesh builds the part's box at the origin and translates it to the
// part's placement before meshing.
func partMesh(k kernel.Kernel, part design.Part) (*kernel.Mesh, error) {
	size := part.Box.Size()
	solid := k.Box(size.X, size.Y, size.Z)
	solid = k.Translate(solid, geom.Vector3{
		X: part.Box.Min.X,
		Y: part.Box.Min.Y,
		Z: part.Box.Min.Z,
	})
	return k.ToMesh(solid)
}
