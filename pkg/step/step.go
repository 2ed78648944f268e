// Package step serializes crate designs into ISO-10303-21 ("STEP")
// Part-21 text in an AP242 subset: one box-shaped MANIFOLD_SOLID_BREP per
// part, a true multi-part assembly via placements and
// NEXT_ASSEMBLY_USAGE_OCCURRENCE, inch units, and optional bounding-box
// PMI properties. Output is byte-for-byte reproducible for a given
// design: the header carries a fixed placeholder timestamp and parts are
// emitted sorted by id regardless of input order.
package step

import (
	"fmt"

	"github.com/antimonylabs/autocrate/pkg/design"
	"github.com/antimonylabs/autocrate/pkg/geom"
)

// fixedTimestamp keeps two exports of the same design byte-identical.
// Build artifacts and tests diff generated files, so the header must not
// depend on the wall clock.
const fixedTimestamp = "2024-01-01T00:00:00"

// ExportOptions configures one export.
type ExportOptions struct {
	// ProductName labels the root assembly product.
	ProductName string
	// IncludePMI adds overall bounding-box dimension properties.
	IncludePMI bool
}

// ExportAP242 serializes the design to STEP Part-21 text. It never fails:
// parts whose box has any dimension at or below 1e-6 inch are silently
// skipped, so the result may legitimately contain zero solids while still
// being a well-formed file.
func ExportAP242(d *design.Design, opts ExportOptions) string {
	w := newWriter()

	w.raw("ISO-10303-21;")
	w.raw("HEADER;")
	w.raw("FILE_DESCRIPTION(('AutoCrate crate assembly'),'2;1');")
	w.raw(fmt.Sprintf("FILE_NAME('crate_model.step','%s',('AutoCrate'),('Antimony Labs'),'AutoCrate','AutoCrate','');",
		fixedTimestamp))
	w.raw("FILE_SCHEMA(('AP242_MANAGED_MODEL_BASED_3D_ENGINEERING_MIM_LATEST'));")
	w.raw("ENDSEC;")
	w.raw("DATA;")

	ctx := w.writeContext()

	// Root assembly product and its (empty) shape representation anchored
	// at the world origin.
	root := w.writeProduct(ctx, opts.ProductName, opts.ProductName)
	rootAxis := w.axisPlacement(geom.Point3{}, geom.Vector3{Z: 1}, geom.Vector3{X: 1})
	rootRep := w.entity(fmt.Sprintf("SHAPE_REPRESENTATION(%s,(%s),%s)",
		str(opts.ProductName), ref(rootAxis), ref(ctx.geomCtx)))
	w.entity(fmt.Sprintf("SHAPE_DEFINITION_REPRESENTATION(%s,%s)", ref(root.shape), ref(rootRep)))

	// Emission order is the sorted part order; entity numbering is purely
	// a side effect of it.
	included := make([]design.Part, 0, len(d.Parts))
	for _, part := range d.SortedParts() {
		if design.Degenerate(part.Box) {
			continue
		}
		included = append(included, part)
		w.writePart(ctx, root, rootAxis, rootRep, part)
	}

	if opts.IncludePMI {
		w.writeBoundingBoxPMI(ctx, root, included)
	}

	w.raw("ENDSEC;")
	w.raw("END-ISO-10303-21;")
	return w.String()
}
