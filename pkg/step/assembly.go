package step

import (
	"fmt"

	"github.com/antimonylabs/autocrate/pkg/design"
	"github.com/antimonylabs/autocrate/pkg/geom"
)

// writePart emits one part's geometry, its product chain, and the
// assembly wiring that places it at its box's minimum corner inside the
// root assembly. Identical geometry in two parts yields two independent
// entity chains; per-part independence is preferred over file size.
func (w *writer) writePart(ctx fileContext, root productChain, rootAxis, rootRep int, part design.Part) {
	solid := w.writeBoxSolid(part.Name, part.Box.Size())

	partAxis := w.axisPlacement(geom.Point3{}, geom.Vector3{Z: 1}, geom.Vector3{X: 1})
	partRep := w.entity(fmt.Sprintf("ADVANCED_BREP_SHAPE_REPRESENTATION(%s,(%s,%s),%s)",
		str(part.Name), ref(partAxis), ref(solid), ref(ctx.geomCtx)))

	chain := w.writeProduct(ctx, part.ID, part.Name)
	w.entity(fmt.Sprintf("SHAPE_DEFINITION_REPRESENTATION(%s,%s)", ref(chain.shape), ref(partRep)))

	// Placement: the part's local origin lands on the box min corner in
	// world inches.
	placement := w.axisPlacement(part.Box.Min, geom.Vector3{Z: 1}, geom.Vector3{X: 1})
	transform := w.entity(fmt.Sprintf("ITEM_DEFINED_TRANSFORMATION('','',%s,%s)",
		ref(rootAxis), ref(placement)))
	relationship := w.entity(fmt.Sprintf(
		"(REPRESENTATION_RELATIONSHIP('','',%s,%s)REPRESENTATION_RELATIONSHIP_WITH_TRANSFORMATION(%s)SHAPE_REPRESENTATION_RELATIONSHIP())",
		ref(partRep), ref(rootRep), ref(transform)))

	occurrence := w.entity(fmt.Sprintf("NEXT_ASSEMBLY_USAGE_OCCURRENCE(%s,%s,'',%s,%s,$)",
		str(part.ID), str(part.Name), ref(root.definition), ref(chain.definition)))
	occurrenceShape := w.entity(fmt.Sprintf("PRODUCT_DEFINITION_SHAPE('placement','',%s)",
		ref(occurrence)))
	w.entity(fmt.Sprintf("CONTEXT_DEPENDENT_SHAPE_REPRESENTATION(%s,%s)",
		ref(relationship), ref(occurrenceShape)))
}

// writeBoundingBoxPMI emits three overall-dimension properties computed
// from the union bounding box of the included (non-skipped) parts.
func (w *writer) writeBoundingBoxPMI(ctx fileContext, root productChain, parts []design.Part) {
	box := geom.Empty()
	for i := range parts {
		box = box.Extend(parts[i].Box)
	}
	size := box.Size()

	dims := []struct {
		name  string
		value float64
	}{
		{"overall_width_in", size.X},
		{"overall_length_in", size.Y},
		{"overall_height_in", size.Z},
	}

	for _, dim := range dims {
		item := w.entity(fmt.Sprintf("MEASURE_REPRESENTATION_ITEM(%s,LENGTH_MEASURE(%s),%s)",
			str(dim.name), fmtReal(dim.value), ref(ctx.inchUnit)))
		rep := w.entity(fmt.Sprintf("REPRESENTATION('bounding box',(%s),%s)",
			ref(item), ref(ctx.geomCtx)))
		property := w.entity(fmt.Sprintf("PROPERTY_DEFINITION(%s,'overall bounding box dimension',%s)",
			str(dim.name), ref(root.definition)))
		w.entity(fmt.Sprintf("PROPERTY_DEFINITION_REPRESENTATION(%s,%s)", ref(property), ref(rep)))
	}
}
