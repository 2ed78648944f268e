package step

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antimonylabs/autocrate/pkg/geom"
)

// writer accumulates a Part-21 DATA section. Entity ids come from a
// single monotonically increasing counter shared across the whole file;
// nothing is renumbered or deduplicated. Every reference points at an
// entity emitted earlier, so the file never contains forward references.
type writer struct {
	b    strings.Builder
	next int
}

func newWriter() *writer {
	return &writer{next: 1}
}

// raw appends a line outside the entity numbering (header/footer syntax).
func (w *writer) raw(line string) {
	w.b.WriteString(line)
	w.b.WriteString("\n")
}

// entity emits one numbered entity instance and returns its id.
func (w *writer) entity(def string) int {
	id := w.next
	w.next++
	fmt.Fprintf(&w.b, "#%d=%s;\n", id, def)
	return id
}

func (w *writer) String() string {
	return w.b.String()
}

// fmtReal formats a float in Part-21 real syntax: shortest round-trip form,
// always carrying a decimal point.
func fmtReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s
}

// str quotes a string literal, doubling embedded apostrophes.
func str(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// ref formats an entity reference.
func ref(id int) string {
	return "#" + strconv.Itoa(id)
}

// refs formats a parenthesized reference list.
func refs(ids ...int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = ref(id)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// cartesianPoint emits a CARTESIAN_POINT and returns its id.
func (w *writer) cartesianPoint(p geom.Point3) int {
	return w.entity(fmt.Sprintf("CARTESIAN_POINT('',(%s,%s,%s))",
		fmtReal(p.X), fmtReal(p.Y), fmtReal(p.Z)))
}

// direction emits a DIRECTION and returns its id.
func (w *writer) direction(v geom.Vector3) int {
	return w.entity(fmt.Sprintf("DIRECTION('',(%s,%s,%s))",
		fmtReal(v.X), fmtReal(v.Y), fmtReal(v.Z)))
}

// axisPlacement emits an AXIS2_PLACEMENT_3D at location with the given
// axis (z) and reference (x) directions, and returns its id.
func (w *writer) axisPlacement(location geom.Point3, axis, refDir geom.Vector3) int {
	loc := w.cartesianPoint(location)
	z := w.direction(axis)
	x := w.direction(refDir)
	return w.entity(fmt.Sprintf("AXIS2_PLACEMENT_3D('',%s,%s,%s)", ref(loc), ref(z), ref(x)))
}

// fileContext holds the shared application and geometric context entities
// every representation in the file references.
type fileContext struct {
	appCtx   int
	prodCtx  int
	defCtx   int
	inchUnit int
	geomCtx  int
}

// writeContext emits the application protocol, the inch unit (a
// CONVERSION_BASED_UNIT pinned to 25.4 millimetres; downstream importers
// rely on this exact ratio), and the global geometric context.
func (w *writer) writeContext() fileContext {
	var c fileContext

	c.appCtx = w.entity("APPLICATION_CONTEXT('managed model based 3d engineering')")
	w.entity(fmt.Sprintf(
		"APPLICATION_PROTOCOL_DEFINITION('international standard','ap242_managed_model_based_3d_engineering',2014,%s)",
		ref(c.appCtx)))
	c.prodCtx = w.entity(fmt.Sprintf("PRODUCT_CONTEXT('',%s,'mechanical')", ref(c.appCtx)))
	c.defCtx = w.entity(fmt.Sprintf("PRODUCT_DEFINITION_CONTEXT('part definition',%s,'design')", ref(c.appCtx)))

	mm := w.entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	dimExp := w.entity("DIMENSIONAL_EXPONENTS(1.,0.,0.,0.,0.,0.,0.)")
	inchMeasure := w.entity(fmt.Sprintf("LENGTH_MEASURE_WITH_UNIT(LENGTH_MEASURE(25.4),%s)", ref(mm)))
	c.inchUnit = w.entity(fmt.Sprintf("(CONVERSION_BASED_UNIT('INCH',%s)LENGTH_UNIT()NAMED_UNIT(%s))",
		ref(inchMeasure), ref(dimExp)))
	radian := w.entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	steradian := w.entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	uncertainty := w.entity(fmt.Sprintf(
		"UNCERTAINTY_MEASURE_WITH_UNIT(LENGTH_MEASURE(1.E-4),%s,'distance_accuracy_value','confusion accuracy')",
		ref(c.inchUnit)))
	c.geomCtx = w.entity(fmt.Sprintf(
		"(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNCERTAINTY_ASSIGNED_CONTEXT((%s))GLOBAL_UNIT_ASSIGNED_CONTEXT((%s,%s,%s))REPRESENTATION_CONTEXT('Context #1','3D Context'))",
		ref(uncertainty), ref(c.inchUnit), ref(radian), ref(steradian)))

	return c
}

// productChain is one PRODUCT / PRODUCT_DEFINITION / shape chain, either
// for the root assembly or for one part.
type productChain struct {
	product    int
	definition int
	shape      int // PRODUCT_DEFINITION_SHAPE
}

// writeProduct emits a product chain. The caller attaches a shape
// representation separately via SHAPE_DEFINITION_REPRESENTATION.
func (w *writer) writeProduct(c fileContext, id, name string) productChain {
	var p productChain
	p.product = w.entity(fmt.Sprintf("PRODUCT(%s,%s,'',(%s))", str(id), str(name), ref(c.prodCtx)))
	formation := w.entity(fmt.Sprintf("PRODUCT_DEFINITION_FORMATION('','',%s)", ref(p.product)))
	p.definition = w.entity(fmt.Sprintf("PRODUCT_DEFINITION('design','',%s,%s)",
		ref(formation), ref(c.defCtx)))
	p.shape = w.entity(fmt.Sprintf("PRODUCT_DEFINITION_SHAPE('','',%s)", ref(p.definition)))
	return p
}
