package design

import (
	"fmt"

	"github.com/antimonylabs/autocrate/pkg/geom"
)

// DegenerateTol is the dimension below which a part carries no exportable
// volume. The STEP writer skips such parts instead of erroring, so
// validation reports them as warnings, not errors.
const DegenerateTol = 1e-6

// ValidationError describes a blocking problem with a design.
type ValidationError struct {
	PartID  string
	Message string
}

func (e ValidationError) Error() string {
	if e.PartID == "" {
		return e.Message
	}
	return fmt.Sprintf("part %q: %s", e.PartID, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	PartID  string
	Message string
}

// ValidationResult bundles errors (blocking) and warnings (advisory).
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Validate runs all design checks. Validation is advisory: the STEP
// writer accepts any design and skips what it cannot export.
func Validate(d *Design) ValidationResult {
	var result ValidationResult
	result.Errors = append(result.Errors, validateIDs(d)...)
	result.Warnings = append(result.Warnings, validateDimensions(d)...)
	return result
}

// validateIDs checks that every part has a non-empty id and that no two
// parts share one. Duplicate ids would make the exporter's sort-by-id
// ordering ambiguous across inputs.
func validateIDs(d *Design) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool)

	for i := range d.Parts {
		p := &d.Parts[i]
		if p.ID == "" {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("part at index %d has an empty id", i),
			})
			continue
		}
		if seen[p.ID] {
			errs = append(errs, ValidationError{
				PartID:  p.ID,
				Message: "duplicate part id",
			})
		}
		seen[p.ID] = true
	}

	return errs
}

// validateDimensions warns about parts the exporter will skip: inverted
// boxes and boxes with a dimension at or below DegenerateTol.
func validateDimensions(d *Design) []ValidationWarning {
	var warnings []ValidationWarning

	for i := range d.Parts {
		p := &d.Parts[i]
		if p.Box.IsEmpty() {
			warnings = append(warnings, ValidationWarning{
				PartID:  p.ID,
				Message: "box is empty or inverted; part will not be exported",
			})
			continue
		}
		size := p.Box.Size()
		dims := []struct {
			axis string
			dim  float64
		}{{"width", size.X}, {"length", size.Y}, {"height", size.Z}}
		for _, a := range dims {
			axis, dim := a.axis, a.dim
			if dim <= DegenerateTol {
				warnings = append(warnings, ValidationWarning{
					PartID:  p.ID,
					Message: fmt.Sprintf("%s %.9f in is degenerate; part will not be exported", axis, dim),
				})
			}
		}
	}

	return warnings
}

// Degenerate reports whether a box should be skipped by the exporter.
func Degenerate(b geom.BoundingBox) bool {
	return b.IsDegenerate(DegenerateTol)
}
