package brep

import "fmt"

// ValidationError describes a single structural problem found in a solid.
type ValidationError struct {
	Message string
	Face    FaceID // offending face, or -1 if solid-level
}

func (e ValidationError) Error() string {
	if e.Face < 0 {
		return e.Message
	}
	return fmt.Sprintf("face %d: %s", e.Face, e.Message)
}

// Validate runs the structural sanity checks on the solid and returns all
// findings. An empty result means the solid passed. The checks catch
// construction bugs (dangling handles, open loops, bad entity counts);
// they are not a full 2-manifoldness proof. Validation is opt-in: the
// primitive generators never call it themselves.
func Validate(s *Solid) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateNonEmpty(s)...)
	if len(errs) > 0 {
		return errs
	}
	errs = append(errs, validateReferences(s)...)
	errs = append(errs, validateLoops(s)...)
	errs = append(errs, validateEuler(s)...)
	return errs
}

// IsValid reports whether the solid passes Validate. False for an empty
// solid or one with dangling references.
func (s *Solid) IsValid() bool {
	return len(Validate(s)) == 0
}

func validateNonEmpty(s *Solid) []ValidationError {
	var errs []ValidationError
	if len(s.vertices) == 0 {
		errs = append(errs, ValidationError{Message: "solid has no vertices", Face: -1})
	}
	if len(s.edges) == 0 {
		errs = append(errs, ValidationError{Message: "solid has no edges", Face: -1})
	}
	if len(s.faces) == 0 {
		errs = append(errs, ValidationError{Message: "solid has no faces", Face: -1})
	}
	if len(s.shells) == 0 {
		errs = append(errs, ValidationError{Message: "solid has no shells", Face: -1})
	}
	return errs
}

// validateReferences checks that every handle stored anywhere in the solid
// points at an entity that exists.
func validateReferences(s *Solid) []ValidationError {
	var errs []ValidationError

	for i := range s.edges {
		e := &s.edges[i]
		if s.Vertex(e.Start) == nil {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("edge %d start vertex %d does not exist", e.ID, e.Start),
				Face:    -1,
			})
		}
		if s.Vertex(e.End) == nil {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("edge %d end vertex %d does not exist", e.ID, e.End),
				Face:    -1,
			})
		}
	}

	for i := range s.faces {
		f := &s.faces[i]
		for _, entry := range f.Outer.Entries {
			if s.Edge(entry.Edge) == nil {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("loop references edge %d which does not exist", entry.Edge),
					Face:    f.ID,
				})
			}
		}
		if f.Shell != NoShell && s.Shell(f.Shell) == nil {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("face references shell %d which does not exist", f.Shell),
				Face:    f.ID,
			})
		}
	}

	for i := range s.shells {
		sh := &s.shells[i]
		for _, fid := range sh.Faces {
			if s.Face(fid) == nil {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("shell %d references face %d which does not exist", sh.ID, fid),
					Face:    -1,
				})
			}
		}
	}

	return errs
}

// validateLoops checks that every face loop is connected (consecutive
// entries share an endpoint) and closed (the last entry arrives back at
// the first entry's start).
func validateLoops(s *Solid) []ValidationError {
	var errs []ValidationError

	for i := range s.faces {
		f := &s.faces[i]
		entries := f.Outer.Entries
		if len(entries) < 3 {
			errs = append(errs, ValidationError{
				Message: fmt.Sprintf("outer loop has %d entries, need at least 3", len(entries)),
				Face:    f.ID,
			})
			continue
		}

		for j, entry := range entries {
			next := entries[(j+1)%len(entries)]
			if s.EntryEnd(entry) < 0 || s.EntryStart(next) < 0 {
				// Dangling edge, reported by validateReferences.
				break
			}
			if s.EntryEnd(entry) != s.EntryStart(next) {
				errs = append(errs, ValidationError{
					Message: fmt.Sprintf("loop breaks between entries %d and %d", j, (j+1)%len(entries)),
					Face:    f.ID,
				})
				break
			}
		}
	}

	return errs
}

// validateEuler applies the Euler characteristic check V - E + F == 2 when
// the solid is a single closed shell covering every face. The primitives
// built by this package are all genus zero, so a mismatch means the
// generator wired its topology wrong.
func validateEuler(s *Solid) []ValidationError {
	if len(s.shells) != 1 {
		return nil
	}
	sh := &s.shells[0]
	if !sh.Closed || len(sh.Faces) != len(s.faces) {
		return nil
	}

	chi := len(s.vertices) - len(s.edges) + len(s.faces)
	if chi != 2 {
		return []ValidationError{{
			Message: fmt.Sprintf("Euler characteristic V-E+F = %d, want 2 for a closed genus-0 shell", chi),
			Face:    -1,
		}}
	}
	return nil
}
