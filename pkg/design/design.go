// Package design defines the crate design input model for AutoCrate: a
// named collection of labeled, positioned boxes in a single shared world
// frame, with advisory validation. All coordinates are in inches.
package design

import (
	"sort"

	"github.com/antimonylabs/autocrate/pkg/geom"
)

// DefaultUnits is the only unit system the exporter emits.
const DefaultUnits = "in"

// Part is one labeled box of a crate design: a stable string id, a
// display name, a material/category tag (not used geometrically), and an
// axis-aligned bounding box in world inches.
type Part struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Material string           `json:"material,omitempty"`
	Box      geom.BoundingBox `json:"box"`
}

// Design is a complete crate design: an ordered list of parts.
type Design struct {
	Name  string `json:"name"`
	Parts []Part `json:"parts"`
}

// New creates an empty design with the given name.
func New(name string) *Design {
	return &Design{Name: name}
}

// AddPart appends a part to the design. It does not check for duplicate
// ids; Validate reports those.
func (d *Design) AddPart(p Part) {
	d.Parts = append(d.Parts, p)
}

// Lookup returns the first part with the given id, or nil.
func (d *Design) Lookup(id string) *Part {
	for i := range d.Parts {
		if d.Parts[i].ID == id {
			return &d.Parts[i]
		}
	}
	return nil
}

// SortedParts returns a copy of the parts sorted ascending by id. The
// exporter emits parts in this order so its output does not depend on the
// order the caller supplied them in.
func (d *Design) SortedParts() []Part {
	parts := make([]Part, len(d.Parts))
	copy(parts, d.Parts)
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].ID < parts[j].ID
	})
	return parts
}

// BoundingBox returns the union bounding box of all parts, folding from
// the empty box.
func (d *Design) BoundingBox() geom.BoundingBox {
	box := geom.Empty()
	for i := range d.Parts {
		box = box.Extend(d.Parts[i].Box)
	}
	return box
}

// PartCount returns the number of parts.
func (d *Design) PartCount() int {
	return len(d.Parts)
}
