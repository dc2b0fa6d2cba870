// internal/app/picker.go
package app

import "go-city-builder/internal/defs"

// FixedPicker always picks the same catalog index.
type FixedPicker int

// Pick returns the fixed index.
func (p FixedPicker) Pick(defs.Catalog) int {
	return int(p)
}

// SequencePicker picks templates by id in order, then falls back to Fallback
// (or the first template when Fallback is nil) once the ids run out.
type SequencePicker struct {
	IDs      []string
	Fallback TemplatePicker
	next     int
}

// Pick returns the index of the next id in the sequence, or -1 for an unknown id.
func (p *SequencePicker) Pick(catalog defs.Catalog) int {
	if p.next < len(p.IDs) {
		id := p.IDs[p.next]
		p.next++
		return catalog.Index(id)
	}
	if p.Fallback != nil {
		return p.Fallback.Pick(catalog)
	}
	if len(catalog) == 0 {
		return -1
	}
	return 0
}
