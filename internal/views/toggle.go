package views

import (
	"fmt"

	"infografias.nextwaveia.mx/internal/catalog"
)

// ViewToggle holds which part of the catalog is shown. The zero value shows Part1.
// It is not safe for concurrent use; each page render owns its own toggle.
type ViewToggle struct {
	current catalog.Part
}

func NewViewToggle() *ViewToggle {
	return &ViewToggle{current: catalog.Part1}
}

// Current returns the active part.
func (t *ViewToggle) Current() catalog.Part {
	if t.current == 0 {
		return catalog.Part1
	}
	return t.current
}

// Select makes p the active part. Selecting the active part changes nothing.
// An invalid part leaves the state untouched.
func (t *ViewToggle) Select(p catalog.Part) error {
	if !p.Valid() {
		return fmt.Errorf("select %d: %w", p, catalog.ErrUnknownPart)
	}
	t.current = p
	return nil
}

// IsActive reports whether p is the active part.
func (t *ViewToggle) IsActive(p catalog.Part) bool {
	return t.Current() == p
}
