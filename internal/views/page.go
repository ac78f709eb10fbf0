package views

import (
	"fmt"

	"infografias.nextwaveia.mx/internal/catalog"
)

// ToggleOption is one button of the part switch.
type ToggleOption struct {
	Part   catalog.Part
	Label  string
	Href   string
	Active bool
	TestID string
}

// Page is the page shell: header, toggle, active panel, footer and call to action.
type Page struct {
	Part       catalog.Part
	Texts      catalog.PageTexts
	Panel      catalog.Panel
	Toggle     []ToggleOption
	Cards      []Card
	ContactURL string
}

// PartPath is the URL that shows part p.
func PartPath(p catalog.Part) string {
	return fmt.Sprintf("/parte/%d", int(p))
}

// NewPage builds the page for the toggle's current part.
func NewPage(c *catalog.Catalog, toggle *ViewToggle) (Page, error) {
	part := toggle.Current()

	panel, ok := c.Panel(part)
	if !ok {
		return Page{}, fmt.Errorf("page for %d: %w", part, catalog.ErrUnknownPart)
	}

	page := Page{
		Part:       part,
		Texts:      c.Page(),
		Panel:      panel,
		Cards:      NewCards(c.Records(part)),
		ContactURL: c.Page().ContactURL,
	}

	for _, p := range catalog.Parts() {
		page.Toggle = append(page.Toggle, ToggleOption{
			Part:   p,
			Label:  fmt.Sprintf("Parte %d", int(p)),
			Href:   PartPath(p),
			Active: toggle.IsActive(p),
			TestID: fmt.Sprintf("button-toggle-part%d", int(p)),
		})
	}

	return page, nil
}

// PageFor selects p on a fresh toggle and builds its page.
func PageFor(c *catalog.Catalog, p catalog.Part) (Page, error) {
	toggle := NewViewToggle()
	if err := toggle.Select(p); err != nil {
		return Page{}, err
	}
	return NewPage(c, toggle)
}
