package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Part identifies one of the two package sequences shown on the page.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

// ErrUnknownPart is returned when a value does not name Part1 or Part2.
var ErrUnknownPart = errors.New("unknown part")

// Parts lists the parts in display order.
func Parts() []Part {
	return []Part{Part1, Part2}
}

func (p Part) Valid() bool {
	return p == Part1 || p == Part2
}

// String returns the slug used in URLs and test ids ("parte-1", "parte-2").
func (p Part) String() string {
	return "parte-" + strconv.Itoa(int(p))
}

// ParsePart accepts exactly "1", "2", "parte-1" and "parte-2", ignoring case
// and surrounding space. Other spellings of the numbers ("01", "+1") are rejected
// so each part has a single URL.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "parte-1":
		return Part1, nil
	case "2", "parte-2":
		return Part2, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPart, s)
}

// Tone selects the badge styling variant.
type Tone string

const (
	ToneRecommended Tone = "recommended"
	TonePremium     Tone = "premium"
)

func (t Tone) Valid() bool {
	return t == ToneRecommended || t == TonePremium
}

// Badge is the optional tag highlighting a package.
type Badge struct {
	Label string `yaml:"label" json:"label"`
	Tone  Tone   `yaml:"tone" json:"tone"`
}

// PackageRecord is one pricing tier shown as a card.
type PackageRecord struct {
	ID       int      `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Price    string   `yaml:"price" json:"price"`
	Time     string   `yaml:"time" json:"time"`
	Accent   string   `yaml:"accent" json:"accent"`
	Includes []string `yaml:"includes" json:"includes"`
	IdealFor string   `yaml:"ideal_for" json:"idealFor"`
	Badge    *Badge   `yaml:"badge,omitempty" json:"badge,omitempty"`
}

func (r PackageRecord) clone() PackageRecord {
	r.Includes = slices.Clone(r.Includes)
	if r.Badge != nil {
		b := *r.Badge
		r.Badge = &b
	}
	return r
}

// Panel holds the texts that change with the active part.
type Panel struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	CTA      string `yaml:"cta" json:"cta"`
}

// PageTexts holds the texts and links shared by both parts.
type PageTexts struct {
	Brand      string `yaml:"brand" json:"brand"`
	Helper     string `yaml:"helper" json:"helper"`
	Tagline    string `yaml:"tagline" json:"tagline"`
	Location   string `yaml:"location" json:"location"`
	Copyright  string `yaml:"copyright" json:"copyright"`
	Note       string `yaml:"note" json:"note"`
	Logo       string `yaml:"logo" json:"logo"`
	LogoAlt    string `yaml:"logo_alt" json:"logoAlt"`
	ContactURL string `yaml:"contact_url" json:"contactUrl"`
}

type section struct {
	panel    Panel
	packages []PackageRecord
}

// Catalog is the validated, read-only set of package records. It is safe for
// concurrent use; accessors return copies.
type Catalog struct {
	page     PageTexts
	sections map[Part]section
}

// Records returns the ordered sequence for p, or nil if p is not a valid part.
func (c *Catalog) Records(p Part) []PackageRecord {
	s, ok := c.sections[p]
	if !ok {
		return nil
	}
	out := make([]PackageRecord, len(s.packages))
	for i, r := range s.packages {
		out[i] = r.clone()
	}
	return out
}

func (c *Catalog) PartOne() []PackageRecord { return c.Records(Part1) }

func (c *Catalog) PartTwo() []PackageRecord { return c.Records(Part2) }

// All returns Part1's records followed by Part2's.
func (c *Catalog) All() []PackageRecord {
	return append(c.PartOne(), c.PartTwo()...)
}

// Find looks a record up by id and reports the part it belongs to.
func (c *Catalog) Find(id int) (PackageRecord, Part, bool) {
	for _, p := range Parts() {
		for _, r := range c.sections[p].packages {
			if r.ID == id {
				return r.clone(), p, true
			}
		}
	}
	return PackageRecord{}, 0, false
}

// Panel returns the title, subtitle and call-to-action label for p.
func (c *Catalog) Panel(p Part) (Panel, bool) {
	s, ok := c.sections[p]
	return s.panel, ok
}

func (c *Catalog) Page() PageTexts {
	return c.page
}
