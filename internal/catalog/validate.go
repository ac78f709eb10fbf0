package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	ErrDuplicateID       = errors.New("duplicate package id")
	ErrEmptyIncludes     = errors.New("package has no included features")
	ErrInvalidTone       = errors.New("badge tone must be recommended or premium")
	ErrInvalidAccent     = errors.New("accent must be a #rrggbb color")
	ErrMissingField      = errors.New("required field is empty")
	ErrEmptyPart         = errors.New("part has no packages")
	ErrInvalidPanel      = errors.New("invalid panel")
	ErrInvalidContactURL = errors.New("contact url must be an absolute http(s) url")
)

var accentPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validate collects every problem in the document instead of stopping at the first.
func (d document) validate() error {
	var errs []error

	if err := d.Page.validate(); err != nil {
		errs = append(errs, err)
	}

	seenParts := make(map[Part]bool, len(d.Parts))
	seenIDs := make(map[int]Part)

	for _, s := range d.Parts {
		if !s.Part.Valid() {
			errs = append(errs, fmt.Errorf("%w: part %d is not 1 or 2", ErrInvalidPanel, s.Part))
			continue
		}
		if seenParts[s.Part] {
			errs = append(errs, fmt.Errorf("%w: part %d defined twice", ErrInvalidPanel, s.Part))
			continue
		}
		seenParts[s.Part] = true

		if blank(s.Title) || blank(s.Subtitle) || blank(s.CTA) {
			errs = append(errs, fmt.Errorf("%w: part %d needs title, subtitle and cta", ErrInvalidPanel, s.Part))
		}
		if len(s.Packages) == 0 {
			errs = append(errs, fmt.Errorf("%w: part %d", ErrEmptyPart, s.Part))
		}

		for _, r := range s.Packages {
			if prev, dup := seenIDs[r.ID]; dup {
				errs = append(errs, fmt.Errorf("%w: %d in part %d and part %d", ErrDuplicateID, r.ID, prev, s.Part))
			} else {
				seenIDs[r.ID] = s.Part
			}
			if err := r.validate(); err != nil {
				errs = append(errs, fmt.Errorf("part %d: %w", s.Part, err))
			}
		}
	}

	for _, p := range Parts() {
		if !seenParts[p] {
			errs = append(errs, fmt.Errorf("%w: part %d missing", ErrEmptyPart, p))
		}
	}

	return errors.Join(errs...)
}

func (r PackageRecord) validate() error {
	var errs []error
	wrap := func(err error, format string, args ...any) {
		errs = append(errs, fmt.Errorf("package %d: %w: "+format, append([]any{r.ID, err}, args...)...))
	}

	if r.ID <= 0 {
		wrap(ErrMissingField, "id must be positive")
	}
	required := []struct{ field, value string }{
		{"name", r.Name},
		{"price", r.Price},
		{"time", r.Time},
		{"ideal_for", r.IdealFor},
	}
	for _, f := range required {
		if blank(f.value) {
			wrap(ErrMissingField, "%s", f.field)
		}
	}
	if !accentPattern.MatchString(r.Accent) {
		wrap(ErrInvalidAccent, "%q", r.Accent)
	}
	if len(r.Includes) == 0 {
		wrap(ErrEmptyIncludes, "%d features", len(r.Includes))
	}
	for i, feature := range r.Includes {
		if blank(feature) {
			wrap(ErrMissingField, "includes[%d]", i)
		}
	}
	if r.Badge != nil {
		if !r.Badge.Tone.Valid() {
			wrap(ErrInvalidTone, "%q", r.Badge.Tone)
		}
		if blank(r.Badge.Label) {
			wrap(ErrMissingField, "badge.label")
		}
	}

	return errors.Join(errs...)
}

func (p PageTexts) validate() error {
	u, err := url.Parse(p.ContactURL)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidContactURL, p.ContactURL)
	}
	if blank(p.Brand) {
		return fmt.Errorf("page: %w: brand", ErrMissingField)
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
