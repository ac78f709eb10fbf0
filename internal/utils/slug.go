package utils

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// Slugify lowercases label with Spanish casing rules and replaces every run of
// whitespace with a single hyphen. Accents and punctuation are kept.
func Slugify(label string) string {
	lower := cases.Lower(language.Spanish).String(label)
	return whitespaceRun.ReplaceAllString(lower, "-")
}
