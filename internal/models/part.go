package models

import "infografias.nextwaveia.mx/internal/catalog"

// PartEntry is the API view of one part: its panel texts and packages.
type PartEntry struct {
	Part       int                     `json:"part"`
	Title      string                  `json:"title"`
	Subtitle   string                  `json:"subtitle"`
	CTA        string                  `json:"cta"`
	ContactURL string                  `json:"contactUrl"`
	Currency   string                  `json:"currency"`
	Packages   []catalog.PackageRecord `json:"packages"`
}

func NewPartEntry(part catalog.Part, panel catalog.Panel, contactURL, currency string, packages []catalog.PackageRecord) PartEntry {
	return PartEntry{
		Part:       int(part),
		Title:      panel.Title,
		Subtitle:   panel.Subtitle,
		CTA:        panel.CTA,
		ContactURL: contactURL,
		Currency:   currency,
		Packages:   packages,
	}
}

// PackageEntry is one package plus the part it is listed under.
type PackageEntry struct {
	catalog.PackageRecord
	Part     int    `json:"part"`
	Currency string `json:"currency"`
}

func NewPackageEntry(r catalog.PackageRecord, part catalog.Part, currency string) PackageEntry {
	return PackageEntry{
		PackageRecord: r,
		Part:          int(part),
		Currency:      currency,
	}
}
