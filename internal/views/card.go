package views

import (
	"fmt"

	"infografias.nextwaveia.mx/internal/catalog"
	"infografias.nextwaveia.mx/internal/utils"
)

// Currency is shown under every price.
const Currency = "MXN"

// Icon names a decorative symbol in the page sprite.
type Icon string

const (
	IconRocket      Icon = "rocket"
	IconLineChart   Icon = "line-chart"
	IconShieldCheck Icon = "shield-check"
	IconCog         Icon = "cog"
	IconCode        Icon = "code-2"
	IconCloud       Icon = "cloud"
	IconGauge       Icon = "gauge"
)

var cardIcons = [...]Icon{
	IconRocket,
	IconLineChart,
	IconShieldCheck,
	IconCog,
	IconCode,
	IconCloud,
	IconGauge,
}

// Icons returns the icon cycle in order.
func Icons() []Icon {
	return cardIcons[:]
}

// IconFor picks the icon for the card at position index.
func IconFor(index int) Icon {
	n := len(cardIcons)
	return cardIcons[((index%n)+n)%n]
}

type Feature struct {
	Text   string
	TestID string
}

type BadgeView struct {
	Label  string
	Tone   catalog.Tone
	Class  string
	TestID string
}

// Card is everything the card template draws for one package.
type Card struct {
	ID         int
	Name       string
	Price      string
	Currency   string
	Time       string
	TimeChipID string
	Accent     string
	Icon       Icon
	Badge      *BadgeView
	Features   []Feature
	IdealFor   string
	DelayMS    int
}

// NewCard maps a record at position index of the active sequence to its card.
func NewCard(r catalog.PackageRecord, index int) Card {
	card := Card{
		ID:         r.ID,
		Name:       r.Name,
		Price:      r.Price,
		Currency:   Currency,
		Time:       r.Time,
		TimeChipID: "chip-" + utils.Slugify(r.Time),
		Accent:     r.Accent,
		Icon:       IconFor(index),
		Features:   make([]Feature, len(r.Includes)),
		IdealFor:   r.IdealFor,
		DelayMS:    index * 40,
	}

	for i, text := range r.Includes {
		card.Features[i] = Feature{
			Text:   text,
			TestID: fmt.Sprintf("text-feature-%d-%d", r.ID, i),
		}
	}

	if r.Badge != nil {
		card.Badge = &BadgeView{
			Label:  r.Badge.Label,
			Tone:   r.Badge.Tone,
			Class:  badgeClass(r.Badge.Tone),
			TestID: "badge-" + string(r.Badge.Tone),
		}
	}

	return card
}

func badgeClass(t catalog.Tone) string {
	if t == catalog.TonePremium {
		return "nw-premium-badge"
	}
	return "nw-recommended-badge"
}

// NewCards renders records in order.
func NewCards(records []catalog.PackageRecord) []Card {
	cards := make([]Card, len(records))
	for i, r := range records {
		cards[i] = NewCard(r, i)
	}
	return cards
}
