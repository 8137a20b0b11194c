// Package catalog transforms raw product sheets into marketplace-ready
// listing rows and serializes them for spreadsheet import.
package catalog

import "fmt"

// Marketplace identifies one of the supported sales channels.
type Marketplace string

const (
	MarketplaceAmazon   Marketplace = "amazon"
	MarketplaceFlipkart Marketplace = "flipkart"
	MarketplaceMeesho   Marketplace = "meesho"
	MarketplaceMyntra   Marketplace = "myntra"
)

// Marketplaces lists the supported channels in display order.
var Marketplaces = []Marketplace{
	MarketplaceAmazon,
	MarketplaceFlipkart,
	MarketplaceMeesho,
	MarketplaceMyntra,
}

// ParseMarketplace maps a string onto a known Marketplace.
func ParseMarketplace(s string) (Marketplace, error) {
	for _, m := range Marketplaces {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown marketplace %q", s)
}

// Profile describes one channel's listing constraints. Profiles are static
// process-wide configuration and never change at runtime.
type Profile struct {
	Name                string
	TitleMaxLength      int
	DescriptionTemplate string
	KeywordHint         string // semicolon-separated hint tokens
}

// profiles is the static channel table. Template slots are filled from the
// record's description, category, and price fields.
var profiles = map[Marketplace]Profile{
	MarketplaceAmazon: {
		Name:                "Amazon",
		TitleMaxLength:      200,
		DescriptionTemplate: "{{ .Description }}. Premium {{ .Category }} pick at ₹{{ .Price }}, backed by fast Prime-ready dispatch.",
		KeywordHint:         "bestseller;prime;top rated",
	},
	MarketplaceFlipkart: {
		Name:                "Flipkart",
		TitleMaxLength:      100,
		DescriptionTemplate: "{{ .Description }} | Great value {{ .Category }} at ₹{{ .Price }} with Flipkart Assured quality checks.",
		KeywordHint:         "big billion;assured;deal of the day",
	},
	MarketplaceMeesho: {
		Name:                "Meesho",
		TitleMaxLength:      80,
		DescriptionTemplate: "{{ .Description }}. Reseller-friendly {{ .Category }} priced at ₹{{ .Price }} with nationwide COD.",
		KeywordHint:         "wholesale;reseller;cod",
	},
	MarketplaceMyntra: {
		Name:                "Myntra",
		TitleMaxLength:      60,
		DescriptionTemplate: "{{ .Description }}. Curated {{ .Category }} style at ₹{{ .Price }} for the season's edit.",
		KeywordHint:         "trending;new season;styledit",
	},
}

// ProfileFor returns the listing profile for a marketplace.
func ProfileFor(m Marketplace) (Profile, error) {
	p, ok := profiles[m]
	if !ok {
		return Profile{}, fmt.Errorf("unknown marketplace %q", m)
	}
	return p, nil
}
