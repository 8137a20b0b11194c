package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aurora-ops/aurora/pkg/tmpl"
)

// OutputRow is one marketplace-rendered listing, ready for preview or
// export.
type OutputRow struct {
	SKU         string      `json:"sku"`
	Platform    Marketplace `json:"platform"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
}

// descriptionData is the slot set exposed to profile description templates.
type descriptionData struct {
	Description string
	Category    string
	Price       string
}

// Render constructs one OutputRow per record for the given marketplace.
// It is a pure function of its inputs: identical records and marketplace
// always yield identical rows.
func Render(records []Record, m Marketplace) ([]OutputRow, error) {
	profile, err := ProfileFor(m)
	if err != nil {
		return nil, err
	}

	rows := make([]OutputRow, 0, len(records))
	for _, rec := range records {
		desc, err := tmpl.Render(profile.DescriptionTemplate, descriptionData{
			Description: rec.Description,
			Category:    rec.Category,
			Price:       FormatPrice(rec.Price),
		})
		if err != nil {
			return nil, fmt.Errorf("render description for %s: %w", rec.SKU, err)
		}

		rows = append(rows, OutputRow{
			SKU:         rec.SKU,
			Platform:    m,
			Title:       truncate(rec.Name, profile.TitleMaxLength),
			Description: desc,
			Keywords:    keywords(rec, profile),
			Price:       rec.Price,
			Stock:       rec.Stock,
		})
	}

	return rows, nil
}

// truncate hard-cuts s to max characters. No ellipsis: channel title
// limits are exact character budgets.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// keywords merges the record's tags, category-derived tokens, and the
// profile's hint tokens, lowercased and deduplicated in first-seen order.
func keywords(rec Record, profile Profile) []string {
	var out []string
	seen := map[string]bool{}

	add := func(kw string) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		out = append(out, kw)
	}

	for _, t := range rec.Tags {
		add(t)
	}
	for _, t := range strings.Fields(rec.Category) {
		add(t)
	}
	for _, t := range strings.Split(profile.KeywordHint, ";") {
		add(t)
	}

	return out
}

// FormatPrice renders a price without trailing zeros, matching the way
// prices appear in pasted sheets.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
