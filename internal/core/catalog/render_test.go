package catalog

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_TitleTruncation(t *testing.T) {
	longName := strings.Repeat("Aurora Performance Tee ", 12) // well past every budget
	rec := Record{Name: longName, SKU: "AUR-TEE-01"}

	for _, m := range Marketplaces {
		t.Run(string(m), func(t *testing.T) {
			profile, err := ProfileFor(m)
			require.NoError(t, err)

			rows, err := Render([]Record{rec}, m)
			require.NoError(t, err)
			require.Len(t, rows, 1)

			assert.Equal(t, profile.TitleMaxLength, utf8.RuneCountInString(rows[0].Title))
			assert.False(t, strings.HasSuffix(rows[0].Title, "…"))
		})
	}
}

func TestRender_ShortTitleUntouched(t *testing.T) {
	rows, err := Render([]Record{{Name: "Plain Mug", SKU: "MUG-77"}}, MarketplaceMyntra)
	require.NoError(t, err)
	assert.Equal(t, "Plain Mug", rows[0].Title)
}

func TestRender_DescriptionTemplate(t *testing.T) {
	rec := Record{
		Name:        "Aurora Performance Tee",
		SKU:         "AUR-TEE-01",
		Price:       799,
		Category:    "Activewear",
		Description: "Quick dry fabric",
	}

	rows, err := Render([]Record{rec}, MarketplaceAmazon)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	desc := rows[0].Description
	assert.Contains(t, desc, "Quick dry fabric")
	assert.Contains(t, desc, "Activewear")
	assert.Contains(t, desc, "₹799")
	assert.NotContains(t, desc, "{{")
}

func TestRender_Keywords(t *testing.T) {
	rec := Record{
		Name:     "Nebula Luxe Saree",
		SKU:      "NBL-SAE-23",
		Category: "Ethnic Wear",
		Tags:     []string{"Festive", "wedding", "festive"},
	}

	rows, err := Render([]Record{rec}, MarketplaceMeesho)
	require.NoError(t, err)

	// tags first, then category tokens, then channel hints; lowercased and
	// deduplicated in first-seen order
	assert.Equal(t,
		[]string{"festive", "wedding", "ethnic", "wear", "wholesale", "reseller", "cod"},
		rows[0].Keywords)
}

func TestRender_KeywordOverlapWithHint(t *testing.T) {
	rec := Record{Name: "Tee", SKU: "T-1", Category: "Prime", Tags: []string{"bestseller"}}

	rows, err := Render([]Record{rec}, MarketplaceAmazon)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, kw := range rows[0].Keywords {
		counts[kw]++
	}
	assert.Equal(t, 1, counts["bestseller"])
	assert.Equal(t, 1, counts["prime"])
}

func TestRender_Deterministic(t *testing.T) {
	sheet, err := ParseSheet(sampleSheet)
	require.NoError(t, err)

	first, err := Render(sheet.Records, MarketplaceFlipkart)
	require.NoError(t, err)
	second, err := Render(sheet.Records, MarketplaceFlipkart)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_UnknownMarketplace(t *testing.T) {
	_, err := Render([]Record{{Name: "x", SKU: "y"}}, Marketplace("etsy"))
	assert.Error(t, err)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "799", FormatPrice(799))
	assert.Equal(t, "799.5", FormatPrice(799.5))
	assert.Equal(t, "0", FormatPrice(0))
}

func TestParseMarketplace(t *testing.T) {
	m, err := ParseMarketplace("meesho")
	require.NoError(t, err)
	assert.Equal(t, MarketplaceMeesho, m)

	_, err = ParseMarketplace("ebay")
	assert.Error(t, err)
}
