package catalog

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV_RoundTrip(t *testing.T) {
	sheet, err := ParseSheet(sampleSheet)
	require.NoError(t, err)

	rows, err := Render(sheet.Records, MarketplaceAmazon)
	require.NoError(t, err)

	out, err := ExportCSV(rows)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(out))
	parsed, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, parsed, len(rows)+1)
	assert.Equal(t, []string{"sku", "platform", "title", "description", "keywords", "price", "stock"}, parsed[0])

	seen := map[string]int{}
	for _, rec := range parsed[1:] {
		seen[rec[0]]++
	}
	for _, row := range rows {
		assert.Equal(t, 1, seen[row.SKU], "sku %s should appear exactly once", row.SKU)
	}
}

func TestExportCSV_QuotesEmbeddedDelimiters(t *testing.T) {
	rows := []OutputRow{{
		SKU:         "ODD-01",
		Platform:    MarketplaceFlipkart,
		Title:       `Mug, "Best Seller" Edition`,
		Description: "Line one\nline two",
		Keywords:    []string{"gift", "kitchen"},
		Price:       249.5,
		Stock:       12,
	}}

	out, err := ExportCSV(rows)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(out))
	parsed, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, `Mug, "Best Seller" Edition`, parsed[1][2])
	assert.Equal(t, "Line one\nline two", parsed[1][3])
	assert.Equal(t, "gift;kitchen", parsed[1][4])
	assert.Equal(t, "249.5", parsed[1][5])
	assert.Equal(t, "12", parsed[1][6])
}

func TestExportCSV_EmptyRows(t *testing.T) {
	out, err := ExportCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "sku,platform,title,description,keywords,price,stock\n", out)
}

func TestExportFilename(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "meesho-catalog-1700000000000.csv", ExportFilename(MarketplaceMeesho, now))
}
