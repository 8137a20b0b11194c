package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSheet = `Aurora Performance Tee | AUR-TEE-01 | 799 | Activewear | 120 | Quick dry fabric with reflective strip | sports;running;fitness
Nebula Luxe Saree | NBL-SAE-23 | 1499 | Ethnic Wear | 80 | Soft silk blend with zari border | festive;wedding;traditional
Lumos Night Lamp | LUM-LMP-09 | 1299 | Home Decor | 60 | Rechargeable, 3 brightness modes | lighting;home;gift`

func TestParseSheet_PipeFormat(t *testing.T) {
	sheet, err := ParseSheet(sampleSheet)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "sku", "price", "category", "stock", "description", "tags"}, sheet.Headers)
	require.Len(t, sheet.Records, 3)

	first := sheet.Records[0]
	assert.Equal(t, "Aurora Performance Tee", first.Name)
	assert.Equal(t, "AUR-TEE-01", first.SKU)
	assert.Equal(t, 799.0, first.Price)
	assert.Equal(t, "Activewear", first.Category)
	assert.Equal(t, 120, first.Stock)
	assert.Equal(t, "Quick dry fabric with reflective strip", first.Description)
	assert.Equal(t, []string{"sports", "running", "fitness"}, first.Tags)
}

func TestParseSheet_SkipsMalformedLines(t *testing.T) {
	input := `Aurora Performance Tee | AUR-TEE-01 | 799 | Activewear | 120 | Quick dry fabric | sports
just some stray text
Lumos Night Lamp | LUM-LMP-09 | 1299 | Home Decor | 60 | Rechargeable | lighting`

	sheet, err := ParseSheet(input)
	require.NoError(t, err)
	require.Len(t, sheet.Records, 2)
	assert.Equal(t, "AUR-TEE-01", sheet.Records[0].SKU)
	assert.Equal(t, "LUM-LMP-09", sheet.Records[1].SKU)
}

func TestParseSheet_BadNumbersDefaultToZero(t *testing.T) {
	input := `Mystery Box | MYS-01 | not-a-price | Misc | lots | Surprise contents | fun`

	sheet, err := ParseSheet(input)
	require.NoError(t, err)
	require.Len(t, sheet.Records, 1)
	assert.Zero(t, sheet.Records[0].Price)
	assert.Zero(t, sheet.Records[0].Stock)
}

func TestParseSheet_TagsOptional(t *testing.T) {
	input := `Plain Mug | MUG-77 | 249 | Kitchen | 400 | Ceramic 300ml`

	sheet, err := ParseSheet(input)
	require.NoError(t, err)
	require.Len(t, sheet.Records, 1)
	assert.Empty(t, sheet.Records[0].Tags)
}

func TestParseSheet_NoRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t\n  "},
		{"no valid pipe lines", "a | b\nc | d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := ParseSheet(tt.input)
			assert.Nil(t, sheet)
			assert.ErrorIs(t, err, ErrNoRecords)
		})
	}
}

func TestParseSheet_CSVUpload(t *testing.T) {
	input := `name,sku,price,category,stock,description,tags
Aurora Performance Tee,AUR-TEE-01,799,Activewear,120,Quick dry fabric,sports;running
Nebula Luxe Saree,NBL-SAE-23,1499,Ethnic Wear,80,Soft silk blend,festive`

	sheet, err := ParseSheet(input)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "sku", "price", "category", "stock", "description", "tags"}, sheet.Headers)
	require.Len(t, sheet.Records, 2)
	assert.Equal(t, "NBL-SAE-23", sheet.Records[1].SKU)
	assert.Equal(t, []string{"sports", "running"}, sheet.Records[0].Tags)
}

func TestParseSheet_CSVSkipsRowsWithoutIdentity(t *testing.T) {
	input := `name,sku,price
Aurora Performance Tee,AUR-TEE-01,799
,,0`

	sheet, err := ParseSheet(input)
	require.NoError(t, err)
	require.Len(t, sheet.Records, 1)
}
