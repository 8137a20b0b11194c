package catalog

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// exportHeader is the fixed column order of the CSV export. Downstream
// spreadsheet tooling depends on it.
var exportHeader = []string{"sku", "platform", "title", "description", "keywords", "price", "stock"}

// ExportCSV serializes rows to CSV with standard quoting. Keywords are
// joined with semicolons so the column stays a single cell.
func ExportCSV(rows []OutputRow) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return "", fmt.Errorf("write export header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.SKU,
			string(row.Platform),
			row.Title,
			row.Description,
			strings.Join(row.Keywords, ";"),
			FormatPrice(row.Price),
			strconv.Itoa(row.Stock),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write export row %s: %w", row.SKU, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush export: %w", err)
	}
	return buf.String(), nil
}

// ExportFilename returns the conventional export file name,
// <marketplace>-catalog-<epoch-ms>.csv.
func ExportFilename(m Marketplace, now time.Time) string {
	return fmt.Sprintf("%s-catalog-%d.csv", m, now.UnixMilli())
}
