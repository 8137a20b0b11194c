package aurora

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/aurora-ops/aurora/internal/core/catalog"
)

// CatalogService wraps the catalog processor with file-level operations
// the CLI exposes: generating from sheets on disk and inspecting
// reference templates.
type CatalogService struct {
	log zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(log zerolog.Logger) *CatalogService {
	return &CatalogService{
		log: log.With().Str("component", "catalog-service").Logger(),
	}
}

// Generate parses raw sheet text and renders rows for the marketplace.
func (s *CatalogService) Generate(raw string, m catalog.Marketplace) ([]catalog.OutputRow, error) {
	sheet, err := catalog.ParseSheet(raw)
	if err != nil {
		return nil, err
	}

	rows, err := catalog.Render(sheet.Records, m)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("records", len(sheet.Records)).Str("marketplace", string(m)).Msg("catalog generated")
	return rows, nil
}

// WriteExport serializes rows to CSV at the given path. An empty path
// picks the conventional <marketplace>-catalog-<epoch-ms>.csv name in the
// working directory. Returns the path written.
func (s *CatalogService) WriteExport(rows []catalog.OutputRow, m catalog.Marketplace, path string) (string, error) {
	csvText, err := catalog.ExportCSV(rows)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = catalog.ExportFilename(m, time.Now())
	}

	if err := os.WriteFile(path, []byte(csvText), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// InspectReport summarizes one uploaded reference template.
type InspectReport struct {
	Path     string   `json:"path"`
	Headers  []string `json:"headers"`
	RowCount int      `json:"row_count"`
	Err      string   `json:"error,omitempty"`
}

// Inspect reads every file matching the doublestar glob pattern and
// reports detected headers and row counts. Unparseable files are reported
// in place rather than failing the batch.
func (s *CatalogService) Inspect(pattern string) ([]InspectReport, error) {
	base, rest := doublestar.SplitPattern(pattern)
	matches, err := doublestar.Glob(os.DirFS(base), rest)
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}

	reports := make([]InspectReport, 0, len(matches))
	for _, m := range matches {
		full := filepath.Join(base, m)
		report := InspectReport{Path: full}

		data, err := os.ReadFile(full)
		if err != nil {
			report.Err = err.Error()
			reports = append(reports, report)
			continue
		}

		sheet, err := catalog.ParseSheet(string(data))
		if err != nil {
			report.Err = "could not parse template; ensure it's a clean CSV"
			reports = append(reports, report)
			continue
		}

		report.Headers = sheet.Headers
		report.RowCount = len(sheet.Records)
		reports = append(reports, report)
	}

	return reports, nil
}
