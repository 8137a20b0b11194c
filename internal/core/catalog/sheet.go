package catalog

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
)

// ErrNoRecords is returned when the input is blank or no line yields a
// usable record.
var ErrNoRecords = errors.New("no parsable catalog records")

// pipeFieldOrder is the fixed field order of the paste format:
//
//	name | sku | price | category | stock | description | tags
//
// where tags is itself semicolon-separated.
var pipeFieldOrder = []string{"name", "sku", "price", "category", "stock", "description", "tags"}

// minPipeFields is the required field count for a pipe-format line; the
// trailing tags field is optional.
const minPipeFields = 6

// Record is one product entry prior to marketplace rendering.
type Record struct {
	Name        string
	SKU         string
	Price       float64
	Category    string
	Stock       int
	Description string
	Tags        []string
}

// Sheet is a parsed catalog input: the detected (or implied) header row
// plus the records extracted from the data lines.
type Sheet struct {
	Headers []string
	Records []Record
}

// ParseSheet parses raw catalog text. Two formats are accepted, detected
// from the first non-empty line: the pipe-delimited paste shorthand (no
// header row, fixed field order) and comma-delimited CSV uploads (header
// row followed by positional data rows).
//
// Malformed lines are skipped rather than failing the batch; numeric
// fields that do not parse default to zero. Returns ErrNoRecords when the
// text is blank or no line yields a record.
func ParseSheet(text string) (*Sheet, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrNoRecords
	}

	if strings.Contains(firstLine(trimmed), "|") {
		return parsePipe(trimmed)
	}
	return parseCSV(trimmed)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func parsePipe(text string) (*Sheet, error) {
	sheet := &Sheet{Headers: append([]string(nil), pipeFieldOrder...)}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < minPipeFields {
			continue
		}
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}

		rec := Record{
			Name:        fields[0],
			SKU:         fields[1],
			Price:       parsePrice(fields[2]),
			Category:    fields[3],
			Stock:       parseStock(fields[4]),
			Description: fields[5],
		}
		if len(fields) > 6 {
			rec.Tags = splitTags(fields[6])
		}
		sheet.Records = append(sheet.Records, rec)
	}

	if len(sheet.Records) == 0 {
		return nil, ErrNoRecords
	}
	return sheet, nil
}

func parseCSV(text string) (*Sheet, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // uploads are not always rectangular
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil || len(rows) == 0 {
		return nil, ErrNoRecords
	}

	sheet := &Sheet{}
	for i, h := range rows[0] {
		rows[0][i] = strings.TrimSpace(h)
	}
	sheet.Headers = rows[0]

	for _, row := range rows[1:] {
		rec, ok := csvRecord(row)
		if !ok {
			continue
		}
		sheet.Records = append(sheet.Records, rec)
	}

	if len(sheet.Records) == 0 {
		return nil, ErrNoRecords
	}
	return sheet, nil
}

// csvRecord maps a CSV data row onto a Record positionally, following the
// same field order as the pipe format. Rows without at least a name and
// SKU are rejected.
func csvRecord(row []string) (Record, bool) {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	rec := Record{
		Name:        get(0),
		SKU:         get(1),
		Price:       parsePrice(get(2)),
		Category:    get(3),
		Stock:       parseStock(get(4)),
		Description: get(5),
		Tags:        splitTags(get(6)),
	}
	if rec.Name == "" || rec.SKU == "" {
		return Record{}, false
	}
	return rec, true
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ";") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseStock(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
