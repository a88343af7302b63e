// Package importer loads batches of quotes from CSV and Excel files and
// validates the gift dimensions typed at the edge of the system. It supports
// automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Quotes   []model.Quote
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// A value of -1 means the column is absent.
type ColumnMapping struct {
	Shape   int
	X       int
	Y       int
	Z       int
	Quality int
	Colour  int
	Bow     int
	Label   int
}

// PositionalMapping is used when a file has no recognisable header:
// shape, x, y, z, quality, colour, bow, label.
var PositionalMapping = ColumnMapping{
	Shape: 0, X: 1, Y: 2, Z: 3, Quality: 4, Colour: 5, Bow: 6, Label: 7,
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"shape":   {"shape", "gift", "gift shape", "type"},
	"x":       {"x", "width", "edge", "radius", "size", "length"},
	"y":       {"y", "height"},
	"z":       {"z", "depth"},
	"quality": {"quality", "paper", "paper quality", "grade"},
	"colour":  {"colour", "color", "wrap colour", "wrap color"},
	"bow":     {"bow", "includes bow", "ribbon"},
	"label":   {"label", "label text", "tag", "message"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := ','
	bestScore := 0

	for _, delim := range candidates {
		records, err := readRecords(bytes.NewReader(data), delim)
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		consistent := 0
		for _, row := range records {
			if len(row) == firstCols {
				consistent++
			}
		}

		// Prefer consistency, then more columns
		weighted := consistent*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}

	return best
}

func readRecords(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or PositionalMapping
// and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Shape: -1, X: -1, Y: -1, Z: -1, Quality: -1, Colour: -1, Bow: -1, Label: -1}
	slots := map[string]*int{
		"shape":   &mapping.Shape,
		"x":       &mapping.X,
		"y":       &mapping.Y,
		"z":       &mapping.Z,
		"quality": &mapping.Quality,
		"colour":  &mapping.Colour,
		"bow":     &mapping.Bow,
		"label":   &mapping.Label,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return PositionalMapping, false
	}
	return mapping, true
}

// parseBool reads the bow column. The second result is false for text that
// is not a recognised yes/no value.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "bow", "x":
		return true, true
	case "", "no", "n", "false", "0", "-", "no bow":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseQuoteRow builds a Quote from one data row. It returns the quote, an
// error message (empty on success) and any warnings. rowLabel prefixes the
// messages, for example "Line 3".
func ParseQuoteRow(row []string, mapping ColumnMapping, rowLabel string) (model.Quote, string, []string) {
	var warnings []string
	q := model.NewQuote()

	shapeStr := getCell(row, mapping.Shape)
	if shapeStr == "" {
		return model.Quote{}, fmt.Sprintf("%s: Missing shape value", rowLabel), nil
	}
	shape, err := model.ParseGiftShape(shapeStr)
	if err != nil {
		return model.Quote{}, fmt.Sprintf("%s: Invalid shape '%s'", rowLabel, shapeStr), nil
	}
	q.Gift.SetShape(shape)

	max := model.Settings().MaxDimension
	columns := []int{mapping.X, mapping.Y, mapping.Z}
	for i, name := range shape.DimensionNames() {
		raw := getCell(row, columns[i])
		v, err := ValidateDimension(raw, max)
		if err != nil {
			return model.Quote{}, fmt.Sprintf("%s: %s - %s", rowLabel, name, err), nil
		}
		_ = q.Gift.SetDimension(i, v)
	}

	if s := getCell(row, mapping.Quality); s != "" {
		quality, err := model.ParsePaperQuality(s)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown paper quality '%s', defaulting to %s", rowLabel, s, model.QualityCheap))
		} else {
			q.Wrap.Quality = quality
		}
	}

	if s := getCell(row, mapping.Colour); s != "" {
		colour, err := model.ParseColour(s)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown colour '%s', defaulting to %s", rowLabel, s, model.ColourPurple))
		} else {
			q.Wrap.Colour = colour
		}
	}

	if s := getCell(row, mapping.Bow); s != "" {
		bow, ok := parseBool(s)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown bow value '%s', defaulting to no bow", rowLabel, s))
		}
		q.IncludesBow = bow
	}

	if label := getCell(row, mapping.Label); label != "" {
		q.IncludesLabel = true
		q.LabelText = label
	}

	return q, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports quotes from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readRecords(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports quotes from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readRecords(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", nil)
}

// ImportExcel imports quotes from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile dispatches on the file extension.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path)
	}
	return ImportCSV(path)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Shape == -1 {
			missing = append(missing, "Shape")
		}
		if mapping.X == -1 {
			missing = append(missing, "X")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 2 {
		// An unrecognised header still has a non-numeric second column
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		q, errMsg, warnings := ParseQuoteRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Quotes = append(result.Quotes, q)
	}

	model.Logger().Debug("quotes imported", "quotes", len(result.Quotes), "errors", len(result.Errors))
	return result
}
