package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "Shape,Edge,Colour\nCube,10,Gold\nCube,12,Purple\n", ','},
		{"semicolon", "Shape;Edge;Colour\nCube;10;Gold\nCube;12;Purple\n", ';'},
		{"tab", "Shape\tEdge\tColour\nCube\t10\tGold\nCube\t12\tPurple\n", '\t'},
		{"pipe", "Shape|Edge|Colour\nCube|10|Gold\nCube|12|Purple\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tt.data)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Shape", "X", "Y", "Z", "Quality", "Colour", "Bow", "Label"})
	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping != PositionalMapping {
		t.Errorf("expected canonical order mapping, got %+v", mapping)
	}
}

func TestDetectColumns_AliasesAndOrder(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Message", "COLOR", "Gift", "Radius", "Height", "Paper"})
	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.Colour != 1 || mapping.Shape != 2 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
	if mapping.X != 3 || mapping.Y != 4 || mapping.Quality != 5 {
		t.Errorf("unexpected mapping %+v", mapping)
	}
	if mapping.Z != -1 || mapping.Bow != -1 {
		t.Errorf("absent columns should be -1, got %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Cube", "10", "", "", "Cheap"})
	if isHeader {
		t.Error("data row should not be treated as a header")
	}
	if mapping != PositionalMapping {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── ParseQuoteRow Tests ───────────────────────────────────

func TestParseQuoteRow_Cuboid(t *testing.T) {
	row := []string{"Cuboid", "20", "10", "5", "Expensive", "Gold", "yes", "Happy Birthday"}
	q, errMsg, warnings := ParseQuoteRow(row, PositionalMapping, "Line 1")
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	want := model.Gift{Shape: model.ShapeCuboid, X: 20, Y: 10, Z: 5}
	if q.Gift != want {
		t.Errorf("expected %+v, got %+v", want, q.Gift)
	}
	if q.Wrap.Quality != model.QualityExpensive || q.Wrap.Colour != model.ColourGold {
		t.Errorf("unexpected wrap %+v", q.Wrap)
	}
	if !q.IncludesBow || !q.IncludesLabel || q.LabelText != "Happy Birthday" {
		t.Errorf("unexpected extras %+v", q)
	}
	if q.ID == "" {
		t.Error("imported quote should get an ID")
	}
}

func TestParseQuoteRow_CubeIgnoresUnusedColumns(t *testing.T) {
	row := []string{"cube", "10", "abc", "-4"}
	q, errMsg, _ := ParseQuoteRow(row, PositionalMapping, "Line 1")
	if errMsg != "" {
		t.Fatalf("columns the cube does not use must not be validated: %s", errMsg)
	}
	if q.Gift.X != 10 {
		t.Errorf("expected edge 10, got %v", q.Gift.X)
	}
	if q.Wrap != model.NewWrap() || q.IncludesBow || q.IncludesLabel {
		t.Errorf("missing optional columns should keep defaults, got %+v", q)
	}
}

func TestParseQuoteRow_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want string
	}{
		{"missing shape", []string{"", "10"}, "Missing shape"},
		{"bad shape", []string{"Sphere", "10"}, "Invalid shape 'Sphere'"},
		{"letters", []string{"Cube", "ten"}, "Can't Contain Letters"},
		{"missing y", []string{"Cylinder", "4"}, "Height - Gift Dimensions Can't be Empty"},
		{"negative", []string{"Cuboid", "1", "-2", "3"}, "Can't be Negative"},
		{"too big", []string{"Cube", "501"}, "Exceed 500 cm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errMsg, _ := ParseQuoteRow(tt.row, PositionalMapping, "Line 7")
			if !strings.HasPrefix(errMsg, "Line 7: ") {
				t.Errorf("expected row prefix, got %q", errMsg)
			}
			if !strings.Contains(errMsg, tt.want) {
				t.Errorf("expected %q in %q", tt.want, errMsg)
			}
		})
	}
}

func TestParseQuoteRow_Warnings(t *testing.T) {
	row := []string{"Cube", "10", "", "", "premium", "mauve", "maybe"}
	q, errMsg, warnings := ParseQuoteRow(row, PositionalMapping, "Line 2")
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", warnings)
	}
	if q.Wrap != model.NewWrap() || q.IncludesBow {
		t.Errorf("unknown values should fall back to defaults, got %+v", q)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input  string
		want   bool
		wantOK bool
	}{
		{"yes", true, true},
		{"TRUE", true, true},
		{"1", true, true},
		{"no", false, true},
		{"", false, true},
		{"0", false, true},
		{"perhaps", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseBool(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseBool(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Shape,Edge,Height,Depth,Paper,Colour,Bow,Label\n" +
		"Cube,10,,,Cheap,Purple,no,\n" +
		"Cylinder,4,12,,Expensive,Deep Sky Blue,yes,Dad\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(result.Quotes))
	}
	if result.Quotes[0].Total() != 663 {
		t.Errorf("expected first quote 663, got %d", result.Quotes[0].Total())
	}
	cyl := result.Quotes[1]
	if cyl.Gift.Shape != model.ShapeCylinder || cyl.Gift.X != 4 || cyl.Gift.Y != 12 {
		t.Errorf("unexpected cylinder %+v", cyl.Gift)
	}
	if cyl.Wrap.Colour != model.ColourDeepSkyBlue || cyl.LabelText != "Dad" {
		t.Errorf("unexpected cylinder wrap/label %+v", cyl)
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Cube,10\nCuboid,3,4,5,1,5\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d (errors: %v)", len(result.Quotes), result.Errors)
	}
	if result.Quotes[1].Wrap.Quality != model.QualityExpensive || result.Quotes[1].Wrap.Colour != model.ColourGold {
		t.Errorf("index values should select quality and colour, got %+v", result.Quotes[1].Wrap)
	}
}

func TestImportCSVFromReader_UnrecognisedHeaderSkipped(t *testing.T) {
	data := "Kind,Measure\nCube,10\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d (errors: %v)", len(result.Quotes), result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a header warning")
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	data := "Colour,Label\nGold,Hi\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Shape, X") {
		t.Errorf("expected missing column error, got %v", result.Errors)
	}
	if len(result.Quotes) != 0 {
		t.Errorf("expected no quotes, got %d", len(result.Quotes))
	}
}

func TestImportCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	data := "Cube,10\nCube,0\nCube,abc\n,,\nCylinder,2,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Quotes) != 2 {
		t.Errorf("expected 2 quotes, got %d", len(result.Quotes))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", result.Errors)
	}
	if !strings.HasPrefix(result.Errors[0], "Line 2:") || !strings.HasPrefix(result.Errors[1], "Line 3:") {
		t.Errorf("errors should carry line numbers, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected an error for empty input")
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quotes.csv")
	content := "Shape;Edge;Colour\nCube;10;Gold\nCube;20;Purple\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)
	if len(result.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d (errors: %v)", len(result.Quotes), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/quotes.csv")
	if len(result.Errors) == 0 || !strings.Contains(result.Errors[0], "Cannot open file") {
		t.Errorf("expected open error, got %v", result.Errors)
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	result := ImportCSV(path)
	if len(result.Errors) != 1 || result.Errors[0] != "File is empty" {
		t.Errorf("expected empty file error, got %v", result.Errors)
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Shape", "Width", "Height", "Depth", "Quality", "Colour", "Bow", "Label"},
		{"Cuboid", 30, 20, 10, "Expensive", "VioletRed2", "yes", "Congrats"},
		{"Cube", 15, "", "", "Cheap", "Light Sea Green", "no", ""},
	})

	result := ImportExcel(path)
	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(result.Quotes))
	}
	first := result.Quotes[0]
	if first.Gift.X != 30 || first.Gift.Y != 20 || first.Gift.Z != 10 {
		t.Errorf("unexpected gift %+v", first.Gift)
	}
	if first.Wrap.Colour != model.ColourVioletRed2 || !first.IncludesBow {
		t.Errorf("unexpected quote %+v", first)
	}
	if result.Quotes[1].Wrap.Colour != model.ColourLightSeaGreen {
		t.Errorf("unexpected colour %v", result.Quotes[1].Wrap.Colour)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/quotes.xlsx")
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportFile_DispatchesOnExtension(t *testing.T) {
	xlsx := createTestExcel(t, [][]interface{}{{"Cube", 10}})
	if got := ImportFile(xlsx); len(got.Quotes) != 1 {
		t.Errorf("expected 1 quote from xlsx, got %+v", got)
	}

	csvPath := filepath.Join(t.TempDir(), "quotes.csv")
	if err := os.WriteFile(csvPath, []byte("Cube,10\nCube,11\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := ImportFile(csvPath); len(got.Quotes) != 2 {
		t.Errorf("expected 2 quotes from csv, got %+v", got)
	}
}
