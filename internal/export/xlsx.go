package export

import (
	"fmt"
	"time"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/xuri/excelize/v2"
)

// OrderSheetHeaders are the column titles of the order workbook.
var OrderSheetHeaders = []string{
	"Quote", "Shape", "Dimensions (cm)", "Paper", "Colour", "Bow", "Label", "Paper Area (cm²)", "Cost",
}

// ExportOrderXLSX writes the order to a single-sheet workbook: one row per
// quote followed by a total row. Costs are stored in pounds.
func ExportOrderXLSX(path string, order *model.Order) error {
	view := order.View()
	if len(view.Quotes) == 0 {
		return fmt.Errorf("workbook for order #%d: %w", view.ID, model.ErrEmptyOrder)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Order %d", view.ID)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	numFmt := fmt.Sprintf(`"%s"#,##0.00`, model.Settings().CurrencySymbol)
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	for i, h := range OrderSheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(OrderSheetHeaders))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return err
	}

	for i, q := range view.Quotes {
		row := i + 2
		label := ""
		if q.IncludesLabel {
			label = q.LabelText
		}
		values := []interface{}{
			q.ID,
			q.Gift.Shape.String(),
			q.Gift.Dimensions().String(),
			q.Wrap.Quality.String(),
			q.Wrap.Colour.String(),
			yesNo(q.IncludesBow),
			label,
			model.UnwrapArea(q.Gift),
			pounds(q.Total()),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		costCell, _ := excelize.CoordinatesToCellName(len(values), row)
		if err := f.SetCellStyle(sheet, costCell, costCell, money); err != nil {
			return err
		}
	}

	totalRow := len(view.Quotes) + 2
	labelCell, _ := excelize.CoordinatesToCellName(len(OrderSheetHeaders)-1, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(len(OrderSheetHeaders), totalRow)
	if err := f.SetCellValue(sheet, labelCell, "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, totalCell, pounds(view.Total)); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, labelCell, labelCell, bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, totalCell, totalCell, money); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "B", "G", 16); err != nil {
		return err
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("Order #%d", view.ID),
		Creator: model.Settings().CompanyName,
		Created: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook %s: %w", path, err)
	}
	model.Logger().Info("order workbook exported", "order", view.ID, "path", path)
	return nil
}

func pounds(minor int64) float64 {
	return float64(minor) / 100
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
