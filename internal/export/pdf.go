// Package export writes orders and paper patterns to files: PDF receipts
// and gift tags, Excel workbooks, PNG previews and DXF outlines.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/giftwrap/internal/engine"
	"github.com/piwi3910/giftwrap/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 12.0
	swatchWidth  = 18.0
	swatchHeight = 9.0
	swatchScale  = 0.25 // mm per pattern unit
	receiptQR    = 30.0
)

// ReceiptInfo is encoded into the receipt's QR code.
type ReceiptInfo struct {
	Order  int      `json:"order"`
	Date   string   `json:"date"`
	Store  string   `json:"store"`
	Quotes []string `json:"quotes"`
	Total  int64    `json:"total_pence"`
}

func receiptInfo(view model.OrderView, at time.Time) ReceiptInfo {
	ids := make([]string, len(view.Quotes))
	for i, q := range view.Quotes {
		ids[i] = q.ID
	}
	s := model.Settings()
	return ReceiptInfo{
		Order:  view.ID,
		Date:   at.Format("02-01-06"),
		Store:  fmt.Sprintf("%s - %s", s.CompanyName, s.StoreName),
		Quotes: ids,
		Total:  view.Total,
	}
}

// ExportReceiptPDF writes a printable receipt for the order: a header, one
// row per quote with a swatch of its paper, the total, and a QR code of the
// order details.
func ExportReceiptPDF(path string, order *model.Order, at time.Time) error {
	view := order.View()
	if len(view.Quotes) == 0 {
		return fmt.Errorf("receipt for order #%d: %w", view.ID, model.ErrEmptyOrder)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	y := renderReceiptHeader(pdf, tr, view, at)

	for i, q := range view.Quotes {
		if y+rowHeight > pageHeight-marginBottom-receiptQR-10 {
			pdf.AddPage()
			y = marginTop
		}
		renderQuoteRow(pdf, tr, i+1, q, y)
		y += rowHeight
	}

	// Total
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, y+2, pageWidth-marginRight, y+2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y+4)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 7, tr("Total: "+model.FormatMoney(view.Total)), "", 0, "R", false, 0, "")

	if err := renderReceiptQR(pdf, receiptInfo(view, at), y+14); err != nil {
		return err
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write receipt %s: %w", path, err)
	}
	model.Logger().Info("receipt exported", "order", view.ID, "path", path, "quotes", len(view.Quotes))
	return nil
}

func renderReceiptHeader(pdf *fpdf.Fpdf, tr func(string) string, view model.OrderView, at time.Time) float64 {
	s := model.Settings()
	contentWidth := pageWidth - marginLeft - marginRight

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 9, tr(s.CompanyName), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(marginLeft, marginTop+9)
	pdf.CellFormat(contentWidth, 6, tr(s.StoreName), "", 0, "C", false, 0, "")

	pdf.SetXY(marginLeft, marginTop+18)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth/2, 6, fmt.Sprintf("Order #%d", view.ID), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentWidth/2, 6, "Date: "+at.Format("02-01-06"), "", 0, "R", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+26, pageWidth-marginRight, marginTop+26)

	// Column headings
	y := marginTop + 28
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(8, 6, "#", "", 0, "L", false, 0, "")
	pdf.CellFormat(swatchWidth+4, 6, "Paper", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Gift", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Extras", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth-8-swatchWidth-4-120, 6, "Cost", "", 0, "R", false, 0, "")

	return y + 8
}

func renderQuoteRow(pdf *fpdf.Fpdf, tr func(string) string, n int, q model.Quote, y float64) {
	contentWidth := pageWidth - marginLeft - marginRight
	x := marginLeft

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(x, y)
	pdf.CellFormat(8, swatchHeight, fmt.Sprintf("%d", n), "", 0, "L", false, 0, "")

	drawSwatch(pdf, x+8, y, q.Wrap)

	pdf.SetXY(x+8+swatchWidth+4, y)
	gift := fmt.Sprintf("%s %s cm", q.Gift.Shape, q.Gift.Dimensions())
	pdf.CellFormat(60, swatchHeight/2, tr(gift), "", 0, "L", false, 0, "")
	pdf.SetXY(x+8+swatchWidth+4, y+swatchHeight/2)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(60, swatchHeight/2, tr(fmt.Sprintf("%s paper, %s", q.Wrap.Quality, q.Wrap.Colour)), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(x+8+swatchWidth+4+60, y)
	pdf.CellFormat(60, swatchHeight, tr(extrasText(q)), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth-8-swatchWidth-4-120, swatchHeight, tr(model.FormatMoney(q.Total())), "", 0, "R", false, 0, "")
}

// drawSwatch fills a small rectangle with the quote's paper pattern.
func drawSwatch(pdf *fpdf.Fpdf, x, y float64, wrap model.Wrap) {
	r, g, b := wrap.Colour.RGB()

	pdf.SetFillColor(255, 255, 255)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x, y, swatchWidth, swatchHeight, "FD")

	pdf.ClipRect(x, y, swatchWidth, swatchHeight, false)
	pdf.SetFillColor(r, g, b)
	pdf.SetLineWidth(0.05)
	for p := range engine.TilePattern(swatchWidth/swatchScale, swatchHeight/swatchScale, wrap) {
		points := make([]fpdf.PointType, len(p.Vertices))
		for i, v := range p.Vertices {
			points[i] = fpdf.PointType{X: x + v.X*swatchScale, Y: y + v.Y*swatchScale}
		}
		pdf.Polygon(points, "FD")
	}
	pdf.ClipEnd()
}

func renderReceiptQR(pdf *fpdf.Fpdf, info ReceiptInfo, y float64) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt info: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	name := fmt.Sprintf("receipt_qr_%d", info.Order)
	pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions(name, pageWidth-marginRight-receiptQR, y, receiptQR, receiptQR, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

func extrasText(q model.Quote) string {
	var extras []string
	if q.IncludesBow {
		extras = append(extras, "Bow")
	}
	if q.IncludesLabel {
		extras = append(extras, fmt.Sprintf("Label %q", q.LabelText))
	}
	if len(extras) == 0 {
		return "-"
	}
	return strings.Join(extras, ", ")
}
