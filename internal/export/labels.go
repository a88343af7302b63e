package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/giftwrap/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// ErrNoLabels is returned by ExportGiftTags when no quote carries a label.
var ErrNoLabels = errors.New("no labelled quotes")

// TagInfo holds the data encoded into each gift tag's QR code.
type TagInfo struct {
	Order   int    `json:"order"`
	QuoteID string `json:"quote"`
	Text    string `json:"text"`
	Shape   string `json:"shape"`
	Paper   string `json:"paper"`
	Colour  string `json:"colour"`
	Bow     bool   `json:"bow"`
}

// Tag layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
	colourBarWidth  = 2.5  // mm
)

// CollectTagInfos returns one TagInfo per labelled quote, in order.
func CollectTagInfos(view model.OrderView) []TagInfo {
	var tags []TagInfo
	for _, q := range view.Quotes {
		if !q.IncludesLabel {
			continue
		}
		tags = append(tags, TagInfo{
			Order:   view.ID,
			QuoteID: q.ID,
			Text:    q.LabelText,
			Shape:   q.Gift.Shape.String(),
			Paper:   q.Wrap.Quality.String(),
			Colour:  q.Wrap.Colour.String(),
			Bow:     q.IncludesBow,
		})
	}
	return tags
}

// ExportGiftTags generates a PDF sheet of printable tags, one for every
// quote that includes a label. Each tag shows the label text in a strip of
// the paper colour and a QR code of the quote details.
func ExportGiftTags(path string, order *model.Order) error {
	view := order.View()
	tags := CollectTagInfos(view)
	if len(tags) == 0 {
		return fmt.Errorf("gift tags for order #%d: %w", view.ID, ErrNoLabels)
	}

	colours := make(map[string]model.Colour, len(view.Quotes))
	for _, q := range view.Quotes {
		colours[q.ID] = q.Wrap.Colour
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, tag := range tags {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderTag(pdf, tr, x, y, tag, colours[tag.QuoteID]); err != nil {
			return fmt.Errorf("failed to render tag for quote %s: %w", tag.QuoteID, err)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write gift tags %s: %w", path, err)
	}
	model.Logger().Info("gift tags exported", "order", view.ID, "path", path, "tags", len(tags))
	return nil
}

// renderTag draws a single tag at the given position.
func renderTag(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, info TagInfo, colour model.Colour) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	r, g, b := colour.RGB()
	pdf.SetFillColor(r, g, b)
	pdf.Rect(x, y, colourBarWidth, labelHeight, "F")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal tag info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", info.Order, info.QuoteID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + colourBarWidth + labelPadding
	textW := labelWidth - colourBarWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	text := tr(info.Text)
	if pdf.GetStringWidth(text) > textW {
		for len(text) > 0 && pdf.GetStringWidth(text+"...") > textW {
			text = text[:len(text)-1]
		}
		text += "..."
	}
	pdf.CellFormat(textW, 5, text, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+7)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%s - %s %s", info.Shape, info.Colour, info.Paper), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+11)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Order #%d / %s", info.Order, info.QuoteID), "", 1, "L", false, 0, "")

	if info.Bow {
		pdf.SetXY(textX, y+labelPadding+14.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "With bow", "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}
