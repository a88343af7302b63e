package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Quote is one priced gift-wrapping job. Gift and Wrap are held by value,
// so a Quote never shares them with another Quote.
type Quote struct {
	ID            string `json:"id"`
	Gift          Gift   `json:"gift"`
	Wrap          Wrap   `json:"wrap"`
	IncludesLabel bool   `json:"includes_label"`
	LabelText     string `json:"label_text"`
	IncludesBow   bool   `json:"includes_bow"`
}

// NewQuote returns a default quote with a fresh ID.
func NewQuote() Quote {
	return Quote{
		ID:   uuid.New().String()[:8],
		Gift: NewGift(),
		Wrap: NewWrap(),
	}
}

// Total returns the price of the quote in minor currency units.
// It is recomputed from the current field values on every call.
func (q Quote) Total() int64 {
	return Price(UnwrapArea(q.Gift), q.Wrap.Quality, q.IncludesBow, q.IncludesLabel, q.LabelText)
}

// Copy returns a quote with equal field values and no shared state.
func (q Quote) Copy() Quote {
	cp := q
	cp.Gift = Gift{Shape: q.Gift.Shape, X: q.Gift.X, Y: q.Gift.Y, Z: q.Gift.Z}
	cp.Wrap = q.Wrap.Copy()
	return cp
}

// Summary returns the one-line description shown in order listings and receipts:
//
//	[Cost: £6.63] - [Gift: Cube, 10.0 CM] - [Wrap: CHP, Purple] - [NO BOW, NO LABEL]
func (q Quote) Summary() string {
	bow := "NO BOW"
	if q.IncludesBow {
		bow = "BOW"
	}
	label := "NO LABEL"
	if q.IncludesLabel {
		label = "LBL: " + truncateLabel(q.LabelText, Settings().MaxLabelDisplay)
	}

	return fmt.Sprintf("[Cost: %s] - [Gift: %s, %s CM] - [Wrap: %s, %s] - [%s, %s]",
		FormatMoney(q.Total()),
		q.Gift.Shape,
		q.Gift.Dimensions().String(),
		q.Wrap.Quality.Abbrev(),
		q.Wrap.Colour,
		bow,
		label,
	)
}

// String joins the values with "×" to one decimal place, or returns "?"
// when the dimensions are not valid.
func (d Dimensions) String() string {
	if !d.Valid {
		return "?"
	}
	parts := make([]string, len(d.Values))
	for i, v := range d.Values {
		parts[i] = fmt.Sprintf("%.1f", v)
	}
	return strings.Join(parts, "×")
}

// truncateLabel shortens text longer than max runes to max-4 runes plus
// "...". Limits too small for an ellipsis cut to max runes.
func truncateLabel(text string, max int) string {
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	if max < 4 {
		return string(runes[:max])
	}
	return string(runes[:max-4]) + "..."
}
