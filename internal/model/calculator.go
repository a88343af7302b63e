package model

import (
	"math"
	"unicode/utf8"
)

// SheetSize returns the flat sheet needed to cover the gift before the
// overlap margin is added. ok is false when the gift has nothing to wrap.
func SheetSize(g Gift) (width, height float64, ok bool) {
	dims := g.Dimensions()
	if !dims.Valid {
		return 0, 0, false
	}
	v := dims.Values

	switch g.Shape {
	case ShapeCuboid:
		// A single zero length is accepted here; only two or more zeros
		// make the cuboid unwrappable.
		if countZeros(v) > 1 {
			return 0, 0, false
		}
		return 2*v[0] + 2*v[1], 2*v[1] + v[2], true
	case ShapeCylinder:
		if countZeros(v) > 0 {
			return 0, 0, false
		}
		return math.Pi * v[0], 2*v[0] + v[1], true
	default:
		if v[0] == 0 {
			return 0, 0, false
		}
		return 4 * v[0], 3 * v[0], true
	}
}

// UnwrapArea returns the paper area in cm² needed to wrap the gift,
// including the overlap folded over every edge. Gifts whose dimensions
// cannot be resolved wrap to 0.
func UnwrapArea(g Gift) float64 {
	width, height, ok := SheetSize(g)
	if !ok {
		return 0
	}
	margin := 2 * Settings().Overlap
	return (width + margin) * (height + margin)
}

func countZeros(values []float64) int {
	n := 0
	for _, v := range values {
		if v == 0 {
			n++
		}
	}
	return n
}

// PriceBreakdown holds the line items of a quote price in minor currency units.
type PriceBreakdown struct {
	Area      float64 `json:"area"`       // Paper area (cm²)
	Rate      float64 `json:"rate"`       // Price per cm² for the chosen quality
	PaperCost int64   `json:"paper_cost"` // ceil(Area * Rate)
	BowCost   int64   `json:"bow_cost"`
	LabelCost int64   `json:"label_cost"`
	Total     int64   `json:"total"`
}

// EstimatePrice computes the price line items for a given paper area and extras.
// The paper cost is always rounded up to the next whole minor unit.
func EstimatePrice(area float64, quality PaperQuality, includesBow, includesLabel bool, labelText string) PriceBreakdown {
	s := Settings()
	rate := s.Rate(quality)

	b := PriceBreakdown{
		Area:      area,
		Rate:      rate,
		PaperCost: int64(math.Ceil(area * rate)),
	}
	if includesBow {
		b.BowCost = s.BowPrice
	}
	if includesLabel {
		b.LabelCost = s.LabelBasePrice + s.LabelCharPrice*int64(utf8.RuneCountInString(labelText))
	}
	b.Total = b.PaperCost + b.BowCost + b.LabelCost
	return b
}

// Price returns the total price in minor currency units.
func Price(area float64, quality PaperQuality, includesBow, includesLabel bool, labelText string) int64 {
	return EstimatePrice(area, quality, includesBow, includesLabel, labelText).Total
}

// EstimateQuote returns the price line items for a quote's current configuration.
func EstimateQuote(q Quote) PriceBreakdown {
	return EstimatePrice(UnwrapArea(q.Gift), q.Wrap.Quality, q.IncludesBow, q.IncludesLabel, q.LabelText)
}
