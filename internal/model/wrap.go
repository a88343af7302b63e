package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PaperQuality is a priced grade of wrapping paper.
type PaperQuality int

const (
	QualityCheap     PaperQuality = iota // Trapezium pattern
	QualityExpensive                     // Hexagon pattern
)

func (q PaperQuality) String() string {
	if q == QualityExpensive {
		return "Expensive"
	}
	return "Cheap"
}

// Abbrev returns the three letter code used in quote summaries.
func (q PaperQuality) Abbrev() string {
	if q == QualityExpensive {
		return "EXP"
	}
	return "CHP"
}

// ParsePaperQuality accepts a name, an abbreviation or the selection index (0 or 1).
func ParsePaperQuality(s string) (PaperQuality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "cheap", "chp", "low":
		return QualityCheap, nil
	case "1", "expensive", "exp", "high":
		return QualityExpensive, nil
	}
	return QualityCheap, fmt.Errorf("unknown paper quality %q", s)
}

// Colour is a member of the fixed wrapping paper palette.
type Colour int

const (
	ColourPurple Colour = iota
	ColourDarkSlateGray4
	ColourDeepSkyBlue
	ColourLightSeaGreen
	ColourVioletRed2
	ColourGold
)

type paletteEntry struct {
	name string
	hex  string
}

var palette = []paletteEntry{
	{name: "Purple", hex: "#A020F0"},
	{name: "DarkSlateGray4", hex: "#528B8B"},
	{name: "Deep Sky Blue", hex: "#00BFFF"},
	{name: "Light Sea Green", hex: "#20B2AA"},
	{name: "VioletRed2", hex: "#EE3A8C"},
	{name: "Gold", hex: "#FFD700"},
}

// Palette returns every selectable colour in display order.
func Palette() []Colour {
	colours := make([]Colour, len(palette))
	for i := range palette {
		colours[i] = Colour(i)
	}
	return colours
}

// Valid reports whether c is a palette member.
func (c Colour) Valid() bool {
	return c >= 0 && int(c) < len(palette)
}

func (c Colour) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Colour(%d)", int(c))
	}
	return palette[c].name
}

// Hex returns the colour as #RRGGBB, or black for an invalid colour.
func (c Colour) Hex() string {
	if !c.Valid() {
		return "#000000"
	}
	return palette[c].hex
}

// RGB returns the 0-255 channels of the colour.
func (c Colour) RGB() (r, g, b int) {
	v, _ := strconv.ParseUint(strings.TrimPrefix(c.Hex(), "#"), 16, 32)
	return int(v>>16) & 0xFF, int(v>>8) & 0xFF, int(v) & 0xFF
}

// ParseColour matches a palette name ignoring case and spaces, or a palette index.
func ParseColour(s string) (Colour, error) {
	key := normalizeColourName(s)
	if i, err := strconv.Atoi(key); err == nil {
		if c := Colour(i); c.Valid() {
			return c, nil
		}
	}
	for i, entry := range palette {
		if normalizeColourName(entry.name) == key {
			return Colour(i), nil
		}
	}
	return ColourPurple, fmt.Errorf("unknown colour %q", s)
}

func normalizeColourName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// Wrap describes the paper chosen for a quote.
type Wrap struct {
	Colour  Colour       `json:"colour"`
	Quality PaperQuality `json:"quality"`
}

// NewWrap returns the default paper: cheap purple.
func NewWrap() Wrap {
	return Wrap{Colour: ColourPurple, Quality: QualityCheap}
}

// Copy returns an independent copy of the wrap.
func (w Wrap) Copy() Wrap {
	return Wrap{Colour: w.Colour, Quality: w.Quality}
}
