package model

import "sync/atomic"

// WrapSettings holds the process-wide pricing and geometry constants.
// It is configured once at startup and treated as read-only afterwards.
type WrapSettings struct {
	// Geometry
	Overlap      float64 `json:"overlap" mapstructure:"overlap"`             // Paper folded over each edge (cm)
	MaxDimension float64 `json:"max_dimension" mapstructure:"max_dimension"` // Largest accepted gift dimension (cm)

	// Paper rates in minor currency units per cm²
	CheapRate     float64 `json:"cheap_rate" mapstructure:"cheap_rate"`
	ExpensiveRate float64 `json:"expensive_rate" mapstructure:"expensive_rate"`

	// Extras in minor currency units
	BowPrice       int64 `json:"bow_price" mapstructure:"bow_price"`
	LabelBasePrice int64 `json:"label_base_price" mapstructure:"label_base_price"`
	LabelCharPrice int64 `json:"label_char_price" mapstructure:"label_char_price"`

	// Presentation
	MaxLabelDisplay int    `json:"max_label_display" mapstructure:"max_label_display"` // Label runes shown in a summary
	CurrencySymbol  string `json:"currency_symbol" mapstructure:"currency_symbol"`
	CompanyName     string `json:"company_name" mapstructure:"company_name"`
	StoreName       string `json:"store_name" mapstructure:"store_name"`
}

// DefaultSettings returns the stock price list and geometry constants.
func DefaultSettings() WrapSettings {
	return WrapSettings{
		Overlap:         3,
		MaxDimension:    500,
		CheapRate:       0.4,
		ExpensiveRate:   0.75,
		BowPrice:        150,
		LabelBasePrice:  50,
		LabelCharPrice:  2,
		MaxLabelDisplay: 20,
		CurrencySymbol:  "£",
		CompanyName:     "Spence's International",
		StoreName:       "Winchester",
	}
}

// Rate returns the price per cm² for a paper quality.
func (s WrapSettings) Rate(q PaperQuality) float64 {
	if q == QualityExpensive {
		return s.ExpensiveRate
	}
	return s.CheapRate
}

var activeSettings atomic.Pointer[WrapSettings]

func init() {
	s := DefaultSettings()
	activeSettings.Store(&s)
}

// Configure replaces the process-wide settings. Call it during startup,
// before any quotes are priced.
func Configure(s WrapSettings) {
	activeSettings.Store(&s)
}

// Settings returns a copy of the active settings.
func Settings() WrapSettings {
	return *activeSettings.Load()
}
