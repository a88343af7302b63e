package model

import (
	"errors"
	"strings"
)

// AppConfig holds application-wide preferences and the price list applied at startup.
type AppConfig struct {
	Settings WrapSettings `json:"settings" mapstructure:"settings"`

	// Application preferences
	ExportDir    string `json:"export_dir" mapstructure:"export_dir"`         // Where receipts are written
	StartOrderID int    `json:"start_order_id" mapstructure:"start_order_id"` // Number of the first order of a session
	Theme        string `json:"theme" mapstructure:"theme"`                   // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the stock price list.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Settings:     DefaultSettings(),
		ExportDir:    ".",
		StartOrderID: 1,
		Theme:        "system",
	}
}

// Validate reports the first setting that would make quotes meaningless.
func (c AppConfig) Validate() error {
	s := c.Settings
	switch {
	case s.Overlap < 0:
		return errors.New("overlap must not be negative")
	case s.CheapRate <= 0 || s.ExpensiveRate <= 0:
		return errors.New("paper rates must be positive")
	case s.BowPrice < 0 || s.LabelBasePrice < 0 || s.LabelCharPrice < 0:
		return errors.New("extra prices must not be negative")
	case s.MaxDimension <= 0:
		return errors.New("max dimension must be positive")
	case s.MaxLabelDisplay < 4:
		return errors.New("max label display must be at least 4")
	case strings.TrimSpace(s.StoreName) == "":
		return errors.New("store name must not be empty")
	case c.StartOrderID < 1:
		return ErrInvalidOrderID
	}
	return nil
}

// Apply installs the config's settings as the process-wide price list.
func (c AppConfig) Apply() {
	Configure(c.Settings)
}
