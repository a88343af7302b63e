// Package project persists the application configuration, quote templates
// and full data backups.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variables that override config
// keys, e.g. GIFTWRAP_SETTINGS_BOW_PRICE or GIFTWRAP_EXPORT_DIR.
const EnvPrefix = "GIFTWRAP"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.giftwrap/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".giftwrap")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func setDefaults(v *viper.Viper, c model.AppConfig) {
	s := c.Settings
	v.SetDefault("settings.overlap", s.Overlap)
	v.SetDefault("settings.max_dimension", s.MaxDimension)
	v.SetDefault("settings.cheap_rate", s.CheapRate)
	v.SetDefault("settings.expensive_rate", s.ExpensiveRate)
	v.SetDefault("settings.bow_price", s.BowPrice)
	v.SetDefault("settings.label_base_price", s.LabelBasePrice)
	v.SetDefault("settings.label_char_price", s.LabelCharPrice)
	v.SetDefault("settings.max_label_display", s.MaxLabelDisplay)
	v.SetDefault("settings.currency_symbol", s.CurrencySymbol)
	v.SetDefault("settings.company_name", s.CompanyName)
	v.SetDefault("settings.store_name", s.StoreName)
	v.SetDefault("export_dir", c.ExportDir)
	v.SetDefault("start_order_id", c.StartOrderID)
	v.SetDefault("theme", c.Theme)
}

// LoadAppConfig reads an AppConfig from the given path. The format follows
// the file extension (JSON, YAML or TOML). Keys missing from the file keep
// their DefaultAppConfig values and GIFTWRAP_* environment variables
// override both. If the file does not exist, it returns the defaults with
// no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	v := viper.New()
	setDefaults(v, model.DefaultAppConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return model.AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return model.AppConfig{}, err
		}
	}

	var config model.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return model.AppConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	model.Logger().Debug("config loaded", "path", path, "store", config.Settings.StoreName)
	return config, nil
}
