package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"filecredit/internal/report"
)

const EnvPrefix = "FILECREDIT"

type Config struct {
	// NoOpen suppresses opening the report after the run (FILECREDIT_NO_OPEN).
	// Toggles are read by toggle, not by the decoder.
	NoOpen     bool   `mapstructure:"-"`
	NoTUI      bool   `mapstructure:"-"`
	LogLevel   string `mapstructure:"log_level"`
	LogFile    string `mapstructure:"log_file"`
	ReportName string `mapstructure:"report_name"`
}

// Load reads settings from FILECREDIT_* environment variables and an
// optional filecredit.yaml in the working directory or $HOME/.filecredit.
// Environment variables win over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("filecredit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.filecredit")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("no_open", false)
	v.SetDefault("no_tui", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("report_name", report.DefaultName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.NoOpen = toggle(v.GetString("no_open"))
	cfg.NoTUI = toggle(v.GetString("no_tui"))
	if cfg.ReportName == "" {
		cfg.ReportName = report.DefaultName
	}
	return &cfg, nil
}

// toggle treats any non-empty value other than 0/false/no/off/n as set.
func toggle(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "f", "no", "n", "off":
		return false
	default:
		return true
	}
}
