package config

import (
	"fmt"
	"os"

	"cin7export/internal/logger"
)

// Account is one Cin7 tenant the exporter harvests. The API key is resolved
// from the environment at startup and never written to logs or output.
type Account struct {
	Username     string
	APIKey       string
	Abbreviation string
}

// accountSpec binds a tenant username to the environment variable carrying
// its API key and the short code used in report rows.
type accountSpec struct {
	username string
	keyEnv   string
	abbrev   string
}

var accountSpecs = []accountSpec{
	{"AlbertRogerUK", "ARL_KEY", "ARL"},
	{"AlbertRogerNetheEU", "ARNL_KEY", "ARNL"},
	{"AlbertRogerFrancEU", "ARF_KEY", "ARF"},
	{"AlbertRogerIberiEU", "ARIB_KEY", "ARIB"},
}

type Config struct {
	// Cin7 API Configuration
	APIBaseURL  string
	RowsPerPage int
	Accounts    []Account

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		APIBaseURL:    getEnv("CIN7_API_BASE_URL", "https://api.cin7.com/api/v1"),
		RowsPerPage:   250,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	for _, spec := range accountSpecs {
		config.Accounts = append(config.Accounts, Account{
			Username:     spec.username,
			APIKey:       os.Getenv(spec.keyEnv),
			Abbreviation: spec.abbrev,
		})
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("CIN7_API_BASE_URL must not be empty")
	}
	for _, spec := range accountSpecs {
		if os.Getenv(spec.keyEnv) == "" {
			return fmt.Errorf("%s is required (API key for account %s)", spec.keyEnv, spec.username)
		}
	}
	return nil
}

// Abbreviations returns the username to short-code table used in report rows.
func (c *Config) Abbreviations() map[string]string {
	abbrevs := make(map[string]string, len(c.Accounts))
	for _, account := range c.Accounts {
		abbrevs[account.Username] = account.Abbreviation
	}
	return abbrevs
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
