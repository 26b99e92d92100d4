package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"salsac-engine/internal/taxmodel"
)

// Config holds application configuration
type Config struct {
	Port              string
	LogLevel          string
	RegimeFile        string
	RegimeRegistryURL string
	TaxYear           string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RegimeFile:        getEnv("REGIME_FILE", ""),
		RegimeRegistryURL: getEnv("REGIME_REGISTRY_URL", ""),
		TaxYear:           getEnv("TAX_YEAR", taxmodel.DefaultTaxYear),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Regime returns the regime to serve by default: the file named by
// REGIME_FILE if set, otherwise the embedded one.
func (c *Config) Regime() (taxmodel.Regime, error) {
	if c.RegimeFile == "" {
		return taxmodel.DefaultRegime(), nil
	}
	return taxmodel.LoadRegime(c.RegimeFile)
}

// NewLogger builds the JSON logger used across the service.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
