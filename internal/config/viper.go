// Package config provides Viper-backed helpers for reading credentials
// and settings from the environment and config files.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/RyoK3N/Calendly-API/pkg/errors"
)

// Environment variables holding the vendor API tokens.
const (
	CalendlyAPIKeyVar = "CALENDLY_API_KEY"
	MondayAPIKeyVar   = "MONDAY_API_KEY"
)

// GetString reads a string value, checking both Viper configuration and
// the OS environment. Viper wins when both are set.
func GetString(key string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return os.Getenv(key)
}

// APIKey retrieves a required API token by its environment variable
// name. A missing token is a configuration failure, reported before any
// network call is attempted.
func APIKey(component, envVar string) (string, error) {
	key := GetString(envVar)
	if key == "" {
		return "", errors.NewConfigError(component, envVar+" not set in environment", errors.ErrAPIKeyRequired)
	}
	return key, nil
}

// CalendlyAPIKey returns the Calendly token or a ConfigError.
func CalendlyAPIKey() (string, error) {
	return APIKey("calendly", CalendlyAPIKeyVar)
}

// MondayAPIKey returns the Monday.com token or a ConfigError.
func MondayAPIKey() (string, error) {
	return APIKey("monday", MondayAPIKeyVar)
}
