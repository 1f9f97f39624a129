// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the CLI and MCP config interfaces.
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"log.enabled",
		"limits.max_file_size",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	case "limits.max_file_size":
		return strconv.FormatInt(c.MaxFileSize(), 10), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	case "limits.max_file_size":
		// Bounds match Validate so a saved config always loads back.
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < MinMaxFileSize || n > MaxMaxFileSize {
			return fmt.Errorf("%w: limits.max_file_size must be between %d and %d",
				ErrInvalidValue, MinMaxFileSize, MaxMaxFileSize)
		}
		c.Limits.MaxFileSize = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"log.enabled":          strconv.FormatBool(c.LogEnabled()),
		"limits.max_file_size": strconv.FormatInt(c.MaxFileSize(), 10),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "log.enabled":
		return c.Log.Enabled != nil
	case "limits.max_file_size":
		return c.Limits.MaxFileSize != nil
	default:
		return false
	}
}
