package cliconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Bounds for numeric settings.
const (
	MaxTimeout  = 600
	MaxPageSize = 1000
)

// Validate checks that every value is usable. Zero numeric values are
// rejected because the loaders never produce them from defaults.
func (c *CLIConfig) Validate() error {
	var errs []error

	if c.BaseURL == "" {
		errs = append(errs, errors.New("baseUrl is required"))
	} else if u, err := url.Parse(c.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("baseUrl %q is not an http(s) URL", c.BaseURL))
	}
	if c.Timeout < 1 || c.Timeout > MaxTimeout {
		errs = append(errs, fmt.Errorf("timeout %d is out of range (1-%d)", c.Timeout, MaxTimeout))
	}
	if c.PageSize < 1 || c.PageSize > MaxPageSize {
		errs = append(errs, fmt.Errorf("pageSize %d is out of range (1-%d)", c.PageSize, MaxPageSize))
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			errs = append(errs, fmt.Errorf("locale %q is not a language tag", c.Locale))
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat))
	}

	return errors.Join(errs...)
}

// Value returns the display form of key. The token is masked.
func (c *CLIConfig) Value(key string) string {
	switch key {
	case "baseUrl":
		return c.BaseURL
	case "token":
		if c.Token == "" {
			return ""
		}
		return "********"
	case "timeout":
		return fmt.Sprintf("%ds", c.Timeout)
	case "locale":
		return c.Locale
	case "pageSize":
		return fmt.Sprint(c.PageSize)
	case "json":
		return fmt.Sprint(c.JSON)
	case "logLevel":
		return c.LogLevel
	case "logFormat":
		return c.LogFormat
	}
	return ""
}
