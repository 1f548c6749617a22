package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvBaseURL   = "BLOGADMIN_BASE_URL"
	EnvToken     = "BLOGADMIN_TOKEN"
	EnvTimeout   = "BLOGADMIN_TIMEOUT"
	EnvLocale    = "BLOGADMIN_LOCALE"
	EnvPageSize  = "BLOGADMIN_PAGE_SIZE"
	EnvJSON      = "BLOGADMIN_JSON"
	EnvLogLevel  = "BLOGADMIN_LOG_LEVEL"
	EnvLogFormat = "BLOGADMIN_LOG_FORMAT"
)

// LoadEnvConfig applies the variables present in the environment. Numeric
// variables that do not parse are ignored.
func LoadEnvConfig(cfg *CLIConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
		cfg.Sources["baseUrl"] = SourceEnv
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
		cfg.Sources["token"] = SourceEnv
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.Timeout = timeout
			cfg.Sources["timeout"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Locale = v
		cfg.Sources["locale"] = SourceEnv
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			cfg.PageSize = size
			cfg.Sources["pageSize"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvJSON); v != "" {
		cfg.JSON = v == "true" || v == "1" || v == "yes"
		cfg.Sources["json"] = SourceEnv
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}
