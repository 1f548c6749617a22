package cliconfig

// DefaultBaseURL is the backend the CLI talks to when nothing else is set.
const DefaultBaseURL = "http://localhost:8080"

// DefaultTimeout is the request timeout in seconds.
const DefaultTimeout = 30

// DefaultLocale selects English titles.
const DefaultLocale = "en"

// DefaultPageSize is the page size of `list`.
const DefaultPageSize = 10

// Logging defaults; the CLI stays quiet unless asked.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// NewDefault creates a CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		Locale:    DefaultLocale,
		PageSize:  DefaultPageSize,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}
	for _, key := range Keys {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
