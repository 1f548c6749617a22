// Package cliconfig provides configuration types and loading for the
// blogadmin CLI.
//
// Values are layered with the following precedence (highest first):
//
//  1. Command-line flags
//  2. Environment variables (BLOGADMIN_* prefix)
//  3. Local config file (.blogadminrc.yaml in the current directory)
//  4. Global config file ($XDG_CONFIG_HOME/blogadmin/config.yaml)
//  5. Default values
//
// The source of every value is tracked so `blogadmin config` can show where
// it came from.
package cliconfig

// CLIConfig is the complete configuration of the blogadmin CLI.
type CLIConfig struct {
	// Backend settings
	BaseURL string `yaml:"baseUrl" json:"baseUrl"`
	Token   string `yaml:"token,omitempty" json:"token,omitempty"`
	Timeout int    `yaml:"timeout" json:"timeout"` // seconds

	// Presentation
	Locale   string `yaml:"locale" json:"locale"`
	PageSize int    `yaml:"pageSize" json:"pageSize"`
	JSON     bool   `yaml:"json" json:"json"`

	// Logging
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Sources tracks where each value came from.
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the keys present in a loaded file, so an explicit
	// false can override a true from a lower layer.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// Where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Keys lists the config keys in display order.
var Keys = []string{"baseUrl", "token", "timeout", "locale", "pageSize", "json", "logLevel", "logFormat"}
