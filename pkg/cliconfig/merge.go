package cliconfig

// MergeConfig merges source into target, updating source tracking. Only
// non-zero values from source are applied, except booleans explicitly
// present in a loaded file.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.BaseURL != "" {
		target.BaseURL = source.BaseURL
		target.Sources["baseUrl"] = sourceType
	}
	if source.Token != "" {
		target.Token = source.Token
		target.Sources["token"] = sourceType
	}
	if source.Timeout != 0 {
		target.Timeout = source.Timeout
		target.Sources["timeout"] = sourceType
	}
	if source.Locale != "" {
		target.Locale = source.Locale
		target.Sources["locale"] = sourceType
	}
	if source.PageSize != 0 {
		target.PageSize = source.PageSize
		target.Sources["pageSize"] = sourceType
	}
	if boolIsSet(source, "json") {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
}

// boolIsSet reports whether a boolean identified by its YAML key was
// explicitly set. Configs built in code have no SetFields; for them only
// true counts as set.
func boolIsSet(cfg *CLIConfig, yamlKey string) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	return yamlKey == "json" && cfg.JSON
}
