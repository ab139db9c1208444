package config

// Default values for configuration sections.
const (
	DefaultLogFile       = ""
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100

	DefaultDiffGranularity = "word"
	DefaultSemanticCleanup = false
	DefaultOutputFormat    = "resolved"
)

// Config file discovery.
const (
	ConfigPathEnvVar      = "HTMLREDLINE_CONFIG_PATH"
	DefaultConfigFileYAML = "config.yaml"
	DefaultConfigFileJSON = "config.json"
)
