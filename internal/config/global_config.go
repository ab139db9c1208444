package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/aleister1102/htmlredline/internal/common/errorwrapper"
	"github.com/aleister1102/htmlredline/internal/common/filemanager"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	DiffConfig   DiffConfig   `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	LogConfig    LogConfig    `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	OutputConfig OutputConfig `json:"output_config,omitempty" yaml:"output_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiffConfig:   NewDefaultDiffConfig(),
		LogConfig:    NewDefaultLogConfig(),
		OutputConfig: NewDefaultOutputConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// The path is resolved by GetConfigPath; both YAML and JSON are supported,
// picked by file extension. A missing config file is not an error: defaults
// apply.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	fileManager := filemanager.NewFileManager(logger)
	if !fileManager.FileExists(filePath) {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := fileManager.ReadFileContent(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Loaded global configuration")
	return cfg, nil
}

// parseConfigContent decodes YAML or JSON config data based on extension.
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".json":
		return json.Unmarshal(data, cfg)
	default:
		// Unknown extension: try YAML first, then JSON.
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return nil
		}
		return json.Unmarshal(data, cfg)
	}
}
