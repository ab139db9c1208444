package config

// DiffConfig defines configuration for the diff engine
type DiffConfig struct {
	Granularity           string `json:"granularity,omitempty" yaml:"granularity,omitempty" validate:"omitempty,granularity"`
	EnableSemanticCleanup bool   `json:"enable_semantic_cleanup" yaml:"enable_semantic_cleanup"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		Granularity:           DefaultDiffGranularity,
		EnableSemanticCleanup: DefaultSemanticCleanup,
	}
}
