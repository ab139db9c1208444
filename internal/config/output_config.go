package config

// OutputConfig defines configuration for shell output
type OutputConfig struct {
	// Format selects between the annotated tree ("json") and the resolved
	// markup ("resolved").
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,outputformat"`
}

// NewDefaultOutputConfig creates default output configuration
func NewDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format: DefaultOutputFormat,
	}
}
