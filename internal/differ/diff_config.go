package differ

import "github.com/aleister1102/htmlredline/internal/common/errorwrapper"

// Granularity selects the token unit the inline differ aligns on.
type Granularity string

const (
	// GranularityWord aligns on whitespace-delimited tokens. This is the
	// default used everywhere in the engine.
	GranularityWord Granularity = "word"
	// GranularityCharacter aligns on individual characters.
	GranularityCharacter Granularity = "character"
	// GranularityLine aligns on whole lines.
	GranularityLine Granularity = "line"
)

// InlineDiffConfig holds configuration for inline diffing
type InlineDiffConfig struct {
	Granularity           Granularity
	EnableSemanticCleanup bool
}

// DefaultInlineDiffConfig returns default configuration. Semantic cleanup
// stays off: it re-shuffles edit boundaries, and word tokens are already
// semantic units.
func DefaultInlineDiffConfig() InlineDiffConfig {
	return InlineDiffConfig{
		Granularity:           GranularityWord,
		EnableSemanticCleanup: false,
	}
}

// Validate checks that the configured granularity is a known value.
func (c InlineDiffConfig) Validate() error {
	switch c.Granularity {
	case GranularityWord, GranularityCharacter, GranularityLine:
		return nil
	}
	return errorwrapper.NewValidationError("granularity", string(c.Granularity), "must be word, character or line")
}
