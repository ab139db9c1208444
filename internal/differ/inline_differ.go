package differ

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/aleister1102/htmlredline/internal/models"
)

// InlineDiffer computes ordered added/removed/equal runs between two text
// spans. Ties between minimal edit scripts are broken by matching the
// longest common prefix and suffix first, which is the behavior of the
// underlying diff engine.
type InlineDiffer struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config InlineDiffConfig
}

// NewInlineDiffer creates a new inline differ with the given configuration.
func NewInlineDiffer(config InlineDiffConfig) *InlineDiffer {
	return &InlineDiffer{
		dmp:    diffmatchpatch.New(),
		config: config,
	}
}

// Diff produces the inline parts describing the edit from original to
// modified. Excluding added parts reconstructs original exactly; excluding
// removed parts reconstructs modified exactly.
func (d *InlineDiffer) Diff(original, modified string) []models.InlinePart {
	return convertDiffs(d.computeDiffs(original, modified))
}

// computeDiffs runs the edit-script engine at the configured granularity.
func (d *InlineDiffer) computeDiffs(original, modified string) []diffmatchpatch.Diff {
	switch d.config.Granularity {
	case GranularityCharacter:
		diffs := d.dmp.DiffMain(original, modified, false)
		if d.config.EnableSemanticCleanup {
			diffs = d.dmp.DiffCleanupSemantic(diffs)
		}
		return diffs
	case GranularityLine:
		encA, encB, lines := d.dmp.DiffLinesToChars(original, modified)
		diffs := d.dmp.DiffMain(encA, encB, false)
		return d.dmp.DiffCharsToLines(diffs, lines)
	default:
		table := newTokenTable()
		encA := table.encode(tokenizeWords(original))
		encB := table.encode(tokenizeWords(modified))
		diffs := d.dmp.DiffMain(encA, encB, false)
		return table.decode(diffs)
	}
}

// convertDiffs maps engine diffs onto inline parts, dropping empty runs.
func convertDiffs(diffs []diffmatchpatch.Diff) []models.InlinePart {
	parts := make([]models.InlinePart, 0, len(diffs))
	for _, df := range diffs {
		if df.Text == "" {
			continue
		}
		switch df.Type {
		case diffmatchpatch.DiffInsert:
			parts = append(parts, models.InlinePart{Text: df.Text, Added: true})
		case diffmatchpatch.DiffDelete:
			parts = append(parts, models.InlinePart{Text: df.Text, Removed: true})
		default:
			parts = append(parts, models.InlinePart{Text: df.Text})
		}
	}
	return parts
}
