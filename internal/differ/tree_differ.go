package differ

import (
	"github.com/rs/zerolog"

	"github.com/aleister1102/htmlredline/internal/common/errorwrapper"
	"github.com/aleister1102/htmlredline/internal/models"
)

// TreeDiffer aligns two parsed document trees and produces one annotated
// tree. It is a pure function of its inputs: every call allocates a fresh
// output tree and a fresh positional id sequence.
type TreeDiffer struct {
	inline *InlineDiffer
	logger zerolog.Logger
}

// TreeDifferBuilder provides a fluent interface for creating TreeDiffer
type TreeDifferBuilder struct {
	inlineCfg InlineDiffConfig
	logger    zerolog.Logger
}

// NewTreeDifferBuilder creates a new builder
func NewTreeDifferBuilder() *TreeDifferBuilder {
	return &TreeDifferBuilder{
		inlineCfg: DefaultInlineDiffConfig(),
		logger:    zerolog.Nop(),
	}
}

// WithInlineDiffConfig sets the inline diff configuration
func (b *TreeDifferBuilder) WithInlineDiffConfig(cfg InlineDiffConfig) *TreeDifferBuilder {
	b.inlineCfg = cfg
	return b
}

// WithLogger sets the logger instance
func (b *TreeDifferBuilder) WithLogger(logger zerolog.Logger) *TreeDifferBuilder {
	b.logger = logger
	return b
}

// Build creates a new TreeDiffer instance
func (b *TreeDifferBuilder) Build() (*TreeDiffer, error) {
	if err := b.inlineCfg.Validate(); err != nil {
		return nil, errorwrapper.WrapError(err, "invalid inline diff config")
	}
	return &TreeDiffer{
		inline: NewInlineDiffer(b.inlineCfg),
		logger: b.logger.With().Str("component", "TreeDiffer").Logger(),
	}, nil
}

// NewTreeDiffer creates a new TreeDiffer with default configuration.
func NewTreeDiffer(logger zerolog.Logger) (*TreeDiffer, error) {
	return NewTreeDifferBuilder().WithLogger(logger).Build()
}

// Diff aligns original and modified and returns the annotated tree. Both
// roots must come from the parser; nil roots mean "nothing to diff" and are
// the caller's responsibility to filter out.
func (td *TreeDiffer) Diff(original, modified *models.Root) (*models.Root, error) {
	if original == nil {
		return nil, errorwrapper.NewValidationError("original", original, "original tree cannot be nil")
	}
	if modified == nil {
		return nil, errorwrapper.NewValidationError("modified", modified, "modified tree cannot be nil")
	}

	run := &diffRun{inline: td.inline, ids: models.NewIDAllocator()}
	annotated := &models.Root{Children: run.diffChildren(original.Children, modified.Children)}

	td.logger.Debug().Int("nodes", len(annotated.Children)).Msg("Diffed document trees")
	return annotated, nil
}

// diffRun holds the per-call state of one tree diff.
type diffRun struct {
	inline *InlineDiffer
	ids    *models.IDAllocator
}

// diffChildren aligns two child slices by positional index. Positions
// present on only one side become whole added or removed subtrees.
func (r *diffRun) diffChildren(as, bs []models.Node) []models.Node {
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	out := make([]models.Node, 0, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(as):
			out = append(out, r.cloneSubtree(bs[i], models.StatusAdded))
		case i >= len(bs):
			out = append(out, r.cloneSubtree(as[i], models.StatusRemoved))
		default:
			out = append(out, r.diffPair(as[i], bs[i]))
		}
	}
	return out
}

// diffPair compares two nodes aligned at the same position. Same-shape
// pairs are diffed structurally; anything else takes the text fallback.
func (r *diffRun) diffPair(a, b models.Node) models.Node {
	switch bn := b.(type) {
	case *models.List:
		if an, ok := a.(*models.List); ok {
			return &models.List{Kind: bn.Kind, Children: r.diffChildren(an.Children, bn.Children)}
		}
	case *models.Block:
		if an, ok := a.(*models.Block); ok && an.Tag == bn.Tag {
			return r.diffBlock(an, bn)
		}
	case *models.ListItem:
		if an, ok := a.(*models.ListItem); ok {
			return r.diffListItem(an, bn)
		}
	}
	return r.fallbackBlock(a, b)
}

func (r *diffRun) diffBlock(a, b *models.Block) models.Node {
	parts := r.inline.Diff(a.Text(), b.Text())
	return &models.Block{
		Tag:     b.Tag,
		ID:      r.ids.NextBlockID(),
		Status:  statusForParts(parts),
		Content: parts,
	}
}

// diffListItem compares the items' own content and independently diffs the
// nested children subtrees when either side has them.
func (r *diffRun) diffListItem(a, b *models.ListItem) models.Node {
	parts := r.inline.Diff(a.Text(), b.Text())
	item := &models.ListItem{
		ID:      r.ids.NextItemID(),
		Status:  statusForParts(parts),
		Content: parts,
	}
	if len(a.Children) > 0 || len(b.Children) > 0 {
		item.Children = r.diffChildren(a.Children, b.Children)
	}
	return item
}

// fallbackBlock handles shape mismatches (paragraph vs list, differing
// heading levels): both sides are flattened to text and compared inline.
// The tag comes from b when b is a block, else from a, else paragraph.
func (r *diffRun) fallbackBlock(a, b models.Node) models.Node {
	parts := r.inline.Diff(flattenText(a), flattenText(b))
	return &models.Block{
		Tag:     fallbackTag(a, b),
		ID:      r.ids.NextBlockID(),
		Status:  statusForParts(parts),
		Content: parts,
	}
}

func fallbackTag(a, b models.Node) models.BlockTag {
	if bb, ok := b.(*models.Block); ok {
		return bb.Tag
	}
	if ab, ok := a.(*models.Block); ok {
		return ab.Tag
	}
	return models.TagParagraph
}

// statusForParts derives the node status from its inline parts: changed iff
// any part is an added or removed run.
func statusForParts(parts []models.InlinePart) models.Status {
	if models.HasChanges(parts) {
		return models.StatusChanged
	}
	return models.StatusUnchanged
}
