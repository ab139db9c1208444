package resolver

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/htmlredline/internal/common/errorwrapper"
	"github.com/aleister1102/htmlredline/internal/models"
)

// Resolver reconstructs final markup from an annotated tree and the
// reviewer's per-node decisions. The decision map is pure input: it is
// owned by the caller and never retained or mutated here.
type Resolver struct {
	logger zerolog.Logger
}

// NewResolver creates a new Resolver instance
func NewResolver(logger zerolog.Logger) *Resolver {
	return &Resolver{
		logger: logger.With().Str("component", "Resolver").Logger(),
	}
}

// Resolve walks the annotated tree in document order and emits markup.
// Accepted nodes keep the modified reading, rejected and undecided nodes
// keep the original one: an undecided change must never silently apply an
// edit the reviewer has not approved.
func (r *Resolver) Resolve(tree *models.Root, decisions models.DecisionMap) (string, error) {
	if tree == nil {
		return "", errorwrapper.NewValidationError("tree", tree, "annotated tree cannot be nil")
	}

	var sb strings.Builder
	for _, child := range tree.Children {
		r.resolveNode(&sb, child, decisions)
	}
	return sb.String(), nil
}

func (r *Resolver) resolveNode(sb *strings.Builder, n models.Node, decisions models.DecisionMap) {
	switch t := n.(type) {
	case *models.Root:
		for _, child := range t.Children {
			r.resolveNode(sb, child, decisions)
		}
	case *models.List:
		r.resolveList(sb, t, decisions)
	case *models.ListItem:
		r.resolveListItem(sb, t, decisions)
	case *models.Block:
		r.resolveBlock(sb, t, decisions)
	}
}

// resolveList emits the list only when at least one item survives its
// decision; a fully rejected added list vanishes entirely.
func (r *Resolver) resolveList(sb *strings.Builder, list *models.List, decisions models.DecisionMap) {
	var inner strings.Builder
	for _, child := range list.Children {
		r.resolveNode(&inner, child, decisions)
	}
	if inner.Len() == 0 {
		return
	}
	sb.WriteString("<")
	sb.WriteString(string(list.Kind))
	sb.WriteString(">")
	sb.WriteString(inner.String())
	sb.WriteString("</")
	sb.WriteString(string(list.Kind))
	sb.WriteString(">")
}

// resolveListItem applies the item's decision to its own content and then
// appends the resolved nested children regardless of that decision.
func (r *Resolver) resolveListItem(sb *strings.Builder, item *models.ListItem, decisions models.DecisionMap) {
	text := chosenText(item.Content, decisions.Get(item.ID))

	var nested strings.Builder
	for _, child := range item.Children {
		r.resolveNode(&nested, child, decisions)
	}

	if text == "" && nested.Len() == 0 {
		return
	}
	sb.WriteString("<li>")
	sb.WriteString(text)
	sb.WriteString(nested.String())
	sb.WriteString("</li>")
}

func (r *Resolver) resolveBlock(sb *strings.Builder, block *models.Block, decisions models.DecisionMap) {
	text := chosenText(block.Content, decisions.Get(block.ID))
	if text == "" {
		return
	}
	tag := string(block.Tag)
	sb.WriteString("<")
	sb.WriteString(tag)
	sb.WriteString(">")
	sb.WriteString(text)
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
}

// chosenText picks the reading the decision asks for: accept keeps
// unchanged plus added runs, everything else keeps unchanged plus removed.
func chosenText(parts []models.InlinePart, decision models.Decision) string {
	if decision == models.DecisionAccept {
		return models.ModifiedText(parts)
	}
	return models.OriginalText(parts)
}
