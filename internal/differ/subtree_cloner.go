package differ

import (
	"strings"

	"github.com/aleister1102/htmlredline/internal/models"
)

// cloneSubtree copies a subtree present on only one side of the alignment.
// Every contained block and list item gets the given status and its content
// rewritten to a single whole-text part tagged added or removed.
func (r *diffRun) cloneSubtree(n models.Node, status models.Status) models.Node {
	switch t := n.(type) {
	case *models.List:
		children := make([]models.Node, 0, len(t.Children))
		for _, c := range t.Children {
			children = append(children, r.cloneSubtree(c, status))
		}
		return &models.List{Kind: t.Kind, Children: children}
	case *models.ListItem:
		item := &models.ListItem{
			ID:      r.ids.NextItemID(),
			Status:  status,
			Content: wholeParts(t.Text(), status),
		}
		for _, c := range t.Children {
			item.Children = append(item.Children, r.cloneSubtree(c, status))
		}
		return item
	case *models.Block:
		return &models.Block{
			Tag:     t.Tag,
			ID:      r.ids.NextBlockID(),
			Status:  status,
			Content: wholeParts(t.Text(), status),
		}
	default:
		return n
	}
}

// wholeParts wraps a node's full text into one part tagged by status.
func wholeParts(text string, status models.Status) []models.InlinePart {
	if text == "" {
		return []models.InlinePart{}
	}
	return []models.InlinePart{{
		Text:    text,
		Added:   status == models.StatusAdded,
		Removed: status == models.StatusRemoved,
	}}
}

// flattenText produces the plain text of a subtree for the fallback
// comparison. List child texts are joined with a single space.
func flattenText(n models.Node) string {
	switch t := n.(type) {
	case *models.Root:
		return joinNonEmpty(childTexts(t.Children))
	case *models.List:
		return joinNonEmpty(childTexts(t.Children))
	case *models.ListItem:
		texts := append([]string{t.Text()}, childTexts(t.Children)...)
		return joinNonEmpty(texts)
	case *models.Block:
		return t.Text()
	default:
		return ""
	}
}

func childTexts(children []models.Node) []string {
	texts := make([]string, 0, len(children))
	for _, c := range children {
		texts = append(texts, flattenText(c))
	}
	return texts
}

func joinNonEmpty(texts []string) string {
	nonEmpty := make([]string, 0, len(texts))
	for _, t := range texts {
		if t != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}
	return strings.Join(nonEmpty, " ")
}
