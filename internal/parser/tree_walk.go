package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aleister1102/htmlredline/internal/models"
)

// blockTags maps recognized block element names to their model tag.
var blockTags = map[string]models.BlockTag{
	"p":  models.TagParagraph,
	"h1": models.TagHeading1,
	"h2": models.TagHeading2,
	"h3": models.TagHeading3,
	"h4": models.TagHeading4,
	"h5": models.TagHeading5,
	"h6": models.TagHeading6,
}

// layoutContainers are transparent wrappers that may still carry raw text.
var layoutContainers = map[string]bool{
	"div":     true,
	"section": true,
	"article": true,
}

// nestedStructureSelector matches everything that must be stripped from a
// list item's own content because it is parsed separately as nested children.
const nestedStructureSelector = "ul, ol, p, h1, h2, h3, h4, h5, h6, div, section, article"

// treeWalk accumulates nodes for one Parse call. Ids are assigned as a
// monotonically increasing counter per node kind during the walk.
type treeWalk struct {
	ids *models.IDAllocator
}

func newTreeWalk() *treeWalk {
	return &treeWalk{ids: models.NewIDAllocator()}
}

// parseElements dispatches every element of sel in document order and
// concatenates the resulting nodes.
func (w *treeWalk) parseElements(sel *goquery.Selection) []models.Node {
	var nodes []models.Node
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, w.parseElement(s)...)
	})
	return nodes
}

// parseElement turns a single element into zero or more nodes.
func (w *treeWalk) parseElement(s *goquery.Selection) []models.Node {
	tag := goquery.NodeName(s)

	switch {
	case blockTags[tag] != "":
		return []models.Node{w.parseBlock(s, blockTags[tag])}
	case tag == "ul" || tag == "ol":
		return w.parseList(s, tag)
	case layoutContainers[tag]:
		return w.parseContainer(s)
	default:
		// Neither block nor container nor list: transparently recurse.
		return w.parseElements(s.Children())
	}
}

// parseBlock captures the element's inner markup verbatim as a single
// inline part. The walk does not recurse further inside a block.
func (w *treeWalk) parseBlock(s *goquery.Selection, tag models.BlockTag) models.Node {
	return &models.Block{
		Tag:     tag,
		ID:      w.ids.NextBlockID(),
		Status:  models.StatusUnchanged,
		Content: contentParts(innerMarkup(s)),
	}
}

// parseList collects the direct li children of a ul/ol element. Items whose
// own content and nested children are both empty are skipped; an all-empty
// list yields no node at all.
func (w *treeWalk) parseList(s *goquery.Selection, tag string) []models.Node {
	kind := models.UnorderedList
	if tag == "ol" {
		kind = models.OrderedList
	}

	var items []models.Node
	s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		top := w.itemTopContent(li)
		nested := w.parseElements(li.Children())
		if top == "" && len(nested) == 0 {
			return
		}
		items = append(items, &models.ListItem{
			ID:       w.ids.NextItemID(),
			Status:   models.StatusUnchanged,
			Content:  contentParts(top),
			Children: nested,
		})
	})

	if len(items) == 0 {
		return nil
	}
	return []models.Node{&models.List{Kind: kind, Children: items}}
}

// parseContainer recurses into a layout container first; if recursion finds
// no structure, the container's whole inner markup becomes one paragraph so
// unstructured HTML still produces a diffable unit.
func (w *treeWalk) parseContainer(s *goquery.Selection) []models.Node {
	children := w.parseElements(s.Children())
	if len(children) > 0 {
		return children
	}
	markup := innerMarkup(s)
	if markup == "" {
		return nil
	}
	return []models.Node{w.newParagraph(markup)}
}

// itemTopContent returns the li's own markup with nested lists, blocks and
// containers removed.
func (w *treeWalk) itemTopContent(li *goquery.Selection) string {
	clone := li.Clone()
	clone.Find(nestedStructureSelector).Remove()
	return innerMarkup(clone)
}

// newParagraph builds a plain paragraph block around raw text or markup.
func (w *treeWalk) newParagraph(text string) models.Node {
	return &models.Block{
		Tag:     models.TagParagraph,
		ID:      w.ids.NextBlockID(),
		Status:  models.StatusUnchanged,
		Content: contentParts(text),
	}
}

// innerMarkup extracts the inner HTML of a selection, trimmed. goquery only
// fails to serialize when the selection is empty, in which case the markup
// is empty as well.
func innerMarkup(s *goquery.Selection) string {
	markup, err := s.Html()
	if err != nil {
		return strings.TrimSpace(s.Text())
	}
	return strings.TrimSpace(markup)
}

// contentParts wraps raw markup into the initial content slice. Empty
// content stays an empty slice rather than a single empty part.
func contentParts(markup string) []models.InlinePart {
	if markup == "" {
		return []models.InlinePart{}
	}
	return []models.InlinePart{{Text: markup}}
}
