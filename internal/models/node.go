package models

// Node is the closed union of document tree nodes produced by the parser
// and annotated by the differ. Implementations are *Root, *List, *ListItem
// and *Block; consumers dispatch with a type switch.
type Node interface {
	node()
}

// BlockTag identifies the element kind of a Block node.
type BlockTag string

const (
	TagParagraph BlockTag = "p"
	TagHeading1  BlockTag = "h1"
	TagHeading2  BlockTag = "h2"
	TagHeading3  BlockTag = "h3"
	TagHeading4  BlockTag = "h4"
	TagHeading5  BlockTag = "h5"
	TagHeading6  BlockTag = "h6"
)

// ListKind distinguishes ordered from unordered lists.
type ListKind string

const (
	UnorderedList ListKind = "ul"
	OrderedList   ListKind = "ol"
)

// Status classifies a Block or ListItem after diffing.
type Status string

const (
	StatusUnchanged Status = "unchanged"
	StatusAdded     Status = "added"
	StatusRemoved   Status = "removed"
	StatusChanged   Status = "changed"
)

// Root is the document root. Children are in document order.
type Root struct {
	Children []Node `json:"children"`
}

// List holds the items of an ordered or unordered list. Children are
// expected to be *ListItem nodes.
type List struct {
	Kind     ListKind `json:"kind"`
	Children []Node   `json:"children"`
}

// ListItem is one entry of a list. Content carries the item's own text and
// inline markup; Children holds nested lists or blocks found inside the item.
type ListItem struct {
	ID       string       `json:"id"`
	Status   Status       `json:"status"`
	Content  []InlinePart `json:"content"`
	Children []Node       `json:"children,omitempty"`
}

// Block is a paragraph or heading node.
type Block struct {
	Tag     BlockTag     `json:"tag"`
	ID      string       `json:"id"`
	Status  Status       `json:"status"`
	Content []InlinePart `json:"content"`
}

func (*Root) node()     {}
func (*List) node()     {}
func (*ListItem) node() {}
func (*Block) node()    {}

// Text returns the raw text of the node's own content parts concatenated,
// without add/remove filtering.
func (b *Block) Text() string {
	return JoinParts(b.Content)
}

// Text returns the raw text of the item's own content parts concatenated.
// Nested children are not included.
func (li *ListItem) Text() string {
	return JoinParts(li.Content)
}
