package models

import "fmt"

// IDAllocator hands out positional node ids (block-0, block-1, ..., li-0,
// li-1, ...) during a single parse or diff walk. Ids are unique within one
// tree; identity across edits is positional, not content-addressed, so a
// decision map computed against an older tree can misattribute choices
// after a re-diff (TODO: content-derived fingerprints would make decisions
// survive re-diffing).
type IDAllocator struct {
	blocks int
	items  int
}

// NewIDAllocator creates a fresh allocator with all counters at zero.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// NextBlockID returns the next positional block id.
func (a *IDAllocator) NextBlockID() string {
	id := fmt.Sprintf("block-%d", a.blocks)
	a.blocks++
	return id
}

// NextItemID returns the next positional list item id.
func (a *IDAllocator) NextItemID() string {
	id := fmt.Sprintf("li-%d", a.items)
	a.items++
	return id
}
