package models

import "encoding/json"

// JSON marshaling adds a "kind" discriminator so the annotated tree can be
// exported and consumed without Go type information.

// MarshalJSON implements json.Marshaler.
func (r *Root) MarshalJSON() ([]byte, error) {
	type alias Root
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{Kind: "root", alias: (*alias)(r)})
}

// MarshalJSON implements json.Marshaler.
func (l *List) MarshalJSON() ([]byte, error) {
	type alias List
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{Kind: "list", alias: (*alias)(l)})
}

// MarshalJSON implements json.Marshaler.
func (li *ListItem) MarshalJSON() ([]byte, error) {
	type alias ListItem
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{Kind: "list_item", alias: (*alias)(li)})
}

// MarshalJSON implements json.Marshaler.
func (b *Block) MarshalJSON() ([]byte, error) {
	type alias Block
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*alias
	}{Kind: "block", alias: (*alias)(b)})
}
