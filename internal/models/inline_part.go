package models

import "strings"

// InlinePart is a run of text/markup tagged by its membership in the
// original, the modified, or both versions of a node. At most one of
// Added/Removed is true per part.
type InlinePart struct {
	Text    string `json:"text"`
	Added   bool   `json:"added,omitempty"`
	Removed bool   `json:"removed,omitempty"`
}

// JoinParts concatenates all part texts without filtering.
func JoinParts(parts []InlinePart) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// OriginalText reconstructs the original reading of the parts, i.e. the
// concatenation with added runs excluded.
func OriginalText(parts []InlinePart) string {
	var sb strings.Builder
	for _, p := range parts {
		if p.Added {
			continue
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// ModifiedText reconstructs the modified reading of the parts, i.e. the
// concatenation with removed runs excluded.
func ModifiedText(parts []InlinePart) string {
	var sb strings.Builder
	for _, p := range parts {
		if p.Removed {
			continue
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// HasChanges reports whether any part is an added or removed run.
func HasChanges(parts []InlinePart) bool {
	for _, p := range parts {
		if p.Added || p.Removed {
			return true
		}
	}
	return false
}
