package differ

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// tokenizeWords splits s into maximal runs of whitespace and non-whitespace.
// Concatenating the tokens reproduces s exactly, which is what keeps the
// inline parts round-trippable.
func tokenizeWords(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string
	start := 0
	prevSpace := false
	for i, r := range s {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			prevSpace = isSpace
			continue
		}
		if isSpace != prevSpace {
			tokens = append(tokens, s[start:i])
			start = i
			prevSpace = isSpace
		}
	}
	return append(tokens, s[start:])
}

// tokenTable interns tokens so the edit script can run over token sequences
// encoded as runes, one rune per token. Same technique the diff library
// applies to lines, lifted to word granularity.
type tokenTable struct {
	tokens []string
	index  map[string]int
}

func newTokenTable() *tokenTable {
	return &tokenTable{
		tokens: []string{""}, // index 0 reserved so NUL never appears
		index:  make(map[string]int),
	}
}

// encode interns every token and returns the rune-encoded sequence.
func (tt *tokenTable) encode(tokens []string) string {
	var sb strings.Builder
	for _, t := range tokens {
		i, ok := tt.index[t]
		if !ok {
			i = len(tt.tokens)
			tt.tokens = append(tt.tokens, t)
			tt.index[t] = i
		}
		sb.WriteRune(tokenRune(i))
	}
	return sb.String()
}

// decode rehydrates rune-encoded diff texts back into token text.
func (tt *tokenTable) decode(diffs []diffmatchpatch.Diff) []diffmatchpatch.Diff {
	out := make([]diffmatchpatch.Diff, 0, len(diffs))
	for _, d := range diffs {
		var sb strings.Builder
		for _, r := range d.Text {
			sb.WriteString(tt.tokens[tokenIndex(r)])
		}
		out = append(out, diffmatchpatch.Diff{Type: d.Type, Text: sb.String()})
	}
	return out
}

// tokenRune maps a table index to a rune, skipping the surrogate range
// which cannot be represented in a UTF-8 string.
func tokenRune(i int) rune {
	if i >= 0xD800 {
		return rune(i + 0x800)
	}
	return rune(i)
}

func tokenIndex(r rune) int {
	if r >= 0xE000 {
		return int(r) - 0x800
	}
	return int(r)
}
