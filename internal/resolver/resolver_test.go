package resolver

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/htmlredline/internal/differ"
	"github.com/aleister1102/htmlredline/internal/models"
	"github.com/aleister1102/htmlredline/internal/parser"
)

func diffTrees(t *testing.T, originalHTML, modifiedHTML string) *models.Root {
	t.Helper()
	p := parser.NewHTMLParser(zerolog.Nop())
	original, err := p.Parse(originalHTML)
	require.NoError(t, err)
	require.NotNil(t, original)
	modified, err := p.Parse(modifiedHTML)
	require.NoError(t, err)
	require.NotNil(t, modified)

	td, err := differ.NewTreeDiffer(zerolog.Nop())
	require.NoError(t, err)
	annotated, err := td.Diff(original, modified)
	require.NoError(t, err)
	return annotated
}

// collectDecisions returns a map assigning the same decision to every
// interactive node in the tree.
func collectDecisions(n models.Node, decision models.Decision, into models.DecisionMap) {
	switch t := n.(type) {
	case *models.Root:
		for _, c := range t.Children {
			collectDecisions(c, decision, into)
		}
	case *models.List:
		for _, c := range t.Children {
			collectDecisions(c, decision, into)
		}
	case *models.ListItem:
		into[t.ID] = decision
		for _, c := range t.Children {
			collectDecisions(c, decision, into)
		}
	case *models.Block:
		into[t.ID] = decision
	}
}

func TestResolver_NilTree(t *testing.T) {
	_, err := NewResolver(zerolog.Nop()).Resolve(nil, nil)
	assert.Error(t, err)
}

func TestResolver_SelfDiffReproducesInput(t *testing.T) {
	html := "<h1>Title</h1><p>Body text</p><ul><li>One</li><li>Two</li></ul>"
	annotated := diffTrees(t, html, html)

	resolved, err := NewResolver(zerolog.Nop()).Resolve(annotated, nil)

	require.NoError(t, err)
	assert.Equal(t, html, resolved)
}

func TestResolver_UndecidedKeepsOriginal(t *testing.T) {
	annotated := diffTrees(t,
		"<p>Hard hat (Class G)</p>",
		"<p>Hard hat (Class E or G)</p>",
	)

	resolved, err := NewResolver(zerolog.Nop()).Resolve(annotated, nil)

	require.NoError(t, err)
	assert.Equal(t, "<p>Hard hat (Class G)</p>", resolved)
}

func TestResolver_AcceptAppliesModified(t *testing.T) {
	annotated := diffTrees(t,
		"<p>Hard hat (Class G)</p>",
		"<p>Hard hat (Class E or G)</p>",
	)

	resolved, err := NewResolver(zerolog.Nop()).Resolve(annotated, models.DecisionMap{
		"block-0": models.DecisionAccept,
	})

	require.NoError(t, err)
	assert.Equal(t, "<p>Hard hat (Class E or G)</p>", resolved)
}

func TestResolver_AcceptAllRejectAllDuality(t *testing.T) {
	originalHTML := "<h1>Guide</h1><p>Wear gloves</p><ul><li>Hammer</li><li>Saw</li><li>Chisel</li></ul>"
	modifiedHTML := "<h1>Guide</h1><p>Always wear gloves</p><ul><li>Hammer</li><li>Saw</li></ul>"
	annotated := diffTrees(t, originalHTML, modifiedHTML)
	r := NewResolver(zerolog.Nop())

	acceptAll := models.DecisionMap{}
	collectDecisions(annotated, models.DecisionAccept, acceptAll)
	rejectAll := models.DecisionMap{}
	collectDecisions(annotated, models.DecisionReject, rejectAll)

	accepted, err := r.Resolve(annotated, acceptAll)
	require.NoError(t, err)
	assert.Equal(t, modifiedHTML, accepted)

	rejected, err := r.Resolve(annotated, rejectAll)
	require.NoError(t, err)
	assert.Equal(t, originalHTML, rejected)
}

func TestResolver_RemovedItemDecision(t *testing.T) {
	annotated := diffTrees(t,
		"<ul><li>A</li><li>B</li><li>C</li></ul>",
		"<ul><li>A</li><li>B</li></ul>",
	)
	r := NewResolver(zerolog.Nop())

	// Undecided: the removal is not applied, all three items survive.
	resolved, err := r.Resolve(annotated, nil)
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>A</li><li>B</li><li>C</li></ul>", resolved)

	// Accepting the removal drops the item.
	resolved, err = r.Resolve(annotated, models.DecisionMap{
		"li-2": models.DecisionAccept,
	})
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>A</li><li>B</li></ul>", resolved)
}

func TestResolver_RejectedAdditionVanishes(t *testing.T) {
	annotated := diffTrees(t,
		"<p>First</p>",
		"<p>First</p><p>Second</p>",
	)
	r := NewResolver(zerolog.Nop())

	resolved, err := r.Resolve(annotated, models.DecisionMap{
		"block-1": models.DecisionReject,
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>First</p>", resolved)

	resolved, err = r.Resolve(annotated, models.DecisionMap{
		"block-1": models.DecisionAccept,
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>First</p><p>Second</p>", resolved)
}

func TestResolver_NestedChildrenEmittedRegardlessOfItemDecision(t *testing.T) {
	annotated := diffTrees(t,
		"<ul><li>Top old<ul><li>child</li></ul></li></ul>",
		"<ul><li>Top new<ul><li>child</li></ul></li></ul>",
	)

	// Rejecting the item's own change must not suppress its nested subtree.
	// The outer item is li-0: the differ numbers an item before descending
	// into its nested children.
	resolved, err := NewResolver(zerolog.Nop()).Resolve(annotated, models.DecisionMap{
		"li-0": models.DecisionReject,
	})

	require.NoError(t, err)
	assert.Equal(t, "<ul><li>Top old<ul><li>child</li></ul></li></ul>", resolved)
}

func TestResolver_WholeAddedListRejectedLeavesNothing(t *testing.T) {
	annotated := diffTrees(t,
		"<p>Intro</p>",
		"<p>Intro</p><ul><li>New item</li></ul>",
	)

	rejectAll := models.DecisionMap{}
	collectDecisions(annotated, models.DecisionReject, rejectAll)

	resolved, err := NewResolver(zerolog.Nop()).Resolve(annotated, rejectAll)

	require.NoError(t, err)
	assert.Equal(t, "<p>Intro</p>", resolved)
}
