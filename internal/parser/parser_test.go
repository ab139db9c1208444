package parser

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/htmlredline/internal/models"
)

func newTestParser() *HTMLParser {
	return NewHTMLParser(zerolog.Nop())
}

func TestParse_SingleParagraph(t *testing.T) {
	root, err := newTestParser().Parse("<p>Hello world</p>")

	require.NoError(t, err)
	require.NotNil(t, root)
	require.Len(t, root.Children, 1)

	block, ok := root.Children[0].(*models.Block)
	require.True(t, ok)
	assert.Equal(t, models.TagParagraph, block.Tag)
	assert.Equal(t, "block-0", block.ID)
	assert.Equal(t, models.StatusUnchanged, block.Status)
	assert.Equal(t, "Hello world", block.Text())
}

func TestParse_HeadingsAndParagraphsInOrder(t *testing.T) {
	root, err := newTestParser().Parse("<h1>Title</h1><p>First</p><h2>Sub</h2><p>Second</p>")

	require.NoError(t, err)
	require.NotNil(t, root)
	require.Len(t, root.Children, 4)

	tags := []models.BlockTag{models.TagHeading1, models.TagParagraph, models.TagHeading2, models.TagParagraph}
	ids := []string{"block-0", "block-1", "block-2", "block-3"}
	for i, child := range root.Children {
		block, ok := child.(*models.Block)
		require.True(t, ok)
		assert.Equal(t, tags[i], block.Tag)
		assert.Equal(t, ids[i], block.ID)
	}
}

func TestParse_BlockKeepsInlineMarkup(t *testing.T) {
	root, err := newTestParser().Parse("<p>Some <b>bold</b> text</p>")

	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	block := root.Children[0].(*models.Block)
	assert.Equal(t, "Some <b>bold</b> text", block.Text())
}

func TestParse_UnorderedList(t *testing.T) {
	root, err := newTestParser().Parse("<ul><li>One</li><li>Two</li></ul>")

	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	list, ok := root.Children[0].(*models.List)
	require.True(t, ok)
	assert.Equal(t, models.UnorderedList, list.Kind)
	require.Len(t, list.Children, 2)

	first := list.Children[0].(*models.ListItem)
	second := list.Children[1].(*models.ListItem)
	assert.Equal(t, "li-0", first.ID)
	assert.Equal(t, "One", first.Text())
	assert.Equal(t, "li-1", second.ID)
	assert.Equal(t, "Two", second.Text())
}

func TestParse_OrderedListKind(t *testing.T) {
	root, err := newTestParser().Parse("<ol><li>Step</li></ol>")

	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	list := root.Children[0].(*models.List)
	assert.Equal(t, models.OrderedList, list.Kind)
}

func TestParse_NestedListInsideItem(t *testing.T) {
	root, err := newTestParser().Parse("<ul><li>Top<ul><li>Nested</li></ul></li></ul>")

	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	list := root.Children[0].(*models.List)
	require.Len(t, list.Children, 1)

	item := list.Children[0].(*models.ListItem)
	assert.Equal(t, "Top", item.Text())
	require.Len(t, item.Children, 1)

	nestedList, ok := item.Children[0].(*models.List)
	require.True(t, ok)
	require.Len(t, nestedList.Children, 1)
	nestedItem := nestedList.Children[0].(*models.ListItem)
	assert.Equal(t, "Nested", nestedItem.Text())
}

func TestParse_SkipsEmptyListItems(t *testing.T) {
	root, err := newTestParser().Parse("<ul><li>Kept</li><li>   </li></ul>")

	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	list := root.Children[0].(*models.List)
	require.Len(t, list.Children, 1)
	assert.Equal(t, "Kept", list.Children[0].(*models.ListItem).Text())
}

func TestParse_AllEmptyListYieldsNothing(t *testing.T) {
	root, err := newTestParser().Parse("<ul><li></li><li> </li></ul>")

	require.NoError(t, err)
	assert.Nil(t, root)
}

func TestParse_ContainerRecursesIntoChildren(t *testing.T) {
	root, err := newTestParser().Parse("<div><p>Inside</p></div>")

	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	block := root.Children[0].(*models.Block)
	assert.Equal(t, models.TagParagraph, block.Tag)
	assert.Equal(t, "Inside", block.Text())
}

func TestParse_ContainerFallbackParagraph(t *testing.T) {
	root, err := newTestParser().Parse("<div>Some <b>bold</b> text</div>")

	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	block := root.Children[0].(*models.Block)
	assert.Equal(t, models.TagParagraph, block.Tag)
	assert.Equal(t, "Some <b>bold</b> text", block.Text())
}

func TestParse_UnrecognizedTagIsTransparent(t *testing.T) {
	root, err := newTestParser().Parse("<blockquote><p>Quoted</p></blockquote>")

	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	block := root.Children[0].(*models.Block)
	assert.Equal(t, "Quoted", block.Text())
}

func TestParse_BareTextFallsBackToParagraph(t *testing.T) {
	root, err := newTestParser().Parse("just some text")

	require.NoError(t, err)
	require.NotNil(t, root)
	require.Len(t, root.Children, 1)
	block := root.Children[0].(*models.Block)
	assert.Equal(t, models.TagParagraph, block.Tag)
	assert.Equal(t, "just some text", block.Text())
}

func TestParse_EmptyInputReturnsNil(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		root, err := newTestParser().Parse(input)
		require.NoError(t, err)
		assert.Nil(t, root, "input %q should yield no tree", input)
	}
}

func TestParse_MixedBlocksAndLists(t *testing.T) {
	root, err := newTestParser().Parse("<p>Intro</p><ul><li>A</li><li>B</li></ul><p>Outro</p>")

	require.NoError(t, err)
	require.Len(t, root.Children, 3)

	_, isBlock := root.Children[0].(*models.Block)
	_, isList := root.Children[1].(*models.List)
	_, isBlock2 := root.Children[2].(*models.Block)
	assert.True(t, isBlock)
	assert.True(t, isList)
	assert.True(t, isBlock2)

	// Block ids keep counting across intervening lists.
	assert.Equal(t, "block-0", root.Children[0].(*models.Block).ID)
	assert.Equal(t, "block-1", root.Children[2].(*models.Block).ID)
}
