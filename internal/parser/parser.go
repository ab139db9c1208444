package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/aleister1102/htmlredline/internal/common/errorwrapper"
	"github.com/aleister1102/htmlredline/internal/models"
)

// HTMLParser converts an HTML fragment into the simplified document tree
// consumed by the differ. Standards-compliant parsing of the raw input is
// delegated to goquery (x/net/html underneath), so malformed HTML never
// surfaces as an error here.
type HTMLParser struct {
	logger zerolog.Logger
}

// HTMLParserBuilder provides a fluent interface for creating HTMLParser
type HTMLParserBuilder struct {
	logger zerolog.Logger
}

// NewHTMLParserBuilder creates a new builder
func NewHTMLParserBuilder() *HTMLParserBuilder {
	return &HTMLParserBuilder{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger instance
func (b *HTMLParserBuilder) WithLogger(logger zerolog.Logger) *HTMLParserBuilder {
	b.logger = logger
	return b
}

// Build creates a new HTMLParser instance
func (b *HTMLParserBuilder) Build() *HTMLParser {
	return &HTMLParser{
		logger: b.logger.With().Str("component", "HTMLParser").Logger(),
	}
}

// NewHTMLParser creates a new HTMLParser instance
func NewHTMLParser(logger zerolog.Logger) *HTMLParser {
	return NewHTMLParserBuilder().WithLogger(logger).Build()
}

// Parse walks the element tree of htmlContent in document order and returns
// the collected root. A nil root with nil error means the input holds no
// diffable content; callers must treat that as "nothing to diff".
func (p *HTMLParser) Parse(htmlContent string) (*models.Root, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse HTML input")
	}

	walk := newTreeWalk()
	body := doc.Find("body").First()
	children := walk.parseElements(body.Children())

	if len(children) == 0 {
		// No recognized structure anywhere: degrade to one paragraph built
		// from the document's whole text so unstructured input still yields
		// a diffable unit.
		text := strings.TrimSpace(body.Text())
		if text == "" {
			p.logger.Debug().Msg("Input contains no diffable content")
			return nil, nil
		}
		children = []models.Node{walk.newParagraph(text)}
	}

	p.logger.Debug().Int("top_level_nodes", len(children)).Msg("Parsed HTML into document tree")
	return &models.Root{Children: children}, nil
}
