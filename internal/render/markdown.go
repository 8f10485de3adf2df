package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// MarkdownRenderer converts Markdown fragments (about text, free-form prose)
// into HTML using the goldmark engine. The renderer is stateless so a single
// instance can be reused across documents without locking.
type MarkdownRenderer struct {
	engine goldmark.Markdown
}

// NewMarkdownRenderer constructs a renderer with GFM extensions and autolinks
// enabled. Raw HTML in student prose is not passed through; goldmark's default
// escaping applies.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render converts a Markdown fragment to HTML. Paragraphs separated by blank
// lines become individual <p> blocks, which is what the page template expects
// for about text.
func (m *MarkdownRenderer) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}
