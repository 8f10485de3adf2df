package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

var ErrNilDocument = errors.New("render: document is nil")

// Renderer maps a parsed profile document plus resolved file URLs onto a
// complete static HTML page. Render is a pure function of its inputs: no
// clock reads, no randomness, byte-identical output for equal inputs.
type Renderer struct {
	tmpl     *template.Template
	markdown *MarkdownRenderer
	logger   interfaces.Logger
}

// NewRenderer parses the page template once so instances can be shared across
// documents.
func NewRenderer(provider interfaces.LoggerProvider) (*Renderer, error) {
	tmpl, err := template.New("profile-page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("render: parse page template: %w", err)
	}
	return &Renderer{
		tmpl:     tmpl,
		markdown: NewMarkdownRenderer(),
		logger:   logging.RenderLogger(provider),
	}, nil
}

var _ interfaces.ProfileRenderer = (*Renderer)(nil)

// Render satisfies interfaces.ProfileRenderer.
func (r *Renderer) Render(ctx context.Context, doc *interfaces.Document, urls interfaces.FileURLs) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if doc == nil {
		return nil, ErrNilDocument
	}

	page, err := r.buildContext(doc, urls)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render: execute page template: %w", err)
	}

	r.logger.Debug("render.page.complete",
		"name", page.Name,
		"projects", len(page.Projects),
		"bytes", buf.Len(),
	)
	return buf.Bytes(), nil
}
