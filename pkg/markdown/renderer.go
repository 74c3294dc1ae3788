// Package markdown turns note bodies into HTML for the ?format=html view.
package markdown

import (
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultCodeStyle is the chroma style used when none is given.
const DefaultCodeStyle = "github"

// Renderer converts note content. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a renderer for GFM notes: task lists, tables and
// autolinks. Code blocks carry chroma CSS classes for codeStyle so the
// client ships the stylesheet. Raw HTML written into a note is never
// passed through.
func NewRenderer(codeStyle string) *Renderer {
	if codeStyle == "" {
		codeStyle = DefaultCodeStyle
	}
	return &Renderer{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(codeStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// single newlines in notes are line breaks, as typed
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)}
}

// Render returns the HTML for a note body. Blank content renders to "".
func (r *Renderer) Render(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", nil
	}
	var out strings.Builder
	if err := r.md.Convert([]byte(content), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}
