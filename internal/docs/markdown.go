// Package docs loads the Markdown documents of the site, renders them to HTML
// and arranges them into sidebars.
package docs

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Markdown converts document sources to HTML. Code blocks are highlighted
// with CSS classes so that light and dark themes can share the same markup.
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown(style string) *Markdown {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Markdown{md: md}
}

type rendered struct {
	HTML        string
	FrontMatter map[string]any
	Heading     string
}

func (m *Markdown) render(source []byte) (rendered, error) {
	ctx := parser.NewContext()
	root := m.md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	frontMatter, err := meta.TryGet(ctx)
	if err != nil {
		return rendered{}, fmt.Errorf("invalid front matter: %w", err)
	}

	var buf bytes.Buffer
	if err := m.md.Renderer().Render(&buf, source, root); err != nil {
		return rendered{}, err
	}

	return rendered{
		HTML:        buf.String(),
		FrontMatter: frontMatter,
		Heading:     firstHeading(root, source),
	}, nil
}

func firstHeading(root ast.Node, source []byte) string {
	var title string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = string(h.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}
