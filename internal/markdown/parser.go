package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Parser{
		md: md,
	}
}

// Render converts markdown to HTML. Raw HTML in the source is omitted.
func (p *Parser) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Parser) extractFrontmatter(ctx parser.Context) map[string]any {
	data := frontmatter.Get(ctx)
	if data == nil {
		return make(map[string]any)
	}

	var meta map[string]any
	err := data.Decode(&meta)
	if err != nil || meta == nil {
		return make(map[string]any)
	}
	return meta
}

type parsed struct {
	doc    ast.Node
	source []byte
	meta   map[string]any
}

func (p *Parser) parse(source []byte) *parsed {
	ctx := parser.NewContext()
	doc := p.md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))
	return &parsed{doc: doc, source: source, meta: p.extractFrontmatter(ctx)}
}
