package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one ATX or setext heading found in a Markdown body.
type Heading struct {
	Level int
	Text  string
}

// Outline summarises the block structure of a Markdown body.
type Outline struct {
	Headings   []Heading
	Tables     int
	CodeBlocks int
	Dividers   int
	HTMLBlocks int
}

// HeadingTexts returns heading texts in document order.
func (o Outline) HeadingTexts() []string {
	out := make([]string, 0, len(o.Headings))
	for _, h := range o.Headings {
		out = append(out, h.Text)
	}
	return out
}

var outlineEngine = newGoldmarkEngine(OutputOptions)

// BuildOutline parses source (front matter is stripped first) and collects its
// headings, GFM tables, fenced code blocks, thematic breaks, and raw HTML
// blocks.
func BuildOutline(source []byte) (Outline, error) {
	body, err := StripFrontMatter(source)
	if err != nil {
		return Outline{}, err
	}

	doc := outlineEngine.Parser().Parse(text.NewReader(body))

	var outline Outline
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			outline.Headings = append(outline.Headings, Heading{
				Level: node.Level,
				Text:  strings.TrimSpace(string(node.Text(body))),
			})
			return ast.WalkSkipChildren, nil
		case *east.Table:
			outline.Tables++
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			outline.CodeBlocks++
		case *ast.ThematicBreak:
			outline.Dividers++
		case *ast.HTMLBlock:
			outline.HTMLBlocks++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Outline{}, err
	}
	return outline, nil
}
