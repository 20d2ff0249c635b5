package markdown

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

// OutputOptions describes the Markdown this module writes: GFM tables and raw
// HTML blocks for diagrams. Previews and output checks both start from it.
var OutputOptions = interfaces.ParseOptions{Extensions: []string{"gfm"}}

// GoldmarkParser renders generated pages to HTML. The engine for the default
// options is built once; overrides build a throwaway engine per call.
type GoldmarkParser struct {
	defaults interfaces.ParseOptions
	engine   goldmark.Markdown
}

// NewGoldmarkParser builds a parser for defaults. Without explicit extensions
// the OutputOptions extensions apply.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{defaults: defaults, engine: newGoldmarkEngine(defaults)}
}

// Parse renders markdown with the parser defaults.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return convert(p.engine, markdown)
}

// ParseWithOptions renders markdown with opts instead of the defaults.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	engine := p.engine
	if !sameOptions(opts, p.defaults) {
		engine = newGoldmarkEngine(opts)
	}
	return convert(engine, markdown)
}

func convert(engine goldmark.Markdown, markdown []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := engine.Convert(markdown, &out); err != nil {
		return nil, fmt.Errorf("markdown to html: %w", err)
	}
	return out.Bytes(), nil
}

func sameOptions(a, b interfaces.ParseOptions) bool {
	return a.HardWraps == b.HardWraps &&
		a.SafeMode == b.SafeMode &&
		a.Sanitize == b.Sanitize &&
		slices.Equal(a.Extensions, b.Extensions)
}

// newGoldmarkEngine is the single place goldmark gets configured. Diagrams are
// raw <svg> blocks, so raw HTML passes through unless SafeMode or Sanitize is
// set.
func newGoldmarkEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	var rendering []goldmark.Option
	if opts.HardWraps {
		rendering = append(rendering, goldmark.WithRendererOptions(html.WithHardWraps()))
	}
	if !opts.SafeMode && !opts.Sanitize {
		rendering = append(rendering, goldmark.WithRendererOptions(html.WithUnsafe()))
	}

	return goldmark.New(append(rendering,
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(extensionsFor(opts.Extensions)...),
	)...)
}

// extensionsFor resolves configured names. Unknown names are skipped and an
// empty list means the OutputOptions set.
func extensionsFor(names []string) []goldmark.Extender {
	if len(names) == 0 {
		names = OutputOptions.Extensions
	}

	var out []goldmark.Extender
	added := map[goldmark.Extender]bool{}
	for _, name := range names {
		ext := extensionNamed(strings.ToLower(strings.TrimSpace(name)))
		if ext == nil || added[ext] {
			continue
		}
		added[ext] = true
		out = append(out, ext)
	}
	return out
}

func extensionNamed(name string) goldmark.Extender {
	switch name {
	case "gfm":
		return extension.GFM
	case "table", "tables":
		return extension.Table
	case "strikethrough":
		return extension.Strikethrough
	case "linkify", "autolink":
		return extension.Linkify
	case "tasklist":
		return extension.TaskList
	case "definition":
		return extension.DefinitionList
	case "footnote":
		return extension.Footnote
	case "typographer":
		return extension.Typographer
	}
	return nil
}
