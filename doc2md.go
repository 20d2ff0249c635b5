// Package doc2md converts XML document trees (sections, text, code, lists,
// tables, diagrams) into Markdown, either as one file or as a multi-page site.
package doc2md

import (
	"context"
	"io"

	convertcmd "github.com/goliatone/go-doc2md/internal/commands/convert"
	"github.com/goliatone/go-doc2md/internal/di"
	"github.com/goliatone/go-doc2md/internal/doctree"
	"github.com/goliatone/go-doc2md/internal/generator"
	"github.com/goliatone/go-doc2md/internal/inspect"
	"github.com/goliatone/go-doc2md/internal/render"
	"github.com/goliatone/go-doc2md/internal/xmlsource"
	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

type (
	Document = doctree.Document
	Node     = doctree.Node
	Section  = doctree.Section
	Text     = doctree.Text
	Code     = doctree.Code
	List     = doctree.List
	Item     = doctree.Item
	Table    = doctree.Table
	Row      = doctree.Row
	Diagram  = doctree.Diagram
	Unknown  = doctree.Unknown
)

// GeneratorService writes converted documents.
type GeneratorService = generator.Service

type (
	ConvertOptions = generator.ConvertOptions
	SiteOptions    = generator.SiteOptions
	BuildResult    = generator.BuildResult
	Artifact       = generator.Artifact
	Finding        = inspect.Finding
)

// CommandHandlers groups the go-command handlers for conversions.
type CommandHandlers = convertcmd.HandlerSet

var (
	ErrNilRoot       = render.ErrNilRoot
	ErrDepthExceeded = render.ErrDepthExceeded
)

// Render converts doc to Markdown without a depth limit.
func Render(doc *Document) (string, error) {
	return render.Document(doc)
}

// RenderNode converts a single node, treated as the root, to Markdown.
func RenderNode(node Node) (string, error) {
	return render.Node(node)
}

// Parse reads an XML document tree from r.
func Parse(r io.Reader) (*Document, error) {
	return xmlsource.Parse(r)
}

// ParseFile reads an XML document tree from path.
func ParseFile(path string) (*Document, error) {
	return xmlsource.ParseFile(path)
}

// Module is the configured entry point of the converter.
type Module struct {
	container *di.Container
}

// New builds a Module from cfg.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced wiring.
func (m *Module) Container() *di.Container {
	return m.container
}

// Render converts doc using the configured depth limit.
func (m *Module) Render(doc *Document) (string, error) {
	return m.container.Renderer().Document(doc)
}

// Convert writes doc (or the XML at opts.Source) as one Markdown file.
func (m *Module) Convert(ctx context.Context, opts ConvertOptions) (*BuildResult, error) {
	return m.container.GeneratorService().Convert(ctx, opts)
}

// BuildSite writes one page per top-level section plus an index.
func (m *Module) BuildSite(ctx context.Context, opts SiteOptions) (*BuildResult, error) {
	return m.container.GeneratorService().BuildSite(ctx, opts)
}

// Inspect reports structural problems in doc.
func (m *Module) Inspect(doc *Document) ([]Finding, error) {
	return inspect.Check(m.container.Renderer(), doc)
}

func (m *Module) Generator() GeneratorService {
	return m.container.GeneratorService()
}

func (m *Module) Markdown() interfaces.MarkdownParser {
	return m.container.MarkdownParser()
}

func (m *Module) Commands() *CommandHandlers {
	return m.container.CommandHandlers()
}
