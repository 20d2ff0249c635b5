package render

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-doc2md/internal/doctree"
)

const (
	renderNilRootCode       = "RENDER_NIL_ROOT"
	renderDepthExceededCode = "RENDER_DEPTH_EXCEEDED"
)

var (
	// ErrNilRoot is returned when a render pass is started without a tree.
	ErrNilRoot = errors.New("render: nil document root")
	// ErrDepthExceeded is returned when a tree nests deeper than Options.MaxDepth.
	ErrDepthExceeded = errors.New("render: maximum nesting depth exceeded")
)

// Options tunes a Renderer. The zero value renders without a depth limit.
type Options struct {
	// MaxDepth bounds tree nesting; zero or negative disables the guard.
	MaxDepth int
}

// Context travels with every recursive call. Siblings and Index describe the
// node's position in its parent's child list and are only consulted by
// sections when deciding whether to emit a divider.
type Context struct {
	Indent   int
	Siblings []doctree.Node
	Index    int

	depth int
}

// Renderer converts document trees into Markdown. It holds no per-pass state
// and is safe for concurrent use.
type Renderer struct {
	maxDepth int
}

// New returns a renderer configured with opts.
func New(opts Options) *Renderer {
	return &Renderer{maxDepth: opts.MaxDepth}
}

// Document renders doc with a default renderer.
func Document(doc *doctree.Document) (string, error) {
	return New(Options{}).Document(doc)
}

// Node renders a single root node with a default renderer.
func Node(root doctree.Node) (string, error) {
	return New(Options{}).Node(root)
}

// Document renders every top-level node of doc in order and finalizes the
// trailing whitespace.
func (r *Renderer) Document(doc *doctree.Document) (string, error) {
	if doc == nil {
		return "", fatal(ErrNilRoot)
	}
	buf := NewBuffer()
	if err := r.nodes(buf, doc.Children, 0, 1); err != nil {
		return "", fatal(err)
	}
	buf.Blank()
	return buf.Finalize(), nil
}

// Node renders root as the whole document. A root section has no siblings and
// therefore never emits a divider.
func (r *Renderer) Node(root doctree.Node) (string, error) {
	if doctree.IsNil(root) {
		return "", fatal(ErrNilRoot)
	}
	buf := NewBuffer()
	if err := r.node(buf, root, Context{depth: 1}); err != nil {
		return "", fatal(err)
	}
	buf.Blank()
	return buf.Finalize(), nil
}

// nodes renders a child list, giving each child its own position.
func (r *Renderer) nodes(buf *Buffer, children []doctree.Node, indent, depth int) error {
	for i, child := range children {
		ctx := Context{
			Indent:   indent,
			Siblings: children,
			Index:    i,
			depth:    depth,
		}
		if err := r.node(buf, child, ctx); err != nil {
			return err
		}
	}
	return nil
}

// node is the dispatcher: it routes n to the renderer for its kind.
func (r *Renderer) node(buf *Buffer, n doctree.Node, ctx Context) error {
	if r.maxDepth > 0 && ctx.depth > r.maxDepth {
		return fmt.Errorf("%w: %d", ErrDepthExceeded, r.maxDepth)
	}

	switch v := n.(type) {
	case nil:
		return nil
	case *doctree.Section:
		if v == nil {
			return nil
		}
		return r.section(buf, v, ctx)
	case *doctree.Text:
		if v != nil {
			renderText(buf, v, ctx)
		}
	case *doctree.Code:
		if v != nil {
			renderCode(buf, v, ctx)
		}
	case *doctree.List:
		if v == nil {
			return nil
		}
		return r.list(buf, v, ctx)
	case *doctree.Table:
		if v != nil {
			renderTable(buf, v, ctx)
		}
	case *doctree.Diagram:
		if v != nil {
			renderDiagram(buf, v, ctx)
		}
	case *doctree.Unknown:
		tag := ""
		if v != nil {
			tag = v.Tag
		}
		renderUnknown(buf, tag, ctx)
	default:
		renderUnknown(buf, fmt.Sprintf("%T", n), ctx)
	}
	return nil
}

func fatal(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	code := renderDepthExceededCode
	if errors.Is(err, ErrNilRoot) {
		code = renderNilRootCode
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "render aborted").
		WithTextCode(code)
}
