package doctree

// Node is one entity of a document tree. The set of implementations is closed:
// only the types declared in this package satisfy it.
type Node interface {
	node()
}

// Document is the root container handed to the renderer. Children keep their
// source order.
type Document struct {
	Title    string
	Children []Node
}

// Section is a headed block. Level keeps the raw attribute so coercion
// happens at render time with the documented defaults.
type Section struct {
	Title    string
	Level    string
	Children []Node
}

// Text is a plain paragraph.
type Text struct {
	Body string
}

// Code is a fenced source block.
type Code struct {
	Language string
	Source   string
}

// List holds ordered or bulleted items. Ordered keeps the raw attribute.
type List struct {
	Ordered string
	Items   []*Item
}

// Item is a list entry with leading text and optional nested blocks.
type Item struct {
	Text     string
	Children []Node
}

// Table is a grid whose first row is always rendered as the header.
type Table struct {
	Rows []*Row
}

// Row is a table row.
type Row struct {
	Cells []string
}

// Diagram carries raw diagram markup. An empty Caption means no caption.
type Diagram struct {
	Format  string
	Caption string
	Source  string
}

// Unknown stands in for an element outside the supported vocabulary.
type Unknown struct {
	Tag      string
	Children []Node
}

func (*Section) node() {}
func (*Text) node()    {}
func (*Code) node()    {}
func (*List) node()    {}
func (*Table) node()   {}
func (*Diagram) node() {}
func (*Unknown) node() {}

var (
	_ Node = (*Section)(nil)
	_ Node = (*Text)(nil)
	_ Node = (*Code)(nil)
	_ Node = (*List)(nil)
	_ Node = (*Table)(nil)
	_ Node = (*Diagram)(nil)
	_ Node = (*Unknown)(nil)
)
