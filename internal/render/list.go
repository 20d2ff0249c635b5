package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-doc2md/internal/doctree"
)

const itemIndentStep = 2

func (r *Renderer) list(buf *Buffer, l *doctree.List, ctx Context) error {
	if len(l.Items) == 0 {
		return nil
	}
	ordered := IsOrdered(l.Ordered)

	ordinal := 0
	for _, item := range l.Items {
		if item == nil {
			continue
		}
		ordinal++
		buf.Append(Indent(itemMarker(ordered, ordinal)+strings.TrimSpace(NormalizeNewlines(item.Text)), ctx.Indent))

		for i := range item.Children {
			block, err := r.isolated(item.Children, i, ctx.depth+1)
			if err != nil {
				return err
			}
			if strings.TrimSpace(block) == "" {
				continue
			}
			buf.Append(Indent(strings.TrimRight(block, "\n"), ctx.Indent+itemIndentStep))
		}
	}
	buf.Blank()
	return nil
}

// isolated renders one item child into its own buffer at indent zero. The
// caller re-indents the result before splicing it under the item line.
func (r *Renderer) isolated(siblings []doctree.Node, index, depth int) (string, error) {
	sub := NewBuffer()
	ctx := Context{
		Siblings: siblings,
		Index:    index,
		depth:    depth,
	}
	if err := r.node(sub, siblings[index], ctx); err != nil {
		return "", err
	}
	return sub.String(), nil
}

func itemMarker(ordered bool, ordinal int) string {
	if ordered {
		return strconv.Itoa(ordinal) + ". "
	}
	return "- "
}
