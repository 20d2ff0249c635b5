package render

import (
	"strings"

	"github.com/goliatone/go-doc2md/internal/doctree"
)

const (
	dividerLevel = 2
	dividerRule  = "---"
)

func (r *Renderer) section(buf *Buffer, s *doctree.Section, ctx Context) error {
	level := HeadingLevel(s.Level)

	buf.Blank()
	buf.Append(Indent(strings.Repeat("#", level)+" "+singleLine(s.Title), ctx.Indent))
	buf.Blank()

	if err := r.nodes(buf, s.Children, ctx.Indent, ctx.depth+1); err != nil {
		return err
	}

	if level == dividerLevel && sectionFollows(ctx.Siblings, ctx.Index) {
		buf.Blank()
		buf.Append(Indent(dividerRule, ctx.Indent))
		buf.Blank()
	}
	return nil
}

// sectionFollows scans forward from index and reports whether any later
// sibling is a section, skipping over non-section siblings.
func sectionFollows(siblings []doctree.Node, index int) bool {
	for j := index + 1; j < len(siblings); j++ {
		if s, ok := siblings[j].(*doctree.Section); ok && s != nil {
			return true
		}
	}
	return false
}
