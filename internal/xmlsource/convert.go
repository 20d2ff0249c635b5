package xmlsource

import (
	"strings"

	"github.com/goliatone/go-doc2md/internal/doctree"
)

const (
	tagSection = "section"
	tagText    = "text"
	tagCode    = "code"
	tagList    = "list"
	tagItem    = "item"
	tagTable   = "table"
	tagRow     = "row"
	tagCell    = "cell"
	tagDiagram = "diagram"
)

func toDocument(root *element) *doctree.Document {
	doc := &doctree.Document{Title: strings.TrimSpace(root.attr("title"))}
	if root.name == tagSection {
		doc.Children = []doctree.Node{toNode(root)}
		return doc
	}
	doc.Children = toNodes(root.children)
	return doc
}

func toNodes(elements []*element) []doctree.Node {
	if len(elements) == 0 {
		return nil
	}
	nodes := make([]doctree.Node, 0, len(elements))
	for _, el := range elements {
		nodes = append(nodes, toNode(el))
	}
	return nodes
}

func toNode(el *element) doctree.Node {
	switch el.name {
	case tagSection:
		return &doctree.Section{
			Title:    strings.TrimSpace(el.text.String()),
			Level:    el.attr("level"),
			Children: toNodes(el.children),
		}
	case tagText:
		return &doctree.Text{Body: el.text.String()}
	case tagCode:
		return &doctree.Code{
			Language: el.attr("type", "language", "lang"),
			Source:   el.text.String(),
		}
	case tagList:
		return toList(el)
	case tagTable:
		return toTable(el)
	case tagDiagram:
		return toDiagram(el)
	default:
		return &doctree.Unknown{Tag: el.name, Children: toNodes(el.children)}
	}
}

func toList(el *element) *doctree.List {
	list := &doctree.List{Ordered: el.attr("ordered")}
	for _, child := range el.children {
		if child.name != tagItem {
			continue
		}
		list.Items = append(list.Items, &doctree.Item{
			Text:     strings.TrimSpace(child.text.String()),
			Children: toNodes(child.children),
		})
	}
	return list
}

func toTable(el *element) *doctree.Table {
	table := &doctree.Table{}
	for _, row := range el.children {
		if row.name != tagRow {
			continue
		}
		cells := make([]string, 0, len(row.children))
		for _, cell := range row.children {
			if cell.name != tagCell {
				continue
			}
			cells = append(cells, strings.TrimSpace(cell.text.String()))
		}
		table.Rows = append(table.Rows, &doctree.Row{Cells: cells})
	}
	return table
}

// toDiagram prefers character data (usually CDATA) as the payload and falls
// back to the raw inner markup when the diagram is written as child elements.
func toDiagram(el *element) *doctree.Diagram {
	source := el.text.String()
	if len(el.children) > 0 {
		source = el.inner
	}
	return &doctree.Diagram{
		Format:  el.attr("type", "format"),
		Caption: el.attr("caption"),
		Source:  source,
	}
}
