package doctree

import "strings"

// Kind names a node type for logs, inspection findings and dumps.
type Kind string

const (
	KindSection Kind = "section"
	KindText    Kind = "text"
	KindCode    Kind = "code"
	KindList    Kind = "list"
	KindTable   Kind = "table"
	KindDiagram Kind = "diagram"
	KindUnknown Kind = "unknown"
)

// KindOf reports the kind of n. A nil node reports KindUnknown.
func KindOf(n Node) Kind {
	switch n.(type) {
	case *Section:
		return KindSection
	case *Text:
		return KindText
	case *Code:
		return KindCode
	case *List:
		return KindList
	case *Table:
		return KindTable
	case *Diagram:
		return KindDiagram
	default:
		return KindUnknown
	}
}

// Walk visits n and its descendants in pre-order, including nodes nested in
// list items. Nil nodes, typed or not, are skipped. Returning false from fn
// skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if IsNil(n) || !fn(n) {
		return
	}
	switch v := n.(type) {
	case *Section:
		walkAll(v.Children, fn)
	case *List:
		for _, item := range v.Items {
			if item != nil {
				walkAll(item.Children, fn)
			}
		}
	case *Unknown:
		walkAll(v.Children, fn)
	}
}

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Section:
		return v == nil
	case *Text:
		return v == nil
	case *Code:
		return v == nil
	case *List:
		return v == nil
	case *Table:
		return v == nil
	case *Diagram:
		return v == nil
	case *Unknown:
		return v == nil
	default:
		return false
	}
}

// WalkDocument walks every top-level node of doc.
func WalkDocument(doc *Document, fn func(Node) bool) {
	if doc == nil {
		return
	}
	walkAll(doc.Children, fn)
}

func walkAll(nodes []Node, fn func(Node) bool) {
	for _, child := range nodes {
		Walk(child, fn)
	}
}

// FirstSection returns the first section, in pre-order, whose trimmed title is
// not empty.
func FirstSection(doc *Document) *Section {
	var found *Section
	WalkDocument(doc, func(n Node) bool {
		if found != nil {
			return false
		}
		if s, ok := n.(*Section); ok && strings.TrimSpace(s.Title) != "" {
			found = s
			return false
		}
		return true
	})
	return found
}

// TopLevelSections returns the sections that are direct children of doc.
func TopLevelSections(doc *Document) []*Section {
	if doc == nil {
		return nil
	}
	out := make([]*Section, 0, len(doc.Children))
	for _, child := range doc.Children {
		if s, ok := child.(*Section); ok && s != nil {
			out = append(out, s)
		}
	}
	return out
}
