// Package inspect reports source constructs that convert lossily or not at
// all, and reads converted Markdown back for comparison.
package inspect

import (
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-doc2md/internal/doctree"
	"github.com/goliatone/go-doc2md/internal/markdown"
	"github.com/goliatone/go-doc2md/internal/render"
)

// Severity grades a finding.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

const (
	CodeUnknownElement  = "UNKNOWN_ELEMENT"
	CodeEmptyTable      = "EMPTY_TABLE"
	CodeEmptyList       = "EMPTY_LIST"
	CodeDiagramFormat   = "DIAGRAM_FORMAT"
	CodeDiagramNoSVG    = "DIAGRAM_MISSING_SVG"
	CodeUntitledSection = "UNTITLED_SECTION"
	CodeMissingHeading  = "MISSING_HEADING"
)

// Finding is one reported issue. Path locates the node, e.g.
// "section[0]/list[2]/item[1]/code[0]".
type Finding struct {
	Code     string
	Severity Severity
	Kind     doctree.Kind
	Path     string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %s %s: %s", f.Severity, f.Code, f.Path, f.Message)
}

// Document walks doc and returns its findings in document order.
func Document(doc *doctree.Document) []Finding {
	if doc == nil {
		return nil
	}
	var w walker
	w.nodes(doc.Children, "")
	return w.findings
}

type walker struct {
	findings []Finding
}

func (w *walker) add(kind doctree.Kind, path, code string, severity Severity, format string, args ...any) {
	w.findings = append(w.findings, Finding{
		Code:     code,
		Severity: severity,
		Kind:     kind,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (w *walker) nodes(children []doctree.Node, parent string) {
	for i, child := range children {
		if doctree.IsNil(child) {
			continue
		}
		w.node(child, join(parent, string(doctree.KindOf(child)), i))
	}
}

func (w *walker) node(n doctree.Node, path string) {
	switch v := n.(type) {
	case *doctree.Section:
		if strings.TrimSpace(v.Title) == "" {
			w.add(doctree.KindSection, path, CodeUntitledSection, SeverityWarning, "section has no title; its heading renders empty")
		}
		w.nodes(v.Children, path)
	case *doctree.List:
		items := 0
		for i, item := range v.Items {
			if item == nil {
				continue
			}
			items++
			w.nodes(item.Children, join(path, "item", i))
		}
		if items == 0 {
			w.add(doctree.KindList, path, CodeEmptyList, SeverityInfo, "list has no items and is dropped")
		}
	case *doctree.Table:
		if tableWidth(v) == 0 {
			w.add(doctree.KindTable, path, CodeEmptyTable, SeverityInfo, "table has no cells and is dropped")
		}
	case *doctree.Diagram:
		w.diagram(v, path)
	case *doctree.Unknown:
		tag := v.Tag
		if tag == "" {
			tag = "(unnamed)"
		}
		w.add(doctree.KindUnknown, path, CodeUnknownElement, SeverityWarning, "element %q is not supported and renders as a comment", tag)
		w.nodes(v.Children, path)
	}
}

func (w *walker) diagram(d *doctree.Diagram, path string) {
	format := strings.ToLower(strings.TrimSpace(d.Format))
	if format != "" && format != "svg" {
		w.add(doctree.KindDiagram, path, CodeDiagramFormat, SeverityWarning, "diagram format %q is not supported and renders as a comment", d.Format)
		return
	}
	if !containsSVG(d.Source) {
		w.add(doctree.KindDiagram, path, CodeDiagramNoSVG, SeverityWarning, "diagram payload has no <svg> element")
	}
}

// containsSVG parses payload as HTML and looks for an svg element anywhere in
// it.
func containsSVG(payload string) bool {
	if strings.TrimSpace(payload) == "" {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(payload))
	if err != nil {
		return false
	}
	return doc.Find("svg").Length() > 0
}

func tableWidth(t *doctree.Table) int {
	width := 0
	for _, row := range t.Rows {
		if row != nil && len(row.Cells) > width {
			width = len(row.Cells)
		}
	}
	return width
}

func join(parent, segment string, index int) string {
	step := fmt.Sprintf("%s[%d]", segment, index)
	if parent == "" {
		return step
	}
	return parent + "/" + step
}

// Markdown reads rendered Markdown back into an outline.
func Markdown(src []byte) (markdown.Outline, error) {
	return markdown.BuildOutline(src)
}

// Headings checks that every titled section of doc shows up as a heading in
// outline, in order. Titles are compared with whitespace collapsed.
func Headings(doc *doctree.Document, outline markdown.Outline) []Finding {
	var expected []string
	doctree.WalkDocument(doc, func(n doctree.Node) bool {
		switch v := n.(type) {
		case *doctree.Unknown:
			// rendered as a marker only; nothing below it reaches the output
			return false
		case *doctree.Section:
			if title := strings.Join(strings.Fields(v.Title), " "); title != "" {
				expected = append(expected, title)
			}
		}
		return true
	})

	var w walker
	got := outline.HeadingTexts()
	next := 0
	for _, title := range expected {
		idx := slices.Index(got[next:], title)
		if idx < 0 {
			w.add(doctree.KindSection, "", CodeMissingHeading, SeverityWarning, "heading %q not found in output", title)
			continue
		}
		next += idx + 1
	}
	return w.findings
}

// Check renders doc with r and runs both source and output checks.
func Check(r *render.Renderer, doc *doctree.Document) ([]Finding, error) {
	out, err := r.Document(doc)
	if err != nil {
		return nil, err
	}
	outline, err := Markdown([]byte(out))
	if err != nil {
		return nil, err
	}
	return append(Document(doc), Headings(doc, outline)...), nil
}
