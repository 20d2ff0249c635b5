package render

import (
	"strings"

	"github.com/goliatone/go-doc2md/internal/doctree"
)

const (
	defaultCodeLanguage = "plain"
	codeFence           = "```"

	diagramStart       = "<!-- svg-diagram start -->"
	diagramEnd         = "<!-- svg-diagram end -->"
	diagramOpen        = `<div class="diagram-block" align="center">`
	diagramClose       = "</div>"
	diagramFormat      = "svg"
	admonitionKind     = "example"
	admonitionBodyStep = 4

	tableSeparatorCell = "---"
)

func renderText(buf *Buffer, t *doctree.Text, ctx Context) {
	body := strings.TrimSpace(NormalizeNewlines(t.Body))
	if body == "" {
		return
	}
	buf.Append(Indent(body, ctx.Indent))
	buf.Blank()
}

func renderCode(buf *Buffer, c *doctree.Code, ctx Context) {
	lang := strings.ToLower(strings.TrimSpace(c.Language))
	if lang == "" {
		lang = defaultCodeLanguage
	}
	source := Dedent(trimBlankLines(NormalizeNewlines(c.Source)))
	source = strings.TrimRight(source, " \t\n")

	block := codeFence + lang + "\n" + source + "\n" + codeFence

	buf.Blank()
	buf.Append(Indent(block, ctx.Indent))
	buf.Blank()
}

func renderTable(buf *Buffer, t *doctree.Table, ctx Context) {
	if len(t.Rows) == 0 {
		return
	}

	rows := make([][]string, 0, len(t.Rows))
	width := 0
	for _, row := range t.Rows {
		var cells []string
		if row != nil {
			cells = make([]string, len(row.Cells))
			for i, cell := range row.Cells {
				cells[i] = singleLine(cell)
			}
		}
		width = max(width, len(cells))
		rows = append(rows, cells)
	}
	if width == 0 {
		return
	}

	separator := make([]string, width)
	for i := range separator {
		separator[i] = tableSeparatorCell
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, tableRow(padCells(rows[0], width)), tableRow(separator))
	for _, cells := range rows[1:] {
		lines = append(lines, tableRow(padCells(cells, width)))
	}

	buf.Blank()
	for _, line := range lines {
		buf.Append(Indent(line, ctx.Indent))
	}
	buf.Blank()
}

func padCells(cells []string, width int) []string {
	if len(cells) >= width {
		return cells
	}
	padded := make([]string, width)
	copy(padded, cells)
	return padded
}

func tableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func renderDiagram(buf *Buffer, d *doctree.Diagram, ctx Context) {
	format := strings.ToLower(strings.TrimSpace(d.Format))
	if format != "" && format != diagramFormat {
		renderUnknown(buf, "diagram:"+format, ctx)
		return
	}

	body := strings.Join([]string{
		diagramOpen,
		strings.TrimSpace(NormalizeNewlines(d.Source)),
		diagramClose,
	}, "\n")

	lines := []string{diagramStart}
	if caption := singleLine(d.Caption); caption != "" {
		lines = append(lines,
			"!!! "+admonitionKind+` "`+caption+`"`,
			Indent(body, admonitionBodyStep),
		)
	} else {
		lines = append(lines, body)
	}
	lines = append(lines, diagramEnd)

	buf.Blank()
	buf.Append(Indent(strings.Join(lines, "\n"), ctx.Indent))
	buf.Blank()
}

func renderUnknown(buf *Buffer, tag string, ctx Context) {
	tag = singleLine(tag)
	if tag == "" {
		tag = "(unnamed)"
	}
	buf.Append(Indent("<!-- unknown element: "+tag+" -->", ctx.Indent))
}
