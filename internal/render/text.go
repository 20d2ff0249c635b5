package render

import (
	"strconv"
	"strings"
)

const (
	minHeadingLevel = 1
	maxHeadingLevel = 6
)

// Indent prefixes every non-empty line of block with n spaces. Empty lines
// stay empty so blank separators inside an indented region remain blank.
func Indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

// Dedent removes the whitespace prefix shared by every non-blank line.
// Whitespace-only lines are emptied and ignored when computing the prefix.
func Dedent(block string) string {
	lines := strings.Split(block, "\n")
	prefix := ""
	first := true
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = lead
			first = false
			continue
		}
		prefix = commonPrefix(prefix, lead)
	}
	if prefix == "" {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// trimBlankLines drops leading and trailing lines that hold only whitespace
// while keeping the indentation of the first content line.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// singleLine collapses every whitespace run into one space.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HeadingLevel coerces a raw level attribute into [1,6]. Missing or
// non-numeric values resolve to 1.
func HeadingLevel(raw string) int {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return minHeadingLevel
	}
	return max(minHeadingLevel, min(maxHeadingLevel, level))
}

// IsOrdered reports whether a raw ordered attribute enables numbering.
func IsOrdered(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
