package render

import "strings"

// Buffer accumulates output lines for a single render pass. Lines are stored
// without terminators; an empty string is a blank separator.
type Buffer struct {
	lines []string
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds text to the tail of the buffer. Multi-line text is split so
// every stored entry is exactly one line; a single trailing newline is
// treated as a terminator and does not add an extra blank.
func (b *Buffer) Append(text string) {
	text = strings.TrimSuffix(text, "\n")
	b.lines = append(b.lines, strings.Split(text, "\n")...)
}

// Blank ensures the buffer ends with exactly one blank separator. Calling it
// repeatedly is a no-op. On an empty buffer it opens the output with a blank.
func (b *Buffer) Blank() {
	if n := len(b.lines); n == 0 || b.lines[n-1] != "" {
		b.lines = append(b.lines, "")
	}
}

// Extend appends every line in order.
func (b *Buffer) Extend(lines []string) {
	for _, line := range lines {
		b.Append(line)
	}
}

// Lines returns a copy of the buffered lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Len reports the number of buffered lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// String joins the buffered lines without adding a final terminator.
func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Finalize collapses the buffer into the pass output. The result always ends
// with exactly one newline.
func (b *Buffer) Finalize() string {
	return strings.TrimRight(b.String(), "\n") + "\n"
}
