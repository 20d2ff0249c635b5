// Package markdown reads generated Markdown back: front matter handling,
// goldmark HTML rendering for previews, and heading outlines used to check
// converted output.
package markdown
