package interfaces

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// The preview command and the output checks share one implementation so the
// rendered Markdown is always read back the same way.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// FrontMatter is the metadata block written above every generated page.
type FrontMatter struct {
	Title string
	Extra map[string]any
}
