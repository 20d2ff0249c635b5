package doc2md

import (
	convertcmd "github.com/goliatone/go-doc2md/internal/commands/convert"
	"github.com/goliatone/go-doc2md/internal/di"
	"github.com/goliatone/go-doc2md/internal/generator"
	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

// Option customises the Module built by New.
type Option = di.Option

// WithLoggerProvider replaces the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// WithArtifactWriter replaces the filesystem writer, for example with
// generator.NewMemoryWriter from pkg/generator.
func WithArtifactWriter(writer generator.ArtifactWriter) Option {
	return di.WithArtifactWriter(writer)
}

// WithMarkdownParser replaces the goldmark parser used for HTML previews.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return di.WithMarkdownParser(parser)
}

// WithCommandRegistry registers the conversion handlers with a go-command
// registry.
func WithCommandRegistry(reg convertcmd.CommandRegistry) Option {
	return di.WithCommandRegistry(reg)
}
