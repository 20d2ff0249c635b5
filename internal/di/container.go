package di

import (
	"strings"

	"github.com/goliatone/go-doc2md/internal/commands"
	convertcmd "github.com/goliatone/go-doc2md/internal/commands/convert"
	"github.com/goliatone/go-doc2md/internal/generator"
	"github.com/goliatone/go-doc2md/internal/logging"
	"github.com/goliatone/go-doc2md/internal/logging/console"
	"github.com/goliatone/go-doc2md/internal/logging/gologger"
	"github.com/goliatone/go-doc2md/internal/markdown"
	"github.com/goliatone/go-doc2md/internal/render"
	"github.com/goliatone/go-doc2md/internal/runtimeconfig"
	"github.com/goliatone/go-doc2md/internal/site"
	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

// Container wires the converter's services from a validated Config.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	writer         generator.ArtifactWriter
	parser         interfaces.MarkdownParser
	registry       convertcmd.CommandRegistry
	observe        convertcmd.ResultObserver

	renderer  *render.Renderer
	generator generator.Service
	handlers  *convertcmd.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithArtifactWriter overrides the filesystem writer.
func WithArtifactWriter(writer generator.ArtifactWriter) Option {
	return func(c *Container) {
		c.writer = writer
	}
}

// WithMarkdownParser overrides the goldmark parser used for HTML previews.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithCommandRegistry registers the conversion handlers with reg.
func WithCommandRegistry(reg convertcmd.CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// WithResultObserver receives the result of every command run.
func WithResultObserver(observe convertcmd.ResultObserver) Option {
	return func(c *Container) {
		c.observe = observe
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}

	if c.parser == nil {
		c.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Markdown.Extensions,
			HardWraps:  cfg.Markdown.HardWraps,
			SafeMode:   cfg.Markdown.SafeMode,
		})
	}

	c.renderer = render.New(render.Options{MaxDepth: cfg.Render.MaxDepth})
	c.generator = generator.NewService(generator.Config{
		OutputDir: cfg.Output.Dir,
		MaxDepth:  cfg.Render.MaxDepth,
		Inspect:   cfg.Inspect.Enabled,
		Site: site.Options{
			Workers:      cfg.Site.Workers,
			IndexFile:    cfg.Site.IndexFile,
			IndexTitle:   cfg.Site.IndexTitle,
			IndexHeading: cfg.Site.IndexHeading,
			PrevLabel:    cfg.Site.PrevLabel,
			NextLabel:    cfg.Site.NextLabel,
			PageTitle:    cfg.Site.PageTitle,
			Logger:       logging.SiteLogger(c.loggerProvider),
		},
	}, generator.Dependencies{
		Writer: c.writer,
		Logger: logging.GeneratorLogger(c.loggerProvider),
	})

	handlers, err := convertcmd.RegisterConvertCommands(c.registry, c.generator, c.loggerProvider,
		convertcmd.WithConvertHandlerOptions(commands.WithTimeout[convertcmd.ConvertDocumentCommand](cfg.Commands.Timeout)),
		convertcmd.WithSiteHandlerOptions(commands.WithTimeout[convertcmd.BuildSiteCommand](cfg.Commands.Timeout)),
		convertcmd.WithResultObserver(c.observe),
	)
	if err != nil {
		return nil, err
	}
	c.handlers = handlers

	logging.ModuleLogger(c.loggerProvider, "").Debug("container.configured",
		"logging_provider", providerName(cfg.Logging.Provider),
		"output_dir", cfg.Output.Dir,
		"inspect", cfg.Inspect.Enabled,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	switch providerName(c.Config.Logging.Provider) {
	case "none":
		c.loggerProvider = nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level := strings.TrimSpace(c.Config.Logging.Level); level != "" {
			parsed, err := console.ParseLevel(level)
			if err != nil {
				return err
			}
			opts.MinLevel = &parsed
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func providerName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "none"
	}
	return name
}

// LoggerProvider returns the configured provider; nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// Logger returns a module logger from the configured provider.
func (c *Container) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(c.loggerProvider, module)
}

// Renderer returns the depth-bounded Markdown renderer.
func (c *Container) Renderer() *render.Renderer { return c.renderer }

// GeneratorService returns the conversion service.
func (c *Container) GeneratorService() generator.Service { return c.generator }

// MarkdownParser returns the Markdown-to-HTML parser.
func (c *Container) MarkdownParser() interfaces.MarkdownParser { return c.parser }

// CommandHandlers returns the conversion command handlers.
func (c *Container) CommandHandlers() *convertcmd.HandlerSet { return c.handlers }
