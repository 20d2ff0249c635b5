package convertcmd

import (
	"errors"

	"github.com/goliatone/go-doc2md/internal/commands"
	"github.com/goliatone/go-doc2md/internal/generator"
	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

// CommandRegistry is the registration contract of a go-command registry.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers built by RegisterConvertCommands.
type HandlerSet struct {
	Convert *ConvertDocumentHandler
	Site    *BuildSiteHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	convertOpts []commands.HandlerOption[ConvertDocumentCommand]
	siteOpts    []commands.HandlerOption[BuildSiteCommand]
	observe     ResultObserver
}

// WithConvertHandlerOptions forwards options to the ConvertDocumentHandler.
func WithConvertHandlerOptions(opts ...commands.HandlerOption[ConvertDocumentCommand]) Option {
	return func(cfg *options) {
		cfg.convertOpts = append(cfg.convertOpts, opts...)
	}
}

// WithSiteHandlerOptions forwards options to the BuildSiteHandler.
func WithSiteHandlerOptions(opts ...commands.HandlerOption[BuildSiteCommand]) Option {
	return func(cfg *options) {
		cfg.siteOpts = append(cfg.siteOpts, opts...)
	}
}

// WithResultObserver receives the BuildResult of both handlers.
func WithResultObserver(observe ResultObserver) Option {
	return func(cfg *options) {
		cfg.observe = observe
	}
}

// RegisterConvertCommands builds the conversion handlers and registers them
// with reg when it is not nil.
func RegisterConvertCommands(reg CommandRegistry, service generator.Service, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("convert command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "convert")
	set := &HandlerSet{
		Convert: NewConvertDocumentHandler(service, logger, cfg.observe, cfg.convertOpts...),
		Site:    NewBuildSiteHandler(service, logger, cfg.observe, cfg.siteOpts...),
	}

	if reg != nil {
		if err := reg.RegisterCommand(set.Convert); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(set.Site); err != nil {
			return nil, err
		}
	}
	return set, nil
}
