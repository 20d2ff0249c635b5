package convertcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-doc2md/internal/commands"
	"github.com/goliatone/go-doc2md/internal/generator"
	"github.com/goliatone/go-doc2md/internal/logging"
	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

const (
	convertOperation = "convert.document"
	siteOperation    = "convert.site"
)

var (
	_ command.Commander[ConvertDocumentCommand] = (*ConvertDocumentHandler)(nil)
	_ command.Commander[BuildSiteCommand]       = (*BuildSiteHandler)(nil)
)

// ResultObserver receives the result of every successful run.
type ResultObserver func(ctx context.Context, msg command.Message, result *generator.BuildResult)

// ConvertDocumentHandler runs single-file conversions through the shared
// command handler.
type ConvertDocumentHandler struct {
	inner *commands.Handler[ConvertDocumentCommand]
}

// NewConvertDocumentHandler binds a handler to service. observe may be nil.
func NewConvertDocumentHandler(service generator.Service, logger interfaces.Logger, observe ResultObserver, opts ...commands.HandlerOption[ConvertDocumentCommand]) *ConvertDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ConvertDocumentCommand) error {
		result, err := service.Convert(ctx, generator.ConvertOptions{
			Source:      msg.Source,
			OutputDir:   msg.OutputDir,
			Filename:    msg.Filename,
			FrontMatter: msg.FrontMatter,
			DryRun:      msg.DryRun,
		})
		if err != nil {
			return err
		}
		logCompleted(baseLogger, "convert.command.document.completed", result)
		if observe != nil {
			observe(ctx, msg, result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertDocumentCommand]{
		commands.WithLogger[ConvertDocumentCommand](baseLogger),
		commands.WithOperation[ConvertDocumentCommand](convertOperation),
		commands.WithMessageFields(func(msg ConvertDocumentCommand) map[string]any {
			fields := map[string]any{"source_path": msg.Source}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			if msg.Filename != "" {
				fields["filename"] = msg.Filename
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertDocumentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ConvertDocumentCommand].
func (h *ConvertDocumentHandler) Execute(ctx context.Context, msg ConvertDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildSiteHandler runs multi-page builds through the shared command handler.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler binds a handler to service. observe may be nil.
func NewBuildSiteHandler(service generator.Service, logger interfaces.Logger, observe ResultObserver, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		result, err := service.BuildSite(ctx, generator.SiteOptions{
			Source:    msg.Source,
			OutputDir: msg.OutputDir,
			DryRun:    msg.DryRun,
		})
		if err != nil {
			return err
		}
		logCompleted(baseLogger, "convert.command.site.completed", result)
		if observe != nil {
			observe(ctx, msg, result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand](siteOperation),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{"source_path": msg.Source}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

func logCompleted(logger interfaces.Logger, msg string, result *generator.BuildResult) {
	if result == nil {
		return
	}
	logging.WithFields(logger, map[string]any{
		"file_count":    len(result.Files),
		"finding_count": len(result.Findings),
		"bytes_written": result.BytesWritten,
		"dry_run":       result.DryRun,
	}).Info(msg)
}
