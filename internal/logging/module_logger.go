package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

const (
	rootModule    = "doc2md"
	generatorModule = "doc2md.generator"
	siteModule      = "doc2md.site"
	commandModule   = "doc2md.commands"
	watchModule     = "doc2md.watch"
)

const (
	fieldSourcePath = "source_path"
	fieldOutputPath = "output_path"
	fieldAction     = "action"
)

// ModuleLogger returns the provider's logger for module annotated with a
// "module" field. A nil provider yields NoOp.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{"module": module})
}

// GeneratorLogger scopes conversions and file output.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// SiteLogger scopes multi-page builds.
func SiteLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, siteModule)
}

// CommandLogger scopes command handlers.
func CommandLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandModule)
}

// WatchLogger scopes the file watcher.
func WatchLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, watchModule)
}

// WithDocumentContext adds the source path, output path, and action fields.
// Blank values are skipped.
func WithDocumentContext(logger interfaces.Logger, source, output, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		fields[fieldSourcePath] = trimmed
	}
	if trimmed := strings.TrimSpace(output); trimmed != "" {
		fields[fieldOutputPath] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var (
	_ interfaces.Logger       = noopLogger{}
	_ interfaces.FieldsLogger = noopLogger{}
)

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
