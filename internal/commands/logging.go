package commands

import (
	"strings"

	"github.com/goliatone/go-doc2md/internal/logging"
	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

const commandModuleRoot = "doc2md.commands"

// CommandLogger returns the doc2md.commands logger, narrowed to module when
// one is given ("convert" -> doc2md.commands.convert).
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		return logging.WithFields(logging.CommandLogger(provider), map[string]any{"component": "command"})
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
