package main

import (
	"context"
	"fmt"
	"io"

	command "github.com/goliatone/go-command"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-doc2md"
	"github.com/goliatone/go-doc2md/internal/di"
	"github.com/goliatone/go-doc2md/internal/generator"
	"github.com/goliatone/go-doc2md/internal/inspect"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath  string
	logLevel    string
	logFormat   string
	logProvider string

	cfg    doc2md.Config
	module *doc2md.Module
	last   *generator.BuildResult

	// moduleBuilder is swapped in tests.
	moduleBuilder func(doc2md.Config, ...di.Option) (*doc2md.Module, error)
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, moduleBuilder: doc2md.New}
	return a.rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "doc2md",
		Short: "Convert XML document trees into Markdown",
		Long: `Convert XML document trees (sections, text, code, lists, tables and
diagrams) into Markdown.

Examples:
  doc2md convert course.xml out/             # one Markdown file
  doc2md split course.xml site/              # one page per section plus index.md
  doc2md preview site/01-introduccion.md     # render in the terminal
  doc2md check course.xml out/01-intro.md    # fail when the output drifted`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (yaml, toml or json); defaults to ./doc2md.* when present")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "go-logger format (json, console, pretty)")
	flags.StringVar(&a.logProvider, "log-provider", "", "Logging provider (console, gologger, none)")

	root.AddCommand(
		a.convertCommand(),
		a.splitCommand(),
		a.previewCommand(),
		a.checkCommand(),
		a.dumpCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := doc2md.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if flags.Changed("log-provider") {
		cfg.Logging.Provider = a.logProvider
	}

	module, err := a.moduleBuilder(cfg, di.WithResultObserver(a.observe))
	if err != nil {
		return fmt.Errorf("initialise converter: %w", err)
	}
	a.cfg = cfg
	a.module = module
	return nil
}

func (a *app) observe(_ context.Context, _ command.Message, result *generator.BuildResult) {
	a.last = result
}

// enforce fails strict runs that produced warnings.
func (a *app) enforce(findings []inspect.Finding) error {
	if !a.cfg.Inspect.Strict {
		return nil
	}
	warnings := 0
	for _, f := range findings {
		if f.Severity == inspect.SeverityWarning {
			warnings++
		}
	}
	if warnings > 0 {
		return fmt.Errorf("%d inspection warning(s) in strict mode", warnings)
	}
	return nil
}
