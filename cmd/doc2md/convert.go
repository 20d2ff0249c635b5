package main

import (
	"context"

	"github.com/spf13/cobra"

	convertcmd "github.com/goliatone/go-doc2md/internal/commands/convert"
	"github.com/goliatone/go-doc2md/internal/logging"
	"github.com/goliatone/go-doc2md/internal/watch"
)

type convertFlags struct {
	frontMatter bool
	dryRun      bool
	watch       bool
	filename    string
}

func (a *app) convertCommand() *cobra.Command {
	var flags convertFlags
	cmd := &cobra.Command{
		Use:   "convert <input.xml> [output_dir]",
		Short: "Convert a document into a single Markdown file",
		Long: `Convert a document into a single Markdown file.

The file name comes from the first section title ("1. Introducción" becomes
01-introduccion.md). With --dry-run the Markdown is printed instead.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := convertcmd.ConvertDocumentCommand{
				Source:      args[0],
				Filename:    flags.filename,
				FrontMatter: flags.frontMatter || a.cfg.Output.FrontMatter,
				DryRun:      flags.dryRun || a.cfg.Output.DryRun,
			}
			if len(args) > 1 {
				msg.OutputDir = args[1]
			}
			if err := a.runConvert(cmd.Context(), msg); err != nil {
				return err
			}
			if !flags.watch {
				return nil
			}
			return watch.Run(cmd.Context(), []string{msg.Source}, func(ctx context.Context, _ string) error {
				return a.runConvert(ctx, msg)
			}, watch.Options{Logger: logging.WatchLogger(a.module.Container().LoggerProvider())})
		},
	}
	cmd.Flags().BoolVar(&flags.frontMatter, "front-matter", false, "Prefix the file with a YAML title block")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the Markdown instead of writing it")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Convert again whenever the input changes")
	cmd.Flags().StringVar(&flags.filename, "filename", "", "Override the derived output file name")
	return cmd
}

func (a *app) runConvert(ctx context.Context, msg convertcmd.ConvertDocumentCommand) error {
	a.last = nil
	if err := a.module.Commands().Convert.Execute(ctx, msg); err != nil {
		return err
	}
	if msg.DryRun {
		printContents(a.out, a.last)
	} else {
		printResult(a.out, a.last)
	}
	if a.last != nil {
		return a.enforce(a.last.Findings)
	}
	return nil
}
