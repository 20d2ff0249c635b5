package main

import (
	"context"

	"github.com/spf13/cobra"

	convertcmd "github.com/goliatone/go-doc2md/internal/commands/convert"
)

func (a *app) splitCommand() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "split <input.xml> <output_dir>",
		Short: "Write one page per top-level section plus an index",
		Long: `Write one Markdown page per top-level section plus an index page.

Pages are numbered in document order (01-intro.md, 02-joins.md, ...) and
linked to their neighbours; index.md lists them all.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSplit(cmd.Context(), convertcmd.BuildSiteCommand{
				Source:    args[0],
				OutputDir: args[1],
				DryRun:    dryRun || a.cfg.Output.DryRun,
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the pages instead of writing them")
	return cmd
}

func (a *app) runSplit(ctx context.Context, msg convertcmd.BuildSiteCommand) error {
	a.last = nil
	if err := a.module.Commands().Site.Execute(ctx, msg); err != nil {
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
