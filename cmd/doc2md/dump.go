package main

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-doc2md"
	"github.com/goliatone/go-doc2md/internal/inspect"
)

func (a *app) dumpCommand() *cobra.Command {
	var color bool
	var findings bool
	cmd := &cobra.Command{
		Use:   "dump <input.xml>",
		Short: "Pretty-print the parsed document tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := doc2md.ParseFile(args[0])
			if err != nil {
				return err
			}
			pp.ColoringEnabled = color
			if _, err := pp.Fprintln(a.out, doc); err != nil {
				return err
			}
			if !findings {
				return nil
			}
			for _, f := range inspect.Document(doc) {
				if _, err := pp.Fprintln(a.out, f); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "Colorize the output")
	cmd.Flags().BoolVar(&findings, "findings", false, "Also print inspection findings")
	return cmd
}
