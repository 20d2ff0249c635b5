package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-doc2md"
	"github.com/goliatone/go-doc2md/internal/inspect"
	"github.com/goliatone/go-doc2md/internal/markdown"
)

// errDrift signals a failed check; the diff has already been printed.
var errDrift = errors.New("converted output differs from the existing file")

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <input.xml> <existing.md>",
		Short: "Re-render a document and diff it against an existing file",
		Long: `Re-render a document and diff it against an existing Markdown file.

Front matter is ignored on both sides. The command exits non-zero when the
bodies differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := doc2md.ParseFile(args[0])
			if err != nil {
				return err
			}
			rendered, err := a.module.Render(doc)
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			existing, err := markdown.StripFrontMatter(raw)
			if err != nil {
				return err
			}

			outline, err := inspect.Markdown(existing)
			if err != nil {
				return err
			}
			for _, f := range inspect.Headings(doc, outline) {
				fmt.Fprintln(a.errOut, f.String())
			}

			want := strings.TrimLeft(rendered, "\n")
			got := strings.TrimLeft(string(existing), "\n")
			if want == got {
				fmt.Fprintf(a.out, "%s is up to date\n", args[1])
				return nil
			}
			writeLineDiff(a.out, args[1], got, want)
			return errDrift
		},
	}
}

// writeLineDiff prints a line-oriented diff from the existing text to the
// freshly rendered one.
func writeLineDiff(w io.Writer, name, existing, rendered string) {
	dmp := diffpatch.New()
	from, to, lines := dmp.DiffLinesToChars(existing, rendered)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(from, to, false), lines)

	fmt.Fprintf(w, "--- %s\n+++ rendered\n", name)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprint(w, prefix, line)
			if !strings.HasSuffix(line, "\n") {
				fmt.Fprintln(w)
			}
		}
	}
}
