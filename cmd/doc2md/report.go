package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/goliatone/go-doc2md/internal/generator"
)

func printResult(w io.Writer, result *generator.BuildResult) {
	if result == nil {
		return
	}
	verb := "wrote"
	if result.DryRun {
		verb = "would write"
	}
	for _, f := range result.Files {
		fmt.Fprintf(w, "%s %s (%s)\n", verb, f.Path, humanize.Bytes(uint64(f.Size)))
	}
	fmt.Fprintf(w, "%s %s in %s file(s), %s\n",
		verb,
		humanize.Bytes(uint64(result.BytesWritten)),
		humanize.Comma(int64(len(result.Files))),
		result.Duration.Round(time.Microsecond),
	)
	for _, finding := range result.Findings {
		fmt.Fprintln(w, finding.String())
	}
}

// printContents writes dry-run artifacts so they can be piped.
func printContents(w io.Writer, result *generator.BuildResult) {
	if result == nil || !result.DryRun {
		return
	}
	for i, f := range result.Files {
		if len(result.Files) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", f.Path)
		}
		w.Write(f.Content)
	}
}
