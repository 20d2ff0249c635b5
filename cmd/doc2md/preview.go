package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-doc2md"
	"github.com/goliatone/go-doc2md/internal/markdown"
	"github.com/goliatone/go-doc2md/internal/util"
)

type previewFlags struct {
	html  bool
	style string
	width int
}

func (a *app) previewCommand() *cobra.Command {
	var flags previewFlags
	cmd := &cobra.Command{
		Use:   "preview <file.md|input.xml>",
		Short: "Render Markdown (or a converted document) in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			body, err := a.previewSource(args[0])
			if err != nil {
				return err
			}
			if flags.html {
				html, err := a.module.Markdown().Parse(body)
				if err != nil {
					return fmt.Errorf("render html: %w", err)
				}
				_, err = a.out.Write(html)
				return err
			}

			width := flags.width
			if width <= 0 {
				width = a.cfg.Markdown.WrapWidth
			}
			rendered, err := renderTerminal(string(body), util.FirstNonEmpty(flags.style, a.cfg.Markdown.Style, "auto"), width)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.out, rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&flags.html, "html", false, "Print goldmark HTML instead of terminal output")
	cmd.Flags().StringVar(&flags.style, "style", "", "glamour style name or JSON style path (default from config)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Word wrap width (default from config)")
	return cmd
}

// previewSource returns the Markdown body of path with front matter removed.
// XML inputs are converted first.
func (a *app) previewSource(path string) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		doc, err := doc2md.ParseFile(path)
		if err != nil {
			return nil, err
		}
		out, err := a.module.Render(doc)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return markdown.StripFrontMatter(raw)
}

func renderTerminal(body, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("terminal renderer: %w", err)
	}
	return renderer.Render(body)
}
