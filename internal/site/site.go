// Package site splits a document into one Markdown page per top-level
// section, linked by prev/next footers and an index page.
package site

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-doc2md/internal/doctree"
	"github.com/goliatone/go-doc2md/internal/logging"
	"github.com/goliatone/go-doc2md/internal/markdown"
	"github.com/goliatone/go-doc2md/internal/naming"
	"github.com/goliatone/go-doc2md/internal/render"
	"github.com/goliatone/go-doc2md/internal/util"
	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

// ErrNoSections is returned when a document has no top-level section to turn
// into a page.
var ErrNoSections = errors.New("site: document has no top-level sections")

// Options configures a build. Zero values fall back to the defaults below.
type Options struct {
	Workers      int
	MaxDepth     int
	IndexFile    string
	IndexTitle   string
	IndexHeading string
	PrevLabel    string
	NextLabel    string
	PageTitle    string
	// Logger receives a debug entry per page. Nil disables logging.
	Logger interfaces.Logger
}

const (
	defaultIndexFile    = "index.md"
	defaultIndexTitle   = "Contents"
	defaultIndexHeading = "Section index"
	defaultPrevLabel    = "⬅️ Previous"
	defaultNextLabel    = "Next ➡️"
	defaultPageTitle    = "Section %d"
)

func (o Options) withDefaults() Options {
	if o.Workers < 1 {
		o.Workers = 1
	}
	o.IndexFile = util.FirstNonEmpty(o.IndexFile, defaultIndexFile)
	o.IndexTitle = util.FirstNonEmpty(o.IndexTitle, defaultIndexTitle)
	o.IndexHeading = util.FirstNonEmpty(o.IndexHeading, defaultIndexHeading)
	o.PrevLabel = util.FirstNonEmpty(o.PrevLabel, defaultPrevLabel)
	o.NextLabel = util.FirstNonEmpty(o.NextLabel, defaultNextLabel)
	o.PageTitle = util.FirstNonEmpty(o.PageTitle, defaultPageTitle)
	if o.Logger == nil {
		o.Logger = logging.NoOp()
	}
	return o
}

// Page is one generated file.
type Page struct {
	Number   int
	Title    string
	Filename string
	Markdown []byte
}

// Site is the result of a build: the pages in document order plus the index.
type Site struct {
	Title string
	Pages []*Page
	Index *Page
}

// Files returns the pages followed by the index.
func (s *Site) Files() []*Page {
	if s == nil {
		return nil
	}
	files := make([]*Page, 0, len(s.Pages)+1)
	files = append(files, s.Pages...)
	if s.Index != nil {
		files = append(files, s.Index)
	}
	return files
}

// Build renders every top-level section of doc as its own page. Pages render
// concurrently, bounded by opts.Workers; the first failure cancels the rest.
func Build(ctx context.Context, doc *doctree.Document, opts Options) (*Site, error) {
	if doc == nil {
		return nil, render.ErrNilRoot
	}
	opts = opts.withDefaults()

	sections := doctree.TopLevelSections(doc)
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	pages := plan(sections, opts)
	renderer := render.New(render.Options{MaxDepth: opts.MaxDepth})

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(opts.Workers)
	for i := range pages {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := composePage(renderer, sections[i], pages, i, opts)
			if err != nil {
				return fmt.Errorf("page %s: %w", pages[i].Filename, err)
			}
			pages[i].Markdown = out
			opts.Logger.Debug("site.page.rendered", "page", pages[i].Number, "filename", pages[i].Filename, "bytes", len(out))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	title := util.FirstNonEmpty(doc.Title, opts.IndexTitle)
	index, err := composeIndex(title, pages, opts)
	if err != nil {
		return nil, err
	}

	return &Site{Title: title, Pages: pages, Index: index}, nil
}

// plan assigns numbers, titles, and file names before rendering so every page
// can link to its neighbours.
func plan(sections []*doctree.Section, opts Options) []*Page {
	pages := make([]*Page, len(sections))
	for i, section := range sections {
		number := i + 1
		title := strings.TrimSpace(section.Title)
		if title == "" {
			title = fmt.Sprintf(opts.PageTitle, number)
		}
		pages[i] = &Page{
			Number:   number,
			Title:    title,
			Filename: naming.PageFilename(number, title),
		}
	}
	return pages
}

func composePage(renderer *render.Renderer, section *doctree.Section, pages []*Page, i int, opts Options) ([]byte, error) {
	body, err := renderer.Node(section)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(strings.TrimLeft(body, "\n"))

	var links []string
	if i > 0 {
		links = append(links, link(opts.PrevLabel, pages[i-1].Filename))
	}
	if i < len(pages)-1 {
		links = append(links, link(opts.NextLabel, pages[i+1].Filename))
	}
	if len(links) > 0 {
		b.WriteString("\n---\n\n")
		b.WriteString(strings.Join(links, " | "))
		b.WriteString("\n")
	}

	return markdown.ComposeFrontMatter(interfaces.FrontMatter{Title: pages[i].Title}, []byte(b.String()))
}

func composeIndex(title string, pages []*Page, opts Options) (*Page, error) {
	var b strings.Builder
	b.WriteString("# " + opts.IndexHeading + "\n\n")
	for _, page := range pages {
		fmt.Fprintf(&b, "%d. %s\n", page.Number, link(page.Title, page.Filename))
	}

	out, err := markdown.ComposeFrontMatter(interfaces.FrontMatter{Title: title}, []byte(b.String()))
	if err != nil {
		return nil, err
	}
	return &Page{Title: title, Filename: opts.IndexFile, Markdown: out}, nil
}

func link(label, filename string) string {
	return "[" + label + "](./" + filename + ")"
}

