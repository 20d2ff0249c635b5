package generator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-doc2md/internal/doctree"
	"github.com/goliatone/go-doc2md/internal/inspect"
	"github.com/goliatone/go-doc2md/internal/logging"
	"github.com/goliatone/go-doc2md/internal/markdown"
	"github.com/goliatone/go-doc2md/internal/naming"
	"github.com/goliatone/go-doc2md/internal/render"
	"github.com/goliatone/go-doc2md/internal/site"
	"github.com/goliatone/go-doc2md/internal/xmlsource"
	"github.com/goliatone/go-doc2md/pkg/interfaces"
)

var (
	// ErrSourceRequired is returned when no input document is given.
	ErrSourceRequired = errors.New("generator: source document is required")
)

// Service converts source documents into Markdown files.
type Service interface {
	// Convert writes the whole document as a single Markdown file.
	Convert(ctx context.Context, opts ConvertOptions) (*BuildResult, error)
	// BuildSite writes one page per top-level section plus an index.
	BuildSite(ctx context.Context, opts SiteOptions) (*BuildResult, error)
}

// Config captures defaults shared by every run.
type Config struct {
	OutputDir string
	MaxDepth  int
	Inspect   bool
	Site      site.Options
}

// ConvertOptions narrows a single-file conversion. Filename overrides the
// name derived from the first section title.
type ConvertOptions struct {
	Source      string
	Document    *doctree.Document
	OutputDir   string
	Filename    string
	FrontMatter bool
	DryRun      bool
}

// SiteOptions narrows a multi-page build.
type SiteOptions struct {
	Source    string
	Document  *doctree.Document
	OutputDir string
	DryRun    bool
}

// Artifact is one file written (or, on dry runs, recorded).
type Artifact struct {
	Path     string
	Category Category
	Title    string
	Size     int64
	Checksum string
	Content  []byte
}

// BuildResult reports what a run produced.
type BuildResult struct {
	Files        []Artifact
	Findings     []inspect.Finding
	BytesWritten int64
	Duration     time.Duration
	DryRun       bool
}

// Dependencies lists the collaborators of the service. A nil Writer writes
// to the filesystem relative to the working directory.
type Dependencies struct {
	Writer ArtifactWriter
	Logger interfaces.Logger
}

// NewService wires a generator with cfg and deps.
func NewService(cfg Config, deps Dependencies) Service {
	if deps.Writer == nil {
		deps.Writer = NewFilesystemWriter("")
	}
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	return &service{
		cfg:      cfg,
		deps:     deps,
		renderer: render.New(render.Options{MaxDepth: cfg.MaxDepth}),
		now:      time.Now,
	}
}

type service struct {
	cfg      Config
	deps     Dependencies
	renderer *render.Renderer
	now      func() time.Time
}

func (s *service) Convert(ctx context.Context, opts ConvertOptions) (*BuildResult, error) {
	start := s.now()
	doc, err := s.load(opts.Source, opts.Document)
	if err != nil {
		return nil, err
	}
	logger := logging.WithDocumentContext(s.deps.Logger, opts.Source, "", "convert")

	out, err := s.renderer.Document(doc)
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(opts.Source), filepath.Ext(opts.Source))
	if opts.Source == "" {
		stem = ""
	}
	title := naming.DocumentTitle(doc, stem)
	filename := strings.TrimSpace(opts.Filename)
	if filename == "" {
		filename = naming.DocumentFilename(title, stem)
	}

	content := []byte(out)
	if opts.FrontMatter {
		content, err = markdown.ComposeFrontMatter(
			interfaces.FrontMatter{Title: naming.NormalizeTitle(title)},
			[]byte(strings.TrimLeft(out, "\n")),
		)
		if err != nil {
			return nil, err
		}
	}

	writer, memory := s.writerFor(opts.DryRun)
	dir := s.outputDir(opts.OutputDir)
	artifact := Artifact{
		Path:     joinOutputPath(dir, filename),
		Category: CategoryDocument,
		Title:    title,
		Content:  content,
	}
	if err := persist(ctx, writer, dir, []*Artifact{&artifact}); err != nil {
		return nil, err
	}

	result := s.result(start, opts.DryRun, memory, []Artifact{artifact})
	if s.cfg.Inspect {
		result.Findings = inspect.Document(doc)
	}
	logging.WithDocumentContext(logger, "", artifact.Path, "").Info("generator.convert.complete",
		"bytes", result.BytesWritten,
		"findings", len(result.Findings),
		"dry_run", opts.DryRun,
		"duration", result.Duration,
	)
	return result, nil
}

func (s *service) BuildSite(ctx context.Context, opts SiteOptions) (*BuildResult, error) {
	start := s.now()
	doc, err := s.load(opts.Source, opts.Document)
	if err != nil {
		return nil, err
	}
	logger := logging.WithDocumentContext(s.deps.Logger, opts.Source, "", "split")

	siteOpts := s.cfg.Site
	siteOpts.MaxDepth = s.cfg.MaxDepth
	built, err := site.Build(ctx, doc, siteOpts)
	if err != nil {
		return nil, err
	}

	writer, memory := s.writerFor(opts.DryRun)
	dir := s.outputDir(opts.OutputDir)

	files := built.Files()
	artifacts := make([]*Artifact, 0, len(files))
	for _, page := range files {
		category := CategoryPage
		if page == built.Index {
			category = CategoryIndex
		}
		artifacts = append(artifacts, &Artifact{
			Path:     joinOutputPath(dir, page.Filename),
			Category: category,
			Title:    page.Title,
			Content:  page.Markdown,
		})
	}
	if err := persist(ctx, writer, dir, artifacts); err != nil {
		return nil, err
	}

	written := make([]Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		written = append(written, *a)
	}
	result := s.result(start, opts.DryRun, memory, written)
	if s.cfg.Inspect {
		result.Findings = inspect.Document(doc)
	}
	logger.Info("generator.site.complete",
		"pages", len(built.Pages),
		"output_dir", dir,
		"bytes", result.BytesWritten,
		"dry_run", opts.DryRun,
		"duration", result.Duration,
	)
	return result, nil
}

func (s *service) load(source string, doc *doctree.Document) (*doctree.Document, error) {
	if doc != nil {
		return doc, nil
	}
	if strings.TrimSpace(source) == "" {
		return nil, ErrSourceRequired
	}
	return xmlsource.ParseFile(source)
}

func (s *service) writerFor(dryRun bool) (ArtifactWriter, *MemoryWriter) {
	if dryRun {
		memory := NewMemoryWriter()
		return memory, memory
	}
	return s.deps.Writer, nil
}

func (s *service) outputDir(override string) string {
	if dir := strings.TrimSpace(override); dir != "" {
		return dir
	}
	return strings.TrimSpace(s.cfg.OutputDir)
}

func (s *service) result(start time.Time, dryRun bool, memory *MemoryWriter, files []Artifact) *BuildResult {
	result := &BuildResult{Files: files, DryRun: dryRun}
	for _, f := range files {
		result.BytesWritten += f.Size
	}
	if memory == nil {
		for i := range result.Files {
			result.Files[i].Content = nil
		}
	}
	result.Duration = s.now().Sub(start)
	return result
}

// persist writes artifacts in order, filling in size and checksum.
func persist(ctx context.Context, writer ArtifactWriter, dir string, artifacts []*Artifact) error {
	dirCache := map[string]struct{}{}
	if err := ensureDir(ctx, writer, dirCache, dir); err != nil {
		return err
	}
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ensureDir(ctx, writer, dirCache, filepath.Dir(a.Path)); err != nil {
			return err
		}
		a.Size = int64(len(a.Content))
		a.Checksum = computeHash(a.Content)
		err := writer.WriteFile(ctx, WriteFileRequest{
			Path:     a.Path,
			Content:  bytes.NewReader(a.Content),
			Size:     a.Size,
			Category: a.Category,
			Checksum: a.Checksum,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureDir(ctx context.Context, writer ArtifactWriter, cache map[string]struct{}, dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" || dir == "." {
		return nil
	}
	if _, ok := cache[dir]; ok {
		return nil
	}
	cache[dir] = struct{}{}
	return writer.EnsureDir(ctx, dir)
}

func joinOutputPath(base, rel string) string {
	if strings.TrimSpace(base) == "" {
		return rel
	}
	return filepath.Join(base, rel)
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
