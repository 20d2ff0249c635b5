package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-doc2md/internal/doctree"
	"github.com/goliatone/go-doc2md/internal/inspect"
	"github.com/goliatone/go-doc2md/internal/site"
)

func sampleDocument() *doctree.Document {
	return &doctree.Document{
		Title: "Bases",
		Children: []doctree.Node{
			&doctree.Section{Title: "1. Introducción", Level: "2", Children: []doctree.Node{
				&doctree.Text{Body: "Hola"},
			}},
			&doctree.Section{Title: "Consultas", Level: "2", Children: []doctree.Node{
				&doctree.Unknown{Tag: "widget"},
			}},
		},
	}
}

func fixedClock(svc Service) {
	now := time.Date(2024, 2, 5, 14, 30, 0, 0, time.UTC)
	svc.(*service).now = func() time.Time { return now }
}

func TestConvertWritesSingleDocument(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(Config{OutputDir: dir, Inspect: true}, Dependencies{})
	fixedClock(svc)

	result, err := svc.Convert(context.Background(), ConvertOptions{Document: sampleDocument()})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if len(result.Files) != 1 {
		t.Fatalf("expected one file, got %d", len(result.Files))
	}
	file := result.Files[0]
	if file.Path != filepath.Join(dir, "01-introduccion.md") || file.Category != CategoryDocument {
		t.Fatalf("unexpected artifact %+v", file)
	}
	if file.Content != nil {
		t.Fatal("expected content to be dropped for real writes")
	}

	data, err := os.ReadFile(file.Path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "\n## 1. Introducción\n\nHola\n\n---\n\n## Consultas\n\n<!-- unknown element: widget -->\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("unexpected markdown (-want +got):\n%s", diff)
	}
	if result.BytesWritten != int64(len(data)) || len(file.Checksum) != 64 {
		t.Fatalf("unexpected size/checksum: %d %q", result.BytesWritten, file.Checksum)
	}
	if len(result.Findings) != 1 || result.Findings[0].Code != inspect.CodeUnknownElement {
		t.Fatalf("expected unknown element finding, got %v", result.Findings)
	}
	if result.Duration != 0 {
		t.Fatalf("expected fixed clock duration, got %v", result.Duration)
	}
}

func TestConvertFrontMatterAndFilenameOverride(t *testing.T) {
	svc := NewService(Config{}, Dependencies{})

	result, err := svc.Convert(context.Background(), ConvertOptions{
		Document:    sampleDocument(),
		OutputDir:   "out",
		Filename:    "custom.md",
		FrontMatter: true,
		DryRun:      true,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	file := result.Files[0]
	if file.Path != filepath.Join("out", "custom.md") {
		t.Fatalf("expected override path, got %q", file.Path)
	}
	if !strings.HasPrefix(string(file.Content), "---\ntitle: \"01 Introducción\"\n---\n\n## 1. Introducción\n") {
		t.Fatalf("unexpected front matter:\n%s", file.Content)
	}
	if !result.DryRun {
		t.Fatal("expected dry run flag")
	}
	if result.Findings != nil {
		t.Fatal("expected no findings when inspection is off")
	}
}

func TestConvertReadsSourceFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "notas.xml")
	if err := os.WriteFile(source, []byte(`<doc><text>sin secciones</text></doc>`), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	svc := NewService(Config{}, Dependencies{})
	result, err := svc.Convert(context.Background(), ConvertOptions{Source: source, DryRun: true})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got := result.Files[0].Path; got != "notas.md" {
		t.Fatalf("expected stem fallback filename, got %q", got)
	}
	if string(result.Files[0].Content) != "sin secciones\n" {
		t.Fatalf("unexpected content %q", result.Files[0].Content)
	}
}

func TestConvertRequiresSource(t *testing.T) {
	svc := NewService(Config{}, Dependencies{})
	if _, err := svc.Convert(context.Background(), ConvertOptions{}); !errors.Is(err, ErrSourceRequired) {
		t.Fatalf("expected ErrSourceRequired, got %v", err)
	}
}

func TestBuildSiteWritesPagesAndIndex(t *testing.T) {
	writer := NewMemoryWriter()
	svc := NewService(Config{OutputDir: "site", Site: site.Options{Workers: 2}}, Dependencies{Writer: writer})

	result, err := svc.BuildSite(context.Background(), SiteOptions{Document: sampleDocument()})
	if err != nil {
		t.Fatalf("BuildSite: %v", err)
	}

	var paths []string
	for _, f := range writer.Files() {
		paths = append(paths, f.Path)
	}
	want := []string{
		filepath.Join("site", "01-1-introduccion.md"),
		filepath.Join("site", "02-consultas.md"),
		filepath.Join("site", "index.md"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("unexpected files (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"site"}, writer.Dirs()); diff != "" {
		t.Fatalf("unexpected dirs (-want +got):\n%s", diff)
	}
	if result.Files[2].Category != CategoryIndex || result.Files[0].Category != CategoryPage {
		t.Fatalf("unexpected categories %+v", result.Files)
	}
	if result.Files[0].Content != nil {
		t.Fatal("expected content to be dropped outside dry runs")
	}
	if result.BytesWritten == 0 {
		t.Fatal("expected bytes to be reported")
	}
}

func TestBuildSiteDryRunLeavesDiskUntouched(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never")
	svc := NewService(Config{OutputDir: dir}, Dependencies{})

	result, err := svc.BuildSite(context.Background(), SiteOptions{Document: sampleDocument(), DryRun: true})
	if err != nil {
		t.Fatalf("BuildSite: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected no output directory, got %v", err)
	}
	if len(result.Files) != 3 || len(result.Files[2].Content) == 0 {
		t.Fatalf("expected recorded content, got %+v", result.Files)
	}
}

func TestBuildSiteWithoutSections(t *testing.T) {
	svc := NewService(Config{}, Dependencies{Writer: NewMemoryWriter()})
	_, err := svc.BuildSite(context.Background(), SiteOptions{Document: &doctree.Document{}})
	if !errors.Is(err, site.ErrNoSections) {
		t.Fatalf("expected ErrNoSections, got %v", err)
	}
}

func TestWritersRejectIncompleteRequests(t *testing.T) {
	ctx := context.Background()
	for _, w := range []ArtifactWriter{NewMemoryWriter(), NewFilesystemWriter(t.TempDir())} {
		if err := w.WriteFile(ctx, WriteFileRequest{Path: "a.md"}); !errors.Is(err, errWriteContentRequired) {
			t.Fatalf("%T: expected content error, got %v", w, err)
		}
		if err := w.WriteFile(ctx, WriteFileRequest{Content: strings.NewReader("x")}); !errors.Is(err, errWritePathRequired) {
			t.Fatalf("%T: expected path error, got %v", w, err)
		}
	}
}

func TestFilesystemWriterCreatesParents(t *testing.T) {
	root := t.TempDir()
	w := NewFilesystemWriter(root)
	err := w.WriteFile(context.Background(), WriteFileRequest{Path: "a/b/c.md", Content: strings.NewReader("# c\n")})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "a", "b", "c.md"))
	if err != nil || string(data) != "# c\n" {
		t.Fatalf("unexpected file: %q %v", data, err)
	}
}
