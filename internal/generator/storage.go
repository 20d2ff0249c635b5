package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Category tags what a written file is.
type Category string

const (
	CategoryDocument Category = "document"
	CategoryPage     Category = "page"
	CategoryIndex    Category = "index"
)

// WriteFileRequest describes a file write routed through an ArtifactWriter.
type WriteFileRequest struct {
	Path     string
	Content  io.Reader
	Size     int64
	Category Category
	Checksum string
}

// ArtifactWriter abstracts where generated files end up.
type ArtifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req WriteFileRequest) error
}

var (
	errWriteContentRequired = errors.New("generator: write requires content reader")
	errWritePathRequired    = errors.New("generator: write requires path")
)

func validateRequest(req WriteFileRequest) error {
	if req.Content == nil {
		return errWriteContentRequired
	}
	if strings.TrimSpace(req.Path) == "" {
		return errWritePathRequired
	}
	return nil
}

// NewFilesystemWriter writes below root. Relative request paths are joined to
// root; an empty root means the working directory.
func NewFilesystemWriter(root string) ArtifactWriter {
	return &filesystemWriter{root: root}
}

type filesystemWriter struct {
	root string
}

func (w *filesystemWriter) abs(rel string) string {
	rel = filepath.FromSlash(rel)
	if filepath.IsAbs(rel) || w.root == "" {
		return filepath.Clean(rel)
	}
	return filepath.Join(w.root, rel)
}

func (w *filesystemWriter) EnsureDir(_ context.Context, path string) error {
	if strings.TrimSpace(path) == "" || path == "." {
		return nil
	}
	return os.MkdirAll(w.abs(path), 0o755)
}

func (w *filesystemWriter) WriteFile(ctx context.Context, req WriteFileRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	full := w.abs(req.Path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	file, err := os.Create(full)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, req.Content); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", req.Path, err)
	}
	return file.Close()
}

// MemoryWriter records writes instead of touching the disk. Dry runs use it.
type MemoryWriter struct {
	mu    sync.Mutex
	dirs  []string
	files []Artifact
}

// NewMemoryWriter returns an empty MemoryWriter.
func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{}
}

func (w *MemoryWriter) EnsureDir(_ context.Context, path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dirs = append(w.dirs, path)
	return nil
}

func (w *MemoryWriter) WriteFile(_ context.Context, req WriteFileRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, req.Content); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files = append(w.files, Artifact{
		Path:     req.Path,
		Category: req.Category,
		Size:     int64(buf.Len()),
		Checksum: req.Checksum,
		Content:  buf.Bytes(),
	})
	return nil
}

// Files returns the recorded writes in order.
func (w *MemoryWriter) Files() []Artifact {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Artifact(nil), w.files...)
}

// Dirs returns the directories that would have been created.
func (w *MemoryWriter) Dirs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.dirs...)
}
