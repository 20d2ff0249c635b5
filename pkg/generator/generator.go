// Package generator exposes the output side of the converter so hosts can
// supply their own ArtifactWriter or capture files in memory.
package generator

import internal "github.com/goliatone/go-doc2md/internal/generator"

type (
	Service          = internal.Service
	Config           = internal.Config
	ConvertOptions   = internal.ConvertOptions
	SiteOptions      = internal.SiteOptions
	BuildResult      = internal.BuildResult
	Artifact         = internal.Artifact
	Category         = internal.Category
	Dependencies     = internal.Dependencies
	ArtifactWriter   = internal.ArtifactWriter
	WriteFileRequest = internal.WriteFileRequest
	MemoryWriter     = internal.MemoryWriter
)

const (
	CategoryDocument = internal.CategoryDocument
	CategoryPage     = internal.CategoryPage
	CategoryIndex    = internal.CategoryIndex
)

var ErrSourceRequired = internal.ErrSourceRequired

// NewService wires a generator with cfg and deps.
func NewService(cfg Config, deps Dependencies) Service {
	return internal.NewService(cfg, deps)
}

// NewFilesystemWriter writes artifacts below root.
func NewFilesystemWriter(root string) ArtifactWriter {
	return internal.NewFilesystemWriter(root)
}

// NewMemoryWriter records artifacts instead of writing them.
func NewMemoryWriter() *MemoryWriter {
	return internal.NewMemoryWriter()
}
