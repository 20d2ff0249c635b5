package convertcmd

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	convertDocumentMessageType = "doc2md.convert.document"
	buildSiteMessageType       = "doc2md.convert.site"
)

// ConvertDocumentCommand renders one XML source into a single Markdown file.
type ConvertDocumentCommand struct {
	// Source is the path of the XML document.
	Source string `json:"source"`
	// OutputDir overrides the configured output directory.
	OutputDir string `json:"output_dir,omitempty"`
	// Filename overrides the name derived from the first section title.
	Filename string `json:"filename,omitempty"`
	// FrontMatter prefixes the file with a YAML block holding the title.
	FrontMatter bool `json:"front_matter,omitempty"`
	DryRun      bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ConvertDocumentCommand) Type() string { return convertDocumentMessageType }

// Validate requires a source path and a bare file name.
func (cmd ConvertDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Source, validation.Required, validation.By(requireNonBlank("doc2md.convert.document.source_required", "source is required"))),
		validation.Field(&cmd.Filename, validation.By(bareFilename)),
	)
}

// BuildSiteCommand splits an XML source into one page per top-level section
// plus an index page.
type BuildSiteCommand struct {
	Source    string `json:"source"`
	OutputDir string `json:"output_dir,omitempty"`
	DryRun    bool   `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate requires a source path.
func (cmd BuildSiteCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Source, validation.Required, validation.By(requireNonBlank("doc2md.convert.site.source_required", "source is required"))),
	)
}

func requireNonBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

func bareFilename(value any) error {
	name := value.(string)
	if name == "" {
		return nil
	}
	if filepath.Base(name) != name || name == "." || name == ".." {
		return validation.NewError("doc2md.convert.document.filename_invalid", "filename must not contain a directory")
	}
	return nil
}
