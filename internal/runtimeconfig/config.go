package runtimeconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

var ErrRenderMaxDepthInvalid = errors.New("doc2md config: render max depth must be positive")
var ErrOutputDirRequired = errors.New("doc2md config: output directory is required")
var ErrSiteWorkersInvalid = errors.New("doc2md config: site workers must be at least one")
var ErrSiteIndexFileInvalid = errors.New("doc2md config: site index file must be a bare .md file name")
var ErrCommandTimeoutInvalid = errors.New("doc2md config: command timeout must be zero or positive")
var ErrLoggingProviderUnknown = errors.New("doc2md config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("doc2md config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("doc2md config: logging format is invalid")

// Config aggregates every tunable of the converter. Field names double as
// config file keys and DOC2MD_* environment variables (DOC2MD_SITE_WORKERS).
type Config struct {
	Render   RenderConfig   `mapstructure:"render"`
	Output   OutputConfig   `mapstructure:"output"`
	Site     SiteConfig     `mapstructure:"site"`
	Markdown MarkdownConfig `mapstructure:"markdown"`
	Inspect  InspectConfig  `mapstructure:"inspect"`
	Commands CommandsConfig `mapstructure:"commands"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// RenderConfig bounds a single render pass.
type RenderConfig struct {
	MaxDepth int `mapstructure:"max_depth"`
}

// OutputConfig controls where and how converted files are written.
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	FrontMatter bool   `mapstructure:"front_matter"`
	DryRun      bool   `mapstructure:"dry_run"`
}

// SiteConfig drives multi-page builds. PageTitle is a fmt pattern receiving
// the 1-based page number, used for sections without a title.
type SiteConfig struct {
	Workers      int    `mapstructure:"workers"`
	IndexFile    string `mapstructure:"index_file"`
	IndexTitle   string `mapstructure:"index_title"`
	IndexHeading string `mapstructure:"index_heading"`
	PrevLabel    string `mapstructure:"prev_label"`
	NextLabel    string `mapstructure:"next_label"`
	PageTitle    string `mapstructure:"page_title"`
}

// MarkdownConfig configures previews: goldmark options for HTML output and
// the glamour style and wrap width for terminal output.
type MarkdownConfig struct {
	Extensions []string `mapstructure:"extensions"`
	HardWraps  bool     `mapstructure:"hard_wraps"`
	SafeMode   bool     `mapstructure:"safe_mode"`
	Style      string   `mapstructure:"style"`
	WrapWidth  int      `mapstructure:"wrap_width"`
}

// InspectConfig toggles source checks.
type InspectConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Strict  bool `mapstructure:"strict"`
}

// CommandsConfig applies to command handlers.
type CommandsConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// DefaultConfig returns the settings used when no file or environment
// override is present.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			MaxDepth: 512,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Site: SiteConfig{
			Workers:      4,
			IndexFile:    "index.md",
			IndexTitle:   "Contents",
			IndexHeading: "Section index",
			PrevLabel:    "⬅️ Previous",
			NextLabel:    "Next ➡️",
			PageTitle:    "Section %d",
		},
		Markdown: MarkdownConfig{
			Style:     "auto",
			WrapWidth: 100,
		},
		Inspect: InspectConfig{
			Enabled: true,
		},
		Commands: CommandsConfig{
			Timeout: time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if cfg.Render.MaxDepth <= 0 {
		return fmt.Errorf("%w: %d", ErrRenderMaxDepthInvalid, cfg.Render.MaxDepth)
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		return ErrOutputDirRequired
	}
	if cfg.Site.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrSiteWorkersInvalid, cfg.Site.Workers)
	}
	if index := cfg.Site.IndexFile; index != filepath.Base(index) || !strings.HasSuffix(index, ".md") || index == ".md" {
		return fmt.Errorf("%w: %q", ErrSiteIndexFileInvalid, index)
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

// an empty provider disables logging
func isSupportedProvider(provider string) bool {
	switch provider {
	case "", "none", "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
