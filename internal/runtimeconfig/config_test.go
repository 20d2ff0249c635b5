package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-doc2md/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{"max depth", func(c *runtimeconfig.Config) { c.Render.MaxDepth = 0 }, runtimeconfig.ErrRenderMaxDepthInvalid},
		{"output dir", func(c *runtimeconfig.Config) { c.Output.Dir = " " }, runtimeconfig.ErrOutputDirRequired},
		{"workers", func(c *runtimeconfig.Config) { c.Site.Workers = 0 }, runtimeconfig.ErrSiteWorkersInvalid},
		{"index nested", func(c *runtimeconfig.Config) { c.Site.IndexFile = "docs/index.md" }, runtimeconfig.ErrSiteIndexFileInvalid},
		{"index extension", func(c *runtimeconfig.Config) { c.Site.IndexFile = "index.html" }, runtimeconfig.ErrSiteIndexFileInvalid},
		{"timeout", func(c *runtimeconfig.Config) { c.Commands.Timeout = -time.Second }, runtimeconfig.ErrCommandTimeoutInvalid},
		{"provider", func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" }, runtimeconfig.ErrLoggingProviderUnknown},
		{"level", func(c *runtimeconfig.Config) { c.Logging.Level = "loud" }, runtimeconfig.ErrLoggingLevelInvalid},
		{"format", func(c *runtimeconfig.Config) {
			c.Logging.Provider = "gologger"
			c.Logging.Format = "xml"
		}, runtimeconfig.ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_ConsoleIgnoresFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected console provider to ignore format, got %v", err)
	}
}

func TestLoadReadsFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc2md.yaml")
	data := []byte("render:\n  max_depth: 64\nsite:\n  workers: 2\n  prev_label: Anterior\nlogging:\n  provider: gologger\n  format: json\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DOC2MD_SITE_NEXT_LABEL", "Siguiente")
	t.Setenv("DOC2MD_COMMANDS_TIMEOUT", "5s")

	cfg, err := runtimeconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Render.MaxDepth != 64 || cfg.Site.Workers != 2 {
		t.Fatalf("expected file values, got %+v", cfg)
	}
	if cfg.Site.PrevLabel != "Anterior" || cfg.Site.NextLabel != "Siguiente" {
		t.Fatalf("expected labels from file and env, got %q %q", cfg.Site.PrevLabel, cfg.Site.NextLabel)
	}
	if cfg.Commands.Timeout != 5*time.Second {
		t.Fatalf("expected env timeout, got %v", cfg.Commands.Timeout)
	}
	if cfg.Site.IndexFile != "index.md" || cfg.Logging.Format != "json" {
		t.Fatalf("expected defaults to survive, got %+v", cfg.Site)
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := runtimeconfig.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.MaxDepth != runtimeconfig.DefaultConfig().Render.MaxDepth {
		t.Fatalf("expected default max depth, got %d", cfg.Render.MaxDepth)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("DOC2MD_SITE_WORKERS", "0")
	t.Chdir(t.TempDir())

	if _, err := runtimeconfig.Load(""); !errors.Is(err, runtimeconfig.ErrSiteWorkersInvalid) {
		t.Fatalf("expected ErrSiteWorkersInvalid, got %v", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := runtimeconfig.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected missing file error")
	}
}
