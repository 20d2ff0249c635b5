package doc2md_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-doc2md"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := doc2md.DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestConfigValidateSentinels(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*doc2md.Config)
		want   error
	}{
		{"max depth", func(c *doc2md.Config) { c.Render.MaxDepth = 0 }, doc2md.ErrRenderMaxDepthInvalid},
		{"output dir", func(c *doc2md.Config) { c.Output.Dir = " " }, doc2md.ErrOutputDirRequired},
		{"index file", func(c *doc2md.Config) { c.Site.IndexFile = "pages/index.md" }, doc2md.ErrSiteIndexFileInvalid},
		{"logging provider", func(c *doc2md.Config) { c.Logging.Provider = "syslog" }, doc2md.ErrLoggingProviderUnknown},
		{"logging level", func(c *doc2md.Config) { c.Logging.Level = "loud" }, doc2md.ErrLoggingLevelInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := doc2md.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
