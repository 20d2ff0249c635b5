package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DOC2MD"

// Load resolves the configuration from defaults, an optional config file, and
// DOC2MD_* environment variables, in increasing priority. With an empty path
// a doc2md.{yaml,toml,json} in the working directory is used when present;
// an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("doc2md")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("render.max_depth", cfg.Render.MaxDepth)

	v.SetDefault("output.dir", cfg.Output.Dir)
	v.SetDefault("output.front_matter", cfg.Output.FrontMatter)
	v.SetDefault("output.dry_run", cfg.Output.DryRun)

	v.SetDefault("site.workers", cfg.Site.Workers)
	v.SetDefault("site.index_file", cfg.Site.IndexFile)
	v.SetDefault("site.index_title", cfg.Site.IndexTitle)
	v.SetDefault("site.index_heading", cfg.Site.IndexHeading)
	v.SetDefault("site.prev_label", cfg.Site.PrevLabel)
	v.SetDefault("site.next_label", cfg.Site.NextLabel)
	v.SetDefault("site.page_title", cfg.Site.PageTitle)

	v.SetDefault("markdown.extensions", cfg.Markdown.Extensions)
	v.SetDefault("markdown.hard_wraps", cfg.Markdown.HardWraps)
	v.SetDefault("markdown.safe_mode", cfg.Markdown.SafeMode)
	v.SetDefault("markdown.style", cfg.Markdown.Style)
	v.SetDefault("markdown.wrap_width", cfg.Markdown.WrapWidth)

	v.SetDefault("inspect.enabled", cfg.Inspect.Enabled)
	v.SetDefault("inspect.strict", cfg.Inspect.Strict)

	v.SetDefault("commands.timeout", cfg.Commands.Timeout)

	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
}
