package doc2md

import "github.com/goliatone/go-doc2md/internal/runtimeconfig"

var (
	ErrRenderMaxDepthInvalid  = runtimeconfig.ErrRenderMaxDepthInvalid
	ErrOutputDirRequired      = runtimeconfig.ErrOutputDirRequired
	ErrSiteWorkersInvalid     = runtimeconfig.ErrSiteWorkersInvalid
	ErrSiteIndexFileInvalid   = runtimeconfig.ErrSiteIndexFileInvalid
	ErrCommandTimeoutInvalid  = runtimeconfig.ErrCommandTimeoutInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	RenderConfig   = runtimeconfig.RenderConfig
	OutputConfig   = runtimeconfig.OutputConfig
	SiteConfig     = runtimeconfig.SiteConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	InspectConfig  = runtimeconfig.InspectConfig
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads path (optional) and DOC2MD_* environment overrides on top
// of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
