package config

import (
	"time"

	"github.com/pipeguru/docsite/internal/core"
)

// Config holds all application configuration.
type Config struct {
	Site   core.SiteConfig `mapstructure:"site"`
	Server ServerConfig    `mapstructure:"server"`
	Build  BuildConfig     `mapstructure:"build"`
}

// ServerConfig contains settings of the preview server.
type ServerConfig struct {
	Addr     string        `mapstructure:"addr" validate:"required,hostname_port"`
	LogLevel string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Dev      bool          `mapstructure:"dev"`
	CacheTTL time.Duration `mapstructure:"cache_ttl" validate:"gte=0"`
}

// BuildConfig contains settings of the static export.
type BuildConfig struct {
	OutDir      string `mapstructure:"out_dir" validate:"required"`
	Concurrency int    `mapstructure:"concurrency" validate:"gte=1,lte=64"`

	// Clean empties OutDir first. Without it unchanged files are not rewritten.
	Clean bool `mapstructure:"clean"`
}

func Default() *Config {
	return &Config{
		Site: core.DefaultSite(),
		Server: ServerConfig{
			Addr:     "localhost:3000",
			LogLevel: "info",
			CacheTTL: 5 * time.Minute,
		},
		Build: BuildConfig{
			OutDir:      "build",
			Concurrency: 4,
			Clean:       true,
		},
	}
}
