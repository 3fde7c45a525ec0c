package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Keys that may be overridden from the environment.
var envKeys = []string{
	"site.title",
	"site.tagline",
	"site.url",
	"site.base_url",
	"site.on_broken_links",
	"site.trailing_slash",
	"site.docs.path",
	"site.docs.edit_url",
	"site.sitemap.changefreq",
	"site.sitemap.priority",
	"site.theme_config.prism.theme",
	"site.theme_config.prism.dark_theme",
	"server.addr",
	"server.log_level",
	"server.dev",
	"server.cache_ttl",
	"build.out_dir",
	"build.concurrency",
	"build.clean",
}

// List values replace the defaults instead of being merged element-wise.
var listKeys = []string{
	"site.i18n.locales",
	"site.sitemap.ignore_patterns",
	"site.theme_config.navbar.items",
}

// Load builds the configuration from the defaults, the YAML file at path (if
// path is not empty) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := Default()
	for _, key := range listKeys {
		if v.IsSet(key) {
			resetList(cfg, key)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func resetList(cfg *Config, key string) {
	switch key {
	case "site.i18n.locales":
		cfg.Site.I18n.Locales = nil
	case "site.sitemap.ignore_patterns":
		cfg.Site.Sitemap.IgnorePatterns = nil
	case "site.theme_config.navbar.items":
		cfg.Site.ThemeConfig.Navbar.Items = nil
	}
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
