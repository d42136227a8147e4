package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/storefront-seo/microdata/internal/core"
	"github.com/storefront-seo/microdata/internal/microdata/render"
	pkgredis "github.com/storefront-seo/microdata/pkg/redis"
)

// ================ Config ================
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	Microdata MicrodataConfig
}

type MicrodataConfig struct {
	BrandAttribute string `envconfig:"MICRODATA_BRAND_ATTRIBUTE" default:"manufacturer"`
	Locale         string `envconfig:"MICRODATA_LOCALE" default:"en_US"`
	CacheEnabled   bool   `envconfig:"MICRODATA_CACHE_ENABLED" default:"true"`
	CachePrefix    string `envconfig:"MICRODATA_CACHE_PREFIX" default:"microdata:"`
}

// Load reads envFile into the process environment, if it exists, then
// processes the environment. Variables already set win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return Process()
}

// Process builds the config from the environment only.
func Process() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Env() core.Environment {
	return core.ParseEnvironment(c.Environment)
}

// CacheEnabled reports whether rendered documents should go through Redis.
func (c Config) CacheEnabled() bool {
	return c.Microdata.CacheEnabled && c.Redis.Enabled()
}

func (c Config) ProductConfig() render.ProductConfig {
	return render.ProductConfig{BrandAttribute: c.Microdata.BrandAttribute}
}
