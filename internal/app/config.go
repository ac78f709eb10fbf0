package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "INFOGRAFIAS"

// Config holds all the configuration settings for our Application.
// Values come from INFOGRAFIAS_* environment variables (optionally loaded from
// a .env file) and may be overridden by command-line flags.
type Config struct {
	Port        int         `envconfig:"PORT" default:"4000"`
	Env         Environment `envconfig:"ENV" default:"development"`
	RateLimit   int         `envconfig:"RATE_LIMIT" default:"100"`
	LogLevel    string      `envconfig:"LOG_LEVEL" default:"info"`
	CatalogPath string      `envconfig:"CATALOG_PATH"`
	DebugKeys   []string    `envconfig:"DEBUG_KEYS" default:"dev"`
}

// LoadConfig loads the given .env files (".env" when none are named), ignoring
// missing ones, then reads the environment.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}
