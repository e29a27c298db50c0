package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// PathEnv names the variable holding the YAML config location.
	PathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load builds the service configuration. Environment variables override the
// YAML file, which overrides env-default tags. The file is taken from
// CONFIG_PATH; when that is unset a missing ./config.yaml is tolerated and
// the configuration comes from the environment alone.
func Load() (*Config, error) {
	if path := os.Getenv(PathEnv); path != "" {
		return LoadFile(path)
	}
	cfg, err := LoadFile(defaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return loadEnv()
	}
	return cfg, err
}

// LoadFile reads the YAML file at path, applies environment overrides and
// validates the result. A missing file is reported as fs.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return finish(&cfg)
}

func loadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Usage renders the environment variables the service understands, for
// the CLI help output.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
