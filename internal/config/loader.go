package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPaths are tried in order when CONFIG_PATH is unset.
var defaultPaths = []string{"./config.yaml", "./config.yml"}

// Load builds the service configuration. Values come from env-default
// tags, then the YAML file, then the environment (highest priority).
//
// CONFIG_PATH names the file explicitly and must exist. Without it the
// first of defaultPaths that exists is used; when none does, only the
// environment and defaults apply.
func Load() (*Config, error) {
	path, err := resolvePath(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", sourceName(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Describe lists every environment variable the service reads, with its
// default. cmd/server prints it for -config-help.
func Describe() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}

// resolvePath returns the config file to read, or "" for env-only mode.
func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", fmt.Errorf("file %s: %w", explicit, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("file %s: is a directory", explicit)
		}
		return explicit, nil
	}

	for _, p := range defaultPaths {
		info, err := os.Stat(p)
		switch {
		case err == nil && !info.IsDir():
			return p, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("file %s: %w", p, err)
		}
	}
	return "", nil
}

func sourceName(path string) string {
	if path == "" {
		return "env"
	}
	return path
}
