package config

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config holds all the settings an App needs to run.
type Config struct {
	DataFile  string `hcl:"data_file,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// Default returns the settings used when nothing else is given. DataFile has no
// default; the menu asks for it.
func Default() Config {
	return Config{LogLevel: "warn", LogFormat: "text"}
}

// Load decodes the HCL file at path. Attributes missing from the file are left empty,
// so the result is meant to be merged over Default.
func Load(path string) (Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config file %q: %w", path, err)
	}
	if cfg.DataFile != "" && !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(filepath.Dir(path), cfg.DataFile)
	}
	return cfg, nil
}

// Merge returns u with every non-empty field of override written over it.
func (u Config) Merge(override Config) Config {
	if override.DataFile != "" {
		u.DataFile = override.DataFile
	}
	if override.LogLevel != "" {
		u.LogLevel = override.LogLevel
	}
	if override.LogFormat != "" {
		u.LogFormat = override.LogFormat
	}
	return u
}

// Validate reports the first setting that holds an unknown value.
func (u Config) Validate() error {
	switch u.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", u.LogLevel)
	}
	if u.LogFormat != "text" && u.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", u.LogFormat)
	}
	return nil
}
