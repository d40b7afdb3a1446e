// Package config provides configuration management for microf.
//
// Config file location:
//   - Unix: ~/.config/microf/config
//
// INI format:
//
//	[microf]
//	convert_tool = convert
//	submit_command = sbatch
//	batch_size = 200
//
// Environment variables MICROF_CONVERT_TOOL, MICROF_SUBMIT_COMMAND and
// MICROF_BATCH_SIZE override file values. A missing config file is not
// an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"
)

// Config holds the external-tool settings for microf.
type Config struct {
	// ConvertTool is the image conversion command (ImageMagick-style CLI).
	ConvertTool string `ini:"convert_tool"`

	// SubmitCommand is the cluster submission command for batch mode.
	SubmitCommand string `ini:"submit_command"`

	// BatchSize is the default number of commands per array task.
	BatchSize int `ini:"batch_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ConvertTool:   "convert",
		SubmitCommand: "sbatch",
		BatchSize:     200,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "microf", "config"), nil
}

// Load reads the configuration from path, falling back to the default
// location when path is empty. File values override defaults, and
// MICROF_* environment variables override both.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			f, err := ini.Load(path)
			if err != nil {
				return cfg, fmt.Errorf("load config %s: %w", path, err)
			}
			if err := f.Section("microf").MapTo(&cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if explicit {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.BatchSize < 1 {
		return cfg, fmt.Errorf("batch_size must be positive, got %d", cfg.BatchSize)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MICROF_CONVERT_TOOL"); v != "" {
		cfg.ConvertTool = v
	}
	if v := os.Getenv("MICROF_SUBMIT_COMMAND"); v != "" {
		cfg.SubmitCommand = v
	}
	if v := os.Getenv("MICROF_BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BatchSize = n
		}
	}
}
