// Package config loads YAML configuration for the dump tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-srcdump/internal/fileutil"
	"github.com/alnah/go-srcdump/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// DefaultTokenEncoding is the tiktoken encoding used when the config
// does not name one.
const DefaultTokenEncoding = "cl100k_base"

// Config holds defaults for a dump run. Command-line flags override it.
type Config struct {
	Dump   DumpConfig   `yaml:"dump"`
	Tokens TokensConfig `yaml:"tokens"`
}

// DumpConfig defines collection defaults.
type DumpConfig struct {
	Suffixes  []string `yaml:"suffixes"`  // extension filter for directory scans
	Excludes  []string `yaml:"excludes"`  // paths excluded with their descendants
	Gitignore bool     `yaml:"gitignore"` // honor .gitignore during scans
}

// TokensConfig defines token-count trailer defaults.
type TokensConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Encoding string `yaml:"encoding"` // tiktoken encoding name
}

// DefaultConfig returns a neutral configuration: no filters, no token
// counting, gitignore off.
func DefaultConfig() *Config {
	return &Config{
		Tokens: TokensConfig{Encoding: DefaultTokenEncoding},
	}
}

// LoadConfig loads configuration from a file path or config name.
// A name containing a path separator is treated as a file path;
// otherwise it is searched in the current directory and the user config
// directory. Returns an error if nothing is found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Tokens.Encoding == "" {
		cfg.Tokens.Encoding = DefaultTokenEncoding
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Extensions tried in order: .yaml, .yml.
// Locations tried in order: current directory, <user config>/go-srcdump/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileutil.FileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if userDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			path := filepath.Join(userDir, "go-srcdump", name+ext)
			if fileutil.FileExists(path) {
				return path, nil
			}
			tried = append(tried, path)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
