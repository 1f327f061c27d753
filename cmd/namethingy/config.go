package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/CTAG07/namethingy/pkg/markov"
	"github.com/CTAG07/namethingy/pkg/templating"
	"github.com/goccy/go-json"
	"github.com/natefinch/atomic"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config holds every setting that can be read from the config file.
// Command line flags override the values loaded here.
type Config struct {
	Order       int    `json:"order" yaml:"order"`
	Limit       int    `json:"limit" yaml:"limit"`
	MaxLength   int    `json:"max_length" yaml:"max_length"`
	MaxAttempts int    `json:"max_attempts" yaml:"max_attempts"`
	Seed        uint64 `json:"seed" yaml:"seed"`

	Output templating.TemplateConfig `json:"output" yaml:"output"`

	DatabasePath string `json:"database_path" yaml:"database_path"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
	LogFormat    string `json:"log_format" yaml:"log_format"`
	ServerAddr   string `json:"server_addr" yaml:"server_addr"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Order:        markov.DefaultOrder,
		Limit:        10,
		MaxLength:    0,
		MaxAttempts:  100,
		Seed:         0,
		Output:       templating.DefaultConfig(),
		DatabasePath: "./namethingy.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)",
		LogLevel:     "info",
		LogFormat:    "text",
		ServerAddr:   ":7279",
	}
}

// isYAML reports whether path should be parsed as YAML rather than JSON.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func marshalConfig(path string, config *Config) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(config)
	}
	return json.MarshalIndent(config, "", "  ")
}

func unmarshalConfig(path string, data []byte, config *Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, config)
	}
	return json.Unmarshal(data, config)
}

// LoadConfig reads the configuration at path. If the file doesn't exist, it
// creates one with default values. The returned bool reports whether the
// file was created.
func LoadConfig(path string) (*Config, bool, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("failed to read config file: %w", err)
		}
		var data []byte
		data, err = marshalConfig(path, config)
		if err != nil {
			return nil, false, fmt.Errorf("failed to marshal default config: %w", err)
		}
		if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
			return nil, false, fmt.Errorf("failed to write default config file: %w", err)
		}
		return config, true, nil
	}

	if err = unmarshalConfig(path, file, config); err != nil {
		return nil, false, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err = config.validate(); err != nil {
		return nil, false, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, false, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Order < 1 {
		errs = append(errs, fmt.Errorf("order must be at least 1, got %d", c.Order))
	}
	if c.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit must not be negative, got %d", c.Limit))
	}
	if c.MaxLength < 0 {
		errs = append(errs, fmt.Errorf("max_length must not be negative, got %d", c.MaxLength))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts))
	}
	return errors.Join(errs...)
}

// applyFlags copies every explicitly set flag of cmd over the loaded config.
// Flags a command doesn't define are never set and are skipped.
func (c *Config) applyFlags(cmd *cli.Command) error {
	if cmd.IsSet("order") {
		c.Order = int(cmd.Int("order"))
	}
	if cmd.IsSet("limit") {
		c.Limit = int(cmd.Int("limit"))
	}
	if cmd.IsSet("max-length") {
		c.MaxLength = int(cmd.Int("max-length"))
	}
	if cmd.IsSet("max-attempts") {
		c.MaxAttempts = int(cmd.Int("max-attempts"))
	}
	if cmd.IsSet("seed") {
		c.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("format") {
		c.Output.Format = cmd.String("format")
	}
	if cmd.IsSet("database") {
		c.DatabasePath = cmd.String("database")
	}
	if cmd.IsSet("log-level") {
		c.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		c.LogFormat = cmd.String("log-format")
	}
	if cmd.IsSet("addr") {
		c.ServerAddr = cmd.String("addr")
	}
	return c.validate()
}
