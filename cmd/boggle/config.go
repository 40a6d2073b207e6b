package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds everything a single run needs. It may be loaded from a YAML
// file and then overridden by flags.
type Config struct {
	DictPath  string `yaml:"dictionary"`
	GridPath  string `yaml:"grid,omitempty"`
	Random    string `yaml:"random,omitempty"` // "RxC", used when GridPath is empty.
	Seed      int64  `yaml:"seed,omitempty"`
	MinLen    int    `yaml:"min_word_length"`
	Verbose   bool   `yaml:"verbose,omitempty"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func defaultConfig() Config {
	return Config{
		DictPath:  "dictionaries/words_alpha.txt",
		MinLen:    3,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// loadConfigFile reads a YAML config file over the defaults.
func loadConfigFile(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.DictPath == "" {
		return errors.New("a dictionary is required")
	}
	if c.GridPath == "" && c.Random == "" {
		return errors.New("provide a grid file using -g, or -random RxC")
	}
	if c.GridPath != "" && c.Random != "" {
		return errors.New("-g and -random are mutually exclusive")
	}
	if c.Random != "" {
		if _, _, err := parseSize(c.Random); err != nil {
			return err
		}
	}
	if c.MinLen < 0 {
		return fmt.Errorf("invalid min word length %d", c.MinLen)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.New("invalid log-format: must be 'text' or 'json'")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return nil
}

// parseSize parses a grid size written as "RxC", e.g. "4x4".
func parseSize(s string) (int, int, error) {
	rs, cs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid grid size %q, want RxC", s)
	}
	rows, err := strconv.Atoi(rs)
	if err != nil || rows < 1 {
		return 0, 0, fmt.Errorf("invalid grid size %q, want RxC", s)
	}
	cols, err := strconv.Atoi(cs)
	if err != nil || cols < 1 {
		return 0, 0, fmt.Errorf("invalid grid size %q, want RxC", s)
	}
	return rows, cols, nil
}
