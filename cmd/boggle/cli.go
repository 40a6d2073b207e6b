package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// parseArgs builds the run configuration from args. It reports whether the
// program should exit without doing anything, e.g. after printing help.
func parseArgs(args []string, output io.Writer) (Config, bool, error) {
	flagSet := flag.NewFlagSet("boggle", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
boggle - find every dictionary word on a letter grid.

Usage:
  boggle [options] [GRID_PATH]

Options:
`)
		flagSet.PrintDefaults()
	}

	def := defaultConfig()

	configPath := flagSet.String("config", "", "path to a YAML config file, optional")
	dictPath := flagSet.String("d", def.DictPath, "path to the dictionary file")
	gridPath := flagSet.String("g", "", "path to the grid file")
	random := flagSet.String("random", "", "generate a random RxC grid instead of reading one, e.g. 4x4")
	seed := flagSet.Int64("seed", 0, "seed for -random, 0 picks one from the clock")
	minLen := flagSet.Int("min-len", def.MinLen, "ignore dictionary words shorter than this")
	verbose := flagSet.Bool("v", false, "print the path of every word found")
	logLevel := flagSet.String("log-level", def.LogLevel, "logging level: 'debug', 'info', 'warn', 'error'")
	logFormat := flagSet.String("log-format", def.LogFormat, "log output format: 'text' or 'json'")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return Config{}, true, nil
		}
		return Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := def
	if *configPath != "" {
		var err error
		cfg, err = loadConfigFile(*configPath)
		if err != nil {
			return Config{}, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Loaded config file.", "path", *configPath)
	}

	// Flags given explicitly win over the config file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.DictPath = *dictPath
		case "g":
			cfg.GridPath = *gridPath
		case "random":
			cfg.Random = *random
		case "seed":
			cfg.Seed = *seed
		case "min-len":
			cfg.MinLen = *minLen
		case "v":
			cfg.Verbose = *verbose
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if cfg.GridPath == "" && cfg.Random == "" && flagSet.NArg() > 0 {
		cfg.GridPath = flagSet.Arg(0)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
