// Command boggle prints every dictionary word that can be traced on a letter grid.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/vyevs/vtools"

	"github.com/vyevs/boggle"
	"github.com/vyevs/boggle/trie"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(logW, cfg)

	defer vtools.TimeIt(time.Now(), "everything")

	dict, err := boggle.ReadDictionaryFromFile(cfg.DictPath, cfg.MinLen)
	if err != nil {
		return fmt.Errorf("failed to get dictionary: %w", err)
	}
	logger.Info("Dictionary loaded.", "path", cfg.DictPath, "words", len(dict), "min_len", cfg.MinLen)

	index := trie.New(dict...)
	logger.Debug("Prefix index built.", "distinct_words", index.Len())

	grid, err := loadGrid(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(outW, "grid:")
	fmt.Fprint(outW, grid)

	start := time.Now()
	found, err := boggle.Solve(grid, index)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}
	logger.Info("Solved grid.", "words", len(found), "took", time.Since(start))

	words := boggle.SortedWords(found)
	fmt.Fprintf(outW, "found %d words\n", len(words))
	for i, w := range words {
		if !cfg.Verbose {
			fmt.Fprintln(outW, w)
			continue
		}

		path, ok := boggle.FindPath(grid, w)
		if !ok {
			return fmt.Errorf("no path on the grid for found word %q", w)
		}
		fmt.Fprintf(outW, "%3d\n%v\n", i+1, boggle.RenderPath(grid, w, path))
	}

	return nil
}

func loadGrid(cfg Config, logger *slog.Logger) (boggle.Grid, error) {
	if cfg.GridPath != "" {
		grid, err := boggle.ReadGridFromFile(cfg.GridPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read grid: %w", err)
		}
		logger.Debug("Grid loaded.", "path", cfg.GridPath, "rows", grid.Rows(), "cols", grid.Cols())
		return grid, nil
	}

	rows, cols, err := parseSize(cfg.Random)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("Generating random grid.", "rows", rows, "cols", cols, "seed", seed)

	return boggle.RandomGrid(rows, cols, rand.New(rand.NewSource(seed)))
}

func newLogger(w io.Writer, cfg Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
