// Command flatdict rewrites a word list into the form the boggle dictionary
// reader expects: one lowercase word per line, with spaces, apostrophes and
// hyphens removed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

func main() {
	var inPath, outPath string
	flag.StringVar(&inPath, "in", "", "path to the word list to flatten")
	flag.StringVar(&outPath, "out", "", "path to write the flattened list, defaults to new<in>")
	flag.Parse()

	if inPath == "" && flag.NArg() > 0 {
		inPath = flag.Arg(0)
	}
	if inPath == "" {
		fmt.Fprintln(os.Stderr, "provide a word list using -in")
		os.Exit(2)
	}
	if outPath == "" {
		outPath = "new" + inPath
	}

	if err := flattenFile(inPath, outPath); err != nil {
		slog.Error("Failed to flatten word list.", "in", inPath, "error", err)
		os.Exit(1)
	}
}

func flattenFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	n, err := flatten(in, out)
	if cErr := out.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		return err
	}

	slog.Info("Flattened word list.", "in", inPath, "out", outPath, "words", n)
	return nil
}

var flatReplacer = strings.NewReplacer(" ", "", "'", "", "-", "")

// flatten copies r to w one flattened word per line and returns the number
// of words written. Lines that end up empty are dropped.
func flatten(r io.Reader, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)

	var n int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := flatReplacer.Replace(strings.ToLower(strings.TrimSpace(sc.Text())))
		if line == "" {
			continue
		}

		bw.WriteString(line)
		bw.WriteByte('\n')
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("scanner error: %w", err)
	}

	return n, bw.Flush()
}
