package boggle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/mmap"
)

// ReadDictionaryFromFile uses ReadDictionary to read from the specified file.
// The file is memory-mapped rather than read into memory first.
func ReadDictionaryFromFile(file string, minLen int) ([]string, error) {
	ra, err := mmap.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer ra.Close()

	return ReadDictionary(io.NewSectionReader(ra, 0, int64(ra.Len())), minLen)
}

// ReadDictionary reads a newline-delimited sequence of words from r.
// Words are trimmed and lowercased. Blank lines and words of fewer than
// minLen runes are dropped.
func ReadDictionary(r io.Reader, minLen int) ([]string, error) {
	sc := bufio.NewScanner(r)

	dict := make([]string, 0, 1<<12)
	for sc.Scan() {
		line := sc.Text()
		line = strings.TrimSpace(line)
		if line == "" || utf8.RuneCountInString(line) < minLen {
			continue
		}
		dict = append(dict, strings.ToLower(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	return dict, nil
}

// ReadGridFromFile uses ReadGrid to read a grid from the specified file.
func ReadGridFromFile(file string) (Grid, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file: %w", err)
	}
	defer f.Close()
	return ReadGrid(f)
}

// ReadGrid reads a grid from r, one row per line. Cells are either separated
// by whitespace ("c a t") or written back to back ("cat"). Leading blank
// lines are skipped and the first blank line after a row ends the grid.
// The grid returned is valid.
func ReadGrid(r io.Reader) (Grid, error) {
	grid := make(Grid, 0, 8)

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if len(grid) == 0 {
				continue
			}
			break
		}

		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading grid: %w", err)
	}

	if err := Validate(grid); err != nil {
		return nil, err
	}

	return grid, nil
}

func parseRow(line string) ([]rune, error) {
	if !strings.ContainsFunc(line, unicode.IsSpace) {
		return []rune(line), nil
	}

	fields := strings.Fields(line)
	row := make([]rune, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) != 1 {
			return nil, fmt.Errorf("cell %q is not a single character", f)
		}
		r, _ := utf8.DecodeRuneInString(f)
		row = append(row, r)
	}
	return row, nil
}
