package boggle

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vyevs/boggle/trie"
)

func gridOf(rows ...string) Grid {
	g := make(Grid, 0, len(rows))
	for _, r := range rows {
		g = append(g, []rune(r))
	}
	return g
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name  string
		grid  Grid
		dict  []string
		wantW []string
	}{
		{
			name:  "cats",
			grid:  gridOf("ca", "ts"),
			dict:  []string{"cat", "cats", "at"},
			wantW: []string{"at", "cat", "cats"},
		},
		{
			name: "three by three",
			grid: gridOf(
				"cat",
				"xrs",
				"qzo",
			),
			dict: []string{
				"cat", "cats", "car", "cars", "art", "arts", "rat", "rats", "star", "tar",
				"oz", "sort", "tsar", "scat", "qi", "rar", "razz", "tact",
			},
			wantW: []string{"art", "arts", "car", "cars", "cat", "cats", "oz", "rat", "rats", "sort", "star", "tar", "tsar"},
		},
		{
			name:  "single cell",
			grid:  gridOf("a"),
			dict:  []string{"a", "an"},
			wantW: []string{"a"},
		},
		{
			name:  "duplicate letters",
			grid:  gridOf("ab", "ba"),
			dict:  []string{"abba", "aba", "abab", "ababa", "bab"},
			wantW: []string{"aba", "abab", "abba", "bab"},
		},
		{
			name:  "dead letter",
			grid:  gridOf("qa", "tx"),
			dict:  []string{"at", "ta", "xi"},
			wantW: []string{"at", "ta"},
		},
		{
			name:  "no words",
			grid:  gridOf("xyz"),
			dict:  []string{"cat"},
			wantW: []string{},
		},
		{
			name:  "non-adjacent letters",
			grid:  gridOf("cxa"),
			dict:  []string{"ca", "xa", "ax"},
			wantW: []string{"ax", "xa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.grid, trie.New(tt.dict...))
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantW, SortedWords(got)); diff != "" {
				t.Fatalf("words differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolveCaseInsensitive(t *testing.T) {
	index := trie.New("cat", "cats", "at", "sat", "tsa")

	lower := gridOf("ca", "ts")
	upper := gridOf("CA", "TS")
	mixed := gridOf("cA", "Ts")

	wantW, err := Solve(lower, index)
	require.NoError(t, err)

	for _, g := range []Grid{upper, mixed} {
		got, err := Solve(g, index)
		require.NoError(t, err)
		require.Equal(t, wantW, got)
	}
}

func TestSolveDoesNotModifyGrid(t *testing.T) {
	g := gridOf("CA", "TS")
	before := g.Clone()

	_, err := Solve(g, trie.New("cat"))
	require.NoError(t, err)
	require.Equal(t, before, g)
}

func TestSolveMalformedGrid(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
	}{
		{name: "nil", grid: nil},
		{name: "no rows", grid: Grid{}},
		{name: "empty row", grid: Grid{{}}},
		{name: "ragged", grid: gridOf("abc", "de")},
		{name: "ragged later row", grid: gridOf("ab", "cd", "efg")},
		{name: "empty second row", grid: Grid{{'a'}, {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.grid, trie.New("ab"))
			require.Error(t, err)
			require.Nil(t, got)
			require.True(t, errors.Is(err, ErrMalformedGrid))

			var mErr *MalformedGridError
			require.True(t, errors.As(err, &mErr))
		})
	}
}

func TestWordsFromStartIsolatesStartCells(t *testing.T) {
	s := solver{
		grid:  gridOf("qa", "tx"),
		index: trie.New("at", "ta"),
		found: map[string]struct{}{},
	}

	s.wordsFromStart(0, 0)
	require.Empty(t, s.found, "no word starts with q")

	s.wordsFromStart(0, 1)
	require.Equal(t, map[string]struct{}{"at": {}}, s.found)
}

// TestSolveMatchesPathSearch checks Solve against FindPaths, which looks for
// each word on its own: a word is found by Solve iff some path spells it.
func TestSolveMatchesPathSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 25; round++ {
		g := randomLowerGrid(rng, 1+rng.Intn(4), 1+rng.Intn(4))
		dict := randomDict(rng, g, 60)

		got, err := Solve(g, trie.New(dict...))
		require.NoError(t, err)

		for _, w := range dict {
			paths, err := FindPaths(g, w)
			require.NoError(t, err)

			_, found := got[w]
			require.Equal(t, len(paths) > 0, found, "word %q on grid\n%s", w, g)

			for _, p := range paths {
				require.True(t, p.Valid(g), "path %v for %q", p, w)
				require.Equal(t, w, p.Spell(g))
			}
		}

		for w := range got {
			require.Contains(t, dict, w)
		}
	}
}

func randomLowerGrid(rng *rand.Rand, rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]rune, cols)
		for c := range g[r] {
			g[r][c] = rune('a' + rng.Intn(4))
		}
	}
	return g
}

// randomDict returns n short words over the grid's alphabet, roughly half of
// them taken from random walks on g so that many are actually present.
func randomDict(rng *rand.Rand, g Grid, n int) []string {
	dict := make([]string, 0, n)
	for i := 0; i < n; i++ {
		l := 1 + rng.Intn(5)
		w := make([]rune, 0, l)
		if i%2 == 0 {
			r, c := rng.Intn(g.Rows()), rng.Intn(g.Cols())
			for len(w) < l {
				w = append(w, g[r][c])
				ns := neighbors(g.Rows(), g.Cols(), r, c)
				if len(ns) == 0 {
					break
				}
				next := ns[rng.Intn(len(ns))]
				r, c = next.Row, next.Col
			}
		} else {
			for len(w) < l {
				w = append(w, rune('a'+rng.Intn(4)))
			}
		}
		dict = append(dict, string(w))
	}
	return dict
}

func BenchmarkSolve(b *testing.B) {
	g := gridOf(
		"serslp",
		"aitnde",
		"rgeoas",
		"tlmpac",
		"esrbut",
		"nliegr",
	)

	dict := []string{
		"set", "sets", "rat", "rats", "tar", "tea", "teas", "seat", "east", "star",
		"stair", "rain", "train", "trains", "grit", "tiger", "tone", "note", "notes",
		"poem", "poems", "pace", "paces", "case", "cast", "cut", "cute", "brute", "tub",
		"lime", "lies", "line", "liner", "bleat", "gate", "mate", "mates", "tame",
	}
	index := trie.New(dict...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Solve(g, index)
		if err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}
