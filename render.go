package boggle

import (
	"strings"

	"github.com/vyevs/ansi"
)

var pathColors = [9]string{"red", "green", "yellow", "cyan", "orange", "pink", "purple", "chartreuse", "light gray"}

// RenderPath renders grid with the cells of path highlighted, preceded by word.
func RenderPath(grid Grid, word string, path Path) string {
	return RenderPaths(grid, []string{word}, []Path{path})
}

// RenderPaths renders grid with the cells of paths[i] in the same colour as
// words[i]. Colours repeat after nine paths; a cell on several paths takes
// the colour of the last one.
func RenderPaths(grid Grid, words []string, paths []Path) string {
	var b strings.Builder
	b.Grow(128)

	{
		for i, word := range words {
			colorForWord := pathColors[i%len(pathColors)]

			b.WriteString(ansi.FGColorName(colorForWord))
			b.WriteString(word)
			b.WriteByte(' ')
		}

		b.WriteString(ansi.Clear)
		b.WriteByte('\n')
	}

	cellToColor := make(map[Cell]string, 16)
	for i, path := range paths {
		pathColor := pathColors[i%len(pathColors)]
		for _, cell := range path {
			cellToColor[cell] = pathColor
		}
	}

	for r, row := range grid {
		for c, char := range row {
			if color, ok := cellToColor[Cell{r, c}]; ok {
				b.WriteString(ansi.FGColorName(color))
				b.WriteRune(char)
				b.WriteString(ansi.Clear)
			} else {
				b.WriteRune(char)
			}
			if c < len(row)-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
