// Package render turns a completed fill into display output. The solver
// has no dependency on this package; anything that can consume an
// Assignment can render it however it likes.
package render

import (
	"strings"

	"github.com/domino14/crossfill/board"
	"github.com/domino14/crossfill/filler"
)

// Letters lays the assignment out on the grid as a 2D rune array. Cells
// not covered by any assigned slot hold the zero rune.
func Letters(g *board.Grid, asg filler.Assignment) [][]rune {
	letters := make([][]rune, g.Height())
	for i := range letters {
		letters[i] = make([]rune, g.Width())
	}
	for v, word := range asg {
		// The engine matches words to slots byte-wise, so index bytes here
		// too; a length-n slot holds an n-byte word.
		for k := 0; k < len(word); k++ {
			row, col := v.Cell(k)
			letters[row][col] = rune(word[k])
		}
	}
	return letters
}

// Text renders the fill as a terminal grid: blocked cells as full blocks,
// unfilled open cells as spaces.
func Text(g *board.Grid, asg filler.Assignment) string {
	letters := Letters(g, asg)
	var sb strings.Builder
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			switch {
			case !g.IsOpen(i, j):
				sb.WriteRune('█')
			case letters[i][j] != 0:
				sb.WriteRune(letters[i][j])
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
