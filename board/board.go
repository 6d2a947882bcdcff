// Package board models the static geometry of a fill puzzle: the grid of
// open and blocked cells, the slots that maximal runs of open cells induce,
// and the overlap structure between slots. Nothing in here mutates after
// construction; the solver treats a Grid as read-only shared state.
package board

import (
	"fmt"
)

type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	} else if d == Down {
		return "down"
	}
	return "none"
}

// BlockedCell is the template rune marking a cell no word may pass through.
const BlockedCell = '#'

// A Variable identifies one slot: a maximal run of at least two open cells
// in a single direction, which must receive exactly one word. It is a
// comparable value type and is used as a map key throughout; two variables
// are the same variable exactly when row, column, length, and direction
// all match, even if their cells overlap.
type Variable struct {
	Row       int
	Col       int
	Length    int
	Direction Direction
}

func (v Variable) String() string {
	return fmt.Sprintf("%d%s(%d,%d)", v.Length, v.Direction, v.Row, v.Col)
}

// Cell returns the grid coordinates of the k-th letter of v's word.
func (v Variable) Cell(k int) (row, col int) {
	if v.Direction == Across {
		return v.Row, v.Col + k
	}
	return v.Row + k, v.Col
}

type varPair struct {
	x, y Variable
}

// Grid is the puzzle model. It holds the open/blocked cell structure, the
// full set of variables, and the precomputed overlap relation: for every
// unordered pair of intersecting slots, the offsets (i, j) such that the
// i-th letter of one word must equal the j-th letter of the other.
type Grid struct {
	height int
	width  int
	open   [][]bool

	variables []Variable
	overlaps  map[varPair][2]int
	neighbors map[Variable][]Variable
}

// NewGrid builds a Grid from a row template, in the style of the classic
// crossword structure files: BlockedCell marks a blocked cell, any other
// rune an open one. All rows must have equal width.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid template has no rows")
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("grid template has empty rows")
	}
	open := make([][]bool, len(rows))
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("grid row %d has width %d, want %d", i, len(runes), width)
		}
		open[i] = make([]bool, width)
		for j, r := range runes {
			open[i][j] = r != BlockedCell
		}
	}

	g := &Grid{
		height:    len(rows),
		width:     width,
		open:      open,
		overlaps:  make(map[varPair][2]int),
		neighbors: make(map[Variable][]Variable),
	}
	g.findVariables()
	g.computeOverlaps()
	return g, nil
}

// findVariables scans for maximal runs of open cells. Runs of length 1 are
// not slots; a lone open cell is covered by the crossing direction (or by
// nothing at all, if fully walled in).
func (g *Grid) findVariables() {
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			if !g.open[i][j] {
				continue
			}
			if j == 0 || !g.open[i][j-1] {
				length := 0
				for k := j; k < g.width && g.open[i][k]; k++ {
					length++
				}
				if length > 1 {
					g.variables = append(g.variables, Variable{
						Row: i, Col: j, Length: length, Direction: Across,
					})
				}
			}
			if i == 0 || !g.open[i-1][j] {
				length := 0
				for k := i; k < g.height && g.open[k][j]; k++ {
					length++
				}
				if length > 1 {
					g.variables = append(g.variables, Variable{
						Row: i, Col: j, Length: length, Direction: Down,
					})
				}
			}
		}
	}
}

func (g *Grid) computeOverlaps() {
	// Index every open cell by the variables crossing it, with the letter
	// offset each one contributes.
	type hit struct {
		v      Variable
		offset int
	}
	cells := make(map[[2]int][]hit)
	for _, v := range g.variables {
		for k := 0; k < v.Length; k++ {
			r, c := v.Cell(k)
			cells[[2]int{r, c}] = append(cells[[2]int{r, c}], hit{v, k})
		}
	}
	for _, hits := range cells {
		for a := 0; a < len(hits); a++ {
			for b := a + 1; b < len(hits); b++ {
				x, y := hits[a], hits[b]
				g.overlaps[varPair{x.v, y.v}] = [2]int{x.offset, y.offset}
				g.overlaps[varPair{y.v, x.v}] = [2]int{y.offset, x.offset}
				g.neighbors[x.v] = append(g.neighbors[x.v], y.v)
				g.neighbors[y.v] = append(g.neighbors[y.v], x.v)
			}
		}
	}
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) Width() int {
	return g.width
}

// IsOpen reports whether the cell at (row, col) admits a letter.
func (g *Grid) IsOpen(row, col int) bool {
	return g.open[row][col]
}

// Variables returns every slot in the grid. The returned slice is a copy;
// callers may reorder it freely.
func (g *Grid) Variables() []Variable {
	return append([]Variable(nil), g.variables...)
}

// Overlap returns the letter offsets at which x and y intersect: x's i-th
// letter must equal y's j-th letter. ok is false when the slots share no
// cell. Overlap(x, y) and Overlap(y, x) are offset-swapped views of the
// same constraint.
func (g *Grid) Overlap(x, y Variable) (i, j int, ok bool) {
	offsets, ok := g.overlaps[varPair{x, y}]
	if !ok {
		return 0, 0, false
	}
	return offsets[0], offsets[1], true
}

// Neighbors returns the variables that share a cell with v.
func (g *Grid) Neighbors(v Variable) []Variable {
	return append([]Variable(nil), g.neighbors[v]...)
}

// Degree is the size of v's neighbor set.
func (g *Grid) Degree(v Variable) int {
	return len(g.neighbors[v])
}
