package board

import (
	"testing"

	"github.com/matryer/is"
)

// 3x3 with the bottom-right corner walled off:
//
//	. . .
//	. . #
//	. . #
//
// Slots: across row 0 (len 3), across rows 1 and 2 (len 2 each),
// down cols 0 and 1 (len 3 each). Column 2 is a lone open cell, not a slot.
var testRows = []string{
	"...",
	"..#",
	"..#",
}

func TestFindVariables(t *testing.T) {
	is := is.New(t)
	g, err := NewGrid(testRows)
	is.NoErr(err)

	want := map[Variable]bool{
		{Row: 0, Col: 0, Length: 3, Direction: Across}: true,
		{Row: 1, Col: 0, Length: 2, Direction: Across}: true,
		{Row: 2, Col: 0, Length: 2, Direction: Across}: true,
		{Row: 0, Col: 0, Length: 3, Direction: Down}:   true,
		{Row: 0, Col: 1, Length: 3, Direction: Down}:   true,
	}
	vars := g.Variables()
	is.Equal(len(vars), len(want))
	for _, v := range vars {
		is.True(want[v])
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	is := is.New(t)
	g, err := NewGrid(testRows)
	is.NoErr(err)

	x := Variable{Row: 0, Col: 0, Length: 3, Direction: Across}
	y := Variable{Row: 0, Col: 1, Length: 3, Direction: Down}

	i, j, ok := g.Overlap(x, y)
	is.True(ok)
	is.Equal(i, 1) // x's second letter sits on cell (0,1)
	is.Equal(j, 0) // which is y's first letter

	j2, i2, ok := g.Overlap(y, x)
	is.True(ok)
	is.Equal(i2, i)
	is.Equal(j2, j)
}

func TestNoOverlap(t *testing.T) {
	is := is.New(t)
	g, err := NewGrid(testRows)
	is.NoErr(err)

	x := Variable{Row: 1, Col: 0, Length: 2, Direction: Across}
	y := Variable{Row: 2, Col: 0, Length: 2, Direction: Across}
	_, _, ok := g.Overlap(x, y)
	is.True(!ok)
}

func TestNeighbors(t *testing.T) {
	is := is.New(t)
	g, err := NewGrid(testRows)
	is.NoErr(err)

	topAcross := Variable{Row: 0, Col: 0, Length: 3, Direction: Across}
	ns := g.Neighbors(topAcross)
	is.Equal(len(ns), 2) // both down slots cross it
	is.Equal(g.Degree(topAcross), 2)

	seen := map[Variable]bool{}
	for _, n := range ns {
		seen[n] = true
	}
	is.True(seen[Variable{Row: 0, Col: 0, Length: 3, Direction: Down}])
	is.True(seen[Variable{Row: 0, Col: 1, Length: 3, Direction: Down}])
}

func TestDistinctVariablesSamePosition(t *testing.T) {
	is := is.New(t)
	// An across and a down slot can start on the same cell with the same
	// length; they are distinct variables.
	a := Variable{Row: 0, Col: 0, Length: 3, Direction: Across}
	d := Variable{Row: 0, Col: 0, Length: 3, Direction: Down}
	is.True(a != d)
}

func TestBadTemplates(t *testing.T) {
	is := is.New(t)
	_, err := NewGrid(nil)
	is.True(err != nil)
	_, err = NewGrid([]string{"...", ".."})
	is.True(err != nil)
}

func TestCell(t *testing.T) {
	is := is.New(t)
	a := Variable{Row: 2, Col: 1, Length: 4, Direction: Across}
	r, c := a.Cell(2)
	is.Equal(r, 2)
	is.Equal(c, 3)

	d := Variable{Row: 2, Col: 1, Length: 4, Direction: Down}
	r, c = d.Cell(2)
	is.Equal(r, 4)
	is.Equal(c, 1)
}
