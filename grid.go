package main

import (
	"errors"
	"strings"
)

const (
	emptyCell  = '_' // unset cell during generation
	fillerCell = '*' // non-word cell in the answer key
)

// Direction is one of the eight straight-line traversal vectors,
// expressed as a per-step (row delta, column delta) pair.
type Direction struct {
	Name string
	DR   int
	DC   int
}

// directions is the fixed direction table. The order is a contract:
// the solver tries directions in this order from each start cell, which
// decides which occurrence is reported when a word appears more than once.
var directions = [8]Direction{
	{"forward", 0, 1},
	{"backward", 0, -1},
	{"down", 1, 0},
	{"up", -1, 0},
	{"diag_fd", 1, 1},
	{"diag_bd", 1, -1},
	{"diag_fu", -1, 1},
	{"diag_bu", -1, -1},
}

// Coord is a row/column position on the grid.
type Coord struct {
	Row int
	Col int
}

// runEnd returns the last cell of an n-letter run from start along d.
func runEnd(start Coord, d Direction, n int) Coord {
	return Coord{
		Row: start.Row + (n-1)*d.DR,
		Col: start.Col + (n-1)*d.DC,
	}
}

// Placement records where a word sits on the grid: its start and end
// cells plus the direction walked between them.
type Placement struct {
	Word      string
	Start     Coord
	End       Coord
	Direction Direction
}

// ErrInvalidDimension is returned for non-positive row or column counts.
var ErrInvalidDimension = errors.New("rows and columns must be positive")

// Grid is a rectangular board of single-letter cells.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]byte
}

// NewGrid returns a rows×cols grid with every cell empty.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimension
	}
	cells := make([][]byte, rows)
	for i := range cells {
		row := make([]byte, cols)
		for j := range row {
			row[j] = emptyCell
		}
		cells[i] = row
	}
	return &Grid{Rows: rows, Cols: cols, Cells: cells}, nil
}

// InBounds reports whether (row, col) is on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Lines returns the rows as plain strings, one per row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.Rows)
	for i, row := range g.Cells {
		lines[i] = string(row)
	}
	return lines
}

// String renders the grid with spaces between letters, one row per line.
// This is the on-disk puzzle and key format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows * g.Cols * 2)
	for _, row := range g.Cells {
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
