package main

import (
	"errors"
	"testing"
)

func TestDirectionTable(t *testing.T) {
	wantOrder := []string{
		"forward", "backward", "down", "up",
		"diag_fd", "diag_bd", "diag_fu", "diag_bu",
	}
	if len(directions) != len(wantOrder) {
		t.Fatalf("expected %d directions, got %d", len(wantOrder), len(directions))
	}
	for i, d := range directions {
		if d.Name != wantOrder[i] {
			t.Fatalf("direction %d: expected %s, got %s", i, wantOrder[i], d.Name)
		}
		if d.DR < -1 || d.DR > 1 || d.DC < -1 || d.DC > 1 {
			t.Fatalf("direction %s has invalid vector (%d,%d)", d.Name, d.DR, d.DC)
		}
		if d.DR == 0 && d.DC == 0 {
			t.Fatalf("direction %s is the zero vector", d.Name)
		}
	}
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows != 3 || g.Cols != 5 {
		t.Fatalf("expected 3x5, got %dx%d", g.Rows, g.Cols)
	}
	for _, row := range g.Cells {
		if len(row) != 5 {
			t.Fatalf("expected every row to have 5 cells, got %d", len(row))
		}
		for _, c := range row {
			if c != emptyCell {
				t.Fatalf("expected empty cell, got %q", c)
			}
		}
	}
}

func TestNewGridInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("dims %v: expected ErrInvalidDimension, got %v", dims, err)
		}
	}
}

func TestGridString(t *testing.T) {
	g := gridFromLines(t, "ab", "cd")
	if got := g.String(); got != "a b\nc d\n" {
		t.Fatalf("unexpected text format: %q", got)
	}
}

func TestGridLines(t *testing.T) {
	g := gridFromLines(t, "ab", "cd")
	lines := g.Lines()
	if len(lines) != 2 || lines[0] != "ab" || lines[1] != "cd" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestInBounds(t *testing.T) {
	g, _ := NewGrid(2, 3)
	for _, c := range []Coord{{0, 0}, {1, 2}} {
		if !g.InBounds(c.Row, c.Col) {
			t.Fatalf("%v should be in bounds", c)
		}
	}
	for _, c := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if g.InBounds(c.Row, c.Col) {
			t.Fatalf("%v should be out of bounds", c)
		}
	}
}

func TestRunEnd(t *testing.T) {
	start := Coord{Row: 2, Col: 3}
	diagBU := directions[7] // (-1,-1)
	end := runEnd(start, diagBU, 3)
	if (end != Coord{Row: 0, Col: 1}) {
		t.Fatalf("expected (0,1), got %v", end)
	}

	// A 1-letter run ends where it starts.
	if end := runEnd(start, directions[0], 1); end != start {
		t.Fatalf("expected %v, got %v", start, end)
	}
}
