package main

import (
	"errors"
	"strings"
	"testing"
)

func gridFromLines(t *testing.T, lines ...string) *Grid {
	t.Helper()
	cells := make([][]byte, len(lines))
	for i, l := range lines {
		cells[i] = []byte(l)
	}
	return &Grid{Rows: len(lines), Cols: len(lines[0]), Cells: cells}
}

// runCells lists every cell of a placement's run.
func runCells(p Placement) []Coord {
	cells := make([]Coord, 0, len(p.Word))
	row, col := p.Start.Row, p.Start.Col
	for range len(p.Word) {
		cells = append(cells, Coord{Row: row, Col: col})
		row += p.Direction.DR
		col += p.Direction.DC
	}
	return cells
}

func TestFitRespectsBoundsAndConflicts(t *testing.T) {
	g := gridFromLines(t, "t_s_", "____")
	e := NewSeededEngine(g, 1)

	forward := directions[0]
	if !e.fits("test", 0, 0, forward) {
		t.Fatal("'test' should fit over 't_s_': empty cells and agreeing letters")
	}
	if e.fits("this", 0, 0, forward) {
		t.Fatal("'this' should not fit: conflicts with 's' at (0,2)")
	}
	if e.fits("tests", 0, 0, forward) {
		t.Fatal("'tests' should not fit: run leaves the grid")
	}
}

func TestPlaceWritesRunAndRecordsPlacement(t *testing.T) {
	g, err := NewGrid(6, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := NewSeededEngine(g, 42)

	p, err := e.Place("Hello")
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if p.Word != "hello" {
		t.Fatalf("expected normalized word 'hello', got %q", p.Word)
	}

	want := runEnd(p.Start, p.Direction, len(p.Word))
	if p.End != want {
		t.Fatalf("end %v does not match start + (len-1)*vector %v", p.End, want)
	}

	for i, cell := range runCells(p) {
		if got := g.Cells[cell.Row][cell.Col]; got != p.Word[i] {
			t.Fatalf("cell %v: expected %q, got %q", cell, p.Word[i], got)
		}
	}
}

func TestPlaceNeverOverwritesConflicts(t *testing.T) {
	g := gridFromLines(t, "xx", "xx")
	e := NewSeededEngine(g, 7)

	if _, err := e.Place("ab"); !errors.Is(err, ErrUnplaceable) {
		t.Fatalf("expected ErrUnplaceable on a fully conflicting grid, got %v", err)
	}
	for _, row := range g.Cells {
		if string(row) != "xx" {
			t.Fatal("placement attempt must not alter conflicting cells")
		}
	}
}

func TestUnplaceableWordTerminates(t *testing.T) {
	g, _ := NewGrid(3, 3)
	e := NewSeededEngine(g, 3)

	// Longer than max(R,C) in every direction: can never fit.
	_, err := e.Place("unplaceable")
	if !errors.Is(err, ErrUnplaceable) {
		t.Fatalf("expected ErrUnplaceable, got %v", err)
	}
}

func TestPlaceAllContinuesPastFailures(t *testing.T) {
	g, _ := NewGrid(4, 4)
	e := NewSeededEngine(g, 11)

	placed, unplaced := e.PlaceAll([]string{"cat", "impossible", "dog"})
	if len(unplaced) != 1 || unplaced[0] != "impossible" {
		t.Fatalf("expected only 'impossible' unplaced, got %v", unplaced)
	}
	if len(placed) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placed))
	}
}

func TestOneByOneGrid(t *testing.T) {
	g, _ := NewGrid(1, 1)
	e := NewSeededEngine(g, 5)

	placed, unplaced := e.PlaceAll([]string{"is"})
	if len(placed) != 0 || len(unplaced) != 1 {
		t.Fatalf("2-letter word must be unplaceable on 1x1: placed=%v unplaced=%v", placed, unplaced)
	}

	e.Fill()
	if c := g.Cells[0][0]; c == emptyCell {
		t.Fatal("the single cell must still be filled with a random letter")
	} else if !strings.ContainsRune(defaultAlphabet, rune(c)) {
		t.Fatalf("filled cell %q not in alphabet", c)
	}
}

func TestFillOnlyTouchesEmptyCells(t *testing.T) {
	g := gridFromLines(t, "ab__", "__cd")
	e := NewSeededEngine(g, 9)
	e.Alphabet = "z" // make the fill deterministic

	e.Fill()

	if got := string(g.Cells[0]) + string(g.Cells[1]); got != "abzz"+"zzcd" {
		t.Fatalf("expected placed letters kept and empties filled with 'z', got %q", got)
	}
}

func TestOverlapInvariant(t *testing.T) {
	g, _ := NewGrid(8, 8)
	e := NewSeededEngine(g, 1234)

	placed, _ := e.PlaceAll([]string{"stream", "master", "terse", "reset", "tease"})

	letters := make(map[Coord]byte)
	for _, p := range placed {
		for i, cell := range runCells(p) {
			if prev, ok := letters[cell]; ok && prev != p.Word[i] {
				t.Fatalf("overlap conflict at %v: %q vs %q", cell, prev, p.Word[i])
			}
			letters[cell] = p.Word[i]
		}
	}
}

func TestFindScanOrderReportsFirstStartCell(t *testing.T) {
	g := gridFromLines(t,
		"teis",
		"shxq",
	)
	e := NewSeededEngine(g, 0)

	p, ok := e.Find("IS")
	if !ok {
		t.Fatal("expected to find 'is'")
	}
	if p.Direction.Name != "forward" {
		t.Fatalf("expected direction forward, got %s", p.Direction.Name)
	}
	if (p.Start != Coord{0, 2}) || (p.End != Coord{0, 3}) {
		t.Fatalf("expected start (0,2) end (0,3), got %v %v", p.Start, p.End)
	}
}

func TestFindDirectionTableTieBreak(t *testing.T) {
	// 'ab' reads both forward and down from (0,0); forward comes first
	// in the direction table.
	g := gridFromLines(t,
		"ab",
		"bz",
	)
	e := NewSeededEngine(g, 0)

	if !e.matches("ab", 0, 0, directions[2]) {
		t.Fatal("sanity: 'ab' should also match downward from (0,0)")
	}

	p, ok := e.Find("ab")
	if !ok {
		t.Fatal("expected to find 'ab'")
	}
	if p.Direction.Name != "forward" {
		t.Fatalf("expected the earlier table direction 'forward', got %s", p.Direction.Name)
	}
}

func TestFindNotFound(t *testing.T) {
	g := gridFromLines(t, "abcd", "efgh")
	e := NewSeededEngine(g, 0)

	if _, ok := e.Find("ultimatest"); ok {
		t.Fatal("'ultimatest' must not be found")
	}

	results := e.FindAll([]string{"ultimatest"})
	if len(results) != 1 || results[0].Found {
		t.Fatalf("expected a single not-found result, got %+v", results)
	}
}

func TestFindIsReadOnly(t *testing.T) {
	g := gridFromLines(t, "abcd", "efgh")
	before := g.String()

	e := NewSeededEngine(g, 0)
	e.Find("bc")
	e.Find("nothere")

	if g.String() != before {
		t.Fatal("solving must not mutate the grid")
	}
}

// countOccurrences scans every start cell and direction for word.
func countOccurrences(e *Engine, g *Grid, word string) int {
	n := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			for _, d := range directions {
				if e.matches(word, row, col, d) {
					n++
				}
			}
		}
	}
	return n
}

func TestGenerateSolveRoundTrip(t *testing.T) {
	g, _ := NewGrid(10, 10)
	gen := NewSeededEngine(g, 99)

	words := []string{"golang", "puzzle", "search", "random", "cipher"}
	placed, unplaced := gen.PlaceAll(words)
	if len(unplaced) != 0 {
		t.Fatalf("all words should fit on an empty 10x10 grid, unplaced: %v", unplaced)
	}
	gen.Fill()

	solver := NewSeededEngine(g, 0)
	for _, want := range placed {
		got, ok := solver.Find(want.Word)
		if !ok {
			t.Fatalf("solver did not recover placed word %q", want.Word)
		}
		// The recorded run must still spell the word after the fill.
		for i, cell := range runCells(want) {
			if g.Cells[cell.Row][cell.Col] != want.Word[i] {
				t.Fatalf("fill corrupted placed word %q at %v", want.Word, cell)
			}
		}
		// With a unique occurrence the solver must report the recorded spot.
		if countOccurrences(solver, g, want.Word) == 1 && got != want {
			t.Fatalf("word %q: solver reported %+v, placed at %+v", want.Word, got, want)
		}
	}
}
