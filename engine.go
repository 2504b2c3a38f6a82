package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// ErrUnplaceable is returned when the retry budget runs out before a
// valid spot is found for a word.
var ErrUnplaceable = errors.New("no valid placement found")

// Engine places words onto a grid and searches for them. One engine
// owns one grid for the duration of a generate or solve run; there is
// no shared state between engines.
type Engine struct {
	// Alphabet supplies the letters used by Fill. Empty means a-z.
	Alphabet string
	// Budget caps placement attempts per word. Zero means proportional
	// to the grid area (4×rows×cols, floor 64).
	Budget int

	grid *Grid
	rng  *rand.Rand
}

// NewEngine returns an engine over g with a randomly seeded generator.
func NewEngine(g *Grid) *Engine {
	return NewSeededEngine(g, rand.Uint64())
}

// NewSeededEngine returns an engine over g with a fixed seed, for
// reproducible placement.
func NewSeededEngine(g *Grid, seed uint64) *Engine {
	return &Engine{
		grid: g,
		rng:  rand.New(rand.NewPCG(seed, seed<<32|1)),
	}
}

// PlaceAll places words in input order. It returns the successful
// placements and the words that could not be placed. A word that does
// not fit is skipped, never fatal: generation continues with the rest.
func (e *Engine) PlaceAll(words []string) (placed []Placement, unplaced []string) {
	for _, w := range words {
		w = normalizeWord(w)
		if w == "" {
			continue
		}
		p, err := e.Place(w)
		if err != nil {
			unplaced = append(unplaced, w)
			continue
		}
		placed = append(placed, p)
	}
	return placed, unplaced
}

// Place finds a random valid spot for word and writes its letters onto
// the grid. Each attempt draws a random start cell and tries the eight
// directions in random order; a spot is valid when the whole run stays
// in bounds and every cell is empty or already holds the required
// letter. Conflicting letters are never overwritten.
func (e *Engine) Place(word string) (Placement, error) {
	word = normalizeWord(word)
	if word == "" {
		return Placement{}, fmt.Errorf("cannot place an empty word")
	}

	for range e.attemptBudget() {
		row := e.rng.IntN(e.grid.Rows)
		col := e.rng.IntN(e.grid.Cols)
		for _, di := range e.rng.Perm(len(directions)) {
			d := directions[di]
			if !e.fits(word, row, col, d) {
				continue
			}
			e.write(word, row, col, d)
			start := Coord{Row: row, Col: col}
			return Placement{
				Word:      word,
				Start:     start,
				End:       runEnd(start, d, len(word)),
				Direction: d,
			}, nil
		}
	}
	return Placement{}, fmt.Errorf("%w for %q", ErrUnplaceable, word)
}

func (e *Engine) attemptBudget() int {
	if e.Budget > 0 {
		return e.Budget
	}
	b := 4 * e.grid.Rows * e.grid.Cols
	if b < 64 {
		b = 64
	}
	return b
}

// fits reports whether word can occupy the run starting at (row, col)
// along d: every cell in bounds and either empty or the needed letter.
func (e *Engine) fits(word string, row, col int, d Direction) bool {
	for i := 0; i < len(word); i++ {
		if !e.grid.InBounds(row, col) {
			return false
		}
		if c := e.grid.Cells[row][col]; c != emptyCell && c != word[i] {
			return false
		}
		row += d.DR
		col += d.DC
	}
	return true
}

// write puts word's letters onto the grid along d. Cells shared with an
// earlier placement already hold the right letter, so writing is a no-op
// there.
func (e *Engine) write(word string, row, col int, d Direction) {
	for i := 0; i < len(word); i++ {
		e.grid.Cells[row][col] = word[i]
		row += d.DR
		col += d.DC
	}
}

// Fill writes a random alphabet letter into every still-empty cell.
// Placed letters are never touched. This is the last generation step.
func (e *Engine) Fill() {
	alphabet := e.Alphabet
	if alphabet == "" {
		alphabet = defaultAlphabet
	}
	for _, row := range e.grid.Cells {
		for j, c := range row {
			if c == emptyCell {
				row[j] = alphabet[e.rng.IntN(len(alphabet))]
			}
		}
	}
}

// Find locates word on the grid. Start cells are scanned in row-major
// order and, from each start, directions in the fixed table order; the
// first full exact match wins. The grid is never mutated.
func (e *Engine) Find(word string) (Placement, bool) {
	word = normalizeWord(word)
	if word == "" {
		return Placement{}, false
	}
	for row := 0; row < e.grid.Rows; row++ {
		for col := 0; col < e.grid.Cols; col++ {
			for _, d := range directions {
				if !e.matches(word, row, col, d) {
					continue
				}
				start := Coord{Row: row, Col: col}
				return Placement{
					Word:      word,
					Start:     start,
					End:       runEnd(start, d, len(word)),
					Direction: d,
				}, true
			}
		}
	}
	return Placement{}, false
}

// matches reports whether word reads exactly from (row, col) along d.
func (e *Engine) matches(word string, row, col int, d Direction) bool {
	for i := 0; i < len(word); i++ {
		if !e.grid.InBounds(row, col) || e.grid.Cells[row][col] != word[i] {
			return false
		}
		row += d.DR
		col += d.DC
	}
	return true
}

// PlacementResult is the outcome of a solve query for one word. A word
// that is absent from the grid is an expected outcome, not an error.
type PlacementResult struct {
	Word      string
	Found     bool
	Placement Placement
}

// FindAll runs Find for every word, preserving input order.
func (e *Engine) FindAll(words []string) []PlacementResult {
	results := make([]PlacementResult, 0, len(words))
	for _, w := range words {
		w = normalizeWord(w)
		if w == "" {
			continue
		}
		p, ok := e.Find(w)
		results = append(results, PlacementResult{Word: w, Found: ok, Placement: p})
	}
	return results
}
