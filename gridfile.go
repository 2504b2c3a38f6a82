package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedGrid is returned when a puzzle file is not rectangular or
// contains cells that are not single letters.
var ErrMalformedGrid = errors.New("malformed grid")

// LoadGrid reads a puzzle grid from a text file. Rows may be written
// with whitespace between letters ("t e s t") or as contiguous runs
// ("test"); blank lines are ignored.
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open puzzle file: %w", err)
	}
	defer f.Close()
	return readGrid(f)
}

func readGrid(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	var cells [][]byte
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		var row []byte
		if len(fields) == 1 {
			row = []byte(strings.ToLower(fields[0]))
		} else {
			row = make([]byte, 0, len(fields))
			for _, f := range fields {
				if len(f) != 1 {
					return nil, fmt.Errorf("%w: %q is not a single letter", ErrMalformedGrid, f)
				}
				row = append(row, strings.ToLower(f)[0])
			}
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read puzzle file: %w", err)
	}

	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, i, len(row), cols)
		}
	}
	return &Grid{Rows: len(cells), Cols: cols, Cells: cells}, nil
}

// WriteGrid writes the grid to path in the space-joined text format.
func WriteGrid(path string, g *Grid) error {
	if err := os.WriteFile(path, []byte(g.String()), 0o644); err != nil {
		return fmt.Errorf("write grid file: %w", err)
	}
	return nil
}
