package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// foundEntry is the JSON shape for a located word.
type foundEntry struct {
	Direction string `json:"direction"`
	Start     [2]int `json:"start"`
	End       [2]int `json:"end"`
}

// notFoundEntry is the JSON shape for a word absent from the grid.
type notFoundEntry struct {
	Coordinates string `json:"coordinates"`
}

const notFoundMarker = "word not found"

// solutionDocument builds the word → result mapping serialized for the
// solve output.
func solutionDocument(results []PlacementResult) map[string]any {
	doc := make(map[string]any, len(results))
	for _, res := range results {
		if !res.Found {
			doc[res.Word] = notFoundEntry{Coordinates: notFoundMarker}
			continue
		}
		p := res.Placement
		doc[res.Word] = foundEntry{
			Direction: p.Direction.Name,
			Start:     [2]int{p.Start.Row, p.Start.Col},
			End:       [2]int{p.End.Row, p.End.Col},
		}
	}
	return doc
}

// WriteSolution serializes the solve results to an indented JSON
// document at path.
func WriteSolution(path string, results []PlacementResult) error {
	data, err := json.MarshalIndent(solutionDocument(results), "", "  ")
	if err != nil {
		return fmt.Errorf("encode solution: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write solution file: %w", err)
	}
	return nil
}

// RenderKey builds the answer-key grid from successful placements:
// every cell on a placement's run shows the word letter, every other
// cell shows the filler symbol. Overlapping runs agree on their shared
// letter by the placement overlap rule, so later writes are no-ops.
func RenderKey(rows, cols int, placements []Placement) (*Grid, error) {
	key, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, row := range key.Cells {
		for j := range row {
			row[j] = fillerCell
		}
	}
	for _, p := range placements {
		row, col := p.Start.Row, p.Start.Col
		for i := 0; i < len(p.Word); i++ {
			if !key.InBounds(row, col) {
				return nil, fmt.Errorf("placement for %q leaves the %dx%d grid", p.Word, rows, cols)
			}
			key.Cells[row][col] = p.Word[i]
			row += p.Direction.DR
			col += p.Direction.DC
		}
	}
	return key, nil
}
