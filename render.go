package main

import (
	"strings"

	"github.com/vyevs/ansi"
)

// wordColors is cycled over found words when rendering to a terminal.
var wordColors = [9]string{
	"red", "green", "yellow", "cyan", "orange",
	"pink", "purple", "chartreuse", "light gray",
}

// ColorGrid renders the grid for terminal display with each placement's
// run in its own color. A legend of the colored words precedes the grid.
func ColorGrid(g *Grid, placements []Placement) string {
	var b strings.Builder
	b.Grow(g.Rows*(g.Cols+1) + 128)

	cellColor := make(map[Coord]string, len(placements)*8)
	for i, p := range placements {
		color := wordColors[i%len(wordColors)]

		b.WriteString(ansi.FGColorName(color))
		b.WriteString(p.Word)
		b.WriteByte(' ')

		row, col := p.Start.Row, p.Start.Col
		for range len(p.Word) {
			cellColor[Coord{Row: row, Col: col}] = color
			row += p.Direction.DR
			col += p.Direction.DC
		}
	}
	b.WriteString(ansi.Clear)
	b.WriteByte('\n')

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if color, ok := cellColor[Coord{Row: row, Col: col}]; ok {
				b.WriteString(ansi.FGColorName(color))
				b.WriteByte(g.Cells[row][col])
				b.WriteString(ansi.Clear)
			} else {
				b.WriteByte(g.Cells[row][col])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
