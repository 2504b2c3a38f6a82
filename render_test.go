package main

import (
	"strings"
	"testing"
)

func TestColorGrid(t *testing.T) {
	g := gridFromLines(t, "teis", "sihk")
	e := NewSeededEngine(g, 0)

	p, ok := e.Find("is")
	if !ok {
		t.Fatal("expected to find 'is'")
	}

	out := ColorGrid(g, []Placement{p})

	// Legend plus one line per grid row.
	if got := strings.Count(out, "\n"); got != g.Rows+1 {
		t.Fatalf("expected %d lines, got %d", g.Rows+1, got)
	}
	if !strings.Contains(out, "is") {
		t.Fatal("legend should list the found word")
	}
	// Every grid letter survives the coloring.
	plain := out[strings.IndexByte(out, '\n')+1:]
	for _, line := range g.Lines() {
		for _, c := range line {
			if !strings.ContainsRune(plain, c) {
				t.Fatalf("letter %q missing from rendered grid", c)
			}
		}
	}
}

func TestColorGridNoPlacements(t *testing.T) {
	g := gridFromLines(t, "ab", "cd")
	out := ColorGrid(g, nil)

	if got := strings.Count(out, "\n"); got != g.Rows+1 {
		t.Fatalf("expected %d lines, got %d", g.Rows+1, got)
	}
}
