package grid

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/aoc2024/puzzleinput"
)

// New constructs a Grid from a non-empty set of equal-length rows.
// Row lengths are measured in runes, not bytes.
// Returns ErrEmptyGrid if rows is empty or the first row has no characters,
// ErrNonRectangular (wrapped with the row index) if any row length differs.
// Complexity: O(W×H) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(rows[0])
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		r := []rune(row)
		if len(r) != w {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", y, len(r), w, ErrNonRectangular)
		}
		cells[y] = r
	}

	return &Grid{width: w, height: len(rows), cells: cells}, nil
}

// Parse builds a Grid from newline-separated text.
// Trailing blank lines and Windows line endings are tolerated; a blank line
// between rows is reported as ErrNonRectangular.
func Parse(text string) (*Grid, error) {
	rows, err := puzzleinput.SplitLines(text)
	if errors.Is(err, puzzleinput.ErrEmptyInput) {
		return nil, ErrEmptyGrid
	}
	if err != nil {
		return nil, err
	}

	return New(rows)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the rune at (x,y), or false if (x,y) is out of bounds.
func (g *Grid) At(x, y int) (rune, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[y][x], true
}

// CanStep reports whether moving one cell from p along d stays on the grid.
// Only the destination cell is checked.
func (g *Grid) CanStep(p Position, d Direction) bool {
	next := p.Step(d)
	return g.InBounds(next.X, next.Y)
}

// Row returns row y as a string. It panics if y is out of range.
func (g *Grid) Row(y int) string {
	return string(g.cells[y])
}

// Count returns how many cells hold r.
func (g *Grid) Count(r rune) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == r {
				n++
			}
		}
	}
	return n
}

// String renders the grid back into newline-separated rows.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
