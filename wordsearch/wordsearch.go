package wordsearch

import (
	"github.com/katalvlaran/aoc2024/grid"
)

// CountStraightMatches returns the number of (start cell, direction) pairs
// from which word can be read in a straight line on g.
// A one-character word is counted once per matching cell.
// Returns ErrNilGrid or ErrEmptyWord on invalid arguments.
// Complexity: O(W×H×8×L).
func CountStraightMatches(g *grid.Grid, word string) (int, error) {
	runes, err := prepareStraight(g, word)
	if err != nil {
		return 0, err
	}

	count := 0
	forEachMatch(g, runes, func(grid.Position, grid.Direction) { count++ })

	return count, nil
}

// FindStraightMatches enumerates the matches counted by CountStraightMatches,
// in row-major order of the start cell and then in grid.Directions order.
func FindStraightMatches(g *grid.Grid, word string) ([]Match, error) {
	runes, err := prepareStraight(g, word)
	if err != nil {
		return nil, err
	}

	var matches []Match
	forEachMatch(g, runes, func(p grid.Position, d grid.Direction) {
		matches = append(matches, Match{Start: p, Dir: d, Word: word})
	})

	return matches, nil
}

// CountCrossMatches returns the number of interior cells of g that sit at the
// center of two diagonal reads of word. word must have exactly 3 characters
// and g must be at least 3×3.
// Complexity: O(W×H).
func CountCrossMatches(g *grid.Grid, word string) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	runes := []rune(word)
	if len(runes) != 3 {
		return 0, ErrCrossWordLength
	}
	if g.Width() < 3 || g.Height() < 3 {
		return 0, ErrGridTooSmall
	}

	count := 0
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			if c, _ := g.At(x, y); c != runes[1] {
				continue
			}
			legs := 0
			for _, leg := range crossLegs {
				start := grid.Position{X: x + leg.dx, Y: y + leg.dy}
				if readsAt(g, start, leg.dir, runes) {
					legs++
				}
			}
			if legs == 2 {
				count++
			}
		}
	}

	return count, nil
}

// prepareStraight validates straight-scan arguments and splits word into runes.
func prepareStraight(g *grid.Grid, word string) ([]rune, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if word == "" {
		return nil, ErrEmptyWord
	}
	return []rune(word), nil
}

// forEachMatch calls fn for every straight match of word on g.
func forEachMatch(g *grid.Grid, word []rune, fn func(grid.Position, grid.Direction)) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c, _ := g.At(x, y); c != word[0] {
				continue
			}
			p := grid.Position{X: x, Y: y}
			if len(word) == 1 {
				fn(p, grid.N)
				continue
			}
			for _, d := range grid.Directions() {
				if readsAt(g, p, d, word) {
					fn(p, d)
				}
			}
		}
	}
}

// readsAt reports whether word can be read on g starting at p and stepping
// along d. Bounds are checked before each move, never after the last rune.
func readsAt(g *grid.Grid, p grid.Position, d grid.Direction, word []rune) bool {
	last := len(word) - 1
	for i, want := range word {
		if c, ok := g.At(p.X, p.Y); !ok || c != want {
			return false
		}
		if i == last {
			break
		}
		if !g.CanStep(p, d) {
			return false
		}
		p = p.Step(d)
	}
	return true
}
