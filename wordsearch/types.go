package wordsearch

import (
	"errors"

	"github.com/katalvlaran/aoc2024/grid"
)

// Sentinel errors for wordsearch operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("wordsearch: grid is nil")
	// ErrEmptyWord indicates the search word has no characters.
	ErrEmptyWord = errors.New("wordsearch: word must not be empty")
	// ErrCrossWordLength indicates a cross search word that is not 3 characters long.
	ErrCrossWordLength = errors.New("wordsearch: cross word must have exactly 3 characters")
	// ErrGridTooSmall indicates a grid with fewer than 3 rows or 3 columns for a cross search.
	ErrGridTooSmall = errors.New("wordsearch: cross search needs at least a 3x3 grid")
)

// Match is one straight-line occurrence of Word, read from Start along Dir.
// Single-character matches carry Dir = grid.N.
type Match struct {
	Start grid.Position
	Dir   grid.Direction
	Word  string
}

// crossLeg is one diagonal read of a cross: start offset from the center
// and the heading towards the opposite corner.
type crossLeg struct {
	dx, dy int
	dir    grid.Direction
}

// crossLegs lists the four diagonal reads through a center cell.
var crossLegs = [4]crossLeg{
	{-1, -1, grid.SE},
	{1, 1, grid.NW},
	{-1, 1, grid.NE},
	{1, -1, grid.SW},
}
