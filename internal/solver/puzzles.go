package solver

import (
	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/historian"
	"github.com/katalvlaran/aoc2024/mulscan"
	"github.com/katalvlaran/aoc2024/reports"
	"github.com/katalvlaran/aoc2024/wordsearch"
)

// Words searched for on day 4.
const (
	StraightWord = "XMAS"
	CrossWord    = "MAS"
)

// Default returns a Registry holding every solved puzzle.
// It panics if two built-in puzzles share a (day, part).
func Default() *Registry {
	r := NewRegistry()
	for _, p := range []Puzzle{
		{Day: 1, Part: 1, Name: "total distance", Solve: day1Part1},
		{Day: 1, Part: 2, Name: "similarity score", Solve: day1Part2},
		{Day: 2, Part: 1, Name: "safe reports", Solve: day2Part1},
		{Day: 2, Part: 2, Name: "safe reports with dampener", Solve: day2Part2},
		{Day: 3, Part: 1, Name: "mul sum", Solve: day3Part1},
		{Day: 3, Part: 2, Name: "enabled mul sum", Solve: day3Part2},
		{Day: 4, Part: 1, Name: "XMAS count", Solve: day4Part1},
		{Day: 4, Part: 2, Name: "X-MAS count", Solve: day4Part2},
	} {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

func day1Part1(input string) (int, error) {
	l, err := historian.Parse(input)
	if err != nil {
		return 0, err
	}
	return historian.TotalDistance(l)
}

func day1Part2(input string) (int, error) {
	l, err := historian.Parse(input)
	if err != nil {
		return 0, err
	}
	return historian.SimilarityScore(l), nil
}

func day2Part1(input string) (int, error) {
	rs, err := reports.Parse(input)
	if err != nil {
		return 0, err
	}
	return reports.CountSafe(rs), nil
}

func day2Part2(input string) (int, error) {
	rs, err := reports.Parse(input)
	if err != nil {
		return 0, err
	}
	return reports.CountSafeDampened(rs), nil
}

func day3Part1(input string) (int, error) {
	pairs, err := mulscan.Extract(input)
	if err != nil {
		return 0, err
	}
	return mulscan.SumProducts(pairs), nil
}

func day3Part2(input string) (int, error) {
	pairs, err := mulscan.ExtractEnabled(input)
	if err != nil {
		return 0, err
	}
	return mulscan.SumProducts(pairs), nil
}

func day4Part1(input string) (int, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, err
	}
	return wordsearch.CountStraightMatches(g, StraightWord)
}

func day4Part2(input string) (int, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return 0, err
	}
	return wordsearch.CountCrossMatches(g, CrossWord)
}
