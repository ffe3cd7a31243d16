// Package aoc2024 collects small solvers for the first days of Advent of
// Code 2024.
//
// What is in here?
//
//	Each day lives in its own package and exposes a Parse step plus one
//	function per puzzle part:
//
//		historian/   day 1: paired location lists (total distance, similarity)
//		reports/     day 2: level report safety, with and without the dampener
//		mulscan/     day 3: mul(a,b) extraction honouring do()/don't()
//		wordsearch/  day 4: 8-direction word search and diagonal X crosses
//
//	Shared building blocks:
//
//		grid/        immutable rune grid, compass directions, positions
//		puzzleinput/ line and integer parsing for plain-text input
//
//	The aoc command (cmd/aoc) wires every part into a registry and runs them
//	against input files named by flags or a YAML config.
//
// Quick example:
//
//	g, _ := grid.Parse("XMAS\nMM..\nA.A.\nS..S")
//	n, _ := wordsearch.CountStraightMatches(g, "XMAS") // 3
//
//	go run ./cmd/aoc -day 4 -input inputs/day4.txt
package aoc2024
