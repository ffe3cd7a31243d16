package mulscan

import "regexp"

// Pair holds the two operands of one mul instruction.
type Pair struct {
	A, B int
}

var (
	mulRe      = regexp.MustCompile(`mul\((\d+),(\d+)\)`)
	disabledRe = regexp.MustCompile(`(?s)don't\(\).*?do\(\)`)
)
