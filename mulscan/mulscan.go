package mulscan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/puzzleinput"
)

// Extract returns every mul(a,b) operand pair in text, in order.
// Blank text is reported as puzzleinput.ErrEmptyInput; operands too large
// for an int as puzzleinput.ErrBadNumber.
func Extract(text string) ([]Pair, error) {
	if strings.TrimSpace(text) == "" {
		return nil, puzzleinput.ErrEmptyInput
	}
	return extract(text)
}

// ExtractEnabled is Extract restricted to the enabled regions of text.
// A do() is appended first so an unterminated don't() disables the tail.
// Input that is disabled throughout yields no pairs, not an error.
func ExtractEnabled(text string) ([]Pair, error) {
	if strings.TrimSpace(text) == "" {
		return nil, puzzleinput.ErrEmptyInput
	}
	return extract(disabledRe.ReplaceAllString(text+"do()", ""))
}

func extract(text string) ([]Pair, error) {
	found := mulRe.FindAllStringSubmatch(text, -1)
	pairs := make([]Pair, 0, len(found))
	for _, m := range found {
		a, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m[0], puzzleinput.ErrBadNumber)
		}
		b, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m[0], puzzleinput.ErrBadNumber)
		}
		pairs = append(pairs, Pair{A: a, B: b})
	}
	return pairs, nil
}

// SumProducts returns Σ A×B over pairs.
func SumProducts(pairs []Pair) int {
	sum := 0
	for _, p := range pairs {
		sum += p.A * p.B
	}
	return sum
}
