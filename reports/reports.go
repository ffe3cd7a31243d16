package reports

import (
	"fmt"

	"github.com/katalvlaran/aoc2024/puzzleinput"
)

// Parse reads one report per line.
// Returns puzzleinput.ErrEmptyInput for blank input, ErrEmptyReport for a
// blank line inside the input and puzzleinput.ErrBadNumber for bad tokens.
func Parse(text string) ([]Report, error) {
	lines, err := puzzleinput.SplitLines(text)
	if err != nil {
		return nil, err
	}

	out := make([]Report, 0, len(lines))
	for i, line := range lines {
		levels, err := puzzleinput.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(levels) == 0 {
			return nil, fmt.Errorf("line %d: %w", i+1, ErrEmptyReport)
		}
		out = append(out, Report(levels))
	}
	return out, nil
}

// IsSafe reports whether r is monotonic with every step between MinStep and
// MaxStep. Reports with fewer than two levels are safe.
func IsSafe(r Report) bool {
	if len(r) < 2 {
		return true
	}
	sign := 1
	if r[1] < r[0] {
		sign = -1
	}
	for i := 1; i < len(r); i++ {
		step := (r[i] - r[i-1]) * sign
		if step < MinStep || step > MaxStep {
			return false
		}
	}
	return true
}

// IsSafeDampened reports whether r is safe, or becomes safe after removing
// exactly one level.
func IsSafeDampened(r Report) bool {
	if IsSafe(r) {
		return true
	}
	buf := make(Report, 0, len(r)-1)
	for skip := range r {
		buf = buf[:0]
		buf = append(buf, r[:skip]...)
		buf = append(buf, r[skip+1:]...)
		if IsSafe(buf) {
			return true
		}
	}
	return false
}

// CountSafe returns how many reports are safe.
func CountSafe(rs []Report) int {
	return count(rs, IsSafe)
}

// CountSafeDampened returns how many reports are safe with the Problem
// Dampener.
func CountSafeDampened(rs []Report) int {
	return count(rs, IsSafeDampened)
}

func count(rs []Report, pred func(Report) bool) int {
	n := 0
	for _, r := range rs {
		if pred(r) {
			n++
		}
	}
	return n
}
