package historian

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2024/puzzleinput"
)

// Parse reads one "left right" pair per line.
// Returns puzzleinput.ErrEmptyInput for blank input and ErrMalformedLine
// (wrapped with the 1-based line number) for anything else that is not two
// integers.
func Parse(text string) (Lists, error) {
	lines, err := puzzleinput.SplitLines(text)
	if err != nil {
		return Lists{}, err
	}

	l := Lists{
		Left:  make([]int, 0, len(lines)),
		Right: make([]int, 0, len(lines)),
	}
	for i, line := range lines {
		nums, err := puzzleinput.Ints(line)
		if err != nil {
			return Lists{}, fmt.Errorf("line %d: %w: %w", i+1, ErrMalformedLine, err)
		}
		if len(nums) != 2 {
			return Lists{}, fmt.Errorf("line %d: got %d values: %w", i+1, len(nums), ErrMalformedLine)
		}
		l.Left = append(l.Left, nums[0])
		l.Right = append(l.Right, nums[1])
	}

	return l, nil
}

// TotalDistance sums the absolute differences between the lists once both
// are sorted. The receiver's slices are not modified.
func TotalDistance(l Lists) (int, error) {
	if len(l.Left) != len(l.Right) {
		return 0, ErrLengthMismatch
	}
	left := slices.Clone(l.Left)
	right := slices.Clone(l.Right)
	slices.Sort(left)
	slices.Sort(right)

	sum := 0
	for i := range left {
		sum += puzzleinput.AbsDiff(left[i], right[i])
	}
	return sum, nil
}

// SimilarityScore sums each left ID times its number of occurrences in the
// right list.
func SimilarityScore(l Lists) int {
	freq := make(map[int]int, len(l.Right))
	for _, r := range l.Right {
		freq[r]++
	}

	score := 0
	for _, left := range l.Left {
		score += left * freq[left]
	}
	return score
}
