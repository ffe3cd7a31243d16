package puzzleinput

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Load reads the whole puzzle file at path.
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("puzzleinput: load %s: %w", path, err)
	}
	return string(b), nil
}

// Lines reads r line by line, trimming a trailing '\r' from each line and
// dropping trailing blank lines. Returns ErrEmptyInput if nothing remains.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzleinput: read lines: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	return lines, nil
}

// SplitLines is Lines over an in-memory string.
func SplitLines(text string) ([]string, error) {
	return Lines(strings.NewReader(text))
}

// Ints parses every whitespace-separated token of line as an int.
// An empty line yields an empty, non-nil slice.
func Ints(line string) ([]int, error) {
	fields := strings.Fields(line)
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", f, ErrBadNumber)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// AbsDiff returns |a - b| without overflowing for unsigned types.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
