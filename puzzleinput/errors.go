package puzzleinput

import "errors"

var (
	// ErrEmptyInput indicates the input contains no lines.
	ErrEmptyInput = errors.New("puzzleinput: input is empty")
	// ErrBadNumber indicates a token that is not a base-10 integer.
	ErrBadNumber = errors.New("puzzleinput: invalid number")
)
