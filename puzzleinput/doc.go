// Package puzzleinput loads plain-text puzzle input and splits it into
// lines and integers.
//
// Trailing blank lines are dropped so that files ending in one or more
// newlines parse the same as files that do not. Blank lines in the middle of
// the input are kept; callers decide whether they are meaningful.
//
// Errors:
//
//   - ErrEmptyInput: no non-blank content.
//   - ErrBadNumber: a token is not a base-10 integer.
package puzzleinput
