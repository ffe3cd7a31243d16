package historian

import "errors"

var (
	// ErrMalformedLine indicates a line that is not exactly two integers.
	ErrMalformedLine = errors.New("historian: each line must hold exactly two integers")
	// ErrLengthMismatch indicates left and right lists of different lengths.
	ErrLengthMismatch = errors.New("historian: left and right lists differ in length")
)

// Lists holds the two columns of location IDs in input order.
type Lists struct {
	Left, Right []int
}
