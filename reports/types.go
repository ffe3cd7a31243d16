package reports

import "errors"

// ErrEmptyReport indicates a line with no levels.
var ErrEmptyReport = errors.New("reports: report has no levels")

// Report is one line of levels in input order.
type Report []int

// Bounds on the absolute difference between adjacent levels.
const (
	MinStep = 1
	MaxStep = 3
)
