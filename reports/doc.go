// Package reports judges reactor level reports.
//
// A report is safe when its levels are strictly increasing or strictly
// decreasing and every adjacent pair differs by at least 1 and at most 3.
// The Problem Dampener also accepts a report that becomes safe once any
// single level is removed.
//
// Complexity:
//
//   - IsSafe:         O(n).
//   - IsSafeDampened: O(n²) worst case (one IsSafe per removed level).
//
// Errors:
//
//   - ErrEmptyReport: a line holds no levels.
package reports
