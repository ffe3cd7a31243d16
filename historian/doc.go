// Package historian reconciles two lists of location IDs written side by
// side, one pair per line.
//
// What:
//
//   - TotalDistance pairs the smallest left ID with the smallest right ID,
//     the second smallest with the second smallest, and so on, then sums the
//     absolute differences of each pair.
//   - SimilarityScore sums every left ID multiplied by the number of times it
//     appears in the right list.
//
// Complexity:
//
//   - TotalDistance:   O(n log n) time, O(n) memory (sorted copies).
//   - SimilarityScore: O(n) time, O(n) memory (frequency table).
//
// Errors:
//
//   - ErrMalformedLine: a line does not hold exactly two integers.
//   - ErrLengthMismatch: Lists with differently sized sides.
package historian
