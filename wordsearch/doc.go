// Package wordsearch scans a character grid for words written in straight
// lines and for diagonal "X" crosses of a 3-letter word.
//
// What:
//
//   - CountStraightMatches / FindStraightMatches: every (start cell, direction)
//     pair from which the word can be read along one of the 8 compass directions.
//   - CountCrossMatches: interior cells where the 3-letter word is read along
//     both diagonals through the cell, forwards or backwards.
//
// Stepping discipline:
//
//	A read checks bounds before each move, and only for the cell it is about
//	to move into. The last character needs no move, so a word may end exactly
//	on the grid edge. A one-character word matches without moving and is
//	counted once per matching cell.
//
// Cross rule:
//
//	For a center C the four reads start at the diagonal corners and head to
//	the opposite corner:
//
//	   NW . NE        (x-1,y-1) → SE      (x+1,y+1) → NW
//	    . C .         (x-1,y+1) → NE      (x+1,y-1) → SW
//	   SW . SE
//
//	C counts when exactly 2 of the 4 reads succeed. For a word whose first and
//	last letters differ, that means each diagonal spells the word one way.
//	A palindromic word such as "AAA" reads both ways along a diagonal: a full
//	X gives 4 successful reads and is rejected, while a single palindromic
//	diagonal on its own gives exactly 2 and is counted.
//
// Complexity:
//
//   - CountStraightMatches: O(W×H×8×L) time, O(1) extra memory (L = word length).
//   - FindStraightMatches:  same time, O(M) memory for M matches.
//   - CountCrossMatches:    O(W×H×4×3) time, O(1) extra memory.
//
// Errors:
//
//   - ErrNilGrid: grid argument is nil.
//   - ErrEmptyWord: straight scan requested for an empty word.
//   - ErrCrossWordLength: cross scan word is not exactly 3 characters.
//   - ErrGridTooSmall: cross scan on a grid narrower or shorter than 3.
package wordsearch
