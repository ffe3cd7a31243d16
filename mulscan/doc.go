// Package mulscan extracts mul(a,b) instructions from corrupted program
// memory and sums their products.
//
// Only the exact form mul(<digits>,<digits>) counts; anything with spaces,
// other brackets or signs is noise. ExtractEnabled additionally honours
// don't() and do() markers: everything after a don't() is ignored until the
// next do(), and a trailing don't() disables the rest of the input.
//
// Blank input is rejected with puzzleinput.ErrEmptyInput. Input that merely
// contains no enabled instruction yields an empty result.
package mulscan
