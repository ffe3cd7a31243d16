package wordsearch_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2024/grid"
	"github.com/katalvlaran/aoc2024/wordsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample is the canonical 10×10 word-search puzzle.
const sample = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
`

// mustGrid parses text into a grid or fails the test.
func mustGrid(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Straight matches
//----------------------------------------------------------------------------//

// TestCountStraightMatches_Sample checks the canonical answer of 18.
func TestCountStraightMatches_Sample(t *testing.T) {
	g := mustGrid(t, sample)

	n, err := wordsearch.CountStraightMatches(g, "XMAS")
	require.NoError(t, err)
	assert.Equal(t, 18, n)
}

// TestCountStraightMatches_Errors covers nil grids and empty words.
func TestCountStraightMatches_Errors(t *testing.T) {
	g := mustGrid(t, "AB\nCD")

	_, err := wordsearch.CountStraightMatches(nil, "A")
	assert.ErrorIs(t, err, wordsearch.ErrNilGrid)

	_, err = wordsearch.CountStraightMatches(g, "")
	assert.ErrorIs(t, err, wordsearch.ErrEmptyWord)

	_, err = wordsearch.FindStraightMatches(g, "")
	assert.ErrorIs(t, err, wordsearch.ErrEmptyWord)
}

// TestCountStraightMatches_SingleCell verifies a one-letter word on a
// one-cell grid counts exactly once.
func TestCountStraightMatches_SingleCell(t *testing.T) {
	g := mustGrid(t, "X")

	n, err := wordsearch.CountStraightMatches(g, "X")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = wordsearch.CountStraightMatches(g, "Y")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// TestCountStraightMatches_TooLong verifies a word longer than any line on
// the grid never matches.
func TestCountStraightMatches_TooLong(t *testing.T) {
	g := mustGrid(t, sample)

	n, err := wordsearch.CountStraightMatches(g, "XMASXMASXMAS")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

// TestCountStraightMatches_EndsOnEdge verifies that words ending exactly on
// the last row or column are found in every direction.
func TestCountStraightMatches_EndsOnEdge(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"East", "ABC", 1},
		{"West", "CBA", 1},
		{"South", "A\nB\nC", 1},
		{"North", "C\nB\nA", 1},
		{"SouthEast", "A..\n.B.\n..C", 1},
		{"NorthWest", "C..\n.B.\n..A", 1},
		{"NorthEast", "..C\n.B.\nA..", 1},
		{"SouthWest", "..A\n.B.\nC..", 1},
		{"Star", "C.C.C\n.BBB.\nCBABC\n.BBB.\nC.C.C", 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := wordsearch.CountStraightMatches(mustGrid(t, tc.text), "ABC")
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

// TestCountStraightMatches_Rectangular runs on a non-square grid so that
// width and height bounds cannot be confused.
func TestCountStraightMatches_Rectangular(t *testing.T) {
	g := mustGrid(t, "XMASXMAS\n........")

	n, err := wordsearch.CountStraightMatches(g, "XMAS")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	tall := mustGrid(t, "X.\nM.\nA.\nS.\n..\n..")
	n, err = wordsearch.CountStraightMatches(tall, "XMAS")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestCountStraightMatches_RepeatedLastLetter checks words whose last
// letter also appears earlier.
func TestCountStraightMatches_RepeatedLastLetter(t *testing.T) {
	g := mustGrid(t, "ABAB")

	// ABA: eastwards from x=0, westwards from x=2.
	n, err := wordsearch.CountStraightMatches(g, "ABA")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// BAB: eastwards from x=1, westwards from x=3.
	n, err = wordsearch.CountStraightMatches(g, "BAB")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// TestCountStraightMatches_Palindrome counts a palindrome once per direction.
func TestCountStraightMatches_Palindrome(t *testing.T) {
	g := mustGrid(t, "ABA")

	n, err := wordsearch.CountStraightMatches(g, "ABA")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "read once eastwards and once westwards")
}

// TestFindStraightMatches lists matches with positions and directions.
func TestFindStraightMatches(t *testing.T) {
	g := mustGrid(t, "XMAS\nM...\nA...\nS...")

	matches, err := wordsearch.FindStraightMatches(g, "XMAS")
	require.NoError(t, err)
	assert.Equal(t, []wordsearch.Match{
		{Start: grid.Position{X: 0, Y: 0}, Dir: grid.E, Word: "XMAS"},
		{Start: grid.Position{X: 0, Y: 0}, Dir: grid.S, Word: "XMAS"},
	}, matches)

	single, err := wordsearch.FindStraightMatches(g, "S")
	require.NoError(t, err)
	assert.Equal(t, []wordsearch.Match{
		{Start: grid.Position{X: 3, Y: 0}, Dir: grid.N, Word: "S"},
		{Start: grid.Position{X: 0, Y: 3}, Dir: grid.N, Word: "S"},
	}, single)
}

// TestFindStraightMatches_AgreesWithCount verifies Find and Count agree.
func TestFindStraightMatches_AgreesWithCount(t *testing.T) {
	g := mustGrid(t, sample)
	for _, word := range []string{"X", "XM", "XMAS", "MAS", "SAMX", "AAAA"} {
		n, err := wordsearch.CountStraightMatches(g, word)
		require.NoError(t, err)
		matches, err := wordsearch.FindStraightMatches(g, word)
		require.NoError(t, err)
		assert.Len(t, matches, n, "word %q", word)
	}
}

// TestCountStraightMatches_Repeatable re-scans the same grid and word.
func TestCountStraightMatches_Repeatable(t *testing.T) {
	g := mustGrid(t, sample)

	first, err := wordsearch.CountStraightMatches(g, "XMAS")
	require.NoError(t, err)
	second, err := wordsearch.CountStraightMatches(g, "XMAS")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, sample, g.String()+"\n", "scan must not modify the grid")
}

// TestCountStraightMatches_Relabeling maps every letter through a bijection
// and expects the same count for the mapped word.
func TestCountStraightMatches_Relabeling(t *testing.T) {
	relabel := strings.NewReplacer("X", "1", "M", "2", "A", "3", "S", "4")
	g := mustGrid(t, relabel.Replace(sample))

	n, err := wordsearch.CountStraightMatches(g, relabel.Replace("XMAS"))
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	n, err = wordsearch.CountCrossMatches(g, relabel.Replace("MAS"))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

//----------------------------------------------------------------------------//
// Cross matches
//----------------------------------------------------------------------------//

// TestCountCrossMatches_Sample checks the canonical answer of 9.
func TestCountCrossMatches_Sample(t *testing.T) {
	g := mustGrid(t, sample)

	n, err := wordsearch.CountCrossMatches(g, "MAS")
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

// TestCountCrossMatches_Errors covers argument validation.
func TestCountCrossMatches_Errors(t *testing.T) {
	cases := []struct {
		name string
		g    *grid.Grid
		word string
		err  error
	}{
		{"NilGrid", nil, "MAS", wordsearch.ErrNilGrid},
		{"ShortWord", mustGrid(t, sample), "MA", wordsearch.ErrCrossWordLength},
		{"LongWord", mustGrid(t, sample), "XMAS", wordsearch.ErrCrossWordLength},
		{"EmptyWord", mustGrid(t, sample), "", wordsearch.ErrCrossWordLength},
		{"Narrow", mustGrid(t, "MS\nAA\nMS"), "MAS", wordsearch.ErrGridTooSmall},
		{"Short", mustGrid(t, "MAS\nMAS"), "MAS", wordsearch.ErrGridTooSmall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := wordsearch.CountCrossMatches(tc.g, tc.word)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestCountCrossMatches_Orientations checks all four ways of writing the
// cross, plus shapes that must not count.
func TestCountCrossMatches_Orientations(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"MMSS", "M.M\n.A.\nS.S", 1},
		{"SSMM", "S.S\n.A.\nM.M", 1},
		{"MSMS", "M.S\n.A.\nM.S", 1},
		{"SMSM", "S.M\n.A.\nS.M", 1},
		{"OneDiagonal", "M.X\n.A.\nX.S", 0},
		{"SameEnds", "M.S\n.A.\nS.M", 0},
		{"Plus", ".M.\nMAS\n.S.", 0},
		{"WrongCenter", "M.M\n.X.\nS.S", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := wordsearch.CountCrossMatches(mustGrid(t, tc.text), "MAS")
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

// TestCountCrossMatches_Palindrome checks that a full X of a palindrome gives
// four reads and is rejected, while one palindromic diagonal gives two and counts.
func TestCountCrossMatches_Palindrome(t *testing.T) {
	full := mustGrid(t, "A.A\n.A.\nA.A")
	n, err := wordsearch.CountCrossMatches(full, "AAA")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	half := mustGrid(t, "A.B\n.A.\nB.A")
	n, err = wordsearch.CountCrossMatches(half, "AAA")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "one diagonal read both ways")
}

// TestCountCrossMatches_UpperBound checks the count never exceeds the number
// of interior cells holding the middle letter.
func TestCountCrossMatches_UpperBound(t *testing.T) {
	grids := []string{sample, "MSMS\nAAAA\nMSMS\nAAAA", "MMM\nMAM\nSSS"}
	for _, text := range grids {
		g := mustGrid(t, text)
		interior := 0
		for y := 1; y < g.Height()-1; y++ {
			for x := 1; x < g.Width()-1; x++ {
				if c, _ := g.At(x, y); c == 'A' {
					interior++
				}
			}
		}
		n, err := wordsearch.CountCrossMatches(g, "MAS")
		require.NoError(t, err)
		assert.LessOrEqual(t, n, interior)
	}
}

// TestCountCrossMatches_Repeatable re-scans the same grid and word.
func TestCountCrossMatches_Repeatable(t *testing.T) {
	g := mustGrid(t, sample)

	first, err := wordsearch.CountCrossMatches(g, "MAS")
	require.NoError(t, err)
	second, err := wordsearch.CountCrossMatches(g, "MAS")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
