package grid

// Direction is one of the 8 compass directions on the grid.
// Y grows downwards, so N is (0,-1) and S is (0,1).
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// vectors maps each Direction to its unit displacement (dx, dy).
var vectors = [...][2]int{
	N:  {0, -1},
	NE: {1, -1},
	E:  {1, 0},
	SE: {1, 1},
	S:  {0, 1},
	SW: {-1, 1},
	W:  {-1, 0},
	NW: {-1, -1},
}

var names = [...]string{
	N:  "N",
	NE: "NE",
	E:  "E",
	SE: "SE",
	S:  "S",
	SW: "SW",
	W:  "W",
	NW: "NW",
}

// Directions returns all 8 directions in clockwise order starting at N.
func Directions() []Direction {
	return []Direction{N, NE, E, SE, S, SW, W, NW}
}

// Vector returns the unit displacement (dx, dy) of d.
func (d Direction) Vector() (dx, dy int) {
	v := vectors[d]
	return v[0], v[1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// String returns the compass name of d, e.g. "NE".
func (d Direction) String() string {
	if d < N || d > NW {
		return "Direction(?)"
	}
	return names[d]
}

// Position references a single cell by column (X) and row (Y).
type Position struct {
	X, Y int
}

// Step returns the position one cell away from p in direction d.
// The result is not bounds-checked.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a rectangular, immutable grid of runes.
// cells[y][x] holds the rune at column x, row y.
type Grid struct {
	width, height int
	cells         [][]rune
}
