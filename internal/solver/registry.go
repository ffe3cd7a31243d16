// Package solver registers every puzzle part and runs them against input
// files.
package solver

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicatePuzzle indicates a (day, part) registered twice.
	ErrDuplicatePuzzle = errors.New("solver: puzzle already registered")
	// ErrUnknownPuzzle indicates a (day, part) with no registered solver.
	ErrUnknownPuzzle = errors.New("solver: no such puzzle")
)

// Func solves one puzzle part from its raw input text.
type Func func(input string) (int, error)

// Puzzle is one registered puzzle part.
type Puzzle struct {
	Day   int
	Part  int
	Name  string
	Solve Func
}

type key struct{ day, part int }

// Registry maps (day, part) to a Puzzle.
type Registry struct {
	puzzles map[key]Puzzle
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[key]Puzzle)}
}

// Register adds p. Returns ErrDuplicatePuzzle if its (day, part) is taken.
func (r *Registry) Register(p Puzzle) error {
	k := key{p.Day, p.Part}
	if _, ok := r.puzzles[k]; ok {
		return fmt.Errorf("day %d part %d: %w", p.Day, p.Part, ErrDuplicatePuzzle)
	}
	r.puzzles[k] = p
	return nil
}

// Lookup returns the puzzle registered for (day, part).
func (r *Registry) Lookup(day, part int) (Puzzle, error) {
	p, ok := r.puzzles[key{day, part}]
	if !ok {
		return Puzzle{}, fmt.Errorf("day %d part %d: %w", day, part, ErrUnknownPuzzle)
	}
	return p, nil
}

// Parts returns the puzzles registered for day, ordered by part.
func (r *Registry) Parts(day int) []Puzzle {
	var out []Puzzle
	for k, p := range r.puzzles {
		if k.day == day {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Part < out[j].Part })
	return out
}

// Puzzles returns every registered puzzle ordered by day, then part.
func (r *Registry) Puzzles() []Puzzle {
	out := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Part < out[j].Part
	})
	return out
}
