package solver

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/aoc2024/puzzleinput"
)

// Result is the answer to one puzzle part.
type Result struct {
	Day     int
	Part    int
	Name    string
	Answer  int
	Elapsed time.Duration
}

// Runner loads puzzle input and runs registered solvers against it.
type Runner struct {
	reg    *Registry
	logger *slog.Logger
	load   func(path string) (string, error)
}

// NewRunner returns a Runner that reads input files with puzzleinput.Load.
func NewRunner(reg *Registry, logger *slog.Logger) *Runner {
	return &Runner{reg: reg, logger: logger, load: puzzleinput.Load}
}

// RunDay loads the input at path once and solves the requested part of day.
// part 0 runs every registered part in order. The first error aborts the day.
func (r *Runner) RunDay(day, part int, path string) ([]Result, error) {
	var puzzles []Puzzle
	if part == 0 {
		puzzles = r.reg.Parts(day)
		if len(puzzles) == 0 {
			return nil, fmt.Errorf("day %d: %w", day, ErrUnknownPuzzle)
		}
	} else {
		p, err := r.reg.Lookup(day, part)
		if err != nil {
			return nil, err
		}
		puzzles = []Puzzle{p}
	}

	r.logger.Debug("Loading puzzle input.", "day", day, "path", path)
	input, err := r.load(path)
	if err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}

	results := make([]Result, 0, len(puzzles))
	for _, p := range puzzles {
		res, err := r.solve(p, input)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Solve runs one puzzle against already loaded input.
func (r *Runner) Solve(day, part int, input string) (Result, error) {
	p, err := r.reg.Lookup(day, part)
	if err != nil {
		return Result{}, err
	}
	return r.solve(p, input)
}

func (r *Runner) solve(p Puzzle, input string) (Result, error) {
	start := time.Now()
	answer, err := p.Solve(input)
	elapsed := time.Since(start)
	if err != nil {
		r.logger.Error("Puzzle failed.", "day", p.Day, "part", p.Part, "error", err)
		return Result{}, fmt.Errorf("day %d part %d: %w", p.Day, p.Part, err)
	}
	r.logger.Info("Puzzle solved.", "day", p.Day, "part", p.Part, "name", p.Name, "answer", answer, "elapsed", elapsed)

	return Result{Day: p.Day, Part: p.Part, Name: p.Name, Answer: answer, Elapsed: elapsed}, nil
}
