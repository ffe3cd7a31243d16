// Command aoc solves the Advent of Code 2024 puzzles for days 1 to 4.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/aoc2024/internal/solver"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, solves the selected puzzles and prints one answer per
// line to outW. Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(opts.cfg.LogLevel, opts.cfg.LogFormat, logW)
	logger.Debug("Configuration loaded.", "days", opts.cfg.Days, "input_dir", opts.cfg.InputDir)

	runner := solver.NewRunner(solver.Default(), logger)
	for _, day := range opts.cfg.Days {
		results, err := runner.RunDay(day, opts.part, opts.inputPath(day))
		for _, res := range results {
			fmt.Fprintf(outW, "day %d part %d (%s): %d\n", res.Day, res.Part, res.Name, res.Answer)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
