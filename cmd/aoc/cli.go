package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc2024/internal/config"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options is the parsed command line, merged over the YAML configuration.
type options struct {
	cfg   *config.Config
	day   int
	part  int
	input string
}

// parseArgs processes command-line arguments. It returns the merged options,
// a boolean indicating the program should exit cleanly, or an *ExitError.
func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
aoc - Advent of Code 2024 puzzle solvers (days 1-4).

Usage:
  aoc [options]

Without -day every day listed in the config is solved.

Options:
`)
		fs.PrintDefaults()
	}

	configFlag := fs.String("config", "", "Path to a YAML run configuration.")
	dayFlag := fs.Int("day", 0, "Day to solve (1-4). 0 runs every configured day.")
	partFlag := fs.Int("part", 0, "Part to solve (1 or 2). 0 runs both.")
	inputFlag := fs.String("input", "", "Input file for -day. Overrides the config.")
	logLevelFlag := fs.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := fs.String("log-format", "", "Log output format: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if *logFormatFlag != "" {
		cfg.LogFormat = strings.ToLower(*logFormatFlag)
	}

	opts := &options{cfg: cfg, day: *dayFlag, part: *partFlag, input: *inputFlag}
	if opts.day != 0 {
		if err := config.ValidateDay(opts.day); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.Days = []int{opts.day}
	}
	if opts.part < 0 || opts.part > 2 {
		return nil, false, &ExitError{Code: 2, Message: "invalid part: must be 1 or 2"}
	}
	if opts.input != "" && opts.day == 0 {
		return nil, false, &ExitError{Code: 2, Message: "-input requires -day"}
	}
	if err := cfg.Finalize(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return opts, false, nil
}

// inputPath returns the file to read for day.
func (o *options) inputPath(day int) string {
	if o.input != "" && day == o.day {
		return o.input
	}
	return o.cfg.InputPath(day)
}
