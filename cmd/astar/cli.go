package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/go-astar/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options is the fully resolved command line.
type options struct {
	GraphPath string
	Start     string
	Goal      string
	Workers   int
	LogLevel  string
	LogFormat string
	Output    string
}

// parseArgs processes command-line arguments on top of the environment
// settings. It returns the options, whether the program should exit
// cleanly, or an ExitError.
func parseArgs(args []string, settings *config.Settings, output io.Writer) (*options, bool, error) {
	flagSet := flag.NewFlagSet("astar", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
astar - find the cheapest path between two nodes of a weighted graph.

Usage:
  astar [options] [GRAPH_FILE]

Arguments:
  GRAPH_FILE
    Path to a .hcl, .yaml or .yml graph definition. Without one, a built-in
    five-node demo graph is searched from A to E.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Path to the graph file.")
	gFlag := flagSet.String("g", "", "Path to the graph file (shorthand).")
	startFlag := flagSet.String("start", "", "Start node. Defaults to the file's search block.")
	goalFlag := flagSet.String("goal", "", "Goal node. Defaults to the file's search block.")
	workersFlag := flagSet.Int("workers", settings.Workers, "Number of expansion workers. 0 uses one per CPU.")
	logLevelFlag := flagSet.String("log-level", settings.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", settings.LogFormat, "Log output format. Options: 'text' or 'json'.")
	outputFlag := flagSet.String("output", "text", "Result format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := settings.GraphFile
	switch {
	case *graphFlag != "":
		path = *graphFlag
	case *gFlag != "":
		path = *gFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}

	opts := &options{
		GraphPath: path,
		Start:     *startFlag,
		Goal:      *goalFlag,
		Workers:   *workersFlag,
		LogLevel:  strings.ToLower(*logLevelFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
		Output:    strings.ToLower(*outputFlag),
	}

	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	if opts.Output != "text" && opts.Output != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'text' or 'json'"}
	}
	if opts.Workers < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must not be negative"}
	}
	return opts, false, nil
}
