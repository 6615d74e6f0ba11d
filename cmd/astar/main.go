package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bytedance/sonic"

	astar "github.com/pdrpinto/go-astar"
	"github.com/pdrpinto/go-astar/graph"
	"github.com/pdrpinto/go-astar/internal/config"
	"github.com/pdrpinto/go-astar/internal/logging"
)

// main is the entrypoint for the astar command.
func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// searchOutput is the JSON form of a search result.
type searchOutput struct {
	Start string   `json:"start"`
	Goal  string   `json:"goal"`
	Found bool     `json:"found"`
	Path  []string `json:"path"`
	Cost  float64  `json:"cost"`
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	opts, shouldExit, err := parseArgs(args, settings, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, err := logging.New(logW, logging.Config{Level: opts.LogLevel, Format: opts.LogFormat})
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	ctx = logger.WithContext(ctx)

	file := config.DemoGraph()
	if opts.GraphPath != "" {
		file, err = config.LoadGraph(ctx, opts.GraphPath)
		if err != nil {
			return err
		}
	}

	start, goal := opts.Start, opts.Goal
	if start == "" {
		start = file.Start
	}
	if goal == "" {
		goal = file.Goal
	}
	if start == "" || goal == "" {
		return &ExitError{Code: 2, Message: "start and goal are required: pass -start/-goal or add a search block"}
	}

	var searchOptions []astar.Option
	if opts.Workers > 0 {
		searchOptions = append(searchOptions, astar.WithWorkers(opts.Workers))
	}

	store := file.Build()
	path, err := store.Search(ctx, start, goal, searchOptions...)
	if err != nil {
		return err
	}
	cost, err := store.PathCost(path)
	if err != nil {
		return err
	}

	if opts.Output == "json" {
		data, err := sonic.Marshal(searchOutput{
			Start: start,
			Goal:  goal,
			Found: len(path) > 0,
			Path:  path,
			Cost:  cost,
		})
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(outW, string(data))
		return err
	}

	if _, err := fmt.Fprintln(outW, graph.FormatPath(path)); err != nil {
		return err
	}
	if len(path) > 0 {
		_, err = fmt.Fprintln(outW, "Cost: "+strconv.FormatFloat(cost, 'g', -1, 64))
	}
	return err
}
