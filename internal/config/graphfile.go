package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdrpinto/go-astar/graph"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported graph file format")
	ErrNegativeCost      = errors.New("edge cost must not be negative")
	ErrNegativeHeuristic = errors.New("heuristic must not be negative")
	ErrEmptyName         = errors.New("node name must not be empty")
)

// EdgeDefinition is one undirected edge as written in a graph file.
type EdgeDefinition struct {
	From string
	To   string
	Cost float64
}

// GraphFile is the format-agnostic content of a graph definition file.
type GraphFile struct {
	Path       string
	Edges      []EdgeDefinition
	Heuristics map[string]float64
	// Start and Goal come from the optional search block and may be empty.
	Start string
	Goal  string
}

// LoadGraph reads a graph definition, picking the decoder from the file
// extension (.hcl, .yaml or .yml), and validates it.
func LoadGraph(ctx context.Context, path string) (*GraphFile, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("Loading graph file.")

	var (
		file *GraphFile
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		file, err = decodeHCLGraph(path)
	case ".yaml", ".yml":
		file, err = decodeYAMLGraph(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid graph file %s: %w", path, err)
	}

	logger.Debug().
		Str("path", path).
		Int("edges", len(file.Edges)).
		Int("heuristics", len(file.Heuristics)).
		Msg("Successfully loaded graph file.")
	return file, nil
}

// Validate rejects negative costs and estimates and empty node names.
func (f *GraphFile) Validate() error {
	for i, edge := range f.Edges {
		if edge.From == "" || edge.To == "" {
			return fmt.Errorf("edge %d: %w", i, ErrEmptyName)
		}
		if edge.Cost < 0 {
			return fmt.Errorf("edge %s-%s cost %g: %w", edge.From, edge.To, edge.Cost, ErrNegativeCost)
		}
	}
	for name, value := range f.Heuristics {
		if name == "" {
			return fmt.Errorf("heuristic: %w", ErrEmptyName)
		}
		if value < 0 {
			return fmt.Errorf("heuristic %s=%g: %w", name, value, ErrNegativeHeuristic)
		}
	}
	return nil
}

// Build creates a Store holding the file's edges, in file order, and heuristics.
func (f *GraphFile) Build() *graph.Store {
	store := graph.New()
	for _, edge := range f.Edges {
		store.AddEdge(edge.From, edge.To, edge.Cost)
	}
	names := make([]string, 0, len(f.Heuristics))
	for name := range f.Heuristics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		store.SetHeuristic(name, f.Heuristics[name])
	}
	return store
}

// DemoGraph returns the five-node example used when no file is given.
func DemoGraph() *GraphFile {
	return &GraphFile{
		Path: "demo",
		Edges: []EdgeDefinition{
			{From: "A", To: "B", Cost: 1},
			{From: "A", To: "C", Cost: 3},
			{From: "B", To: "D", Cost: 1},
			{From: "C", To: "D", Cost: 1},
			{From: "D", To: "E", Cost: 5},
		},
		Heuristics: map[string]float64{"A": 7, "B": 6, "C": 4, "D": 2, "E": 0},
		Start:      "A",
		Goal:       "E",
	}
}
