package astar

import (
	"context"
	"runtime"
)

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// NodeState is the search bookkeeping for one discovered node.
// FCost always equals GScore + Heuristic.
type NodeState[NodeType comparable] struct {
	GScore         float64
	Heuristic      float64
	FCost          float64
	Predecessor    NodeType
	HasPredecessor bool
}

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
	// States holds the final state of every node discovered during the run.
	States map[NodeType]NodeState[NodeType]
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines should expand neighbors.
// Values below one are treated as one.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Search runs A* from startNode until goalNode is popped from the frontier
// or the frontier is exhausted. An unreachable goal is not an error: the
// Result has Found set to false and a nil Path. The returned error is only
// ever the context's error.
//
// Frontier ties on f are broken in insertion order, and worker proposals are
// applied in neighbor order, so the path is the same for any worker count.
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	searchOptions := applyOptions(options)

	workerContext, cancel := context.WithCancel(contextObject)
	defer cancel()

	o := newOrchestrator(workerContext, graph, startNode, goalNode, heuristic, searchOptions.NumberOfWorkers)

	for {
		currentNode, outcome, err := o.step(workerContext)
		if err != nil {
			return Result[NodeType]{ExpandedNodes: o.expandedNodes}, err
		}

		switch outcome {
		case outcomeFound:
			return Result[NodeType]{
				Path:          o.path(currentNode),
				TotalCost:     o.states[currentNode].GScore,
				ExpandedNodes: o.expandedNodes,
				Found:         true,
				States:        o.snapshotStates(),
			}, nil
		case outcomeExhausted:
			return Result[NodeType]{
				ExpandedNodes: o.expandedNodes,
				Found:         false,
				States:        o.snapshotStates(),
			}, nil
		}
	}
}
