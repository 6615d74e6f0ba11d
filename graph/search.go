package graph

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	astar "github.com/pdrpinto/go-astar"
)

// HeuristicFunc adapts the Store's heuristic table to astar.Heuristic.
// The estimate depends only on the node; the goal argument is ignored.
func (s *Store) HeuristicFunc() astar.Heuristic[NodeID] {
	return func(from NodeID, _ NodeID) float64 {
		return s.Heuristic(s.Name(from))
	}
}

// Search returns the cheapest path from start to goal as node names.
// Unknown names are created on demand. When goal is unreachable the
// returned slice is empty and the error is nil; the error is only set when
// ctx is cancelled.
//
// Every node's G, H, F and Predecessor are reset before the run and then
// hold the state left by this search.
func (s *Store) Search(ctx context.Context, start, goal string, options ...astar.Option) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	startID := s.GetOrCreateNode(start)
	goalID := s.GetOrCreateNode(goal)
	s.reset()

	result, err := astar.Search[NodeID](ctx, s, startID, goalID, s.HeuristicFunc(), options...)
	if err != nil {
		return nil, err
	}
	s.record(result.States)

	if !result.Found {
		logger.Info().
			Str("start", start).
			Str("goal", goal).
			Int("expanded", result.ExpandedNodes).
			Msg("no path found")
		return nil, nil
	}

	path := make([]string, len(result.Path))
	for i, id := range result.Path {
		path[i] = s.nodes[id].Name
	}
	logger.Info().
		Str("start", start).
		Str("goal", goal).
		Strs("path", path).
		Float64("cost", result.TotalCost).
		Int("expanded", result.ExpandedNodes).
		Msg("path found")
	return path, nil
}

func (s *Store) reset() {
	for i := range s.nodes {
		s.nodes[i].G = 0
		s.nodes[i].H = 0
		s.nodes[i].F = 0
		s.nodes[i].Predecessor = NoNode
	}
}

func (s *Store) record(states map[NodeID]astar.NodeState[NodeID]) {
	for id, state := range states {
		node := &s.nodes[id]
		node.G = state.GScore
		node.H = state.Heuristic
		node.F = state.FCost
		if state.HasPredecessor {
			node.Predecessor = state.Predecessor
		}
	}
}

// FormatPath renders a search result for the console.
func FormatPath(path []string) string {
	if len(path) == 0 {
		return "No path found!"
	}
	return "Shortest Path: [" + strings.Join(path, ", ") + "]"
}
