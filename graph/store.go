// Package graph holds named, undirected, weighted graphs together with a
// per-node heuristic table, and runs A* searches over them by node name.
//
// A Store is not safe for concurrent use. Build it, then search it; do not
// add edges or heuristics while a Search is running.
package graph

import (
	"errors"
	"fmt"

	astar "github.com/pdrpinto/go-astar"
)

// NodeID is a handle to a node owned by a Store. Handles are dense indices
// and stay valid for the lifetime of the Store.
type NodeID int

// NoNode marks the absence of a predecessor.
const NoNode NodeID = -1

// ErrNoEdge is returned by PathCost when two consecutive path entries are
// not connected by an edge.
var ErrNoEdge = errors.New("no edge between nodes")

// Node is a named vertex and its search state from the most recent Search.
type Node struct {
	Name        string
	G           float64
	H           float64
	F           float64
	Predecessor NodeID
}

// Edge is one directed half of an undirected edge.
type Edge struct {
	From NodeID
	To   NodeID
	Cost float64
}

// Store owns all nodes, edges and heuristic estimates of a graph.
type Store struct {
	nodes      []Node
	index      map[string]NodeID
	edges      []Edge
	outgoing   [][]int
	heuristics map[string]float64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		index:      make(map[string]NodeID),
		heuristics: make(map[string]float64),
	}
}

// GetOrCreateNode returns the handle for name, creating the node if needed.
func (s *Store) GetOrCreateNode(name string) NodeID {
	if id, ok := s.index[name]; ok {
		return id
	}
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, Node{Name: name, Predecessor: NoNode})
	s.outgoing = append(s.outgoing, nil)
	s.index[name] = id
	return id
}

// AddEdge connects from and to in both directions with the given cost.
// Costs are expected to be non-negative; they are not validated.
func (s *Store) AddEdge(from, to string, cost float64) {
	fromID := s.GetOrCreateNode(from)
	toID := s.GetOrCreateNode(to)
	s.addDirected(fromID, toID, cost)
	s.addDirected(toID, fromID, cost)
}

func (s *Store) addDirected(from, to NodeID, cost float64) {
	s.outgoing[from] = append(s.outgoing[from], len(s.edges))
	s.edges = append(s.edges, Edge{From: from, To: to, Cost: cost})
}

// SetHeuristic stores the estimate of the remaining cost from name to the goal.
func (s *Store) SetHeuristic(name string, value float64) {
	s.heuristics[name] = value
}

// Heuristic returns the estimate for name, or 0 when none was set.
func (s *Store) Heuristic(name string) float64 {
	return s.heuristics[name]
}

// Neighbors implements astar.Graph.
func (s *Store) Neighbors(id NodeID) []astar.Neighbor[NodeID] {
	if !s.valid(id) {
		return nil
	}
	out := make([]astar.Neighbor[NodeID], 0, len(s.outgoing[id]))
	for _, edgeIndex := range s.outgoing[id] {
		edge := s.edges[edgeIndex]
		out = append(out, astar.Neighbor[NodeID]{ID: edge.To, Cost: edge.Cost})
	}
	return out
}

// Lookup returns the handle for name without creating it.
func (s *Store) Lookup(name string) (NodeID, bool) {
	id, ok := s.index[name]
	return id, ok
}

// Node returns a copy of the node behind id.
func (s *Store) Node(id NodeID) Node {
	if !s.valid(id) {
		return Node{Predecessor: NoNode}
	}
	return s.nodes[id]
}

// Name returns the name of the node behind id.
func (s *Store) Name(id NodeID) string {
	return s.Node(id).Name
}

// Len returns the number of nodes.
func (s *Store) Len() int { return len(s.nodes) }

// Edges returns a copy of every directed edge record in insertion order.
func (s *Store) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Names returns the node names in creation order.
func (s *Store) Names() []string {
	names := make([]string, len(s.nodes))
	for i, node := range s.nodes {
		names[i] = node.Name
	}
	return names
}

// PathCost sums the cheapest edge cost between each consecutive pair of
// names in path.
func (s *Store) PathCost(path []string) (float64, error) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		cost, ok := s.edgeCost(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%s -> %s: %w", path[i-1], path[i], ErrNoEdge)
		}
		total += cost
	}
	return total, nil
}

func (s *Store) edgeCost(from, to string) (float64, bool) {
	fromID, ok := s.index[from]
	if !ok {
		return 0, false
	}
	toID, ok := s.index[to]
	if !ok {
		return 0, false
	}
	best, found := 0.0, false
	for _, edgeIndex := range s.outgoing[fromID] {
		edge := s.edges[edgeIndex]
		if edge.To == toID && (!found || edge.Cost < best) {
			best, found = edge.Cost, true
		}
	}
	return best, found
}

func (s *Store) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(s.nodes)
}
