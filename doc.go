// Package astar provides a generic and concurrent A* pathfinding implementation.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The library is generic over node type and uses a worker pool to compute
// relax proposals while a single orchestrator owns the frontier. The frontier
// keeps duplicate entries for nodes whose cost improved; stale entries are
// dropped when popped, after the node has been closed. Ties on f are broken
// first-in first-out.
//
// Named graphs with per-node heuristics live in the graph subpackage.
package astar
