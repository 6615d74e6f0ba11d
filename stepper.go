package astar

import (
	"context"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	Cost      float64
	StepIndex int
}

// Stepper provides a step-by-step orchestrator over the concurrent workers
type Stepper[NodeType comparable] struct {
	ctx    context.Context
	cancel context.CancelFunc
	search *orchestrator[NodeType]

	stepCount int
	done      bool
	terminal  StepSnapshot[NodeType]
}

// NewStepper creates a new stepper using the same worker-based expansion logic as Search.
// Callers must Close the stepper to release its workers.
func NewStepper[NodeType comparable](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) *Stepper[NodeType] {
	opts := applyOptions(options)

	ctx, cancel := context.WithCancel(parent)
	return &Stepper[NodeType]{
		ctx:    ctx,
		cancel: cancel,
		search: newOrchestrator(ctx, graph, startNode, goalNode, heuristic, opts.NumberOfWorkers),
	}
}

// Close stops the workers
func (s *Stepper[NodeType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Done reports whether the search has finished.
func (s *Stepper[NodeType]) Done() bool { return s.done }

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, Step keeps returning the terminal snapshot.
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if s.done {
		return s.terminal, nil
	}

	current, outcome, err := s.search.step(s.ctx)
	if err != nil {
		s.done = true
		s.terminal = StepSnapshot[NodeType]{Done: true, Found: false, StepIndex: s.stepCount}
		return s.terminal, err
	}
	if outcome != outcomeExhausted {
		s.stepCount++
	}

	snapshot := StepSnapshot[NodeType]{
		Current:   current,
		Open:      s.search.openNodes(),
		Closed:    copyBoolMap(s.search.closedSet),
		CameFrom:  s.search.predecessors(),
		StepIndex: s.stepCount,
	}

	switch outcome {
	case outcomeFound:
		snapshot.Done = true
		snapshot.Found = true
		snapshot.Path = s.search.path(current)
		snapshot.Cost = s.search.states[current].GScore
	case outcomeExhausted:
		snapshot.Done = true
	}

	if snapshot.Done {
		s.done = true
		s.terminal = snapshot
	}
	return snapshot, nil
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
