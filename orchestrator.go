package astar

import (
	"container/heap"
	"context"

	"github.com/rs/zerolog"

	"github.com/pdrpinto/go-astar/internal"
)

type stepOutcome int

const (
	outcomeExpanded stepOutcome = iota
	outcomeFound
	outcomeExhausted
)

// orchestrator owns the frontier, the closed set and the per-node search
// state. Workers only compute relax proposals; every mutation happens here.
type orchestrator[NodeType comparable] struct {
	graph     Graph[NodeType]
	startNode NodeType
	goalNode  NodeType
	heuristic Heuristic[NodeType]

	openSet   PriorityQueue[NodeType]
	closedSet map[NodeType]bool
	states    map[NodeType]NodeState[NodeType]
	sequence  uint64

	expandTaskChannel    chan ExpandTask[NodeType]
	relaxProposalChannel chan RelaxProposal[NodeType]

	expandedNodes int
}

func newOrchestrator[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	numberOfWorkers int,
) *orchestrator[NodeType] {
	if numberOfWorkers < 1 {
		numberOfWorkers = 1
	}
	o := &orchestrator[NodeType]{
		graph:                graph,
		startNode:            startNode,
		goalNode:             goalNode,
		heuristic:            heuristic,
		openSet:              make(PriorityQueue[NodeType], 0),
		closedSet:            make(map[NodeType]bool),
		states:               make(map[NodeType]NodeState[NodeType]),
		expandTaskChannel:    make(chan ExpandTask[NodeType]),
		relaxProposalChannel: make(chan RelaxProposal[NodeType]),
	}
	heap.Init(&o.openSet)

	startH := heuristic(startNode, goalNode)
	o.states[startNode] = NodeState[NodeType]{GScore: 0, Heuristic: startH, FCost: startH}
	o.push(startNode, 0, startH)

	for i := 0; i < numberOfWorkers; i++ {
		go runWorker(contextObject, o.expandTaskChannel, o.relaxProposalChannel)
	}
	return o
}

func (o *orchestrator[NodeType]) push(node NodeType, gScore, fCost float64) {
	heap.Push(&o.openSet, &PriorityQueueItem[NodeType]{
		Node:     node,
		GScore:   gScore,
		FCost:    fCost,
		Sequence: o.sequence,
	})
	o.sequence++
}

// step pops frontier entries until it finds one whose node is still open,
// then either reports the goal or expands that node.
func (o *orchestrator[NodeType]) step(contextObject context.Context) (NodeType, stepOutcome, error) {
	logger := zerolog.Ctx(contextObject)
	var zero NodeType
	for {
		if err := contextObject.Err(); err != nil {
			return zero, outcomeExhausted, err
		}
		if o.openSet.Len() == 0 {
			return zero, outcomeExhausted, nil
		}

		currentItem := heap.Pop(&o.openSet).(*PriorityQueueItem[NodeType])
		currentNode := currentItem.Node

		// Stale duplicate of a node that was finalized earlier.
		if o.closedSet[currentNode] {
			continue
		}
		o.expandedNodes++

		if currentNode == o.goalNode {
			logger.Debug().Interface("node", currentNode).Float64("g", currentItem.GScore).Msg("goal reached")
			return currentNode, outcomeFound, nil
		}
		o.closedSet[currentNode] = true

		if err := o.expand(contextObject, currentNode, currentItem.GScore); err != nil {
			return currentNode, outcomeExhausted, err
		}
		logger.Debug().
			Interface("node", currentNode).
			Float64("g", currentItem.GScore).
			Float64("f", currentItem.FCost).
			Int("frontier", o.openSet.Len()).
			Msg("node expanded")
		return currentNode, outcomeExpanded, nil
	}
}

// expand hands every neighbor to the worker pool and applies the returned
// proposals in neighbor order.
func (o *orchestrator[NodeType]) expand(contextObject context.Context, currentNode NodeType, currentG float64) error {
	neighbors := o.graph.Neighbors(currentNode)
	if len(neighbors) == 0 {
		return nil
	}

	go func() {
		for i, neighbor := range neighbors {
			task := ExpandTask[NodeType]{
				Index:         i,
				FromNode:      currentNode,
				Neighbor:      neighbor,
				CurrentGScore: currentG,
				GoalNode:      o.goalNode,
				HeuristicFunc: o.heuristic,
			}
			select {
			case <-contextObject.Done():
				return
			case o.expandTaskChannel <- task:
			}
		}
	}()

	proposals := make([]RelaxProposal[NodeType], len(neighbors))
	for i := 0; i < len(neighbors); i++ {
		select {
		case <-contextObject.Done():
			return contextObject.Err()
		case proposal := <-o.relaxProposalChannel:
			proposals[proposal.Index] = proposal
		}
	}

	for _, proposal := range proposals {
		if o.closedSet[proposal.ToNode] {
			continue
		}
		state, discovered := o.states[proposal.ToNode]
		if discovered && proposal.GScore >= state.GScore {
			continue
		}
		o.states[proposal.ToNode] = NodeState[NodeType]{
			GScore:         proposal.GScore,
			Heuristic:      proposal.Heuristic,
			FCost:          proposal.FCost,
			Predecessor:    proposal.FromNode,
			HasPredecessor: true,
		}
		o.push(proposal.ToNode, proposal.GScore, proposal.FCost)
	}
	return nil
}

func (o *orchestrator[NodeType]) path(goal NodeType) []NodeType {
	return internal.ReconstructPath(o.predecessors(), goal)
}

func (o *orchestrator[NodeType]) predecessors() map[NodeType]NodeType {
	cameFrom := make(map[NodeType]NodeType, len(o.states))
	for node, state := range o.states {
		if state.HasPredecessor {
			cameFrom[node] = state.Predecessor
		}
	}
	return cameFrom
}

// openNodes returns the nodes that still have a live frontier entry.
func (o *orchestrator[NodeType]) openNodes() map[NodeType]bool {
	open := make(map[NodeType]bool, len(o.openSet))
	for _, item := range o.openSet {
		if !o.closedSet[item.Node] {
			open[item.Node] = true
		}
	}
	return open
}

func (o *orchestrator[NodeType]) snapshotStates() map[NodeType]NodeState[NodeType] {
	states := make(map[NodeType]NodeState[NodeType], len(o.states))
	for node, state := range o.states {
		states[node] = state
	}
	return states
}
