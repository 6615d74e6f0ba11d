package astar

import "context"

// ExpandTask represents a request from the orchestrator to the workers.
type ExpandTask[NodeType comparable] struct {
	Index         int
	FromNode      NodeType
	Neighbor      Neighbor[NodeType]
	CurrentGScore float64
	GoalNode      NodeType
	HeuristicFunc Heuristic[NodeType]
}

// RelaxProposal is the worker's suggestion for updating a path.
// Index is the position of the neighbor in the expanded node's
// neighbor list, so the orchestrator can apply proposals in order.
type RelaxProposal[NodeType comparable] struct {
	Index     int
	FromNode  NodeType
	ToNode    NodeType
	GScore    float64
	Heuristic float64
	FCost     float64
}

// runWorker evaluates expand tasks until the context is done.
func runWorker[NodeType comparable](
	contextObject context.Context,
	expandTaskChannel <-chan ExpandTask[NodeType],
	relaxProposalChannel chan<- RelaxProposal[NodeType],
) {
	for {
		select {
		case <-contextObject.Done():
			return
		case task := <-expandTaskChannel:
			tentativeG := task.CurrentGScore + task.Neighbor.Cost
			h := task.HeuristicFunc(task.Neighbor.ID, task.GoalNode)
			proposal := RelaxProposal[NodeType]{
				Index:     task.Index,
				FromNode:  task.FromNode,
				ToNode:    task.Neighbor.ID,
				GScore:    tentativeG,
				Heuristic: h,
				FCost:     tentativeG + h,
			}
			select {
			case <-contextObject.Done():
				return
			case relaxProposalChannel <- proposal:
			}
		}
	}
}
