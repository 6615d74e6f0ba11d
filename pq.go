package astar

// PriorityQueueItem is one frontier entry. A node may have several entries
// in the queue at once; only the first one popped while the node is still
// open is acted upon.
type PriorityQueueItem[NodeType comparable] struct {
	Node     NodeType
	GScore   float64
	FCost    float64
	Sequence uint64
}

// PriorityQueue orders items by ascending FCost. Items with equal FCost
// leave the queue in the order they were pushed.
type PriorityQueue[NodeType comparable] []*PriorityQueueItem[NodeType]

func (queue PriorityQueue[NodeType]) Len() int { return len(queue) }
func (queue PriorityQueue[NodeType]) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue[NodeType]) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue[NodeType]) Push(x any) {
	*queue = append(*queue, x.(*PriorityQueueItem[NodeType]))
}

func (queue *PriorityQueue[NodeType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
