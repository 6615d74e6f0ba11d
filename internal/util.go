package internal

// ReconstructPath follows predecessor links back from current until it
// reaches a node without a predecessor, and returns the nodes in
// start-to-current order.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
) []NodeType {
	path := []NodeType{current}
	for {
		previousNode, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
