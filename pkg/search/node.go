package search

// Node is one node of the search tree: a state, the accumulated cost of the
// path leading to it, a parent link and the operator that was applied last.
// Nodes are immutable once handed to the open list, except for the heap
// bookkeeping fields owned by openList.
type Node struct {
	state    State
	cost     Cost
	parent   *Node
	operator string
	depth    int

	priority float64
	seq      uint64
	pos      int
}

func newNode(state State, cost Cost, parent *Node, operator string) *Node {
	depth := 0
	if parent != nil {
		depth = parent.depth + 1
	}
	return &Node{
		state:    state,
		cost:     cost,
		parent:   parent,
		operator: operator,
		depth:    depth,
		pos:      -1,
	}
}

func (n *Node) State() State {
	return n.state
}

func (n *Node) Cost() Cost {
	return n.cost
}

// GCost is the accumulated objective cost of the path to this node.
func (n *Node) GCost() float64 {
	return n.cost.ObjectiveValue()
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Operator() string {
	return n.operator
}

func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) Priority() float64 {
	return n.priority
}

// OperatorPath returns the operator labels applied along the path from the
// root to this node, in application order.
func (n *Node) OperatorPath() []string {
	ops := make([]string, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		ops = append(ops, cur.operator)
	}
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	return ops
}

// StatePath returns the states along the path from the root to this node,
// root first.
func (n *Node) StatePath() []State {
	states := make([]State, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		states = append(states, cur.state)
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	return states
}
