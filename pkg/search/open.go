package search

// openList is the frontier: a d-ary min-heap ordered by node expanding
// priority, plus a state-keyed index for membership tests, lookups and
// removal of an arbitrary entry. The expansion policy keeps at most one node
// per state in here.
//
// Ties are broken deterministically: equal priorities order by lower
// accumulated objective cost, then by insertion sequence. Repeated runs over
// identical input therefore pop nodes in the same order.
type openList struct {
	heap    []*Node
	byState map[string]*Node
	d       int
	nextSeq uint64
}

func newOpenList() *openList {
	return &openList{
		heap:    make([]*Node, 0),
		byState: make(map[string]*Node),
		d:       4,
	}
}

func (o *openList) less(a, b *Node) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.GCost() != b.GCost() {
		return a.GCost() < b.GCost()
	}
	return a.seq < b.seq
}

func (o *openList) parent(index int) int {
	return (index - 1) / o.d
}

func (o *openList) swap(i, j int) {
	o.heap[i], o.heap[j] = o.heap[j], o.heap[i]
	o.heap[i].pos = i
	o.heap[j].pos = j
}

func (o *openList) heapifyUp(index int) {
	for index != 0 && o.less(o.heap[index], o.heap[o.parent(index)]) {
		o.swap(index, o.parent(index))
		index = o.parent(index)
	}
}

func (o *openList) heapifyDown(index int) {
	leftMostChild := index*o.d + 1
	if leftMostChild >= len(o.heap) {
		return
	}

	sentinel := leftMostChild + o.d
	if sentinel > len(o.heap) {
		sentinel = len(o.heap)
	}

	smallest := leftMostChild
	for i := leftMostChild + 1; i < sentinel; i++ {
		if o.less(o.heap[i], o.heap[smallest]) {
			smallest = i
		}
	}

	if o.less(o.heap[smallest], o.heap[index]) {
		o.swap(index, smallest)
		o.heapifyDown(smallest)
	}
}

func (o *openList) IsEmpty() bool {
	return len(o.heap) == 0
}

func (o *openList) Size() int {
	return len(o.heap)
}

// Push inserts a node. The caller must have removed any previous node for
// the same state first.
func (o *openList) Push(n *Node) {
	key := n.state.Key()
	if _, ok := o.byState[key]; ok {
		panic("open list: duplicate node for state " + key)
	}

	n.seq = o.nextSeq
	o.nextSeq++

	o.heap = append(o.heap, n)
	index := len(o.heap) - 1
	n.pos = index
	o.byState[key] = n
	o.heapifyUp(index)
}

// PopMin extracts the minimum-priority node. Returns nil on an empty list.
func (o *openList) PopMin() *Node {
	if o.IsEmpty() {
		return nil
	}
	root := o.heap[0]

	o.swap(0, len(o.heap)-1)
	o.heap = o.heap[:len(o.heap)-1]
	root.pos = -1
	delete(o.byState, root.state.Key())
	if len(o.heap) > 0 {
		o.heapifyDown(0)
	}

	return root
}

func (o *openList) HasState(key string) bool {
	_, ok := o.byState[key]
	return ok
}

func (o *openList) NodeByState(key string) *Node {
	return o.byState[key]
}

// RemoveByState removes the node currently representing the given state,
// regardless of its heap position.
func (o *openList) RemoveByState(key string) *Node {
	n, ok := o.byState[key]
	if !ok {
		return nil
	}

	index := n.pos
	last := len(o.heap) - 1
	o.swap(index, last)
	o.heap = o.heap[:last]
	n.pos = -1
	delete(o.byState, key)

	if index < len(o.heap) {
		o.heapifyDown(index)
		o.heapifyUp(index)
	}
	return n
}
