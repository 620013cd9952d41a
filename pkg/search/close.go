package search

// closeList is the visited set: states already expanded, keyed by state.
// Removal supports reopening a state when a cheaper path to it is found.
type closeList struct {
	byState map[string]*Node
}

func newCloseList() *closeList {
	return &closeList{byState: make(map[string]*Node)}
}

func (c *closeList) Put(n *Node) {
	c.byState[n.state.Key()] = n
}

func (c *closeList) HasState(key string) bool {
	_, ok := c.byState[key]
	return ok
}

func (c *closeList) NodeByState(key string) *Node {
	return c.byState[key]
}

func (c *closeList) Remove(key string) {
	delete(c.byState, key)
}

func (c *closeList) Size() int {
	return len(c.byState)
}
