package search

import (
	"fmt"

	"github.com/TaniaPewah/ambroute/pkg"
)

// AStar is the Weighted-A* specialization of best-first search. The node
// expanding priority is (1-w)*g + w*h: w=0 degenerates to uniform-cost
// (Dijkstra) search, w=1 to pure greedy best-first.
type AStar struct {
	bestFirstSearch

	heuristicFactory HeuristicFactory
	heuristicWeight  float64

	// bound to the problem of the current SolveProblem call
	heuristic Heuristic
}

type Option func(*AStar)

// WithHeuristicWeight sets w. Must be within [0,1].
func WithHeuristicWeight(w float64) Option {
	return func(a *AStar) { a.heuristicWeight = w }
}

// WithMaxNrStatesToExpand bounds the number of expanded states; zero means
// unbounded.
func WithMaxNrStatesToExpand(n int) Option {
	return func(a *AStar) { a.maxNrStatesToExpand = n }
}

// WithOpenCriterion installs a pruning predicate applied to every candidate
// node before it is ranked.
func WithOpenCriterion(criterion func(*Node) bool) Option {
	return func(a *AStar) { a.openCriterion = criterion }
}

func NewAStar(heuristicFactory HeuristicFactory, opts ...Option) *AStar {
	a := &AStar{
		heuristicFactory: heuristicFactory,
		heuristicWeight:  pkg.DEFAULT_HEURISTIC_WEIGHT,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.heuristicWeight < 0 || a.heuristicWeight > 1 {
		panic(fmt.Sprintf("astar: heuristic weight %f outside [0,1]", a.heuristicWeight))
	}
	return a
}

func (a *AStar) Name() string {
	if a.heuristic == nil {
		return fmt.Sprintf("A* (w=%.3f)", a.heuristicWeight)
	}
	return fmt.Sprintf("A* (h=%s, w=%.3f)", a.heuristic.Name(), a.heuristicWeight)
}

// SolveProblem runs one search session over the problem. The heuristic is
// instantiated here, bound to this problem instance.
func (a *AStar) SolveProblem(p Problem) Result {
	a.heuristic = a.heuristicFactory(p)

	res := a.run(p, a.calcNodeExpandingPriority, a.openSuccessorNode)
	res.SolverName = a.Name()
	return res
}

func (a *AStar) calcNodeExpandingPriority(n *Node) float64 {
	h := a.heuristic.Estimate(n.state)
	return (1-a.heuristicWeight)*n.GCost() + a.heuristicWeight*h
}

// openSuccessorNode reconciles a candidate successor against the open and
// close lists. At most one live node per state exists across both; a state
// is re-expanded only when a strictly cheaper path to it is found.
func (a *AStar) openSuccessorNode(succ *Node) {
	key := succ.state.Key()

	if a.open.HasState(key) {
		existing := a.open.NodeByState(key)
		if succ.GCost() < existing.GCost() {
			a.open.RemoveByState(key)
			a.open.Push(succ)
		}
		return
	}

	if a.close.HasState(key) {
		existing := a.close.NodeByState(key)
		if succ.GCost() < existing.GCost() {
			a.close.Remove(key)
			a.open.Push(succ)
		}
		return
	}

	a.open.Push(succ)
}
