package search

import "fmt"

// Outcome classifies how a search run terminated. Callers can tell a proven
// "no solution" (open emptied) apart from "bound reached, unknown".
type Outcome uint8

const (
	OutcomeSucceeded Outcome = iota
	// OutcomeExhausted: the open list emptied without reaching a goal.
	OutcomeExhausted
	// OutcomeBounded: the expansion bound triggered before a goal was popped.
	OutcomeBounded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeBounded:
		return "bounded"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// Result is the outcome of one solve run. Final is non-nil only for
// OutcomeSucceeded; its parent links reconstruct the solution path.
type Result struct {
	Outcome          Outcome
	Final            *Node
	NrExpandedStates int
	SolverName       string
}

func (r Result) Found() bool {
	return r.Outcome == OutcomeSucceeded
}

// bestFirstSearch is the generic best-first loop shared by its
// specializations. The open/close containers are fields of the session, not
// globals, so independent searches never interfere.
type bestFirstSearch struct {
	open  *openList
	close *closeList

	// maxNrStatesToExpand bounds the run when positive, checked once per
	// loop iteration.
	maxNrStatesToExpand int

	// openCriterion may reject a candidate node outright before its priority
	// is computed. Rejected nodes never enter the open list.
	openCriterion func(*Node) bool

	nrExpanded int
}

// run executes the loop: pop the minimum-priority node, goal-test, mark
// expanded, expand successors. calcPriority and openSuccessor are supplied
// by the specialization.
func (b *bestFirstSearch) run(
	p Problem,
	calcPriority func(*Node) float64,
	openSuccessor func(*Node),
) Result {
	b.open = newOpenList()
	b.close = newCloseList()
	b.nrExpanded = 0

	root := newNode(p.InitialState(), p.ZeroCost(), nil, "")
	root.priority = calcPriority(root)
	b.open.Push(root)

	for !b.open.IsEmpty() {
		n := b.open.PopMin()

		if b.maxNrStatesToExpand > 0 && b.nrExpanded >= b.maxNrStatesToExpand {
			return Result{Outcome: OutcomeBounded, NrExpandedStates: b.nrExpanded}
		}

		if p.IsGoal(n.state) {
			return Result{Outcome: OutcomeSucceeded, Final: n, NrExpandedStates: b.nrExpanded}
		}

		b.close.Put(n)
		b.nrExpanded++

		p.ExpandState(n.state, func(op OperatorResult) bool {
			succ := newNode(op.Successor, n.cost.Add(op.Cost), n, op.Operator)

			if b.openCriterion != nil && !b.openCriterion(succ) {
				return true
			}

			succ.priority = calcPriority(succ)
			openSuccessor(succ)
			return true
		})
	}

	return Result{Outcome: OutcomeExhausted, NrExpandedStates: b.nrExpanded}
}
