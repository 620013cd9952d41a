package search

// State is a single state of a searched state space. Key returns a stable
// value-equality key over every field of the state: two states are the same
// search state iff their keys are equal. Open/close bookkeeping is keyed on
// it, so a lossy key silently corrupts deduplication.
type State interface {
	Key() string
}

// Cost is an accumulated path cost. Implementations may carry several scalar
// components; ObjectiveValue returns the single scalar the engine orders on.
// Add must return the component-wise sum and must panic when the operand is
// of a different cost type or optimization objective, that is a bug in the
// problem model, not a recoverable condition.
type Cost interface {
	ObjectiveValue() float64
	Add(other Cost) Cost
}

// OperatorResult is one candidate transition out of a state: the successor
// state, the cost of the applied operator and its display name.
type OperatorResult struct {
	Successor State
	Cost      Cost
	Operator  string
}

// Problem defines a state space: initial state, goal predicate and the
// successor relation. ExpandState yields operator results one at a time;
// returning false from yield stops the expansion early.
type Problem interface {
	Name() string
	InitialState() State
	IsGoal(state State) bool
	ExpandState(state State, yield func(OperatorResult) bool)
	ZeroCost() Cost
}

// Heuristic estimates the remaining objective cost from a state to a goal.
// Estimates must be non-negative, and admissible for optimality to hold.
type Heuristic interface {
	Name() string
	Estimate(state State) float64
}

// HeuristicFactory builds a heuristic bound to a concrete problem instance.
// The solver stores the factory and instantiates the heuristic once per
// SolveProblem call.
type HeuristicFactory func(p Problem) Heuristic
