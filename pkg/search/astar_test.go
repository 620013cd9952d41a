package search

import (
	"fmt"
	"testing"
)

// a small labeled weighted graph problem used as the test state space

type graphState struct {
	id string
}

func (s graphState) Key() string { return s.id }

type scalarCost float64

func (c scalarCost) ObjectiveValue() float64 { return float64(c) }

func (c scalarCost) Add(other Cost) Cost {
	o, ok := other.(scalarCost)
	if !ok {
		panic(fmt.Sprintf("scalarCost: cannot add %T", other))
	}
	return c + o
}

type testEdge struct {
	to     string
	weight float64
}

type graphProblem struct {
	initial   string
	goal      string
	edges     map[string][]testEdge
	estimates map[string]float64
}

func (p *graphProblem) Name() string { return "test-graph" }

func (p *graphProblem) InitialState() State { return graphState{id: p.initial} }

func (p *graphProblem) IsGoal(state State) bool { return state.(graphState).id == p.goal }

func (p *graphProblem) ZeroCost() Cost { return scalarCost(0) }

func (p *graphProblem) ExpandState(state State, yield func(OperatorResult) bool) {
	for _, e := range p.edges[state.(graphState).id] {
		op := OperatorResult{
			Successor: graphState{id: e.to},
			Cost:      scalarCost(e.weight),
			Operator:  "go " + e.to,
		}
		if !yield(op) {
			return
		}
	}
}

func (p *graphProblem) heuristicFactory(problem Problem) Heuristic {
	return &tableHeuristic{estimates: p.estimates}
}

type tableHeuristic struct {
	estimates map[string]float64
}

func (h *tableHeuristic) Name() string { return "table" }

func (h *tableHeuristic) Estimate(state State) float64 {
	return h.estimates[state.(graphState).id]
}

func TestAStarFindsOptimalPathAtWeightZero(t *testing.T) {
	// weight 0 is uniform-cost search, the result must be cost-optimal
	// regardless of the (bad) estimates
	p := &graphProblem{
		initial: "s",
		goal:    "g",
		edges: map[string][]testEdge{
			"s": {{"a", 1}, {"g", 10}},
			"a": {{"b", 1}},
			"b": {{"g", 1}},
		},
		estimates: map[string]float64{"s": 100, "a": 100, "b": 100},
	}

	solver := NewAStar(p.heuristicFactory, WithHeuristicWeight(0))
	res := solver.SolveProblem(p)

	if !res.Found() {
		t.Fatalf("outcome = %s, want succeeded", res.Outcome)
	}
	if got := res.Final.GCost(); got != 3 {
		t.Errorf("cost = %f, want 3", got)
	}
	wantOps := []string{"go a", "go b", "go g"}
	gotOps := res.Final.OperatorPath()
	if len(gotOps) != len(wantOps) {
		t.Fatalf("path = %v, want %v", gotOps, wantOps)
	}
	for i := range wantOps {
		if gotOps[i] != wantOps[i] {
			t.Errorf("path[%d] = %q, want %q", i, gotOps[i], wantOps[i])
		}
	}
}

func TestAStarReopensClosedStateOnCheaperPath(t *testing.T) {
	// the inflated estimate on "a" makes the search close "b" through the
	// expensive direct edge first; the cheaper path through "a" must reopen
	// it, otherwise the final cost stays suboptimal
	p := &graphProblem{
		initial: "s",
		goal:    "g",
		edges: map[string][]testEdge{
			"s": {{"a", 1}, {"b", 5}},
			"a": {{"b", 1}},
			"b": {{"g", 1}},
		},
		estimates: map[string]float64{"a": 10, "g": 10},
	}

	solver := NewAStar(p.heuristicFactory, WithHeuristicWeight(0.5))
	res := solver.SolveProblem(p)

	if !res.Found() {
		t.Fatalf("outcome = %s, want succeeded", res.Outcome)
	}
	if got := res.Final.GCost(); got != 3 {
		t.Errorf("cost = %f, want 3 (reopening not applied)", got)
	}
}

func TestAStarOutcomes(t *testing.T) {
	unsolvable := &graphProblem{
		initial:   "s",
		goal:      "unreachable",
		edges:     map[string][]testEdge{"s": {{"a", 1}}, "a": {}},
		estimates: map[string]float64{},
	}

	testCases := []struct {
		name    string
		problem *graphProblem
		opts    []Option
		want    Outcome
	}{
		{
			name:    "exhausted open list is a proven no-solution",
			problem: unsolvable,
			opts:    []Option{WithHeuristicWeight(0)},
			want:    OutcomeExhausted,
		},
		{
			name:    "expansion bound reports bounded, not no-solution",
			problem: unsolvable,
			opts:    []Option{WithHeuristicWeight(0), WithMaxNrStatesToExpand(1)},
			want:    OutcomeBounded,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			solver := NewAStar(tt.problem.heuristicFactory, tt.opts...)
			res := solver.SolveProblem(tt.problem)
			if res.Outcome != tt.want {
				t.Errorf("outcome = %s, want %s", res.Outcome, tt.want)
			}
			if res.Final != nil {
				t.Errorf("final node should be nil for %s", tt.want)
			}
		})
	}
}

func TestAStarOpenCriterionPrunes(t *testing.T) {
	p := &graphProblem{
		initial: "s",
		goal:    "g",
		edges: map[string][]testEdge{
			"s": {{"forbidden", 1}, {"a", 2}},
			"a": {{"g", 1}},
			"forbidden": {{"g", 0}},
		},
		estimates: map[string]float64{},
	}

	solver := NewAStar(p.heuristicFactory,
		WithHeuristicWeight(0),
		WithOpenCriterion(func(n *Node) bool {
			return n.State().(graphState).id != "forbidden"
		}),
	)
	res := solver.SolveProblem(p)

	if !res.Found() {
		t.Fatalf("outcome = %s, want succeeded", res.Outcome)
	}
	if got := res.Final.GCost(); got != 3 {
		t.Errorf("cost = %f, want 3 (pruned state was expanded)", got)
	}
}

func TestAStarDeterministicUnderTies(t *testing.T) {
	// every 2-hop route costs the same; repeated runs must return the same
	// operator sequence
	p := &graphProblem{
		initial: "s",
		goal:    "g",
		edges: map[string][]testEdge{
			"s": {{"a", 1}, {"b", 1}, {"c", 1}},
			"a": {{"g", 1}},
			"b": {{"g", 1}},
			"c": {{"g", 1}},
		},
		estimates: map[string]float64{},
	}

	first := NewAStar(p.heuristicFactory, WithHeuristicWeight(0)).SolveProblem(p)
	if !first.Found() {
		t.Fatalf("outcome = %s, want succeeded", first.Outcome)
	}
	for i := 0; i < 5; i++ {
		res := NewAStar(p.heuristicFactory, WithHeuristicWeight(0)).SolveProblem(p)
		gotOps := res.Final.OperatorPath()
		wantOps := first.Final.OperatorPath()
		if len(gotOps) != len(wantOps) {
			t.Fatalf("run %d: path %v differs from %v", i, gotOps, wantOps)
		}
		for j := range wantOps {
			if gotOps[j] != wantOps[j] {
				t.Fatalf("run %d: path %v differs from %v", i, gotOps, wantOps)
			}
		}
	}
}

func TestAStarRejectsInvalidWeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for weight outside [0,1]")
		}
	}()
	NewAStar(func(Problem) Heuristic { return zeroTestHeuristic{} }, WithHeuristicWeight(1.5))
}

type zeroTestHeuristic struct{}

func (zeroTestHeuristic) Name() string { return "zero" }

func (zeroTestHeuristic) Estimate(_ State) float64 { return 0 }
