package ambulance

import (
	"fmt"

	"github.com/TaniaPewah/ambroute/pkg/search"
)

// OptimizationObjective selects which cost component the solver minimizes.
type OptimizationObjective uint8

const (
	// ObjectiveDistance minimizes total driven distance.
	ObjectiveDistance OptimizationObjective = iota
	// ObjectiveTestsTravel minimizes the tests-aboard-weighted travel
	// distance: every meter driven costs one unit per test currently aboard.
	ObjectiveTestsTravel
)

func (o OptimizationObjective) String() string {
	switch o {
	case ObjectiveDistance:
		return "distance"
	case ObjectiveTestsTravel:
		return "tests-travel"
	}
	return fmt.Sprintf("objective(%d)", uint8(o))
}

// ParseObjective maps a config string to an objective.
func ParseObjective(s string) (OptimizationObjective, error) {
	switch s {
	case "distance":
		return ObjectiveDistance, nil
	case "tests-travel":
		return ObjectiveTestsTravel, nil
	}
	return 0, fmt.Errorf("unknown optimization objective %q", s)
}

// Cost is the extended cost of the ambulance problem: both components are
// always accumulated, the objective tag picks the one the engine orders on.
type Cost struct {
	DistanceCost    float64
	TestsTravelCost float64
	Objective       OptimizationObjective
}

func NewCost(distance, testsTravel float64, objective OptimizationObjective) Cost {
	return Cost{
		DistanceCost:    distance,
		TestsTravelCost: testsTravel,
		Objective:       objective,
	}
}

func (c Cost) ObjectiveValue() float64 {
	if c.Objective == ObjectiveDistance {
		return c.DistanceCost
	}
	return c.TestsTravelCost
}

// Add sums component-wise. Adding costs of mismatched objectives is a bug in
// the problem model; fail loudly instead of producing a wrong ordering.
func (c Cost) Add(other search.Cost) search.Cost {
	o, ok := other.(Cost)
	if !ok {
		panic(fmt.Sprintf("ambulance.Cost: cannot add %T", other))
	}
	if o.Objective != c.Objective {
		panic(fmt.Sprintf("ambulance.Cost: mismatched objectives %s and %s", c.Objective, o.Objective))
	}
	return Cost{
		DistanceCost:    c.DistanceCost + o.DistanceCost,
		TestsTravelCost: c.TestsTravelCost + o.TestsTravelCost,
		Objective:       c.Objective,
	}
}

func (c Cost) String() string {
	return fmt.Sprintf("Cost(dist=%.3fm, tests-travel=%.3fm)", c.DistanceCost, c.TestsTravelCost)
}
