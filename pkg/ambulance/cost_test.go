package ambulance

import (
	"testing"

	"github.com/TaniaPewah/ambroute/pkg/search"
)

func TestCostObjectiveSelection(t *testing.T) {
	testCases := []struct {
		name string
		cost Cost
		want float64
	}{
		{
			name: "distance objective selects the distance component",
			cost: NewCost(100, 700, ObjectiveDistance),
			want: 100,
		},
		{
			name: "tests-travel objective selects the weighted component",
			cost: NewCost(100, 700, ObjectiveTestsTravel),
			want: 700,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cost.ObjectiveValue(); got != tt.want {
				t.Errorf("ObjectiveValue() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCostAdditionIsComponentWise(t *testing.T) {
	a := NewCost(10, 20, ObjectiveDistance)
	b := NewCost(1, 2, ObjectiveDistance)
	c := NewCost(100, 200, ObjectiveDistance)

	sum := a.Add(b).(Cost)
	if sum.DistanceCost != 11 || sum.TestsTravelCost != 22 {
		t.Errorf("a+b = %v", sum)
	}

	// commutative and associative per component
	ab := a.Add(b).(Cost)
	ba := b.Add(a).(Cost)
	if ab != ba {
		t.Errorf("a+b = %v, b+a = %v", ab, ba)
	}
	abc1 := a.Add(b).(Cost).Add(c).(Cost)
	abc2 := a.Add(b.Add(c)).(Cost)
	if abc1 != abc2 {
		t.Errorf("(a+b)+c = %v, a+(b+c) = %v", abc1, abc2)
	}
}

func TestCostAdditionMismatchedObjectivesPanics(t *testing.T) {
	a := NewCost(1, 1, ObjectiveDistance)
	b := NewCost(1, 1, ObjectiveTestsTravel)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on mismatched objectives")
		}
	}()
	a.Add(b)
}

func TestCostAdditionForeignTypePanics(t *testing.T) {
	a := NewCost(1, 1, ObjectiveDistance)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on foreign cost type")
		}
	}()
	a.Add(foreignCost{})
}

type foreignCost struct{}

func (foreignCost) ObjectiveValue() float64 { return 0 }

func (foreignCost) Add(other search.Cost) search.Cost { return foreignCost{} }
