package ambulance

import (
	"fmt"

	base "github.com/TaniaPewah/ambroute/pkg"
	"github.com/TaniaPewah/ambroute/pkg/roadmap"
	"github.com/TaniaPewah/ambroute/pkg/search"
)

// DistanceFinder is the point-to-point shortest-distance lookup the operator
// cost function queries. found=false signals that no route exists.
type DistanceFinder interface {
	GetDistance(from, to roadmap.JunctionID) (float64, bool)
}

// Problem is the ambulance routing state space: collect tests from pickup
// sites under capacity and resource constraints and transfer them to
// laboratory drop-off sites.
type Problem struct {
	input     *Input
	distances DistanceFinder
	objective OptimizationObjective

	initial State
}

func NewProblem(input *Input, distances DistanceFinder, objective OptimizationObjective) *Problem {
	return &Problem{
		input:     input,
		distances: distances,
		objective: objective,
		initial:   newInitialState(input.Ambulance.InitialResourceUnits),
	}
}

func (p *Problem) Name() string {
	return fmt.Sprintf("ambulance(%s(%d):%s)", p.input.Name, len(p.input.PickupSites), p.objective)
}

func (p *Problem) Input() *Input {
	return p.input
}

func (p *Problem) Objective() OptimizationObjective {
	return p.objective
}

func (p *Problem) InitialState() search.State {
	return p.initial
}

func (p *Problem) ZeroCost() search.Cost {
	return Cost{Objective: p.objective}
}

// JunctionOf resolves a state's current site to its physical junction.
func (p *Problem) JunctionOf(s State) roadmap.JunctionID {
	switch s.kind {
	case sitePickup:
		return p.input.PickupJunction(s.siteIndex)
	case siteDropoff:
		return p.input.DropoffJunction(s.siteIndex)
	}
	return roadmap.JunctionID(p.input.Ambulance.InitialJunction)
}

// TestsAboard is the total number of tests currently stored on the
// ambulance: the sum of demands of the pending-onboard sites.
func (p *Problem) TestsAboard(s State) int {
	total := 0
	for _, i := range s.pendingOnboard {
		total += p.input.PickupSites[i].Demand
	}
	return total
}

// pickupsWaiting returns the pickup-site indexes not yet visited, in input
// order.
func (p *Problem) pickupsWaiting(s State) []int {
	waiting := make([]int, 0, len(p.input.PickupSites))
	for i := range p.input.PickupSites {
		if !s.pendingOnboard.Contains(i) && !s.delivered.Contains(i) {
			waiting = append(waiting, i)
		}
	}
	return waiting
}

// ExpandState yields the applicable operators of a state: visiting a waiting
// pickup site when resource and capacity allow it, and visiting a drop-off
// site when it is unvisited or there are tests aboard. A successor with
// negative resource is never constructed.
func (p *Problem) ExpandState(state search.State, yield func(search.OperatorResult) bool) {
	s := state.(State)

	for _, i := range p.pickupsWaiting(s) {
		site := p.input.PickupSites[i]

		newResource := s.resourceUnits - site.Demand
		remainingCapacity := p.input.Ambulance.Capacity - p.TestsAboard(s)
		if newResource < 0 || site.Demand > remainingCapacity {
			continue
		}

		succ := State{
			kind:            sitePickup,
			siteIndex:       i,
			pendingOnboard:  s.pendingOnboard.With(i),
			delivered:       s.delivered,
			resourceUnits:   newResource,
			visitedDropoffs: s.visitedDropoffs,
		}
		op := search.OperatorResult{
			Successor: succ,
			Cost:      p.operatorCost(s, succ),
			Operator:  "visit " + site.Name,
		}
		if !yield(op) {
			return
		}
	}

	for i, lab := range p.input.DropoffSites {
		visited := s.visitedDropoffs.Contains(i)
		if visited && s.pendingOnboard.IsEmpty() {
			continue
		}

		newResource := s.resourceUnits
		newVisited := s.visitedDropoffs
		if !visited {
			// resource units are replenished on the first visit only
			newResource += lab.Supply
			newVisited = newVisited.With(i)
		}

		succ := State{
			kind:            siteDropoff,
			siteIndex:       i,
			pendingOnboard:  newSiteSet(),
			delivered:       s.delivered.Union(s.pendingOnboard),
			resourceUnits:   newResource,
			visitedDropoffs: newVisited,
		}
		op := search.OperatorResult{
			Successor: succ,
			Cost:      p.operatorCost(s, succ),
			Operator:  "go to lab " + lab.Name,
		}
		if !yield(op) {
			return
		}
	}
}

// operatorCost prices the transition between two states. The secondary
// component weights the driven distance by the tests aboard before the move.
// An unreachable pair costs infinity on both components, which makes the
// node never preferable over any reachable one.
func (p *Problem) operatorCost(prev, succ State) Cost {
	dist, found := p.distances.GetDistance(p.JunctionOf(prev), p.JunctionOf(succ))
	if !found {
		return NewCost(base.INF_WEIGHT, base.INF_WEIGHT, p.objective)
	}
	return NewCost(dist, float64(p.TestsAboard(prev))*dist, p.objective)
}

// IsGoal holds when the ambulance stands at a drop-off site, every pickup
// site's tests are delivered, nothing is left aboard, the resource count is
// non-negative and only known drop-off sites were visited.
func (p *Problem) IsGoal(state search.State) bool {
	s := state.(State)
	return s.kind == siteDropoff &&
		s.delivered.Len() == len(p.input.PickupSites) &&
		s.pendingOnboard.IsEmpty() &&
		s.resourceUnits >= 0 &&
		s.visitedDropoffs.Len() <= len(p.input.DropoffSites)
}

// CertainRemainingJunctions returns the junctions any remaining route must
// still touch: the current location plus every pickup site not yet visited,
// ascending by junction id. Heuristics lower-bound the remaining cost over
// this set.
func (p *Problem) CertainRemainingJunctions(s State) []roadmap.JunctionID {
	waiting := p.pickupsWaiting(s)
	seen := map[roadmap.JunctionID]struct{}{p.JunctionOf(s): {}}
	out := []roadmap.JunctionID{p.JunctionOf(s)}
	for _, i := range waiting {
		j := p.input.PickupJunction(i)
		if _, ok := seen[j]; ok {
			continue
		}
		seen[j] = struct{}{}
		out = append(out, j)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
