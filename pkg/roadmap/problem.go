package roadmap

import (
	"fmt"
	"strconv"

	"github.com/TaniaPewah/ambroute/pkg/geo"
	"github.com/TaniaPewah/ambroute/pkg/search"
)

// routeState is a state of the point-to-point map route problem: just the
// junction the search currently stands at.
type routeState struct {
	junction JunctionID
}

func (s routeState) Key() string {
	return strconv.FormatUint(uint64(s.junction), 10)
}

// routeCost is a plain scalar distance cost in meter.
type routeCost float64

func (c routeCost) ObjectiveValue() float64 {
	return float64(c)
}

func (c routeCost) Add(other search.Cost) search.Cost {
	o, ok := other.(routeCost)
	if !ok {
		panic(fmt.Sprintf("routeCost: cannot add %T", other))
	}
	return c + o
}

// RouteProblem is the state space of a single point-to-point distance query
// over the streets map. It is solved by the same generic engine the outer
// routing problem runs on.
type RouteProblem struct {
	m        *StreetsMap
	src, dst JunctionID
}

func NewRouteProblem(m *StreetsMap, src, dst JunctionID) *RouteProblem {
	return &RouteProblem{m: m, src: src, dst: dst}
}

func (p *RouteProblem) Name() string {
	return fmt.Sprintf("map-route(%d->%d)", p.src, p.dst)
}

func (p *RouteProblem) InitialState() search.State {
	return routeState{junction: p.src}
}

func (p *RouteProblem) IsGoal(state search.State) bool {
	return state.(routeState).junction == p.dst
}

func (p *RouteProblem) ExpandState(state search.State, yield func(search.OperatorResult) bool) {
	s := state.(routeState)
	stop := false
	p.m.ForLinksOf(s.junction, func(l Link) {
		if stop {
			return
		}
		op := search.OperatorResult{
			Successor: routeState{junction: l.To},
			Cost:      routeCost(l.Length),
			Operator:  fmt.Sprintf("drive to %d", l.To),
		}
		if !yield(op) {
			stop = true
		}
	})
}

func (p *RouteProblem) ZeroCost() search.Cost {
	return routeCost(0)
}

// AirDistHeuristic estimates the remaining distance to the query target by
// great-circle distance, which never overestimates a road route.
func AirDistHeuristic(problem search.Problem) search.Heuristic {
	p, ok := problem.(*RouteProblem)
	if !ok {
		panic(fmt.Sprintf("AirDistHeuristic: unexpected problem type %T", problem))
	}
	return &airDistHeuristic{p: p}
}

type airDistHeuristic struct {
	p *RouteProblem
}

func (h *airDistHeuristic) Name() string {
	return "air-dist"
}

func (h *airDistHeuristic) Estimate(state search.State) float64 {
	s := state.(routeState)
	from, ok := h.p.m.Junction(s.junction)
	if !ok {
		return 0
	}
	to, ok := h.p.m.Junction(h.p.dst)
	if !ok {
		return 0
	}
	return geo.AirDistance(from.Coord, to.Coord)
}
