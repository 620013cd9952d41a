package ambulance

import (
	"fmt"

	"github.com/TaniaPewah/ambroute/pkg/geo"
	"github.com/TaniaPewah/ambroute/pkg/roadmap"
	"github.com/TaniaPewah/ambroute/pkg/search"
)

// ZeroHeuristic estimates zero everywhere, degenerating weighted A* into
// uniform-cost search.
func ZeroHeuristic(_ search.Problem) search.Heuristic {
	return zeroHeuristic{}
}

type zeroHeuristic struct{}

func (zeroHeuristic) Name() string { return "zero" }

func (zeroHeuristic) Estimate(_ search.State) float64 { return 0 }

// NewMaxAirDistHeuristicFactory builds the max-air-distance heuristic: the
// largest great-circle distance between any two junctions the remaining
// route must still touch. The route has to span that pair, so the estimate
// never overestimates the remaining driven distance.
//
// Admissible for the distance objective only.
func NewMaxAirDistHeuristicFactory(m *roadmap.StreetsMap) search.HeuristicFactory {
	return func(problem search.Problem) search.Heuristic {
		p, ok := problem.(*Problem)
		if !ok {
			panic(fmt.Sprintf("max-air-dist heuristic: unexpected problem type %T", problem))
		}
		return &maxAirDistHeuristic{m: m, p: p}
	}
}

type maxAirDistHeuristic struct {
	m *roadmap.StreetsMap
	p *Problem
}

func (h *maxAirDistHeuristic) Name() string { return "max-air-dist" }

func (h *maxAirDistHeuristic) Estimate(state search.State) float64 {
	s := state.(State)
	junctions := h.p.CertainRemainingJunctions(s)
	if len(junctions) < 2 {
		return 0
	}

	coords := make([]geo.Coordinate, 0, len(junctions))
	for _, id := range junctions {
		j, ok := h.m.Junction(id)
		if !ok {
			continue
		}
		coords = append(coords, j.Coord)
	}

	maxDist := 0.0
	for i := 0; i < len(coords); i++ {
		for j := i + 1; j < len(coords); j++ {
			if d := geo.AirDistance(coords[i], coords[j]); d > maxDist {
				maxDist = d
			}
		}
	}
	return maxDist
}
