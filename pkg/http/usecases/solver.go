package usecases

import (
	"time"

	"github.com/TaniaPewah/ambroute/pkg/ambulance"
	"github.com/TaniaPewah/ambroute/pkg/geo"
	"github.com/TaniaPewah/ambroute/pkg/roadmap"
	"github.com/TaniaPewah/ambroute/pkg/search"
	"github.com/TaniaPewah/ambroute/pkg/spatialindex"
	"github.com/TaniaPewah/ambroute/pkg/util"
	"go.uber.org/zap"
)

type SolveOptions struct {
	Objective           ambulance.OptimizationObjective
	HeuristicWeight     float64
	MaxNrStatesToExpand int
}

type SolutionLeg struct {
	Operator string
	// Polyline encodes the leg's endpoint coordinates
	Polyline string
}

type Solution struct {
	Outcome          string
	Legs             []SolutionLeg
	DistanceCost     float64
	TestsTravelCost  float64
	NrExpandedStates int
	SolverName       string
}

type SolverService struct {
	log    *zap.Logger
	m      *roadmap.StreetsMap
	finder *roadmap.CachedDistanceFinder
	index  *spatialindex.Rtree
}

func NewSolverService(log *zap.Logger, m *roadmap.StreetsMap, finder *roadmap.CachedDistanceFinder,
	index *spatialindex.Rtree) *SolverService {
	return &SolverService{
		log:    log,
		m:      m,
		finder: finder,
		index:  index,
	}
}

// Solve runs one weighted-A* session over the given problem input.
// Exhausted and bounded runs are reported through Solution.Outcome, they are
// not errors.
func (ss *SolverService) Solve(input *ambulance.Input, opts SolveOptions) (*Solution, error) {
	if err := input.ResolveJunctions(ss.snap); err != nil {
		return nil, err
	}
	if err := ss.checkJunctions(input); err != nil {
		return nil, err
	}

	problem := ambulance.NewProblem(input, ss.finder, opts.Objective)

	// max-air-dist is admissible for the distance objective only
	factory := ambulance.ZeroHeuristic
	if opts.Objective == ambulance.ObjectiveDistance {
		factory = ambulance.NewMaxAirDistHeuristicFactory(ss.m)
	}

	solver := search.NewAStar(factory,
		search.WithHeuristicWeight(opts.HeuristicWeight),
		search.WithMaxNrStatesToExpand(opts.MaxNrStatesToExpand),
	)

	start := time.Now()
	res := solver.SolveProblem(problem)
	elapsed := time.Since(start)

	ss.log.Info("solve finished",
		zap.String("problem", problem.Name()),
		zap.String("solver", res.SolverName),
		zap.String("outcome", res.Outcome.String()),
		zap.Int("expanded", res.NrExpandedStates),
		zap.Duration("took", elapsed),
	)

	sol := &Solution{
		Outcome:          res.Outcome.String(),
		NrExpandedStates: res.NrExpandedStates,
		SolverName:       res.SolverName,
	}
	if !res.Found() {
		return sol, nil
	}

	cost := res.Final.Cost().(ambulance.Cost)
	sol.DistanceCost = cost.DistanceCost
	sol.TestsTravelCost = cost.TestsTravelCost
	sol.Legs = ss.buildLegs(problem, res.Final)
	return sol, nil
}

// Distance exposes the memoized point-to-point lookup.
func (ss *SolverService) Distance(from, to uint32) (float64, bool) {
	return ss.finder.GetDistance(roadmap.JunctionID(from), roadmap.JunctionID(to))
}

func (ss *SolverService) snap(lat, lon float64) (roadmap.JunctionID, bool) {
	return ss.index.NearestJunction(ss.m, lat, lon)
}

func (ss *SolverService) checkJunctions(input *ambulance.Input) error {
	check := func(j uint32, name string) error {
		if !ss.m.HasJunction(roadmap.JunctionID(j)) {
			return util.WrapErrorf(nil, util.ErrBadParamInput, "site %q references unknown junction %d", name, j)
		}
		return nil
	}
	if err := check(input.Ambulance.InitialJunction, "ambulance"); err != nil {
		return err
	}
	for _, s := range input.PickupSites {
		if err := check(s.Junction, s.Name); err != nil {
			return err
		}
	}
	for _, s := range input.DropoffSites {
		if err := check(s.Junction, s.Name); err != nil {
			return err
		}
	}
	return nil
}

func (ss *SolverService) buildLegs(problem *ambulance.Problem, final *search.Node) []SolutionLeg {
	states := final.StatePath()
	ops := final.OperatorPath()

	legs := make([]SolutionLeg, 0, len(ops))
	for i, op := range ops {
		fromJ, _ := ss.m.Junction(problem.JunctionOf(states[i].(ambulance.State)))
		toJ, _ := ss.m.Junction(problem.JunctionOf(states[i+1].(ambulance.State)))
		legs = append(legs, SolutionLeg{
			Operator: op,
			Polyline: geo.PolylineFromCoords([]geo.Coordinate{fromJ.Coord, toJ.Coord}),
		})
	}
	return legs
}

// WarmDistanceCache pre-computes the pairwise site distances with a worker
// pool so later solves hit a warm cache.
func (ss *SolverService) WarmDistanceCache(input *ambulance.Input, numWorkers int) {
	junctions := make([]roadmap.JunctionID, 0, 1+len(input.PickupSites)+len(input.DropoffSites))
	junctions = append(junctions, roadmap.JunctionID(input.Ambulance.InitialJunction))
	for i := range input.PickupSites {
		junctions = append(junctions, input.PickupJunction(i))
	}
	for i := range input.DropoffSites {
		junctions = append(junctions, input.DropoffJunction(i))
	}

	warmDistanceCache(ss.finder, junctions, numWorkers)
	ss.log.Info("distance cache warmed",
		zap.Int("sites", len(junctions)),
		zap.Int("cached_pairs", ss.finder.CacheSize()),
	)
}
