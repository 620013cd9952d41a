package main

import (
	"flag"
	"fmt"

	"github.com/TaniaPewah/ambroute/pkg/ambulance"
	"github.com/TaniaPewah/ambroute/pkg/logger"
	"github.com/TaniaPewah/ambroute/pkg/roadmap"
	"github.com/TaniaPewah/ambroute/pkg/search"
	"github.com/TaniaPewah/ambroute/pkg/spatialindex"
	"go.uber.org/zap"
)

var (
	junctionsPath = flag.String("junctions", "./data/junctions.csv", "junctions CSV file (id,lat,lon)")
	linksPath     = flag.String("links", "./data/links.csv", "links CSV file (from,to,length_meters)")
	problemPath   = flag.String("problem", "./data/problem.json", "problem input JSON file")
	objectiveFlag = flag.String("objective", "distance", "optimization objective: distance or tests-travel")
	weight        = flag.Float64("weight", 0.5, "heuristic weight in [0,1]; 0 is uniform-cost, 1 is greedy")
	maxExpand     = flag.Int("max_expand", 0, "bound on expanded states; 0 means unbounded")
)

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	streetsMap, err := roadmap.LoadFromCSV(*junctionsPath, *linksPath)
	if err != nil {
		log.Fatal("load streets map", zap.Error(err))
	}
	log.Info("streets map loaded", zap.Int("junctions", streetsMap.NumberOfJunctions()))

	input, err := ambulance.LoadInput(*problemPath)
	if err != nil {
		log.Fatal("load problem input", zap.Error(err))
	}

	objective, err := ambulance.ParseObjective(*objectiveFlag)
	if err != nil {
		log.Fatal("parse objective", zap.Error(err))
	}

	index := spatialindex.NewRtree()
	index.Build(streetsMap, log)
	if err := input.ResolveJunctions(func(lat, lon float64) (roadmap.JunctionID, bool) {
		return index.NearestJunction(streetsMap, lat, lon)
	}); err != nil {
		log.Fatal("resolve site junctions", zap.Error(err))
	}

	finder := roadmap.NewCachedDistanceFinder(streetsMap)
	problem := ambulance.NewProblem(input, finder, objective)

	factory := ambulance.ZeroHeuristic
	if objective == ambulance.ObjectiveDistance {
		factory = ambulance.NewMaxAirDistHeuristicFactory(streetsMap)
	}

	solver := search.NewAStar(factory,
		search.WithHeuristicWeight(*weight),
		search.WithMaxNrStatesToExpand(*maxExpand),
	)

	res := solver.SolveProblem(problem)
	log.Info("solve finished",
		zap.String("problem", problem.Name()),
		zap.String("solver", res.SolverName),
		zap.String("outcome", res.Outcome.String()),
		zap.Int("expanded", res.NrExpandedStates),
	)

	switch res.Outcome {
	case search.OutcomeSucceeded:
		cost := res.Final.Cost().(ambulance.Cost)
		fmt.Printf("solution (%s):\n", cost)
		for i, op := range res.Final.OperatorPath() {
			fmt.Printf("  %2d. %s\n", i+1, op)
		}
	case search.OutcomeExhausted:
		fmt.Println("no solution: the search space was exhausted")
	case search.OutcomeBounded:
		fmt.Printf("no solution found within the bound of %d expansions\n", *maxExpand)
	}
}
