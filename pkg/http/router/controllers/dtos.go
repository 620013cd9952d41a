package controllers

import (
	"github.com/TaniaPewah/ambroute/pkg/ambulance"
	"github.com/TaniaPewah/ambroute/pkg/http/usecases"
)

type solveRequest struct {
	Problem             ambulance.Input `json:"problem" validate:"required"`
	Objective           string          `json:"objective" validate:"omitempty,oneof=distance tests-travel"`
	HeuristicWeight     *float64        `json:"heuristic_weight" validate:"omitempty,min=0,max=1"`
	MaxNrStatesToExpand int             `json:"max_nr_states_to_expand" validate:"omitempty,min=0"`
}

type solutionLegResponse struct {
	Operator string `json:"operator"`
	Polyline string `json:"polyline"`
}

type solveResponse struct {
	Outcome          string                `json:"outcome"`
	Solver           string                `json:"solver"`
	Legs             []solutionLegResponse `json:"legs,omitempty"`
	DistanceCost     float64               `json:"distance_cost"`
	TestsTravelCost  float64               `json:"tests_travel_cost"`
	NrExpandedStates int                   `json:"nr_expanded_states"`
}

func newSolveResponse(sol *usecases.Solution) solveResponse {
	legs := make([]solutionLegResponse, 0, len(sol.Legs))
	for _, l := range sol.Legs {
		legs = append(legs, solutionLegResponse{Operator: l.Operator, Polyline: l.Polyline})
	}
	return solveResponse{
		Outcome:          sol.Outcome,
		Solver:           sol.SolverName,
		Legs:             legs,
		DistanceCost:     sol.DistanceCost,
		TestsTravelCost:  sol.TestsTravelCost,
		NrExpandedStates: sol.NrExpandedStates,
	}
}

type distanceResponse struct {
	From     uint32  `json:"from"`
	To       uint32  `json:"to"`
	Distance float64 `json:"distance"`
	Found    bool    `json:"found"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
