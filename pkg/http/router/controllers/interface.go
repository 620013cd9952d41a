package controllers

import (
	"github.com/TaniaPewah/ambroute/pkg/ambulance"
	"github.com/TaniaPewah/ambroute/pkg/http/usecases"
)

type SolverService interface {
	Solve(input *ambulance.Input, opts usecases.SolveOptions) (*usecases.Solution, error)
	Distance(from, to uint32) (float64, bool)
}
