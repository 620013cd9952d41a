package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/TaniaPewah/ambroute/pkg/ambulance"
	helper "github.com/TaniaPewah/ambroute/pkg/http/router/routerhelper"
	"github.com/TaniaPewah/ambroute/pkg/http/usecases"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type solverAPI struct {
	solverService SolverService
	log           *zap.Logger
}

func New(solverService SolverService, log *zap.Logger) *solverAPI {
	return &solverAPI{
		solverService: solverService,
		log:           log,
	}
}

func (api *solverAPI) Routes(group *helper.RouteGroup) {
	group.POST("/solve", api.solve)
	group.GET("/distance", api.distance)
}

func (api *solverAPI) solve(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request solveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	objective := ambulance.ObjectiveDistance
	if request.Objective != "" {
		var err error
		objective, err = ambulance.ParseObjective(request.Objective)
		if err != nil {
			api.BadRequestResponse(w, r, err)
			return
		}
	}

	weight := 0.5
	if request.HeuristicWeight != nil {
		weight = *request.HeuristicWeight
	}

	input := request.Problem
	if err := input.Validate(); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	sol, err := api.solverService.Solve(&input, usecases.SolveOptions{
		Objective:           objective,
		HeuristicWeight:     weight,
		MaxNrStatesToExpand: request.MaxNrStatesToExpand,
	})
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": newSolveResponse(sol)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *solverAPI) distance(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()

	from, err := strconv.ParseUint(query.Get("from"), 10, 32)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("from is required and must be a valid junction id"))
		return
	}
	to, err := strconv.ParseUint(query.Get("to"), 10, 32)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("to is required and must be a valid junction id"))
		return
	}

	dist, found := api.solverService.Distance(uint32(from), uint32(to))

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": distanceResponse{
		From:     uint32(from),
		To:       uint32(to),
		Distance: dist,
		Found:    found,
	}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
