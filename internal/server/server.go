package server

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/fincast/portfolio-calculator/internal/calculation"
	"github.com/fincast/portfolio-calculator/internal/domain"
)

// Server exposes the projection engine over HTTP. It holds no per-request
// state; every request is one independent engine invocation.
type Server struct {
	Engine *calculation.ProjectionEngine
}

// New creates a server backed by a fresh engine.
func New() *Server {
	return &Server{Engine: calculation.NewProjectionEngine()}
}

// GoalRequest is the body of POST /v1/goal.
type GoalRequest struct {
	GoalMode       domain.GoalMode  `json:"goal_mode"`
	MonthlyExpense *decimal.Decimal `json:"monthly_expense,omitempty"`
	SafeRate       decimal.Decimal  `json:"safe_rate"`
	CurrentAge     int              `json:"current_age"`
}

// GoalResponse is the body returned by POST /v1/goal. Goal is null when no
// goal was requested.
type GoalResponse struct {
	Goal *domain.Goal `json:"goal"`
}

// ProjectionResponse is the body returned by POST /v1/projection.
type ProjectionResponse struct {
	domain.ProjectionResult
	Summary *domain.ScenarioSummary `json:"summary"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handler returns the fasthttp request handler for all routes.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "only POST is supported")
			return
		}
		switch string(ctx.Path()) {
		case "/v1/goal":
			s.handleGoal(ctx)
		case "/v1/projection":
			s.handleProjection(ctx)
		default:
			writeError(ctx, fasthttp.StatusNotFound, "unknown path")
		}
	}
}

func validGoalMode(mode domain.GoalMode) bool {
	switch mode {
	case "", domain.GoalModeNone, domain.GoalModeFreedom, domain.GoalModePension:
		return true
	default:
		return false
	}
}

func (s *Server) handleGoal(ctx *fasthttp.RequestCtx) {
	var req GoalRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !validGoalMode(req.GoalMode) {
		writeError(ctx, fasthttp.StatusBadRequest, "unknown goal mode "+string(req.GoalMode))
		return
	}

	goal, err := calculation.ComputeGoal(req.GoalMode, req.MonthlyExpense, req.SafeRate, req.CurrentAge)
	if err != nil {
		writeError(ctx, statusForEngineError(err), err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, GoalResponse{Goal: goal})
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	var params domain.ProjectionParameters
	if err := json.Unmarshal(ctx.PostBody(), &params); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !validGoalMode(params.GoalMode) {
		writeError(ctx, fasthttp.StatusBadRequest, "unknown goal mode "+string(params.GoalMode))
		return
	}

	scenario := &domain.Scenario{Name: "request", ProjectionParameters: params}
	summary, err := s.Engine.RunScenario(ctx, scenario)
	if err != nil {
		writeError(ctx, statusForEngineError(err), err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, ProjectionResponse{
		ProjectionResult: summary.Result,
		Summary:          summary,
	})
}

// statusForEngineError maps the engine's precondition failures to 422; only
// genuinely unexpected errors become 500s.
func statusForEngineError(err error) int {
	switch {
	case errors.Is(err, calculation.ErrInvalidRate),
		errors.Is(err, calculation.ErrInvalidHorizon),
		errors.Is(err, calculation.ErrMissingExpense):
		return fasthttp.StatusUnprocessableEntity
	default:
		return fasthttp.StatusInternalServerError
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(body); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
