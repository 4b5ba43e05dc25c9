package questionnaire

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/intake/internal/platform/auth"
)

type Handler struct {
	engine *Engine
}

func NewHandler(e *Engine) *Handler {
	return &Handler{engine: e}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RolePatient, auth.RoleClinician))
	g.POST("/questions", h.GenerateQuestions)
	g.POST("/triage-score", h.TriageScore)
}

type QuestionsRequest struct {
	ZoneID  string  `json:"zone_id"`
	Answers Answers `json:"answers"`
}

type QuestionsResponse struct {
	Bank      string     `json:"bank,omitempty"`
	Questions []Question `json:"questions"`
	Next      *Question  `json:"next,omitempty"`
}

func (h *Handler) GenerateQuestions(c echo.Context) error {
	var req QuestionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Answers == nil {
		req.Answers = Answers{}
	}
	return c.JSON(http.StatusOK, QuestionsResponse{
		Bank:      h.engine.BankFor(req.ZoneID),
		Questions: h.engine.GenerateQuestions(req.ZoneID, req.Answers),
		Next:      h.engine.NextQuestion(req.ZoneID, req.Answers),
	})
}

type TriageScoreRequest struct {
	ZoneID  string  `json:"zone_id,omitempty"`
	Answers Answers `json:"answers"`
}

type TriageScoreResponse struct {
	RedFlags []Flag `json:"red_flags"`
	Score    int    `json:"score"`
}

func (h *Handler) TriageScore(c echo.Context) error {
	var req TriageScoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Answers) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "answers is required")
	}
	flags := h.engine.EvaluateRedFlags(req.Answers)
	if req.ZoneID != "" {
		flags = append(flags, h.engine.EvaluateQuestionFlags(h.engine.GenerateQuestions(req.ZoneID, req.Answers), req.Answers)...)
		SortFlags(flags)
	}
	return c.JSON(http.StatusOK, TriageScoreResponse{RedFlags: flags, Score: CalculateTriageScore(req.Answers, flags)})
}
