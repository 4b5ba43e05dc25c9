package pattern

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/intake/internal/platform/auth"
)

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(a *Analyzer) *Handler {
	return &Handler{analyzer: a}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RolePatient, auth.RoleClinician))
	g.POST("/analysis", h.Analyze)
}

type AnalyzeRequest struct {
	Zones    []string `json:"zones"`
	Symptoms []string `json:"symptoms"`
}

func (h *Handler) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Zones) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "zones is required")
	}
	return c.JSON(http.StatusOK, h.analyzer.Analyze(req.Zones, req.Symptoms))
}
