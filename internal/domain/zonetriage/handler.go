package zonetriage

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/intake/internal/platform/auth"
)

type Handler struct {
	triage *Triage
}

func NewHandler(t *Triage) *Handler {
	return &Handler{triage: t}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RolePatient, auth.RoleClinician))
	g.POST("/pain-assessment", h.AssessPainPoints)
}

type PainAssessmentRequest struct {
	Points []PainPoint `json:"points"`
}

func (h *Handler) AssessPainPoints(c echo.Context) error {
	var req PainAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	for _, p := range req.Points {
		if p.Intensity < 0 || p.Intensity > 10 {
			return echo.NewHTTPError(http.StatusBadRequest, "intensity must be between 0 and 10")
		}
	}
	return c.JSON(http.StatusOK, h.triage.AssessPainPoints(req.Points))
}
