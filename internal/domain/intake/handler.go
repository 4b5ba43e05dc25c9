package intake

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/platform/auth"
	"github.com/ehr/intake/pkg/pagination"
)

type Handler struct {
	svc         *Service
	defaultLang anatomy.Language
}

func NewHandler(svc *Service, defaultLang anatomy.Language) *Handler {
	return &Handler{svc: svc, defaultLang: defaultLang}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	patient := api.Group("", auth.RequireRole(auth.RolePatient, auth.RoleClinician))
	patient.POST("/intake-sessions", h.StartSession)
	patient.GET("/intake-sessions/:id", h.GetSession)
	patient.POST("/intake-sessions/:id/answers", h.AnswerSession)
	patient.POST("/intake-sessions/:id/back", h.BackSession)
	patient.DELETE("/intake-sessions/:id", h.CancelSession)

	clinician := api.Group("", auth.RequireRole(auth.RoleClinician))
	clinician.GET("/intake-records", h.ListRecords)
	clinician.GET("/intake-records/:id", h.GetRecord)
}

// SessionView is the client-facing projection of an encounter.
type SessionView struct {
	ID        uuid.UUID               `json:"id"`
	Phase     encounter.Phase         `json:"phase"`
	Progress  encounter.Progress      `json:"progress"`
	Pending   *encounter.Prompt       `json:"pending,omitempty"`
	Answered  int                     `json:"answered"`
	CanGoBack bool                    `json:"can_go_back"`
	Alerts    []encounter.Alert       `json:"alerts"`
	Note      *encounter.ClinicalNote `json:"note,omitempty"`
	Result    *encounter.IntakeResult `json:"result,omitempty"`
}

func NewSessionView(enc *encounter.Encounter) SessionView {
	return SessionView{
		ID:        enc.ID,
		Phase:     enc.Phase,
		Progress:  encounter.ProgressFor(enc.Phase, ""),
		Pending:   enc.Pending,
		Answered:  len(enc.NavigationStack),
		CanGoBack: !enc.IsComplete() && len(enc.NavigationStack) > 0,
		Alerts:    enc.Alerts,
		Note:      enc.Note,
		Result:    enc.Result,
	}
}

type StartRequest struct {
	Language string `json:"language"`
}

type AnswerRequest struct {
	PromptID string `json:"prompt_id"`
	Answer   string `json:"answer"`
}

func (h *Handler) StartSession(c echo.Context) error {
	var req StartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lang := h.defaultLang
	if req.Language != "" {
		l, ok := anatomy.ParseLanguage(req.Language)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "unsupported language")
		}
		lang = l
	}
	enc, err := h.svc.Start(c.Request().Context(), lang)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, NewSessionView(enc))
}

func (h *Handler) GetSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	enc, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return sessionError(err)
	}
	return c.JSON(http.StatusOK, NewSessionView(enc))
}

func (h *Handler) AnswerSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	enc, err := h.svc.Answer(c.Request().Context(), id, req.PromptID, req.Answer)
	if err != nil {
		return sessionError(err)
	}
	return c.JSON(http.StatusOK, NewSessionView(enc))
}

func (h *Handler) BackSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	enc, err := h.svc.Back(c.Request().Context(), id)
	if err != nil {
		return sessionError(err)
	}
	return c.JSON(http.StatusOK, NewSessionView(enc))
}

func (h *Handler) CancelSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Cancel(c.Request().Context(), id); err != nil {
		return sessionError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func sessionError(err error) error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "intake session not found")
	case errors.Is(err, ErrInvalidAnswer):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSessionComplete), errors.Is(err, ErrNothingToUndo), errors.Is(err, ErrPromptMismatch):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

var recordFilters = []string{"triage_level", "specialty", "emergency", "complaint", "since"}

func (h *Handler) ListRecords(c echo.Context) error {
	pg := pagination.FromContext(c)
	params := map[string]string{}
	for _, k := range recordFilters {
		if v := c.QueryParam(k); v != "" {
			params[k] = v
		}
	}
	items, total, err := h.svc.SearchRecords(c.Request().Context(), params, pg.Limit, pg.Offset)
	if errors.Is(err, ErrRecordsDisabled) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset).WithLinks(c))
}

func (h *Handler) GetRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.GetRecord(c.Request().Context(), id)
	if errors.Is(err, ErrRecordsDisabled) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "intake record not found")
	}
	return c.JSON(http.StatusOK, rec)
}
