package anatomy

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/intake/internal/platform/auth"
)

type Handler struct {
	reg         *Registry
	defaultLang Language
}

func NewHandler(reg *Registry, defaultLang Language) *Handler {
	if defaultLang == "" {
		defaultLang = LanguageEnglish
	}
	return &Handler{reg: reg, defaultLang: defaultLang}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole(auth.RolePatient, auth.RoleClinician, auth.RoleAdmin))
	g.GET("/zones", h.ListZones)
	g.GET("/zones/:id", h.GetZone)
	g.GET("/zones/:id/children", h.GetChildren)
	g.GET("/zones/:id/path", h.GetPath)
	g.GET("/zones/:id/related", h.GetRelated)
}

// ZoneView is a zone with its label resolved for one language.
type ZoneView struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Category Category         `json:"category"`
	Systems  []System         `json:"systems"`
	ParentID string           `json:"parent_id,omitempty"`
	ChildIDs []string         `json:"child_ids,omitempty"`
	Terminal bool             `json:"terminal"`
	Clinical *ClinicalContext `json:"clinical_context,omitempty"`
}

func NewZoneView(z *Zone, lang Language) ZoneView {
	return ZoneView{
		ID:       z.ID,
		Label:    z.Label(lang),
		Category: z.Category,
		Systems:  z.Systems,
		ParentID: z.ParentID,
		ChildIDs: z.ChildIDs,
		Terminal: z.Terminal,
		Clinical: z.Clinical,
	}
}

func views(zones []*Zone, lang Language) []ZoneView {
	out := make([]ZoneView, 0, len(zones))
	for _, z := range zones {
		out = append(out, NewZoneView(z, lang))
	}
	return out
}

func (h *Handler) lang(c echo.Context) (Language, error) {
	q := c.QueryParam("lang")
	if q == "" {
		return h.defaultLang, nil
	}
	l, ok := ParseLanguage(q)
	if !ok {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unsupported lang")
	}
	return l, nil
}

func (h *Handler) zone(c echo.Context) (*Zone, error) {
	z := h.reg.Zone(c.Param("id"))
	if z == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "zone not found")
	}
	return z, nil
}

func (h *Handler) ListZones(c echo.Context) error {
	lang, err := h.lang(c)
	if err != nil {
		return err
	}
	if cat := c.QueryParam("category"); cat != "" {
		return c.JSON(http.StatusOK, views(h.reg.ZonesByCategory(Category(cat)), lang))
	}
	if c.QueryParam("terminal") == "true" {
		return c.JSON(http.StatusOK, views(h.reg.TerminalZones(), lang))
	}
	return c.JSON(http.StatusOK, views(h.reg.Roots(), lang))
}

func (h *Handler) GetZone(c echo.Context) error {
	lang, err := h.lang(c)
	if err != nil {
		return err
	}
	z, err := h.zone(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, NewZoneView(z, lang))
}

func (h *Handler) GetChildren(c echo.Context) error {
	lang, err := h.lang(c)
	if err != nil {
		return err
	}
	z, err := h.zone(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views(h.reg.Children(z.ID), lang))
}

func (h *Handler) GetPath(c echo.Context) error {
	lang, err := h.lang(c)
	if err != nil {
		return err
	}
	z, err := h.zone(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views(h.reg.Path(z.ID), lang))
}

type relatedView struct {
	Kind RelationKind `json:"kind"`
	ZoneView
}

func (h *Handler) GetRelated(c echo.Context) error {
	lang, err := h.lang(c)
	if err != nil {
		return err
	}
	z, err := h.zone(c)
	if err != nil {
		return err
	}
	rel := h.reg.RelatedZones(z.ID)
	out := make([]relatedView, 0, len(rel))
	for _, r := range rel {
		out = append(out, relatedView{Kind: r.Kind, ZoneView: NewZoneView(r.Zone, lang)})
	}
	return c.JSON(http.StatusOK, out)
}
