package pattern

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ehr/intake/internal/domain/anatomy"
)

func postJSON(h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func TestHandler_Analyze(t *testing.T) {
	h := NewHandler(NewAnalyzer(anatomy.MustDefaultRegistry()))
	rec, err := postJSON(h.Analyze, `{"zones":["LEFT_PRECORDIAL","LEFT_ARM","NOWHERE"],"symptoms":["sweating"]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got Insight
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Pattern == nil || got.Pattern.RuleID != "cardiac_left_arm" {
		t.Errorf("expected cardiac radiation, got %+v", got.Pattern)
	}
	if len(got.UnresolvedZones) != 1 || got.UnresolvedZones[0] != "NOWHERE" {
		t.Errorf("expected NOWHERE unresolved, got %v", got.UnresolvedZones)
	}
}

func TestHandler_Analyze_NoZones(t *testing.T) {
	h := NewHandler(NewAnalyzer(anatomy.MustDefaultRegistry()))
	_, err := postJSON(h.Analyze, `{"symptoms":["cough"]}`)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
