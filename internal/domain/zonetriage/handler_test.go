package zonetriage

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

func TestHandler_AssessPainPoints(t *testing.T) {
	h := NewHandler(New(anatomy.MustDefaultRegistry()))
	rec, err := postJSON(h.AssessPainPoints, `{"points":[{"zone_id":"LEFT_KNEE","intensity":9}]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.ShouldEscalate {
		t.Errorf("intensity 9 should escalate: %+v", got)
	}
}

func TestHandler_AssessPainPoints_BadIntensity(t *testing.T) {
	h := NewHandler(New(anatomy.MustDefaultRegistry()))
	_, err := postJSON(h.AssessPainPoints, `{"points":[{"zone_id":"LEFT_KNEE","intensity":11}]}`)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
