package pagination

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxFor(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/", DefaultLimit, 0},
		{"explicit", "/?limit=5&offset=10", 5, 10},
		{"clamped", "/?limit=500", MaxLimit, 0},
		{"negative", "/?limit=-1&offset=-4", DefaultLimit, 0},
		{"garbage", "/?limit=abc&offset=xyz", DefaultLimit, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromContext(ctxFor(tt.target))
			if p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("got limit=%d offset=%d, want %d/%d", p.Limit, p.Offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	if !NewResponse(nil, 50, 20, 0).HasMore {
		t.Error("expected more at offset 0")
	}
	if NewResponse(nil, 50, 20, 40).HasMore {
		t.Error("expected no more on last page")
	}
}

func TestParams_Offsets(t *testing.T) {
	p := Params{Limit: 20, Offset: 10}
	if p.NextOffset() != 30 {
		t.Errorf("next offset %d", p.NextOffset())
	}
	if p.PreviousOffset() != 0 {
		t.Errorf("previous offset should floor at 0, got %d", p.PreviousOffset())
	}
	if !p.HasPrevious() || !p.HasNext(31) || p.HasNext(30) {
		t.Error("unexpected neighbour flags")
	}
}

func TestWithLinks_KeepsFilters(t *testing.T) {
	c := ctxFor("/api/v1/intake-records?triage_level=URGENT&limit=10&offset=10")
	r := NewResponse([]int{}, 35, 10, 10).WithLinks(c)
	if r.Links == nil {
		t.Fatal("expected links")
	}
	if !strings.Contains(r.Links.Next, "offset=20") || !strings.Contains(r.Links.Next, "triage_level=URGENT") {
		t.Errorf("next link %q", r.Links.Next)
	}
	if !strings.HasPrefix(r.Links.Previous, "/api/v1/intake-records?") || !strings.Contains(r.Links.Previous, "offset=0") {
		t.Errorf("previous link %q", r.Links.Previous)
	}
}

func TestWithLinks_SinglePage(t *testing.T) {
	r := NewResponse([]int{}, 3, 20, 0).WithLinks(ctxFor("/api/v1/intake-records"))
	if r.Links != nil {
		t.Errorf("expected no links, got %+v", r.Links)
	}
}
