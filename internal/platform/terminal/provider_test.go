package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

func TestRangeValidator(t *testing.T) {
	v := rangeValidator(0, 10)
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"0", false},
		{" 10 ", false},
		{"11", true},
		{"-1", true},
		{"five", true},
		{"", true},
	}
	for _, tt := range tests {
		if err := v(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("rangeValidator(%q) err=%v, wantErr=%v", tt.in, err, tt.wantErr)
		}
	}
}

func TestRequired(t *testing.T) {
	if required("   ") == nil {
		t.Error("blank should fail")
	}
	if required("cough") != nil {
		t.Error("text should pass")
	}
}

func TestHuhOptions_FallsBackToValue(t *testing.T) {
	opts := huhOptions([]encounter.Option{{Value: "chest", Label: "Chest pain"}, {Value: "other"}})
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[0].Key != "Chest pain" || opts[0].Value != "chest" {
		t.Errorf("unexpected first option %+v", opts[0])
	}
	if opts[1].Key != "other" {
		t.Errorf("expected value as label, got %q", opts[1].Key)
	}
}

func TestShowEmergencyAlert(t *testing.T) {
	var buf bytes.Buffer
	p := NewProvider(&buf, true)
	p.ShowEmergencyAlert(context.Background(), encounter.Alert{
		Urgency: questionnaire.UrgencyEmergency,
		Title:   "Possible cardiac event",
		Message: "Chest pain spreading to the left arm",
		Action:  "Call emergency services",
	})
	out := buf.String()
	for _, want := range []string{"Possible cardiac event", "Chest pain spreading", "Call emergency services"} {
		if !strings.Contains(out, want) {
			t.Errorf("alert output missing %q:\n%s", want, out)
		}
	}
}

func TestShowProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProvider(&buf, true)
	p.ShowProgress(context.Background(), encounter.Progress{Phase: encounter.PhaseBodyMap, Step: 3, Total: 8, Message: "Where does it hurt?"})
	out := buf.String()
	if !strings.Contains(out, "[3/8]") || !strings.Contains(out, "Where does it hurt?") {
		t.Errorf("unexpected progress line %q", out)
	}
}
