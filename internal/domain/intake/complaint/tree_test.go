package complaint

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/encounter/encountertest"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

func newEncounter() *encounter.Encounter {
	return encounter.New(anatomy.LanguageEnglish, time.Now())
}

func TestForCategory(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	tests := []struct {
		cat  anatomy.Category
		want string
	}{
		{anatomy.CategoryChest, Chest},
		{anatomy.CategoryNeck, Head},
		{anatomy.CategoryUpperLimb, Limb},
		{anatomy.CategoryLowerLimb, Limb},
		{anatomy.CategoryPelvis, Pelvis},
		{anatomy.Category("skin"), General},
	}
	for _, tt := range tests {
		if got := r.ForCategory(tt.cat).Name(); got != tt.want {
			t.Errorf("ForCategory(%s) = %s, want %s", tt.cat, got, tt.want)
		}
	}
}

func TestForComplaint(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	tests := []struct {
		complaint string
		want      string
	}{
		{"chest", Chest},
		{"Shortness of breath", Respiratory},
		{"bad headache", Head},
		{"Lower back pain", Back},
		{"burning when I urinate", Pelvis},
		{"twisted my ankle", Limb},
		{"stomach cramps", Abdomen},
	}
	for _, tt := range tests {
		if got := r.ForComplaint(tt.complaint).Name(); got != tt.want {
			t.Errorf("ForComplaint(%q) = %s, want %s", tt.complaint, got, tt.want)
		}
	}
}

func TestForComplaint_FallbackWarns(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(zerolog.New(&buf))

	tree := r.ForComplaint("feeling generally unwell")
	if tree.Name() != General {
		t.Fatalf("expected general fallback, got %s", tree.Name())
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("expected a warning to be logged, got %q", buf.String())
	}
}

func TestEveryTreeCompletesWithDefaults(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			enc := newEncounter()
			p := encountertest.New(nil)
			if err := r.ForComplaint(name).Ask(context.Background(), enc, p); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.Asked) == 0 {
				t.Error("expected the tree to ask something")
			}
			if len(enc.AssessmentPlan) == 0 {
				t.Error("expected at least one plan item")
			}
			for _, id := range p.Asked {
				if !strings.HasPrefix(id, "ct_"+name+"_") {
					t.Errorf("prompt id %s not namespaced to tree %s", id, name)
				}
			}
		})
	}
}

func TestChestTree_PressureWithSweating(t *testing.T) {
	enc := newEncounter()
	p := encountertest.New(map[string]string{
		"ct_chest_character":  "pressure",
		"ct_chest_associated": "sweating,nausea",
		"ct_chest_exertional": "yes",
	})

	if err := (chestTree{}).Ask(context.Background(), enc, p); err != nil {
		t.Fatal(err)
	}
	if !enc.HasUrgency(questionnaire.UrgencyEmergency) {
		t.Fatalf("expected an emergency flag, got %+v", enc.RedFlags)
	}
	if enc.RedFlags[0].RuleID != "ct_chest_pressure_sweating" {
		t.Errorf("unexpected first flag %s", enc.RedFlags[0].RuleID)
	}
	if len(p.Alerts) != 1 || !p.Alerts[0].IsEmergency() {
		t.Errorf("expected one emergency alert shown, got %+v", p.Alerts)
	}
	if len(enc.Alerts) != 1 {
		t.Errorf("expected the alert recorded on the encounter")
	}
	joined := strings.Join(enc.History, " ")
	if !strings.Contains(joined, "pressure or squeezing") || !strings.Contains(joined, "exertion") {
		t.Errorf("unexpected history %q", joined)
	}
}

func TestLimbTree_InjuryBranch(t *testing.T) {
	enc := newEncounter()
	p := encountertest.New(map[string]string{
		"ct_limb_mechanism": "overuse",
	})
	if err := (limbTree{}).Ask(context.Background(), enc, p); err != nil {
		t.Fatal(err)
	}
	if p.WasAsked("ct_limb_deformity") {
		t.Error("deformity should only be asked after an injury")
	}

	enc = newEncounter()
	p = encountertest.New(map[string]string{
		"ct_limb_mechanism": "injury",
		"ct_limb_deformity": "yes",
	})
	if err := (limbTree{}).Ask(context.Background(), enc, p); err != nil {
		t.Fatal(err)
	}
	if !enc.HasUrgency(questionnaire.UrgencyHigh) {
		t.Error("expected deformity flag")
	}
}

func TestTreeStopsOnProviderError(t *testing.T) {
	enc := newEncounter()
	boom := errors.New("awaiting")
	p := encountertest.New(nil)
	p.Err = map[string]error{"ct_head_neuro": boom}

	err := (headTree{}).Ask(context.Background(), enc, p)
	if !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if p.WasAsked("ct_head_jaw_claudication") {
		t.Error("no prompts should follow a provider error")
	}
	if len(enc.ReviewOfSystems) != 0 {
		t.Errorf("no findings should be recorded after the error, got %v", enc.ReviewOfSystems)
	}
}
