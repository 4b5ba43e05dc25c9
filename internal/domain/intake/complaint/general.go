package complaint

import (
	"context"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

type generalTree struct{}

func (generalTree) Name() string { return General }

var generalSymptoms = []encounter.Option{
	opt("fever", "Fever"),
	opt("fatigue", "Tiredness"),
	opt("weight_loss", "Weight loss"),
	opt("rash", "Rash"),
	opt("none", "None of these"),
}

func (generalTree) Ask(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	s := newScript(ctx, General, enc, p)

	s.note("describe", "Describe the main problem in your own words.", "Presenting problem")
	gs := withoutNone(s.choose("symptoms", "Have you had any of these?", true, generalSymptoms...))
	for _, v := range gs {
		s.ros("Constitutional: " + labelOf(v, generalSymptoms))
	}
	if contains(gs, "fever") && contains(gs, "rash") {
		s.flag("fever_rash", questionnaire.UrgencyHigh, "Fever with rash", "Same-day assessment; check whether the rash fades under pressure")
	}
	if s.yesNo("worsening", "Is it getting worse day by day?") {
		s.history("Progressive symptoms.")
		s.plan("Early review")
	}
	if s.yesNo("daily_life", "Is it stopping you from doing normal daily activities?") {
		s.history("Interferes with daily activities.")
	}
	s.plan("General examination and observations")
	return s.err
}
