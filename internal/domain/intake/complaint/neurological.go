package complaint

import (
	"context"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

type headTree struct{}

func (headTree) Name() string { return Head }

var (
	headacheKind = []encounter.Option{
		opt("band", "Tight band around the head"),
		opt("throbbing", "Throbbing, one side"),
		opt("thunderclap", "Sudden and explosive"),
		opt("other", "Something else"),
	}
	neuroSymptoms = []encounter.Option{
		opt("vision", "Visual disturbance"),
		opt("vomiting", "Vomiting"),
		opt("confusion", "Confusion or drowsiness"),
		opt("weakness", "Weakness or numbness"),
		opt("none", "None of these"),
	}
)

func (headTree) Ask(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	s := newScript(ctx, Head, enc, p)

	k := s.one("kind", "Which best describes the headache?", headacheKind...)
	s.history("Headache described as %s.", labelsOf([]string{k}, headacheKind))
	if k == "thunderclap" {
		s.flag("thunderclap", questionnaire.UrgencyEmergency, "Thunderclap headache", callEmergency)
	}
	if k == "throbbing" && s.yesNo("aura", "Do you get warning signs such as flashing lights before it starts?") {
		s.history("Preceded by aura.")
		s.plan("Migraine management review")
	}

	ns := withoutNone(s.choose("neuro", "Have you had any of these?", true, neuroSymptoms...))
	for _, v := range ns {
		s.ros("Neurological: " + labelOf(v, neuroSymptoms))
	}
	if len(ns) == 0 {
		s.ros("Neurological: no focal symptoms")
	}
	if contains(ns, "confusion") || contains(ns, "weakness") {
		s.flag("focal_neuro", questionnaire.UrgencyEmergency, "Headache with neurological deficit", callEmergency)
	}

	if s.yesNo("jaw_claudication", "Are you over 50 with scalp tenderness or jaw pain when chewing?") {
		s.flag("gca", questionnaire.UrgencyHigh, "Possible giant cell arteritis", "Same-day ESR/CRP and review")
	}
	if s.yesNo("morning", "Is the headache worst on waking or when you cough or strain?") {
		s.flag("raised_icp", questionnaire.UrgencyMedium, "Headache pattern suggesting raised pressure", "Prompt clinical review")
	}
	days := s.number("days_per_month", "On how many days a month do you get headaches?", 0, 31)
	if days >= 15 {
		s.history("Headache on %d days a month.", days)
		s.plan("Assess for medication overuse headache")
	}
	s.note("details", "Anything else about the headache?", "Patient adds")
	s.plan("Neurological examination and blood pressure")
	return s.err
}
