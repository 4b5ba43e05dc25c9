package intake

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

const (
	emergencyScoreThreshold  = 75
	urgentScoreThreshold     = 50
	semiUrgentScoreThreshold = 25

	noPatternConfidence = 0.5
	emergencyConfidence = 0.95

	specialtyEmergency = "Emergency Medicine"
	specialtyGeneral   = "General Practice"
)

var specialtyForSystem = map[anatomy.System]string{
	anatomy.SystemCardiovascular:   "Cardiology",
	anatomy.SystemRespiratory:      "Pulmonology",
	anatomy.SystemGastrointestinal: "Gastroenterology",
	anatomy.SystemHepatobiliary:    "Gastroenterology",
	anatomy.SystemNeurological:     "Neurology",
	anatomy.SystemMusculoskeletal:  "Orthopedics",
	anatomy.SystemGenitourinary:    "Urology",
	anatomy.SystemReproductive:     "Gynecology",
	anatomy.SystemENT:              "Otolaryngology",
	anatomy.SystemOphthalmic:       "Ophthalmology",
	anatomy.SystemVascular:         "Vascular Surgery",
	anatomy.SystemDermatological:   "Dermatology",
}

var durationLabels = map[string]string{
	questionnaire.DurationUnderHour: "less than an hour",
	questionnaire.DurationHours:     "1 to 24 hours",
	questionnaire.DurationDays:      "1 to 7 days",
	questionnaire.DurationWeeks:     "1 to 4 weeks",
	questionnaire.DurationLong:      "more than 4 weeks",
}

var onsetLabels = map[string]string{
	questionnaire.OnsetSudden:       "suddenly",
	questionnaire.OnsetGradualHours: "gradually over hours",
	questionnaire.OnsetGradualDays:  "gradually over days",
}

// TriageLevelFor maps collected flags, the triage score and zone escalation
// to a routing level.
func TriageLevelFor(enc *encounter.Encounter, score int) encounter.TriageLevel {
	var level encounter.TriageLevel
	switch {
	case enc.HasUrgency(questionnaire.UrgencyEmergency) || score >= emergencyScoreThreshold:
		level = encounter.TriageEmergency
	case enc.HasUrgency(questionnaire.UrgencyHigh) || score >= urgentScoreThreshold:
		level = encounter.TriageUrgent
	case score >= semiUrgentScoreThreshold:
		level = encounter.TriageSemiUrgent
	default:
		level = encounter.TriageRoutine
	}
	if enc.Assessment != nil && enc.Assessment.ShouldEscalate && level.Rank() > encounter.TriageUrgent.Rank() {
		level = encounter.TriageUrgent
	}
	return level
}

// RecommendSpecialty routes by the primary zone's first body system.
func RecommendSpecialty(reg *anatomy.Registry, enc *encounter.Encounter, level encounter.TriageLevel) string {
	if level == encounter.TriageEmergency {
		return specialtyEmergency
	}
	z := reg.Zone(enc.PrimaryZone)
	if z == nil || len(z.Systems) == 0 {
		return specialtyGeneral
	}
	if s, ok := specialtyForSystem[z.Systems[0]]; ok {
		return s
	}
	return specialtyGeneral
}

// Confidence blends the pattern's static confidence with how completely the
// interview was answered.
func Confidence(enc *encounter.Encounter, questions []questionnaire.Question) float64 {
	base := noPatternConfidence
	if enc.Insight != nil && enc.Insight.Pattern != nil {
		base = enc.Insight.Pattern.Confidence
	}
	return math.Round((0.6*base+0.4*completeness(enc, questions))*100) / 100
}

func completeness(enc *encounter.Encounter, questions []questionnaire.Question) float64 {
	answered := 1.0
	if len(questions) > 0 {
		n := 0
		for _, q := range questions {
			if strings.TrimSpace(enc.Answers[q.ID]) != "" {
				n++
			}
		}
		answered = float64(n) / float64(len(questions))
	}
	history := 0.0
	if b := enc.Baseline; b != nil {
		for _, v := range []string{b.PastMedicalHistory, b.FamilyHistory, b.SocialHistory} {
			if v != NotReported {
				history++
			}
		}
		history /= 3
	}
	return (answered + history) / 2
}

// facts lists what the interview learned, in the order a clinician reads it.
func (o *Orchestrator) facts(enc *encounter.Encounter) []string {
	var out []string
	out = append(out, fmt.Sprintf("Presents with %s.", strings.ToLower(enc.ChiefComplaint)))
	if d, ok := durationLabels[enc.Answers[questionnaire.QDuration]]; ok {
		out = append(out, fmt.Sprintf("Symptoms for %s.", d))
	}
	if on, ok := onsetLabels[enc.Answers[questionnaire.QOnset]]; ok {
		out = append(out, fmt.Sprintf("Started %s.", on))
	}
	for _, pp := range enc.PainPoints {
		out = append(out, fmt.Sprintf("Pain %d/10 at %s.", pp.Intensity, strings.ToLower(o.reg.Label(pp.ZoneID, anatomy.LanguageEnglish))))
	}
	return append(out, enc.History...)
}

// complete scores the encounter and assembles its note and routing result.
func (o *Orchestrator) complete(ctx context.Context, enc *encounter.Encounter) {
	now := o.now()
	score := questionnaire.CalculateTriageScore(enc.Answers, enc.RedFlags)
	enc.TriageScore = score
	level := TriageLevelFor(enc, score)

	facts := o.facts(enc)
	hpi := strings.Join(facts, " ")
	if o.elaborator != nil {
		text, err := o.elaborator.ElaborateHPI(ctx, enc.ChiefComplaint, facts)
		switch {
		case err != nil:
			o.log.Warn().Err(err).Str("encounter_id", enc.ID.String()).Msg("hpi elaboration failed, using structured history")
		case strings.TrimSpace(text) != "":
			hpi = strings.TrimSpace(text)
		}
	}

	var nextSteps []string
	if enc.Insight != nil {
		nextSteps = enc.Insight.NextSteps
	}
	note := &encounter.ClinicalNote{
		EncounterID:     enc.ID,
		ChiefComplaint:  enc.ChiefComplaint,
		HPI:             hpi,
		HistoryNotes:    enc.History,
		ReviewOfSystems: enc.ReviewOfSystems,
		RedFlags:        enc.RedFlags,
		ClinicalAlerts:  alertLines(enc.Alerts),
		Triage: encounter.TriageAssessment{
			Level:   level,
			Score:   score,
			Summary: triageSummary(enc, level, score),
		},
		AssessmentPlan: enc.AssessmentPlan,
		NextSteps:      nonNil(nextSteps),
		Confidence:     Confidence(enc, o.engine.GenerateQuestions(enc.PrimaryZone, enc.Answers)),
		GeneratedAt:    now,
	}
	if enc.Assessment != nil {
		note.Triage.ZoneSeverity = enc.Assessment.MaxSeverity
	}
	if enc.Insight != nil {
		note.Triage.Pattern = enc.Insight.Pattern
	}
	if b := enc.Baseline; b != nil {
		note.PastMedicalHistory = b.PastMedicalHistory
		note.Medications = b.Medications
		note.Allergies = b.Allergies
		note.FamilyHistory = b.FamilyHistory
		note.SocialHistory = b.SocialHistory
	}

	enc.Note = note
	enc.Result = &encounter.IntakeResult{
		EncounterID:          enc.ID,
		TriageLevel:          level,
		TriageScore:          score,
		RecommendedSpecialty: RecommendSpecialty(o.reg, enc, level),
		RedFlagIDs:           enc.RedFlagIDs(),
		CompletedAt:          now,
	}
	enc.Phase = encounter.PhaseComplete
}

// completeEmergency writes the short emergency note used when screening is
// positive. No clinical questioning happens after this.
func (o *Orchestrator) completeEmergency(enc *encounter.Encounter, cp checkpoint) {
	now := o.now()
	enc.Emergency = true
	enc.ChiefComplaint = "Emergency: " + cp.Condition
	enc.AddFlags(questionnaire.Flag{RuleID: cp.ID, Urgency: questionnaire.UrgencyEmergency, Message: cp.Condition, Action: cp.Action})
	enc.AddPlan(cp.Action)
	enc.TriageScore = questionnaire.CalculateTriageScore(enc.Answers, enc.RedFlags)

	enc.Note = &encounter.ClinicalNote{
		EncounterID:     enc.ID,
		ChiefComplaint:  enc.ChiefComplaint,
		HPI:             fmt.Sprintf("Positive emergency screen: %q answered yes.", cp.Question),
		HistoryNotes:    enc.History,
		ReviewOfSystems: enc.ReviewOfSystems,
		Medications:     []string{},
		Allergies:       []string{},
		RedFlags:        enc.RedFlags,
		ClinicalAlerts:  alertLines(enc.Alerts),
		Triage: encounter.TriageAssessment{
			Level:   encounter.TriageEmergency,
			Score:   enc.TriageScore,
			Summary: cp.Condition + ". " + cp.Action + ".",
		},
		AssessmentPlan: enc.AssessmentPlan,
		NextSteps:      []string{cp.Action},
		Confidence:     emergencyConfidence,
		Emergency:      true,
		GeneratedAt:    now,
	}
	enc.Result = &encounter.IntakeResult{
		EncounterID:          enc.ID,
		TriageLevel:          encounter.TriageEmergency,
		TriageScore:          enc.TriageScore,
		RecommendedSpecialty: specialtyEmergency,
		RedFlagIDs:           enc.RedFlagIDs(),
		CompletedAt:          now,
	}
	enc.Phase = encounter.PhaseComplete
}

func triageSummary(enc *encounter.Encounter, level encounter.TriageLevel, score int) string {
	s := fmt.Sprintf("%s (score %d/100)", level, score)
	if len(enc.RedFlags) > 0 {
		s += fmt.Sprintf("; most urgent finding: %s", enc.RedFlags[0].Message)
	}
	if enc.Assessment != nil && enc.Assessment.ShouldEscalate {
		s += "; escalated on pain assessment"
	}
	return s + "."
}

func alertLines(alerts []encounter.Alert) []string {
	out := make([]string, 0, len(alerts))
	for _, a := range alerts {
		line := a.Title
		if a.Action != "" {
			line += ": " + a.Action
		}
		out = append(out, line)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
