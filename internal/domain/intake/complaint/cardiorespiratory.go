package complaint

import (
	"context"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

const callEmergency = "Call emergency services immediately"

type chestTree struct{}

func (chestTree) Name() string { return Chest }

var (
	chestCharacter = []encounter.Option{
		opt("pressure", "Pressure or squeezing"),
		opt("sharp", "Sharp or stabbing"),
		opt("burning", "Burning"),
		opt("tearing", "Tearing or ripping"),
	}
	chestAssociated = []encounter.Option{
		opt("palpitations", "Palpitations"),
		opt("sweating", "Sweating"),
		opt("nausea", "Nausea"),
		opt("breathless", "Breathlessness"),
		opt("none", "None of these"),
	}
	cardiacRisk = []encounter.Option{
		opt("smoker", "Smoking"),
		opt("diabetes", "Diabetes"),
		opt("hypertension", "High blood pressure"),
		opt("cholesterol", "High cholesterol"),
		opt("family", "Heart disease in a parent or sibling before 60"),
		opt("none", "None of these"),
	}
)

func (chestTree) Ask(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	s := newScript(ctx, Chest, enc, p)

	c := s.one("character", "Which best describes the chest pain?", chestCharacter...)
	s.history("Chest pain described as %s.", labelsOf([]string{c}, chestCharacter))
	if c == "tearing" {
		s.flag("tearing", questionnaire.UrgencyEmergency, "Tearing chest pain, possible aortic dissection", callEmergency)
	}
	if s.yesNo("exertional", "Does the pain come on with effort and ease with rest?") {
		s.history("Pain is brought on by exertion.")
		s.plan("Exercise tolerance assessment")
	}

	assoc := withoutNone(s.choose("associated", "Do you have any of these with the pain?", true, chestAssociated...))
	if len(assoc) > 0 {
		s.history("Associated with %s.", labelsOf(assoc, chestAssociated))
		for _, a := range assoc {
			s.ros("Cardiovascular: " + labelOf(a, chestAssociated))
		}
	} else {
		s.ros("Cardiovascular: no palpitations, sweating or breathlessness")
	}
	if c == "pressure" && contains(assoc, "sweating") {
		s.flag("pressure_sweating", questionnaire.UrgencyEmergency, "Pressure-like chest pain with sweating", callEmergency)
	}

	if s.yesNo("cardiac_history", "Have you had a heart attack, stent or bypass surgery?") {
		s.history("Known ischaemic heart disease.")
		s.flag("known_ihd", questionnaire.UrgencyHigh, "Chest pain with known ischaemic heart disease", "Same-day cardiac assessment")
	}
	risks := withoutNone(s.choose("risk_factors", "Which of these apply to you?", true, cardiacRisk...))
	if len(risks) > 0 {
		s.history("Cardiac risk factors: %s.", labelsOf(risks, cardiacRisk))
	}
	s.note("details", "Anything else about the pain the clinician should know?", "Patient adds")

	s.plan("12-lead ECG")
	if len(risks) >= 2 {
		s.plan("Cardiovascular risk stratification")
	}
	return s.err
}

type respiratoryTree struct{}

func (respiratoryTree) Name() string { return Respiratory }

var sputumColour = []encounter.Option{
	opt("none", "No sputum"),
	opt("clear", "Clear or white"),
	opt("coloured", "Yellow or green"),
	opt("blood", "Blood-stained"),
}

func (respiratoryTree) Ask(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	s := newScript(ctx, Respiratory, enc, p)

	if s.yesNo("rest_dyspnea", "Are you breathless at rest or unable to finish a sentence?") {
		s.history("Breathless at rest.")
		s.flag("rest_dyspnea", questionnaire.UrgencyEmergency, "Breathlessness at rest", callEmergency)
	}
	if s.yesNo("cough", "Do you have a cough?") {
		sp := s.one("sputum", "What are you coughing up?", sputumColour...)
		s.history("Cough with %s.", labelsOf([]string{sp}, sputumColour))
		switch sp {
		case "blood":
			s.flag("haemoptysis", questionnaire.UrgencyHigh, "Coughing up blood", "Same-day medical assessment")
			s.plan("Chest X-ray")
		case "coloured":
			s.plan("Assess for lower respiratory tract infection")
		}
	} else {
		s.ros("Respiratory: no cough")
	}
	if s.yesNo("wheeze", "Do you hear a wheeze when you breathe?") {
		s.ros("Respiratory: wheeze")
		s.plan("Peak flow measurement")
	}
	if s.yesNo("fever", "Have you had a fever?") {
		s.ros("Constitutional: fever")
	}
	if s.yesNo("calf", "Is one calf swollen or painful?") {
		s.history("Unilateral calf swelling.")
		s.flag("pe_risk", questionnaire.UrgencyEmergency, "Breathlessness with calf swelling, possible pulmonary embolism", callEmergency)
	}
	if s.yesNo("asthma_copd", "Do you have asthma or COPD?") {
		s.history("Known chronic airways disease.")
	}
	s.note("details", "Anything else about your breathing?", "Patient adds")
	s.plan("Pulse oximetry and respiratory rate")
	return s.err
}
