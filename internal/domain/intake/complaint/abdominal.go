package complaint

import (
	"context"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

type abdomenTree struct{}

func (abdomenTree) Name() string { return Abdomen }

var (
	abdoCharacter = []encounter.Option{
		opt("colicky", "Comes and goes in waves"),
		opt("constant", "Constant"),
		opt("burning", "Burning"),
	}
	bowelChange = []encounter.Option{
		opt("none", "No change"),
		opt("diarrhoea", "Diarrhoea"),
		opt("constipation", "Constipation"),
		opt("black", "Black, tarry stools"),
		opt("blood", "Blood in the stool"),
	}
)

func (abdomenTree) Ask(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	s := newScript(ctx, Abdomen, enc, p)

	c := s.one("character", "How would you describe the abdominal pain?", abdoCharacter...)
	s.history("Abdominal pain is %s.", labelsOf([]string{c}, abdoCharacter))
	if s.yesNo("movement", "Is the pain worse when you move, cough or go over bumps?") {
		s.history("Pain aggravated by movement.")
		s.plan("Examine for peritonism")
	}
	if s.yesNo("vomit_blood", "Have you vomited blood or material like coffee grounds?") {
		s.flag("haematemesis", questionnaire.UrgencyEmergency, "Vomiting blood", callEmergency)
	}
	b := s.one("bowel", "Any change in your bowel habit?", bowelChange...)
	switch b {
	case "black", "blood":
		s.history("Reports %s.", labelsOf([]string{b}, bowelChange))
		s.flag("gi_bleed", questionnaire.UrgencyHigh, "Possible gastrointestinal bleeding", "Same-day assessment with full blood count")
	case "none", "":
		s.ros("Gastrointestinal: no change in bowel habit")
	default:
		s.ros("Gastrointestinal: " + labelOf(b, bowelChange))
	}
	if s.yesNo("jaundice", "Have you noticed yellowing of your skin or eyes?") {
		s.ros("Hepatobiliary: jaundice")
		s.plan("Liver function tests")
	}
	if s.yesNo("fatty_meals", "Is the pain triggered by fatty meals?") {
		s.history("Pain follows fatty meals.")
		s.plan("Right upper quadrant ultrasound")
	}
	if s.yesNo("weight_loss", "Have you lost weight without trying?") {
		s.flag("weight_loss", questionnaire.UrgencyMedium, "Unintentional weight loss with abdominal pain", "Routine referral for investigation")
	}
	s.note("details", "Anything else about your tummy symptoms?", "Patient adds")
	s.plan("Abdominal examination")
	return s.err
}

type pelvisTree struct{}

func (pelvisTree) Name() string { return Pelvis }

var urinarySymptoms = []encounter.Option{
	opt("burning", "Burning when passing urine"),
	opt("frequency", "Passing urine more often"),
	opt("blood", "Blood in the urine"),
	opt("retention", "Unable to pass urine"),
	opt("none", "None of these"),
}

func (pelvisTree) Ask(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	s := newScript(ctx, Pelvis, enc, p)

	u := withoutNone(s.choose("urinary", "Do you have any of these urinary symptoms?", true, urinarySymptoms...))
	if len(u) == 0 {
		s.ros("Genitourinary: no urinary symptoms")
	}
	for _, v := range u {
		s.ros("Genitourinary: " + labelOf(v, urinarySymptoms))
	}
	if contains(u, "retention") {
		s.flag("retention", questionnaire.UrgencyHigh, "Acute urinary retention", "Same-day assessment for catheterisation")
	}
	if contains(u, "burning") || contains(u, "frequency") {
		s.plan("Urine dipstick and culture")
	}
	if s.yesNo("pregnancy", "Could you be pregnant?") {
		s.history("Possible pregnancy.")
		s.plan("Urine pregnancy test")
		if s.yesNo("bleeding", "Do you have any vaginal bleeding?") {
			s.flag("pregnancy_bleeding", questionnaire.UrgencyEmergency, "Pelvic pain and bleeding in possible pregnancy", callEmergency)
		}
	}
	if s.yesNo("discharge", "Have you noticed any unusual discharge?") {
		s.ros("Reproductive: discharge")
		s.plan("Sexual health screen")
	}
	if s.yesNo("testicular", "Is the pain in a testicle, and did it start suddenly?") {
		s.flag("torsion", questionnaire.UrgencyEmergency, "Sudden testicular pain, possible torsion", callEmergency)
	}
	s.note("details", "Anything else the clinician should know?", "Patient adds")
	return s.err
}
