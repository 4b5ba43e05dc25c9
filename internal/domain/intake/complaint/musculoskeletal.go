package complaint

import (
	"context"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

type backTree struct{}

func (backTree) Name() string { return Back }

var backOnset = []encounter.Option{
	opt("lifting", "After lifting or twisting"),
	opt("fall", "After a fall or accident"),
	opt("none", "No clear cause"),
}

func (backTree) Ask(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	s := newScript(ctx, Back, enc, p)

	o := s.one("cause", "How did the back pain start?", backOnset...)
	s.history("Back pain started %s.", labelsOf([]string{o}, backOnset))
	if o == "fall" {
		s.plan("Consider spinal imaging")
	}
	if s.yesNo("leg_pain", "Does the pain shoot down a leg below the knee?") {
		s.history("Radicular leg pain.")
		s.plan("Straight leg raise and lower limb neurological examination")
	}
	if s.yesNo("saddle", "Any numbness between the legs or loss of bladder or bowel control?") {
		s.flag("cauda_equina", questionnaire.UrgencyEmergency, "Possible cauda equina syndrome", callEmergency)
	}
	if s.yesNo("systemic", "Have you had fevers, night sweats or weight loss?") {
		s.ros("Constitutional: fevers, night sweats or weight loss")
		s.flag("systemic", questionnaire.UrgencyHigh, "Back pain with systemic features", "Same-day assessment with blood tests")
	}
	if s.yesNo("steroids", "Do you take steroid tablets or have osteoporosis?") {
		s.history("Steroid use or osteoporosis.")
		s.plan("Consider vertebral fracture")
	}
	function := s.number("function", "How much does the pain limit daily activity (0 none, 10 unable to move)?", 0, 10)
	s.history("Functional limitation %d/10.", function)
	s.note("details", "Anything else about your back?", "Patient adds")
	s.plan("Spinal examination")
	return s.err
}

type limbTree struct{}

func (limbTree) Name() string { return Limb }

var limbMechanism = []encounter.Option{
	opt("injury", "An injury"),
	opt("overuse", "Overuse or repetitive activity"),
	opt("none", "No clear cause"),
}

func (limbTree) Ask(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	s := newScript(ctx, Limb, enc, p)

	m := s.one("mechanism", "What brought the pain on?", limbMechanism...)
	s.history("Limb pain after %s.", labelsOf([]string{m}, limbMechanism))
	if m == "injury" {
		if s.yesNo("deformity", "Does the limb look bent or out of shape?") {
			s.flag("deformity", questionnaire.UrgencyHigh, "Limb deformity after injury, possible fracture", "Attend emergency department for X-ray")
		}
		if s.yesNo("use", "Can you use the limb or bear weight?") {
			s.history("Able to use the limb.")
		} else {
			s.history("Unable to use the limb or bear weight.")
			s.plan("X-ray of the affected limb")
		}
	}
	if s.yesNo("cold", "Is the limb cold, pale or numb?") {
		s.flag("ischaemia", questionnaire.UrgencyEmergency, "Cold, pale or numb limb", callEmergency)
	}
	if s.yesNo("hot_joint", "Is a joint hot, red and swollen?") {
		s.ros("Musculoskeletal: hot swollen joint")
		s.flag("septic_joint", questionnaire.UrgencyHigh, "Hot swollen joint, possible septic arthritis", "Same-day joint assessment")
	}
	if s.yesNo("stiffness", "Is it stiff for more than 30 minutes in the morning?") {
		s.ros("Musculoskeletal: prolonged morning stiffness")
		s.plan("Inflammatory markers")
	}
	s.note("details", "Anything else about the arm or leg?", "Patient adds")
	s.plan("Musculoskeletal examination")
	return s.err
}
