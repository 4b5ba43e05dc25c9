package pattern

import (
	"fmt"

	"github.com/ehr/intake/internal/domain/anatomy"
)

// RadiationRule matches when the primary zone and at least one target are selected.
type RadiationRule struct {
	ID             string
	Primary        string
	Targets        []string
	Differential   []string
	Urgency        anatomy.Severity
	Recommendation string
	Confidence     float64
}

// ReferredRule matches on the presenting zone alone; Source names the inferred origin.
type ReferredRule struct {
	ID             string
	Presenting     string
	Source         string
	Type           Type
	Differential   []string
	Urgency        anatomy.Severity
	Recommendation string
	Confidence     float64
}

// DermatomeRule matches when at least two of its zones are selected.
type DermatomeRule struct {
	ID             string
	Dermatome      string
	Zones          []string
	Differential   []string
	Urgency        anatomy.Severity
	Recommendation string
	Confidence     float64
}

// CoOccurrenceRule raises Flag when a selected zone matches the zone predicate
// and the reported symptoms satisfy AnySymptoms and AllSymptoms. An empty
// predicate list is ignored.
type CoOccurrenceRule struct {
	ID          string
	ZoneIDs     []string
	Systems     []anatomy.System
	Categories  []anatomy.Category
	AnySymptoms []string
	AllSymptoms []string
	Flag        anatomy.RedFlag
}

// Multi-system (diffuse) match constants.
const (
	MultiSystemMinSystems     = 2
	MultiSystemMinZonesPerSys = 2
	MultiSystemConfidence     = 0.4
	MultiSystemRecommendation = "Comprehensive evaluation by a generalist; consider systemic illness"

	dermatomeMinZones = 2
	multiSystemRuleID = "multi_system"
)

// Rules is the full static rule set consulted by the analyzer.
type Rules struct {
	Radiation    []RadiationRule
	Referred     []ReferredRule
	Dermatomal   []DermatomeRule
	CoOccurrence []CoOccurrenceRule
}

// Validate checks that every zone referenced by a rule exists in reg.
func (r Rules) Validate(reg *anatomy.Registry) error {
	var missing []string
	check := func(rule, id string) {
		if reg.Zone(id) == nil {
			missing = append(missing, rule+":"+id)
		}
	}
	for _, rr := range r.Radiation {
		check(rr.ID, rr.Primary)
		for _, t := range rr.Targets {
			check(rr.ID, t)
		}
	}
	for _, rr := range r.Referred {
		check(rr.ID, rr.Presenting)
	}
	for _, rr := range r.Dermatomal {
		for _, z := range rr.Zones {
			check(rr.ID, z)
		}
	}
	for _, rr := range r.CoOccurrence {
		for _, z := range rr.ZoneIDs {
			check(rr.ID, z)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("pattern rules reference unknown zones: %v", missing)
	}
	return nil
}

var (
	flagCardiacAutonomic = anatomy.RedFlag{
		ID:        "rf_cardiac_autonomic",
		Symptom:   "Chest or arm pain with sweating, breathlessness, nausea or fainting",
		Severity:  anatomy.SeverityImmediate,
		Action:    "Call emergency services now; do not drive yourself",
		Condition: "Acute Coronary Syndrome",
		Criteria:  []string{"diaphoresis", "dyspnea", "nausea", "syncope"},
	}
	flagMeningism = anatomy.RedFlag{
		ID:        "rf_meningism",
		Symptom:   "Headache with fever and neck stiffness",
		Severity:  anatomy.SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Bacterial meningitis",
		Criteria:  []string{"fever", "neck stiffness", "photophobia", "non-blanching rash"},
	}
	flagThunderclap = anatomy.RedFlag{
		ID:        "rf_thunderclap",
		Symptom:   "Sudden severe headache reaching peak within a minute",
		Severity:  anatomy.SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Subarachnoid haemorrhage",
	}
	flagSaddle = anatomy.RedFlag{
		ID:        "rf_saddle_sphincter",
		Symptom:   "Back pain with saddle numbness or bladder/bowel dysfunction",
		Severity:  anatomy.SeverityImmediate,
		Action:    "Attend an emergency department now for an urgent MRI",
		Condition: "Cauda equina syndrome",
		Criteria:  []string{"saddle anaesthesia", "urinary retention", "faecal incontinence"},
	}
	flagPeritonism = anatomy.RedFlag{
		ID:        "rf_peritonism",
		Symptom:   "Abdominal pain with a rigid, board-like abdomen",
		Severity:  anatomy.SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Peritonitis",
	}
	flagGIBleed = anatomy.RedFlag{
		ID:        "rf_gi_bleed",
		Symptom:   "Abdominal pain with vomiting blood or black stools",
		Severity:  anatomy.SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Upper gastrointestinal haemorrhage",
	}
	flagCalfSwelling = anatomy.RedFlag{
		ID:        "rf_calf_swelling",
		Symptom:   "Painful swollen calf",
		Severity:  anatomy.SeverityUrgent,
		Action:    "Same-day assessment for deep vein thrombosis",
		Condition: "Deep vein thrombosis",
	}
	flagCalfDyspnea = anatomy.RedFlag{
		ID:        "rf_calf_dyspnea",
		Symptom:   "Calf pain with new breathlessness",
		Severity:  anatomy.SeverityImmediate,
		Action:    "Call emergency services now",
		Condition: "Pulmonary embolism",
	}
	flagFebrileLoin = anatomy.RedFlag{
		ID:        "rf_febrile_loin",
		Symptom:   "Loin pain with fever",
		Severity:  anatomy.SeverityUrgent,
		Action:    "Same-day assessment; obstructed infected kidney must be excluded",
		Condition: "Pyelonephritis or infected obstructed kidney",
	}
	flagPregnancyPain = anatomy.RedFlag{
		ID:        "rf_pregnancy_pain",
		Symptom:   "Lower abdominal pain with a missed period",
		Severity:  anatomy.SeverityImmediate,
		Action:    "Attend an emergency department now; pregnancy test and pelvic ultrasound",
		Condition: "Ectopic pregnancy",
	}
	flagHemoptysis = anatomy.RedFlag{
		ID:        "rf_hemoptysis",
		Symptom:   "Chest pain with coughing up blood",
		Severity:  anatomy.SeverityUrgent,
		Action:    "Same-day assessment; chest imaging",
		Condition: "Pulmonary embolism or pulmonary haemorrhage",
	}
)

// DefaultRules returns the shipped rule tables. Table order is match order.
func DefaultRules() Rules {
	return Rules{
		Radiation: []RadiationRule{
			{
				ID: "cardiac_left_arm", Primary: "LEFT_PRECORDIAL",
				Targets:        []string{"LEFT_ARM", "LEFT_SHOULDER", "JAW", "LEFT_HAND"},
				Differential:   []string{"Acute coronary syndrome", "Stable angina"},
				Urgency:        anatomy.SeverityImmediate,
				Recommendation: "Classic cardiac radiation: call emergency services and obtain a 12-lead ECG",
				Confidence:     0.85,
			},
			{
				ID: "aortic_back", Primary: "RETROSTERNAL",
				Targets:        []string{"THORACIC_SPINE", "LEFT_SCAPULAR"},
				Differential:   []string{"Aortic dissection", "Acute coronary syndrome", "Oesophageal rupture"},
				Urgency:        anatomy.SeverityImmediate,
				Recommendation: "Chest pain through to the back: exclude aortic dissection with CT angiography",
				Confidence:     0.75,
			},
			{
				ID: "sciatic", Primary: "LUMBAR_SPINE",
				Targets:        []string{"LEFT_THIGH", "RIGHT_THIGH", "LEFT_CALF", "RIGHT_CALF", "LEFT_FOOT", "RIGHT_FOOT"},
				Differential:   []string{"Lumbar radiculopathy", "Disc herniation", "Spinal stenosis"},
				Urgency:        anatomy.SeverityMonitor,
				Recommendation: "Radicular leg pain: neurological examination; imaging only with deficits or red flags",
				Confidence:     0.7,
			},
			{
				ID: "renal_left", Primary: "LEFT_LOIN",
				Targets:        []string{"LEFT_GROIN", "HYPOGASTRIUM", "LEFT_LUMBAR"},
				Differential:   []string{"Ureteric colic", "Pyelonephritis"},
				Urgency:        anatomy.SeverityUrgent,
				Recommendation: "Loin-to-groin pain: urinalysis and CT KUB",
				Confidence:     0.8,
			},
			{
				ID: "renal_right", Primary: "RIGHT_LOIN",
				Targets:        []string{"RIGHT_GROIN", "HYPOGASTRIUM", "RIGHT_LUMBAR"},
				Differential:   []string{"Ureteric colic", "Pyelonephritis"},
				Urgency:        anatomy.SeverityUrgent,
				Recommendation: "Loin-to-groin pain: urinalysis and CT KUB",
				Confidence:     0.8,
			},
			{
				ID: "cervical_radicular", Primary: "POSTERIOR_NECK",
				Targets:        []string{"LEFT_ARM", "RIGHT_ARM", "LEFT_FOREARM", "RIGHT_FOREARM", "LEFT_HAND", "RIGHT_HAND"},
				Differential:   []string{"Cervical radiculopathy", "Cervical disc herniation"},
				Urgency:        anatomy.SeverityMonitor,
				Recommendation: "Neck pain into the arm: upper limb neurological examination",
				Confidence:     0.65,
			},
			{
				ID: "biliary_scapular", Primary: "RIGHT_HYPOCHONDRIUM",
				Targets:        []string{"RIGHT_SCAPULAR", "RIGHT_SHOULDER"},
				Differential:   []string{"Biliary colic", "Acute cholecystitis"},
				Urgency:        anatomy.SeverityUrgent,
				Recommendation: "Right upper quadrant pain to the shoulder blade: liver function tests and abdominal ultrasound",
				Confidence:     0.7,
			},
			{
				ID: "pancreatic_back", Primary: "EPIGASTRIUM",
				Targets:        []string{"THORACIC_SPINE"},
				Differential:   []string{"Acute pancreatitis", "Posterior peptic ulcer"},
				Urgency:        anatomy.SeverityUrgent,
				Recommendation: "Epigastric pain boring through to the back: serum lipase",
				Confidence:     0.7,
			},
		},
		Referred: []ReferredRule{
			{
				ID: "kehr_sign", Presenting: "LEFT_SHOULDER", Source: "spleen", Type: TypeVisceral,
				Differential:   []string{"Splenic injury", "Diaphragmatic irritation"},
				Urgency:        anatomy.SeverityUrgent,
				Recommendation: "Shoulder-tip pain may be referred from the spleen or diaphragm: ask about trauma and abdominal pain",
				Confidence:     0.4,
			},
			{
				ID: "biliary_referred", Presenting: "RIGHT_SCAPULAR", Source: "gallbladder", Type: TypeVisceral,
				Differential:   []string{"Biliary colic", "Cholecystitis"},
				Urgency:        anatomy.SeverityMonitor,
				Recommendation: "Right scapular pain can be referred from the gallbladder: check relation to fatty meals",
				Confidence:     0.45,
			},
			{
				ID: "cardiac_jaw", Presenting: "JAW", Source: "heart", Type: TypeReferred,
				Differential:   []string{"Angina", "Acute coronary syndrome", "Temporomandibular disorder"},
				Urgency:        anatomy.SeverityUrgent,
				Recommendation: "Exertional jaw pain can be cardiac: ECG if related to effort",
				Confidence:     0.5,
			},
			{
				ID: "appendix_periumbilical", Presenting: "UMBILICAL", Source: "appendix", Type: TypeVisceral,
				Differential:   []string{"Early appendicitis", "Small bowel pathology"},
				Urgency:        anatomy.SeverityMonitor,
				Recommendation: "Periumbilical pain migrating to the right iliac fossa suggests appendicitis: reassess in a few hours",
				Confidence:     0.5,
			},
			{
				ID: "hip_to_knee", Presenting: "LEFT_KNEE", Source: "hip", Type: TypeReferred,
				Differential:   []string{"Hip osteoarthritis", "Slipped capital femoral epiphysis in adolescents"},
				Urgency:        anatomy.SeverityMonitor,
				Recommendation: "Knee pain with a normal knee examination: examine the hip",
				Confidence:     0.35,
			},
			{
				ID: "hip_to_knee_right", Presenting: "RIGHT_KNEE", Source: "hip", Type: TypeReferred,
				Differential:   []string{"Hip osteoarthritis", "Slipped capital femoral epiphysis in adolescents"},
				Urgency:        anatomy.SeverityMonitor,
				Recommendation: "Knee pain with a normal knee examination: examine the hip",
				Confidence:     0.35,
			},
			{
				ID: "cardiac_arm", Presenting: "LEFT_ARM", Source: "LEFT_PRECORDIAL", Type: TypeReferred,
				Differential:   []string{"Angina", "Cervical radiculopathy", "Muscular strain"},
				Urgency:        anatomy.SeverityUrgent,
				Recommendation: "Left arm pain without injury can be cardiac: ECG if exertional or with autonomic symptoms",
				Confidence:     0.45,
			},
		},
		Dermatomal: []DermatomeRule{
			{
				ID: "dermatome_c8_t1_left", Dermatome: "C8-T1",
				Zones:          []string{"LEFT_FOREARM", "LEFT_HAND", "LEFT_ARM"},
				Differential:   []string{"C8 radiculopathy", "Ulnar neuropathy", "Thoracic outlet syndrome"},
				Urgency:        anatomy.SeverityMonitor,
				Recommendation: "Medial arm and hand distribution: nerve conduction studies if persistent",
				Confidence:     0.55,
			},
			{
				ID: "dermatome_t4_t6_left", Dermatome: "T4-T6",
				Zones:          []string{"LEFT_LATERAL_CHEST", "LEFT_SCAPULAR", "THORACIC_SPINE"},
				Differential:   []string{"Herpes zoster", "Thoracic radiculopathy"},
				Urgency:        anatomy.SeverityMonitor,
				Recommendation: "Band-like unilateral thoracic pain: inspect for vesicular rash",
				Confidence:     0.6,
			},
			{
				ID: "dermatome_l5_s1", Dermatome: "L5-S1",
				Zones:          []string{"SACRUM", "LEFT_THIGH", "RIGHT_THIGH", "LEFT_CALF", "RIGHT_CALF", "LEFT_FOOT", "RIGHT_FOOT"},
				Differential:   []string{"L5 or S1 radiculopathy", "Piriformis syndrome"},
				Urgency:        anatomy.SeverityMonitor,
				Recommendation: "Posterior leg distribution: straight leg raise and ankle reflexes",
				Confidence:     0.55,
			},
		},
		CoOccurrence: []CoOccurrenceRule{
			{
				ID:          "cardiac_autonomic",
				Systems:     []anatomy.System{anatomy.SystemCardiovascular},
				AnySymptoms: []string{"diaphoresis", "dyspnea", "nausea", "syncope"},
				Flag:        flagCardiacAutonomic,
			},
			{
				ID:          "meningism",
				Categories:  []anatomy.Category{anatomy.CategoryHead, anatomy.CategoryNeck},
				AllSymptoms: []string{"fever", "neck_stiffness"},
				Flag:        flagMeningism,
			},
			{
				ID:          "thunderclap",
				Categories:  []anatomy.Category{anatomy.CategoryHead},
				AnySymptoms: []string{"sudden_onset", "worst_ever"},
				Flag:        flagThunderclap,
			},
			{
				ID:          "saddle_sphincter",
				ZoneIDs:     []string{"LUMBAR_SPINE", "SACRUM", "PERINEUM"},
				AnySymptoms: []string{"saddle_anesthesia", "urinary_retention", "bowel_incontinence"},
				Flag:        flagSaddle,
			},
			{
				ID:          "peritonism",
				Categories:  []anatomy.Category{anatomy.CategoryAbdomen},
				AnySymptoms: []string{"rigid_abdomen"},
				Flag:        flagPeritonism,
			},
			{
				ID:          "gi_bleed",
				Categories:  []anatomy.Category{anatomy.CategoryAbdomen},
				AnySymptoms: []string{"hematemesis", "melena"},
				Flag:        flagGIBleed,
			},
			{
				ID:          "calf_swelling",
				ZoneIDs:     []string{"LEFT_CALF", "RIGHT_CALF"},
				AnySymptoms: []string{"swelling"},
				Flag:        flagCalfSwelling,
			},
			{
				ID:          "calf_dyspnea",
				ZoneIDs:     []string{"LEFT_CALF", "RIGHT_CALF", "LEFT_THIGH", "RIGHT_THIGH"},
				AnySymptoms: []string{"dyspnea"},
				Flag:        flagCalfDyspnea,
			},
			{
				ID:          "febrile_loin",
				ZoneIDs:     []string{"LEFT_LOIN", "RIGHT_LOIN", "LEFT_LUMBAR", "RIGHT_LUMBAR"},
				AnySymptoms: []string{"fever"},
				Flag:        flagFebrileLoin,
			},
			{
				ID:          "pregnancy_pain",
				ZoneIDs:     []string{"LEFT_ILIAC", "RIGHT_ILIAC", "HYPOGASTRIUM"},
				AnySymptoms: []string{"missed_period"},
				Flag:        flagPregnancyPain,
			},
			{
				ID:          "chest_hemoptysis",
				Categories:  []anatomy.Category{anatomy.CategoryChest},
				AnySymptoms: []string{"hemoptysis"},
				Flag:        flagHemoptysis,
			},
		},
	}
}
