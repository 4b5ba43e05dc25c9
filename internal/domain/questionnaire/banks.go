package questionnaire

import "github.com/ehr/intake/internal/domain/anatomy"

// Baseline question ids, asked for every zone in this order.
const (
	QDuration = "duration"
	QOnset    = "onset"
	QSeverity = "severity"
	QPattern  = "pattern"
)

// Duration and onset answer values used by scoring.
const (
	DurationUnderHour = "lt_1h"
	DurationHours     = "1_24h"
	DurationDays      = "1_7d"
	DurationWeeks     = "1_4w"
	DurationLong      = "gt_4w"

	OnsetSudden       = "sudden"
	OnsetGradualHours = "gradual_hours"
	OnsetGradualDays  = "gradual_days"

	AnswerYes = "yes"
	AnswerNo  = "no"
)

// Bank names.
const (
	BankChest   = "chest"
	BankAbdomen = "abdomen"
	BankHead    = "head"
	BankLimb    = "limb"
	BankSpine   = "spine"
)

// bankForCategory maps a zone's top-level region to its question bank. Regions
// missing here get baseline questions only.
var bankForCategory = map[anatomy.Category]string{
	anatomy.CategoryChest:     BankChest,
	anatomy.CategoryAbdomen:   BankAbdomen,
	anatomy.CategoryHead:      BankHead,
	anatomy.CategoryUpperLimb: BankLimb,
	anatomy.CategoryLowerLimb: BankLimb,
	anatomy.CategoryBack:      BankSpine,
}

func intp(n int) *int { return &n }

func yesNo(id, text string, sig Significance) Question {
	return Question{ID: id, Text: text, Type: TypeYesNo, Significance: sig}
}

func when(q Question, dependsOn, value string) Question {
	q.Condition = &Condition{DependsOn: dependsOn, Value: value}
	return q
}

func flagOn(q Question, equals string, u Urgency, msg string) Question {
	q.RedFlagRule = &RedFlagRule{Equals: equals, Urgency: u, Message: msg}
	return q
}

func baselineQuestions() []Question {
	return []Question{
		{
			ID: QDuration, Text: "How long have you had this pain?", Type: TypeSingleChoice,
			Options: []Option{
				{Value: DurationUnderHour, Label: "Less than an hour"},
				{Value: DurationHours, Label: "1 to 24 hours"},
				{Value: DurationDays, Label: "1 to 7 days"},
				{Value: DurationWeeks, Label: "1 to 4 weeks"},
				{Value: DurationLong, Label: "More than 4 weeks"},
			},
			Significance: SignificanceImportant,
		},
		{
			ID: QOnset, Text: "How did the pain start?", Type: TypeSingleChoice,
			Options: []Option{
				{Value: OnsetSudden, Label: "Suddenly, within seconds or minutes", RedFlag: true},
				{Value: OnsetGradualHours, Label: "Gradually over hours"},
				{Value: OnsetGradualDays, Label: "Gradually over days"},
			},
			Significance: SignificanceImportant,
		},
		{
			ID: QSeverity, Text: "How bad is the pain right now, from 0 (none) to 10 (worst imaginable)?",
			Type: TypeScale, Min: 0, Max: 10,
			RedFlagRule:  &RedFlagRule{Threshold: intp(9), Urgency: UrgencyHigh, Message: "Very severe pain"},
			Significance: SignificanceCritical,
		},
		{
			ID: QPattern, Text: "How has the pain behaved since it started?", Type: TypeSingleChoice,
			Options: []Option{
				{Value: "constant", Label: "Constant"},
				{Value: "intermittent", Label: "Comes and goes"},
				{Value: "worsening", Label: "Getting worse"},
				{Value: "improving", Label: "Getting better"},
			},
			Significance: SignificanceRoutine,
		},
	}
}

func questionBanks() map[string][]Question {
	return map[string][]Question{
		BankChest: {
			{
				ID: "chest_character", Text: "What does the pain feel like?", Type: TypeSingleChoice,
				Options: []Option{
					{Value: "pressure", Label: "Pressure, squeezing or heaviness"},
					{Value: "sharp", Label: "Sharp or stabbing"},
					{Value: "burning", Label: "Burning"},
					{Value: "tearing", Label: "Tearing or ripping", RedFlag: true},
				},
				Significance: SignificanceCritical,
			},
			yesNo("chest_exertional", "Does the pain come on or get worse with physical effort?", SignificanceCritical),
			when(yesNo("chest_rest_relief", "Does it settle within a few minutes of resting?", SignificanceImportant), "chest_exertional", AnswerYes),
			{
				ID: "chest_radiation", Text: "Does the pain spread anywhere?", Type: TypeMultiChoice,
				Options: []Option{
					{Value: "arm", Label: "Arm"},
					{Value: "jaw", Label: "Jaw or neck"},
					{Value: "back", Label: "Back"},
					{Value: "none", Label: "It does not spread"},
				},
				Significance: SignificanceImportant,
			},
			flagOn(yesNo("chest_diaphoresis", "Have you been sweating heavily with the pain?", SignificanceCritical),
				AnswerYes, UrgencyHigh, "Chest pain with sweating"),
			yesNo("chest_dyspnea", "Are you short of breath?", SignificanceCritical),
			flagOn(yesNo("chest_syncope", "Have you fainted or nearly fainted?", SignificanceCritical),
				AnswerYes, UrgencyHigh, "Chest pain with syncope"),
			yesNo("chest_pleuritic", "Is the pain worse when you breathe in deeply?", SignificanceImportant),
		},
		BankAbdomen: {
			yesNo("abd_location_shift", "Did the pain start around the belly button and move somewhere else?", SignificanceImportant),
			yesNo("abd_fever", "Do you have a fever or chills?", SignificanceImportant),
			flagOn(yesNo("abd_rigidity", "Is your belly hard and very painful to touch or move?", SignificanceCritical),
				AnswerYes, UrgencyEmergency, "Rigid abdomen"),
			{
				ID: "abd_vomiting", Text: "Have you been vomiting?", Type: TypeSingleChoice,
				Options: []Option{
					{Value: "none", Label: "No"},
					{Value: "food", Label: "Yes, food or fluid"},
					{Value: "blood", Label: "Yes, with blood or coffee-ground material", RedFlag: true},
				},
				Significance: SignificanceImportant,
			},
			{
				ID: "abd_stool", Text: "Any change in your bowel movements?", Type: TypeSingleChoice,
				Options: []Option{
					{Value: "normal", Label: "No change"},
					{Value: "diarrhea", Label: "Diarrhoea"},
					{Value: "black", Label: "Black or tarry stools", RedFlag: true},
					{Value: "none", Label: "Unable to pass stool or wind"},
				},
				Significance: SignificanceImportant,
			},
			yesNo("abd_pregnancy_possible", "Is there any chance you could be pregnant?", SignificanceCritical),
			when(Question{
				ID: "abd_last_period", Text: "When did your last period start?", Type: TypeSingleChoice,
				Options: []Option{
					{Value: "lt_4w", Label: "Less than 4 weeks ago"},
					{Value: "4_8w", Label: "4 to 8 weeks ago"},
					{Value: "gt_8w", Label: "More than 8 weeks ago"},
				},
				Significance: SignificanceImportant,
			}, "abd_pregnancy_possible", AnswerYes),
		},
		BankHead: {
			flagOn(yesNo("head_worst_ever", "Is this the worst headache you have ever had?", SignificanceCritical),
				AnswerYes, UrgencyHigh, "Worst headache of life"),
			yesNo("head_fever", "Do you have a fever?", SignificanceImportant),
			yesNo("head_neck_stiffness", "Is your neck stiff, so that you cannot touch chin to chest?", SignificanceCritical),
			yesNo("head_photophobia", "Does light hurt your eyes?", SignificanceRoutine),
			yesNo("head_trauma", "Did the pain follow a blow to the head?", SignificanceImportant),
			when(yesNo("head_anticoagulant", "Do you take blood thinners?", SignificanceCritical), "head_trauma", AnswerYes),
			{
				ID: "head_neuro_deficit", Text: "Have you noticed any of the following?", Type: TypeMultiChoice,
				Options: []Option{
					{Value: "weakness", Label: "Weakness of an arm, leg or face", RedFlag: true},
					{Value: "speech", Label: "Difficulty speaking", RedFlag: true},
					{Value: "vision", Label: "Loss of vision or double vision", RedFlag: true},
					{Value: "confusion", Label: "Confusion", RedFlag: true},
					{Value: "none", Label: "None of these"},
				},
				Significance: SignificanceCritical,
			},
		},
		BankLimb: {
			yesNo("limb_trauma", "Did the pain start after an injury?", SignificanceImportant),
			when(yesNo("limb_deformity", "Does the limb look deformed or out of shape?", SignificanceCritical), "limb_trauma", AnswerYes),
			when(yesNo("limb_weight_bearing", "Can you put weight on it or use it normally?", SignificanceImportant), "limb_trauma", AnswerYes),
			yesNo("limb_swelling", "Is the area swollen?", SignificanceImportant),
			{
				ID: "limb_color", Text: "What colour is the skin over the painful area?", Type: TypeSingleChoice,
				Options: []Option{
					{Value: "normal", Label: "Normal"},
					{Value: "red", Label: "Red and warm"},
					{Value: "pale", Label: "Pale or white", RedFlag: true},
					{Value: "blue", Label: "Blue or mottled", RedFlag: true},
				},
				Significance: SignificanceCritical,
			},
			yesNo("limb_numbness", "Is the limb numb or tingling?", SignificanceImportant),
			yesNo("limb_joint_hot", "Is a joint hot, red and too painful to move?", SignificanceImportant),
		},
		BankSpine: {
			yesNo("spine_trauma", "Did the pain start after a fall or accident?", SignificanceImportant),
			flagOn(yesNo("spine_saddle_anesthesia", "Is there numbness around your bottom or genitals?", SignificanceCritical),
				AnswerYes, UrgencyEmergency, "Saddle anaesthesia"),
			{
				ID: "spine_bladder", Text: "Any change in bladder control?", Type: TypeSingleChoice,
				Options: []Option{
					{Value: "normal", Label: "No change"},
					{Value: "retention", Label: "Unable to pass urine", RedFlag: true},
					{Value: "incontinence", Label: "Loss of control", RedFlag: true},
				},
				Significance: SignificanceCritical,
			},
			yesNo("spine_leg_weakness", "Are your legs weak?", SignificanceCritical),
			yesNo("spine_radiating", "Does the pain travel down a leg?", SignificanceRoutine),
			yesNo("spine_cancer_history", "Have you ever had cancer?", SignificanceImportant),
			yesNo("spine_night_pain", "Does the pain wake you at night or persist when lying still?", SignificanceImportant),
			yesNo("spine_fever", "Do you have a fever?", SignificanceImportant),
		},
	}
}

func combinationRules() []CombinationRule {
	return []CombinationRule{
		{ID: "acs", Triggers: []string{"severity:>=7", "chest_exertional:yes", "chest_diaphoresis:yes"},
			Urgency: UrgencyEmergency, Message: "Possible acute coronary syndrome", Action: "Call emergency services now"},
		{ID: "cardiac_syncope", Triggers: []string{"chest_dyspnea:yes", "chest_syncope:yes"},
			Urgency: UrgencyEmergency, Message: "Chest pain with breathlessness and syncope", Action: "Call emergency services now"},
		{ID: "aortic_dissection", Triggers: []string{"onset:sudden", "chest_character:tearing"},
			Urgency: UrgencyEmergency, Message: "Possible aortic dissection", Action: "Call emergency services now"},
		{ID: "appendicitis", Triggers: []string{"abd_location_shift:yes", "abd_fever:yes"},
			Urgency: UrgencyHigh, Message: "Migratory pain with fever suggests appendicitis", Action: "Same-day surgical assessment"},
		{ID: "peritonitis", Triggers: []string{"abd_rigidity:yes", "severity:>=8"},
			Urgency: UrgencyEmergency, Message: "Possible peritonitis", Action: "Call emergency services now"},
		{ID: "ectopic", Triggers: []string{"abd_pregnancy_possible:yes", "severity:>=6"},
			Urgency: UrgencyHigh, Message: "Possible ectopic pregnancy", Action: "Attend an emergency department for pregnancy test and ultrasound"},
		{ID: "subarachnoid", Triggers: []string{"head_worst_ever:yes", "onset:sudden"},
			Urgency: UrgencyEmergency, Message: "Thunderclap headache", Action: "Call emergency services now"},
		{ID: "meningitis", Triggers: []string{"head_fever:yes", "head_neck_stiffness:yes"},
			Urgency: UrgencyEmergency, Message: "Possible meningitis", Action: "Call emergency services now"},
		{ID: "head_injury_deficit", Triggers: []string{"head_trauma:yes", "head_neuro_deficit:weakness"},
			Urgency: UrgencyHigh, Message: "Head injury with focal weakness", Action: "Attend an emergency department for CT head"},
		{ID: "cauda_equina", Triggers: []string{"spine_saddle_anesthesia:yes", "spine_leg_weakness:yes"},
			Urgency: UrgencyEmergency, Message: "Possible cauda equina syndrome", Action: "Attend an emergency department now for MRI"},
		{ID: "spinal_malignancy", Triggers: []string{"spine_cancer_history:yes", "spine_night_pain:yes"},
			Urgency: UrgencyMedium, Message: "Back pain with cancer history and night pain", Action: "Urgent GP review within a week"},
		{ID: "fracture", Triggers: []string{"limb_trauma:yes", "limb_deformity:yes"},
			Urgency: UrgencyHigh, Message: "Likely fracture or dislocation", Action: "Attend an emergency department for X-ray"},
		{ID: "limb_ischaemia", Triggers: []string{"limb_color:pale", "limb_numbness:yes"},
			Urgency: UrgencyEmergency, Message: "Possible acute limb ischaemia", Action: "Call emergency services now"},
		{ID: "chronic_mild", Triggers: []string{"duration:gt_4w", "severity:<=3"},
			Urgency: UrgencyLow, Message: "Long-standing mild pain", Action: "Routine GP appointment"},
	}
}
