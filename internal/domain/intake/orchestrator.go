package intake

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/intake/complaint"
	"github.com/ehr/intake/internal/domain/pattern"
	"github.com/ehr/intake/internal/domain/questionnaire"
	"github.com/ehr/intake/internal/domain/zonetriage"
)

const (
	callEmergency       = "Call emergency services immediately"
	maxBaselineAttempts = 3
	complaintOther      = "other"
	regionNone          = "none"
)

// Elaborator turns collected history facts into a narrative HPI paragraph.
type Elaborator interface {
	ElaborateHPI(ctx context.Context, chiefComplaint string, facts []string) (string, error)
}

// Orchestrator drives one encounter through the interview phases. It holds
// only immutable collaborators and can serve any number of encounters.
type Orchestrator struct {
	reg        *anatomy.Registry
	analyzer   *pattern.Analyzer
	engine     *questionnaire.Engine
	triage     *zonetriage.Triage
	trees      *complaint.Registry
	elaborator Elaborator
	log        zerolog.Logger
	now        func() time.Time
}

func NewOrchestrator(reg *anatomy.Registry, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		reg:      reg,
		analyzer: pattern.NewAnalyzer(reg),
		engine:   questionnaire.NewEngine(reg),
		triage:   zonetriage.New(reg),
		trees:    complaint.NewRegistry(log),
		log:      log,
		now:      time.Now,
	}
}

// WithElaborator sets the optional HPI elaborator.
func (o *Orchestrator) WithElaborator(e Elaborator) *Orchestrator {
	o.elaborator = e
	return o
}

// Run resets enc and executes the interview from the first phase, asking p
// for every answer. It returns nil once enc is complete; provider errors such
// as ErrAwaitingAnswer are returned unchanged.
func (o *Orchestrator) Run(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	enc.Reset()

	o.enter(ctx, enc, p, encounter.PhaseEmergencyScreen)
	cp, err := o.screenEmergency(ctx, enc, p)
	if err != nil {
		return err
	}
	if cp != nil {
		o.completeEmergency(enc, *cp)
		return nil
	}

	o.enter(ctx, enc, p, encounter.PhaseComplaintSelection)
	if err := o.selectComplaint(ctx, enc, p); err != nil {
		return err
	}

	o.enter(ctx, enc, p, encounter.PhaseBodyMap)
	if err := o.bodyMap(ctx, enc, p); err != nil {
		return err
	}
	if err := o.adaptiveQuestions(ctx, enc, p); err != nil {
		return err
	}

	o.enter(ctx, enc, p, encounter.PhaseComplaintTree)
	if err := o.treeFor(enc).Ask(ctx, enc, p); err != nil {
		return err
	}
	o.alertNewEmergencies(ctx, enc, p)

	o.enter(ctx, enc, p, encounter.PhaseSummary)
	if err := o.collectBaseline(ctx, enc, p); err != nil {
		return err
	}

	o.complete(ctx, enc)
	p.ShowProgress(ctx, encounter.ProgressFor(encounter.PhaseComplete, "Intake complete"))
	return nil
}

func (o *Orchestrator) enter(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider, phase encounter.Phase) {
	enc.Phase = phase
	p.ShowProgress(ctx, encounter.ProgressFor(phase, ""))
}

type checkpoint struct {
	ID        string
	Question  string
	Condition string
	Action    string
}

var emergencyCheckpoints = []checkpoint{
	{"es_chest_pain", "Do you have severe, crushing chest pain or pressure right now?", "Possible acute coronary syndrome", callEmergency},
	{"es_breathing", "Are you struggling to breathe or unable to speak in full sentences?", "Severe respiratory distress", callEmergency},
	{"es_stroke", "Do you have sudden face drooping, arm weakness or difficulty speaking?", "Possible stroke", callEmergency},
	{"es_consciousness", "Have you fainted, had a seizure, or been confused or hard to wake?", "Altered level of consciousness", callEmergency},
	{"es_bleeding", "Are you bleeding heavily and unable to stop it?", "Uncontrolled haemorrhage", callEmergency},
	{"es_anaphylaxis", "Are your face, lips or throat swelling, or is it hard to swallow?", "Possible anaphylaxis", callEmergency},
	{"es_self_harm", "Are you having thoughts of harming yourself or ending your life?", "Risk of self-harm", "Call emergency services or a crisis line now"},
}

// screenEmergency asks each checkpoint in order and stops at the first yes.
func (o *Orchestrator) screenEmergency(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) (*checkpoint, error) {
	for _, cp := range emergencyCheckpoints {
		yes, err := p.AskYesNo(ctx, encounter.Prompt{ID: cp.ID, Kind: encounter.KindYesNo, Text: cp.Question})
		if err != nil {
			return nil, err
		}
		if !yes {
			continue
		}
		cp := cp
		a := encounter.Alert{Urgency: questionnaire.UrgencyEmergency, Title: cp.Condition, Message: cp.Question, Action: cp.Action}
		enc.AddAlert(a)
		p.ShowEmergencyAlert(ctx, a)
		o.log.Warn().Str("encounter_id", enc.ID.String()).Str("checkpoint", cp.ID).Msg("emergency screen positive")
		return &cp, nil
	}
	return nil, nil
}

var complaintOptions = []encounter.Option{
	{Value: complaint.Chest, Label: "Chest pain or discomfort"},
	{Value: complaint.Respiratory, Label: "Breathing problems or cough"},
	{Value: complaint.Abdomen, Label: "Abdominal pain"},
	{Value: complaint.Head, Label: "Headache or neck pain"},
	{Value: complaint.Back, Label: "Back pain"},
	{Value: complaint.Pelvis, Label: "Pelvic or urinary symptoms"},
	{Value: complaint.Limb, Label: "Arm or leg pain or injury"},
	{Value: complaintOther, Label: "Something else"},
}

var regionsForComplaint = map[string][]anatomy.Category{
	complaint.Chest:       {anatomy.CategoryChest},
	complaint.Respiratory: {anatomy.CategoryChest},
	complaint.Abdomen:     {anatomy.CategoryAbdomen},
	complaint.Head:        {anatomy.CategoryHead, anatomy.CategoryNeck},
	complaint.Back:        {anatomy.CategoryBack},
	complaint.Pelvis:      {anatomy.CategoryPelvis},
	complaint.Limb:        {anatomy.CategoryUpperLimb, anatomy.CategoryLowerLimb},
}

var regionOptions = []encounter.Option{
	{Value: string(anatomy.CategoryHead), Label: "Head"},
	{Value: string(anatomy.CategoryNeck), Label: "Neck"},
	{Value: string(anatomy.CategoryChest), Label: "Chest"},
	{Value: string(anatomy.CategoryAbdomen), Label: "Abdomen"},
	{Value: string(anatomy.CategoryPelvis), Label: "Pelvis"},
	{Value: string(anatomy.CategoryBack), Label: "Back"},
	{Value: string(anatomy.CategoryUpperLimb), Label: "Arm"},
	{Value: string(anatomy.CategoryLowerLimb), Label: "Leg"},
	{Value: regionNone, Label: "No particular place"},
}

func (o *Orchestrator) selectComplaint(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	picked, err := p.AskMultipleChoice(ctx, encounter.Prompt{
		ID: "cc_category", Kind: encounter.KindChoice, Text: "What is the main reason for your visit today?", Options: complaintOptions,
	})
	if err != nil {
		return err
	}
	enc.Complaint = first(picked)
	if enc.Complaint != complaintOther {
		for _, opt := range complaintOptions {
			if opt.Value == enc.Complaint {
				enc.ChiefComplaint = opt.Label
			}
		}
		return nil
	}
	text, err := p.AskFreeText(ctx, encounter.Prompt{
		ID: "cc_describe", Kind: encounter.KindFreeText, Text: "Briefly describe the problem.",
	})
	if err != nil {
		return err
	}
	enc.ChiefComplaint = text
	return nil
}

var symptomOptions = []encounter.Option{
	{Value: "diaphoresis", Label: "Heavy sweating"},
	{Value: "dyspnea", Label: "Shortness of breath"},
	{Value: "nausea", Label: "Nausea"},
	{Value: "syncope", Label: "Fainting"},
	{Value: "fever", Label: "Fever"},
	{Value: "neck_stiffness", Label: "Stiff neck"},
	{Value: "worst_ever", Label: "Worst pain of my life"},
	{Value: "saddle_anesthesia", Label: "Numbness between the legs"},
	{Value: "urinary_retention", Label: "Unable to pass urine"},
	{Value: "rigid_abdomen", Label: "Hard, rigid belly"},
	{Value: "hematemesis", Label: "Vomiting blood"},
	{Value: "melena", Label: "Black, tarry stools"},
	{Value: "swelling", Label: "Swelling"},
	{Value: "missed_period", Label: "Missed period"},
	{Value: "hemoptysis", Label: "Coughing up blood"},
	{Value: regionNone, Label: "None of these"},
}

// bodyMap collects zones, symptom tags and per-zone intensity, then runs
// pattern analysis and zone triage over them.
func (o *Orchestrator) bodyMap(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	regions := regionsForComplaint[enc.Complaint]
	if regions == nil {
		picked, err := p.AskMultipleChoice(ctx, encounter.Prompt{
			ID: "bm_region", Kind: encounter.KindChoice, Text: "Where in your body is the problem?", Options: regionOptions,
		})
		if err != nil {
			return err
		}
		if r := first(picked); r != regionNone {
			regions = []anatomy.Category{anatomy.Category(r)}
		}
	}
	if len(regions) == 0 {
		return nil
	}

	var zoneOpts []encounter.Option
	for _, cat := range regions {
		for _, z := range o.reg.ZonesByCategory(cat) {
			zoneOpts = append(zoneOpts, encounter.Option{Value: z.ID, Label: z.Label(enc.Language)})
		}
	}
	zones, err := p.AskMultipleChoice(ctx, encounter.Prompt{
		ID: "bm_zones", Kind: encounter.KindChoice, Multi: true, Text: "Select every area where you feel it.", Options: zoneOpts,
	})
	if err != nil {
		return err
	}
	enc.Zones = append(enc.Zones, zones...)

	if opts := o.spreadOptions(enc.Zones, enc.Language); len(opts) > 1 {
		spread, err := p.AskMultipleChoice(ctx, encounter.Prompt{
			ID: "bm_spread", Kind: encounter.KindChoice, Multi: true, Text: "Does the pain spread anywhere else?", Options: opts,
		})
		if err != nil {
			return err
		}
		for _, id := range spread {
			if id != regionNone {
				enc.Zones = append(enc.Zones, id)
			}
		}
	}

	symptoms, err := p.AskMultipleChoice(ctx, encounter.Prompt{
		ID: "bm_symptoms", Kind: encounter.KindChoice, Multi: true, Text: "Do you have any of these as well?", Options: symptomOptions,
	})
	if err != nil {
		return err
	}
	for _, s := range symptoms {
		if s != regionNone {
			enc.Symptoms = append(enc.Symptoms, s)
		}
	}

	for _, id := range enc.Zones {
		n, err := p.AskNumeric(ctx, encounter.Prompt{
			ID:   "bm_intensity_" + id,
			Kind: encounter.KindNumeric,
			Text: fmt.Sprintf("How strong is the pain in your %s, from 0 to 10?", o.reg.Label(id, enc.Language)),
			Max:  10,
		})
		if err != nil {
			return err
		}
		enc.PainPoints = append(enc.PainPoints, zonetriage.PainPoint{ZoneID: id, Intensity: n})
	}

	insight := o.analyzer.Analyze(enc.Zones, enc.Symptoms)
	enc.Insight = insight
	enc.AddFlags(questionnaire.FlagsFromRedFlags(o.corroborated(enc.Zones, insight.RedFlags))...)
	if insight.Pattern != nil {
		enc.AddHistory(fmt.Sprintf("Pain distribution suggests a %s pattern (%s).", insight.Pattern.Type, insight.Pattern.RuleID))
	}

	a := o.triage.AssessPainPoints(enc.PainPoints)
	enc.Assessment = &a
	if a.RequiresComprehensiveEvaluation {
		enc.AddAlert(encounter.Alert{
			Urgency: questionnaire.UrgencyMedium,
			Title:   "Multiple pain sites",
			Message: "Three or more painful areas reported; comprehensive evaluation recommended.",
		})
	}
	enc.PrimaryZone = o.primaryZone(enc)
	o.alertNewEmergencies(ctx, enc, p)
	return nil
}

// spreadOptions lists the terminal zones pain from the selection can travel
// to: radiation, referred and dermatomal links plus radiation rule targets.
// Zones outside the complaint region are reachable only through here. The
// first option is always "none".
func (o *Orchestrator) spreadOptions(selected []string, lang anatomy.Language) []encounter.Option {
	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		seen[id] = true
	}
	opts := []encounter.Option{{Value: regionNone, Label: "It stays in one place"}}
	add := func(z *anatomy.Zone) {
		if z == nil || !z.Terminal || seen[z.ID] {
			return
		}
		seen[z.ID] = true
		opts = append(opts, encounter.Option{Value: z.ID, Label: z.Label(lang)})
	}
	for _, id := range selected {
		for _, rel := range o.reg.RelatedZones(id) {
			if rel.Kind != anatomy.RelationAdjacent {
				add(rel.Zone)
			}
		}
		for _, r := range o.analyzer.Rules().Radiation {
			if r.Primary != id {
				continue
			}
			for _, t := range r.Targets {
				add(o.reg.Zone(t))
			}
		}
	}
	return opts
}

// corroborated drops the static red flags every selected zone carries. Those
// stay on the insight as considerations; only flags backed by a reported
// symptom reach the triage score.
func (o *Orchestrator) corroborated(zoneIDs []string, flags []anatomy.RedFlag) []anatomy.RedFlag {
	static := map[string]bool{}
	zones, _ := o.reg.Resolve(zoneIDs)
	for _, z := range zones {
		if z.Clinical == nil {
			continue
		}
		for _, f := range z.Clinical.RedFlags {
			static[f.ID] = true
		}
	}
	out := []anatomy.RedFlag{}
	for _, f := range flags {
		if !static[f.ID] {
			out = append(out, f)
		}
	}
	return out
}

// primaryZone prefers the matched pattern's primary zone, then the highest
// priority selection.
func (o *Orchestrator) primaryZone(enc *encounter.Encounter) string {
	if enc.Insight != nil && enc.Insight.Pattern != nil {
		return enc.Insight.Pattern.PrimaryZone
	}
	zones, _ := o.reg.Resolve(enc.Zones)
	if len(zones) == 0 {
		return ""
	}
	best := zones[0]
	for _, z := range zones[1:] {
		if z.Priority() > best.Priority() {
			best = z
		}
	}
	return best.ID
}

// adaptiveQuestions asks the generated question set one question at a time
// and folds per-question and combination red flags into the encounter.
func (o *Orchestrator) adaptiveQuestions(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	for q := o.engine.NextQuestion(enc.PrimaryZone, enc.Answers); q != nil; q = o.engine.NextQuestion(enc.PrimaryZone, enc.Answers) {
		v, err := p.AskQuestion(ctx, *q)
		if err != nil {
			return err
		}
		enc.Answers[q.ID] = v
	}
	qs := o.engine.GenerateQuestions(enc.PrimaryZone, enc.Answers)
	enc.AddFlags(o.engine.EvaluateQuestionFlags(qs, enc.Answers)...)
	enc.AddFlags(o.engine.EvaluateRedFlags(enc.Answers)...)
	if sev, ok := enc.Answers.Int(questionnaire.QSeverity); ok {
		enc.AddHistory(fmt.Sprintf("Severity %d/10.", sev))
	}
	o.alertNewEmergencies(ctx, enc, p)
	return nil
}

// alertNewEmergencies raises an alert for each emergency flag not yet alerted.
func (o *Orchestrator) alertNewEmergencies(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) {
	alerted := map[string]bool{}
	for _, a := range enc.Alerts {
		alerted[a.Title] = true
	}
	for _, f := range enc.RedFlags {
		if f.Urgency != questionnaire.UrgencyEmergency || alerted[f.Message] {
			continue
		}
		action := f.Action
		if action == "" {
			action = callEmergency
		}
		a := encounter.Alert{Urgency: f.Urgency, Title: f.Message, Message: f.Message, Action: action}
		alerted[f.Message] = true
		enc.AddAlert(a)
		p.ShowEmergencyAlert(ctx, a)
		o.log.Warn().Str("encounter_id", enc.ID.String()).Str("rule", f.RuleID).Msg("emergency red flag")
	}
}

func (o *Orchestrator) treeFor(enc *encounter.Encounter) complaint.Tree {
	if enc.Complaint != complaintOther {
		return o.trees.ForComplaint(enc.Complaint)
	}
	if z := o.reg.Zone(enc.PrimaryZone); z != nil {
		return o.trees.ForCategory(z.Category)
	}
	return o.trees.ForComplaint(enc.ChiefComplaint)
}

var baselinePrompts = []struct {
	field string
	id    string
	text  string
}{
	{FieldPastMedicalHistory, "hx_pmh", "List any medical conditions or operations you have had (or type none)."},
	{FieldMedications, "hx_medications", "Which medicines do you take regularly? Separate with commas (or type none)."},
	{FieldAllergies, "hx_allergies", "Are you allergic to any medicines or foods? (or type none)"},
	{FieldFamilyHistory, "hx_family", "Do any illnesses run in your family? (or type none)"},
	{FieldSocialHistory, "hx_social", "Tell us about smoking, alcohol and your work."},
}

// collectBaseline asks the history prompts and commits them, re-asking missing
// required fields. After the last attempt the gaps are marked NotReported.
func (o *Orchestrator) collectBaseline(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error {
	var in BaselineInput
	ask := map[string]bool{}
	for _, bp := range baselinePrompts {
		ask[bp.field] = true
	}
	for attempt := 1; ; attempt++ {
		for _, bp := range baselinePrompts {
			if !ask[bp.field] {
				continue
			}
			id := bp.id
			if attempt > 1 {
				id += "_" + strconv.Itoa(attempt)
			}
			v, err := p.AskFreeText(ctx, encounter.Prompt{ID: id, Kind: encounter.KindFreeText, Text: bp.text, Optional: true})
			if err != nil {
				return err
			}
			*in.field(bp.field) = v
		}

		err := CommitBaseline(enc, in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		if attempt == maxBaselineAttempts {
			for _, f := range verr.Missing {
				*in.field(f) = NotReported
			}
			enc.AddAlert(encounter.Alert{
				Urgency: questionnaire.UrgencyLow,
				Title:   "Incomplete history",
				Message: verr.Error(),
			})
			return CommitBaseline(enc, in)
		}
		ask = map[string]bool{}
		for _, f := range verr.Missing {
			ask[f] = true
		}
	}
}

func first(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}
