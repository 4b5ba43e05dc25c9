package encounter

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/pattern"
	"github.com/ehr/intake/internal/domain/questionnaire"
	"github.com/ehr/intake/internal/domain/zonetriage"
)

// Phase is a state of the intake interview.
type Phase string

const (
	PhaseEmergencyScreen    Phase = "EMERGENCY_SCREEN"
	PhaseComplaintSelection Phase = "COMPLAINT_SELECTION"
	PhaseBodyMap            Phase = "BODY_MAP"
	PhaseComplaintTree      Phase = "COMPLAINT_TREE"
	PhaseSummary            Phase = "SUMMARY"
	PhaseComplete           Phase = "COMPLETE"
)

var phaseOrder = []Phase{
	PhaseEmergencyScreen,
	PhaseComplaintSelection,
	PhaseBodyMap,
	PhaseComplaintTree,
	PhaseSummary,
	PhaseComplete,
}

// Index returns the 0-based position of p in the interview, or -1.
func (p Phase) Index() int {
	for i, q := range phaseOrder {
		if q == p {
			return i
		}
	}
	return -1
}

// Step is one answered prompt on the navigation stack.
type Step struct {
	PromptID string     `json:"prompt_id"`
	Kind     PromptKind `json:"kind"`
	Text     string     `json:"text"`
	Answer   string     `json:"answer"`
	At       time.Time  `json:"at"`
}

// Baseline is the patient's background history collected in SUMMARY.
type Baseline struct {
	PastMedicalHistory string   `json:"past_medical_history"`
	Medications        []string `json:"medications"`
	Allergies          []string `json:"allergies"`
	FamilyHistory      string   `json:"family_history"`
	SocialHistory      string   `json:"social_history"`
}

// Encounter is the mutable state of one intake interview. The first field
// block survives Reset; the rest is derived by re-running the interview
// against the navigation stack.
type Encounter struct {
	ID              uuid.UUID        `json:"id"`
	OwnerID         string           `json:"owner_id,omitempty"`
	Language        anatomy.Language `json:"language"`
	NavigationStack []Step           `json:"navigation_stack"`
	CreatedAt       time.Time        `json:"created_at"`
	LastUpdatedAt   time.Time        `json:"last_updated_at"`

	Phase           Phase                  `json:"phase"`
	Pending         *Prompt                `json:"pending,omitempty"`
	ChiefComplaint  string                 `json:"chief_complaint,omitempty"`
	Complaint       string                 `json:"complaint,omitempty"`
	PrimaryZone     string                 `json:"primary_zone,omitempty"`
	Zones           []string               `json:"zones"`
	Symptoms        []string               `json:"symptoms"`
	PainPoints      []zonetriage.PainPoint `json:"pain_points"`
	Answers         questionnaire.Answers  `json:"answers"`
	History         []string               `json:"history"`
	ReviewOfSystems []string               `json:"review_of_systems"`
	AssessmentPlan  []string               `json:"assessment_plan"`
	RedFlags        []questionnaire.Flag   `json:"red_flags"`
	Alerts          []Alert                `json:"alerts"`
	Insight         *pattern.Insight       `json:"insight,omitempty"`
	Assessment      *zonetriage.Assessment `json:"assessment,omitempty"`
	Baseline        *Baseline              `json:"baseline,omitempty"`
	TriageScore     int                    `json:"triage_score"`
	Emergency       bool                   `json:"emergency"`
	Note            *ClinicalNote          `json:"note,omitempty"`
	Result          *IntakeResult          `json:"result,omitempty"`
}

// New starts an encounter in the emergency screen.
func New(lang anatomy.Language, now time.Time) *Encounter {
	e := &Encounter{
		ID:            uuid.New(),
		Language:      lang,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	e.Reset()
	return e
}

// Reset clears everything derived from answers, keeping identity, language,
// timestamps and the navigation stack.
func (e *Encounter) Reset() {
	*e = Encounter{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		Language:        e.Language,
		NavigationStack: e.NavigationStack,
		CreatedAt:       e.CreatedAt,
		LastUpdatedAt:   e.LastUpdatedAt,
		Phase:           PhaseEmergencyScreen,
		Zones:           []string{},
		Symptoms:        []string{},
		PainPoints:      []zonetriage.PainPoint{},
		Answers:         questionnaire.Answers{},
		History:         []string{},
		ReviewOfSystems: []string{},
		AssessmentPlan:  []string{},
		RedFlags:        []questionnaire.Flag{},
		Alerts:          []Alert{},
	}
	if e.NavigationStack == nil {
		e.NavigationStack = []Step{}
	}
}

// IsComplete reports whether the interview has produced its note.
func (e *Encounter) IsComplete() bool {
	return e.Phase == PhaseComplete
}

func (e *Encounter) AddHistory(line string) {
	if line != "" {
		e.History = append(e.History, line)
	}
}

func (e *Encounter) AddReviewOfSystems(finding string) {
	if finding != "" {
		e.ReviewOfSystems = append(e.ReviewOfSystems, finding)
	}
}

func (e *Encounter) AddPlan(item string) {
	for _, p := range e.AssessmentPlan {
		if p == item {
			return
		}
	}
	e.AssessmentPlan = append(e.AssessmentPlan, item)
}

// AddFlags merges flags by rule id and keeps the list sorted by urgency.
func (e *Encounter) AddFlags(flags ...questionnaire.Flag) {
	seen := make(map[string]bool, len(e.RedFlags))
	for _, f := range e.RedFlags {
		seen[f.RuleID] = true
	}
	for _, f := range flags {
		if seen[f.RuleID] {
			continue
		}
		seen[f.RuleID] = true
		e.RedFlags = append(e.RedFlags, f)
	}
	questionnaire.SortFlags(e.RedFlags)
}

func (e *Encounter) AddAlert(a Alert) {
	e.Alerts = append(e.Alerts, a)
}

// HasUrgency reports whether any collected red flag is at least as urgent as u.
func (e *Encounter) HasUrgency(u questionnaire.Urgency) bool {
	for _, f := range e.RedFlags {
		if f.Urgency.Rank() <= u.Rank() {
			return true
		}
	}
	return false
}

// RedFlagIDs lists collected red flag rule ids in urgency order.
func (e *Encounter) RedFlagIDs() []string {
	ids := make([]string, 0, len(e.RedFlags))
	for _, f := range e.RedFlags {
		ids = append(ids, f.RuleID)
	}
	return ids
}
