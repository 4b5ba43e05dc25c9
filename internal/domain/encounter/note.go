package encounter

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehr/intake/internal/domain/pattern"
	"github.com/ehr/intake/internal/domain/questionnaire"
	"github.com/ehr/intake/internal/domain/zonetriage"
)

type TriageLevel string

const (
	TriageEmergency  TriageLevel = "EMERGENCY"
	TriageUrgent     TriageLevel = "URGENT"
	TriageSemiUrgent TriageLevel = "SEMI_URGENT"
	TriageRoutine    TriageLevel = "ROUTINE"
)

// Rank orders levels most urgent first.
func (l TriageLevel) Rank() int {
	switch l {
	case TriageEmergency:
		return 0
	case TriageUrgent:
		return 1
	case TriageSemiUrgent:
		return 2
	case TriageRoutine:
		return 3
	}
	return 4
}

// TriageAssessment is the triage section of the clinical note.
type TriageAssessment struct {
	Level        TriageLevel          `json:"level"`
	Score        int                  `json:"score"`
	ZoneSeverity zonetriage.Severity  `json:"zone_severity,omitempty"`
	Pattern      *pattern.PainPattern `json:"pattern,omitempty"`
	Summary      string               `json:"summary"`
}

// ClinicalNote is the completed intake documentation.
type ClinicalNote struct {
	EncounterID        uuid.UUID            `json:"encounter_id"`
	ChiefComplaint     string               `json:"chief_complaint"`
	HPI                string               `json:"hpi"`
	HistoryNotes       []string             `json:"history_notes"`
	ReviewOfSystems    []string             `json:"review_of_systems"`
	PastMedicalHistory string               `json:"past_medical_history"`
	Medications        []string             `json:"medications"`
	Allergies          []string             `json:"allergies"`
	FamilyHistory      string               `json:"family_history"`
	SocialHistory      string               `json:"social_history"`
	RedFlags           []questionnaire.Flag `json:"red_flags"`
	ClinicalAlerts     []string             `json:"clinical_alerts"`
	Triage             TriageAssessment     `json:"triage_assessment"`
	AssessmentPlan     []string             `json:"assessment_plan"`
	NextSteps          []string             `json:"next_steps"`
	Confidence         float64              `json:"confidence"`
	Emergency          bool                 `json:"emergency"`
	GeneratedAt        time.Time            `json:"generated_at"`
}

// IntakeResult is the routing summary consumed by scheduling.
type IntakeResult struct {
	EncounterID          uuid.UUID   `json:"encounter_id"`
	TriageLevel          TriageLevel `json:"triage_level"`
	TriageScore          int         `json:"triage_score"`
	RecommendedSpecialty string      `json:"recommended_specialty"`
	RedFlagIDs           []string    `json:"red_flag_ids"`
	CompletedAt          time.Time   `json:"completed_at"`
}
