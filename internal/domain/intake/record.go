package intake

import (
	"time"

	"github.com/google/uuid"

	"github.com/ehr/intake/internal/domain/encounter"
)

// Record maps to the intake_record table: one row per completed intake.
type Record struct {
	ID             uuid.UUID               `db:"id" json:"id"`
	EncounterID    uuid.UUID               `db:"encounter_id" json:"encounter_id"`
	ChiefComplaint string                  `db:"chief_complaint" json:"chief_complaint"`
	TriageLevel    string                  `db:"triage_level" json:"triage_level"`
	TriageScore    int                     `db:"triage_score" json:"triage_score"`
	Specialty      string                  `db:"specialty" json:"specialty"`
	Emergency      bool                    `db:"emergency" json:"emergency"`
	RedFlagIDs     []string                `db:"red_flag_ids" json:"red_flag_ids"`
	Language       string                  `db:"language" json:"language"`
	Note           *encounter.ClinicalNote `db:"note" json:"note"`
	CreatedAt      time.Time               `db:"created_at" json:"created_at"`
}

// NewRecord summarises a completed encounter. It returns nil while the
// encounter is still in progress.
func NewRecord(enc *encounter.Encounter) *Record {
	if !enc.IsComplete() || enc.Note == nil || enc.Result == nil {
		return nil
	}
	return &Record{
		EncounterID:    enc.ID,
		ChiefComplaint: enc.ChiefComplaint,
		TriageLevel:    string(enc.Result.TriageLevel),
		TriageScore:    enc.Result.TriageScore,
		Specialty:      enc.Result.RecommendedSpecialty,
		Emergency:      enc.Emergency,
		RedFlagIDs:     enc.Result.RedFlagIDs,
		Language:       string(enc.Language),
		Note:           enc.Note,
	}
}
