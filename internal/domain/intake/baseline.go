package intake

import (
	"strings"

	"github.com/ehr/intake/internal/domain/encounter"
)

const (
	FieldPastMedicalHistory = "past_medical_history"
	FieldMedications        = "medications"
	FieldAllergies          = "allergies"
	FieldFamilyHistory      = "family_history"
	FieldSocialHistory      = "social_history"
)

// NotReported fills required history the patient declined to give.
const NotReported = "Not reported"

// BaselineInput is the raw baseline history as typed by the patient.
type BaselineInput struct {
	PastMedicalHistory string
	Medications        string
	Allergies          string
	FamilyHistory      string
	SocialHistory      string
}

func (in *BaselineInput) field(name string) *string {
	switch name {
	case FieldPastMedicalHistory:
		return &in.PastMedicalHistory
	case FieldMedications:
		return &in.Medications
	case FieldAllergies:
		return &in.Allergies
	case FieldFamilyHistory:
		return &in.FamilyHistory
	case FieldSocialHistory:
		return &in.SocialHistory
	}
	return nil
}

var requiredBaseline = []string{FieldPastMedicalHistory, FieldFamilyHistory, FieldSocialHistory}

// CommitBaseline validates in and stores it on enc. When a required field is
// blank it returns a *ValidationError and leaves enc unchanged.
func CommitBaseline(enc *encounter.Encounter, in BaselineInput) error {
	var missing []string
	for _, f := range requiredBaseline {
		if strings.TrimSpace(*in.field(f)) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	enc.Baseline = &encounter.Baseline{
		PastMedicalHistory: strings.TrimSpace(in.PastMedicalHistory),
		Medications:        splitList(in.Medications),
		Allergies:          splitList(in.Allergies),
		FamilyHistory:      strings.TrimSpace(in.FamilyHistory),
		SocialHistory:      strings.TrimSpace(in.SocialHistory),
	}
	return nil
}

// splitList splits a comma or semicolon separated answer. "none" and blank
// answers give an empty list.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' || r == '\n' }) {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "none") {
			continue
		}
		out = append(out, part)
	}
	return out
}
