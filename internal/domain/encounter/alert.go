package encounter

import "github.com/ehr/intake/internal/domain/questionnaire"

// Alert is a clinical alert surfaced to the patient and recorded on the note.
type Alert struct {
	Urgency questionnaire.Urgency `json:"urgency"`
	Title   string                `json:"title"`
	Message string                `json:"message"`
	Action  string                `json:"action,omitempty"`
}

// IsEmergency reports whether the alert requires emergency services.
func (a Alert) IsEmergency() bool {
	return a.Urgency == questionnaire.UrgencyEmergency
}
