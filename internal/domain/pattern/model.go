package pattern

import "github.com/ehr/intake/internal/domain/anatomy"

// Type classifies a recognised pain pattern.
type Type string

const (
	TypeRadiation  Type = "radiation"
	TypeReferred   Type = "referred"
	TypeDermatomal Type = "dermatomal"
	TypeVisceral   Type = "visceral"
	TypeDiffuse    Type = "diffuse"
)

// PainPattern is a pre-authored correlation that matched the selected zones.
type PainPattern struct {
	RuleID         string           `json:"rule_id"`
	Type           Type             `json:"type"`
	PrimaryZone    string           `json:"primary_zone"`
	SecondaryZones []string         `json:"secondary_zones"`
	Differential   []string         `json:"differential"`
	Urgency        anatomy.Severity `json:"urgency"`
	Recommendation string           `json:"recommendation"`
	Confidence     float64          `json:"confidence"`
}

// Insight is the full analysis for one zone selection.
type Insight struct {
	Pattern         *PainPattern      `json:"pattern,omitempty"`
	RedFlags        []anatomy.RedFlag `json:"red_flags"`
	NextSteps       []string          `json:"next_steps"`
	Systems         []anatomy.System  `json:"systems"`
	UnresolvedZones []string          `json:"unresolved_zones,omitempty"`
}

// HasSeverity reports whether any red flag in the insight is at least as
// severe as s.
func (i *Insight) HasSeverity(s anatomy.Severity) bool {
	for _, f := range i.RedFlags {
		if f.Severity.Rank() <= s.Rank() {
			return true
		}
	}
	return false
}
