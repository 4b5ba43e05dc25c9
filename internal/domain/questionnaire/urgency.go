package questionnaire

import "github.com/ehr/intake/internal/domain/anatomy"

// Urgency is the four-level scale used by question rules and triage scoring.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyHigh      Urgency = "high"
	UrgencyMedium    Urgency = "medium"
	UrgencyLow       Urgency = "low"
)

// Rank orders urgencies: emergency=0 through low=3. Unknown values sort last.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyEmergency:
		return 0
	case UrgencyHigh:
		return 1
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 3
	}
	return 4
}

// Points is the triage score contribution of one flag at this urgency.
func (u Urgency) Points() int {
	switch u {
	case UrgencyEmergency:
		return 40
	case UrgencyHigh:
		return 25
	case UrgencyMedium:
		return 15
	case UrgencyLow:
		return 5
	}
	return 0
}

// The red flag scale has three levels and the urgency scale four. These two
// tables are the only place the scales meet.
var (
	severityToUrgency = map[anatomy.Severity]Urgency{
		anatomy.SeverityImmediate: UrgencyEmergency,
		anatomy.SeverityUrgent:    UrgencyHigh,
		anatomy.SeverityMonitor:   UrgencyMedium,
	}
	urgencyToSeverity = map[Urgency]anatomy.Severity{
		UrgencyEmergency: anatomy.SeverityImmediate,
		UrgencyHigh:      anatomy.SeverityUrgent,
		UrgencyMedium:    anatomy.SeverityMonitor,
		UrgencyLow:       anatomy.SeverityMonitor,
	}
)

// UrgencyForSeverity maps a red flag severity onto the urgency scale. Unknown
// severities map to low.
func UrgencyForSeverity(s anatomy.Severity) Urgency {
	if u, ok := severityToUrgency[s]; ok {
		return u
	}
	return UrgencyLow
}

// SeverityForUrgency maps an urgency onto the red flag scale. Low collapses
// into monitor; unknown urgencies map to monitor as well.
func SeverityForUrgency(u Urgency) anatomy.Severity {
	if s, ok := urgencyToSeverity[u]; ok {
		return s
	}
	return anatomy.SeverityMonitor
}

// FlagsFromRedFlags converts zone-level red flags so they can be scored.
func FlagsFromRedFlags(flags []anatomy.RedFlag) []Flag {
	out := make([]Flag, 0, len(flags))
	for _, f := range flags {
		out = append(out, Flag{
			RuleID:  f.ID,
			Urgency: UrgencyForSeverity(f.Severity),
			Message: f.Condition,
			Action:  f.Action,
		})
	}
	return out
}
