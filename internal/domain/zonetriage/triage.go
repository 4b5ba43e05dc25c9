package zonetriage

import "github.com/ehr/intake/internal/domain/anatomy"

// Severity is the per-zone severity bucket derived from a zone's static priority.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityModerate Severity = "MODERATE"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) level() int {
	switch s {
	case SeverityModerate:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	}
	return 0
}

// AtLeast reports whether s is as severe as other or more.
func (s Severity) AtLeast(other Severity) bool {
	return s.level() >= other.level()
}

const (
	escalateIntensity      = 8
	forceEscalateIntensity = 9
	comprehensivePoints    = 3
)

// PainPoint is one reported pain location.
type PainPoint struct {
	ZoneID     string   `json:"zone_id"`
	Intensity  int      `json:"intensity"`
	Depth      string   `json:"depth,omitempty"`
	RadiatesTo []string `json:"radiates_to,omitempty"`
}

// Assessment summarises a set of pain points.
type Assessment struct {
	MaxSeverity                     Severity `json:"max_severity"`
	ShouldEscalate                  bool     `json:"should_escalate"`
	RequiresComprehensiveEvaluation bool     `json:"requires_comprehensive_evaluation"`
	CriticalZones                   []string `json:"critical_zones"`
	UnresolvedZones                 []string `json:"unresolved_zones,omitempty"`
	Reasons                         []string `json:"reasons"`
}

type Triage struct {
	reg *anatomy.Registry
}

func New(reg *anatomy.Registry) *Triage {
	return &Triage{reg: reg}
}

// BucketPriority maps a 1-10 priority to its severity bucket.
func BucketPriority(priority int) Severity {
	switch {
	case priority >= 8:
		return SeverityCritical
	case priority >= 6:
		return SeverityHigh
	case priority >= 4:
		return SeverityModerate
	}
	return SeverityLow
}

// ZoneSeverity buckets the zone's priority. Unknown and grouping zones are LOW
// and ok is false for unknown ids.
func (t *Triage) ZoneSeverity(zoneID string) (Severity, bool) {
	z := t.reg.Zone(zoneID)
	if z == nil {
		return SeverityLow, false
	}
	return BucketPriority(z.Priority()), true
}

// AssessPainPoints computes the worst bucket across points and whether the
// presentation needs escalation. Points on unknown zones are skipped.
func (t *Triage) AssessPainPoints(points []PainPoint) Assessment {
	a := Assessment{MaxSeverity: SeverityLow, CriticalZones: []string{}, Reasons: []string{}}
	resolved := 0
	for _, p := range points {
		sev, ok := t.ZoneSeverity(p.ZoneID)
		if !ok {
			a.UnresolvedZones = append(a.UnresolvedZones, p.ZoneID)
			continue
		}
		resolved++
		if p.Intensity >= escalateIntensity && sev.AtLeast(SeverityHigh) {
			sev = SeverityCritical
		}
		if sev == SeverityCritical {
			a.CriticalZones = append(a.CriticalZones, t.reg.Zone(p.ZoneID).ID)
		}
		if sev.AtLeast(a.MaxSeverity) {
			a.MaxSeverity = sev
		}
		if p.Intensity >= forceEscalateIntensity && !a.ShouldEscalate {
			a.ShouldEscalate = true
			a.Reasons = append(a.Reasons, "pain intensity 9 or higher")
		}
	}
	if a.MaxSeverity.AtLeast(SeverityHigh) {
		if !a.ShouldEscalate {
			a.ShouldEscalate = true
		}
		a.Reasons = append(a.Reasons, "zone severity "+string(a.MaxSeverity))
	}
	if resolved >= comprehensivePoints {
		a.RequiresComprehensiveEvaluation = true
		a.Reasons = append(a.Reasons, "three or more simultaneous pain points")
	}
	return a
}
