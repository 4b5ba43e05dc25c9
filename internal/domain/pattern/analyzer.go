package pattern

import (
	"sort"

	"github.com/ehr/intake/internal/domain/anatomy"
)

// Analyzer matches zone selections against the static rule tables. It holds no
// mutable state and may be shared between goroutines.
type Analyzer struct {
	reg   *anatomy.Registry
	rules Rules
}

func NewAnalyzer(reg *anatomy.Registry) *Analyzer {
	return NewAnalyzerWithRules(reg, DefaultRules())
}

func NewAnalyzerWithRules(reg *anatomy.Registry, rules Rules) *Analyzer {
	return &Analyzer{reg: reg, rules: rules}
}

// Rules exposes the tables the analyzer was built with.
func (a *Analyzer) Rules() Rules {
	return a.rules
}

// Analyze runs pattern matching, red flag detection and next-step
// recommendation for one selection. Unknown zone ids are reported and ignored.
func (a *Analyzer) Analyze(zoneIDs, symptoms []string) *Insight {
	zones, missing := a.reg.Resolve(zoneIDs)
	p := a.analyze(zones)
	flags := a.detect(zones, symptoms)
	return &Insight{
		Pattern:         p,
		RedFlags:        flags,
		NextSteps:       a.nextSteps(zones, flags, p),
		Systems:         systemsOf(zones),
		UnresolvedZones: missing,
	}
}

// AnalyzePattern returns the first matching pattern, evaluating radiation,
// referred, dermatomal and multi-system rules in that order, or nil.
func (a *Analyzer) AnalyzePattern(zoneIDs []string) *PainPattern {
	zones, _ := a.reg.Resolve(zoneIDs)
	return a.analyze(zones)
}

// DetectRedFlags unions zone red flags with co-occurrence flags, sorted by
// severity with ties kept in encounter order.
func (a *Analyzer) DetectRedFlags(zoneIDs, symptoms []string) []anatomy.RedFlag {
	zones, _ := a.reg.Resolve(zoneIDs)
	return a.detect(zones, symptoms)
}

// RecommendNextSteps lists emergency actions, system workups and the
// pattern's own recommendation, deduplicated in that order.
func (a *Analyzer) RecommendNextSteps(zoneIDs []string, flags []anatomy.RedFlag, p *PainPattern) []string {
	zones, _ := a.reg.Resolve(zoneIDs)
	return a.nextSteps(zones, flags, p)
}

func (a *Analyzer) analyze(zones []*anatomy.Zone) *PainPattern {
	if len(zones) == 0 {
		return nil
	}
	selected := make(map[string]bool, len(zones))
	for _, z := range zones {
		selected[z.ID] = true
	}
	if p := a.matchRadiation(selected); p != nil {
		return p
	}
	if p := a.matchReferred(zones, selected); p != nil {
		return p
	}
	if p := a.matchDermatomal(zones, selected); p != nil {
		return p
	}
	return matchMultiSystem(zones)
}

func (a *Analyzer) matchRadiation(selected map[string]bool) *PainPattern {
	for _, r := range a.rules.Radiation {
		if !selected[r.Primary] {
			continue
		}
		var hits []string
		for _, t := range r.Targets {
			if selected[t] {
				hits = append(hits, t)
			}
		}
		if len(hits) == 0 {
			continue
		}
		return &PainPattern{
			RuleID:         r.ID,
			Type:           TypeRadiation,
			PrimaryZone:    r.Primary,
			SecondaryZones: hits,
			Differential:   r.Differential,
			Urgency:        r.Urgency,
			Recommendation: r.Recommendation,
			Confidence:     r.Confidence,
		}
	}
	return nil
}

func (a *Analyzer) matchReferred(zones []*anatomy.Zone, selected map[string]bool) *PainPattern {
	for _, r := range a.rules.Referred {
		if !selected[r.Presenting] {
			continue
		}
		return &PainPattern{
			RuleID:         r.ID,
			Type:           r.Type,
			PrimaryZone:    r.Presenting,
			SecondaryZones: others(zones, r.Presenting),
			Differential:   r.Differential,
			Urgency:        r.Urgency,
			Recommendation: r.Recommendation,
			Confidence:     r.Confidence,
		}
	}
	return nil
}

func (a *Analyzer) matchDermatomal(zones []*anatomy.Zone, selected map[string]bool) *PainPattern {
	for _, r := range a.rules.Dermatomal {
		var hits []string
		for _, z := range r.Zones {
			if selected[z] {
				hits = append(hits, z)
			}
		}
		if len(hits) < dermatomeMinZones {
			continue
		}
		return &PainPattern{
			RuleID:         r.ID,
			Type:           TypeDermatomal,
			PrimaryZone:    hits[0],
			SecondaryZones: hits[1:],
			Differential:   append([]string{r.Dermatome + " dermatome"}, r.Differential...),
			Urgency:        r.Urgency,
			Recommendation: r.Recommendation,
			Confidence:     r.Confidence,
		}
	}
	return nil
}

func matchMultiSystem(zones []*anatomy.Zone) *PainPattern {
	counts := map[anatomy.System]int{}
	for _, z := range zones {
		for _, s := range z.Systems {
			counts[s]++
		}
	}
	var qualifying []string
	for _, s := range systemsOf(zones) {
		if counts[s] >= MultiSystemMinZonesPerSys {
			qualifying = append(qualifying, string(s))
		}
	}
	if len(qualifying) < MultiSystemMinSystems {
		return nil
	}
	primary := zones[0]
	for _, z := range zones[1:] {
		if z.Priority() > primary.Priority() {
			primary = z
		}
	}
	urgency := anatomy.SeverityMonitor
	if primary.Priority() >= 8 {
		urgency = anatomy.SeverityUrgent
	}
	return &PainPattern{
		RuleID:         multiSystemRuleID,
		Type:           TypeDiffuse,
		PrimaryZone:    primary.ID,
		SecondaryZones: others(zones, primary.ID),
		Differential:   qualifying,
		Urgency:        urgency,
		Recommendation: MultiSystemRecommendation,
		Confidence:     MultiSystemConfidence,
	}
}

func (a *Analyzer) detect(zones []*anatomy.Zone, symptoms []string) []anatomy.RedFlag {
	out := []anatomy.RedFlag{}
	seen := map[string]bool{}
	add := func(f anatomy.RedFlag) {
		if seen[f.ID] {
			return
		}
		seen[f.ID] = true
		out = append(out, f)
	}
	for _, z := range zones {
		if z.Clinical == nil {
			continue
		}
		for _, f := range z.Clinical.RedFlags {
			add(f)
		}
	}

	reported := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		reported[anatomy.NormalizeTerm(s)] = true
	}
	for _, r := range a.rules.CoOccurrence {
		if r.symptomsMatch(reported) && r.zoneMatch(zones) {
			add(r.Flag)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}

func (r CoOccurrenceRule) symptomsMatch(reported map[string]bool) bool {
	for _, s := range r.AllSymptoms {
		if !reported[s] {
			return false
		}
	}
	if len(r.AnySymptoms) == 0 {
		return len(r.AllSymptoms) > 0
	}
	for _, s := range r.AnySymptoms {
		if reported[s] {
			return true
		}
	}
	return false
}

func (r CoOccurrenceRule) zoneMatch(zones []*anatomy.Zone) bool {
	for _, z := range zones {
		for _, id := range r.ZoneIDs {
			if z.ID == id {
				return true
			}
		}
		for _, s := range r.Systems {
			if z.HasSystem(s) {
				return true
			}
		}
		for _, c := range r.Categories {
			if z.Category == c {
				return true
			}
		}
	}
	return false
}

var emergencyCallToAction = map[anatomy.Severity]string{
	anatomy.SeverityImmediate: "Call emergency services (911/112) immediately",
	anatomy.SeverityUrgent:    "Seek same-day urgent medical evaluation",
}

var systemWorkup = map[anatomy.System][]string{
	anatomy.SystemCardiovascular:   {"12-lead ECG", "Troponin"},
	anatomy.SystemRespiratory:      {"Pulse oximetry", "Chest X-ray"},
	anatomy.SystemGastrointestinal: {"Abdominal examination", "Full blood count and CRP"},
	anatomy.SystemHepatobiliary:    {"Liver function tests", "Abdominal ultrasound"},
	anatomy.SystemNeurological:     {"Focused neurological examination"},
	anatomy.SystemMusculoskeletal:  {"Musculoskeletal examination"},
	anatomy.SystemGenitourinary:    {"Urinalysis", "Renal function"},
	anatomy.SystemReproductive:     {"Pregnancy test where applicable"},
	anatomy.SystemVascular:         {"Peripheral pulse and perfusion assessment"},
	anatomy.SystemENT:              {"ENT examination"},
	anatomy.SystemOphthalmic:       {"Visual acuity and eye pressure"},
	anatomy.SystemDermatological:   {"Skin inspection"},
}

func (a *Analyzer) nextSteps(zones []*anatomy.Zone, flags []anatomy.RedFlag, p *PainPattern) []string {
	var steps []string
	seen := map[string]bool{}
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		steps = append(steps, s)
	}

	worst := anatomy.Severity("")
	for _, f := range flags {
		if worst == "" || f.Severity.Rank() < worst.Rank() {
			worst = f.Severity
		}
	}
	if cta, ok := emergencyCallToAction[worst]; ok {
		add(cta)
		for _, f := range flags {
			if f.Severity == anatomy.SeverityImmediate || f.Severity == anatomy.SeverityUrgent {
				add(f.Action)
			}
		}
	}
	for _, s := range systemsOf(zones) {
		for _, w := range systemWorkup[s] {
			add(w)
		}
	}
	if p != nil {
		add(p.Recommendation)
	}
	if steps == nil {
		steps = []string{}
	}
	return steps
}

func systemsOf(zones []*anatomy.Zone) []anatomy.System {
	out := []anatomy.System{}
	seen := map[anatomy.System]bool{}
	for _, z := range zones {
		for _, s := range z.Systems {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

func others(zones []*anatomy.Zone, primary string) []string {
	out := []string{}
	for _, z := range zones {
		if z.ID != primary {
			out = append(out, z.ID)
		}
	}
	return out
}
