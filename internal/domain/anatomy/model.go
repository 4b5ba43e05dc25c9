package anatomy

import "strings"

// Language selects which of a zone's parallel label fields is surfaced.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
	LanguageSpanish Language = "es"
)

// SupportedLanguages lists every language a zone must carry a label for.
var SupportedLanguages = []Language{LanguageEnglish, LanguageFrench, LanguageSpanish}

// ParseLanguage returns the language for a code such as "en" or "fr-CA".
func ParseLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	for _, l := range SupportedLanguages {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}

// Category is the top-level body region a zone belongs to.
type Category string

const (
	CategoryHead      Category = "head"
	CategoryNeck      Category = "neck"
	CategoryChest     Category = "chest"
	CategoryAbdomen   Category = "abdomen"
	CategoryPelvis    Category = "pelvis"
	CategoryBack      Category = "back"
	CategoryUpperLimb Category = "upper_limb"
	CategoryLowerLimb Category = "lower_limb"
)

// System is a physiological-system tag.
type System string

const (
	SystemCardiovascular   System = "cardiovascular"
	SystemRespiratory      System = "respiratory"
	SystemGastrointestinal System = "gastrointestinal"
	SystemNeurological     System = "neurological"
	SystemMusculoskeletal  System = "musculoskeletal"
	SystemGenitourinary    System = "genitourinary"
	SystemReproductive     System = "reproductive"
	SystemDermatological   System = "dermatological"
	SystemENT              System = "ent"
	SystemOphthalmic       System = "ophthalmic"
	SystemVascular         System = "vascular"
	SystemHepatobiliary    System = "hepatobiliary"
)

// Severity of a red flag. Immediate is the highest.
type Severity string

const (
	SeverityImmediate Severity = "immediate"
	SeverityUrgent    Severity = "urgent"
	SeverityMonitor   Severity = "monitor"
)

// Rank orders severities ascending: immediate=0, urgent=1, monitor=2.
// Unknown values sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityImmediate:
		return 0
	case SeverityUrgent:
		return 1
	case SeverityMonitor:
		return 2
	}
	return 3
}

// RelationKind describes how a related zone is connected to its source.
type RelationKind string

const (
	RelationRadiation  RelationKind = "radiation"
	RelationReferred   RelationKind = "referred"
	RelationAdjacent   RelationKind = "adjacent"
	RelationDermatomal RelationKind = "dermatomal"
)

// RedFlag is a single finding that points to possible urgent or emergent pathology.
type RedFlag struct {
	ID        string   `json:"id"`
	Symptom   string   `json:"symptom"`
	Severity  Severity `json:"severity"`
	Action    string   `json:"action"`
	Condition string   `json:"condition"`
	Criteria  []string `json:"criteria,omitempty"`
}

// RelatedZone links a zone to another zone by relationship kind.
type RelatedZone struct {
	ZoneID string       `json:"zone_id"`
	Kind   RelationKind `json:"kind"`
}

// ClinicalContext is the clinical metadata carried by a zone.
type ClinicalContext struct {
	Diagnoses       []string      `json:"diagnoses"`
	RedFlags        []RedFlag     `json:"red_flags"`
	DiagnosticCodes []string      `json:"diagnostic_codes"`
	RelatedZones    []RelatedZone `json:"related_zones"`
	Priority        int           `json:"priority"`
	IsCommon        bool          `json:"is_common"`
}

// Zone is a node in the anatomical tree. Only terminal zones are selectable.
type Zone struct {
	ID       string              `json:"id"`
	Labels   map[Language]string `json:"labels"`
	Category Category            `json:"category"`
	Systems  []System            `json:"systems"`
	ParentID string              `json:"parent_id,omitempty"`
	ChildIDs []string            `json:"child_ids,omitempty"`
	Terminal bool                `json:"terminal"`
	Aliases  []string            `json:"aliases,omitempty"`
	Clinical *ClinicalContext    `json:"clinical_context,omitempty"`
}

// Label returns the zone label in lang, falling back to English.
func (z *Zone) Label(lang Language) string {
	if l, ok := z.Labels[lang]; ok && l != "" {
		return l
	}
	return z.Labels[LanguageEnglish]
}

// HasSystem reports whether the zone is tagged with sys.
func (z *Zone) HasSystem(sys System) bool {
	for _, s := range z.Systems {
		if s == sys {
			return true
		}
	}
	return false
}

// Priority returns the clinical priority, or 0 for grouping nodes.
func (z *Zone) Priority() int {
	if z.Clinical == nil {
		return 0
	}
	return z.Clinical.Priority
}

// NormalizeTerm folds a clinical term into the key used for alias lookups:
// lower case, with spaces, hyphens and underscores collapsed to a single underscore.
func NormalizeTerm(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	var b strings.Builder
	lastSep := false
	for _, r := range term {
		switch r {
		case ' ', '-', '_', '\t':
			if !lastSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			lastSep = true
		default:
			b.WriteRune(r)
			lastSep = false
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
