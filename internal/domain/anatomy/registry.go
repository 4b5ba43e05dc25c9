package anatomy

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry is the read-only index over the anatomical tree. It is built once and
// is safe for concurrent use without locking.
type Registry struct {
	zones   []*Zone
	byID    map[string]*Zone
	byAlias map[string]*Zone
	roots   []*Zone
}

// ValidationError collects every integrity problem found in a zone table.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("zone table invalid (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// NewRegistry indexes zones and validates the resulting tree. Terminal zones get
// their nil clinical slices replaced by empty ones.
func NewRegistry(zones []Zone) (*Registry, error) {
	r := &Registry{
		byID:    make(map[string]*Zone, len(zones)),
		byAlias: make(map[string]*Zone),
	}
	var dupes []string
	for i := range zones {
		z := zones[i]
		if z.Terminal && z.Clinical != nil {
			c := *z.Clinical
			normalizeClinical(&c)
			z.Clinical = &c
		}
		key := strings.ToUpper(z.ID)
		if _, ok := r.byID[key]; ok {
			dupes = append(dupes, fmt.Sprintf("duplicate zone id %q", z.ID))
			continue
		}
		zp := &z
		r.zones = append(r.zones, zp)
		r.byID[key] = zp
		if z.ParentID == "" {
			r.roots = append(r.roots, zp)
		}
	}
	for _, z := range r.zones {
		for _, a := range z.Aliases {
			k := NormalizeTerm(a)
			if k == "" {
				continue
			}
			if other, ok := r.byAlias[k]; ok && other != z {
				dupes = append(dupes, fmt.Sprintf("alias %q claimed by %s and %s", a, other.ID, z.ID))
				continue
			}
			r.byAlias[k] = z
		}
	}
	if err := r.validate(dupes); err != nil {
		return nil, err
	}
	return r, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// DefaultRegistry builds the shipped zone table. The result is memoized.
func DefaultRegistry() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = NewRegistry(DefaultZones())
	})
	return defaultReg, defaultErr
}

// MustDefaultRegistry is DefaultRegistry for process start-up; it panics on an
// invalid table.
func MustDefaultRegistry() *Registry {
	r, err := DefaultRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

func normalizeClinical(c *ClinicalContext) {
	if c.Diagnoses == nil {
		c.Diagnoses = []string{}
	}
	if c.RedFlags == nil {
		c.RedFlags = []RedFlag{}
	}
	if c.DiagnosticCodes == nil {
		c.DiagnosticCodes = []string{}
	}
	if c.RelatedZones == nil {
		c.RelatedZones = []RelatedZone{}
	}
}

// Validate re-runs the integrity checks against the built index.
func (r *Registry) Validate() error {
	return r.validate(nil)
}

func (r *Registry) validate(problems []string) error {
	for _, z := range r.zones {
		for _, lang := range SupportedLanguages {
			if strings.TrimSpace(z.Labels[lang]) == "" {
				problems = append(problems, fmt.Sprintf("%s: empty %s label", z.ID, lang))
			}
		}
		if z.ParentID != "" {
			p := r.Zone(z.ParentID)
			switch {
			case p == nil:
				problems = append(problems, fmt.Sprintf("%s: unknown parent %s", z.ID, z.ParentID))
			case !containsFold(p.ChildIDs, z.ID):
				problems = append(problems, fmt.Sprintf("%s: parent %s does not list it as a child", z.ID, p.ID))
			}
		}
		for _, cid := range z.ChildIDs {
			c := r.Zone(cid)
			switch {
			case c == nil:
				problems = append(problems, fmt.Sprintf("%s: unknown child %s", z.ID, cid))
			case !strings.EqualFold(c.ParentID, z.ID):
				problems = append(problems, fmt.Sprintf("%s: child %s has parent %q", z.ID, cid, c.ParentID))
			}
		}
		if z.Terminal {
			if len(z.ChildIDs) > 0 {
				problems = append(problems, fmt.Sprintf("%s: terminal zone has children", z.ID))
			}
			if z.Clinical == nil {
				problems = append(problems, fmt.Sprintf("%s: terminal zone without clinical context", z.ID))
				continue
			}
			if p := z.Clinical.Priority; p < 1 || p > 10 {
				problems = append(problems, fmt.Sprintf("%s: priority %d out of range", z.ID, p))
			}
			for _, rel := range z.Clinical.RelatedZones {
				if r.Zone(rel.ZoneID) == nil {
					problems = append(problems, fmt.Sprintf("%s: related zone %s does not exist", z.ID, rel.ZoneID))
				}
			}
		}
	}
	problems = append(problems, r.cycles()...)
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// cycles walks parent links from every zone; a walk longer than the table
// means the parent chain loops.
func (r *Registry) cycles() []string {
	var out []string
	for _, z := range r.zones {
		seen := map[string]bool{}
		for cur := z; cur != nil && cur.ParentID != ""; cur = r.Zone(cur.ParentID) {
			if seen[cur.ID] {
				out = append(out, fmt.Sprintf("%s: parent chain contains a cycle", z.ID))
				break
			}
			seen[cur.ID] = true
		}
	}
	return out
}

func containsFold(ids []string, id string) bool {
	for _, c := range ids {
		if strings.EqualFold(c, id) {
			return true
		}
	}
	return false
}

// Zone returns the zone for an id or normalized alias, or nil.
func (r *Registry) Zone(id string) *Zone {
	if z, ok := r.byID[strings.ToUpper(strings.TrimSpace(id))]; ok {
		return z
	}
	return r.byAlias[NormalizeTerm(id)]
}

// Search resolves a free clinical term ("right lower quadrant", "RLQ") to a zone.
func (r *Registry) Search(term string) *Zone {
	return r.Zone(term)
}

// Children returns the direct children of id in declaration order.
func (r *Registry) Children(id string) []*Zone {
	z := r.Zone(id)
	if z == nil {
		return nil
	}
	out := make([]*Zone, 0, len(z.ChildIDs))
	for _, cid := range z.ChildIDs {
		if c := r.Zone(cid); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Parent returns the parent of id, or nil for roots and unknown ids.
func (r *Registry) Parent(id string) *Zone {
	z := r.Zone(id)
	if z == nil || z.ParentID == "" {
		return nil
	}
	return r.Zone(z.ParentID)
}

// Path returns the root-to-node breadcrumb ending at id.
func (r *Registry) Path(id string) []*Zone {
	z := r.Zone(id)
	if z == nil {
		return nil
	}
	var rev []*Zone
	for cur := z; cur != nil && len(rev) <= len(r.zones); cur = r.Zone(cur.ParentID) {
		rev = append(rev, cur)
		if cur.ParentID == "" {
			break
		}
	}
	out := make([]*Zone, len(rev))
	for i, zz := range rev {
		out[len(rev)-1-i] = zz
	}
	return out
}

// Roots returns the top-level grouping zones.
func (r *Registry) Roots() []*Zone {
	return append([]*Zone(nil), r.roots...)
}

// All returns every zone in table order.
func (r *Registry) All() []*Zone {
	return append([]*Zone(nil), r.zones...)
}

// TerminalZones returns every selectable zone in table order.
func (r *Registry) TerminalZones() []*Zone {
	var out []*Zone
	for _, z := range r.zones {
		if z.Terminal {
			out = append(out, z)
		}
	}
	return out
}

// ZonesByCategory returns the terminal zones of cat, highest priority first.
func (r *Registry) ZonesByCategory(cat Category) []*Zone {
	var out []*Zone
	for _, z := range r.zones {
		if z.Terminal && z.Category == cat {
			out = append(out, z)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority() > out[j].Priority() })
	return out
}

// Related is a resolved related-zone reference.
type Related struct {
	Zone *Zone        `json:"zone"`
	Kind RelationKind `json:"kind"`
}

// RelatedZones dereferences id's related-zone list; unresolvable references are
// skipped.
func (r *Registry) RelatedZones(id string) []Related {
	z := r.Zone(id)
	if z == nil || z.Clinical == nil {
		return nil
	}
	out := make([]Related, 0, len(z.Clinical.RelatedZones))
	for _, rel := range z.Clinical.RelatedZones {
		if t := r.Zone(rel.ZoneID); t != nil {
			out = append(out, Related{Zone: t, Kind: rel.Kind})
		}
	}
	return out
}

// Label returns the label of id in lang, or "" when id is unknown.
func (r *Registry) Label(id string, lang Language) string {
	z := r.Zone(id)
	if z == nil {
		return ""
	}
	return z.Label(lang)
}

// Resolve maps ids to zones, returning the ids that could not be resolved
// separately. Duplicates are dropped.
func (r *Registry) Resolve(ids []string) ([]*Zone, []string) {
	var zones []*Zone
	var missing []string
	seen := map[string]bool{}
	for _, id := range ids {
		z := r.Zone(id)
		if z == nil {
			missing = append(missing, id)
			continue
		}
		if seen[z.ID] {
			continue
		}
		seen[z.ID] = true
		zones = append(zones, z)
	}
	return zones, missing
}
