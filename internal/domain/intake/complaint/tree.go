// Package complaint holds the chief-complaint interview scripts run after the
// body map. Each tree appends history, review-of-systems findings, red flags
// and plan items to the encounter.
package complaint

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
)

const (
	Chest       = "chest"
	Abdomen     = "abdomen"
	Head        = "head"
	Back        = "back"
	Pelvis      = "pelvis"
	Limb        = "limb"
	Respiratory = "respiratory"
	General     = "general"
)

// Tree is one complaint interview script.
type Tree interface {
	Name() string
	Ask(ctx context.Context, enc *encounter.Encounter, p encounter.AnswerProvider) error
}

var treeForCategory = map[anatomy.Category]string{
	anatomy.CategoryHead:      Head,
	anatomy.CategoryNeck:      Head,
	anatomy.CategoryChest:     Chest,
	anatomy.CategoryAbdomen:   Abdomen,
	anatomy.CategoryPelvis:    Pelvis,
	anatomy.CategoryBack:      Back,
	anatomy.CategoryUpperLimb: Limb,
	anatomy.CategoryLowerLimb: Limb,
}

// keywords are scanned in order; the first tree with a matching keyword wins.
var keywords = []struct {
	tree  string
	words []string
}{
	{Respiratory, []string{"breath", "cough", "wheez", "dyspn", "asthma"}},
	{Chest, []string{"chest", "heart", "angina", "palpitation"}},
	{Abdomen, []string{"abdom", "stomach", "belly", "nausea", "vomit", "diarrh"}},
	{Head, []string{"head", "migraine", "dizz", "neck", "faint"}},
	{Back, []string{"back", "spine", "sciatica", "lumbar"}},
	{Pelvis, []string{"pelvi", "urin", "groin", "menstru", "period", "bladder"}},
	{Limb, []string{"arm", "leg", "knee", "hip", "shoulder", "ankle", "foot", "hand", "wrist", "elbow", "limb"}},
}

// Registry selects a tree by category or chief complaint, falling back to the
// general tree.
type Registry struct {
	trees map[string]Tree
	log   zerolog.Logger
}

func NewRegistry(log zerolog.Logger) *Registry {
	r := &Registry{trees: map[string]Tree{}, log: log}
	for _, t := range []Tree{
		chestTree{}, respiratoryTree{}, abdomenTree{}, pelvisTree{},
		headTree{}, backTree{}, limbTree{}, generalTree{},
	} {
		r.trees[t.Name()] = t
	}
	return r
}

// Names lists the registered tree names.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.trees))
	for _, k := range keywords {
		out = append(out, k.tree)
	}
	return append(out, General)
}

// ForCategory returns the tree mapped to a zone category.
func (r *Registry) ForCategory(cat anatomy.Category) Tree {
	if name, ok := treeForCategory[cat]; ok {
		return r.trees[name]
	}
	r.log.Warn().Str("category", string(cat)).Msg("no complaint tree for category, using general")
	return r.trees[General]
}

// ForComplaint resolves a tree name or free-text chief complaint.
func (r *Registry) ForComplaint(complaint string) Tree {
	c := strings.ToLower(strings.TrimSpace(complaint))
	if t, ok := r.trees[c]; ok {
		return t
	}
	for _, k := range keywords {
		for _, w := range k.words {
			if strings.Contains(c, w) {
				return r.trees[k.tree]
			}
		}
	}
	r.log.Warn().Str("complaint", complaint).Msg("no complaint tree matched, using general")
	return r.trees[General]
}

func withoutNone(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" && v != "none" {
			out = append(out, v)
		}
	}
	return out
}
