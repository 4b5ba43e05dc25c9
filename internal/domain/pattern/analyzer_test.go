package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehr/intake/internal/domain/anatomy"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return NewAnalyzer(anatomy.MustDefaultRegistry())
}

func TestDefaultRules_ReferenceKnownZones(t *testing.T) {
	require.NoError(t, DefaultRules().Validate(anatomy.MustDefaultRegistry()))
}

func TestRules_ValidateReportsUnknownZone(t *testing.T) {
	rules := Rules{Radiation: []RadiationRule{{ID: "bad", Primary: "NOWHERE"}}}
	err := rules.Validate(anatomy.MustDefaultRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad:NOWHERE")
}

func TestAnalyzePattern_CardiacRadiationWinsOverReferred(t *testing.T) {
	p := newTestAnalyzer(t).AnalyzePattern([]string{"LEFT_PRECORDIAL", "LEFT_ARM"})
	require.NotNil(t, p)
	assert.Equal(t, TypeRadiation, p.Type)
	assert.Equal(t, anatomy.SeverityImmediate, p.Urgency)
	assert.Equal(t, "LEFT_PRECORDIAL", p.PrimaryZone)
	assert.Equal(t, []string{"LEFT_ARM"}, p.SecondaryZones)
	assert.InDelta(t, 0.85, p.Confidence, 1e-9)
}

func TestAnalyzePattern_RadiationNeedsATarget(t *testing.T) {
	p := newTestAnalyzer(t).AnalyzePattern([]string{"LEFT_PRECORDIAL"})
	assert.Nil(t, p)
}

func TestAnalyzePattern_ReferredWithoutSource(t *testing.T) {
	p := newTestAnalyzer(t).AnalyzePattern([]string{"LEFT_SHOULDER"})
	require.NotNil(t, p)
	assert.Equal(t, "kehr_sign", p.RuleID)
	assert.Equal(t, TypeVisceral, p.Type)
}

func TestAnalyzePattern_Dermatomal(t *testing.T) {
	p := newTestAnalyzer(t).AnalyzePattern([]string{"LEFT_LATERAL_CHEST", "THORACIC_SPINE"})
	require.NotNil(t, p)
	assert.Equal(t, TypeDermatomal, p.Type)
	assert.Equal(t, "LEFT_LATERAL_CHEST", p.PrimaryZone)
	assert.Contains(t, p.Differential, "T4-T6 dermatome")
}

func TestAnalyzePattern_DermatomeNeedsTwoZones(t *testing.T) {
	p := newTestAnalyzer(t).AnalyzePattern([]string{"LEFT_LATERAL_CHEST"})
	assert.Nil(t, p)
}

func TestAnalyzePattern_MultiSystem(t *testing.T) {
	// Two gastrointestinal and two genitourinary zones, no directional rule.
	p := newTestAnalyzer(t).AnalyzePattern([]string{"RIGHT_LUMBAR", "LEFT_LUMBAR", "LEFT_HYPOCHONDRIUM"})
	require.NotNil(t, p)
	assert.Equal(t, TypeDiffuse, p.Type)
	assert.InDelta(t, MultiSystemConfidence, p.Confidence, 1e-9)
	assert.Contains(t, p.Differential, string(anatomy.SystemGastrointestinal))
	assert.Contains(t, p.Differential, string(anatomy.SystemGenitourinary))
}

func TestAnalyzePattern_UnknownZonesExcluded(t *testing.T) {
	a := newTestAnalyzer(t)
	assert.Nil(t, a.AnalyzePattern([]string{"NOWHERE"}))
	p := a.AnalyzePattern([]string{"NOWHERE", "LEFT_PRECORDIAL", "LEFT_ARM"})
	require.NotNil(t, p)
	assert.Equal(t, TypeRadiation, p.Type)
}

func TestDetectRedFlags_CardiacScenario(t *testing.T) {
	flags := newTestAnalyzer(t).DetectRedFlags([]string{"LEFT_PRECORDIAL", "LEFT_ARM"}, []string{"diaphoresis"})
	require.NotEmpty(t, flags)
	assert.Equal(t, anatomy.SeverityImmediate, flags[0].Severity)
	assert.Contains(t, flags[0].Condition, "Coronary")

	var ids []string
	for _, f := range flags {
		ids = append(ids, f.ID)
	}
	assert.Contains(t, ids, "rf_cardiac_autonomic")
}

func TestDetectRedFlags_AppendicitisScenario(t *testing.T) {
	flags := newTestAnalyzer(t).DetectRedFlags([]string{"RIGHT_ILIAC"}, nil)
	found := false
	for _, f := range flags {
		if f.Severity == anatomy.SeverityUrgent && strings.Contains(f.Condition, "appendicitis") {
			found = true
		}
	}
	assert.True(t, found, "expected an urgent appendicitis flag in %v", flags)
}

func TestDetectRedFlags_SortedBySeverity(t *testing.T) {
	selections := [][]string{
		{"RIGHT_ILIAC", "LEFT_ILIAC", "LUMBAR_SPINE"},
		{"LEFT_KNEE", "LEFT_FOOT", "LEFT_CALF"},
		{"FOREHEAD", "OCCIPITAL", "POSTERIOR_NECK"},
	}
	for _, zones := range selections {
		flags := newTestAnalyzer(t).DetectRedFlags(zones, []string{"fever", "swelling"})
		for i := 1; i < len(flags); i++ {
			assert.LessOrEqual(t, flags[i-1].Severity.Rank(), flags[i].Severity.Rank(), "zones %v", zones)
		}
	}
}

func TestDetectRedFlags_DeduplicatesSharedFlags(t *testing.T) {
	flags := newTestAnalyzer(t).DetectRedFlags([]string{"LEFT_LOIN", "RIGHT_LOIN"}, nil)
	seen := map[string]int{}
	for _, f := range flags {
		seen[f.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

func TestDetectRedFlags_CoOccurrenceNeedsAllSymptoms(t *testing.T) {
	a := newTestAnalyzer(t)
	has := func(flags []anatomy.RedFlag, id string) bool {
		for _, f := range flags {
			if f.ID == id {
				return true
			}
		}
		return false
	}
	assert.False(t, has(a.DetectRedFlags([]string{"FOREHEAD"}, []string{"fever"}), "rf_meningism"))
	assert.True(t, has(a.DetectRedFlags([]string{"FOREHEAD"}, []string{"Fever", "neck stiffness"}), "rf_meningism"))
	assert.True(t, has(a.DetectRedFlags([]string{"SACRUM"}, []string{"saddle-anesthesia"}), "rf_saddle_sphincter"))
}

func TestDetectRedFlags_NoZonesIsEmptyNotNil(t *testing.T) {
	flags := newTestAnalyzer(t).DetectRedFlags(nil, nil)
	assert.NotNil(t, flags)
	assert.Empty(t, flags)
}

func TestRecommendNextSteps(t *testing.T) {
	a := newTestAnalyzer(t)
	zones := []string{"LEFT_PRECORDIAL", "LEFT_ARM"}
	flags := a.DetectRedFlags(zones, nil)
	p := a.AnalyzePattern(zones)

	steps := a.RecommendNextSteps(zones, flags, p)
	require.NotEmpty(t, steps)
	assert.Equal(t, emergencyCallToAction[anatomy.SeverityImmediate], steps[0])
	assert.Contains(t, steps, "12-lead ECG")
	assert.Equal(t, p.Recommendation, steps[len(steps)-1])

	seen := map[string]bool{}
	for _, s := range steps {
		assert.False(t, seen[s], "duplicate step %q", s)
		seen[s] = true
	}
}

func TestRecommendNextSteps_NoFlagsNoCallToAction(t *testing.T) {
	a := newTestAnalyzer(t)
	steps := a.RecommendNextSteps([]string{"LEFT_ELBOW"}, nil, nil)
	assert.Equal(t, []string{"Musculoskeletal examination"}, steps)
}

func TestAnalyze_ReportsUnresolved(t *testing.T) {
	in := newTestAnalyzer(t).Analyze([]string{"LEFT_ELBOW", "ELBOW_OF_NOWHERE"}, nil)
	assert.Equal(t, []string{"ELBOW_OF_NOWHERE"}, in.UnresolvedZones)
	assert.Equal(t, []anatomy.System{anatomy.SystemMusculoskeletal}, in.Systems)
	assert.True(t, in.HasSeverity(anatomy.SeverityUrgent))
	assert.False(t, in.HasSeverity(anatomy.SeverityImmediate))
}
