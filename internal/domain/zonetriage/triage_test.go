package zonetriage

import (
	"testing"

	"github.com/ehr/intake/internal/domain/anatomy"
)

func newTestTriage() *Triage {
	return New(anatomy.MustDefaultRegistry())
}

func TestBucketPriority(t *testing.T) {
	tests := []struct {
		priority int
		want     Severity
	}{
		{1, SeverityLow}, {3, SeverityLow},
		{4, SeverityModerate}, {5, SeverityModerate},
		{6, SeverityHigh}, {7, SeverityHigh},
		{8, SeverityCritical}, {10, SeverityCritical},
	}
	for _, tt := range tests {
		if got := BucketPriority(tt.priority); got != tt.want {
			t.Errorf("BucketPriority(%d) = %s, want %s", tt.priority, got, tt.want)
		}
	}
}

func TestZoneSeverity(t *testing.T) {
	tr := newTestTriage()
	tests := []struct {
		zone string
		want Severity
	}{
		{"LEFT_PRECORDIAL", SeverityCritical},
		{"RIGHT_ILIAC", SeverityCritical},
		{"OCCIPITAL", SeverityHigh},
		{"LEFT_KNEE", SeverityModerate},
		{"LEFT_ELBOW", SeverityLow},
	}
	for _, tt := range tests {
		got, ok := tr.ZoneSeverity(tt.zone)
		if !ok || got != tt.want {
			t.Errorf("ZoneSeverity(%s) = %s,%v want %s", tt.zone, got, ok, tt.want)
		}
	}
	if _, ok := tr.ZoneSeverity("NOWHERE"); ok {
		t.Error("expected unknown zone to report ok=false")
	}
}

func TestAssessPainPoints_IntensityNineEscalatesModerateZone(t *testing.T) {
	a := newTestTriage().AssessPainPoints([]PainPoint{{ZoneID: "LEFT_KNEE", Intensity: 9}})
	if !a.ShouldEscalate {
		t.Error("expected escalation for intensity 9")
	}
	if a.MaxSeverity != SeverityModerate {
		t.Errorf("expected MODERATE, got %s", a.MaxSeverity)
	}
}

func TestAssessPainPoints_HighZoneWithIntensityEightBecomesCritical(t *testing.T) {
	a := newTestTriage().AssessPainPoints([]PainPoint{{ZoneID: "OCCIPITAL", Intensity: 8}})
	if a.MaxSeverity != SeverityCritical {
		t.Errorf("expected CRITICAL, got %s", a.MaxSeverity)
	}
	if len(a.CriticalZones) != 1 || a.CriticalZones[0] != "OCCIPITAL" {
		t.Errorf("unexpected critical zones %v", a.CriticalZones)
	}
	if !a.ShouldEscalate {
		t.Error("expected escalation")
	}
}

func TestAssessPainPoints_ModerateZoneIntensityEightStaysModerate(t *testing.T) {
	a := newTestTriage().AssessPainPoints([]PainPoint{{ZoneID: "LEFT_KNEE", Intensity: 8}})
	if a.MaxSeverity != SeverityModerate || a.ShouldEscalate {
		t.Errorf("unexpected assessment %+v", a)
	}
}

func TestAssessPainPoints_ComprehensiveEvaluation(t *testing.T) {
	a := newTestTriage().AssessPainPoints([]PainPoint{
		{ZoneID: "LEFT_ELBOW", Intensity: 2},
		{ZoneID: "RIGHT_ELBOW", Intensity: 2},
		{ZoneID: "LEFT_HAND", Intensity: 3},
	})
	if !a.RequiresComprehensiveEvaluation {
		t.Error("expected comprehensive evaluation for three points")
	}
	if a.ShouldEscalate {
		t.Error("low zones with low intensity should not escalate")
	}
	if a.MaxSeverity != SeverityLow {
		t.Errorf("expected LOW, got %s", a.MaxSeverity)
	}
}

func TestAssessPainPoints_UnknownZonesSkipped(t *testing.T) {
	a := newTestTriage().AssessPainPoints([]PainPoint{
		{ZoneID: "NOWHERE", Intensity: 10},
		{ZoneID: "ALSO_NOWHERE", Intensity: 10},
		{ZoneID: "LEFT_ELBOW", Intensity: 1},
	})
	if a.ShouldEscalate || a.RequiresComprehensiveEvaluation {
		t.Errorf("unknown zones must not contribute: %+v", a)
	}
	if len(a.UnresolvedZones) != 2 {
		t.Errorf("expected 2 unresolved zones, got %v", a.UnresolvedZones)
	}
}

func TestAssessPainPoints_Empty(t *testing.T) {
	a := newTestTriage().AssessPainPoints(nil)
	if a.MaxSeverity != SeverityLow || a.ShouldEscalate || a.RequiresComprehensiveEvaluation {
		t.Errorf("unexpected assessment %+v", a)
	}
}
