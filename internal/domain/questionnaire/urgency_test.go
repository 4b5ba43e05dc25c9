package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ehr/intake/internal/domain/anatomy"
)

func TestSeverityUrgencyTranslation(t *testing.T) {
	tests := []struct {
		severity anatomy.Severity
		urgency  Urgency
	}{
		{anatomy.SeverityImmediate, UrgencyEmergency},
		{anatomy.SeverityUrgent, UrgencyHigh},
		{anatomy.SeverityMonitor, UrgencyMedium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.urgency, UrgencyForSeverity(tt.severity))
		assert.Equal(t, tt.severity, SeverityForUrgency(tt.urgency))
	}
}

func TestSeverityUrgencyTranslation_Edges(t *testing.T) {
	assert.Equal(t, anatomy.SeverityMonitor, SeverityForUrgency(UrgencyLow))
	assert.Equal(t, UrgencyLow, UrgencyForSeverity("unknown"))
	assert.Equal(t, anatomy.SeverityMonitor, SeverityForUrgency("unknown"))
}

func TestSeverityUrgencyTranslation_PreservesOrder(t *testing.T) {
	sev := []anatomy.Severity{anatomy.SeverityImmediate, anatomy.SeverityUrgent, anatomy.SeverityMonitor}
	for i := 1; i < len(sev); i++ {
		assert.Less(t, UrgencyForSeverity(sev[i-1]).Rank(), UrgencyForSeverity(sev[i]).Rank())
	}
}

func TestUrgencyPoints(t *testing.T) {
	assert.Equal(t, 40, UrgencyEmergency.Points())
	assert.Equal(t, 25, UrgencyHigh.Points())
	assert.Equal(t, 15, UrgencyMedium.Points())
	assert.Equal(t, 5, UrgencyLow.Points())
	assert.Equal(t, 0, Urgency("other").Points())
}

func TestFlagsFromRedFlags(t *testing.T) {
	flags := FlagsFromRedFlags([]anatomy.RedFlag{anatomy.FlagAppendicitis})
	assert.Equal(t, []Flag{{
		RuleID:  "rf_appendicitis",
		Urgency: UrgencyHigh,
		Message: anatomy.FlagAppendicitis.Condition,
		Action:  anatomy.FlagAppendicitis.Action,
	}}, flags)
}
