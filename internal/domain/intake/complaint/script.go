package complaint

import (
	"context"
	"fmt"
	"strings"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

// script sequences one tree's prompts. The first provider error sticks: later
// asks return zero values and Ask reports the stored error.
type script struct {
	ctx    context.Context
	enc    *encounter.Encounter
	p      encounter.AnswerProvider
	prefix string
	err    error
}

func newScript(ctx context.Context, name string, enc *encounter.Encounter, p encounter.AnswerProvider) *script {
	return &script{ctx: ctx, enc: enc, p: p, prefix: "ct_" + name + "_"}
}

func (s *script) yesNo(id, text string) bool {
	if s.err != nil {
		return false
	}
	v, err := s.p.AskYesNo(s.ctx, encounter.Prompt{ID: s.prefix + id, Kind: encounter.KindYesNo, Text: text})
	if err != nil {
		s.err = err
		return false
	}
	return v
}

func (s *script) choose(id, text string, multi bool, opts ...encounter.Option) []string {
	if s.err != nil {
		return nil
	}
	v, err := s.p.AskMultipleChoice(s.ctx, encounter.Prompt{
		ID: s.prefix + id, Kind: encounter.KindChoice, Text: text, Options: opts, Multi: multi,
	})
	if err != nil {
		s.err = err
		return nil
	}
	return v
}

func (s *script) one(id, text string, opts ...encounter.Option) string {
	v := s.choose(id, text, false, opts...)
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

func (s *script) number(id, text string, min, max int) int {
	if s.err != nil {
		return min
	}
	v, err := s.p.AskNumeric(s.ctx, encounter.Prompt{ID: s.prefix + id, Kind: encounter.KindNumeric, Text: text, Min: min, Max: max})
	if err != nil {
		s.err = err
		return min
	}
	return v
}

func (s *script) text(id, text string) string {
	if s.err != nil {
		return ""
	}
	v, err := s.p.AskFreeText(s.ctx, encounter.Prompt{ID: s.prefix + id, Kind: encounter.KindFreeText, Text: text, Optional: true})
	if err != nil {
		s.err = err
		return ""
	}
	return strings.TrimSpace(v)
}

func (s *script) history(format string, args ...any) {
	if s.err == nil {
		s.enc.AddHistory(fmt.Sprintf(format, args...))
	}
}

func (s *script) ros(finding string) {
	if s.err == nil {
		s.enc.AddReviewOfSystems(finding)
	}
}

func (s *script) plan(item string) {
	if s.err == nil {
		s.enc.AddPlan(item)
	}
}

func (s *script) flag(id string, u questionnaire.Urgency, message, action string) {
	if s.err != nil {
		return
	}
	s.enc.AddFlags(questionnaire.Flag{RuleID: s.prefix + id, Urgency: u, Message: message, Action: action})
	if u == questionnaire.UrgencyEmergency {
		a := encounter.Alert{Urgency: u, Title: message, Message: message, Action: action}
		s.enc.AddAlert(a)
		s.p.ShowEmergencyAlert(s.ctx, a)
	}
}

// note records an optional free-text elaboration into the history.
func (s *script) note(id, text, label string) {
	if v := s.text(id, text); v != "" && !strings.EqualFold(v, "none") {
		s.history("%s: %s", label, v)
	}
}

func opt(value, label string) encounter.Option {
	return encounter.Option{Value: value, Label: label}
}

func labelOf(value string, opts []encounter.Option) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func labelsOf(values []string, opts []encounter.Option) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(labelOf(v, opts)))
	}
	return strings.Join(out, ", ")
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
