// Package encountertest provides a scripted AnswerProvider for interview tests.
package encountertest

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

// ScriptedProvider answers prompts from a map keyed by prompt id. Prompts
// without a scripted answer get a neutral default: no, the minimum, the first
// option, or "none".
type ScriptedProvider struct {
	Answers  map[string]string
	Asked    []string
	Alerts   []encounter.Alert
	Progress []encounter.Progress
	Err      map[string]error
}

func New(answers map[string]string) *ScriptedProvider {
	if answers == nil {
		answers = map[string]string{}
	}
	return &ScriptedProvider{Answers: answers}
}

// WasAsked reports whether a prompt with the given id was presented.
func (s *ScriptedProvider) WasAsked(id string) bool {
	for _, a := range s.Asked {
		if a == id {
			return true
		}
	}
	return false
}

// answer returns the scripted value for p after running it through
// p.Normalize, so a script can only give answers a patient could.
func (s *ScriptedProvider) answer(p encounter.Prompt) (string, bool, error) {
	s.Asked = append(s.Asked, p.ID)
	if err := s.Err[p.ID]; err != nil {
		return "", false, err
	}
	raw, ok := s.Answers[p.ID]
	if !ok {
		return "", false, nil
	}
	v, err := p.Normalize(raw)
	if err != nil {
		return "", false, fmt.Errorf("scripted answer: %w", err)
	}
	return v, true, nil
}

func (s *ScriptedProvider) AskYesNo(_ context.Context, p encounter.Prompt) (bool, error) {
	v, ok, err := s.answer(p)
	if err != nil || !ok {
		return false, err
	}
	return v == questionnaire.AnswerYes, nil
}

func (s *ScriptedProvider) AskMultipleChoice(_ context.Context, p encounter.Prompt) ([]string, error) {
	v, ok, err := s.answer(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		if len(p.Options) == 0 {
			return nil, nil
		}
		return []string{p.Options[0].Value}, nil
	}
	return strings.Split(v, ","), nil
}

func (s *ScriptedProvider) AskNumeric(_ context.Context, p encounter.Prompt) (int, error) {
	v, ok, err := s.answer(p)
	if err != nil || !ok {
		return p.Min, err
	}
	return strconv.Atoi(v)
}

func (s *ScriptedProvider) AskFreeText(_ context.Context, p encounter.Prompt) (string, error) {
	v, ok, err := s.answer(p)
	if err != nil {
		return "", err
	}
	if !ok {
		return "none", nil
	}
	return v, nil
}

func (s *ScriptedProvider) AskQuestion(ctx context.Context, q questionnaire.Question) (string, error) {
	p := encounter.PromptForQuestion(q)
	switch p.Kind {
	case encounter.KindYesNo:
		yes, err := s.AskYesNo(ctx, p)
		if yes {
			return questionnaire.AnswerYes, err
		}
		return questionnaire.AnswerNo, err
	case encounter.KindNumeric:
		n, err := s.AskNumeric(ctx, p)
		return strconv.Itoa(n), err
	case encounter.KindChoice:
		vs, err := s.AskMultipleChoice(ctx, p)
		return strings.Join(vs, ","), err
	}
	return s.AskFreeText(ctx, p)
}

func (s *ScriptedProvider) ShowEmergencyAlert(_ context.Context, a encounter.Alert) {
	s.Alerts = append(s.Alerts, a)
}

func (s *ScriptedProvider) ShowProgress(_ context.Context, p encounter.Progress) {
	s.Progress = append(s.Progress, p)
}
