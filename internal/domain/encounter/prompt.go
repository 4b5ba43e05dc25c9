package encounter

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ehr/intake/internal/domain/questionnaire"
)

// PromptKind selects how a prompt is presented and how its answer is encoded.
type PromptKind string

const (
	KindYesNo    PromptKind = "yes_no"
	KindChoice   PromptKind = "choice"
	KindNumeric  PromptKind = "numeric"
	KindFreeText PromptKind = "free_text"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Prompt is a question waiting for the patient. ID is stable across replays of
// the same interview and identifies the answer on the navigation stack.
type Prompt struct {
	ID       string     `json:"id"`
	Kind     PromptKind `json:"kind"`
	Text     string     `json:"text"`
	Options  []Option   `json:"options,omitempty"`
	Multi    bool       `json:"multi,omitempty"`
	Min      int        `json:"min,omitempty"`
	Max      int        `json:"max,omitempty"`
	Optional bool       `json:"optional,omitempty"`
}

// AnswerProvider is the UI boundary. Ask methods block until the patient
// answers or ctx is done.
type AnswerProvider interface {
	AskYesNo(ctx context.Context, p Prompt) (bool, error)
	AskMultipleChoice(ctx context.Context, p Prompt) ([]string, error)
	AskNumeric(ctx context.Context, p Prompt) (int, error)
	AskFreeText(ctx context.Context, p Prompt) (string, error)
	AskQuestion(ctx context.Context, q questionnaire.Question) (string, error)
	ShowEmergencyAlert(ctx context.Context, a Alert)
	ShowProgress(ctx context.Context, p Progress)
}

// Progress reports the interview position to the UI.
type Progress struct {
	Phase   Phase  `json:"phase"`
	Step    int    `json:"step"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// ProgressFor builds the progress report for entering phase p.
func ProgressFor(p Phase, message string) Progress {
	return Progress{Phase: p, Step: p.Index() + 1, Total: len(phaseOrder), Message: message}
}

// PromptForQuestion converts a questionnaire question into a prompt.
func PromptForQuestion(q questionnaire.Question) Prompt {
	p := Prompt{ID: q.ID, Text: q.Text}
	switch q.Type {
	case questionnaire.TypeYesNo:
		p.Kind = KindYesNo
	case questionnaire.TypeScale:
		p.Kind, p.Min, p.Max = KindNumeric, q.Min, q.Max
	case questionnaire.TypeSingleChoice, questionnaire.TypeMultiChoice:
		p.Kind = KindChoice
		p.Multi = q.Type == questionnaire.TypeMultiChoice
		for _, o := range q.Options {
			p.Options = append(p.Options, Option{Value: o.Value, Label: o.Label})
		}
	default:
		p.Kind = KindFreeText
		p.Optional = true
	}
	return p
}

// Normalize validates a raw answer against the prompt and returns its
// canonical encoding: yes/no, a decimal integer, a comma-joined list of option
// values with repeats dropped, or trimmed text.
func (p Prompt) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	switch p.Kind {
	case KindYesNo:
		switch strings.ToLower(raw) {
		case "yes", "y", "true":
			return questionnaire.AnswerYes, nil
		case "no", "n", "false":
			return questionnaire.AnswerNo, nil
		}
		return "", fmt.Errorf("answer to %s must be yes or no", p.ID)
	case KindNumeric:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("answer to %s must be a whole number", p.ID)
		}
		if n < p.Min || n > p.Max {
			return "", fmt.Errorf("answer to %s must be between %d and %d", p.ID, p.Min, p.Max)
		}
		return strconv.Itoa(n), nil
	case KindChoice:
		var picked []string
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if !p.hasOption(v) {
				return "", fmt.Errorf("%q is not an option for %s", v, p.ID)
			}
			if slices.Contains(picked, v) {
				continue
			}
			picked = append(picked, v)
		}
		if len(picked) == 0 {
			return "", fmt.Errorf("answer to %s requires a selection", p.ID)
		}
		if !p.Multi && len(picked) > 1 {
			return "", fmt.Errorf("%s accepts a single selection", p.ID)
		}
		return strings.Join(picked, ","), nil
	}
	if raw == "" && !p.Optional {
		return "", fmt.Errorf("answer to %s is required", p.ID)
	}
	return raw, nil
}

func (p Prompt) hasOption(v string) bool {
	for _, o := range p.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}
