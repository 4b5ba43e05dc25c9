// Package terminal asks intake prompts on an interactive terminal.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

// ErrAborted is returned when the patient quits a form.
var ErrAborted = errors.New("interview aborted")

// Provider renders each prompt as a single-field huh form. Alerts and progress
// are written to out.
type Provider struct {
	out        io.Writer
	accessible bool
}

func NewProvider(out io.Writer, accessible bool) *Provider {
	return &Provider{out: out, accessible: accessible}
}

var _ encounter.AnswerProvider = (*Provider)(nil)

func (p *Provider) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithAccessible(p.accessible)
	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

func (p *Provider) AskYesNo(ctx context.Context, pr encounter.Prompt) (bool, error) {
	var v bool
	err := p.run(ctx, huh.NewConfirm().
		Title(pr.Text).
		Affirmative("Yes").
		Negative("No").
		Value(&v))
	return v, err
}

func (p *Provider) AskMultipleChoice(ctx context.Context, pr encounter.Prompt) ([]string, error) {
	opts := huhOptions(pr.Options)
	if pr.Multi {
		var picked []string
		err := p.run(ctx, huh.NewMultiSelect[string]().
			Title(pr.Text).
			Description("Space to select, Enter to confirm").
			Options(opts...).
			Validate(func(v []string) error {
				if len(v) == 0 {
					return errors.New("select at least one option")
				}
				return nil
			}).
			Value(&picked))
		return picked, err
	}
	var v string
	err := p.run(ctx, huh.NewSelect[string]().
		Title(pr.Text).
		Options(opts...).
		Value(&v))
	if err != nil {
		return nil, err
	}
	return []string{v}, nil
}

func (p *Provider) AskNumeric(ctx context.Context, pr encounter.Prompt) (int, error) {
	var raw string
	err := p.run(ctx, huh.NewInput().
		Title(pr.Text).
		Description(fmt.Sprintf("%d to %d", pr.Min, pr.Max)).
		Validate(rangeValidator(pr.Min, pr.Max)).
		Value(&raw))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}

func (p *Provider) AskFreeText(ctx context.Context, pr encounter.Prompt) (string, error) {
	var v string
	field := huh.NewText().Title(pr.Text).Value(&v)
	if !pr.Optional {
		field = field.Validate(required)
	} else {
		field = field.Description("Leave blank to skip")
	}
	err := p.run(ctx, field)
	return strings.TrimSpace(v), err
}

// AskQuestion maps questionnaire types onto the prompt forms and returns the
// canonical answer encoding.
func (p *Provider) AskQuestion(ctx context.Context, q questionnaire.Question) (string, error) {
	pr := encounter.PromptForQuestion(q)
	switch pr.Kind {
	case encounter.KindYesNo:
		yes, err := p.AskYesNo(ctx, pr)
		if err != nil {
			return "", err
		}
		if yes {
			return questionnaire.AnswerYes, nil
		}
		return questionnaire.AnswerNo, nil
	case encounter.KindNumeric:
		n, err := p.AskNumeric(ctx, pr)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	case encounter.KindChoice:
		v, err := p.AskMultipleChoice(ctx, pr)
		if err != nil {
			return "", err
		}
		return strings.Join(v, ","), nil
	}
	return p.AskFreeText(ctx, pr)
}

func (p *Provider) ShowEmergencyAlert(_ context.Context, a encounter.Alert) {
	fmt.Fprintln(p.out, RenderAlert(a))
}

func (p *Provider) ShowProgress(_ context.Context, pr encounter.Progress) {
	fmt.Fprintln(p.out, RenderProgress(pr))
}

// RenderAlert draws an alert box. Emergency alerts get a red border.
func RenderAlert(a encounter.Alert) string {
	lines := []string{alertTitleStyle.Render(a.Title), a.Message}
	if a.Action != "" {
		lines = append(lines, "", "→ "+a.Action)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if a.IsEmergency() {
		return alertStyle.Render(body)
	}
	return warningStyle.Render(body)
}

func RenderProgress(pr encounter.Progress) string {
	line := fmt.Sprintf("[%d/%d] %s", pr.Step, pr.Total, pr.Phase)
	if pr.Message != "" {
		line += " · " + pr.Message
	}
	return progressStyle.Render(line)
}

// Title renders a heading line.
func Title(s string) string {
	return titleStyle.Render(s)
}

func huhOptions(opts []encounter.Option) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(opts))
	for _, o := range opts {
		label := o.Label
		if label == "" {
			label = o.Value
		}
		out = append(out, huh.NewOption(label, o.Value))
	}
	return out
}

func rangeValidator(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < min || n > max {
			return fmt.Errorf("enter a number from %d to %d", min, max)
		}
		return nil
	}
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("an answer is required")
	}
	return nil
}
