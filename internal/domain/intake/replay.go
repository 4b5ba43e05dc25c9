package intake

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/questionnaire"
)

// ReplayProvider answers prompts from the encounter's navigation stack so the
// orchestrator can be re-run from the start after every answer. Once the stack
// is exhausted it asks the live provider, or records the prompt as pending and
// fails with ErrAwaitingAnswer when there is none.
type ReplayProvider struct {
	enc    *encounter.Encounter
	live   encounter.AnswerProvider
	onStep func(context.Context, encounter.Step) error
	cursor int
	now    func() time.Time
}

// NewReplayProvider builds a provider over enc's stack. live and onStep are
// optional; onStep runs after each live answer is pushed.
func NewReplayProvider(enc *encounter.Encounter, live encounter.AnswerProvider, onStep func(context.Context, encounter.Step) error) *ReplayProvider {
	return &ReplayProvider{enc: enc, live: live, onStep: onStep, now: time.Now}
}

// Replaying reports whether recorded answers remain to be consumed.
func (r *ReplayProvider) Replaying() bool {
	return r.cursor < len(r.enc.NavigationStack)
}

func (r *ReplayProvider) next(ctx context.Context, p encounter.Prompt, q *questionnaire.Question) (string, error) {
	if r.Replaying() {
		st := r.enc.NavigationStack[r.cursor]
		if st.PromptID == p.ID {
			if v, err := p.Normalize(st.Answer); err == nil {
				r.cursor++
				return v, nil
			}
		}
		// The interview took a different path; later answers no longer apply.
		r.enc.NavigationStack = r.enc.NavigationStack[:r.cursor]
	}
	if r.live == nil {
		pending := p
		r.enc.Pending = &pending
		return "", ErrAwaitingAnswer
	}

	raw, err := r.askLive(ctx, p, q)
	if err != nil {
		return "", err
	}
	v, err := p.Normalize(raw)
	if err != nil {
		return "", err
	}
	st := encounter.Step{PromptID: p.ID, Kind: p.Kind, Text: p.Text, Answer: v, At: r.now()}
	r.enc.NavigationStack = append(r.enc.NavigationStack, st)
	r.cursor++
	if r.onStep != nil {
		if err := r.onStep(ctx, st); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (r *ReplayProvider) askLive(ctx context.Context, p encounter.Prompt, q *questionnaire.Question) (string, error) {
	if q != nil {
		return r.live.AskQuestion(ctx, *q)
	}
	switch p.Kind {
	case encounter.KindYesNo:
		yes, err := r.live.AskYesNo(ctx, p)
		if yes {
			return questionnaire.AnswerYes, err
		}
		return questionnaire.AnswerNo, err
	case encounter.KindChoice:
		vs, err := r.live.AskMultipleChoice(ctx, p)
		return strings.Join(vs, ","), err
	case encounter.KindNumeric:
		n, err := r.live.AskNumeric(ctx, p)
		return strconv.Itoa(n), err
	}
	return r.live.AskFreeText(ctx, p)
}

func (r *ReplayProvider) AskYesNo(ctx context.Context, p encounter.Prompt) (bool, error) {
	v, err := r.next(ctx, p, nil)
	return v == questionnaire.AnswerYes, err
}

func (r *ReplayProvider) AskMultipleChoice(ctx context.Context, p encounter.Prompt) ([]string, error) {
	v, err := r.next(ctx, p, nil)
	if err != nil || v == "" {
		return nil, err
	}
	return strings.Split(v, ","), nil
}

func (r *ReplayProvider) AskNumeric(ctx context.Context, p encounter.Prompt) (int, error) {
	v, err := r.next(ctx, p, nil)
	if err != nil {
		return p.Min, err
	}
	return strconv.Atoi(v)
}

func (r *ReplayProvider) AskFreeText(ctx context.Context, p encounter.Prompt) (string, error) {
	return r.next(ctx, p, nil)
}

func (r *ReplayProvider) AskQuestion(ctx context.Context, q questionnaire.Question) (string, error) {
	return r.next(ctx, encounter.PromptForQuestion(q), &q)
}

// ShowEmergencyAlert reaches the live provider only once replay has caught
// up, so a resumed interview does not repeat old alerts.
func (r *ReplayProvider) ShowEmergencyAlert(ctx context.Context, a encounter.Alert) {
	if r.live != nil && !r.Replaying() {
		r.live.ShowEmergencyAlert(ctx, a)
	}
}

func (r *ReplayProvider) ShowProgress(ctx context.Context, p encounter.Progress) {
	if r.live != nil && !r.Replaying() {
		r.live.ShowProgress(ctx, p)
	}
}
