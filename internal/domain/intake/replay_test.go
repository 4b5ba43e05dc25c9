package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/domain/encounter/encountertest"
)

func step(id, answer string) encounter.Step {
	return encounter.Step{PromptID: id, Answer: answer}
}

func TestReplay_PausesAtFirstUnansweredPrompt(t *testing.T) {
	o, _ := newTestOrchestrator()
	enc := encounter.New(anatomy.LanguageEnglish, time.Now())

	err := o.Run(context.Background(), enc, NewReplayProvider(enc, nil, nil))
	if !errors.Is(err, ErrAwaitingAnswer) {
		t.Fatalf("expected ErrAwaitingAnswer, got %v", err)
	}
	if enc.Pending == nil || enc.Pending.ID != "es_chest_pain" {
		t.Fatalf("expected first checkpoint pending, got %+v", enc.Pending)
	}
	if enc.Phase != encounter.PhaseEmergencyScreen {
		t.Errorf("unexpected phase %s", enc.Phase)
	}
}

func TestReplay_IsDeterministic(t *testing.T) {
	o, _ := newTestOrchestrator()
	stack := []encounter.Step{
		step("es_chest_pain", "no"), step("es_breathing", "no"), step("es_stroke", "no"),
		step("es_consciousness", "no"), step("es_bleeding", "no"), step("es_anaphylaxis", "no"),
		step("es_self_harm", "no"), step("cc_category", "limb"),
	}

	var pending []string
	for i := 0; i < 2; i++ {
		enc := encounter.New(anatomy.LanguageEnglish, time.Now())
		enc.NavigationStack = append([]encounter.Step(nil), stack...)
		err := o.Run(context.Background(), enc, NewReplayProvider(enc, nil, nil))
		if !errors.Is(err, ErrAwaitingAnswer) {
			t.Fatalf("expected ErrAwaitingAnswer, got %v", err)
		}
		pending = append(pending, enc.Pending.ID)
		if enc.Phase != encounter.PhaseBodyMap {
			t.Errorf("expected BODY_MAP, got %s", enc.Phase)
		}
		if len(enc.NavigationStack) != len(stack) {
			t.Errorf("replay should keep the stack, got %d steps", len(enc.NavigationStack))
		}
	}
	if pending[0] != "bm_zones" || pending[0] != pending[1] {
		t.Errorf("expected bm_zones both times, got %v", pending)
	}
}

func TestReplay_TruncatesOnDivergence(t *testing.T) {
	o, _ := newTestOrchestrator()
	enc := encounter.New(anatomy.LanguageEnglish, time.Now())
	enc.NavigationStack = []encounter.Step{
		step("es_chest_pain", "no"),
		step("es_stroke", "no"),
		step("es_consciousness", "no"),
	}

	err := o.Run(context.Background(), enc, NewReplayProvider(enc, nil, nil))
	if !errors.Is(err, ErrAwaitingAnswer) {
		t.Fatalf("expected ErrAwaitingAnswer, got %v", err)
	}
	if len(enc.NavigationStack) != 1 {
		t.Errorf("expected stack truncated to 1 step, got %d", len(enc.NavigationStack))
	}
	if enc.Pending.ID != "es_breathing" {
		t.Errorf("expected es_breathing pending, got %s", enc.Pending.ID)
	}
}

func TestReplay_InvalidRecordedAnswerIsReasked(t *testing.T) {
	o, _ := newTestOrchestrator()
	enc := encounter.New(anatomy.LanguageEnglish, time.Now())
	enc.NavigationStack = []encounter.Step{step("es_chest_pain", "maybe")}

	err := o.Run(context.Background(), enc, NewReplayProvider(enc, nil, nil))
	if !errors.Is(err, ErrAwaitingAnswer) {
		t.Fatalf("expected ErrAwaitingAnswer, got %v", err)
	}
	if enc.Pending.ID != "es_chest_pain" || len(enc.NavigationStack) != 0 {
		t.Errorf("expected the bad answer dropped, pending %s, stack %d", enc.Pending.ID, len(enc.NavigationStack))
	}
}

func TestReplay_LiveFallbackRecordsSteps(t *testing.T) {
	o, _ := newTestOrchestrator()
	enc := encounter.New(anatomy.LanguageEnglish, time.Now())
	enc.NavigationStack = []encounter.Step{step("es_chest_pain", "no")}
	live := encountertest.New(routineLimb())

	var saved []string
	onStep := func(_ context.Context, st encounter.Step) error {
		saved = append(saved, st.PromptID)
		return nil
	}
	if err := o.Run(context.Background(), enc, NewReplayProvider(enc, live, onStep)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !enc.IsComplete() {
		t.Fatal("expected completion with a live provider")
	}
	if live.WasAsked("es_chest_pain") {
		t.Error("recorded answers must not be asked again")
	}
	if len(saved) != len(enc.NavigationStack)-1 {
		t.Errorf("expected onStep for each live answer, got %d of %d", len(saved), len(enc.NavigationStack)-1)
	}
	if saved[0] != "es_breathing" {
		t.Errorf("expected es_breathing first live step, got %s", saved[0])
	}
}

func TestReplay_OnStepErrorStops(t *testing.T) {
	o, _ := newTestOrchestrator()
	enc := encounter.New(anatomy.LanguageEnglish, time.Now())
	boom := errors.New("store down")
	onStep := func(context.Context, encounter.Step) error { return boom }

	err := o.Run(context.Background(), enc, NewReplayProvider(enc, encountertest.New(nil), onStep))
	if !errors.Is(err, boom) {
		t.Fatalf("expected onStep error, got %v", err)
	}
}

func TestReplay_ProgressOnlyAfterCatchingUp(t *testing.T) {
	o, _ := newTestOrchestrator()
	enc := encounter.New(anatomy.LanguageEnglish, time.Now())
	for _, id := range []string{"es_chest_pain", "es_breathing", "es_stroke", "es_consciousness", "es_bleeding", "es_anaphylaxis", "es_self_harm"} {
		enc.NavigationStack = append(enc.NavigationStack, step(id, "no"))
	}
	enc.NavigationStack = append(enc.NavigationStack, step("cc_category", "limb"))
	live := encountertest.New(routineLimb())

	if err := o.Run(context.Background(), enc, NewReplayProvider(enc, live, nil)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(live.Progress) == 0 {
		t.Fatal("expected progress once replay caught up")
	}
	if live.Progress[0].Phase != encounter.PhaseBodyMap {
		t.Errorf("replayed phases should not be reported, first was %s", live.Progress[0].Phase)
	}
}
