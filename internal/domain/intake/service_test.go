package intake

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/platform/auth"
)

func newTestService(records RecordRepository) (*Service, *mockStore) {
	o, _ := newTestOrchestrator()
	store := newMockStore()
	sessions := NewSessionManager(store, SessionTTL, zerolog.Nop())
	return NewService(o, sessions, records, zerolog.Nop()), store
}

// answerPending answers the pending prompt from answers, falling back to the
// same neutral defaults the scripted provider uses.
func answerPending(t *testing.T, svc *Service, enc *encounter.Encounter, answers map[string]string) *encounter.Encounter {
	t.Helper()
	p := enc.Pending
	v, ok := answers[p.ID]
	if !ok {
		switch p.Kind {
		case encounter.KindYesNo:
			v = "no"
		case encounter.KindNumeric:
			v = "0"
		case encounter.KindChoice:
			v = p.Options[0].Value
		default:
			v = "none"
		}
	}
	next, err := svc.Answer(context.Background(), enc.ID, p.ID, v)
	if err != nil {
		t.Fatalf("answer %s=%q: %v", p.ID, v, err)
	}
	return next
}

func TestService_StartPausesAtScreen(t *testing.T) {
	svc, store := newTestService(nil)
	enc, err := svc.Start(context.Background(), anatomy.LanguageSpanish)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if enc.Pending == nil || enc.Pending.ID != "es_chest_pain" {
		t.Fatalf("expected first checkpoint pending, got %+v", enc.Pending)
	}
	if _, ok := store.data[SessionKey(enc.ID)]; !ok {
		t.Error("session should be saved")
	}
	got, err := svc.Get(context.Background(), enc.ID)
	if err != nil || got.Pending.ID != "es_chest_pain" || got.Language != anatomy.LanguageSpanish {
		t.Errorf("unexpected loaded session %+v, err %v", got, err)
	}
}

func TestService_FullInterviewPersistsRecord(t *testing.T) {
	repo := newMockRecordRepo()
	svc, _ := newTestService(repo)
	enc, err := svc.Start(context.Background(), anatomy.LanguageEnglish)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	answers := routineLimb()
	for i := 0; enc.Pending != nil; i++ {
		if i > 200 {
			t.Fatal("interview did not finish")
		}
		enc = answerPending(t, svc, enc, answers)
	}

	if !enc.IsComplete() || enc.Result.TriageLevel != encounter.TriageRoutine {
		t.Fatalf("expected a routine completed intake, got phase %s result %+v", enc.Phase, enc.Result)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected one persisted record, got %d", len(repo.records))
	}
	for _, r := range repo.records {
		if r.EncounterID != enc.ID || r.Specialty != "Orthopedics" || r.Note == nil {
			t.Errorf("unexpected record: %+v", r)
		}
	}
	if _, err := svc.Answer(context.Background(), enc.ID, "", "yes"); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("expected ErrSessionComplete, got %v", err)
	}
}

func TestService_ChestPainSpreadingToArm(t *testing.T) {
	svc, _ := newTestService(nil)
	enc, err := svc.Start(context.Background(), anatomy.LanguageEnglish)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	answers := map[string]string{
		"cc_category": "chest",
		"bm_zones":    "LEFT_PRECORDIAL",
		"bm_spread":   "LEFT_ARM",
		"bm_symptoms": "diaphoresis",
	}
	sawSpread := false
	for i := 0; enc.Pending != nil; i++ {
		if i > 200 {
			t.Fatal("interview did not finish")
		}
		if enc.Pending.ID == "bm_spread" {
			sawSpread = true
		}
		enc = answerPending(t, svc, enc, answers)
	}

	if !sawSpread {
		t.Fatal("expected the spread prompt after the chest zones")
	}
	if enc.Insight == nil || enc.Insight.Pattern == nil || enc.Insight.Pattern.RuleID != "cardiac_left_arm" {
		t.Fatalf("expected the cardiac radiation pattern, got %+v", enc.Insight)
	}
	if enc.Result.TriageLevel != encounter.TriageEmergency {
		t.Errorf("expected EMERGENCY, got %s", enc.Result.TriageLevel)
	}
}

func TestService_EmergencyCompletesImmediately(t *testing.T) {
	svc, _ := newTestService(nil)
	enc, _ := svc.Start(context.Background(), anatomy.LanguageEnglish)

	enc, err := svc.Answer(context.Background(), enc.ID, "es_chest_pain", "Yes")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !enc.IsComplete() || !enc.Emergency {
		t.Fatalf("expected emergency completion, got phase %s", enc.Phase)
	}
	if enc.Pending != nil {
		t.Error("no prompt should be pending after completion")
	}
}

func TestService_Back(t *testing.T) {
	svc, _ := newTestService(nil)
	enc, _ := svc.Start(context.Background(), anatomy.LanguageEnglish)
	enc = answerPending(t, svc, enc, nil)
	if enc.Pending.ID != "es_breathing" {
		t.Fatalf("expected es_breathing, got %s", enc.Pending.ID)
	}

	enc, err := svc.Back(context.Background(), enc.ID)
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	if enc.Pending.ID != "es_chest_pain" || len(enc.NavigationStack) != 0 {
		t.Errorf("expected to re-ask es_chest_pain, got %s with %d steps", enc.Pending.ID, len(enc.NavigationStack))
	}
	if _, err := svc.Back(context.Background(), enc.ID); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestService_BackChangesPath(t *testing.T) {
	svc, _ := newTestService(nil)
	enc, _ := svc.Start(context.Background(), anatomy.LanguageEnglish)
	for enc.Pending.ID != "cc_category" {
		enc = answerPending(t, svc, enc, nil)
	}
	enc = answerPending(t, svc, enc, map[string]string{"cc_category": "other"})
	if enc.Pending.ID != "cc_describe" {
		t.Fatalf("expected cc_describe, got %s", enc.Pending.ID)
	}

	enc, _ = svc.Back(context.Background(), enc.ID)
	enc = answerPending(t, svc, enc, map[string]string{"cc_category": "chest"})
	if enc.Pending.ID != "bm_zones" {
		t.Errorf("expected bm_zones after changing the complaint, got %s", enc.Pending.ID)
	}
}

func TestService_AnswerValidation(t *testing.T) {
	svc, _ := newTestService(nil)
	enc, _ := svc.Start(context.Background(), anatomy.LanguageEnglish)

	if _, err := svc.Answer(context.Background(), enc.ID, "es_chest_pain", "perhaps"); !errors.Is(err, ErrInvalidAnswer) {
		t.Errorf("expected ErrInvalidAnswer, got %v", err)
	}
	if _, err := svc.Answer(context.Background(), enc.ID, "cc_category", "no"); !errors.Is(err, ErrPromptMismatch) {
		t.Errorf("expected ErrPromptMismatch, got %v", err)
	}
	got, _ := svc.Get(context.Background(), enc.ID)
	if len(got.NavigationStack) != 0 {
		t.Error("rejected answers must not be recorded")
	}
}

func TestService_Cancel(t *testing.T) {
	svc, store := newTestService(nil)
	enc, _ := svc.Start(context.Background(), anatomy.LanguageEnglish)

	if err := svc.Cancel(context.Background(), enc.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if len(store.data) != 0 {
		t.Error("session should be removed")
	}
	if err := svc.Cancel(context.Background(), enc.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestService_RecordsDisabled(t *testing.T) {
	svc, _ := newTestService(nil)
	if _, _, err := svc.SearchRecords(context.Background(), nil, 20, 0); !errors.Is(err, ErrRecordsDisabled) {
		t.Errorf("expected ErrRecordsDisabled, got %v", err)
	}
}

func TestNewRecord(t *testing.T) {
	if NewRecord(encounter.New(anatomy.LanguageEnglish, time.Now())) != nil {
		t.Error("an incomplete encounter has no record")
	}
}

func TestService_SessionsAreOwned(t *testing.T) {
	svc, _ := newTestService(nil)
	owner := auth.WithUser(context.Background(), "patient-1", []string{auth.RolePatient})
	enc, err := svc.Start(owner, anatomy.LanguageEnglish)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if enc.OwnerID != "patient-1" {
		t.Fatalf("expected owner patient-1, got %q", enc.OwnerID)
	}

	stranger := auth.WithUser(context.Background(), "patient-2", []string{auth.RolePatient})
	if _, err := svc.Get(stranger, enc.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("another patient should not see the session, got %v", err)
	}
	if _, err := svc.Answer(stranger, enc.ID, "", "no"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("another patient should not answer, got %v", err)
	}
	if err := svc.Cancel(stranger, enc.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("another patient should not cancel, got %v", err)
	}

	clinician := auth.WithUser(context.Background(), "dr-1", []string{auth.RoleClinician})
	if _, err := svc.Get(clinician, enc.ID); err != nil {
		t.Errorf("clinician should see the session: %v", err)
	}
	next, err := svc.Answer(owner, enc.ID, "es_chest_pain", "no")
	if err != nil {
		t.Fatalf("owner answer: %v", err)
	}
	if next.OwnerID != "patient-1" {
		t.Error("owner must survive the replay reset")
	}
}
