package intake

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
)

func newTestSessions(now time.Time) (*SessionManager, *mockStore, *bytes.Buffer) {
	var buf bytes.Buffer
	store := newMockStore()
	m := NewSessionManager(store, 0, zerolog.New(&buf))
	m.now = func() time.Time { return now }
	return m, store, &buf
}

func TestSessionManager_SaveLoad(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m, _, _ := newTestSessions(now)
	enc := encounter.New(anatomy.LanguageFrench, now.Add(-time.Hour))
	enc.NavigationStack = append(enc.NavigationStack, encounter.Step{PromptID: "es_chest_pain", Answer: "no"})
	key := SessionKey(enc.ID)

	if err := m.Save(context.Background(), key, enc); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !enc.LastUpdatedAt.Equal(now) {
		t.Errorf("save should stamp LastUpdatedAt, got %v", enc.LastUpdatedAt)
	}
	got, err := m.Load(context.Background(), key)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ID != enc.ID || got.Language != anatomy.LanguageFrench {
		t.Errorf("unexpected encounter: %+v", got)
	}
	if len(got.NavigationStack) != 1 || got.NavigationStack[0].PromptID != "es_chest_pain" {
		t.Errorf("unexpected stack: %+v", got.NavigationStack)
	}
}

func TestSessionManager_LoadMissing(t *testing.T) {
	m, _, _ := newTestSessions(time.Now())
	_, err := m.Load(context.Background(), "intake:session:nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionManager_LoadCorrupt(t *testing.T) {
	m, store, logs := newTestSessions(time.Now())
	store.data["k"] = []byte("{not json")

	_, err := m.Load(context.Background(), "k")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, ok := store.data["k"]; ok {
		t.Error("corrupt blob should be removed")
	}
	if !bytes.Contains(logs.Bytes(), []byte(`"level":"warn"`)) {
		t.Error("expected a warning for the corrupt blob")
	}
}

func TestSessionManager_LoadWithoutID(t *testing.T) {
	m, store, _ := newTestSessions(time.Now())
	store.data["k"] = []byte(`{"phase":"BODY_MAP"}`)

	if _, err := m.Load(context.Background(), "k"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionManager_LoadExpired(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m, store, _ := newTestSessions(start)
	enc := encounter.New(anatomy.LanguageEnglish, start)
	key := SessionKey(enc.ID)
	if err := m.Save(context.Background(), key, enc); err != nil {
		t.Fatalf("save: %v", err)
	}

	m.now = func() time.Time { return start.Add(25 * time.Hour) }
	if _, err := m.Load(context.Background(), key); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
	if len(store.removed) != 1 || store.removed[0] != key {
		t.Errorf("expected expired blob removed, got %v", store.removed)
	}
}

func TestSessionManager_IsExpired(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m, _, _ := newTestSessions(start)
	enc := encounter.New(anatomy.LanguageEnglish, start)

	if m.IsExpired(enc, start.Add(23*time.Hour)) {
		t.Error("23h of inactivity should not expire")
	}
	if !m.IsExpired(enc, start.Add(25*time.Hour)) {
		t.Error("25h of inactivity should expire")
	}
}

func TestSessionManager_PushPop(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m, _, _ := newTestSessions(now)
	enc := encounter.New(anatomy.LanguageEnglish, now)

	if _, err := m.PopStep(enc); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo on empty stack, got %v", err)
	}
	m.PushStep(enc, encounter.Step{PromptID: "a", Answer: "no"})
	m.PushStep(enc, encounter.Step{PromptID: "b", Answer: "yes"})
	if enc.NavigationStack[0].At.IsZero() {
		t.Error("push should stamp the step time")
	}

	st, err := m.PopStep(enc)
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if st.PromptID != "b" {
		t.Errorf("expected LIFO order, got %s", st.PromptID)
	}
	if len(enc.NavigationStack) != 1 {
		t.Errorf("expected 1 remaining step, got %d", len(enc.NavigationStack))
	}
}

func TestSessionManager_Clear(t *testing.T) {
	m, store, _ := newTestSessions(time.Now())
	enc := encounter.New(anatomy.LanguageEnglish, time.Now())
	key := SessionKey(enc.ID)
	_ = m.Save(context.Background(), key, enc)

	if err := m.Clear(context.Background(), key); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := store.data[key]; ok {
		t.Error("session should be removed")
	}
}

func TestSessionKeys_Namespaced(t *testing.T) {
	enc := encounter.New(anatomy.LanguageEnglish, time.Now())
	if got := SessionKey(enc.ID); got != "intake:session:"+enc.ID.String() {
		t.Errorf("unexpected session key %q", got)
	}
	if got := CLISessionKey("default"); got != "intake:cli:default" {
		t.Errorf("unexpected cli key %q", got)
	}
}
