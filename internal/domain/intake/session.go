package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ehr/intake/internal/domain/encounter"
)

// SessionTTL is the inactivity window after which a session expires.
const SessionTTL = 24 * time.Hour

// Store is a key-value blob store. Get returns nil, nil for a missing key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
}

// SessionManager persists encounters as JSON blobs.
type SessionManager struct {
	store Store
	ttl   time.Duration
	log   zerolog.Logger
	now   func() time.Time
}

func NewSessionManager(store Store, ttl time.Duration, log zerolog.Logger) *SessionManager {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	return &SessionManager{store: store, ttl: ttl, log: log, now: time.Now}
}

// SessionKey is the store key for an encounter id.
func SessionKey(id uuid.UUID) string {
	return "intake:session:" + id.String()
}

// CLISessionKey is the store key of a named terminal interview.
func CLISessionKey(name string) string {
	return "intake:cli:" + name
}

// Save stamps the encounter as updated and writes it under key.
func (m *SessionManager) Save(ctx context.Context, key string, enc *encounter.Encounter) error {
	enc.LastUpdatedAt = m.now()
	b, err := json.Marshal(enc)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := m.store.Set(ctx, key, b, m.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load reads the session under key. Missing, unreadable and expired sessions
// all report ErrSessionNotFound; unreadable and expired blobs are removed.
func (m *SessionManager) Load(ctx context.Context, key string) (*encounter.Encounter, error) {
	b, err := m.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if b == nil {
		return nil, ErrSessionNotFound
	}
	var enc encounter.Encounter
	if err := json.Unmarshal(b, &enc); err != nil || enc.ID == uuid.Nil {
		m.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable intake session")
		m.discard(ctx, key)
		return nil, ErrSessionNotFound
	}
	if m.IsExpired(&enc, m.now()) {
		m.log.Info().Str("key", key).Time("last_updated_at", enc.LastUpdatedAt).Msg("intake session expired")
		m.discard(ctx, key)
		return nil, ErrSessionNotFound
	}
	return &enc, nil
}

func (m *SessionManager) discard(ctx context.Context, key string) {
	if err := m.store.Remove(ctx, key); err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("failed to remove intake session")
	}
}

func (m *SessionManager) Clear(ctx context.Context, key string) error {
	if err := m.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// PushStep appends an answered step to the navigation stack.
func (m *SessionManager) PushStep(enc *encounter.Encounter, st encounter.Step) {
	if st.At.IsZero() {
		st.At = m.now()
	}
	enc.NavigationStack = append(enc.NavigationStack, st)
	enc.LastUpdatedAt = st.At
}

// PopStep removes and returns the most recent step.
func (m *SessionManager) PopStep(enc *encounter.Encounter) (encounter.Step, error) {
	n := len(enc.NavigationStack)
	if n == 0 {
		return encounter.Step{}, ErrNothingToUndo
	}
	st := enc.NavigationStack[n-1]
	enc.NavigationStack = enc.NavigationStack[:n-1]
	enc.LastUpdatedAt = m.now()
	return st, nil
}

// IsExpired reports whether enc has been inactive for longer than the TTL.
func (m *SessionManager) IsExpired(enc *encounter.Encounter, now time.Time) bool {
	return now.Sub(enc.LastUpdatedAt) > m.ttl
}
