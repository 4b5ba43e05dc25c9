package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/encounter"
	"github.com/ehr/intake/internal/platform/auth"
)

// Service runs HTTP-driven interviews. Each call loads the session, applies
// one change to the navigation stack, replays the interview up to the next
// unanswered prompt and saves the result.
type Service struct {
	orch     *Orchestrator
	sessions *SessionManager
	records  RecordRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewService builds the service. records may be nil when no database is
// configured; completed intakes then live only in the session store.
func NewService(orch *Orchestrator, sessions *SessionManager, records RecordRepository, log zerolog.Logger) *Service {
	return &Service{orch: orch, sessions: sessions, records: records, log: log, now: time.Now}
}

func (s *Service) Start(ctx context.Context, lang anatomy.Language) (*encounter.Encounter, error) {
	enc := encounter.New(lang, s.now())
	enc.OwnerID = auth.UserIDFromContext(ctx)
	if err := s.advance(ctx, enc); err != nil {
		return nil, err
	}
	s.log.Info().Str("encounter_id", enc.ID.String()).Str("language", string(lang)).Msg("intake session started")
	return enc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*encounter.Encounter, error) {
	return s.load(ctx, id)
}

// load reads a session the caller may access. Sessions owned by someone else
// report ErrSessionNotFound unless the caller is a clinician.
func (s *Service) load(ctx context.Context, id uuid.UUID) (*encounter.Encounter, error) {
	enc, err := s.sessions.Load(ctx, SessionKey(id))
	if err != nil {
		return nil, err
	}
	if !auth.CanAccessOwned(ctx, enc.OwnerID, auth.RoleClinician) {
		s.log.Warn().Str("encounter_id", id.String()).Str("user_id", auth.UserIDFromContext(ctx)).Msg("intake session access denied")
		return nil, ErrSessionNotFound
	}
	return enc, nil
}

// Answer records raw as the answer to the pending prompt and resumes. A
// non-empty promptID must match the pending prompt.
func (s *Service) Answer(ctx context.Context, id uuid.UUID, promptID, raw string) (*encounter.Encounter, error) {
	enc, err := s.open(ctx, id)
	if err != nil {
		return nil, err
	}
	p := enc.Pending
	if p == nil {
		return nil, ErrSessionComplete
	}
	if promptID != "" && promptID != p.ID {
		return nil, fmt.Errorf("%w: pending %s, got %s", ErrPromptMismatch, p.ID, promptID)
	}
	v, err := p.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
	}
	s.sessions.PushStep(enc, encounter.Step{PromptID: p.ID, Kind: p.Kind, Text: p.Text, Answer: v, At: s.now()})
	if err := s.advance(ctx, enc); err != nil {
		return nil, err
	}
	return enc, nil
}

// Back undoes the most recent answer and re-asks it.
func (s *Service) Back(ctx context.Context, id uuid.UUID) (*encounter.Encounter, error) {
	enc, err := s.open(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.PopStep(enc); err != nil {
		return nil, err
	}
	if err := s.advance(ctx, enc); err != nil {
		return nil, err
	}
	return enc, nil
}

func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	return s.sessions.Clear(ctx, SessionKey(id))
}

func (s *Service) open(ctx context.Context, id uuid.UUID) (*encounter.Encounter, error) {
	enc, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if enc.IsComplete() {
		return nil, ErrSessionComplete
	}
	return enc, nil
}

// advance replays enc to its next pending prompt or to completion, then saves.
func (s *Service) advance(ctx context.Context, enc *encounter.Encounter) error {
	err := s.orch.Run(ctx, enc, NewReplayProvider(enc, nil, nil))
	if err != nil && !errors.Is(err, ErrAwaitingAnswer) {
		return fmt.Errorf("run intake: %w", err)
	}
	if err := s.sessions.Save(ctx, SessionKey(enc.ID), enc); err != nil {
		return err
	}
	if enc.IsComplete() {
		s.persist(ctx, enc)
	}
	return nil
}

func (s *Service) persist(ctx context.Context, enc *encounter.Encounter) {
	s.log.Info().
		Str("encounter_id", enc.ID.String()).
		Str("triage_level", string(enc.Result.TriageLevel)).
		Str("red_flags", strings.Join(enc.Result.RedFlagIDs, ",")).
		Msg("intake completed")
	if s.records == nil {
		return
	}
	if err := s.records.Create(ctx, NewRecord(enc)); err != nil {
		s.log.Error().Err(err).Str("encounter_id", enc.ID.String()).Msg("failed to persist intake record")
	}
}

func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*Record, error) {
	if s.records == nil {
		return nil, ErrRecordsDisabled
	}
	return s.records.GetByID(ctx, id)
}

func (s *Service) SearchRecords(ctx context.Context, params map[string]string, limit, offset int) ([]*Record, int, error) {
	if s.records == nil {
		return nil, 0, ErrRecordsDisabled
	}
	return s.records.Search(ctx, params, limit, offset)
}
