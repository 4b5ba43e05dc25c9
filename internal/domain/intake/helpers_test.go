package intake

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ehr/intake/internal/domain/anatomy"
)

// -- Mock Store --

type mockStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	removed []string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *mockStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	m.removed = append(m.removed, key)
	return nil
}

// -- Mock RecordRepository --

type mockRecordRepo struct {
	records map[uuid.UUID]*Record
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: make(map[uuid.UUID]*Record)}
}

func (m *mockRecordRepo) Create(_ context.Context, r *Record) error {
	r.ID = uuid.New()
	m.records[r.ID] = r
	return nil
}

func (m *mockRecordRepo) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return r, nil
}

func (m *mockRecordRepo) List(_ context.Context, limit, offset int) ([]*Record, int, error) {
	return m.Search(context.Background(), nil, limit, offset)
}

func (m *mockRecordRepo) Search(_ context.Context, params map[string]string, limit, offset int) ([]*Record, int, error) {
	var out []*Record
	for _, r := range m.records {
		if lvl, ok := params["triage_level"]; ok && string(r.TriageLevel) != lvl {
			continue
		}
		out = append(out, r)
	}
	return out, len(out), nil
}

// -- Fixtures --

var testRegistry = anatomy.MustDefaultRegistry()

func newTestOrchestrator() (*Orchestrator, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewOrchestrator(testRegistry, zerolog.New(&buf)), &buf
}

// routineLimb answers a mild, long-standing elbow complaint with no red flags
// beyond the low chronic-pain rule.
func routineLimb() map[string]string {
	return map[string]string{
		"cc_category":             "limb",
		"bm_zones":                "LEFT_ELBOW",
		"bm_spread":               "none",
		"bm_symptoms":             "none",
		"bm_intensity_LEFT_ELBOW": "2",
		"duration":                "gt_4w",
		"onset":                   "gradual_days",
		"severity":                "2",
		"ct_limb_mechanism":       "overuse",
		"hx_pmh":                  "hypertension",
		"hx_medications":          "ramipril, aspirin",
		"hx_allergies":            "none",
		"hx_family":               "father had arthritis",
		"hx_social":               "non-smoker, office worker",
	}
}
