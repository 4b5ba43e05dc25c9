package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ehr/intake/internal/config"
	"github.com/ehr/intake/internal/domain/anatomy"
	"github.com/ehr/intake/internal/domain/intake"
	"github.com/ehr/intake/internal/platform/db"
	"github.com/ehr/intake/internal/platform/kvstore"
	"github.com/ehr/intake/internal/platform/llm"
)

// deps holds everything the server and the interview command share.
type deps struct {
	cfg      *config.Config
	log      zerolog.Logger
	reg      *anatomy.Registry
	pool     *pgxpool.Pool
	store    kvstore.Store
	sessions *intake.SessionManager
	records  intake.RecordRepository
	orch     *intake.Orchestrator
	closers  []func()
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// buildDeps connects the configured backends. The database is optional unless
// the session store lives in it.
func buildDeps(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*deps, error) {
	reg, err := anatomy.DefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("zone registry: %w", err)
	}
	d := &deps{cfg: cfg, log: log, reg: reg}

	if cfg.HasDatabase() {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.PoolOptions{
			MaxConns: cfg.DBMaxConns,
			MinConns: cfg.DBMinConns,
			Schema:   cfg.DBSchema,
		})
		if err != nil {
			return nil, err
		}
		d.pool = pool
		d.closers = append(d.closers, pool.Close)
		d.records = intake.NewRecordRepoPG(pool)
		log.Info().Str("schema", cfg.DBSchema).Msg("connected to database")
	}

	store, err := openStore(ctx, cfg, d.pool)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.store = store
	if r, ok := store.(*kvstore.Redis); ok {
		d.closers = append(d.closers, func() { _ = r.Close() })
	}
	log.Info().Str("backend", cfg.SessionStore).Dur("ttl", cfg.SessionTTL()).Msg("session store ready")

	d.sessions = intake.NewSessionManager(store, cfg.SessionTTL(), log)
	d.orch = intake.NewOrchestrator(reg, log)
	if cfg.HasLLM() {
		d.orch.WithElaborator(llm.NewElaborator(llm.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		}))
		log.Info().Str("model", cfg.OpenAIModel).Msg("HPI elaboration enabled")
	}
	return d, nil
}

func openStore(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (kvstore.Store, error) {
	switch cfg.SessionStore {
	case config.StoreRedis:
		r, err := kvstore.NewRedis(ctx, cfg.RedisURL, "")
		if err != nil {
			return nil, err
		}
		return r, nil
	case config.StorePostgres:
		if pool == nil {
			return nil, fmt.Errorf("postgres session store needs DATABASE_URL")
		}
		return kvstore.NewPostgres(pool), nil
	}
	return kvstore.NewMemory(), nil
}

// startPurger runs expired-session cleanup for stores that need it until ctx
// is cancelled. It reports whether a purger was started.
func (d *deps) startPurger(ctx context.Context, interval time.Duration) bool {
	p, ok := d.store.(kvstore.Purger)
	if !ok {
		return false
	}
	go kvstore.RunPurger(ctx, p, interval, d.log)
	d.log.Info().Dur("interval", interval).Msg("session purger started")
	return true
}

func (d *deps) service() *intake.Service {
	return intake.NewService(d.orch, d.sessions, d.records, d.log)
}
