package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recordRepoPG struct{ pool *pgxpool.Pool }

func NewRecordRepoPG(pool *pgxpool.Pool) RecordRepository { return &recordRepoPG{pool: pool} }

const recordTable = "intake_record"

var recordCols = []any{
	"id", "encounter_id", "chief_complaint", "triage_level", "triage_score",
	"specialty", "emergency", "red_flag_ids", "language", "note", "created_at",
}

var dialect = goqu.Dialect("postgres")

func scanRecord(row pgx.Row) (*Record, error) {
	var r Record
	var note []byte
	err := row.Scan(&r.ID, &r.EncounterID, &r.ChiefComplaint, &r.TriageLevel, &r.TriageScore,
		&r.Specialty, &r.Emergency, &r.RedFlagIDs, &r.Language, &note, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(note) > 0 {
		if err := json.Unmarshal(note, &r.Note); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
	}
	return &r, nil
}

func (r *recordRepoPG) Create(ctx context.Context, rec *Record) error {
	rec.ID = uuid.New()
	note, err := json.Marshal(rec.Note)
	if err != nil {
		return fmt.Errorf("encode note: %w", err)
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO intake_record (id, encounter_id, chief_complaint, triage_level, triage_score,
			specialty, emergency, red_flag_ids, language, note)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (encounter_id) DO UPDATE SET triage_level = EXCLUDED.triage_level
		RETURNING id, created_at`,
		rec.ID, rec.EncounterID, rec.ChiefComplaint, rec.TriageLevel, rec.TriageScore,
		rec.Specialty, rec.Emergency, rec.RedFlagIDs, rec.Language, note,
	).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *recordRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	query, args, err := dialect.From(recordTable).Prepared(true).
		Select(recordCols...).Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return scanRecord(r.pool.QueryRow(ctx, query, args...))
}

func (r *recordRepoPG) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	return r.Search(ctx, nil, limit, offset)
}

// Search filters by triage_level, specialty, emergency, complaint (substring)
// and since (RFC 3339), newest first.
func (r *recordRepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Record, int, error) {
	ds := dialect.From(recordTable).Prepared(true)
	if v, ok := params["triage_level"]; ok {
		ds = ds.Where(goqu.Ex{"triage_level": v})
	}
	if v, ok := params["specialty"]; ok {
		ds = ds.Where(goqu.Ex{"specialty": v})
	}
	if v, ok := params["emergency"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid emergency filter %q", v)
		}
		ds = ds.Where(goqu.Ex{"emergency": b})
	}
	if v, ok := params["complaint"]; ok {
		ds = ds.Where(goqu.C("chief_complaint").ILike("%" + v + "%"))
	}
	if v, ok := params["since"]; ok {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid since filter %q", v)
		}
		ds = ds.Where(goqu.C("created_at").Gte(t))
	}

	countSQL, countArgs, err := ds.Select(goqu.COUNT("*")).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query, args, err := ds.Select(recordCols...).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit)).Offset(uint(offset)).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build search query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, rows.Err()
}
