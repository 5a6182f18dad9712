package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/razanodeh01/Huffman-Text-Compression/internal/model"
)

func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS analyses (
  id TEXT PRIMARY KEY,
  source TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL,
  stats JSONB NOT NULL,
  rows JSONB NOT NULL
)`)
	return err
}

type analysisRepoPostgres struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepoPostgres(pool *pgxpool.Pool) AnalysisRepo {
	return &analysisRepoPostgres{pool: pool}
}

func (r *analysisRepoPostgres) Save(ctx context.Context, a *model.Analysis) error {
	stats, rows, err := encodeAnalysis(a)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO analyses (id, source, created_at, stats, rows)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET source = EXCLUDED.source, stats = EXCLUDED.stats, rows = EXCLUDED.rows`,
		a.ID, a.Source, a.CreatedAt, stats, rows)
	if err != nil {
		return fmt.Errorf("save analysis %s: %w", a.ID, err)
	}
	return nil
}

func (r *analysisRepoPostgres) FindByID(ctx context.Context, id string) (*model.Analysis, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, source, created_at, stats, rows FROM analyses WHERE id = $1`, id)
	a, err := scanAnalysis(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (r *analysisRepoPostgres) List(ctx context.Context) ([]*model.Analysis, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, source, created_at, stats, rows FROM analyses ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var out []*model.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// encodeAnalysis renders the JSONB columns of a.
func encodeAnalysis(a *model.Analysis) (stats, rows []byte, err error) {
	stats, err = json.Marshal(a.Stats)
	if err != nil {
		return nil, nil, fmt.Errorf("encode stats: %w", err)
	}
	rows, err = json.Marshal(a.Rows)
	if err != nil {
		return nil, nil, fmt.Errorf("encode rows: %w", err)
	}
	return stats, rows, nil
}

func scanAnalysis(row pgx.Row) (*model.Analysis, error) {
	var (
		a           model.Analysis
		stats, syms []byte
	)
	if err := row.Scan(&a.ID, &a.Source, &a.CreatedAt, &stats, &syms); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stats, &a.Stats); err != nil {
		return nil, fmt.Errorf("decode stats of %s: %w", a.ID, err)
	}
	if err := json.Unmarshal(syms, &a.Rows); err != nil {
		return nil, fmt.Errorf("decode rows of %s: %w", a.ID, err)
	}
	return &a, nil
}
