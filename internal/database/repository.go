package database

import (
	"context"
	"fmt"
	"time"

	"go-job-compiler/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS compiled_jobs (
	run_id            TEXT        NOT NULL,
	position          INTEGER     NOT NULL,
	platform          TEXT        NOT NULL,
	title             TEXT        NOT NULL,
	company           TEXT,
	skills            TEXT,
	location          TEXT,
	headquarters      TEXT,
	categories        TEXT,
	posted_date       TEXT,
	link              TEXT,
	duplicate_warning TEXT,
	apply_url         TEXT,
	compiled_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (run_id, position)
)`

// tables created before apply_url existed
const addApplyURL = `ALTER TABLE compiled_jobs ADD COLUMN IF NOT EXISTS apply_url TEXT`

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour

	// PgBouncer in transaction mode cannot hold prepared statements.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// EnsureSchema creates the archive table if it is missing.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create compiled_jobs table: %w", err)
	}
	if _, err := r.db.Exec(ctx, addApplyURL); err != nil {
		return fmt.Errorf("failed to migrate compiled_jobs table: %w", err)
	}
	return nil
}

// ArchiveRun appends one row per record of a run. Re-archiving the same run
// is a no-op; existing rows are never updated. Returns the number of rows
// inserted.
func (r *Repository) ArchiveRun(ctx context.Context, runID string, jobs []models.JobRecord) (int64, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO compiled_jobs (run_id, position, platform, title, company, skills, location,
			headquarters, categories, posted_date, link, duplicate_warning, apply_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (run_id, position) DO NOTHING`

	batch := &pgx.Batch{}
	for i, j := range jobs {
		batch.Queue(query, runID, i, j.Platform, j.Title, nullable(j.Company), nullable(j.Skills),
			nullable(j.Location), nullable(j.Headquarters), nullable(j.Categories),
			nullable(j.PostedDate), nullable(j.Link), nullable(j.DuplicateWarning),
			nullable(j.ApplyURL))
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	var inserted int64
	for range jobs {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to archive run %s: %w", runID, err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// CountRun returns how many rows were archived for runID.
func (r *Repository) CountRun(ctx context.Context, runID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, "SELECT count(*) FROM compiled_jobs WHERE run_id = $1", runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count run %s: %w", runID, err)
	}
	return n, nil
}

// nullable stores absent optional fields as NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
