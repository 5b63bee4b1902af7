// Package storage keeps a write-only audit history of finished runs in
// SQLite. It is never consulted to resume or dedupe a crawl.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // SQLite driver

	"blogmood/internal/domain"
	"blogmood/internal/ports"
)

// Store persists run records into SQLite.
type Store struct {
	db *sql.DB
}

var _ ports.RunStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	member TEXT NOT NULL,
	total_positive REAL NOT NULL,
	total_negative REAL NOT NULL,
	total_neutral REAL NOT NULL,
	sentence_count INTEGER NOT NULL,
	started_at DATETIME NOT NULL,
	finished_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_member ON runs(member);

CREATE TABLE IF NOT EXISTS run_posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL REFERENCES runs(id),
	url TEXT NOT NULL,
	sentence_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_run_posts_run ON run_posts(run_id);
`

// Open opens or creates the run-history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports a single writer; keep the pool to one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun inserts one finished run and its per-post rows atomically.
func (s *Store) SaveRun(ctx context.Context, rec domain.RunRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	res, err := sq.Insert("runs").
		Columns("member", "total_positive", "total_negative", "total_neutral",
			"sentence_count", "started_at", "finished_at").
		Values(rec.Member, rec.Totals.Positive, rec.Totals.Negative, rec.Totals.Neutral,
			rec.Sentences, rec.StartedAt, rec.FinishedAt).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, post := range rec.Posts {
		_, err := sq.Insert("run_posts").
			Columns("run_id", "url", "sentence_count").
			Values(runID, post.URL, post.Sentences).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("insert run post %s: %w", post.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}

	return nil
}

// LatestRun returns the most recent finished run for a member, if any.
func (s *Store) LatestRun(ctx context.Context, member string) (domain.RunRecord, bool, error) {
	row := sq.Select("member", "total_positive", "total_negative", "total_neutral",
		"sentence_count", "started_at", "finished_at").
		From("runs").
		Where(sq.Eq{"member": member}).
		OrderBy("finished_at DESC").
		Limit(1).
		RunWith(s.db).
		QueryRowContext(ctx)

	var rec domain.RunRecord
	err := row.Scan(&rec.Member, &rec.Totals.Positive, &rec.Totals.Negative, &rec.Totals.Neutral,
		&rec.Sentences, &rec.StartedAt, &rec.FinishedAt)
	if err == sql.ErrNoRows {
		return domain.RunRecord{}, false, nil
	}
	if err != nil {
		return domain.RunRecord{}, false, fmt.Errorf("query latest run: %w", err)
	}

	return rec, true, nil
}
