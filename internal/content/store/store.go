package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/douglaspoa/wordpress-react/internal/content" // import ONLY for the ports and Failure
)

// PGSink stores failed content fetches. It never stores content.
type PGSink struct {
	pool  *pgxpool.Pool
	newID func() uuid.UUID
}

var (
	_ content.FailureSink   = (*PGSink)(nil)
	_ content.FailureReader = (*PGSink)(nil)
)

func New(ctx context.Context, dsn string) (*PGSink, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	_, err = pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS fetch_failures (
  id UUID PRIMARY KEY,
  operation TEXT NOT NULL,
  endpoint TEXT NOT NULL,
  kind TEXT NOT NULL,
  message TEXT NOT NULL,
  occurred_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_fetch_failures_occurred_at ON fetch_failures(occurred_at DESC);
`)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &PGSink{pool: pool, newID: uuid.New}, nil
}

func (s *PGSink) Close() { s.pool.Close() }

func (s *PGSink) Record(ctx context.Context, f content.Failure) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO fetch_failures (id,operation,endpoint,kind,message,occurred_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		s.newID(), f.Operation, f.Endpoint, string(f.Kind), f.Message, f.OccurredAt)
	return err
}

func (s *PGSink) QueryRecent(ctx context.Context, limit, offset int) ([]content.Failure, error) {
	limit, offset = ClampPage(limit, offset)

	rows, err := s.pool.Query(ctx, `
SELECT operation, endpoint, kind, message, occurred_at
FROM fetch_failures
ORDER BY occurred_at DESC, id DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (content.Failure, error) {
		var f content.Failure
		var kind string
		err := row.Scan(&f.Operation, &f.Endpoint, &kind, &f.Message, &f.OccurredAt)
		f.Kind = content.Kind(kind)
		return f, err
	})
}

// ClampPage applies sane paging limits: limit defaults to 50 and is capped
// at 500; negative offsets become 0.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
