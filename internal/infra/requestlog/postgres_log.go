package requestlog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vedicworks/muhurat-api/internal/domain/audit"
	apperrors "github.com/vedicworks/muhurat-api/pkg/errors"
)

// PostgresLog implements audit.Log using pgx.
//
// Expected schema:
//
//	CREATE TABLE api_request_log (
//	    id               BIGSERIAL PRIMARY KEY,
//	    endpoint         TEXT NOT NULL,
//	    request_payload  TEXT NOT NULL,
//	    response_payload TEXT NOT NULL,
//	    created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresLog struct {
	pool *pgxpool.Pool
}

// NewPostgresLog constructs the repository.
func NewPostgresLog(pool *pgxpool.Pool) *PostgresLog {
	return &PostgresLog{pool: pool}
}

// Record inserts one audit row.
func (l *PostgresLog) Record(ctx context.Context, entry audit.Entry) error {
	_, err := l.pool.Exec(ctx, `
		INSERT INTO api_request_log (endpoint, request_payload, response_payload)
		VALUES ($1, $2, $3)
	`, entry.Endpoint, entry.RequestPayload, entry.ResponsePayload)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorageError, "audit insert failed", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *PostgresLog) Recent(ctx context.Context, limit int) ([]audit.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.pool.Query(ctx, `
		SELECT id, endpoint, request_payload, response_payload, created_at
		FROM api_request_log
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]audit.Entry, 0, limit)
	for rows.Next() {
		var entry audit.Entry
		if err := rows.Scan(&entry.ID, &entry.Endpoint, &entry.RequestPayload, &entry.ResponsePayload, &entry.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

var _ audit.Log = (*PostgresLog)(nil)
