package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/dberrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
)

// SQLStore keeps sessions in the relational store, so they survive restarts
// and are shared by every process against the same database.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore creates a Store backed by the sessions table.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

type sessionRow struct {
	SID       string `db:"sid"`
	Payload   string `db:"payload"`
	ExpiresAt int64  `db:"expires_at"`
}

// Get loads the session with the given id. Expired rows are deleted on the
// spot and reported as not found.
func (s *SQLStore) Get(ctx context.Context, id string) (*Payload, error) {
	var row sessionRow
	query := s.db.Rebind(`SELECT sid, payload, expires_at FROM sessions WHERE sid = ?`)
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}

	if time.Now().Unix() > row.ExpiresAt {
		if err := s.Destroy(ctx, id); err != nil {
			logger.Warn().Err(err).Str("sid", id).Msg("failed to remove expired session")
		}
		return nil, apperrors.ErrNotFound
	}

	var payload Payload
	if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
		return nil, fmt.Errorf("decoding session payload: %w", err)
	}
	return &payload, nil
}

// Put inserts or replaces the session record.
func (s *SQLStore) Put(ctx context.Context, id string, payload Payload, ttl time.Duration) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding session payload: %w", err)
	}

	query := s.db.Rebind(`
		INSERT INTO sessions (sid, payload, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT (sid) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at`)
	if _, err := s.db.ExecContext(ctx, query, id, string(encoded), time.Now().Add(ttl).Unix()); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// Destroy deletes the session record. Deleting a missing session is not an error.
func (s *SQLStore) Destroy(ctx context.Context, id string) error {
	query := s.db.Rebind(`DELETE FROM sessions WHERE sid = ?`)
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}
	return nil
}
