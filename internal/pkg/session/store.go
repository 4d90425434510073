// Package session provides the server-side session storage behind the opaque
// cookie id. The session record, not anything the client holds, is the
// authority for who is logged in.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the authenticated role carried by a session.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Payload is the data attached to an authenticated session.
type Payload struct {
	Role        Role   `json:"role"`
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	StudentCode string `json:"student_code,omitempty"`
}

// Store persists sessions keyed by an opaque id. Get returns
// apperrors.ErrNotFound for missing and for expired sessions; expired records
// are removed lazily on read. Destroy is idempotent.
type Store interface {
	Get(ctx context.Context, id string) (*Payload, error)
	Put(ctx context.Context, id string, payload Payload, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}

// NewID returns a fresh opaque session id.
func NewID() string {
	return uuid.New().String()
}
