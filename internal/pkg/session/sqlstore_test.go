package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/migrations"
	"github.com/tharatepjaiya-creator/Student-info1/internal/db"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/session"
)

func newSQLStore(t *testing.T) *session.SQLStore {
	t.Helper()

	database, err := db.NewSQLiteMemory()
	require.NoError(t, err)
	t.Cleanup(database.Close)

	require.NoError(t, migrations.NewMigrator(database.DB, database.Driver).Run(context.Background()))
	return session.NewSQLStore(database.DB)
}

func TestSQLStoreRoundTrip(t *testing.T) {
	store := newSQLStore(t)
	ctx := context.Background()

	payload := session.Payload{
		Role:        session.RoleStudent,
		UserID:      7,
		DisplayName: "สมชาย ใจดี",
		StudentCode: "65001",
	}
	id := session.NewID()
	require.NoError(t, store.Put(ctx, id, payload, time.Hour))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, payload, *got)

	_, err = store.Get(ctx, session.NewID())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSQLStorePutReplacesExisting(t *testing.T) {
	store := newSQLStore(t)
	ctx := context.Background()

	id := session.NewID()
	require.NoError(t, store.Put(ctx, id, session.Payload{Role: session.RoleStudent, UserID: 1}, time.Hour))
	require.NoError(t, store.Put(ctx, id, session.Payload{Role: session.RoleAdmin, UserID: 2}, time.Hour))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, got.Role)
	assert.EqualValues(t, 2, got.UserID)
}

func TestSQLStoreExpiry(t *testing.T) {
	store := newSQLStore(t)
	ctx := context.Background()

	id := session.NewID()
	require.NoError(t, store.Put(ctx, id, session.Payload{Role: session.RoleAdmin, UserID: 1}, -time.Second))

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The expired row was removed on read; another read behaves the same.
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSQLStoreDestroyIdempotent(t *testing.T) {
	store := newSQLStore(t)
	ctx := context.Background()

	id := session.NewID()
	require.NoError(t, store.Put(ctx, id, session.Payload{Role: session.RoleAdmin, UserID: 1}, time.Hour))
	require.NoError(t, store.Destroy(ctx, id))
	require.NoError(t, store.Destroy(ctx, id))

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
