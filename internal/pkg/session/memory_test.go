package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id := NewID()
	payload := Payload{
		Role:        RoleStudent,
		UserID:      42,
		DisplayName: "Somchai Jaidee",
		StudentCode: "68319090016",
	}

	require.NoError(t, store.Put(ctx, id, payload, time.Hour))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, payload, *got)
}

func TestMemoryStoreMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), NewID())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	current := time.Now()
	store.now = func() time.Time { return current }

	id := NewID()
	require.NoError(t, store.Put(ctx, id, Payload{Role: RoleAdmin, UserID: 1}, time.Minute))

	// Still valid just before the deadline.
	current = current.Add(59 * time.Second)
	_, err := store.Get(ctx, id)
	require.NoError(t, err)

	// Gone after it.
	current = current.Add(2 * time.Second)
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryStoreDestroyIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id := NewID()
	require.NoError(t, store.Put(ctx, id, Payload{Role: RoleAdmin, UserID: 1}, time.Hour))

	require.NoError(t, store.Destroy(ctx, id))
	require.NoError(t, store.Destroy(ctx, id))

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNewIDIsOpaqueAndUnique(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
