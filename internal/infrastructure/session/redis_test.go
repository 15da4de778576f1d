package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

func TestDecodeLocation(t *testing.T) {
	got, err := decodeLocation([]byte(`{"latitude":43.78,"longitude":-79.4}`))
	require.NoError(t, err)
	assert.Equal(t, domain.GeoPoint{Latitude: 43.78, Longitude: -79.4}, *got)

	_, err = decodeLocation([]byte(`not json`))
	assert.Error(t, err)
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "http://not-redis")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	repo, err := Open(context.Background(), "memory", "")
	require.NoError(t, err)
	defer repo.Close()
	assert.IsType(t, &MemoryStore{}, repo)

	_, err = Open(context.Background(), "etcd", "")
	assert.Error(t, err)
}

// Runs against a real server when CATALOGQA_TEST_REDIS_URL is set
func TestRedisStore_Integration(t *testing.T) {
	redisURL := os.Getenv("CATALOGQA_TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("CATALOGQA_TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	store, err := NewRedisStore(ctx, redisURL)
	require.NoError(t, err)
	defer store.Close()

	id := uuid.NewString()

	_, err = store.GetLocation(ctx, id)
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))

	want := domain.GeoPoint{Latitude: 43.78, Longitude: -79.40}
	require.NoError(t, store.SaveLocation(ctx, id, want, time.Minute))

	got, err := store.GetLocation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	ttl, err := store.client.TTL(ctx, store.key(id)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
