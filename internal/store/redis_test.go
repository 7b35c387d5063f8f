package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-keeper/models"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), "redis://"+s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, s
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "://nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	_, err := NewRedisClient(context.Background(), "redis://"+addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to redis")
}

func TestRedisCollectionStore_SaveLoad(t *testing.T) {
	client, s := setupTestRedis(t)
	ctx := context.Background()
	store := NewRedisCollectionStore[models.Item](client, "cms", "items")
	in := []models.Item{
		{ID: "7", Name: "Vinyl", Price: "20"},
		{ID: "4", Name: "Tape", Genres: []models.Genre{{ID: "1", Title: "Jazz"}}},
	}

	require.NoError(t, store.Save(ctx, in))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	list, err := s.List("cms:items")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRedisCollectionStore_SaveReplaces(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()
	store := NewRedisCollectionStore[models.Item](client, "cms", "items")

	require.NoError(t, store.Save(ctx, []models.Item{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, store.Save(ctx, []models.Item{{ID: "3"}}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Item{{ID: "3"}}, got)
}

func TestRedisCollectionStore_SaveEmptyClears(t *testing.T) {
	client, s := setupTestRedis(t)
	ctx := context.Background()
	store := NewRedisCollectionStore[models.Item](client, "cms", "items")

	require.NoError(t, store.Save(ctx, []models.Item{{ID: "1"}}))
	require.NoError(t, store.Save(ctx, nil))

	assert.False(t, s.Exists("cms:items"))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisCollectionStore_CollectionsAreSeparate(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()
	posts := NewRedisCollectionStore[models.Post](client, "cms", "posts")
	categories := NewRedisCollectionStore[models.Category](client, "cms", "categories")

	require.NoError(t, posts.Save(ctx, []models.Post{{ID: "1", Title: "Hello"}}))
	require.NoError(t, categories.Save(ctx, []models.Category{{ID: "1", Title: "News"}}))

	require.NoError(t, posts.Drop(ctx))

	gotPosts, err := posts.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, gotPosts)

	gotCategories, err := categories.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, gotCategories, 1)
}

func TestRedisCollectionStore_LoadBadBody(t *testing.T) {
	client, s := setupTestRedis(t)
	_, err := s.Push("cms:items", "{broken")
	require.NoError(t, err)

	_, err = NewRedisCollectionStore[models.Item](client, "cms", "items").Load(context.Background())
	assert.ErrorIs(t, err, ErrDecodingRecord)
}
