package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-content-keeper/models"
)

// NewRedisClient parses redisURL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

// redisCollectionStore keeps one collection as a Redis list of JSON bodies
// under "<prefix>:<collection>".
type redisCollectionStore[T models.Record] struct {
	client *redis.Client
	key    string
}

func NewRedisCollectionStore[T models.Record](client *redis.Client, prefix, collection string) CollectionStore[T] {
	return &redisCollectionStore[T]{
		client: client,
		key:    prefix + ":" + collection,
	}
}

func (s *redisCollectionStore[T]) Load(ctx context.Context) ([]T, error) {
	bodies, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", s.key, err)
	}

	records := make([]T, 0, len(bodies))
	for _, body := range bodies {
		var record T
		if err := json.Unmarshal([]byte(body), &record); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// Save replaces the list in one MULTI/EXEC so readers never see a partial
// collection.
func (s *redisCollectionStore[T]) Save(ctx context.Context, records []T) error {
	rows, err := encodeRows(records)
	if err != nil {
		return err
	}

	values := make([]any, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.body)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(values) > 0 {
			pipe.RPush(ctx, s.key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save collection %s: %w", s.key, err)
	}

	return nil
}

func (s *redisCollectionStore[T]) Drop(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("drop collection %s: %w", s.key, err)
	}
	return nil
}
