// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/inkwell-app/inkwell/internal/platform/constants"
)

// CacheTTL bounds how long a cached note may diverge from storage after
// an out-of-band change.
const CacheTTL = 5 * time.Minute

// RedisCache implements [Cache] using go-redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed note cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func noteKey(id uuid.UUID) string {
	return constants.RedisPrefixNote + id.String()
}

/*
Get retrieves a cached note by ID.

Description: Returns (nil, nil) on a cache miss so the caller can fall
through to storage without treating the miss as a failure.

Parameters:
  - context: context.Context
  - id: uuid.UUID

Returns:
  - *Note: Decoded entity, or nil on miss
  - error: Connectivity or decoding failures
*/
func (cache *RedisCache) Get(context context.Context, id uuid.UUID) (*Note, error) {

	// Get the serialized note from Redis
	payload, err := cache.client.Get(context, noteKey(id)).Bytes()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_note_cache_get_failed: %w", err)
	}

	note := &Note{}
	if err := json.Unmarshal(payload, note); err != nil {
		return nil, fmt.Errorf("redis_note_cache_decode_failed: %w", err)
	}

	return note, nil
}

/*
Set stores a note under its ID with the package TTL.

Parameters:
  - context: context.Context
  - note: *Note

Returns:
  - error: Encoding or storage failures
*/
func (cache *RedisCache) Set(context context.Context, note *Note) error {
	payload, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("redis_note_cache_encode_failed: %w", err)
	}

	// Set the note with TTL
	if err := cache.client.Set(context, noteKey(note.ID), payload, CacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_note_cache_set_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Invalidate removes the cached entry for a note.

Parameters:
  - context: context.Context
  - id: uuid.UUID

Returns:
  - error: Deletion failures
*/
func (cache *RedisCache) Invalidate(context context.Context, id uuid.UUID) error {

	// Delete the note from Redis
	if err := cache.client.Del(context, noteKey(id)).Err(); err != nil {
		return fmt.Errorf("redis_note_cache_invalidate_failed: %w", err)
	}

	// Return nil on success
	return nil
}
