package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dacosta-backend/internal/domains/cart"
	"dacosta-backend/pkg/logger"
)

const (
	// keyPrefix carries the schema version so a format change never has
	// to migrate old documents, they just expire.
	keyPrefix = "cart:v1:"

	// ChangeChannel receives the session id of every modified cart.
	// A browser tab subscribed via the events endpoint refreshes its
	// badge when another tab of the same session edits the cart.
	ChangeChannel = "cart:changed"
)

type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository stores carts as JSON documents with a sliding TTL.
func NewRedisRepository(client *redis.Client, ttl time.Duration) cart.Repository {
	return &redisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisRepository) Get(ctx context.Context, sessionID string) (*cart.Document, error) {
	if sessionID == "" {
		return nil, cart.ErrNoSession
	}

	data, err := r.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var d cart.Document
	if err := json.Unmarshal(data, &d); err != nil || d.SchemaVersion != cart.SchemaVersion {
		// Corrupt or outdated document: start over rather than fail the
		// whole shop page.
		logger.Debug("Discarding unreadable cart document")
		return cart.NewDocument(), nil
	}
	if d.Items == nil {
		d.Items = []cart.Item{}
	}

	return &d, nil
}

func (r *redisRepository) Save(ctx context.Context, sessionID string, d *cart.Document) error {
	if sessionID == "" {
		return cart.ErrNoSession
	}

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	r.publishChange(ctx, sessionID)

	return nil
}

func (r *redisRepository) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return cart.ErrNoSession
	}

	if err := r.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	r.publishChange(ctx, sessionID)

	return nil
}

// publishChange is best effort: a missed notification only delays a badge
// refresh until the next page load.
func (r *redisRepository) publishChange(ctx context.Context, sessionID string) {
	if err := r.client.Publish(ctx, ChangeChannel, sessionID).Err(); err != nil {
		logger.Error("Failed to publish cart change", err)
	}
}
