package session

import (
	"context"
	"fmt"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

// Open builds the session repository selected by storeType ("memory" or "redis")
func Open(ctx context.Context, storeType, redisURL string) (domain.SessionRepository, error) {
	switch storeType {
	case "", "memory":
		return NewMemoryStore(0), nil
	case "redis":
		store, err := NewRedisStore(ctx, redisURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session store type %q", storeType)
	}
}
