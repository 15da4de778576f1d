// Package session stores per-session user state (the last shared location).
package session

import (
	"context"
	"sync"
	"time"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

const defaultCleanupInterval = 10 * time.Minute

// locationEntry is one stored location with its expiration
type locationEntry struct {
	location   domain.GeoPoint
	expiration time.Time
}

// MemoryStore is a thread-safe in-process session store with TTL support
type MemoryStore struct {
	data  map[string]locationEntry
	mutex sync.RWMutex
	now   func() time.Time

	stop      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore creates a store that evicts expired sessions every cleanupInterval
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}

	store := &MemoryStore{
		data: make(map[string]locationEntry),
		now:  time.Now,
		stop: make(chan struct{}),
	}

	go store.cleanupExpired(cleanupInterval)

	return store
}

// GetLocation returns the location saved for the session
func (s *MemoryStore) GetLocation(ctx context.Context, sessionID string) (*domain.GeoPoint, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.data[sessionID]
	if !exists || s.now().After(entry.expiration) {
		return nil, domain.ErrSessionNotFound
	}

	location := entry.location
	return &location, nil
}

// SaveLocation stores the location for the session, replacing any previous one
func (s *MemoryStore) SaveLocation(ctx context.Context, sessionID string, location domain.GeoPoint, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[sessionID] = locationEntry{
		location:   location,
		expiration: s.now().Add(ttl),
	}
	return nil
}

// Size returns the number of stored sessions, expired ones included
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Close stops the cleanup goroutine
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemoryStore) evictExpired() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	for id, entry := range s.data {
		if now.After(entry.expiration) {
			delete(s.data, id)
		}
	}
}
