package limiter

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	count int
	start time.Time
}

type MemoryStore struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (s *MemoryStore) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > window {
		s.sweep(now, window)
	}

	b, ok := s.buckets[key]
	if !ok || now.Sub(b.start) > window {
		b = &bucket{start: now}
		s.buckets[key] = b
	}

	if b.count >= limit {
		return false, nil
	}

	b.count++
	return true, nil
}

// sweep drops buckets whose window has passed. At most once per window,
// so the map stays bounded by the clients seen in the last two windows.
func (s *MemoryStore) sweep(now time.Time, window time.Duration) {
	for key, b := range s.buckets {
		if now.Sub(b.start) > window {
			delete(s.buckets, key)
		}
	}
	s.lastSweep = now
}
