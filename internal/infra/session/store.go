// Package session keeps the live booking sessions in process memory.
//
// A session's flow object is where concurrent requests are serialized, so
// the store must hand out the same instance for the same id. That rules out
// any serialize-and-share storage for the sessions themselves.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lavaderolesan/LSN-BookingFlow/internal/service/bookingflow"
)

type entry struct {
	flow      *bookingflow.Flow
	expiresAt time.Time
}

// Store is an in-memory session store with sliding expiry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	done     chan struct{}
}

// NewStore creates a store whose sessions expire after ttl of inactivity and
// starts the cleanup loop.
func NewStore(ttl, cleanupInterval time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	go s.cleanupLoop(cleanupInterval)

	return s
}

// Put stores a new session and returns its id.
func (s *Store) Put(flow *bookingflow.Flow) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.sessions[id] = &entry{
		flow:      flow,
		expiresAt: time.Now().Add(s.ttl),
	}

	return id
}

// Get returns the session's flow and slides its expiry. Expired sessions
// read as not found.
func (s *Store) Get(id string) (*bookingflow.Flow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	e.expiresAt = time.Now().Add(s.ttl)
	return e.flow, nil
}

// Delete drops a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// Len returns the number of stored sessions, expired ones included until
// the next sweep.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Close stops the cleanup loop.
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now())
		case <-s.done:
			return
		}
	}
}

func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
