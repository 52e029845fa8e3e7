package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"notedesk/models"
)

// The engine holds no "current account" state; the presentation layer
// keeps a session here and passes its id into every service call.

const DefaultTTL = 12 * time.Hour

var ErrNotFound = errors.New("session not found")

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	done     chan struct{}
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
}

func (s *Store) Create(accountID int64, username string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	session := &models.Session{
		ID:         uuid.New().String(),
		AccountID:  accountID,
		Username:   username,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	s.sessions[session.ID] = session
	return session, nil
}

func (s *Store) Get(sessionID string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, ErrNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		delete(s.sessions, sessionID)
		return nil, ErrNotFound
	}

	session.LastUsedAt = time.Now()
	return session, nil
}

func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) CleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if time.Now().After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}

// StartCleanupRoutine evicts expired sessions in the background until
// Stop is called.
func (s *Store) StartCleanupRoutine(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.CleanupExpired()
			case <-s.done:
				return
			}
		}
	}()
}

func (s *Store) Stop() {
	close(s.done)
}
