package infra

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tradeacademy/internal/domain"
	"tradeacademy/internal/usecase"
)

type sessionEntry struct {
	shell    *usecase.Shell
	lastSeen time.Time
}

// SessionStore keeps one dashboard Shell per browser session in memory
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry

	userRepo     domain.UserRepository
	seasonalRepo domain.SeasonalRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewSessionStore creates an empty session store
func NewSessionStore(
	userRepo domain.UserRepository,
	seasonalRepo domain.SeasonalRepository,
	logger *zap.Logger,
) *SessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionStore{
		sessions:     make(map[uuid.UUID]*sessionEntry),
		userRepo:     userRepo,
		seasonalRepo: seasonalRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// GetOrCreate returns the shell for id, creating a fresh one when the id is unknown.
// created reports whether a new shell was made.
func (s *SessionStore) GetOrCreate(id uuid.UUID) (shell *usecase.Shell, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if entry, ok := s.sessions[id]; ok {
		entry.lastSeen = now
		return entry.shell, false
	}

	shell = usecase.NewShell(id, s.userRepo, s.seasonalRepo, s.logger)
	s.sessions[id] = &sessionEntry{shell: shell, lastSeen: now}
	s.logger.Debug("session created", zap.String("session_id", id.String()))
	return shell, true
}

// Get returns the shell for id without creating one
func (s *SessionStore) Get(id uuid.UUID) (*usecase.Shell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = s.now()
	return entry.shell, true
}

// Delete drops a session
func (s *SessionStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than maxIdle and returns how many were removed
func (s *SessionStore) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
