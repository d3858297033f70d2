package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"talentscout/internal/conversation"
	"talentscout/internal/errors"
	"talentscout/internal/observability"
)

// Session binds one interview engine to an identifier. Handlers hold mu for
// the duration of a turn so concurrent messages to the same session serialize
// instead of interleaving the flow.
type Session struct {
	ID         string
	Engine     *conversation.Engine
	CreatedAt  time.Time
	LastActive time.Time

	mu sync.Mutex
}

// Lock acquires the per-session lock and stamps activity.
func (s *Session) Lock() {
	s.mu.Lock()
	s.LastActive = time.Now()
}

// Unlock releases the per-session lock.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// SessionManager is the in-memory session store. Sessions idle past the TTL
// are evicted by a background janitor.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl             time.Duration
	cleanupInterval time.Duration
	maxSessions     int

	newEngine func() *conversation.Engine
	metrics   *observability.Metrics
	logger    *errors.Logger
	done      chan struct{}
}

// NewSessionManager creates a session store and starts its janitor.
func NewSessionManager(ttl, cleanupInterval time.Duration, maxSessions int,
	newEngine func() *conversation.Engine, metrics *observability.Metrics,
	logger *errors.Logger) *SessionManager {

	m := &SessionManager{
		sessions:        make(map[string]*Session),
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		maxSessions:     maxSessions,
		newEngine:       newEngine,
		metrics:         metrics,
		logger:          logger,
		done:            make(chan struct{}),
	}

	go m.cleanupRoutine()
	return m
}

// Create allocates a new session in the greeting state.
func (m *SessionManager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		return nil, errors.NewSessionError(errors.ErrCodeInvalidRequest,
			"session capacity reached", nil).
			WithContext("max_sessions", m.maxSessions)
	}

	now := time.Now()
	session := &Session{
		ID:         uuid.NewString(),
		Engine:     m.newEngine(),
		CreatedAt:  now,
		LastActive: now,
	}
	m.sessions[session.ID] = session

	if m.metrics != nil {
		m.metrics.SessionsStarted.Inc()
		m.metrics.ActiveSessions.Set(float64(len(m.sessions)))
	}
	return session, nil
}

// Get retrieves a session by ID.
func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewSessionError(errors.ErrCodeSessionNotFound,
			"session not found", nil).WithContext("session_id", id)
	}
	return session, nil
}

// Reset replaces a session's engine with a fresh one, discarding all
// collected data but keeping the ID.
func (m *SessionManager) Reset(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, errors.NewSessionError(errors.ErrCodeSessionNotFound,
			"session not found", nil).WithContext("session_id", id)
	}

	session.mu.Lock()
	session.Engine = m.newEngine()
	session.LastActive = time.Now()
	session.mu.Unlock()

	return session, nil
}

// Delete removes a session.
func (m *SessionManager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return errors.NewSessionError(errors.ErrCodeSessionNotFound,
			"session not found", nil).WithContext("session_id", id)
	}
	delete(m.sessions, id)

	if m.metrics != nil {
		m.metrics.ActiveSessions.Set(float64(len(m.sessions)))
	}
	return nil
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the janitor goroutine.
func (m *SessionManager) Close() {
	close(m.done)
}

func (m *SessionManager) cleanupRoutine() {
	interval := m.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.evictExpired()
		case <-m.done:
			return
		}
	}
}

// evictExpired drops sessions idle beyond the TTL.
func (m *SessionManager) evictExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	evicted := 0
	for id, session := range m.sessions {
		if now.Sub(session.LastActive) > m.ttl {
			delete(m.sessions, id)
			evicted++
		}
	}

	if m.metrics != nil {
		m.metrics.ActiveSessions.Set(float64(len(m.sessions)))
	}
	if evicted > 0 && m.logger != nil {
		m.logger.Debug("Session cleanup completed",
			"evicted", evicted,
			"remaining", len(m.sessions))
	}
}
