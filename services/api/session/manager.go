package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an idle session lives before the janitor
// reaps it.
const DefaultTTL = 30 * time.Minute

// ErrNoSession reports an unknown or expired session id.
var ErrNoSession = errors.New("session: not found")

// Manager owns every live demo session.
type Manager struct {
	ttl       time.Duration
	noticeTTL time.Duration
	clock     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Option tweaks a Manager. Tests use these to take control of time.
type Option func(*Manager)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.clock = now }
}

// WithNoticeTTL overrides the notice-clear interval.
func WithNoticeTTL(d time.Duration) Option {
	return func(m *Manager) { m.noticeTTL = d }
}

// NewManager builds a Manager reaping sessions idle longer than ttl.
// A non-positive ttl falls back to DefaultTTL.
func NewManager(ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		ttl:       ttl,
		noticeTTL: noticeTTL,
		clock:     time.Now,
		sessions:  make(map[string]*Session),
	}
	if m.ttl <= 0 {
		m.ttl = DefaultTTL
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create seeds a new session and registers it.
func (m *Manager) Create() *Session {
	now := m.clock()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		clock:     m.clock,
		noticeTTL: m.noticeTTL,
		state:     NewState(now),
		lastSeen:  now,
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get resolves a session id and refreshes its idle clock.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}
	s.touch(m.clock())
	return s, nil
}

// End closes a session and forgets it.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return ErrNoSession
	}
	s.Close()
	return nil
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// TTL is the configured idle expiry.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start launches the idle-sweep janitor. It stops when ctx is
// cancelled and closes every remaining session on the way out, so no
// notice timer outlives the process lifecycle.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.ttl / 4)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				m.CloseAll()
				return
			case <-ticker.C:
				m.sweep()
			}
		}
	}()
}

// CloseAll ends every session.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	dead := make([]*Session, 0, len(m.sessions))
	for id, s := range m.sessions {
		delete(m.sessions, id)
		dead = append(dead, s)
	}
	m.mu.Unlock()
	for _, s := range dead {
		s.Close()
	}
}

func (m *Manager) sweep() {
	now := m.clock()
	m.mu.Lock()
	var dead []*Session
	for id, s := range m.sessions {
		if now.Sub(s.lastSeenAt()) > m.ttl {
			delete(m.sessions, id)
			dead = append(dead, s)
		}
	}
	m.mu.Unlock()
	for _, s := range dead {
		s.Close()
	}
}
