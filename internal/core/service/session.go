package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/core/port"
	"github.com/rs/zerolog/log"
)

const touchTimeout = 5 * time.Second

// Session is one authenticated connection: Connecting -> Authenticated ->
// Active -> Closed.
type Session struct {
	mu        sync.Mutex
	identity  domain.Identity
	conn      domain.Connection
	state     domain.SessionState
	closeOnce sync.Once
}

func (s *Session) Connection() domain.Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

func (s *Session) Identity() domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

type SessionManager struct {
	verifier port.IdentityVerifier
	presence port.Presence
	profiles port.ProfileStore
	now      func() time.Time

	// best-effort background calls
	wg sync.WaitGroup
}

func NewSessionManager(verifier port.IdentityVerifier, presence port.Presence, profiles port.ProfileStore) *SessionManager {
	return &SessionManager{
		verifier: verifier,
		presence: presence,
		profiles: profiles,
		now:      time.Now,
	}
}

// Open authenticates a credential. Nothing is registered until Activate.
func (m *SessionManager) Open(ctx context.Context, credential string) (*Session, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, fmt.Errorf("%w: missing credential", domain.ErrUnauthenticated)
	}

	identity, err := m.verifier.Verify(ctx, credential)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if identity.UserID == "" {
		return nil, fmt.Errorf("%w: credential carries no identity", domain.ErrUnauthenticated)
	}

	now := m.now()
	return &Session{
		identity: identity,
		conn: domain.Connection{
			ID:            domain.NewConnectionID(),
			UserID:        identity.UserID,
			EstablishedAt: now,
			LastActiveAt:  now,
		},
		state: domain.SessionAuthenticated,
	}, nil
}

// Activate registers the session in presence and records the user's last
// activity in the background.
func (m *SessionManager) Activate(ctx context.Context, s *Session) error {
	s.mu.Lock()
	if s.state != domain.SessionAuthenticated {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("cannot activate a session that is %s", state)
	}
	m.presence.Register(s.conn.UserID, s.conn.ID)
	s.state = domain.SessionActive
	identity := s.identity
	at := s.conn.EstablishedAt
	s.mu.Unlock()

	m.background(ctx, func(ctx context.Context) error {
		return m.profiles.TouchLastActive(ctx, identity, at)
	})
	return nil
}

func (m *SessionManager) Touch(s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.LastActiveAt = m.now()
}

// Close runs its cleanup once no matter how many times the transport
// reports the disconnect. It reports whether this call did the cleanup.
func (m *SessionManager) Close(s *Session) bool {
	closed := false
	s.closeOnce.Do(func() {
		s.mu.Lock()
		prev := s.state
		s.state = domain.SessionClosed
		conn := s.conn
		s.mu.Unlock()

		if prev == domain.SessionActive {
			m.presence.Unregister(conn.UserID, conn.ID)
		}
		closed = true
	})
	return closed
}

// Wait blocks until pending background calls are done.
func (m *SessionManager) Wait() {
	m.wg.Wait()
}

func (m *SessionManager) background(ctx context.Context, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), touchTimeout)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer cancel()
		if err := fn(ctx); err != nil {
			log.Warn().Err(err).Msg("Background update failed")
		}
	}()
}
