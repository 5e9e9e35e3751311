package domain

import "time"

type Connection struct {
	ID            ConnectionID
	UserID        UserID
	EstablishedAt time.Time
	LastActiveAt  time.Time
}

// Identity is what the identity verifier vouches for.
type Identity struct {
	UserID      UserID
	DisplayName string
}

type SessionState int

const (
	SessionConnecting SessionState = iota
	SessionAuthenticated
	SessionActive
	SessionClosed
)

func (s SessionState) String() string {
	switch s {
	case SessionConnecting:
		return "connecting"
	case SessionAuthenticated:
		return "authenticated"
	case SessionActive:
		return "active"
	case SessionClosed:
		return "closed"
	}
	return "unknown"
}
