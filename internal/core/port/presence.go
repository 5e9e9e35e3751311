package port

import "github.com/Wyydra/ya-relay/internal/core/domain"

type Presence interface {
	Register(userID domain.UserID, connID domain.ConnectionID)
	Unregister(userID domain.UserID, connID domain.ConnectionID)
	// ConnectionsOf returns a snapshot; it may be stale as soon as it is returned.
	ConnectionsOf(userID domain.UserID) []domain.ConnectionID
	IsOnline(userID domain.UserID) bool
	OnlineCount() int
}
