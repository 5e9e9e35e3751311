package memory

import (
	"sync"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/samber/lo"
)

// Registry implements port.Presence.
type Registry struct {
	mu    sync.RWMutex
	conns map[domain.UserID]map[domain.ConnectionID]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[domain.UserID]map[domain.ConnectionID]struct{}),
	}
}

func (r *Registry) Register(userID domain.UserID, connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		set = make(map[domain.ConnectionID]struct{})
		r.conns[userID] = set
	}
	set[connID] = struct{}{}
}

// Unregister drops the identity entirely once its last connection is gone.
func (r *Registry) Unregister(userID domain.UserID, connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		return
	}
	delete(set, connID)
	if len(set) == 0 {
		delete(r.conns, userID)
	}
}

func (r *Registry) ConnectionsOf(userID domain.UserID) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Keys(r.conns[userID])
}

func (r *Registry) IsOnline(userID domain.UserID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.conns[userID]
	return ok
}

func (r *Registry) OnlineCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}
