package memory

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Register_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// When the same pair is registered twice
	registry.Register("u1", "c1")
	registry.Register("u1", "c1")

	// Then it is counted once
	req.Equal([]domain.ConnectionID{"c1"}, registry.ConnectionsOf("u1"))
	req.True(registry.IsOnline("u1"))
	req.Equal(1, registry.OnlineCount())
}

func TestRegistry_Multiple_Devices(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given a user with two connections
	registry.Register("u1", "c1")
	registry.Register("u1", "c2")
	req.ElementsMatch([]domain.ConnectionID{"c1", "c2"}, registry.ConnectionsOf("u1"))

	// When one device leaves
	registry.Unregister("u1", "c1")

	// Then the user stays online through the other one
	req.True(registry.IsOnline("u1"))
	req.Equal([]domain.ConnectionID{"c2"}, registry.ConnectionsOf("u1"))

	// When the last device leaves
	registry.Unregister("u1", "c2")

	// Then no empty entry is left behind
	req.False(registry.IsOnline("u1"))
	req.Empty(registry.ConnectionsOf("u1"))
	req.Empty(registry.conns)
}

func TestRegistry_Unregister_Twice_Has_Same_Effect_As_Once(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Register("u1", "c1")
	registry.Register("u1", "c2")

	registry.Unregister("u1", "c1")
	registry.Unregister("u1", "c1")

	req.Equal([]domain.ConnectionID{"c2"}, registry.ConnectionsOf("u1"))
	req.Len(registry.conns["u1"], 1)
}

func TestRegistry_Unregister_Unknown_Is_Noop(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Register("u1", "c1")

	registry.Unregister("u2", "c1")
	registry.Unregister("u1", "c9")

	req.True(registry.IsOnline("u1"))
	req.False(registry.IsOnline("u2"))
}

func TestRegistry_Snapshot_Is_Detached(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Register("u1", "c1")

	snapshot := registry.ConnectionsOf("u1")
	registry.Unregister("u1", "c1")

	req.Equal([]domain.ConnectionID{"c1"}, snapshot)
}

// Random register/unregister sequences checked against a simple model:
// online iff some registered pair is still outstanding.
func TestRegistry_Presence_Accounting_Matches_Model(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		registry := NewRegistry()
		model := make(map[domain.UserID]map[domain.ConnectionID]bool)

		for step := 0; step < 200; step++ {
			user := domain.UserID(fmt.Sprintf("u%d", rng.Intn(4)))
			conn := domain.ConnectionID(fmt.Sprintf("c%d", rng.Intn(5)))
			if model[user] == nil {
				model[user] = make(map[domain.ConnectionID]bool)
			}
			if rng.Intn(2) == 0 {
				registry.Register(user, conn)
				model[user][conn] = true
			} else {
				registry.Unregister(user, conn)
				delete(model[user], conn)
			}

			for u, set := range model {
				req.Equal(len(set) > 0, registry.IsOnline(u), "user %s at step %d", u, step)
				req.Len(registry.ConnectionsOf(u), len(set))
			}
		}
	}
}

func TestRegistry_Concurrent_Access(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := domain.UserID(fmt.Sprintf("u%d", i%5))
			conn := domain.ConnectionID(fmt.Sprintf("c%d", i))
			registry.Register(user, conn)
			_ = registry.ConnectionsOf(user)
			_ = registry.IsOnline(user)
			registry.Unregister(user, conn)
		}(i)
	}
	wg.Wait()

	req.Zero(registry.OnlineCount())
}
