package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Wyydra/ya-relay/internal/adapter/driven/presence/memory"
	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/core/port/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type verifierFunc func(ctx context.Context, credential string) (domain.Identity, error)

func (f verifierFunc) Verify(ctx context.Context, credential string) (domain.Identity, error) {
	return f(ctx, credential)
}

var staticVerifier = verifierFunc(func(_ context.Context, credential string) (domain.Identity, error) {
	switch credential {
	case "token-u1":
		return domain.Identity{UserID: "u1", DisplayName: "Alice"}, nil
	case "token-blank":
		return domain.Identity{}, nil
	case "token-broken":
		return domain.Identity{}, errors.New("signature mismatch")
	}
	return domain.Identity{}, domain.ErrUnauthenticated
})

func TestSessionManager_Open_Refuses_Bad_Credentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileStore(ctrl)
	presence := memory.NewRegistry()
	manager := NewSessionManager(staticVerifier, presence, profiles)
	profiles.EXPECT().TouchLastActive(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, credential := range []string{"", "  ", "nope", "token-blank", "token-broken"} {
		t.Run(credential, func(t *testing.T) {
			req := require.New(t)
			session, err := manager.Open(context.Background(), credential)
			req.ErrorIs(err, domain.ErrUnauthenticated)
			req.Nil(session)
			req.Zero(presence.OnlineCount())
		})
	}
}

func TestSessionManager_Lifecycle(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileStore(ctrl)
	presence := memory.NewRegistry()
	manager := NewSessionManager(staticVerifier, presence, profiles)

	// Given a valid credential
	session, err := manager.Open(context.Background(), "token-u1")
	req.NoError(err)
	req.Equal(domain.SessionAuthenticated, session.State())
	req.Equal(domain.UserID("u1"), session.Connection().UserID)
	req.NotEmpty(session.Connection().ID)

	// Then nothing is registered before activation
	req.False(presence.IsOnline("u1"))

	// When the session is activated
	profiles.EXPECT().
		TouchLastActive(gomock.Any(), domain.Identity{UserID: "u1", DisplayName: "Alice"}, session.Connection().EstablishedAt).
		Return(nil).
		Times(1)
	req.NoError(manager.Activate(context.Background(), session))
	manager.Wait()

	// Then the user is online
	req.Equal(domain.SessionActive, session.State())
	req.Equal([]domain.ConnectionID{session.Connection().ID}, presence.ConnectionsOf("u1"))

	// When it is closed twice
	req.True(manager.Close(session))
	req.False(manager.Close(session))

	// Then the registry effect is the same as closing once
	req.Equal(domain.SessionClosed, session.State())
	req.False(presence.IsOnline("u1"))
	req.Error(manager.Activate(context.Background(), session))
}

func TestSessionManager_Close_Keeps_Other_Devices(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileStore(ctrl)
	presence := memory.NewRegistry()
	manager := NewSessionManager(staticVerifier, presence, profiles)
	profiles.EXPECT().TouchLastActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := manager.Open(context.Background(), "token-u1")
	req.NoError(err)
	second, err := manager.Open(context.Background(), "token-u1")
	req.NoError(err)
	req.NoError(manager.Activate(context.Background(), first))
	req.NoError(manager.Activate(context.Background(), second))
	manager.Wait()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			manager.Close(first)
		}()
	}
	wg.Wait()

	req.Equal([]domain.ConnectionID{second.Connection().ID}, presence.ConnectionsOf("u1"))
}

func TestSessionManager_Touch_Failure_Is_Not_Fatal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	profiles := mocks.NewMockProfileStore(ctrl)
	presence := memory.NewRegistry()
	manager := NewSessionManager(staticVerifier, presence, profiles)
	profiles.EXPECT().TouchLastActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	session, err := manager.Open(context.Background(), "token-u1")
	req.NoError(err)

	// The activation context may go away right after, the update still runs
	ctx, cancel := context.WithCancel(context.Background())
	req.NoError(manager.Activate(ctx, session))
	cancel()
	manager.Wait()

	req.True(presence.IsOnline("u1"))
}

func TestSessionManager_Close_Before_Activate(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	presence := memory.NewRegistry()
	manager := NewSessionManager(staticVerifier, presence, mocks.NewMockProfileStore(ctrl))

	session, err := manager.Open(context.Background(), "token-u1")
	req.NoError(err)

	req.True(manager.Close(session))
	req.False(presence.IsOnline("u1"))
	req.Error(manager.Activate(context.Background(), session))
}
