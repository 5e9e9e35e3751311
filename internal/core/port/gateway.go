package port

import (
	"context"

	"github.com/Wyydra/ya-relay/internal/core/domain"
)

// Gateway writes events to live connections.
type Gateway interface {
	Send(ctx context.Context, connID domain.ConnectionID, event domain.Event) error
}
