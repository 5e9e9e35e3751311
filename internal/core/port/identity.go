package port

import (
	"context"

	"github.com/Wyydra/ya-relay/internal/core/domain"
)

type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (domain.Identity, error)
}
