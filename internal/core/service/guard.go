package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/core/port"
)

type PartyCheck int

const (
	PartyOK PartyCheck = iota
	PartyNotFound
	PartyForbidden
)

func (p PartyCheck) String() string {
	switch p {
	case PartyOK:
		return "ok"
	case PartyNotFound:
		return "not-found"
	case PartyForbidden:
		return "forbidden"
	}
	return "unknown"
}

// CallGuard is the single check that a requester is one of the two parties
// of a call. Every call and signaling operation goes through it.
type CallGuard struct {
	store port.CallStore
}

func NewCallGuard(store port.CallStore) *CallGuard {
	return &CallGuard{store: store}
}

// Check returns a non-nil error only when the store itself failed.
func (g *CallGuard) Check(ctx context.Context, callID domain.CallID, requester domain.UserID) (domain.Call, PartyCheck, error) {
	call, err := g.store.GetCall(ctx, callID, requester)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.Call{}, PartyNotFound, nil
	case errors.Is(err, domain.ErrForbidden):
		return domain.Call{}, PartyForbidden, nil
	case err != nil:
		return domain.Call{}, PartyOK, err
	}
	if !call.IsParty(requester) {
		return domain.Call{}, PartyForbidden, nil
	}
	return call, PartyOK, nil
}

// Authorize is Check folded into a single error.
func (g *CallGuard) Authorize(ctx context.Context, callID domain.CallID, requester domain.UserID) (domain.Call, error) {
	if callID == "" {
		return domain.Call{}, fmt.Errorf("%w: call is required", domain.ErrValidation)
	}
	call, result, err := g.Check(ctx, callID, requester)
	if err != nil {
		return domain.Call{}, err
	}
	switch result {
	case PartyNotFound:
		return domain.Call{}, fmt.Errorf("%w: call %s", domain.ErrNotFound, callID)
	case PartyForbidden:
		return domain.Call{}, fmt.Errorf("%w: not a party of call %s", domain.ErrForbidden, callID)
	}
	return call, nil
}
