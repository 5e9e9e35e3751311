package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/core/port"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

// CallService runs call transitions through the store and relays signaling
// between the two parties of a call.
type CallService struct {
	store    port.CallStore
	profiles port.ProfileStore
	presence port.Presence
	guard    *CallGuard
}

func NewCallService(store port.CallStore, profiles port.ProfileStore, presence port.Presence) *CallService {
	return &CallService{
		store:    store,
		profiles: profiles,
		presence: presence,
		guard:    NewCallGuard(store),
	}
}

// Initiate leaves an unanswered call in place when the receiver is offline.
func (s *CallService) Initiate(ctx context.Context, conn domain.Connection, cmd domain.InitiateCallCommand) ([]Delivery, error) {
	if cmd.ReceiverID == "" {
		return nil, fmt.Errorf("%w: receiver is required", domain.ErrValidation)
	}
	if cmd.ReceiverID == conn.UserID {
		return nil, fmt.Errorf("%w: cannot call yourself", domain.ErrValidation)
	}

	call, err := s.store.InitiateCall(ctx, conn.UserID, cmd.ReceiverID)
	if err != nil {
		return nil, err
	}

	out := []Delivery{reply(conn, domain.EventCallInitiated, domain.CallUpdate{Call: call, By: conn.UserID})}
	if !s.presence.IsOnline(call.ReceiverID) {
		return out, nil
	}

	incoming := domain.IncomingCall{Call: call, Caller: s.callerProfile(ctx, call.CallerID)}
	if d, ok := fanOut(s.presence, domain.EventCallIncoming, incoming, call.ReceiverID); ok {
		out = append(out, d)
	}
	return out, nil
}

func (s *CallService) Answer(ctx context.Context, conn domain.Connection, callID domain.CallID) ([]Delivery, error) {
	return s.transition(ctx, conn, callID, domain.CallAnswered, domain.EventCallAnswered, domain.EventCallAnswerConfirmed)
}

func (s *CallService) Reject(ctx context.Context, conn domain.Connection, callID domain.CallID) ([]Delivery, error) {
	return s.transition(ctx, conn, callID, domain.CallRejected, domain.EventCallRejected, domain.EventCallRejectConfirmed)
}

// UpdateStatus only accepts the ringing and missed markers.
func (s *CallService) UpdateStatus(ctx context.Context, conn domain.Connection, cmd domain.CallTransitionCommand) ([]Delivery, error) {
	if cmd.Status != domain.CallRinging && cmd.Status != domain.CallMissed {
		return nil, fmt.Errorf("%w: unsupported call status %q", domain.ErrValidation, cmd.Status)
	}
	return s.transition(ctx, conn, cmd.CallID, cmd.Status, domain.EventCallStatusUpdated, domain.EventCallStatusConfirmed)
}

func (s *CallService) End(ctx context.Context, conn domain.Connection, callID domain.CallID) ([]Delivery, error) {
	call, err := s.guard.Authorize(ctx, callID, conn.UserID)
	if err != nil {
		return nil, err
	}
	call, err = s.store.EndCall(ctx, call.ID, conn.UserID)
	if err != nil {
		return nil, err
	}
	return s.notify(conn, call, domain.EventCallEnded, domain.EventCallEndConfirmed), nil
}

func (s *CallService) transition(ctx context.Context, conn domain.Connection, callID domain.CallID, to domain.CallStatus, notice, confirm domain.EventName) ([]Delivery, error) {
	call, err := s.guard.Authorize(ctx, callID, conn.UserID)
	if err != nil {
		return nil, err
	}
	call, err = s.store.TransitionCall(ctx, call.ID, to, conn.UserID)
	if err != nil {
		return nil, err
	}
	return s.notify(conn, call, notice, confirm), nil
}

func (s *CallService) notify(conn domain.Connection, call domain.Call, notice, confirm domain.EventName) []Delivery {
	update := domain.CallUpdate{Call: call, By: conn.UserID}
	out := []Delivery{reply(conn, confirm, update)}
	if d, ok := fanOut(s.presence, notice, update, call.Other(conn.UserID)); ok {
		out = append(out, d)
	}
	return out
}

// RelaySignal forwards the payload untouched to the counterpart's
// connections. Nothing is queued when the counterpart is offline.
func (s *CallService) RelaySignal(ctx context.Context, conn domain.Connection, cmd domain.SignalCommand) ([]Delivery, error) {
	signal, err := domain.NewSignal(cmd.CallID, cmd.Kind, cmd.Payload, conn.UserID)
	if err != nil {
		return nil, err
	}

	call, err := s.guard.Authorize(ctx, signal.CallID, conn.UserID)
	if err != nil {
		return nil, err
	}

	if err := signalShape(signal); err != nil {
		log.Debug().Err(err).Str("call_id", call.ID.String()).Msg("Relaying signal with unexpected shape")
	}

	d, ok := fanOut(s.presence, signalEvent(signal.Kind), domain.NewSignalRelay(signal), call.Other(conn.UserID))
	if !ok {
		log.Debug().Str("call_id", call.ID.String()).Str("kind", string(signal.Kind)).Msg("Counterpart offline, dropping signal")
		return nil, nil
	}
	return []Delivery{d}, nil
}

func (s *CallService) callerProfile(ctx context.Context, callerID domain.UserID) domain.Profile {
	p, err := s.profiles.Profile(ctx, callerID)
	if err != nil {
		log.Debug().Err(err).Str("user_id", callerID.String()).Msg("Caller profile unavailable")
		return domain.Profile{ID: callerID}
	}
	return p
}

func signalEvent(kind domain.SignalKind) domain.EventName {
	switch kind {
	case domain.SignalOffer:
		return domain.EventWebRTCOffer
	case domain.SignalAnswer:
		return domain.EventWebRTCAnswer
	}
	return domain.EventWebRTCCandidate
}

// signalShape reports whether the payload looks like what browsers send for
// its kind. The relay forwards it either way.
func signalShape(signal domain.Signal) error {
	switch signal.Kind {
	case domain.SignalOffer, domain.SignalAnswer:
		var sd webrtc.SessionDescription
		if err := json.Unmarshal(signal.Payload, &sd); err != nil {
			return fmt.Errorf("malformed session description: %w", err)
		}
		if sd.SDP == "" {
			return errors.New("session description has no sdp")
		}
		if signal.Kind == domain.SignalOffer && sd.Type != webrtc.SDPTypeOffer {
			return fmt.Errorf("expected an offer, got %s", sd.Type)
		}
		if signal.Kind == domain.SignalAnswer && sd.Type != webrtc.SDPTypeAnswer && sd.Type != webrtc.SDPTypePranswer {
			return fmt.Errorf("expected an answer, got %s", sd.Type)
		}
	case domain.SignalICECandidate:
		var c webrtc.ICECandidateInit
		if err := json.Unmarshal(signal.Payload, &c); err != nil {
			return fmt.Errorf("malformed ice candidate: %w", err)
		}
	}
	return nil
}
