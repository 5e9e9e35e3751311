package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Wyydra/ya-relay/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/core/service"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type handlerFunc func(ctx context.Context, conn domain.Connection, payload json.RawMessage) ([]service.Delivery, error)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// handle decodes and validates the payload once for every event.
func handle[T any](fn func(ctx context.Context, conn domain.Connection, in T) ([]service.Delivery, error)) handlerFunc {
	return func(ctx context.Context, conn domain.Connection, payload json.RawMessage) ([]service.Delivery, error) {
		var in T
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &in); err != nil {
				return nil, fmt.Errorf("%w: malformed payload", domain.ErrValidation)
			}
		}
		if err := validate.Struct(in); err != nil {
			return nil, validationError(err)
		}
		return fn(ctx, conn, in)
	}
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, ", "))
}

func (h *Handler) newRoutes() map[string]handlerFunc {
	typing := func(isTyping bool) handlerFunc {
		return handle(func(ctx context.Context, conn domain.Connection, in typingDTO) ([]service.Delivery, error) {
			return h.Relay.Typing(ctx, conn, in.command(isTyping))
		})
	}
	signal := func(kind domain.SignalKind, callID string, payload json.RawMessage) domain.SignalCommand {
		return domain.SignalCommand{CallID: domain.CallID(callID), Kind: kind, Payload: payload}
	}

	return map[string]handlerFunc{
		string(domain.EventMessageSend): handle(func(ctx context.Context, conn domain.Connection, in sendMessageDTO) ([]service.Delivery, error) {
			return h.Relay.Send(ctx, conn, in.command())
		}),
		string(domain.EventTypingStart): typing(true),
		string(domain.EventTypingStop):  typing(false),
		string(domain.EventMessageRead): handle(func(ctx context.Context, conn domain.Connection, in markReadDTO) ([]service.Delivery, error) {
			return h.Relay.MarkRead(ctx, conn, in.command())
		}),
		string(domain.EventMessageEdit): handle(func(ctx context.Context, conn domain.Connection, in editMessageDTO) ([]service.Delivery, error) {
			return h.Relay.Edit(ctx, conn, domain.EditMessageCommand{MessageID: domain.MessageID(in.MessageID), Content: in.Content})
		}),
		string(domain.EventMessageDelete): handle(func(ctx context.Context, conn domain.Connection, in messageRefDTO) ([]service.Delivery, error) {
			return h.Relay.Delete(ctx, conn, domain.DeleteMessageCommand{MessageID: domain.MessageID(in.MessageID)})
		}),
		string(domain.EventReactionAdd): handle(func(ctx context.Context, conn domain.Connection, in reactionDTO) ([]service.Delivery, error) {
			return h.Relay.AddReaction(ctx, conn, domain.ReactionCommand{MessageID: domain.MessageID(in.MessageID), Emoji: in.Emoji})
		}),
		string(domain.EventReactionRemove): handle(func(ctx context.Context, conn domain.Connection, in messageRefDTO) ([]service.Delivery, error) {
			return h.Relay.RemoveReaction(ctx, conn, domain.ReactionCommand{MessageID: domain.MessageID(in.MessageID)})
		}),
		string(domain.EventCallInitiate): handle(func(ctx context.Context, conn domain.Connection, in initiateCallDTO) ([]service.Delivery, error) {
			return h.Calls.Initiate(ctx, conn, domain.InitiateCallCommand{ReceiverID: domain.UserID(in.ReceiverID)})
		}),
		string(domain.EventCallAnswer): handle(func(ctx context.Context, conn domain.Connection, in callRefDTO) ([]service.Delivery, error) {
			return h.Calls.Answer(ctx, conn, domain.CallID(in.CallID))
		}),
		string(domain.EventCallReject): handle(func(ctx context.Context, conn domain.Connection, in callRefDTO) ([]service.Delivery, error) {
			return h.Calls.Reject(ctx, conn, domain.CallID(in.CallID))
		}),
		string(domain.EventCallEnd): handle(func(ctx context.Context, conn domain.Connection, in callRefDTO) ([]service.Delivery, error) {
			return h.Calls.End(ctx, conn, domain.CallID(in.CallID))
		}),
		string(domain.EventCallStatus): handle(func(ctx context.Context, conn domain.Connection, in callStatusDTO) ([]service.Delivery, error) {
			return h.Calls.UpdateStatus(ctx, conn, domain.CallTransitionCommand{CallID: domain.CallID(in.CallID), Status: domain.CallStatus(in.Status)})
		}),
		string(domain.EventWebRTCOffer): handle(func(ctx context.Context, conn domain.Connection, in offerDTO) ([]service.Delivery, error) {
			return h.Calls.RelaySignal(ctx, conn, signal(domain.SignalOffer, in.CallID, in.Offer))
		}),
		string(domain.EventWebRTCAnswer): handle(func(ctx context.Context, conn domain.Connection, in answerDTO) ([]service.Delivery, error) {
			return h.Calls.RelaySignal(ctx, conn, signal(domain.SignalAnswer, in.CallID, in.Answer))
		}),
		string(domain.EventWebRTCCandidate): handle(func(ctx context.Context, conn domain.Connection, in candidateDTO) ([]service.Delivery, error) {
			return h.Calls.RelaySignal(ctx, conn, signal(domain.SignalICECandidate, in.CallID, in.Candidate))
		}),
	}
}

// dispatch runs one inbound frame. Failures only ever reach the requesting
// connection, as an error event of the frame's family.
func (h *Handler) dispatch(ctx context.Context, conn domain.Connection, frame ws.Frame) {
	start := time.Now()
	fn, known := h.routes[string(frame.Type)]

	var (
		deliveries []service.Delivery
		err        error
	)
	if known {
		deliveries, err = h.invoke(ctx, fn, conn, frame)
	} else {
		err = fmt.Errorf("unknown event %q", frame.Type)
	}

	label := string(frame.Type)
	if !known {
		label = "unknown"
	}
	h.Metrics.ObserveEvent(label, outcome(err), time.Since(start))

	if err != nil {
		errEvent := domain.EventError
		if known {
			errEvent = frame.Type.ErrorEvent()
		}
		log.Debug().Err(err).
			Str("connection_id", conn.ID.String()).
			Str("event", string(frame.Type)).
			Msg("Event failed")
		deliveries = []service.Delivery{{
			To:    []domain.ConnectionID{conn.ID},
			Event: domain.NewEvent(errEvent, domain.ErrorPayload{Error: err.Error()}),
		}}
	}
	h.deliver(ctx, deliveries)
}

func (h *Handler) invoke(ctx context.Context, fn handlerFunc, conn domain.Connection, frame ws.Frame) (out []service.Delivery, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("connection_id", conn.ID.String()).
				Str("event", string(frame.Type)).
				Msg("Recovered from panic in event handler")
			out, err = nil, errors.New("internal error")
		}
	}()
	return fn(ctx, conn, frame.Payload)
}

// deliver writes each delivery to its connections. A connection that is gone
// by now is skipped.
func (h *Handler) deliver(ctx context.Context, deliveries []service.Delivery) {
	for _, d := range deliveries {
		for _, id := range d.To {
			if err := h.Hub.Send(ctx, id, d.Event); err != nil {
				log.Debug().Err(err).Str("event", string(d.Event.Name)).Msg("Delivery skipped")
			}
		}
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrMessageDeleted):
		return "message_deleted"
	case errors.Is(err, domain.ErrCallBusy):
		return "busy"
	}
	return "error"
}
