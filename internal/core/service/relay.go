package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/core/port"
	"github.com/rs/zerolog/log"
)

// Relay turns chat intents into store calls and fans the results out to the
// live connections of both participants.
type Relay struct {
	store    port.MessageStore
	presence port.Presence
	now      func() time.Time
}

func NewRelay(store port.MessageStore, presence port.Presence) *Relay {
	return &Relay{
		store:    store,
		presence: presence,
		now:      time.Now,
	}
}

func (r *Relay) Send(ctx context.Context, conn domain.Connection, cmd domain.SendMessageCommand) ([]Delivery, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", domain.ErrValidation)
	}
	if cmd.RecipientID == "" {
		return nil, fmt.Errorf("%w: recipient is required", domain.ErrValidation)
	}
	if cmd.RecipientID == conn.UserID {
		return nil, fmt.Errorf("%w: cannot message yourself", domain.ErrValidation)
	}
	if cmd.Type == "" {
		cmd.Type = domain.MessageText
	}
	if !cmd.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown message type %q", domain.ErrValidation, cmd.Type)
	}

	msg, err := r.store.SendMessage(ctx, conn.UserID, cmd.RecipientID, cmd.Content, cmd.Type)
	if err != nil {
		return nil, err
	}

	var received []Delivery
	if d, online := fanOut(r.presence, domain.EventMessageReceived, nil, msg.RecipientID); online {
		if err := r.store.MarkDelivered(ctx, msg.ID, msg.RecipientID); err != nil {
			log.Warn().Err(err).Str("message_id", msg.ID.String()).Msg("Failed to mark message delivered")
		} else {
			at := r.now()
			msg.Status = domain.MessageDelivered
			msg.DeliveredAt = &at
		}
		d.Event.Payload = msg
		received = append(received, d)
	}

	sent := fanOutWith(r.presence, conn, domain.EventMessageSent, msg, conn.UserID)
	return append([]Delivery{sent}, received...), nil
}

// Typing is never persisted and never acknowledged.
func (r *Relay) Typing(ctx context.Context, conn domain.Connection, cmd domain.TypingCommand) ([]Delivery, error) {
	if cmd.ConversationID == "" || cmd.RecipientID == "" {
		return nil, fmt.Errorf("%w: conversation and recipient are required", domain.ErrValidation)
	}
	conv, err := r.participant(ctx, cmd.ConversationID, conn.UserID)
	if err != nil {
		return nil, err
	}
	if conv.Other(conn.UserID) != cmd.RecipientID {
		return nil, fmt.Errorf("%w: recipient is not part of this conversation", domain.ErrForbidden)
	}

	indicator := domain.TypingIndicator{
		ConversationID: conv.ID,
		UserID:         conn.UserID,
		IsTyping:       cmd.IsTyping,
	}
	if d, ok := fanOut(r.presence, domain.EventTypingIndicator, indicator, cmd.RecipientID); ok {
		return []Delivery{d}, nil
	}
	return nil, nil
}

// MarkRead notifies the other participant. The reader only gets a count back.
func (r *Relay) MarkRead(ctx context.Context, conn domain.Connection, cmd domain.MarkReadCommand) ([]Delivery, error) {
	if cmd.ConversationID == "" {
		return nil, fmt.Errorf("%w: conversation is required", domain.ErrValidation)
	}
	conv, err := r.participant(ctx, cmd.ConversationID, conn.UserID)
	if err != nil {
		return nil, err
	}

	count, err := r.store.MarkRead(ctx, conv.ID, conn.UserID, cmd.MessageIDs)
	if err != nil {
		return nil, err
	}

	out := []Delivery{reply(conn, domain.EventReadConfirmed, domain.ReadConfirmation{
		ConversationID: conv.ID,
		Count:          count,
	})}
	receipt := domain.ReadReceipt{
		ConversationID: conv.ID,
		ReadBy:         conn.UserID,
		MessageIDs:     cmd.MessageIDs,
		Count:          count,
		ReadAt:         r.now(),
	}
	if d, ok := fanOut(r.presence, domain.EventReadReceipt, receipt, conv.Other(conn.UserID)); ok {
		out = append(out, d)
	}
	return out, nil
}

func (r *Relay) Edit(ctx context.Context, conn domain.Connection, cmd domain.EditMessageCommand) ([]Delivery, error) {
	if cmd.MessageID == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", domain.ErrValidation)
	}

	msg, err := r.store.EditMessage(ctx, cmd.MessageID, conn.UserID, cmd.Content)
	if err != nil {
		return nil, err
	}
	return []Delivery{fanOutWith(r.presence, conn, domain.EventMessageEdited, msg, msg.Participants()...)}, nil
}

func (r *Relay) Delete(ctx context.Context, conn domain.Connection, cmd domain.DeleteMessageCommand) ([]Delivery, error) {
	if cmd.MessageID == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	msg, err := r.store.DeleteMessage(ctx, cmd.MessageID, conn.UserID)
	if err != nil {
		return nil, err
	}
	return []Delivery{fanOutWith(r.presence, conn, domain.EventMessageDeleted, msg, msg.Participants()...)}, nil
}

func (r *Relay) AddReaction(ctx context.Context, conn domain.Connection, cmd domain.ReactionCommand) ([]Delivery, error) {
	if cmd.MessageID == "" || strings.TrimSpace(cmd.Emoji) == "" {
		return nil, fmt.Errorf("%w: message and emoji are required", domain.ErrValidation)
	}

	msg, err := r.store.AddReaction(ctx, cmd.MessageID, conn.UserID, cmd.Emoji)
	if err != nil {
		return nil, err
	}
	update := domain.ReactionUpdate{
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		UserID:         conn.UserID,
		Emoji:          cmd.Emoji,
	}
	return []Delivery{fanOutWith(r.presence, conn, domain.EventReactionAdded, update, msg.Participants()...)}, nil
}

func (r *Relay) RemoveReaction(ctx context.Context, conn domain.Connection, cmd domain.ReactionCommand) ([]Delivery, error) {
	if cmd.MessageID == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	msg, err := r.store.RemoveReaction(ctx, cmd.MessageID, conn.UserID)
	if err != nil {
		return nil, err
	}
	update := domain.ReactionUpdate{
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		UserID:         conn.UserID,
	}
	return []Delivery{fanOutWith(r.presence, conn, domain.EventReactionRemoved, update, msg.Participants()...)}, nil
}

func (r *Relay) participant(ctx context.Context, id domain.ConversationID, userID domain.UserID) (domain.Conversation, error) {
	conv, err := r.store.Conversation(ctx, id, userID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if !conv.IsParticipant(userID) {
		return domain.Conversation{}, fmt.Errorf("%w: not a participant of this conversation", domain.ErrForbidden)
	}
	return conv, nil
}
