package http

import (
	"encoding/json"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/samber/lo"
)

type sendMessageDTO struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Content     string `json:"content" validate:"required"`
	MessageType string `json:"messageType" validate:"omitempty,oneof=text image file audio"`
}

func (d sendMessageDTO) command() domain.SendMessageCommand {
	return domain.SendMessageCommand{
		RecipientID: domain.UserID(d.RecipientID),
		Content:     d.Content,
		Type:        domain.MessageType(d.MessageType),
	}
}

type typingDTO struct {
	ConversationID string `json:"conversationId" validate:"required"`
	RecipientID    string `json:"recipientId" validate:"required"`
}

func (d typingDTO) command(isTyping bool) domain.TypingCommand {
	return domain.TypingCommand{
		ConversationID: domain.ConversationID(d.ConversationID),
		RecipientID:    domain.UserID(d.RecipientID),
		IsTyping:       isTyping,
	}
}

type markReadDTO struct {
	ConversationID string   `json:"conversationId" validate:"required"`
	MessageIDs     []string `json:"messageIds" validate:"omitempty,dive,required"`
}

func (d markReadDTO) command() domain.MarkReadCommand {
	return domain.MarkReadCommand{
		ConversationID: domain.ConversationID(d.ConversationID),
		MessageIDs: lo.Map(d.MessageIDs, func(id string, _ int) domain.MessageID {
			return domain.MessageID(id)
		}),
	}
}

type editMessageDTO struct {
	MessageID string `json:"messageId" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

type messageRefDTO struct {
	MessageID string `json:"messageId" validate:"required"`
}

type reactionDTO struct {
	MessageID string `json:"messageId" validate:"required"`
	Emoji     string `json:"emoji" validate:"required,max=32"`
}

type initiateCallDTO struct {
	ReceiverID string `json:"receiverId" validate:"required"`
}

type callRefDTO struct {
	CallID string `json:"callId" validate:"required"`
}

type callStatusDTO struct {
	CallID string `json:"callId" validate:"required"`
	Status string `json:"status" validate:"required,oneof=ringing missed"`
}

type offerDTO struct {
	CallID string          `json:"callId" validate:"required"`
	Offer  json.RawMessage `json:"offer" validate:"required"`
}

type answerDTO struct {
	CallID string          `json:"callId" validate:"required"`
	Answer json.RawMessage `json:"answer" validate:"required"`
}

type candidateDTO struct {
	CallID    string          `json:"callId" validate:"required"`
	Candidate json.RawMessage `json:"candidate" validate:"required"`
}
