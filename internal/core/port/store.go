//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
package port

import (
	"context"
	"time"

	"github.com/Wyydra/ya-relay/internal/core/domain"
)

// MessageStore owns conversations and messages. Every method enforces
// ownership and returns the canonical record.
type MessageStore interface {
	SendMessage(ctx context.Context, senderID, recipientID domain.UserID, content string, kind domain.MessageType) (domain.Message, error)
	MarkDelivered(ctx context.Context, messageID domain.MessageID, recipientID domain.UserID) error
	MarkRead(ctx context.Context, conversationID domain.ConversationID, readerID domain.UserID, messageIDs []domain.MessageID) (int, error)
	EditMessage(ctx context.Context, messageID domain.MessageID, requesterID domain.UserID, content string) (domain.Message, error)
	DeleteMessage(ctx context.Context, messageID domain.MessageID, requesterID domain.UserID) (domain.Message, error)
	AddReaction(ctx context.Context, messageID domain.MessageID, requesterID domain.UserID, emoji string) (domain.Message, error)
	RemoveReaction(ctx context.Context, messageID domain.MessageID, requesterID domain.UserID) (domain.Message, error)
	Conversation(ctx context.Context, conversationID domain.ConversationID, requesterID domain.UserID) (domain.Conversation, error)
}

// CallStore owns call records and applies domain.Call.Advance.
type CallStore interface {
	InitiateCall(ctx context.Context, callerID, receiverID domain.UserID) (domain.Call, error)
	TransitionCall(ctx context.Context, callID domain.CallID, status domain.CallStatus, requesterID domain.UserID) (domain.Call, error)
	EndCall(ctx context.Context, callID domain.CallID, requesterID domain.UserID) (domain.Call, error)
	GetCall(ctx context.Context, callID domain.CallID, requesterID domain.UserID) (domain.Call, error)
}

type ProfileStore interface {
	TouchLastActive(ctx context.Context, identity domain.Identity, at time.Time) error
	Profile(ctx context.Context, userID domain.UserID) (domain.Profile, error)
}

type Store interface {
	MessageStore
	CallStore
	ProfileStore
}
