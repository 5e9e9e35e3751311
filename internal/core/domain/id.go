package domain

import (
	"github.com/google/uuid"
)

// UserID is the opaque identity key handed out by the identity verifier.
type UserID string

type ConnectionID string
type ConversationID string
type MessageID string
type CallID string

func NewConnectionID() ConnectionID {
	return ConnectionID(uuid.New().String())
}

func NewConversationID() ConversationID {
	return ConversationID(uuid.New().String())
}

func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

func NewCallID() CallID {
	return CallID(uuid.New().String())
}

func (id UserID) String() string {
	return string(id)
}

func (id ConnectionID) String() string {
	return string(id)
}

func (id ConversationID) String() string {
	return string(id)
}

func (id MessageID) String() string {
	return string(id)
}

func (id CallID) String() string {
	return string(id)
}
