package domain

import (
	"fmt"
	"strings"
	"time"
)

// Tombstone replaces the content of a soft-deleted message.
const Tombstone = "This message was deleted"

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageFile  MessageType = "file"
	MessageAudio MessageType = "audio"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageText, MessageImage, MessageFile, MessageAudio:
		return true
	}
	return false
}

type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

type Message struct {
	ID             MessageID         `json:"id"`
	ConversationID ConversationID    `json:"conversationId"`
	SenderID       UserID            `json:"senderId"`
	RecipientID    UserID            `json:"recipientId"`
	Content        string            `json:"content"`
	Type           MessageType       `json:"messageType"`
	Status         MessageStatus     `json:"status"`
	Reactions      map[UserID]string `json:"reactions,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	DeliveredAt    *time.Time        `json:"deliveredAt,omitempty"`
	ReadAt         *time.Time        `json:"readAt,omitempty"`
	EditedAt       *time.Time        `json:"editedAt,omitempty"`
	DeletedAt      *time.Time        `json:"deletedAt,omitempty"`
}

func NewMessage(conversationID ConversationID, senderID, recipientID UserID, content string, kind MessageType, at time.Time) (*Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", ErrValidation)
	}
	if kind == "" {
		kind = MessageText
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown message type %q", ErrValidation, kind)
	}
	return &Message{
		ID:             NewMessageID(),
		ConversationID: conversationID,
		SenderID:       senderID,
		RecipientID:    recipientID,
		Content:        content,
		Type:           kind,
		Status:         MessageSent,
		CreatedAt:      at,
	}, nil
}

func (m Message) Deleted() bool {
	return m.DeletedAt != nil
}

func (m Message) IsParticipant(u UserID) bool {
	return u == m.SenderID || u == m.RecipientID
}

// Participants returns sender then recipient.
func (m Message) Participants() []UserID {
	return []UserID{m.SenderID, m.RecipientID}
}

func (m *Message) Edit(requester UserID, content string, at time.Time) error {
	if requester != m.SenderID {
		return fmt.Errorf("%w: only the sender can edit a message", ErrForbidden)
	}
	if m.Deleted() {
		return ErrMessageDeleted
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: message content cannot be empty", ErrValidation)
	}
	m.Content = content
	m.EditedAt = &at
	return nil
}

// SoftDelete replaces the content with the tombstone. Deleting twice is a no-op.
func (m *Message) SoftDelete(requester UserID, at time.Time) error {
	if !m.IsParticipant(requester) {
		return fmt.Errorf("%w: not a participant of this conversation", ErrForbidden)
	}
	if m.Deleted() {
		return nil
	}
	m.Content = Tombstone
	m.Reactions = nil
	m.DeletedAt = &at
	return nil
}

// React upserts the requester's reaction. An empty emoji removes it.
func (m *Message) React(requester UserID, emoji string) error {
	if !m.IsParticipant(requester) {
		return fmt.Errorf("%w: not a participant of this conversation", ErrForbidden)
	}
	if m.Deleted() {
		return ErrMessageDeleted
	}
	if emoji == "" {
		delete(m.Reactions, requester)
		return nil
	}
	if m.Reactions == nil {
		m.Reactions = make(map[UserID]string)
	}
	m.Reactions[requester] = emoji
	return nil
}

type Conversation struct {
	ID           ConversationID `json:"id"`
	Participants [2]UserID      `json:"participants"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (c Conversation) IsParticipant(u UserID) bool {
	return c.Participants[0] == u || c.Participants[1] == u
}

// Other returns the counterpart of u. u must be a participant.
func (c Conversation) Other(u UserID) UserID {
	if c.Participants[0] == u {
		return c.Participants[1]
	}
	return c.Participants[0]
}

type Profile struct {
	ID           UserID    `json:"id"`
	DisplayName  string    `json:"displayName,omitempty"`
	LastActiveAt time.Time `json:"lastActiveAt,omitempty"`
}
