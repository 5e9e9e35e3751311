package domain

import "encoding/json"

type SendMessageCommand struct {
	RecipientID UserID
	Content     string
	Type        MessageType
}

type TypingCommand struct {
	ConversationID ConversationID
	RecipientID    UserID
	IsTyping       bool
}

type MarkReadCommand struct {
	ConversationID ConversationID
	// Empty means every unread message addressed to the reader.
	MessageIDs []MessageID
}

type EditMessageCommand struct {
	MessageID MessageID
	Content   string
}

type DeleteMessageCommand struct {
	MessageID MessageID
}

type ReactionCommand struct {
	MessageID MessageID
	Emoji     string
}

type InitiateCallCommand struct {
	ReceiverID UserID
}

type CallTransitionCommand struct {
	CallID CallID
	Status CallStatus
}

type SignalCommand struct {
	CallID  CallID
	Kind    SignalKind
	Payload json.RawMessage
}
