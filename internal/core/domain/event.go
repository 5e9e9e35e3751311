package domain

import (
	"encoding/json"
	"strings"
	"time"
)

type EventName string

// Inbound events.
const (
	EventMessageSend     EventName = "message:send"
	EventTypingStart     EventName = "typing:start"
	EventTypingStop      EventName = "typing:stop"
	EventMessageRead     EventName = "message:read"
	EventMessageEdit     EventName = "message:edit"
	EventMessageDelete   EventName = "message:delete"
	EventReactionAdd     EventName = "reaction:add"
	EventReactionRemove  EventName = "reaction:remove"
	EventCallInitiate    EventName = "call:initiate"
	EventCallAnswer      EventName = "call:answer"
	EventCallReject      EventName = "call:reject"
	EventCallEnd         EventName = "call:end"
	EventCallStatus      EventName = "call:status"
	EventWebRTCOffer     EventName = "webrtc:offer"
	EventWebRTCAnswer    EventName = "webrtc:answer"
	EventWebRTCCandidate EventName = "webrtc:ice-candidate"
)

// Outbound events.
const (
	EventMessageSent         EventName = "message:sent"
	EventMessageReceived     EventName = "message:received"
	EventTypingIndicator     EventName = "typing:indicator"
	EventReadReceipt         EventName = "message:read_receipt"
	EventReadConfirmed       EventName = "message:read:confirmed"
	EventMessageEdited       EventName = "message:edited"
	EventMessageDeleted      EventName = "message:deleted"
	EventReactionAdded       EventName = "reaction:added"
	EventReactionRemoved     EventName = "reaction:removed"
	EventCallInitiated       EventName = "call:initiated"
	EventCallIncoming        EventName = "call:incoming"
	EventCallAnswered        EventName = "call:answered"
	EventCallRejected        EventName = "call:rejected"
	EventCallEnded           EventName = "call:ended"
	EventCallStatusUpdated   EventName = "call:status:updated"
	EventCallAnswerConfirmed EventName = "call:answered:confirmed"
	EventCallRejectConfirmed EventName = "call:rejected:confirmed"
	EventCallEndConfirmed    EventName = "call:ended:confirmed"
	EventCallStatusConfirmed EventName = "call:status:confirmed"
	EventError               EventName = "error"
)

// Family is the prefix before the first colon, e.g. "call" for "call:answer".
func (n EventName) Family() string {
	family, _, found := strings.Cut(string(n), ":")
	if !found {
		return ""
	}
	return family
}

// ErrorEvent is the name of the error event for n's family.
func (n EventName) ErrorEvent() EventName {
	if f := n.Family(); f != "" {
		return EventName(f + ":error")
	}
	return EventError
}

type Event struct {
	Name    EventName
	Payload any
}

func NewEvent(name EventName, payload any) Event {
	return Event{Name: name, Payload: payload}
}

type ErrorPayload struct {
	Error string `json:"error"`
}

type TypingIndicator struct {
	ConversationID ConversationID `json:"conversationId"`
	UserID         UserID         `json:"userId"`
	IsTyping       bool           `json:"isTyping"`
}

type ReadReceipt struct {
	ConversationID ConversationID `json:"conversationId"`
	ReadBy         UserID         `json:"readBy"`
	MessageIDs     []MessageID    `json:"messageIds,omitempty"`
	Count          int            `json:"count"`
	ReadAt         time.Time      `json:"readAt"`
}

type ReadConfirmation struct {
	ConversationID ConversationID `json:"conversationId"`
	Count          int            `json:"count"`
}

type ReactionUpdate struct {
	MessageID      MessageID      `json:"messageId"`
	ConversationID ConversationID `json:"conversationId"`
	UserID         UserID         `json:"userId"`
	Emoji          string         `json:"emoji,omitempty"`
}

type CallUpdate struct {
	Call Call   `json:"call"`
	By   UserID `json:"by,omitempty"`
}

type IncomingCall struct {
	Call   Call    `json:"call"`
	Caller Profile `json:"caller"`
}

// SignalRelay is the shape forwarded to the counterpart: the payload sits
// under the key named after its kind.
type SignalRelay struct {
	CallID    CallID          `json:"callId"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
	From      UserID          `json:"from"`
}

func NewSignalRelay(s Signal) SignalRelay {
	r := SignalRelay{CallID: s.CallID, From: s.From}
	switch s.Kind {
	case SignalOffer:
		r.Offer = s.Payload
	case SignalAnswer:
		r.Answer = s.Payload
	case SignalICECandidate:
		r.Candidate = s.Payload
	}
	return r
}
