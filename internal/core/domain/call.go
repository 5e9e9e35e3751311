package domain

import (
	"fmt"
	"time"
)

type CallStatus string

const (
	CallInitiated CallStatus = "initiated"
	CallRinging   CallStatus = "ringing"
	CallMissed    CallStatus = "missed"
	CallAnswered  CallStatus = "answered"
	CallRejected  CallStatus = "rejected"
	CallCancelled CallStatus = "cancelled"
	CallEnded     CallStatus = "ended"
)

func (s CallStatus) Terminal() bool {
	switch s {
	case CallRejected, CallCancelled, CallEnded:
		return true
	}
	return false
}

// preAnswer is the region where the receiver can still pick up.
func (s CallStatus) preAnswer() bool {
	switch s {
	case CallInitiated, CallRinging, CallMissed:
		return true
	}
	return false
}

type Call struct {
	ID         CallID        `json:"id"`
	CallerID   UserID        `json:"callerId"`
	ReceiverID UserID        `json:"receiverId"`
	Status     CallStatus    `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	AnsweredAt *time.Time    `json:"answeredAt,omitempty"`
	EndedAt    *time.Time    `json:"endedAt,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
}

func NewCall(callerID, receiverID UserID, at time.Time) (*Call, error) {
	if receiverID == "" {
		return nil, fmt.Errorf("%w: receiver is required", ErrValidation)
	}
	if callerID == receiverID {
		return nil, fmt.Errorf("%w: cannot call yourself", ErrValidation)
	}
	return &Call{
		ID:         NewCallID(),
		CallerID:   callerID,
		ReceiverID: receiverID,
		Status:     CallInitiated,
		CreatedAt:  at,
	}, nil
}

func (c Call) IsParty(u UserID) bool {
	return u == c.CallerID || u == c.ReceiverID
}

// Other returns the counterpart of u. u must be a party.
func (c Call) Other(u UserID) UserID {
	if u == c.CallerID {
		return c.ReceiverID
	}
	return c.CallerID
}

// Advance applies a status change requested by one of the parties.
// Ending an unanswered call cancels it; ending an answered one records its duration.
func (c *Call) Advance(to CallStatus, by UserID, at time.Time) error {
	if !c.IsParty(by) {
		return fmt.Errorf("%w: not a party of call %s", ErrForbidden, c.ID)
	}
	if c.Status.Terminal() {
		return fmt.Errorf("%w: call is already %s", ErrInvalidTransition, c.Status)
	}

	switch to {
	case CallAnswered, CallRejected:
		if by != c.ReceiverID {
			return fmt.Errorf("%w: only the receiver can %s", ErrForbidden, verb(to))
		}
		if !c.Status.preAnswer() {
			return c.illegal(to)
		}
		c.Status = to
		if to == CallAnswered {
			c.AnsweredAt = &at
		} else {
			c.EndedAt = &at
		}
	case CallRinging:
		if c.Status != CallInitiated {
			return c.illegal(to)
		}
		c.Status = to
	case CallMissed:
		if c.Status != CallInitiated && c.Status != CallRinging {
			return c.illegal(to)
		}
		c.Status = to
	case CallEnded, CallCancelled:
		switch {
		case c.Status == CallAnswered && to == CallEnded:
			c.Status = CallEnded
			c.EndedAt = &at
			if c.AnsweredAt != nil {
				c.Duration = at.Sub(*c.AnsweredAt)
			}
		case c.Status.preAnswer():
			c.Status = CallCancelled
			c.EndedAt = &at
		default:
			return c.illegal(to)
		}
	default:
		return c.illegal(to)
	}
	return nil
}

func (c Call) illegal(to CallStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, to)
}

func verb(s CallStatus) string {
	if s == CallAnswered {
		return "answer"
	}
	return "reject"
}
