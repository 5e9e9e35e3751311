package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type SignalKind string

const (
	SignalOffer        SignalKind = "offer"
	SignalAnswer       SignalKind = "answer"
	SignalICECandidate SignalKind = "ice-candidate"
)

func (k SignalKind) Valid() bool {
	switch k {
	case SignalOffer, SignalAnswer, SignalICECandidate:
		return true
	}
	return false
}

// Signal is an SDP or ICE payload relayed between the two parties of a call.
// The payload is opaque to the relay and forwarded byte for byte.
type Signal struct {
	CallID  CallID
	Kind    SignalKind
	Payload json.RawMessage
	From    UserID
}

func NewSignal(callID CallID, kind SignalKind, payload json.RawMessage, from UserID) (Signal, error) {
	if !kind.Valid() {
		return Signal{}, fmt.Errorf("%w: unknown signal kind %q", ErrValidation, kind)
	}
	if trimmed := bytes.TrimSpace(payload); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Signal{}, fmt.Errorf("%w: empty %s payload", ErrValidation, kind)
	}
	return Signal{
		CallID:  callID,
		Kind:    kind,
		Payload: payload,
		From:    from,
	}, nil
}
