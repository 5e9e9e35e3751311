package ws

import (
	"encoding/json"
	"fmt"

	"github.com/Wyydra/ya-relay/internal/core/domain"
)

// Frame is the envelope of every message on the wire, in both directions.
type Frame struct {
	Type    domain.EventName `json:"type"`
	Payload json.RawMessage  `json:"payload,omitempty"`
}

func EncodeEvent(event domain.Event) ([]byte, error) {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", event.Name, err)
	}
	return json.Marshal(Frame{Type: event.Name, Payload: payload})
}

func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("%w: malformed frame", domain.ErrValidation)
	}
	if f.Type == "" {
		return Frame{}, fmt.Errorf("%w: frame has no type", domain.ErrValidation)
	}
	return f, nil
}
