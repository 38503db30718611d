package websocket

import (
	"encoding/json"
	"fmt"
)

const (
	ActionConnected = "connected"
	ActionState     = "game:state"
)

// Message is the envelope of everything sent to a watcher.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ConnectedPayload struct {
	WatcherID string `json:"watcher_id"`
}

func newMessage(action string, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal %s payload: %w", action, err)
	}

	return Message{Action: action, Payload: raw}, nil
}
