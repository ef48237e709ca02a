package ws

import (
	"encoding/json"
)

// MessageType defines the type of a websocket message
type MessageType string

// Client message types
const (
	MsgJoin       MessageType = "join"
	MsgDeal       MessageType = "deal"
	MsgStart      MessageType = "start"
	MsgReveal     MessageType = "reveal"
	MsgCloseRound MessageType = "close_round"
	MsgCall       MessageType = "call"
	MsgRespond    MessageType = "respond"
	MsgResolve    MessageType = "resolve"
	MsgSeen       MessageType = "seen"
)

// Server message types
const (
	MsgSnapshot MessageType = "snapshot"
	MsgError    MessageType = "error"
)

// Envelope is the websocket message format
type Envelope struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// JoinPayload registers the connecting player in the room
type JoinPayload struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// HostPayload identifies the host for host-only actions
type HostPayload struct {
	UID string `json:"uid"`
}

// CallPayload creates a drink assignment
type CallPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RespondPayload answers a waiting call
type RespondPayload struct {
	UID           string `json:"uid"`
	TransactionID string `json:"transaction_id"`
	Decision      string `json:"decision"`
}

// ResolvePayload settles a disputed call with a revealed card
type ResolvePayload struct {
	UID           string `json:"uid"`
	TransactionID string `json:"transaction_id"`
	CardID        int    `json:"card_id"`
}

// SeenPayload marks a hand card as viewed
type SeenPayload struct {
	UID    string `json:"uid"`
	CardID int    `json:"card_id"`
}

// ErrorPayload reports a rejected action back to the sender
type ErrorPayload struct {
	Message string `json:"message"`
}
