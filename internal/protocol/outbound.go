package protocol

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
)

// BotInfo is the read-only bot list entry (no transport fields).
type BotInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	HasController bool   `json:"hasController"`
}

// BotList is sent as bot_list to a single operator and as
// bot_list_update to everyone.
type BotList struct {
	Type string    `json:"type"`
	Bots []BotInfo `json:"bots"`
}

type ControlGranted struct {
	Type  string `json:"type"`
	BotID string `json:"botId"`
}

type ControlDenied struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type ControlReleased struct {
	Type  string `json:"type"`
	BotID string `json:"botId"`
}

type ControllerConnected struct {
	Type         string `json:"type"`
	ControllerID string `json:"controllerId"`
}

type ControllerDisconnected struct {
	Type string `json:"type"`
}

type BotDisconnected struct {
	Type  string `json:"type"`
	BotID string `json:"botId"`
}

type JoinedAsViewer struct {
	Type  string `json:"type"`
	BotID string `json:"botId"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Pong struct {
	Type string `json:"type"`
}

// Relayed variants: the original fields annotated with the sender's
// connection identifier.

type OfferRelay struct {
	Type  string                    `json:"type"`
	From  string                    `json:"from"`
	Offer webrtc.SessionDescription `json:"offer"`
	BotID string                    `json:"botId,omitempty"`
}

type AnswerRelay struct {
	Type   string                    `json:"type"`
	From   string                    `json:"from"`
	Answer webrtc.SessionDescription `json:"answer"`
}

type CandidateRelay struct {
	Type      string                  `json:"type"`
	From      string                  `json:"from"`
	Candidate webrtc.ICECandidateInit `json:"candidate"`
}

type MotorCommandRelay struct {
	Type    string          `json:"type"`
	From    string          `json:"from"`
	Command json.RawMessage `json:"command"`
}
