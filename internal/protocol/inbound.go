package protocol

import (
	"encoding/json"

	"github.com/pion/webrtc/v4"
)

type RegisterBot struct {
	BotID string `json:"botId"`
	Name  string `json:"name"`
}

type RegisterOperator struct {
	OperatorID string `json:"operatorId"`
	Name       string `json:"name"`
}

// Offer carries the sender-chosen target connection identifier plus the
// SDP, which is passed through untouched.
type Offer struct {
	TargetID string                    `json:"targetId"`
	Offer    webrtc.SessionDescription `json:"offer"`
	BotID    string                    `json:"botId,omitempty"`
}

type Answer struct {
	TargetID string                    `json:"targetId"`
	Answer   webrtc.SessionDescription `json:"answer"`
}

type Candidate struct {
	TargetID  string                  `json:"targetId"`
	Candidate webrtc.ICECandidateInit `json:"candidate"`
}

type RequestControl struct {
	BotID string `json:"botId"`
}

type ReleaseControl struct {
	BotID string `json:"botId"`
}

type MotorCommand struct {
	BotID   string          `json:"botId"`
	Command json.RawMessage `json:"command"`
}

type JoinViewer struct {
	BotID string `json:"botId"`
}
