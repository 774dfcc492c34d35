// Package protocol defines the closed set of signaling events. Every
// message on the wire is a JSON object with a "type" field; the rest of
// the fields belong to the variant named by it.
package protocol

// Inbound event names.
const (
	EvRegisterBot      = "register_bot"
	EvRegisterOperator = "register_operator"
	EvWebRTCOffer      = "webrtc_offer"
	EvWebRTCAnswer     = "webrtc_answer"
	EvICECandidate     = "ice_candidate"
	EvRequestControl   = "request_control"
	EvReleaseControl   = "release_control"
	EvMotorCommand     = "motor_command"
	EvJoinViewer       = "join_viewer"
	EvPing             = "ping"
)

// Outbound event names.
const (
	EvBotList                = "bot_list"
	EvBotListUpdate          = "bot_list_update"
	EvControlGranted         = "control_granted"
	EvControlDenied          = "control_denied"
	EvControlReleased        = "control_released"
	EvControllerConnected    = "controller_connected"
	EvControllerDisconnected = "controller_disconnected"
	EvBotDisconnected        = "bot_disconnected"
	EvJoinedAsViewer         = "joined_as_viewer"
	EvError                  = "error"
	EvPong                   = "pong"
)

// Denial reasons and error messages.
const (
	ReasonNotFound          = "not found"
	ReasonAlreadyControlled = "already controlled"
	MsgNoControlPermission  = "no control permission"
	MsgBadPayload           = "bad payload"
	MsgRateLimited          = "rate limited"
)

// Envelope is the minimal decode used to classify an inbound frame.
type Envelope struct {
	Type string `json:"type"`
}
