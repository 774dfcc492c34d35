package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

// The SDP and ICE payloads are relayed as-is between peers; the server
// never opens a peer connection of its own.

func (ctl *SignalWSController) handleOffer(
	cid domain.ConnID,
	conn *WsSignalConn,
	data []byte,
) {
	var p protocol.Offer
	if err := json.Unmarshal(data, &p); err != nil || p.TargetID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad offer payload")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}
	ctl.Authority.RelayOffer(cid, p)
}

func (ctl *SignalWSController) handleAnswer(
	cid domain.ConnID,
	conn *WsSignalConn,
	data []byte,
) {
	var p protocol.Answer
	if err := json.Unmarshal(data, &p); err != nil || p.TargetID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad answer payload")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}
	ctl.Authority.RelayAnswer(cid, p)
}

func (ctl *SignalWSController) handleCandidate(
	cid domain.ConnID,
	conn *WsSignalConn,
	data []byte,
) {
	var p protocol.Candidate
	if err := json.Unmarshal(data, &p); err != nil || p.TargetID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad candidate payload")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}
	ctl.Authority.RelayCandidate(cid, p)
}
