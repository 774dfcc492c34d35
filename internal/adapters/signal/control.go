package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

func (ctl *SignalWSController) handleRequestControl(
	cid domain.ConnID,
	conn *WsSignalConn,
	data []byte,
) {
	if !ctl.limiter.Allow(cid) {
		log.Warn().Str("module", "signal").Str("conn", string(cid)).Msg("request_control rate limited")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgRateLimited})
		return
	}

	var p protocol.RequestControl
	if err := json.Unmarshal(data, &p); err != nil || p.BotID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad request_control payload")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}
	ctl.Authority.RequestControl(cid, p.BotID)
}

func (ctl *SignalWSController) handleReleaseControl(
	cid domain.ConnID,
	conn *WsSignalConn,
	data []byte,
) {
	var p protocol.ReleaseControl
	if err := json.Unmarshal(data, &p); err != nil || p.BotID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad release_control payload")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}
	ctl.Authority.ReleaseControl(cid, p.BotID)
}

func (ctl *SignalWSController) handleMotorCommand(
	cid domain.ConnID,
	conn *WsSignalConn,
	data []byte,
) {
	var p protocol.MotorCommand
	if err := json.Unmarshal(data, &p); err != nil || p.BotID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad motor_command payload")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}
	ctl.Authority.MotorCommand(cid, p)
}
