package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

func (ctl *SignalWSController) handleRegisterBot(
	cid domain.ConnID,
	conn *WsSignalConn,
	data []byte,
) {
	var p protocol.RegisterBot
	if err := json.Unmarshal(data, &p); err != nil || p.BotID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad register_bot payload")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}
	ctl.Authority.RegisterBot(cid, p)
}

func (ctl *SignalWSController) handleRegisterOperator(
	cid domain.ConnID,
	conn *WsSignalConn,
	data []byte,
) {
	var p protocol.RegisterOperator
	if err := json.Unmarshal(data, &p); err != nil || p.OperatorID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad register_operator payload")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}
	ctl.Authority.RegisterOperator(cid, p)
}
