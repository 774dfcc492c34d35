package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

func (ctl *SignalWSController) handleJoinViewer(
	cid domain.ConnID,
	conn *WsSignalConn,
	data []byte,
) {
	var p protocol.JoinViewer
	if err := json.Unmarshal(data, &p); err != nil || p.BotID == "" {
		log.Error().Err(err).Str("module", "signal").Msg("bad join_viewer payload")
		ctl.sendJSON(conn, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}
	ctl.Authority.JoinViewer(cid, p.BotID)
}
