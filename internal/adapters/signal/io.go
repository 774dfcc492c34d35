package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

func (ctl *SignalWSController) writePump(ctx context.Context, c *WsSignalConn) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(ctx context.Context, cancel context.CancelFunc, cid domain.ConnID, c *WsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("conn", string(cid)).Msg("readPump closing")
		cancel()
		ctl.Authority.Disconnect(cid)
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("conn", string(cid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Info().Err(err).Str("module", "signal").Str("conn", string(cid)).Msg("readPump read error")
				return
			}
			ctl.handleSignal(cid, c, data)
		}
	}
}

func (ctl *SignalWSController) handleSignal(cid domain.ConnID, c *WsSignalConn, data []byte) {
	var env protocol.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendJSON(c, protocol.ErrorEvent{Type: protocol.EvError, Message: protocol.MsgBadPayload})
		return
	}

	switch env.Type {
	case protocol.EvRegisterBot:
		ctl.handleRegisterBot(cid, c, data)
	case protocol.EvRegisterOperator:
		ctl.handleRegisterOperator(cid, c, data)
	case protocol.EvRequestControl:
		ctl.handleRequestControl(cid, c, data)
	case protocol.EvReleaseControl:
		ctl.handleReleaseControl(cid, c, data)
	case protocol.EvMotorCommand:
		ctl.handleMotorCommand(cid, c, data)
	case protocol.EvWebRTCOffer:
		ctl.handleOffer(cid, c, data)
	case protocol.EvWebRTCAnswer:
		ctl.handleAnswer(cid, c, data)
	case protocol.EvICECandidate:
		ctl.handleCandidate(cid, c, data)
	case protocol.EvJoinViewer:
		ctl.handleJoinViewer(cid, c, data)
	case protocol.EvPing:
		ctl.Authority.Ping(cid)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown signal")
	}
}

func (ctl *SignalWSController) sendJSON(c *WsSignalConn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}
