package app

import (
	"github.com/rs/zerolog/log"

	"github.com/okatenko/teleop/internal/domain"
	"github.com/okatenko/teleop/internal/protocol"
)

// RequestControl grants exclusive control of a bot to the caller.
// Arbitration is strict first-come, exclusive-hold: no queueing, no
// priorities. A re-request from the current holder is re-granted.
func (a *Authority) RequestControl(id domain.ConnID, botID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.bots[domain.BotID(botID)]
	if !ok {
		a.emit(id, protocol.ControlDenied{Type: protocol.EvControlDenied, Reason: protocol.ReasonNotFound})
		return
	}
	if b.Controller != "" && b.Controller != id {
		log.Info().Str("module", "app.control").Str("conn", string(id)).Str("bot", botID).Str("holder", string(b.Controller)).Msg("control denied")
		a.emit(id, protocol.ControlDenied{Type: protocol.EvControlDenied, Reason: protocol.ReasonAlreadyControlled})
		return
	}

	b.Controller = id
	if s, ok := a.sessions[id]; ok {
		s.Controls = b.ID
		if s.Operator != "" {
			if op, ok := a.operators[s.Operator]; ok {
				op.ControllingBot = b.ID
			}
		}
	}
	log.Info().Str("module", "app.control").Str("conn", string(id)).Str("bot", botID).Msg("control granted")

	a.emit(id, protocol.ControlGranted{Type: protocol.EvControlGranted, BotID: botID})
	a.emit(b.Conn, protocol.ControllerConnected{Type: protocol.EvControllerConnected, ControllerID: string(id)})
}

// ReleaseControl returns a bot to the unowned state. Only the current
// holder may release; anything else is silently ignored.
func (a *Authority) ReleaseControl(id domain.ConnID, botID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.bots[domain.BotID(botID)]
	if !ok || b.Controller != id {
		return
	}

	a.clearControllerLocked(b)
	log.Info().Str("module", "app.control").Str("conn", string(id)).Str("bot", botID).Msg("control released")

	a.emit(b.Conn, protocol.ControllerDisconnected{Type: protocol.EvControllerDisconnected})
	a.emit(id, protocol.ControlReleased{Type: protocol.EvControlReleased, BotID: botID})
}

// clearControllerLocked drops a bot's controller together with the
// holder's control tag and operator back-reference. Emits nothing.
// Requires a.mu held.
func (a *Authority) clearControllerLocked(b *domain.Bot) {
	if b.Controller == "" {
		return
	}
	if s, ok := a.sessions[b.Controller]; ok {
		if s.Controls == b.ID {
			s.Controls = ""
		}
		if s.Operator != "" {
			if op, ok := a.operators[s.Operator]; ok && op.ControllingBot == b.ID {
				op.ControllingBot = ""
			}
		}
	}
	b.Controller = ""
}
